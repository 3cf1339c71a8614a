// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// CoreHeroAcquaintanceTable represents the 'core.heroacquaintance' table
type CoreHeroAcquaintanceTable struct {
	Table  string
	ID     string
	HeroID string
}

// CoreHeroAcquaintance is the schema definition for core.heroacquaintance
var CoreHeroAcquaintance = CoreHeroAcquaintanceTable{
	Table:  "core.heroacquaintance",
	ID:     "id",
	HeroID: "heroid",
}

// AcquaintanceLinkTable represents one of the acquaintance join tables
type AcquaintanceLinkTable struct {
	Table          string
	AcquaintanceID string
	OtherID        string
}

// Join tables of core.heroacquaintance
var (
	CoreHeroAcquaintanceFriend = AcquaintanceLinkTable{
		Table:          "core.heroacquaintancefriend",
		AcquaintanceID: "acquaintanceid",
		OtherID:        "heroid",
	}
	CoreHeroAcquaintanceDetractor = AcquaintanceLinkTable{
		Table:          "core.heroacquaintancedetractor",
		AcquaintanceID: "acquaintanceid",
		OtherID:        "heroid",
	}
	CoreHeroAcquaintanceAntagonist = AcquaintanceLinkTable{
		Table:          "core.heroacquaintanceantagonist",
		AcquaintanceID: "acquaintanceid",
		OtherID:        "villainid",
	}
)
