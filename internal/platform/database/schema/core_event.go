// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// CoreEventTable represents the 'core.event' table
type CoreEventTable struct {
	Table    string
	ID       string
	EpicID   string
	Details  string
	YearsAgo string
}

// CoreEvent is the schema definition for core.event
var CoreEvent = CoreEventTable{
	Table:    "core.event",
	ID:       "id",
	EpicID:   "epicid",
	Details:  "details",
	YearsAgo: "yearsago",
}

// CoreEventHeroTable represents the 'core.eventhero' table
type CoreEventHeroTable struct {
	Table     string
	ID        string
	EventID   string
	HeroID    string
	IsPrimary string
}

// CoreEventHero is the schema definition for core.eventhero
var CoreEventHero = CoreEventHeroTable{
	Table:     "core.eventhero",
	ID:        "id",
	EventID:   "eventid",
	HeroID:    "heroid",
	IsPrimary: "isprimary",
}
