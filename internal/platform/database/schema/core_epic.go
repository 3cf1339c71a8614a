// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// CoreEpicTable represents the 'core.epic' table
type CoreEpicTable struct {
	Table string
	ID    string
	Name  string
}

// CoreEpic is the schema definition for core.epic
var CoreEpic = CoreEpicTable{
	Table: "core.epic",
	ID:    "id",
	Name:  "name",
}

// EpicLinkTable represents an epic participation join table
type EpicLinkTable struct {
	Table   string
	EpicID  string
	OtherID string
}

// Join tables of core.epic
var (
	CoreEpicHero = EpicLinkTable{
		Table:   "core.epichero",
		EpicID:  "epicid",
		OtherID: "heroid",
	}
	CoreEpicVillain = EpicLinkTable{
		Table:   "core.epicvillain",
		EpicID:  "epicid",
		OtherID: "villainid",
	}
)
