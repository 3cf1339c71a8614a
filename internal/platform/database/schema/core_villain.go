// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// CoreVillainTable represents the 'core.villain' table
type CoreVillainTable struct {
	Table             string
	ID                string
	Name              string
	AlternativeName   string
	CategoryID        string
	OriginID          string
	Gender            string
	Description       string
	AddedBy           string
	AddedOn           string
	IsImmortal        string
	MalevolenceFactor string
	PowerFactor       string
	IsUnique          string
	Count             string
}

// CoreVillain is the schema definition for core.villain
var CoreVillain = CoreVillainTable{
	Table:             "core.villain",
	ID:                "id",
	Name:              "name",
	AlternativeName:   "alternativename",
	CategoryID:        "categoryid",
	OriginID:          "originid",
	Gender:            "gender",
	Description:       "description",
	AddedBy:           "addedby",
	AddedOn:           "addedon",
	IsImmortal:        "isimmortal",
	MalevolenceFactor: "malevolencefactor",
	PowerFactor:       "powerfactor",
	IsUnique:          "isunique",
	Count:             "count",
}

// Columns returns all column names in scan order
func (t CoreVillainTable) Columns() []string {
	return []string{
		t.ID, t.Name, t.AlternativeName, t.CategoryID, t.OriginID, t.Gender,
		t.Description, t.AddedBy, t.AddedOn, t.IsImmortal, t.MalevolenceFactor,
		t.PowerFactor, t.IsUnique, t.Count,
	}
}
