// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// CoreHeroTable represents the 'core.hero' table
type CoreHeroTable struct {
	Table               string
	ID                  string
	Name                string
	CategoryID          string
	IsImmortal          string
	BenevolenceFactor   string
	ArbitrarinessFactor string
	Headshot            string
	FatherID            string
	MotherID            string
	SpouseID            string
}

// CoreHero is the schema definition for core.hero
var CoreHero = CoreHeroTable{
	Table:               "core.hero",
	ID:                  "id",
	Name:                "name",
	CategoryID:          "categoryid",
	IsImmortal:          "isimmortal",
	BenevolenceFactor:   "benevolencefactor",
	ArbitrarinessFactor: "arbitrarinessfactor",
	Headshot:            "headshot",
	FatherID:            "fatherid",
	MotherID:            "motherid",
	SpouseID:            "spouseid",
}

// Columns returns all column names in scan order
func (t CoreHeroTable) Columns() []string {
	return []string{
		t.ID, t.Name, t.CategoryID, t.IsImmortal, t.BenevolenceFactor,
		t.ArbitrarinessFactor, t.Headshot, t.FatherID, t.MotherID, t.SpouseID,
	}
}
