// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package villain manages antagonists. A villain carries the shared
// [entity.Entity] fields plus its own threat profile.
package villain

import "github.com/taibuivan/epicdb/internal/core/entity"

// Villain is a row of core.villain.
type Villain struct {
	ID int `json:"id"`
	entity.Entity

	IsImmortal        bool `json:"is_immortal"`
	MalevolenceFactor int  `json:"malevolence_factor"`
	PowerFactor       int  `json:"power_factor"`
	IsUnique          bool `json:"is_unique"`
	Count             int  `json:"count"`
}

// Input is the client payload for creating or replacing a villain.
type Input struct {
	Name            string        `json:"name"`
	AlternativeName *string       `json:"alternative_name"`
	CategoryID      int           `json:"category_id"`
	OriginID        int           `json:"origin_id"`
	Gender          entity.Gender `json:"gender"`
	Description     string        `json:"description"`

	IsImmortal        *bool `json:"is_immortal"`
	MalevolenceFactor *int  `json:"malevolence_factor"`
	PowerFactor       *int  `json:"power_factor"`
	IsUnique          *bool `json:"is_unique"`
	Count             *int  `json:"count"`
}

// Filter narrows a villain listing.
type Filter struct {
	CategoryID *int
	OriginID   *int
	Name       string
}

// Column defaults of core.villain.
const (
	DefaultIsImmortal = false
	DefaultIsUnique   = true
	DefaultCount      = 1
)

const (
	FieldMalevolenceFactor = "malevolence_factor"
	FieldPowerFactor       = "power_factor"
	FieldCount             = "count"
)
