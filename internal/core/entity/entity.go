// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package entity holds the descriptive fields shared by character records and
the read-only [AllEntity] listing over every character.

[Entity] is never stored on its own: concrete characters (villain.Villain)
embed it and own the columns.
*/
package entity

import (
	"time"

	"github.com/taibuivan/epicdb/internal/platform/validate"
)

// # Gender

// Gender is one of the fixed [Genders] choices.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOthers Gender = "Others/Unknown"
)

// Genders lists the accepted values in display order.
var Genders = []Gender{GenderMale, GenderFemale, GenderOthers}

// # Entity

// Entity groups the descriptive fields of a character.
type Entity struct {
	Name            string  `json:"name"`
	AlternativeName *string `json:"alternative_name"`
	CategoryID      int     `json:"category_id"`
	OriginID        int     `json:"origin_id"`
	Gender          Gender  `json:"gender"`
	Description     string  `json:"description"`

	// AddedBy references users.account and becomes NULL when the user is deleted.
	AddedBy *string `json:"added_by"`

	// AddedOn is refreshed to the current date on every save.
	AddedOn time.Time `json:"added_on"`
}

func (e Entity) String() string { return e.Name }

const (
	FieldName            = "name"
	FieldAlternativeName = "alternative_name"
	FieldCategoryID      = "category_id"
	FieldOriginID        = "origin_id"
	FieldGender          = "gender"
	FieldDescription     = "description"

	MaxNameLength = 100
)

// Validate appends the shared field rules to validator.
func (e *Entity) Validate(validator *validate.Validator) *validate.Validator {
	validator.Required(FieldName, e.Name).MaxLen(FieldName, e.Name, MaxNameLength)
	if e.AlternativeName != nil {
		validator.MaxLen(FieldAlternativeName, *e.AlternativeName, MaxNameLength)
	}

	allowed := make([]string, len(Genders))
	for i, g := range Genders {
		allowed[i] = string(g)
	}

	return validator.
		ID(FieldCategoryID, e.CategoryID).
		ID(FieldOriginID, e.OriginID).
		OneOf(FieldGender, string(e.Gender), allowed...).
		Required(FieldDescription, e.Description)
}

// Touch stamps the save date and, when known, the saving user.
func (e *Entity) Touch(now time.Time, userID *string) {
	e.AddedOn = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if userID != nil {
		e.AddedBy = userID
	}
}

// # AllEntity

// Kind tells which table an [AllEntity] row comes from.
type Kind string

const (
	KindHero    Kind = "hero"
	KindVillain Kind = "villain"
)

// AllEntity is one row of the read-only entities_entity view.
//
// Heroes and villains draw IDs from separate sequences, so ID alone repeats
// across kinds. The row key is (ID, Kind).
type AllEntity struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Kind Kind   `json:"kind"`
}

func (a AllEntity) String() string { return a.Name }

// Filter narrows an [AllEntity] listing.
type Filter struct {
	Kind Kind   // empty means every kind
	Name string // case-insensitive substring
}
