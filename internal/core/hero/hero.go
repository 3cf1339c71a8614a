// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package hero manages heroic characters, their family links and their
acquaintances.

# Relationships

  - Father, mother and spouse point back into core.hero and become NULL when
    the referenced hero is deleted. Children are the heroes whose father is
    a given hero.
  - Each hero has at most one [Acquaintance] record, which links to other
    heroes (friends, detractors) and to villains (main antagonists).
*/
package hero

import "strings"

// # Hero Domain

// Hero is a row of core.hero.
type Hero struct {
	ID                  int     `json:"id"`
	Name                string  `json:"name"`
	CategoryID          int     `json:"category_id"`
	IsImmortal          bool    `json:"is_immortal"`
	BenevolenceFactor   int     `json:"benevolence_factor"`
	ArbitrarinessFactor int     `json:"arbitrariness_factor"`
	Headshot            *string `json:"headshot"`
	FatherID            *int    `json:"father_id"`
	MotherID            *int    `json:"mother_id"`
	SpouseID            *int    `json:"spouse_id"`
}

func (h Hero) String() string { return h.Name }

// Proxy is the alternate admin view over core.hero. It has no storage or
// behaviour of its own.
type Proxy = Hero

// Input is the client payload for creating or replacing a hero.
// Omitted optional fields take the column defaults.
type Input struct {
	Name                string  `json:"name"`
	CategoryID          int     `json:"category_id"`
	IsImmortal          *bool   `json:"is_immortal"`
	BenevolenceFactor   *int    `json:"benevolence_factor"`
	ArbitrarinessFactor *int    `json:"arbitrariness_factor"`
	Headshot            *string `json:"headshot"`
	FatherID            *int    `json:"father_id"`
	MotherID            *int    `json:"mother_id"`
	SpouseID            *int    `json:"spouse_id"`
}

// Filter narrows a hero listing.
type Filter struct {
	CategoryID *int
	Name       string
}

// Column defaults of core.hero.
const (
	DefaultIsImmortal = true
	DefaultFactor     = 50

	MaxNameLength = 100

	// HeadshotDir is the upload directory headshot paths must live under.
	HeadshotDir = "hero_headshots/"
	MaxHeadshot = 100
)

const (
	FieldName                = "name"
	FieldCategoryID          = "category_id"
	FieldBenevolenceFactor   = "benevolence_factor"
	FieldArbitrarinessFactor = "arbitrariness_factor"
	FieldHeadshot            = "headshot"
	FieldFatherID            = "father_id"
	FieldMotherID            = "mother_id"
	FieldSpouseID            = "spouse_id"
)

// # Acquaintance Domain

// Acquaintance lists the non-family contacts of a hero.
type Acquaintance struct {
	ID            int   `json:"id"`
	HeroID        int   `json:"hero_id"`
	FriendIDs     []int `json:"friend_ids"`
	DetractorIDs  []int `json:"detractor_ids"`
	AntagonistIDs []int `json:"main_antagonist_ids"`
}

// AcquaintanceInput seeds a new acquaintance record.
type AcquaintanceInput struct {
	FriendIDs     []int `json:"friend_ids"`
	DetractorIDs  []int `json:"detractor_ids"`
	AntagonistIDs []int `json:"main_antagonist_ids"`
}

// LinkKind selects one of the acquaintance join tables.
type LinkKind string

const (
	LinkFriend     LinkKind = "friends"
	LinkDetractor  LinkKind = "detractors"
	LinkAntagonist LinkKind = "antagonists"
)

// ParseLinkKind accepts the URL segment of a link kind.
func ParseLinkKind(s string) (LinkKind, bool) {
	switch kind := LinkKind(strings.ToLower(s)); kind {
	case LinkFriend, LinkDetractor, LinkAntagonist:
		return kind, true
	}
	return "", false
}
