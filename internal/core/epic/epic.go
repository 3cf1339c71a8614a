// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package epic manages epics and the heroes and villains taking part in them.
package epic

import "strings"

// Epic is a row of core.epic with its participant ids.
type Epic struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	HeroIDs    []int  `json:"hero_ids"`
	VillainIDs []int  `json:"villain_ids"`
}

func (e Epic) String() string { return e.Name }

// Input is the client payload for an epic. Participant ids are only read on
// create; use the participant routes afterwards.
type Input struct {
	Name       string `json:"name"`
	HeroIDs    []int  `json:"hero_ids"`
	VillainIDs []int  `json:"villain_ids"`
}

// Role selects the participant join table.
type Role string

const (
	RoleHero    Role = "heroes"
	RoleVillain Role = "villains"
)

// ParseRole maps a URL segment to a [Role].
func ParseRole(raw string) (Role, bool) {
	switch Role(strings.ToLower(raw)) {
	case RoleHero:
		return RoleHero, true
	case RoleVillain:
		return RoleVillain, true
	}
	return "", false
}

const (
	FieldName       = "name"
	FieldHeroIDs    = "hero_ids"
	FieldVillainIDs = "villain_ids"

	MaxNameLength = 255
)
