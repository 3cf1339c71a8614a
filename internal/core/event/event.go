// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package event manages the events of an epic and the heroes taking part in
each of them.

Event keys are UUIDs generated by the service; clients never choose them.
*/
package event

// Event is a row of core.event.
type Event struct {
	ID       string `json:"id"`
	EpicID   int    `json:"epic_id"`
	Details  string `json:"details"`
	YearsAgo int    `json:"years_ago"`
}

// Input is the client payload for an event. There is no id field.
type Input struct {
	EpicID   int    `json:"epic_id"`
	Details  string `json:"details"`
	YearsAgo *int   `json:"years_ago"`
}

// Participant is a row of core.eventhero.
type Participant struct {
	ID        int    `json:"id"`
	EventID   string `json:"event_id"`
	HeroID    int    `json:"hero_id"`
	IsPrimary bool   `json:"is_primary"`
}

type ParticipantInput struct {
	HeroID    int   `json:"hero_id"`
	IsPrimary *bool `json:"is_primary"`
}

// Filter narrows an event listing.
type Filter struct {
	EpicID *int
}

const (
	FieldEpicID    = "epic_id"
	FieldDetails   = "details"
	FieldYearsAgo  = "years_ago"
	FieldHeroID    = "hero_id"
	FieldIsPrimary = "is_primary"
)
