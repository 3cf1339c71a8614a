// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package event

import "context"

// Repository defines the data access contract for events and participants.
type Repository interface {

	// ListEvents returns a page of events, oldest first, and the total count.
	ListEvents(context context.Context, filter Filter, limit, offset int) ([]*Event, int, error)

	GetEvent(context context.Context, id string) (*Event, error)

	// CreateEvent inserts e. e.ID must already be set.
	CreateEvent(context context.Context, e *Event) error

	UpdateEvent(context context.Context, e *Event) error

	DeleteEvent(context context.Context, id string) error

	// # Participants

	ListParticipants(context context.Context, eventID string) ([]*Participant, error)

	// AddParticipant inserts p and fills p.ID.
	AddParticipant(context context.Context, p *Participant) error

	RemoveParticipant(context context.Context, eventID string, participantID int) error
}
