// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package epic

import "context"

// Repository defines the data access contract for epics.
type Repository interface {

	// ListEpics returns a page of epics ordered by name and the total count.
	ListEpics(context context.Context, name string, limit, offset int) ([]*Epic, int, error)

	GetEpic(context context.Context, id int) (*Epic, error)

	// CreateEpic inserts e with its initial participants atomically.
	CreateEpic(context context.Context, e *Epic) error

	// UpdateEpic renames the epic. Participants are left untouched.
	UpdateEpic(context context.Context, e *Epic) error

	DeleteEpic(context context.Context, id int) error

	// AddParticipant is idempotent.
	AddParticipant(context context.Context, epicID int, role Role, otherID int) error

	RemoveParticipant(context context.Context, epicID int, role Role, otherID int) error
}
