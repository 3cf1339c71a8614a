// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package hero

import "context"

// # Hero Data Access

// Repository defines the data access contract for heroes and acquaintances.
type Repository interface {

	/*
		ListHeroes retrieves a filtered page of heroes ordered by name.

		Returns:
		  - []*Hero: The page
		  - int: Total matching count
		  - error: Database failures
	*/
	ListHeroes(context context.Context, filter Filter, limit, offset int) ([]*Hero, int, error)

	// GetHero fetches one hero by primary key.
	GetHero(context context.Context, id int) (*Hero, error)

	// CreateHero inserts h and fills h.ID.
	CreateHero(context context.Context, h *Hero) error

	// UpdateHero replaces every column of the row h.ID.
	UpdateHero(context context.Context, h *Hero) error

	// DeleteHero removes a hero. Family links pointing at it become NULL and
	// join rows referencing it are dropped by the schema.
	DeleteHero(context context.Context, id int) error

	// ListChildren returns the heroes whose father is id.
	ListChildren(context context.Context, id int) ([]*Hero, error)

	// # Acquaintance Data Access

	GetAcquaintance(context context.Context, heroID int) (*Acquaintance, error)

	// CreateAcquaintance inserts the record and its initial links atomically.
	CreateAcquaintance(context context.Context, a *Acquaintance) error

	DeleteAcquaintance(context context.Context, heroID int) error

	// AddLink is idempotent.
	AddLink(context context.Context, heroID int, kind LinkKind, otherID int) error

	RemoveLink(context context.Context, heroID int, kind LinkKind, otherID int) error
}
