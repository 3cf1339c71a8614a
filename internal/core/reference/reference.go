// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package reference manages the taxonomic foundations of the catalogue.

Every character points at a [Category], and every villain also at an
[Origin]. Deleting either cascades to the characters that reference it.
*/
package reference

// # Category Domain

// Category classifies characters (e.g. "Greek", "Norse").
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func (c Category) String() string { return c.Name }

// # Origin Domain

// Origin records where a character comes from.
type Origin struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func (o Origin) String() string { return o.Name }

const (
	FieldName = "name"

	// MaxNameLength mirrors the VARCHAR(100) column.
	MaxNameLength = 100
)
