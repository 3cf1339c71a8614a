// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package uuid provides time-ordered unique identifiers for the platform.

It wraps google/uuid to generate Version 7 values. Account and event
primary keys use them; every other table keeps a SERIAL key.
*/
package uuid

import "github.com/google/uuid"

// # Generators

// New generates a new UUIDv7 string.
func New() string {
	id, err := uuid.NewV7()

	// entropy failure is an unrecoverable system-level error
	if err != nil {
		panic("uuid: failed to generate UUIDv7: " + err.Error())
	}

	return id.String()
}

// # Parsing

// Valid reports whether s is a well-formed UUID of any version.
func Valid(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
