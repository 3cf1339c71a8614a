// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

import "slices"

// UserRole is the authorization level granted to an account.
type UserRole string

const (
	// Unrestricted access, including deletes.
	RoleAdmin UserRole = "admin"

	// Curates the catalogue and may delete records.
	RoleModerator UserRole = "moderator"

	// Default role: may add and edit records.
	RoleMember UserRole = "member"
)

// Roles lists every assignable role, lowest first.
var Roles = []UserRole{RoleMember, RoleModerator, RoleAdmin}

// Valid reports whether r is one of [Roles].
func (r UserRole) Valid() bool {
	return slices.Contains(Roles, r)
}

// AtLeast reports whether r meets or exceeds target.
func (r UserRole) AtLeast(target UserRole) bool {
	return r.level() >= target.level()
}

func (r UserRole) level() int {
	switch r {
	case RoleAdmin:
		return 30
	case RoleModerator:
		return 20
	case RoleMember:
		return 10
	default:
		return 0
	}
}
