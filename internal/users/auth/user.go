// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package auth implements registration and login for user accounts.

Accounts are referenced by villains (added_by), articles (reporter) and the
one-to-one parent record managed by the account package.
*/
package auth

import (
	"time"

	"github.com/taibuivan/epicdb/internal/platform/sec"
)

// # Domain Entities

// User is a row of users.account.
type User struct {
	ID           string       `json:"id"`
	Username     string       `json:"username"`
	Email        string       `json:"email"`
	PasswordHash string       `json:"-"`
	FirstName    string       `json:"first_name"`
	LastName     string       `json:"last_name"`
	Role         sec.UserRole `json:"role"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

func (u User) String() string { return u.Username }

// # Field Identifiers

const (
	FieldUsername  = "username"
	FieldEmail     = "email"
	FieldPassword  = "password"
	FieldFirstName = "first_name"
	FieldLastName  = "last_name"
	FieldLogin     = "login"

	MaxUsernameLength = 150
	MinUsernameLength = 3
	MaxNameLength     = 150
	MaxEmailLength    = 254
	MinPasswordLength = 8

	// bcrypt ignores input past 72 bytes.
	MaxPasswordLength = 72
)
