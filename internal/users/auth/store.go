// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import "context"

// # User Data Access

// UserRepository defines the data access contract for user accounts.
type UserRepository interface {

	// FindByID returns the account with the given ID, password hash included.
	FindByID(context context.Context, id string) (*User, error)

	FindByEmail(context context.Context, email string) (*User, error)

	FindByUsername(context context.Context, username string) (*User, error)

	/*
		Create persists a brand-new user account.

		Returns:
		  - error: CONFLICT when the username or email is taken
	*/
	Create(context context.Context, user *User) error
}
