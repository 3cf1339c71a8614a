// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package account handles user profiles and the parent record attached to each
account.

# Architecture

  - Entities: Parent, one row per account, keyed by the account ID.
  - Domain: This package depends on the auth package for the User entity.
  - Security: Only the owner or an admin may change a parent record.
*/
package account

import (
	"context"

	"github.com/taibuivan/epicdb/internal/users/auth"
)

// # Domain Entities

// Parent is a row of users.parent. Deleting the account deletes it.
type Parent struct {
	UserID     string `json:"user_id"`
	FatherName string `json:"father_name"`
	MotherName string `json:"mother_name"`
}

type ParentInput struct {
	FatherName string `json:"father_name"`
	MotherName string `json:"mother_name"`
}

const (
	FieldFatherName = "father_name"
	FieldMotherName = "mother_name"

	MaxParentNameLength = 100
)

// # Repository Contracts

// AccountRepository defines the persistence contract for profiles.
type AccountRepository interface {

	// FindByID retrieves a user record by its UUID.
	FindByID(context context.Context, id string) (*auth.User, error)

	GetParent(context context.Context, userID string) (*Parent, error)

	// UpsertParent creates or replaces the parent record of p.UserID.
	UpsertParent(context context.Context, p *Parent) error
}
