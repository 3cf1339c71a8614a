// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/epicdb/internal/platform/database/schema"
	"github.com/taibuivan/epicdb/internal/platform/dberr"
)

// # User Repository

// PostgresUserRepository implements [UserRepository] on users.account.
type PostgresUserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{pool: pool}
}

func (repository *PostgresUserRepository) Create(context context.Context, user *User) error {
	t := schema.UserAccount
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, t.Table, t.ID, t.Username, t.Email, t.Password, t.FirstName, t.LastName, t.Role, t.CreatedAt, t.UpdatedAt)

	now := time.Now()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now

	_, err := repository.pool.Exec(context, query,
		user.ID,
		user.Username,
		user.Email,
		user.PasswordHash,
		user.FirstName,
		user.LastName,
		user.Role,
		user.CreatedAt,
		user.UpdatedAt,
	)
	return dberr.Wrap(err, "create_user")
}

func (repository *PostgresUserRepository) findBy(context context.Context, column string, value string) (*User, error) {
	t := schema.UserAccount
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`, t.ID, t.Username, t.Email, t.Password, t.FirstName, t.LastName, t.Role, t.CreatedAt, t.UpdatedAt, t.Table, column)

	user := &User{}
	err := repository.pool.QueryRow(context, query, value).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.FirstName,
		&user.LastName,
		&user.Role,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "find_user_by_"+column)
	}
	return user, nil
}

func (repository *PostgresUserRepository) FindByID(context context.Context, id string) (*User, error) {
	return repository.findBy(context, schema.UserAccount.ID, id)
}

func (repository *PostgresUserRepository) FindByEmail(context context.Context, email string) (*User, error) {
	return repository.findBy(context, schema.UserAccount.Email, email)
}

func (repository *PostgresUserRepository) FindByUsername(context context.Context, username string) (*User, error) {
	return repository.findBy(context, schema.UserAccount.Username, username)
}
