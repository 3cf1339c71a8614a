// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/epicdb/internal/platform/database/schema"
	"github.com/taibuivan/epicdb/internal/platform/dberr"
	"github.com/taibuivan/epicdb/internal/users/auth"
)

// PostgresRepository implements [AccountRepository].
type PostgresRepository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

func (repository *PostgresRepository) FindByID(context context.Context, id string) (*auth.User, error) {
	t := schema.UserAccount
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`, t.ID, t.Username, t.Email, t.FirstName, t.LastName, t.Role, t.CreatedAt, t.UpdatedAt, t.Table, t.ID)

	user := &auth.User{}
	err := repository.pool.QueryRow(context, query, id).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.FirstName,
		&user.LastName,
		&user.Role,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "find_account")
	}
	return user, nil
}

func (repository *PostgresRepository) GetParent(context context.Context, userID string) (*Parent, error) {
	t := schema.UserParent
	query := fmt.Sprintf(`SELECT %s, %s, %s FROM %s WHERE %s = $1`, t.UserID, t.FatherName, t.MotherName, t.Table, t.UserID)

	p := &Parent{}
	if err := repository.pool.QueryRow(context, query, userID).Scan(&p.UserID, &p.FatherName, &p.MotherName); err != nil {
		return nil, dberr.Wrap(err, "get_parent")
	}
	return p, nil
}

func (repository *PostgresRepository) UpsertParent(context context.Context, p *Parent) error {
	t := schema.UserParent
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, $2, $3)
		ON CONFLICT (%s) DO UPDATE
		SET %s = EXCLUDED.%s, %s = EXCLUDED.%s
	`, t.Table, t.UserID, t.FatherName, t.MotherName,
		t.UserID,
		t.FatherName, t.FatherName, t.MotherName, t.MotherName)

	_, err := repository.pool.Exec(context, query, p.UserID, p.FatherName, p.MotherName)
	return dberr.Wrap(err, "upsert_parent")
}
