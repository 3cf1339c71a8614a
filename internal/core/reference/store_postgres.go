// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package reference

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/epicdb/internal/platform/database/schema"
	"github.com/taibuivan/epicdb/internal/platform/dberr"
)

// PostgresRepository implements [Repository] on core.category and core.origin.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository constructs a new [PostgresRepository].
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// # Categories

func (repository *PostgresRepository) ListCategories(context context.Context, limit, offset int) ([]*Category, int, error) {
	return listNamed[Category](context, repository.db, schema.CoreCategory, limit, offset, "category")
}

func (repository *PostgresRepository) GetCategory(context context.Context, id int) (*Category, error) {
	return getNamed[Category](context, repository.db, schema.CoreCategory, id, "category")
}

func (repository *PostgresRepository) CreateCategory(context context.Context, c *Category) error {
	return createNamed(context, repository.db, schema.CoreCategory, c.Name, &c.ID, "category")
}

func (repository *PostgresRepository) UpdateCategory(context context.Context, c *Category) error {
	return updateNamed(context, repository.db, schema.CoreCategory, c.ID, c.Name, "category")
}

func (repository *PostgresRepository) DeleteCategory(context context.Context, id int) error {
	return deleteNamed(context, repository.db, schema.CoreCategory, id, "category")
}

// # Origins

func (repository *PostgresRepository) ListOrigins(context context.Context, limit, offset int) ([]*Origin, int, error) {
	return listNamed[Origin](context, repository.db, schema.CoreOrigin, limit, offset, "origin")
}

func (repository *PostgresRepository) GetOrigin(context context.Context, id int) (*Origin, error) {
	return getNamed[Origin](context, repository.db, schema.CoreOrigin, id, "origin")
}

func (repository *PostgresRepository) CreateOrigin(context context.Context, o *Origin) error {
	return createNamed(context, repository.db, schema.CoreOrigin, o.Name, &o.ID, "origin")
}

func (repository *PostgresRepository) UpdateOrigin(context context.Context, o *Origin) error {
	return updateNamed(context, repository.db, schema.CoreOrigin, o.ID, o.Name, "origin")
}

func (repository *PostgresRepository) DeleteOrigin(context context.Context, id int) error {
	return deleteNamed(context, repository.db, schema.CoreOrigin, id, "origin")
}

// # Shared (id, name) table helpers

// T must have exactly the fields (ID int, Name string) in that order.
func listNamed[T any](ctx context.Context, db *pgxpool.Pool, t schema.CoreCategoryTable, limit, offset int, noun string) ([]*T, int, error) {
	var total int
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s`, t.Table)
	if err := db.QueryRow(ctx, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_"+noun)
	}

	query := fmt.Sprintf(`
		SELECT %s, %s
		FROM %s
		ORDER BY %s ASC, %s ASC
		LIMIT $1 OFFSET $2
	`, t.ID, t.Name, t.Table, t.Name, t.ID)

	rows, err := db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_"+noun)
	}

	items, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByPos[T])
	if err != nil {
		return nil, 0, dberr.Wrap(err, "scan_"+noun)
	}

	return items, total, nil
}

func getNamed[T any](ctx context.Context, db *pgxpool.Pool, t schema.CoreCategoryTable, id int, noun string) (*T, error) {
	query := fmt.Sprintf(`SELECT %s, %s FROM %s WHERE %s = $1`, t.ID, t.Name, t.Table, t.ID)

	rows, err := db.Query(ctx, query, id)
	if err != nil {
		return nil, dberr.Wrap(err, "get_"+noun)
	}

	item, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByPos[T])
	if err != nil {
		return nil, dberr.Wrap(err, "get_"+noun)
	}
	return item, nil
}

func createNamed(ctx context.Context, db *pgxpool.Pool, t schema.CoreCategoryTable, name string, id *int, noun string) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES ($1) RETURNING %s`, t.Table, t.Name, t.ID)

	err := db.QueryRow(ctx, query, name).Scan(id)
	return dberr.Wrap(err, "create_"+noun)
}

func updateNamed(ctx context.Context, db *pgxpool.Pool, t schema.CoreCategoryTable, id int, name string, noun string) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $2 WHERE %s = $1`, t.Table, t.Name, t.ID)

	cmd, err := db.Exec(ctx, query, id, name)
	if err != nil {
		return dberr.Wrap(err, "update_"+noun)
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func deleteNamed(ctx context.Context, db *pgxpool.Pool, t schema.CoreCategoryTable, id int, noun string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, t.Table, t.ID)

	cmd, err := db.Exec(ctx, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_"+noun)
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
