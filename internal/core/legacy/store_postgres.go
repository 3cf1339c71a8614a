// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package legacy

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/epicdb/internal/platform/database/schema"
	"github.com/taibuivan/epicdb/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// listPage runs a count and a page query over table and collects T by position.
func listPage[T any](context context.Context, db *pgxpool.Pool, action, table, columns, orderBy string, limit, offset int) ([]*T, int, error) {
	var total int
	if err := db.QueryRow(context, fmt.Sprintf(`SELECT count(*) FROM %s`, table)).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, action)
	}

	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s ASC LIMIT $1 OFFSET $2`, columns, table, orderBy)
	rows, err := db.Query(context, query, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, action)
	}

	items, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByPos[T])
	if err != nil {
		return nil, 0, dberr.Wrap(err, action)
	}
	return items, total, nil
}

// # TempUser

func (repository *PostgresRepository) ListTempUsers(context context.Context, limit, offset int) ([]*TempUser, int, error) {
	t := schema.TempUser
	columns := fmt.Sprintf("%s, %s", t.ID, t.FirstName)
	return listPage[TempUser](context, repository.db, "list_temp_users", t.Table, columns, t.ID, limit, offset)
}

// # ColumnName

func columnNameColumns() string {
	t := schema.CoreColumnName
	return fmt.Sprintf("%s, %s, %s", t.ID, t.A, t.Column2)
}

func (repository *PostgresRepository) ListColumnNames(context context.Context, limit, offset int) ([]*ColumnName, int, error) {
	t := schema.CoreColumnName
	return listPage[ColumnName](context, repository.db, "list_column_names", t.Table, columnNameColumns(), t.ID, limit, offset)
}

func (repository *PostgresRepository) GetColumnName(context context.Context, id int) (*ColumnName, error) {
	t := schema.CoreColumnName
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, columnNameColumns(), t.Table, t.ID)

	c := &ColumnName{}
	if err := repository.db.QueryRow(context, query, id).Scan(&c.ID, &c.A, &c.Column2); err != nil {
		return nil, dberr.Wrap(err, "get_column_name")
	}
	return c, nil
}

func (repository *PostgresRepository) CreateColumnName(context context.Context, c *ColumnName) error {
	t := schema.CoreColumnName
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s) VALUES ($1, $2) RETURNING %s`, t.Table, t.A, t.Column2, t.ID)

	err := repository.db.QueryRow(context, query, c.A, c.Column2).Scan(&c.ID)
	return dberr.Wrap(err, "create_column_name")
}

func (repository *PostgresRepository) DeleteColumnName(context context.Context, id int) error {
	t := schema.CoreColumnName
	cmd, err := repository.db.Exec(context, fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, t.Table, t.ID), id)
	if err != nil {
		return dberr.Wrap(err, "delete_column_name")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
