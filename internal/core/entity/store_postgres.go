// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package entity

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/epicdb/internal/platform/database/schema"
	"github.com/taibuivan/epicdb/internal/platform/dberr"
)

// PostgresRepository implements [Repository].
type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) ListAll(context context.Context, filter Filter, limit, offset int) ([]*AllEntity, int, error) {
	t := schema.AllEntity

	var conditions []string
	var args []any
	if filter.Kind != "" {
		args = append(args, string(filter.Kind))
		conditions = append(conditions, t.Kind+" = $"+strconv.Itoa(len(args)))
	}
	if filter.Name != "" {
		args = append(args, "%"+filter.Name+"%")
		conditions = append(conditions, t.Name+" ILIKE $"+strconv.Itoa(len(args)))
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s%s`, t.Table, where)
	if err := repository.db.QueryRow(context, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_entities")
	}

	query := fmt.Sprintf(`
		SELECT %s, %s, %s
		FROM %s%s
		ORDER BY %s ASC, %s ASC, %s ASC
		LIMIT $%d OFFSET $%d
	`, t.ID, t.Name, t.Kind, t.Table, where, t.Name, t.Kind, t.ID, len(args)+1, len(args)+2)

	rows, err := repository.db.Query(context, query, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_entities")
	}

	entities, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByPos[AllEntity])
	if err != nil {
		return nil, 0, dberr.Wrap(err, "scan_entity")
	}

	return entities, total, nil
}
