// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package villain

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

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var villainColumns = strings.Join(schema.CoreVillain.Columns(), ", ")

func scanVillain(row pgx.Row) (*Villain, error) {
	v := &Villain{}
	err := row.Scan(
		&v.ID, &v.Name, &v.AlternativeName, &v.CategoryID, &v.OriginID, &v.Gender,
		&v.Description, &v.AddedBy, &v.AddedOn, &v.IsImmortal, &v.MalevolenceFactor,
		&v.PowerFactor, &v.IsUnique, &v.Count,
	)
	return v, err
}

func (repository *PostgresRepository) ListVillains(context context.Context, filter Filter, limit, offset int) ([]*Villain, int, error) {
	t := schema.CoreVillain

	var conditions []string
	var args []any
	if filter.CategoryID != nil {
		args = append(args, *filter.CategoryID)
		conditions = append(conditions, t.CategoryID+" = $"+strconv.Itoa(len(args)))
	}
	if filter.OriginID != nil {
		args = append(args, *filter.OriginID)
		conditions = append(conditions, t.OriginID+" = $"+strconv.Itoa(len(args)))
	}
	if filter.Name != "" {
		args = append(args, "%"+filter.Name+"%")
		n := strconv.Itoa(len(args))
		conditions = append(conditions, "("+t.Name+" ILIKE $"+n+" OR "+t.AlternativeName+" ILIKE $"+n+")")
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s%s`, t.Table, where)
	if err := repository.db.QueryRow(context, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_villains")
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s%s
		ORDER BY %s ASC, %s ASC
		LIMIT $%d OFFSET $%d
	`, villainColumns, t.Table, where, t.Name, t.ID, len(args)+1, len(args)+2)

	rows, err := repository.db.Query(context, query, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_villains")
	}
	defer rows.Close()

	villains := []*Villain{}
	for rows.Next() {
		v, err := scanVillain(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_villain")
		}
		villains = append(villains, v)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "list_villains")
	}

	return villains, total, nil
}

func (repository *PostgresRepository) GetVillain(context context.Context, id int) (*Villain, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, villainColumns, schema.CoreVillain.Table, schema.CoreVillain.ID)

	v, err := scanVillain(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_villain")
	}
	return v, nil
}

func (repository *PostgresRepository) CreateVillain(context context.Context, v *Villain) error {
	t := schema.CoreVillain
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING %s
	`,
		t.Table, t.Name, t.AlternativeName, t.CategoryID, t.OriginID, t.Gender, t.Description,
		t.AddedBy, t.AddedOn, t.IsImmortal, t.MalevolenceFactor, t.PowerFactor, t.IsUnique, t.Count,
		t.ID,
	)

	err := repository.db.QueryRow(context, query,
		v.Name, v.AlternativeName, v.CategoryID, v.OriginID, v.Gender, v.Description,
		v.AddedBy, v.AddedOn, v.IsImmortal, v.MalevolenceFactor, v.PowerFactor, v.IsUnique, v.Count,
	).Scan(&v.ID)
	return dberr.Wrap(err, "create_villain")
}

func (repository *PostgresRepository) UpdateVillain(context context.Context, v *Villain) error {
	t := schema.CoreVillain
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7,
		    %s = COALESCE($8, %s), %s = $9, %s = $10, %s = $11, %s = $12, %s = $13, %s = $14
		WHERE %s = $1
		RETURNING %s
	`,
		t.Table, t.Name, t.AlternativeName, t.CategoryID, t.OriginID, t.Gender, t.Description,
		t.AddedBy, t.AddedBy, t.AddedOn, t.IsImmortal, t.MalevolenceFactor, t.PowerFactor, t.IsUnique, t.Count,
		t.ID,
		t.AddedBy,
	)

	err := repository.db.QueryRow(context, query,
		v.ID, v.Name, v.AlternativeName, v.CategoryID, v.OriginID, v.Gender, v.Description,
		v.AddedBy, v.AddedOn, v.IsImmortal, v.MalevolenceFactor, v.PowerFactor, v.IsUnique, v.Count,
	).Scan(&v.AddedBy)
	return dberr.Wrap(err, "update_villain")
}

func (repository *PostgresRepository) DeleteVillain(context context.Context, id int) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.CoreVillain.Table, schema.CoreVillain.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_villain")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
