// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package hero

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/epicdb/internal/platform/database/schema"
	"github.com/taibuivan/epicdb/internal/platform/dberr"
	"github.com/taibuivan/epicdb/internal/platform/postgres"
)

// PostgresRepository implements [Repository] on core.hero and the
// core.heroacquaintance tables.
type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var heroColumns = strings.Join(schema.CoreHero.Columns(), ", ")

func scanHero(row pgx.Row) (*Hero, error) {
	h := &Hero{}
	err := row.Scan(
		&h.ID, &h.Name, &h.CategoryID, &h.IsImmortal, &h.BenevolenceFactor,
		&h.ArbitrarinessFactor, &h.Headshot, &h.FatherID, &h.MotherID, &h.SpouseID,
	)
	return h, err
}

func collectHeroes(rows pgx.Rows) ([]*Hero, error) {
	defer rows.Close()

	heroes := []*Hero{}
	for rows.Next() {
		h, err := scanHero(rows)
		if err != nil {
			return nil, err
		}
		heroes = append(heroes, h)
	}
	return heroes, rows.Err()
}

// # Heroes

func (repository *PostgresRepository) ListHeroes(context context.Context, filter Filter, limit, offset int) ([]*Hero, int, error) {
	t := schema.CoreHero

	var conditions []string
	var args []any
	if filter.CategoryID != nil {
		args = append(args, *filter.CategoryID)
		conditions = append(conditions, t.CategoryID+" = $"+strconv.Itoa(len(args)))
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
		return nil, 0, dberr.Wrap(err, "count_heroes")
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s%s
		ORDER BY %s ASC, %s ASC
		LIMIT $%d OFFSET $%d
	`, heroColumns, t.Table, where, t.Name, t.ID, len(args)+1, len(args)+2)

	rows, err := repository.db.Query(context, query, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_heroes")
	}

	heroes, err := collectHeroes(rows)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "scan_hero")
	}
	return heroes, total, nil
}

func (repository *PostgresRepository) GetHero(context context.Context, id int) (*Hero, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, heroColumns, schema.CoreHero.Table, schema.CoreHero.ID)

	h, err := scanHero(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_hero")
	}
	return h, nil
}

func (repository *PostgresRepository) CreateHero(context context.Context, h *Hero) error {
	t := schema.CoreHero
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING %s
	`,
		t.Table, t.Name, t.CategoryID, t.IsImmortal, t.BenevolenceFactor, t.ArbitrarinessFactor,
		t.Headshot, t.FatherID, t.MotherID, t.SpouseID,
		t.ID,
	)

	err := repository.db.QueryRow(context, query,
		h.Name, h.CategoryID, h.IsImmortal, h.BenevolenceFactor, h.ArbitrarinessFactor,
		h.Headshot, h.FatherID, h.MotherID, h.SpouseID,
	).Scan(&h.ID)
	return dberr.Wrap(err, "create_hero")
}

func (repository *PostgresRepository) UpdateHero(context context.Context, h *Hero) error {
	t := schema.CoreHero
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8, %s = $9, %s = $10
		WHERE %s = $1
	`,
		t.Table, t.Name, t.CategoryID, t.IsImmortal, t.BenevolenceFactor, t.ArbitrarinessFactor,
		t.Headshot, t.FatherID, t.MotherID, t.SpouseID,
		t.ID,
	)

	cmd, err := repository.db.Exec(context, query,
		h.ID, h.Name, h.CategoryID, h.IsImmortal, h.BenevolenceFactor, h.ArbitrarinessFactor,
		h.Headshot, h.FatherID, h.MotherID, h.SpouseID,
	)
	if err != nil {
		return dberr.Wrap(err, "update_hero")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) DeleteHero(context context.Context, id int) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.CoreHero.Table, schema.CoreHero.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_hero")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) ListChildren(context context.Context, id int) ([]*Hero, error) {
	t := schema.CoreHero
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 ORDER BY %s ASC, %s ASC`,
		heroColumns, t.Table, t.FatherID, t.Name, t.ID)

	rows, err := repository.db.Query(context, query, id)
	if err != nil {
		return nil, dberr.Wrap(err, "list_children")
	}

	heroes, err := collectHeroes(rows)
	if err != nil {
		return nil, dberr.Wrap(err, "scan_hero")
	}
	return heroes, nil
}

// # Acquaintances

func linkTable(kind LinkKind) schema.AcquaintanceLinkTable {
	switch kind {
	case LinkDetractor:
		return schema.CoreHeroAcquaintanceDetractor
	case LinkAntagonist:
		return schema.CoreHeroAcquaintanceAntagonist
	default:
		return schema.CoreHeroAcquaintanceFriend
	}
}

func linkSubquery(link schema.AcquaintanceLinkTable, owner string) string {
	return fmt.Sprintf(`COALESCE((SELECT array_agg(%s ORDER BY %s) FROM %s WHERE %s = %s), '{}')`,
		link.OtherID, link.OtherID, link.Table, link.AcquaintanceID, owner)
}

func (repository *PostgresRepository) GetAcquaintance(context context.Context, heroID int) (*Acquaintance, error) {
	t := schema.CoreHeroAcquaintance
	owner := "a." + t.ID
	query := fmt.Sprintf(`
		SELECT a.%s, a.%s, %s, %s, %s
		FROM %s a
		WHERE a.%s = $1
	`,
		t.ID, t.HeroID,
		linkSubquery(schema.CoreHeroAcquaintanceFriend, owner),
		linkSubquery(schema.CoreHeroAcquaintanceDetractor, owner),
		linkSubquery(schema.CoreHeroAcquaintanceAntagonist, owner),
		t.Table, t.HeroID,
	)

	a := &Acquaintance{}
	err := repository.db.QueryRow(context, query, heroID).Scan(
		&a.ID, &a.HeroID, &a.FriendIDs, &a.DetractorIDs, &a.AntagonistIDs,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_acquaintance")
	}
	return a, nil
}

func (repository *PostgresRepository) CreateAcquaintance(context context.Context, a *Acquaintance) error {
	err := postgres.WithTx(context, repository.db, func(tx pgx.Tx) error {
		t := schema.CoreHeroAcquaintance
		query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES ($1) RETURNING %s`, t.Table, t.HeroID, t.ID)
		if err := tx.QueryRow(context, query, a.HeroID).Scan(&a.ID); err != nil {
			return err
		}

		seeds := []struct {
			link schema.AcquaintanceLinkTable
			ids  []int
		}{
			{schema.CoreHeroAcquaintanceFriend, a.FriendIDs},
			{schema.CoreHeroAcquaintanceDetractor, a.DetractorIDs},
			{schema.CoreHeroAcquaintanceAntagonist, a.AntagonistIDs},
		}

		for _, seed := range seeds {
			if len(seed.ids) == 0 {
				continue
			}
			insert := fmt.Sprintf(`
				INSERT INTO %s (%s, %s)
				SELECT $1, unnest($2::int[])
				ON CONFLICT DO NOTHING
			`, seed.link.Table, seed.link.AcquaintanceID, seed.link.OtherID)
			if _, err := tx.Exec(context, insert, a.ID, seed.ids); err != nil {
				return err
			}
		}
		return nil
	})
	return dberr.Wrap(err, "create_acquaintance")
}

func (repository *PostgresRepository) DeleteAcquaintance(context context.Context, heroID int) error {
	t := schema.CoreHeroAcquaintance
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, t.Table, t.HeroID)

	cmd, err := repository.db.Exec(context, query, heroID)
	if err != nil {
		return dberr.Wrap(err, "delete_acquaintance")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) acquaintanceID(context context.Context, heroID int) (int, error) {
	t := schema.CoreHeroAcquaintance
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, t.ID, t.Table, t.HeroID)

	var id int
	err := repository.db.QueryRow(context, query, heroID).Scan(&id)
	return id, dberr.Wrap(err, "get_acquaintance")
}

func (repository *PostgresRepository) AddLink(context context.Context, heroID int, kind LinkKind, otherID int) error {
	acquaintanceID, err := repository.acquaintanceID(context, heroID)
	if err != nil {
		return err
	}

	link := linkTable(kind)
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		link.Table, link.AcquaintanceID, link.OtherID)

	_, err = repository.db.Exec(context, query, acquaintanceID, otherID)
	return dberr.Wrap(err, "add_acquaintance_"+string(kind))
}

func (repository *PostgresRepository) RemoveLink(context context.Context, heroID int, kind LinkKind, otherID int) error {
	acquaintanceID, err := repository.acquaintanceID(context, heroID)
	if err != nil {
		return err
	}

	link := linkTable(kind)
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = $2`, link.Table, link.AcquaintanceID, link.OtherID)

	cmd, err := repository.db.Exec(context, query, acquaintanceID, otherID)
	if err != nil {
		return dberr.Wrap(err, "remove_acquaintance_"+string(kind))
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
