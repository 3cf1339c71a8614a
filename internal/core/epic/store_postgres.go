// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package epic

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/epicdb/internal/platform/database/schema"
	"github.com/taibuivan/epicdb/internal/platform/dberr"
	"github.com/taibuivan/epicdb/internal/platform/postgres"
)

// PostgresRepository implements [Repository] on core.epic, core.epichero
// and core.epicvillain.
type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func linkTable(role Role) schema.EpicLinkTable {
	if role == RoleVillain {
		return schema.CoreEpicVillain
	}
	return schema.CoreEpicHero
}

func participantSubquery(link schema.EpicLinkTable) string {
	return fmt.Sprintf(`COALESCE((SELECT array_agg(%s ORDER BY %s) FROM %s WHERE %s = e.%s), '{}')`,
		link.OtherID, link.OtherID, link.Table, link.EpicID, schema.CoreEpic.ID)
}

func selectEpics() string {
	t := schema.CoreEpic
	return fmt.Sprintf(`SELECT e.%s, e.%s, %s, %s FROM %s e`,
		t.ID, t.Name, participantSubquery(schema.CoreEpicHero), participantSubquery(schema.CoreEpicVillain), t.Table)
}

func scanEpic(row pgx.Row) (*Epic, error) {
	e := &Epic{}
	err := row.Scan(&e.ID, &e.Name, &e.HeroIDs, &e.VillainIDs)
	return e, err
}

func (repository *PostgresRepository) ListEpics(context context.Context, name string, limit, offset int) ([]*Epic, int, error) {
	t := schema.CoreEpic

	where := ""
	var args []any
	if name != "" {
		args = append(args, "%"+name+"%")
		where = fmt.Sprintf(" WHERE e.%s ILIKE $1", t.Name)
	}

	var total int
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s e%s`, t.Table, where)
	if err := repository.db.QueryRow(context, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_epics")
	}

	query := fmt.Sprintf(`%s%s ORDER BY e.%s ASC, e.%s ASC LIMIT $%d OFFSET $%d`,
		selectEpics(), where, t.Name, t.ID, len(args)+1, len(args)+2)

	rows, err := repository.db.Query(context, query, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_epics")
	}
	defer rows.Close()

	epics := []*Epic{}
	for rows.Next() {
		e, err := scanEpic(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_epic")
		}
		epics = append(epics, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "list_epics")
	}
	return epics, total, nil
}

func (repository *PostgresRepository) GetEpic(context context.Context, id int) (*Epic, error) {
	query := fmt.Sprintf(`%s WHERE e.%s = $1`, selectEpics(), schema.CoreEpic.ID)

	e, err := scanEpic(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_epic")
	}
	return e, nil
}

func (repository *PostgresRepository) CreateEpic(context context.Context, e *Epic) error {
	err := postgres.WithTx(context, repository.db, func(tx pgx.Tx) error {
		t := schema.CoreEpic
		query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES ($1) RETURNING %s`, t.Table, t.Name, t.ID)
		if err := tx.QueryRow(context, query, e.Name).Scan(&e.ID); err != nil {
			return err
		}

		seeds := []struct {
			link schema.EpicLinkTable
			ids  []int
		}{
			{schema.CoreEpicHero, e.HeroIDs},
			{schema.CoreEpicVillain, e.VillainIDs},
		}
		for _, seed := range seeds {
			if len(seed.ids) == 0 {
				continue
			}
			insert := fmt.Sprintf(`
				INSERT INTO %s (%s, %s)
				SELECT $1, unnest($2::int[])
				ON CONFLICT DO NOTHING
			`, seed.link.Table, seed.link.EpicID, seed.link.OtherID)
			if _, err := tx.Exec(context, insert, e.ID, seed.ids); err != nil {
				return err
			}
		}
		return nil
	})
	return dberr.Wrap(err, "create_epic")
}

func (repository *PostgresRepository) UpdateEpic(context context.Context, e *Epic) error {
	t := schema.CoreEpic
	query := fmt.Sprintf(`UPDATE %s SET %s = $2 WHERE %s = $1`, t.Table, t.Name, t.ID)

	cmd, err := repository.db.Exec(context, query, e.ID, e.Name)
	if err != nil {
		return dberr.Wrap(err, "update_epic")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) DeleteEpic(context context.Context, id int) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.CoreEpic.Table, schema.CoreEpic.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_epic")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) AddParticipant(context context.Context, epicID int, role Role, otherID int) error {
	link := linkTable(role)
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		link.Table, link.EpicID, link.OtherID)

	_, err := repository.db.Exec(context, query, epicID, otherID)
	return dberr.Wrap(err, "add_epic_"+string(role))
}

func (repository *PostgresRepository) RemoveParticipant(context context.Context, epicID int, role Role, otherID int) error {
	link := linkTable(role)
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = $2`, link.Table, link.EpicID, link.OtherID)

	cmd, err := repository.db.Exec(context, query, epicID, otherID)
	if err != nil {
		return dberr.Wrap(err, "remove_epic_"+string(role))
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
