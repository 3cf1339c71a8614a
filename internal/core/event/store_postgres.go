// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package event

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/epicdb/internal/platform/database/schema"
	"github.com/taibuivan/epicdb/internal/platform/dberr"
)

// PostgresRepository implements [Repository] on core.event and core.eventhero.
type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func eventColumns() string {
	t := schema.CoreEvent
	return fmt.Sprintf("%s, %s, %s, %s", t.ID, t.EpicID, t.Details, t.YearsAgo)
}

func (repository *PostgresRepository) ListEvents(context context.Context, filter Filter, limit, offset int) ([]*Event, int, error) {
	t := schema.CoreEvent

	where := ""
	var args []any
	if filter.EpicID != nil {
		args = append(args, *filter.EpicID)
		where = fmt.Sprintf(" WHERE %s = $1", t.EpicID)
	}

	var total int
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s%s`, t.Table, where)
	if err := repository.db.QueryRow(context, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_events")
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s%s
		ORDER BY %s DESC, %s ASC
		LIMIT $%d OFFSET $%d
	`, eventColumns(), t.Table, where, t.YearsAgo, t.ID, len(args)+1, len(args)+2)

	rows, err := repository.db.Query(context, query, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_events")
	}

	events, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByPos[Event])
	if err != nil {
		return nil, 0, dberr.Wrap(err, "scan_event")
	}
	return events, total, nil
}

func (repository *PostgresRepository) GetEvent(context context.Context, id string) (*Event, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, eventColumns(), schema.CoreEvent.Table, schema.CoreEvent.ID)

	rows, err := repository.db.Query(context, query, id)
	if err != nil {
		return nil, dberr.Wrap(err, "get_event")
	}

	e, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByPos[Event])
	if err != nil {
		return nil, dberr.Wrap(err, "get_event")
	}
	return e, nil
}

func (repository *PostgresRepository) CreateEvent(context context.Context, e *Event) error {
	t := schema.CoreEvent
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s, %s) VALUES ($1, $2, $3, $4)`,
		t.Table, t.ID, t.EpicID, t.Details, t.YearsAgo)

	_, err := repository.db.Exec(context, query, e.ID, e.EpicID, e.Details, e.YearsAgo)
	return dberr.Wrap(err, "create_event")
}

func (repository *PostgresRepository) UpdateEvent(context context.Context, e *Event) error {
	t := schema.CoreEvent
	query := fmt.Sprintf(`UPDATE %s SET %s = $2, %s = $3, %s = $4 WHERE %s = $1`,
		t.Table, t.EpicID, t.Details, t.YearsAgo, t.ID)

	cmd, err := repository.db.Exec(context, query, e.ID, e.EpicID, e.Details, e.YearsAgo)
	if err != nil {
		return dberr.Wrap(err, "update_event")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) DeleteEvent(context context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.CoreEvent.Table, schema.CoreEvent.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_event")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

// # Participants

func (repository *PostgresRepository) ListParticipants(context context.Context, eventID string) ([]*Participant, error) {
	t := schema.CoreEventHero
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
		ORDER BY %s DESC, %s ASC
	`, t.ID, t.EventID, t.HeroID, t.IsPrimary, t.Table, t.EventID, t.IsPrimary, t.ID)

	rows, err := repository.db.Query(context, query, eventID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_event_heroes")
	}

	participants, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByPos[Participant])
	if err != nil {
		return nil, dberr.Wrap(err, "scan_event_hero")
	}
	return participants, nil
}

func (repository *PostgresRepository) AddParticipant(context context.Context, p *Participant) error {
	t := schema.CoreEventHero
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s) VALUES ($1, $2, $3) RETURNING %s`,
		t.Table, t.EventID, t.HeroID, t.IsPrimary, t.ID)

	err := repository.db.QueryRow(context, query, p.EventID, p.HeroID, p.IsPrimary).Scan(&p.ID)
	return dberr.Wrap(err, "add_event_hero")
}

func (repository *PostgresRepository) RemoveParticipant(context context.Context, eventID string, participantID int) error {
	t := schema.CoreEventHero
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = $2`, t.Table, t.EventID, t.ID)

	cmd, err := repository.db.Exec(context, query, eventID, participantID)
	if err != nil {
		return dberr.Wrap(err, "remove_event_hero")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
