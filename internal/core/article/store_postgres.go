// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package article

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

func articleColumns() string {
	t := schema.CoreArticle
	return fmt.Sprintf("%s, %s, %s, %s, %s", t.ID, t.Headline, t.PubDate, t.ReporterID, t.Slug)
}

func (repository *PostgresRepository) ListArticles(context context.Context, limit, offset int) ([]*Article, int, error) {
	t := schema.CoreArticle

	var total int
	if err := repository.db.QueryRow(context, fmt.Sprintf(`SELECT count(*) FROM %s`, t.Table)).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_articles")
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		ORDER BY %s ASC, %s ASC
		LIMIT $1 OFFSET $2
	`, articleColumns(), t.Table, t.Headline, t.ID)

	rows, err := repository.db.Query(context, query, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_articles")
	}

	articles, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByPos[Article])
	if err != nil {
		return nil, 0, dberr.Wrap(err, "scan_article")
	}
	return articles, total, nil
}

func (repository *PostgresRepository) getOne(context context.Context, action, column string, value any) (*Article, error) {
	t := schema.CoreArticle
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 ORDER BY %s ASC LIMIT 1`, articleColumns(), t.Table, column, t.ID)

	rows, err := repository.db.Query(context, query, value)
	if err != nil {
		return nil, dberr.Wrap(err, action)
	}

	a, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByPos[Article])
	if err != nil {
		return nil, dberr.Wrap(err, action)
	}
	return a, nil
}

func (repository *PostgresRepository) GetArticle(context context.Context, id int) (*Article, error) {
	return repository.getOne(context, "get_article", schema.CoreArticle.ID, id)
}

func (repository *PostgresRepository) GetArticleBySlug(context context.Context, slug string) (*Article, error) {
	return repository.getOne(context, "get_article_by_slug", schema.CoreArticle.Slug, slug)
}

func (repository *PostgresRepository) CreateArticle(context context.Context, a *Article) error {
	t := schema.CoreArticle
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s, %s) VALUES ($1, $2, $3, $4) RETURNING %s`,
		t.Table, t.Headline, t.PubDate, t.ReporterID, t.Slug, t.ID)

	err := repository.db.QueryRow(context, query, a.Headline, a.PubDate, a.ReporterID, a.Slug).Scan(&a.ID)
	return dberr.Wrap(err, "create_article")
}

func (repository *PostgresRepository) UpdateArticle(context context.Context, a *Article) error {
	t := schema.CoreArticle
	query := fmt.Sprintf(`UPDATE %s SET %s = $2, %s = $3, %s = $4, %s = $5 WHERE %s = $1`,
		t.Table, t.Headline, t.PubDate, t.ReporterID, t.Slug, t.ID)

	cmd, err := repository.db.Exec(context, query, a.ID, a.Headline, a.PubDate, a.ReporterID, a.Slug)
	if err != nil {
		return dberr.Wrap(err, "update_article")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) DeleteArticle(context context.Context, id int) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.CoreArticle.Table, schema.CoreArticle.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_article")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
