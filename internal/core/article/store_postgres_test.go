// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

//go:build integration

package article_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/epicdb/internal/core/article"
	"github.com/taibuivan/epicdb/internal/platform/dberr"
	"github.com/taibuivan/epicdb/internal/platform/sec"
	"github.com/taibuivan/epicdb/internal/platform/testdb"
	"github.com/taibuivan/epicdb/internal/users/auth"
	"github.com/taibuivan/epicdb/pkg/uuid"
)

func TestPostgresRepository_Articles(t *testing.T) {
	pool := testdb.New(t)
	ctx := context.Background()

	reporter := &auth.User{
		ID: uuid.New(), Username: "homer", Email: "homer@ionia.gr",
		PasswordHash: "x", Role: sec.RoleMember,
	}
	require.NoError(t, auth.NewUserRepository(pool).Create(ctx, reporter))

	repo := article.NewPostgresRepository(pool)
	pubDate := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	first := &article.Article{Headline: "Zeus wins", PubDate: pubDate, ReporterID: reporter.ID, Slug: "zeus-wins"}
	second := &article.Article{Headline: "Athena speaks", PubDate: pubDate, ReporterID: reporter.ID, Slug: "zeus-wins"}
	require.NoError(t, repo.CreateArticle(ctx, first))
	require.NoError(t, repo.CreateArticle(ctx, second))

	// Slugs are not unique; the oldest row wins.
	got, err := repo.GetArticleBySlug(ctx, "zeus-wins")
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)
	assert.True(t, pubDate.Equal(got.PubDate))

	page, total, err := repo.ListArticles(ctx, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Equal(t, "Athena speaks", page[0].Headline)

	// Unknown reporter breaks the foreign key.
	orphan := &article.Article{Headline: "Lost", PubDate: pubDate, ReporterID: uuid.New(), Slug: "lost"}
	assert.Error(t, repo.CreateArticle(ctx, orphan))

	require.NoError(t, repo.DeleteArticle(ctx, first.ID))
	_, err = repo.GetArticle(ctx, first.ID)
	assert.ErrorIs(t, err, dberr.ErrNotFound)
}
