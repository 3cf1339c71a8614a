// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package article_test

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/epicdb/internal/core/article"
	"github.com/taibuivan/epicdb/internal/platform/apperr"
	"github.com/taibuivan/epicdb/internal/platform/dberr"
	"github.com/taibuivan/epicdb/internal/platform/sec"
	"github.com/taibuivan/epicdb/internal/platform/testutil"
)

type memoryRepository struct {
	articles []*article.Article
}

func (m *memoryRepository) ListArticles(_ context.Context, _, _ int) ([]*article.Article, int, error) {
	return m.articles, len(m.articles), nil
}

func (m *memoryRepository) find(match func(*article.Article) bool) (*article.Article, error) {
	for _, a := range m.articles {
		if match(a) {
			return a, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (m *memoryRepository) GetArticle(_ context.Context, id int) (*article.Article, error) {
	return m.find(func(a *article.Article) bool { return a.ID == id })
}

func (m *memoryRepository) GetArticleBySlug(_ context.Context, slug string) (*article.Article, error) {
	return m.find(func(a *article.Article) bool { return a.Slug == slug })
}

func (m *memoryRepository) CreateArticle(_ context.Context, a *article.Article) error {
	a.ID = len(m.articles) + 1
	m.articles = append(m.articles, a)
	return nil
}

func (m *memoryRepository) UpdateArticle(_ context.Context, a *article.Article) error {
	for i, stored := range m.articles {
		if stored.ID == a.ID {
			m.articles[i] = a
			return nil
		}
	}
	return dberr.ErrNotFound
}

func (m *memoryRepository) DeleteArticle(_ context.Context, id int) error {
	for i, stored := range m.articles {
		if stored.ID == id {
			m.articles = append(m.articles[:i], m.articles[i+1:]...)
			return nil
		}
	}
	return dberr.ErrNotFound
}

func newService() *article.Service {
	return article.NewService(&memoryRepository{}, testutil.Logger())
}

/*
TestArticle_SlugOnSave derives the slug from the headline on create and update.
*/
func TestArticle_SlugOnSave(t *testing.T) {
	service := newService()
	ctx := context.Background()

	created, err := service.CreateArticle(ctx, article.Input{
		Headline:   "Hero Saves the Day!",
		PubDate:    "2026-03-01",
		ReporterID: testutil.UserID,
	})
	require.NoError(t, err)
	assert.Equal(t, "hero-saves-the-day", created.Slug)
	assert.Equal(t, "Hero Saves the Day!", created.String())
	assert.Equal(t, 2026, created.PubDate.Year())

	updated, err := service.UpdateArticle(ctx, created.ID, article.Input{
		Headline:   "Héros sauvé à Zeus's temple",
		PubDate:    "2026-03-02",
		ReporterID: testutil.UserID,
	})
	require.NoError(t, err)
	assert.Equal(t, "heros-sauve-a-zeuss-temple", updated.Slug)

	got, err := service.GetArticleBySlug(ctx, "heros-sauve-a-zeuss-temple")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
}

/*
TestArticle_SlugLength caps the slug at the column width.
*/
func TestArticle_SlugLength(t *testing.T) {
	service := newService()

	created, err := service.CreateArticle(context.Background(), article.Input{
		Headline:   strings.Repeat("titan ", 16),
		PubDate:    "2026-03-01",
		ReporterID: testutil.UserID,
	})
	require.NoError(t, err)
	assert.LessOrEqual(t, len(created.Slug), article.MaxSlugLength)
	assert.False(t, strings.HasSuffix(created.Slug, "-"))
}

/*
TestArticle_Validation reports every invalid field at once.
*/
func TestArticle_Validation(t *testing.T) {
	service := newService()

	_, err := service.CreateArticle(context.Background(), article.Input{
		Headline:   strings.Repeat("x", article.MaxHeadlineLength+1),
		PubDate:    "01/03/2026",
		ReporterID: "nobody",
	})
	ae := apperr.As(err)
	require.NotNil(t, ae)

	fields := []string{}
	for _, detail := range ae.Details {
		fields = append(fields, detail.Field)
	}
	assert.ElementsMatch(t, []string{article.FieldHeadline, article.FieldPubDate, article.FieldReporterID}, fields)

	_, err = service.UpdateArticle(context.Background(), 5, article.Input{Headline: "x", PubDate: "2026-01-01", ReporterID: testutil.UserID})
	assert.Equal(t, "Article not found", err.Error())
}

/*
TestHandler_ArticleRoutes defaults the reporter to the caller and rejects client slugs.
*/
func TestHandler_ArticleRoutes(t *testing.T) {
	routes := article.NewHandler(newService()).Routes()

	rec := testutil.Do(routes, http.MethodPost, "/", `{"headline":"Titans Fall","pub_date":"2026-01-01","slug":"mine"}`, sec.RoleMember)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = testutil.Do(routes, http.MethodPost, "/", `{"headline":"Titans Fall","pub_date":"2026-01-01"}`, sec.RoleMember)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"pub_date":"2026-01-01"`)
	created := testutil.Data[article.Article](t, rec)
	assert.Equal(t, testutil.UserID, created.ReporterID)
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), created.PubDate)

	rec = testutil.Do(routes, http.MethodGet, "/by-slug/titans-fall", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, created.ID, testutil.Data[article.Article](t, rec).ID)

	rec = testutil.Do(routes, http.MethodGet, "/by-slug/Not%20A%20Slug", "", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = testutil.Do(routes, http.MethodGet, "/3000000000", "", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

/*
TestArticle_JSONDate writes pub_date in the DATE layout and reads it back.
*/
func TestArticle_JSONDate(t *testing.T) {
	original := article.Article{
		ID:         3,
		Headline:   "Zeus wins",
		PubDate:    time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		ReporterID: testutil.UserID,
		Slug:       "zeus-wins",
	}

	data, err := json.Marshal(original)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"pub_date":"2024-03-01"`)

	var decoded article.Article
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, original, decoded)

	assert.Error(t, json.Unmarshal([]byte(`{"pub_date":"2024-03-01T00:00:00Z"}`), &decoded))
}
