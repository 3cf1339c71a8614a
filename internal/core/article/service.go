// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package article

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/taibuivan/epicdb/internal/platform/ctxutil"
	"github.com/taibuivan/epicdb/internal/platform/dberr"
	"github.com/taibuivan/epicdb/internal/platform/validate"
	"github.com/taibuivan/epicdb/pkg/pagination"
	"github.com/taibuivan/epicdb/pkg/pointer"
	"github.com/taibuivan/epicdb/pkg/slug"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (service *Service) ListArticles(context context.Context, params pagination.Params) ([]*Article, int, error) {
	return service.repo.ListArticles(context, params.Limit, params.Offset())
}

func (service *Service) GetArticle(context context.Context, id int) (*Article, error) {
	article, err := service.repo.GetArticle(context, id)
	if err != nil {
		return nil, dberr.NotFound(err, "Article")
	}
	return article, nil
}

func (service *Service) GetArticleBySlug(context context.Context, value string) (*Article, error) {
	article, err := service.repo.GetArticleBySlug(context, value)
	if err != nil {
		return nil, dberr.NotFound(err, "Article")
	}
	return article, nil
}

/*
CreateArticle validates input, derives the slug from the headline and
persists the article.

Returns UNPROCESSABLE if the reporter account does not exist.
*/
func (service *Service) CreateArticle(context context.Context, input Input) (*Article, error) {
	article, err := build(context, 0, input)
	if err != nil {
		return nil, err
	}

	if err := service.repo.CreateArticle(context, article); err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "article_created", slog.Int("article_id", article.ID), slog.String("slug", article.Slug))
	return article, nil
}

// UpdateArticle replaces article id. The slug follows the new headline.
func (service *Service) UpdateArticle(context context.Context, id int, input Input) (*Article, error) {
	article, err := build(context, id, input)
	if err != nil {
		return nil, err
	}

	if err := service.repo.UpdateArticle(context, article); err != nil {
		return nil, dberr.NotFound(err, "Article")
	}

	service.logger.InfoContext(context, "article_updated", slog.Int("article_id", id), slog.String("slug", article.Slug))
	return article, nil
}

func (service *Service) DeleteArticle(context context.Context, id int) error {
	if err := service.repo.DeleteArticle(context, id); err != nil {
		return dberr.NotFound(err, "Article")
	}

	service.logger.WarnContext(context, "article_deleted", slog.Int("article_id", id))
	return nil
}

func build(context context.Context, id int, input Input) (*Article, error) {
	article := &Article{
		ID:         id,
		Headline:   strings.TrimSpace(input.Headline),
		ReporterID: input.ReporterID,
	}
	if article.ReporterID == "" {
		article.ReporterID = pointer.Val(ctxutil.GetUserID(context))
	}

	validator := &validate.Validator{}
	validator.
		Required(FieldHeadline, article.Headline).
		MaxLen(FieldHeadline, article.Headline, MaxHeadlineLength).
		Required(FieldPubDate, input.PubDate).
		UUID(FieldReporterID, article.ReporterID)

	if input.PubDate != "" {
		pubDate, err := time.Parse(DateLayout, input.PubDate)
		validator.Custom(FieldPubDate, err != nil, "Must be a date in YYYY-MM-DD format")
		article.PubDate = pubDate
	}

	article.Slug = slug.FromMax(article.Headline, MaxSlugLength)

	if err := validator.Err(); err != nil {
		return nil, err
	}
	return article, nil
}
