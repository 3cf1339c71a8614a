// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package article

import "context"

// Repository defines the data access contract for articles.
type Repository interface {

	// ListArticles returns a page ordered by headline and the total count.
	ListArticles(context context.Context, limit, offset int) ([]*Article, int, error)

	GetArticle(context context.Context, id int) (*Article, error)

	// GetArticleBySlug returns the oldest article carrying slug.
	GetArticleBySlug(context context.Context, slug string) (*Article, error)

	CreateArticle(context context.Context, a *Article) error

	UpdateArticle(context context.Context, a *Article) error

	DeleteArticle(context context.Context, id int) error
}
