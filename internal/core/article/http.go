// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package article

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/epicdb/internal/platform/middleware"
	requestutil "github.com/taibuivan/epicdb/internal/platform/request"
	"github.com/taibuivan/epicdb/internal/platform/respond"
	"github.com/taibuivan/epicdb/internal/platform/sec"
	"github.com/taibuivan/epicdb/internal/platform/validate"
	"github.com/taibuivan/epicdb/pkg/pagination"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the /articles router.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listArticles)
	router.Get("/by-slug/{slug}", handler.getArticleBySlug)
	router.Get("/{id}", handler.getArticle)

	router.Group(func(writeRoute chi.Router) {
		writeRoute.Use(middleware.RequireAuth)

		writeRoute.Post("/", handler.createArticle)
		writeRoute.Put("/{id}", handler.updateArticle)
		writeRoute.With(middleware.RequireRole(sec.RoleModerator)).Delete("/{id}", handler.deleteArticle)
	})

	return router
}

func (handler *Handler) listArticles(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	articles, total, err := handler.service.ListArticles(request.Context(), params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Paginated(writer, articles, params.Meta(total))
}

func (handler *Handler) getArticle(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	article, err := handler.service.GetArticle(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, article)
}

/*
GET /api/v1/articles/by-slug/{slug}.

Response: the oldest article with that slug.
*/
func (handler *Handler) getArticleBySlug(writer http.ResponseWriter, request *http.Request) {
	value := requestutil.Param(request, "slug")
	if err := (&validate.Validator{}).Slug("slug", value).Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	article, err := handler.service.GetArticleBySlug(request.Context(), value)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, article)
}

/*
POST /api/v1/articles.

Request body: {"headline": "...", "pub_date": "2026-01-31", "reporter_id": "<uuid>"}

Any slug in the body is rejected; it is derived from the headline.
*/
func (handler *Handler) createArticle(writer http.ResponseWriter, request *http.Request) {
	var input Input
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	article, err := handler.service.CreateArticle(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, article)
}

func (handler *Handler) updateArticle(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Input
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	article, err := handler.service.UpdateArticle(request.Context(), id, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, article)
}

func (handler *Handler) deleteArticle(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteArticle(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
