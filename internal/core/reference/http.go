// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package reference

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/epicdb/internal/platform/middleware"
	requestutil "github.com/taibuivan/epicdb/internal/platform/request"
	"github.com/taibuivan/epicdb/internal/platform/respond"
	"github.com/taibuivan/epicdb/internal/platform/sec"
	"github.com/taibuivan/epicdb/pkg/pagination"
)

// Handler implements the HTTP layer for categories and origins.
//
// # Access Control
//
//   - Public: listing and reading.
//   - Authenticated: create and rename.
//   - Moderator: delete (cascades to characters).
type Handler struct {
	service *Service
}

// NewHandler constructs a new reference [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] serving /categories and /origins.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Route("/categories", func(categoryRoute chi.Router) {
		categoryRoute.Get("/", handler.listCategories)
		categoryRoute.Get("/{id}", handler.getCategory)

		categoryRoute.Group(func(writeRoute chi.Router) {
			writeRoute.Use(middleware.RequireAuth)

			writeRoute.Post("/", handler.createCategory)
			writeRoute.Put("/{id}", handler.updateCategory)
			writeRoute.With(middleware.RequireRole(sec.RoleModerator)).Delete("/{id}", handler.deleteCategory)
		})
	})

	router.Route("/origins", func(originRoute chi.Router) {
		originRoute.Get("/", handler.listOrigins)
		originRoute.Get("/{id}", handler.getOrigin)

		originRoute.Group(func(writeRoute chi.Router) {
			writeRoute.Use(middleware.RequireAuth)

			writeRoute.Post("/", handler.createOrigin)
			writeRoute.Put("/{id}", handler.updateOrigin)
			writeRoute.With(middleware.RequireRole(sec.RoleModerator)).Delete("/{id}", handler.deleteOrigin)
		})
	})

	return router
}

// # Categories

/*
GET /api/v1/categories.

Request:
  - page, limit: query parameters

Response:
  - 200: []Category with pagination meta
*/
func (handler *Handler) listCategories(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	categories, total, err := handler.service.ListCategories(request.Context(), params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, categories, params.Meta(total))
}

/*
GET /api/v1/categories/{id}.

Response:
  - 200: Category
  - 404: NOT_FOUND
*/
func (handler *Handler) getCategory(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	category, err := handler.service.GetCategory(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, category)
}

func (handler *Handler) createCategory(writer http.ResponseWriter, request *http.Request) {
	var input Category
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateCategory(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) updateCategory(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Category
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateCategory(request.Context(), id, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, input)
}

func (handler *Handler) deleteCategory(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteCategory(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

// # Origins

func (handler *Handler) listOrigins(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	origins, total, err := handler.service.ListOrigins(request.Context(), params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, origins, params.Meta(total))
}

func (handler *Handler) getOrigin(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	origin, err := handler.service.GetOrigin(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, origin)
}

func (handler *Handler) createOrigin(writer http.ResponseWriter, request *http.Request) {
	var input Origin
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateOrigin(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) updateOrigin(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Origin
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateOrigin(request.Context(), id, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, input)
}

func (handler *Handler) deleteOrigin(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteOrigin(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
