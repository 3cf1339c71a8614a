// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package legacy

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/epicdb/internal/platform/middleware"
	requestutil "github.com/taibuivan/epicdb/internal/platform/request"
	"github.com/taibuivan/epicdb/internal/platform/respond"
	"github.com/taibuivan/epicdb/internal/platform/sec"
	"github.com/taibuivan/epicdb/pkg/pagination"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// TempUserRoutes returns the read-only /temp-users router.
func (handler *Handler) TempUserRoutes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.listTempUsers)
	return router
}

// ColumnNameRoutes returns the /column-names router.
func (handler *Handler) ColumnNameRoutes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listColumnNames)
	router.Get("/{id}", handler.getColumnName)

	router.Group(func(writeRoute chi.Router) {
		writeRoute.Use(middleware.RequireAuth)

		writeRoute.Post("/", handler.createColumnName)
		writeRoute.With(middleware.RequireRole(sec.RoleModerator)).Delete("/{id}", handler.deleteColumnName)
	})

	return router
}

func (handler *Handler) listTempUsers(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	users, total, err := handler.service.ListTempUsers(request.Context(), params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Paginated(writer, users, params.Meta(total))
}

func (handler *Handler) listColumnNames(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	items, total, err := handler.service.ListColumnNames(request.Context(), params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Paginated(writer, items, params.Meta(total))
}

func (handler *Handler) getColumnName(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	item, err := handler.service.GetColumnName(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, item)
}

func (handler *Handler) createColumnName(writer http.ResponseWriter, request *http.Request) {
	var input ColumnNameInput
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	item, err := handler.service.CreateColumnName(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, item)
}

func (handler *Handler) deleteColumnName(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteColumnName(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
