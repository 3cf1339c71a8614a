// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package villain

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

func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listVillains)
	router.Get("/{id}", handler.getVillain)

	router.Group(func(writeRoute chi.Router) {
		writeRoute.Use(middleware.RequireAuth)

		writeRoute.Post("/", handler.createVillain)
		writeRoute.Put("/{id}", handler.updateVillain)
		writeRoute.With(middleware.RequireRole(sec.RoleModerator)).Delete("/{id}", handler.deleteVillain)
	})

	return router
}

/*
GET /api/v1/villains.

Request:
  - category_id, origin_id: int (optional)
  - q: name or alternative name substring (optional)
  - page, limit
*/
func (handler *Handler) listVillains(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	categoryID, err := requestutil.QueryInt(request, "category_id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	originID, err := requestutil.QueryInt(request, "origin_id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	filter := Filter{CategoryID: categoryID, OriginID: originID, Name: request.URL.Query().Get("q")}
	villains, total, err := handler.service.ListVillains(request.Context(), filter, params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, villains, params.Meta(total))
}

func (handler *Handler) getVillain(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	villain, err := handler.service.GetVillain(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, villain)
}

func (handler *Handler) createVillain(writer http.ResponseWriter, request *http.Request) {
	var input Input
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	villain, err := handler.service.CreateVillain(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, villain)
}

func (handler *Handler) updateVillain(writer http.ResponseWriter, request *http.Request) {
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

	villain, err := handler.service.UpdateVillain(request.Context(), id, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, villain)
}

func (handler *Handler) deleteVillain(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteVillain(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
