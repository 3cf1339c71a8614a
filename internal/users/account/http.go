// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/epicdb/internal/platform/middleware"
	requestutil "github.com/taibuivan/epicdb/internal/platform/request"
	"github.com/taibuivan/epicdb/internal/platform/respond"
)

// Handler implements the /users endpoints.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the /users router.
//
// # Endpoints
//   - GET /{id}        : Public profile.
//   - GET /{id}/parent : Parent record.
//   - PUT /{id}/parent : Create or replace the parent record (owner or admin).
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/{id}", handler.getUser)
	router.Get("/{id}/parent", handler.getParent)
	router.With(middleware.RequireAuth).Put("/{id}/parent", handler.setParent)

	return router
}

func (handler *Handler) getUser(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.UUID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.service.GetUser(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, user)
}

func (handler *Handler) getParent(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.UUID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	parent, err := handler.service.GetParent(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, parent)
}

/*
PUT /api/v1/users/{id}/parent

Request body: {"father_name": "...", "mother_name": "..."}
*/
func (handler *Handler) setParent(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.UUID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input ParentInput
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	parent, err := handler.service.SetParent(request.Context(), id, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, parent)
}
