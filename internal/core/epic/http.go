// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package epic

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

// Handler implements the HTTP layer for epics.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the /epics router.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listEpics)
	router.Get("/{id}", handler.getEpic)

	router.Group(func(writeRoute chi.Router) {
		writeRoute.Use(middleware.RequireAuth)

		writeRoute.Post("/", handler.createEpic)
		writeRoute.Put("/{id}", handler.updateEpic)
		writeRoute.Put("/{id}/{role}/{otherID}", handler.addParticipant)
		writeRoute.Delete("/{id}/{role}/{otherID}", handler.removeParticipant)

		writeRoute.With(middleware.RequireRole(sec.RoleModerator)).Delete("/{id}", handler.deleteEpic)
	})

	return router
}

/*
GET /api/v1/epics.

Request:
  - q: name substring (optional)
  - page, limit
*/
func (handler *Handler) listEpics(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	epics, total, err := handler.service.ListEpics(request.Context(), request.URL.Query().Get("q"), params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Paginated(writer, epics, params.Meta(total))
}

func (handler *Handler) getEpic(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	epic, err := handler.service.GetEpic(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, epic)
}

/*
POST /api/v1/epics.

Request body: {"name": "...", "hero_ids": [1, 2], "villain_ids": [3]}
*/
func (handler *Handler) createEpic(writer http.ResponseWriter, request *http.Request) {
	var input Input
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	epic, err := handler.service.CreateEpic(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, epic)
}

func (handler *Handler) updateEpic(writer http.ResponseWriter, request *http.Request) {
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

	epic, err := handler.service.UpdateEpic(request.Context(), id, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, epic)
}

func (handler *Handler) deleteEpic(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteEpic(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

/*
PUT /api/v1/epics/{id}/{role}/{otherID}.

role is "heroes" or "villains".
*/
func (handler *Handler) addParticipant(writer http.ResponseWriter, request *http.Request) {
	epicID, role, otherID, err := participantParams(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.AddParticipant(request.Context(), epicID, role, otherID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) removeParticipant(writer http.ResponseWriter, request *http.Request) {
	epicID, role, otherID, err := participantParams(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.RemoveParticipant(request.Context(), epicID, role, otherID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func participantParams(request *http.Request) (int, Role, int, error) {
	epicID, err := requestutil.IntID(request, "id")
	if err != nil {
		return 0, "", 0, err
	}

	role, ok := ParseRole(requestutil.Param(request, "role"))
	if !ok {
		return 0, "", 0, validate.FieldError("role", "Must be heroes or villains")
	}

	otherID, err := requestutil.IntID(request, "otherID")
	if err != nil {
		return 0, "", 0, err
	}
	return epicID, role, otherID, nil
}
