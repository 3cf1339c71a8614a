// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package event

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/epicdb/internal/platform/middleware"
	requestutil "github.com/taibuivan/epicdb/internal/platform/request"
	"github.com/taibuivan/epicdb/internal/platform/respond"
	"github.com/taibuivan/epicdb/internal/platform/sec"
	"github.com/taibuivan/epicdb/pkg/pagination"
)

// Handler implements the HTTP layer for events.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the /events router.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listEvents)
	router.Get("/{id}", handler.getEvent)
	router.Get("/{id}/heroes", handler.listParticipants)

	router.Group(func(writeRoute chi.Router) {
		writeRoute.Use(middleware.RequireAuth)

		writeRoute.Post("/", handler.createEvent)
		writeRoute.Put("/{id}", handler.updateEvent)
		writeRoute.Post("/{id}/heroes", handler.addParticipant)
		writeRoute.Delete("/{id}/heroes/{participantID}", handler.removeParticipant)

		writeRoute.With(middleware.RequireRole(sec.RoleModerator)).Delete("/{id}", handler.deleteEvent)
	})

	return router
}

/*
GET /api/v1/events.

Request:
  - epic_id: int (optional)
  - page, limit
*/
func (handler *Handler) listEvents(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	epicID, err := requestutil.QueryInt(request, "epic_id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	events, total, err := handler.service.ListEvents(request.Context(), Filter{EpicID: epicID}, params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Paginated(writer, events, params.Meta(total))
}

func (handler *Handler) getEvent(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.UUID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	event, err := handler.service.GetEvent(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, event)
}

func (handler *Handler) createEvent(writer http.ResponseWriter, request *http.Request) {
	var input Input
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	event, err := handler.service.CreateEvent(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, event)
}

func (handler *Handler) updateEvent(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.UUID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Input
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	event, err := handler.service.UpdateEvent(request.Context(), id, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, event)
}

func (handler *Handler) deleteEvent(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.UUID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteEvent(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) listParticipants(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.UUID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	participants, err := handler.service.ListParticipants(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, participants)
}

/*
POST /api/v1/events/{id}/heroes.

Request body: {"hero_id": 1, "is_primary": true}
*/
func (handler *Handler) addParticipant(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.UUID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input ParticipantInput
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	participant, err := handler.service.AddParticipant(request.Context(), id, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, participant)
}

func (handler *Handler) removeParticipant(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.UUID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	participantID, err := requestutil.IntID(request, "participantID")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.RemoveParticipant(request.Context(), id, participantID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
