// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package hero

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

// Handler implements the HTTP layer for heroes.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the /heroes router.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// Public
	router.Get("/", handler.listHeroes)
	router.Get("/{id}", handler.getHero)
	router.Get("/{id}/children", handler.listChildren)
	router.Get("/{id}/acquaintance", handler.getAcquaintance)

	// Authenticated
	router.Group(func(writeRoute chi.Router) {
		writeRoute.Use(middleware.RequireAuth)

		writeRoute.Post("/", handler.createHero)
		writeRoute.Put("/{id}", handler.updateHero)
		writeRoute.Post("/{id}/acquaintance", handler.createAcquaintance)
		writeRoute.Put("/{id}/acquaintance/{kind}/{otherID}", handler.addLink)
		writeRoute.Delete("/{id}/acquaintance/{kind}/{otherID}", handler.removeLink)

		// Moderator
		writeRoute.With(middleware.RequireRole(sec.RoleModerator)).Delete("/{id}", handler.deleteHero)
		writeRoute.With(middleware.RequireRole(sec.RoleModerator)).Delete("/{id}/acquaintance", handler.deleteAcquaintance)
	})

	return router
}

/*
GET /api/v1/heroes.

Request:
  - category_id: int (optional)
  - q: name substring (optional)
  - page, limit

Response:
  - 200: []Hero with pagination meta
*/
func (handler *Handler) listHeroes(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	categoryID, err := requestutil.QueryInt(request, "category_id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	filter := Filter{CategoryID: categoryID, Name: request.URL.Query().Get("q")}
	heroes, total, err := handler.service.ListHeroes(request.Context(), filter, params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, heroes, params.Meta(total))
}

func (handler *Handler) getHero(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	hero, err := handler.service.GetHero(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, hero)
}

/*
POST /api/v1/heroes.

Request:
  - Body: Input

Response:
  - 201: Hero
  - 400: VALIDATION_ERROR
  - 422: UNPROCESSABLE (unknown category or relative)
*/
func (handler *Handler) createHero(writer http.ResponseWriter, request *http.Request) {
	var input Input
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	hero, err := handler.service.CreateHero(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, hero)
}

func (handler *Handler) updateHero(writer http.ResponseWriter, request *http.Request) {
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

	hero, err := handler.service.UpdateHero(request.Context(), id, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, hero)
}

func (handler *Handler) deleteHero(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteHero(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

/*
GET /api/v1/heroes/{id}/children.

Response:
  - 200: []Hero whose father is {id}
  - 404: NOT_FOUND
*/
func (handler *Handler) listChildren(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	children, err := handler.service.Children(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, children)
}

// # Acquaintance

func (handler *Handler) getAcquaintance(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	acquaintance, err := handler.service.GetAcquaintance(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, acquaintance)
}

func (handler *Handler) createAcquaintance(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input AcquaintanceInput
	if request.ContentLength != 0 {
		if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
			respond.Error(writer, request, err)
			return
		}
	}

	acquaintance, err := handler.service.CreateAcquaintance(request.Context(), id, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, acquaintance)
}

func (handler *Handler) deleteAcquaintance(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteAcquaintance(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

/*
PUT /api/v1/heroes/{id}/acquaintance/{kind}/{otherID}.

Request:
  - kind: friends | detractors | antagonists
  - otherID: hero ID (friends, detractors) or villain ID (antagonists)

Response:
  - 204: linked (idempotent)
  - 404: hero has no acquaintance record
  - 422: UNPROCESSABLE (unknown hero or villain)
*/
func (handler *Handler) addLink(writer http.ResponseWriter, request *http.Request) {
	heroID, kind, otherID, err := linkParams(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.AddLink(request.Context(), heroID, kind, otherID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) removeLink(writer http.ResponseWriter, request *http.Request) {
	heroID, kind, otherID, err := linkParams(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.RemoveLink(request.Context(), heroID, kind, otherID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func linkParams(request *http.Request) (int, LinkKind, int, error) {
	heroID, err := requestutil.IntID(request, "id")
	if err != nil {
		return 0, "", 0, err
	}

	kind, ok := ParseLinkKind(requestutil.Param(request, "kind"))
	if !ok {
		return 0, "", 0, validate.FieldError("kind", "Must be one of: friends, detractors, antagonists")
	}

	otherID, err := requestutil.IntID(request, "otherID")
	if err != nil {
		return 0, "", 0, err
	}

	return heroID, kind, otherID, nil
}
