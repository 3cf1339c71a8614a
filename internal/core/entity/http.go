// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package entity

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/epicdb/internal/platform/respond"
	"github.com/taibuivan/epicdb/pkg/pagination"
)

// Handler serves the read-only /entities listing.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.listEntities)
	return router
}

/*
GET /api/v1/entities.

Request:
  - kind: "hero" or "villain" (optional)
  - q: name substring (optional)
  - page, limit

Response:
  - 200: []AllEntity with pagination meta
*/
func (handler *Handler) listEntities(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)
	filter := Filter{
		Kind: Kind(request.URL.Query().Get("kind")),
		Name: request.URL.Query().Get("q"),
	}

	entities, total, err := handler.service.ListAll(request.Context(), filter, params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, entities, params.Meta(total))
}
