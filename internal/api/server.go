// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/taibuivan/epicdb/internal/core/article"
	"github.com/taibuivan/epicdb/internal/core/entity"
	"github.com/taibuivan/epicdb/internal/core/epic"
	"github.com/taibuivan/epicdb/internal/core/event"
	"github.com/taibuivan/epicdb/internal/core/hero"
	"github.com/taibuivan/epicdb/internal/core/legacy"
	"github.com/taibuivan/epicdb/internal/core/reference"
	"github.com/taibuivan/epicdb/internal/core/villain"
	"github.com/taibuivan/epicdb/internal/platform/config"
	"github.com/taibuivan/epicdb/internal/platform/constants"
	"github.com/taibuivan/epicdb/internal/platform/middleware"
	"github.com/taibuivan/epicdb/internal/users/account"
	"github.com/taibuivan/epicdb/internal/users/auth"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
type Handlers struct {
	// Liveness is the /health handler. It returns 200 while the process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler. It returns 200 when all deps are healthy.
	Readiness http.HandlerFunc

	Auth    *auth.Handler
	Account *account.Handler

	// Reference serves categories and origins.
	Reference *reference.Handler

	Entity  *entity.Handler
	Hero    *hero.Handler
	Villain *villain.Handler
	Epic    *epic.Handler
	Event   *event.Handler
	Article *article.Handler

	// Legacy serves temp users and column names.
	Legacy *legacy.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, verifier middleware.TokenVerifier, h Handlers) *Server {
	r := NewRouter(context, cfg, log, verifier, h)

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// NewRouter builds the middleware chain and mounts every route group.
func NewRouter(context context.Context, cfg middleware.AppConfig, log *slog.Logger, verifier middleware.TokenVerifier, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(context, constants.DefaultRateLimitRPS, constants.DefaultRateLimitBurst))
	r.Use(middleware.PanicRecovery())
	r.Use(middleware.Authenticate(verifier))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Application API
	r.Route("/api/v1", func(api chi.Router) {
		api.Mount("/auth", h.Auth.Routes())
		api.Mount("/users", h.Account.Routes())
		api.Mount("/entities", h.Entity.Routes())
		api.Mount("/heroes", h.Hero.Routes())
		api.Mount("/villains", h.Villain.Routes())
		api.Mount("/epics", h.Epic.Routes())
		api.Mount("/events", h.Event.Routes())
		api.Mount("/articles", h.Article.Routes())
		api.Mount("/temp-users", h.Legacy.TempUserRoutes())
		api.Mount("/column-names", h.Legacy.ColumnNameRoutes())
		api.Mount("/", h.Reference.Routes())
	})

	return r
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server_starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
