// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the epicdb HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis.
//  5. Run database migrations (idempotent).
//  6. Wire HTTP handlers.
//  7. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/taibuivan/epicdb/internal/api"
	"github.com/taibuivan/epicdb/internal/core/article"
	"github.com/taibuivan/epicdb/internal/core/entity"
	"github.com/taibuivan/epicdb/internal/core/epic"
	"github.com/taibuivan/epicdb/internal/core/event"
	"github.com/taibuivan/epicdb/internal/core/hero"
	"github.com/taibuivan/epicdb/internal/core/legacy"
	"github.com/taibuivan/epicdb/internal/core/reference"
	"github.com/taibuivan/epicdb/internal/core/villain"
	"github.com/taibuivan/epicdb/internal/platform/cache"
	"github.com/taibuivan/epicdb/internal/platform/config"
	"github.com/taibuivan/epicdb/internal/platform/constants"
	"github.com/taibuivan/epicdb/internal/platform/migration"
	pgstore "github.com/taibuivan/epicdb/internal/platform/postgres"
	redisstore "github.com/taibuivan/epicdb/internal/platform/redis"
	"github.com/taibuivan/epicdb/internal/platform/sec"
	"github.com/taibuivan/epicdb/internal/users/account"
	"github.com/taibuivan/epicdb/internal/users/auth"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	log := rawLog.With(slog.String("app", "epicdb"))
	slog.SetDefault(log)

	log.Info("service_initializing", slog.String("version", constants.AppVersion))

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", "epicdb"))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
	)

	// Misconfiguration fails fast instead of hanging.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing_postgres_pool")
		pool.Close()
	}()

	// ── 4. Redis ──────────────────────────────────────────────────────────
	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("closing_redis_client")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis_close_failed", slog.Any("error", cerr))
		}
	}()

	// ── 5. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// ── 6. Auth Service ───────────────────────────────────────────────────
	jwtSvc, err := sec.NewTokenService(cfg.JWTPrivKeyPath, cfg.JWTPubKeyPath, constants.AuthIssuer)
	must(log, err, "initialize jwt service")

	// ── 7. Health handlers ────────────────────────────────────────────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func() error {
			return pgstore.Ping(context.Background(), pool)
		},
		CheckCache: func() error {
			return redisstore.Ping(context.Background(), rdb)
		},
	}, log)

	// ── 8. Domain Wiring ──────────────────────────────────────────────────
	referenceCache := cache.New(rdb, cfg.CacheTTL, log)

	authService := auth.NewService(auth.NewUserRepository(pool), jwtSvc, log)
	accountService := account.NewService(account.NewRepository(pool), log)
	referenceService := reference.NewService(reference.NewPostgresRepository(pool), referenceCache, log)
	entityService := entity.NewService(entity.NewPostgresRepository(pool))
	heroService := hero.NewService(hero.NewPostgresRepository(pool), log)
	villainService := villain.NewService(villain.NewPostgresRepository(pool), log)
	epicService := epic.NewService(epic.NewPostgresRepository(pool), log)
	eventService := event.NewService(event.NewPostgresRepository(pool), log)
	articleService := article.NewService(article.NewPostgresRepository(pool), log)
	legacyService := legacy.NewService(legacy.NewPostgresRepository(pool), log)

	// ── 9. HTTP Server ────────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Auth:      auth.NewHandler(authService),
		Account:   account.NewHandler(accountService),
		Reference: reference.NewHandler(referenceService),
		Entity:    entity.NewHandler(entityService),
		Hero:      hero.NewHandler(heroService),
		Villain:   villain.NewHandler(villainService),
		Epic:      epic.NewHandler(epicService),
		Event:     event.NewHandler(eventService),
		Article:   article.NewHandler(articleService),
		Legacy:    legacy.NewHandler(legacyService),
	}

	// Cancelled at shutdown to stop the rate limiter's eviction loop.
	serverCtx, serverCancel := context.WithCancel(context.Background())
	defer serverCancel()

	server := api.NewServer(serverCtx, cfg, log, jwtSvc, handlers)

	// ── 10. Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case sig := <-quit:
		log.Info("shutdown_signal_received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server_startup_failed", slog.Any("error", err))
	}

	shutdownTimeout := constants.ShutdownTimeout
	log.Info("server_shutting_down", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown_failed", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server_stopped")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
// It is limited to startup wiring.
func must(log *slog.Logger, err error, step string) {
	if err != nil {
		log.Error("startup_failure",
			slog.String("step", step),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
