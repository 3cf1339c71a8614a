// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/epicdb/internal/api"
	"github.com/taibuivan/epicdb/internal/core/article"
	"github.com/taibuivan/epicdb/internal/core/entity"
	"github.com/taibuivan/epicdb/internal/core/epic"
	"github.com/taibuivan/epicdb/internal/core/event"
	"github.com/taibuivan/epicdb/internal/core/hero"
	"github.com/taibuivan/epicdb/internal/core/legacy"
	"github.com/taibuivan/epicdb/internal/core/reference"
	"github.com/taibuivan/epicdb/internal/core/villain"
	"github.com/taibuivan/epicdb/internal/platform/apperr"
	"github.com/taibuivan/epicdb/internal/platform/constants"
	"github.com/taibuivan/epicdb/internal/platform/sec"
	"github.com/taibuivan/epicdb/internal/platform/testutil"
	"github.com/taibuivan/epicdb/internal/users/account"
	"github.com/taibuivan/epicdb/internal/users/auth"
)

type appConfig struct{ development bool }

func (c appConfig) IsDevelopment() bool      { return c.development }
func (c appConfig) AllowedOrigins() []string { return []string{"https://epicdb.example"} }

type rejectingVerifier struct{}

func (rejectingVerifier) VerifyToken(string) (*sec.AuthClaims, error) {
	return nil, errors.New("expired")
}

// newRouter wires every handler against nil pools. The requests below stop
// in middleware or validation and never reach storage.
func newRouter(t *testing.T, deps api.HealthDependencies, cfg appConfig) http.Handler {
	t.Helper()

	context, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	logger := testutil.Logger()
	liveness, readiness := api.NewHealthHandlers(deps, logger)

	return api.NewRouter(context, cfg, logger, rejectingVerifier{}, api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Auth:      auth.NewHandler(auth.NewService(auth.NewUserRepository(nil), nil, logger)),
		Account:   account.NewHandler(account.NewService(account.NewRepository(nil), logger)),
		Reference: reference.NewHandler(reference.NewService(reference.NewPostgresRepository(nil), nil, logger)),
		Entity:    entity.NewHandler(entity.NewService(entity.NewPostgresRepository(nil))),
		Hero:      hero.NewHandler(hero.NewService(hero.NewPostgresRepository(nil), logger)),
		Villain:   villain.NewHandler(villain.NewService(villain.NewPostgresRepository(nil), logger)),
		Epic:      epic.NewHandler(epic.NewService(epic.NewPostgresRepository(nil), logger)),
		Event:     event.NewHandler(event.NewService(event.NewPostgresRepository(nil), logger)),
		Article:   article.NewHandler(article.NewService(article.NewPostgresRepository(nil), logger)),
		Legacy:    legacy.NewHandler(legacy.NewService(legacy.NewPostgresRepository(nil), logger)),
	})
}

func TestRouter_Health(t *testing.T) {
	router := newRouter(t, api.HealthDependencies{}, appConfig{})

	recorder := testutil.Do(router, http.MethodGet, "/health", "", "")

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "ok", testutil.Data[map[string]string](t, recorder)[constants.FieldStatus])
	assert.NotEmpty(t, recorder.Header().Get(constants.HeaderXRequestID))
}

func TestRouter_Readiness(t *testing.T) {
	t.Run("ready", func(t *testing.T) {
		router := newRouter(t, api.HealthDependencies{
			CheckDatabase: func() error { return nil },
			CheckCache:    func() error { return nil },
		}, appConfig{})

		recorder := testutil.Do(router, http.MethodGet, "/ready", "", "")

		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "ready", testutil.Data[map[string]any](t, recorder)[constants.FieldStatus])
	})

	t.Run("degraded", func(t *testing.T) {
		router := newRouter(t, api.HealthDependencies{
			CheckDatabase: func() error { return nil },
			CheckCache:    func() error { return errors.New("connection refused") },
		}, appConfig{})

		recorder := testutil.Do(router, http.MethodGet, "/ready", "", "")

		require.Equal(t, http.StatusServiceUnavailable, recorder.Code)
		assert.Equal(t, "degraded", testutil.Data[map[string]any](t, recorder)[constants.FieldStatus])
	})
}

func TestRouter_WritesRequireAuth(t *testing.T) {
	router := newRouter(t, api.HealthDependencies{}, appConfig{})

	targets := []struct{ method, path string }{
		{http.MethodPost, "/api/v1/heroes"},
		{http.MethodPost, "/api/v1/villains"},
		{http.MethodPost, "/api/v1/epics"},
		{http.MethodPost, "/api/v1/events"},
		{http.MethodPost, "/api/v1/articles"},
		{http.MethodPost, "/api/v1/categories"},
		{http.MethodPost, "/api/v1/column-names"},
		{http.MethodPut, "/api/v1/users/" + testutil.UserID + "/parent"},
	}

	for _, target := range targets {
		t.Run(target.method+" "+target.path, func(t *testing.T) {
			recorder := testutil.Do(router, target.method, target.path, `{}`, "")

			assert.Equal(t, http.StatusUnauthorized, recorder.Code)
			assert.Equal(t, apperr.CodeUnauthorized, testutil.ErrorCode(t, recorder))
		})
	}
}

func TestRouter_DeleteRequiresModerator(t *testing.T) {
	router := newRouter(t, api.HealthDependencies{}, appConfig{})

	recorder := testutil.Do(router, http.MethodDelete, "/api/v1/heroes/1", "", sec.RoleMember)

	assert.Equal(t, http.StatusForbidden, recorder.Code)
	assert.Equal(t, apperr.CodeForbidden, testutil.ErrorCode(t, recorder))
}

func TestRouter_InvalidToken(t *testing.T) {
	router := newRouter(t, api.HealthDependencies{}, appConfig{})

	request := httptest.NewRequest(http.MethodGet, "/api/v1/heroes", nil)
	request.Header.Set(constants.HeaderAuthorization, "Bearer stale")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestRouter_CORS(t *testing.T) {
	router := newRouter(t, api.HealthDependencies{}, appConfig{})

	preflight := func(origin string) *httptest.ResponseRecorder {
		request := httptest.NewRequest(http.MethodOptions, "/api/v1/heroes", nil)
		request.Header.Set(constants.HeaderOrigin, origin)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, request)
		return recorder
	}

	allowed := preflight("https://epicdb.example")
	assert.Equal(t, http.StatusNoContent, allowed.Code)
	assert.Equal(t, "https://epicdb.example", allowed.Header().Get("Access-Control-Allow-Origin"))

	denied := preflight("https://elsewhere.example")
	assert.Empty(t, denied.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_RejectsOutOfRangeIDs(t *testing.T) {
	router := newRouter(t, api.HealthDependencies{}, appConfig{})

	targets := []struct{ method, path, body string }{
		{http.MethodGet, "/api/v1/heroes/3000000000", ""},
		{http.MethodGet, "/api/v1/villains/2147483648", ""},
		{http.MethodGet, "/api/v1/events?epic_id=3000000000", ""},
		{http.MethodGet, "/api/v1/categories/3000000000", ""},
		{http.MethodPost, "/api/v1/heroes", `{"name":"Zeus","category_id":3000000000}`},
	}

	for _, target := range targets {
		t.Run(target.method+" "+target.path, func(t *testing.T) {
			recorder := testutil.Do(router, target.method, target.path, target.body, sec.RoleMember)

			assert.Equal(t, http.StatusBadRequest, recorder.Code)
			assert.Equal(t, apperr.CodeValidation, testutil.ErrorCode(t, recorder))
		})
	}
}
