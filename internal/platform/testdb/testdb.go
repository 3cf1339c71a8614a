// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

//go:build integration

// Package testdb starts a throwaway PostgreSQL container with the epicdb
// schema applied. It backs the store tests built with the integration tag.
package testdb

import (
	"context"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/taibuivan/epicdb/internal/platform/migration"
	pgstore "github.com/taibuivan/epicdb/internal/platform/postgres"
	"github.com/taibuivan/epicdb/internal/platform/testutil"
)

const image = "postgres:16-alpine"

// New starts a container, runs every up migration and returns a pool.
// The container is terminated when t finishes.
func New(t *testing.T) *pgxpool.Pool {
	t.Helper()

	context := context.Background()

	container, err := postgres.Run(context, image,
		postgres.WithDatabase("epicdb"),
		postgres.WithUsername("epic"),
		postgres.WithPassword("epic"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err, "start postgres container")

	t.Cleanup(func() {
		if err := container.Terminate(context); err != nil {
			t.Logf("terminate postgres container: %v", err)
		}
	})

	dsn, err := container.ConnectionString(context, "sslmode=disable")
	require.NoError(t, err)

	require.NoError(t, migration.RunUp(dsn, migrationsPath(), testutil.Logger()))

	pool, err := pgstore.NewPool(context, dsn, testutil.Logger())
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	return pool
}

func migrationsPath() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "..", "..", "..", "data", "migrations")
}
