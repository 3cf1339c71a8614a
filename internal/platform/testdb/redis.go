// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

//go:build integration

package testdb

import (
	"context"
	"testing"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"

	redisstore "github.com/taibuivan/epicdb/internal/platform/redis"
	"github.com/taibuivan/epicdb/internal/platform/testutil"
)

const redisImage = "redis:7-alpine"

// NewRedis starts a Redis container and returns a connected client.
// The container is terminated when t finishes.
func NewRedis(t *testing.T) *goredis.Client {
	t.Helper()

	context := context.Background()

	container, err := tcredis.Run(context, redisImage)
	require.NoError(t, err, "start redis container")

	t.Cleanup(func() {
		if err := container.Terminate(context); err != nil {
			t.Logf("terminate redis container: %v", err)
		}
	})

	url, err := container.ConnectionString(context)
	require.NoError(t, err)

	client, err := redisstore.NewClient(context, url, testutil.Logger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return client
}
