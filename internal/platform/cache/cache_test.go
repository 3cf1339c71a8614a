// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cache_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/epicdb/internal/platform/cache"
)

// unreachable points at a closed port so every Redis call fails fast.
func unreachable(t *testing.T) *cache.Cache {
	t.Helper()
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })

	return cache.New(client, time.Minute, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

/*
TestRemember_NilCache calls the loader directly.
*/
func TestRemember_NilCache(t *testing.T) {
	calls := 0
	value, err := cache.Remember(context.Background(), nil, "k", func() ([]string, error) {
		calls++
		return []string{"Mythology"}, nil
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"Mythology"}, value)
	assert.Equal(t, 1, calls)
}

/*
TestRemember_RedisDown falls through to the loader.
*/
func TestRemember_RedisDown(t *testing.T) {
	c := unreachable(t)

	value, err := cache.Remember(context.Background(), c, "cache:category:list:1:20", func() (int, error) {
		return 42, nil
	})

	require.NoError(t, err)
	assert.Equal(t, 42, value)

	// Invalidation failures are swallowed.
	c.InvalidatePrefix(context.Background(), "cache:category:list:")
}

/*
TestRemember_LoaderError is returned as is.
*/
func TestRemember_LoaderError(t *testing.T) {
	boom := errors.New("boom")

	_, err := cache.Remember(context.Background(), unreachable(t), "k", func() (int, error) {
		return 0, boom
	})

	assert.ErrorIs(t, err, boom)
}
