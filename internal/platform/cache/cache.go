// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package cache is a read-through JSON cache on top of Redis.

Redis is never a source of truth: a cache miss, a Redis outage or a decode
failure all fall through to the loader, and the failure is only logged.
A nil *Cache is valid and disables caching.
*/
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache stores JSON-encoded values under prefixed keys.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// New returns a Cache whose entries expire after ttl.
func New(client *redis.Client, ttl time.Duration, logger *slog.Logger) *Cache {
	return &Cache{client: client, ttl: ttl, logger: logger}
}

// Remember returns the cached value at key, or calls load and stores its
// result. Errors from load are returned untouched and never cached.
func Remember[T any](ctx context.Context, c *Cache, key string, load func() (T, error)) (T, error) {
	if c == nil {
		return load()
	}

	raw, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var value T
		if decodeErr := json.Unmarshal(raw, &value); decodeErr == nil {
			return value, nil
		}
		c.logger.WarnContext(ctx, "cache_decode_failed", slog.String("key", key))
	case !errors.Is(err, redis.Nil):
		c.logger.WarnContext(ctx, "cache_get_failed", slog.String("key", key), slog.Any("error", err))
	}

	value, err := load()
	if err != nil {
		return value, err
	}

	encoded, err := json.Marshal(value)
	if err != nil {
		c.logger.WarnContext(ctx, "cache_encode_failed", slog.String("key", key), slog.Any("error", err))
		return value, nil
	}

	if err := c.client.Set(ctx, key, encoded, c.ttl).Err(); err != nil {
		c.logger.WarnContext(ctx, "cache_set_failed", slog.String("key", key), slog.Any("error", err))
	}

	return value, nil
}

// InvalidatePrefix deletes every key starting with prefix.
func (c *Cache) InvalidatePrefix(ctx context.Context, prefix string) {
	if c == nil {
		return
	}

	iter := c.client.Scan(ctx, 0, prefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		c.logger.WarnContext(ctx, "cache_scan_failed", slog.String("prefix", prefix), slog.Any("error", err))
		return
	}

	if len(keys) == 0 {
		return
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.logger.WarnContext(ctx, "cache_invalidate_failed", slog.String("prefix", prefix), slog.Any("error", err))
	}
}
