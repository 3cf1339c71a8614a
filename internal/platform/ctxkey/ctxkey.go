// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package ctxkey defines typed context keys used by middleware and handlers.
//
// The key type is unexported so values stored here cannot collide with
// string keys set by third-party packages.
package ctxkey

type key string

const (
	// KeyRequestID holds the X-Request-ID correlation value.
	KeyRequestID key = "request_id"

	// KeyUser holds the authenticated [sec.AuthClaims].
	KeyUser key = "user"

	// KeyLogger holds the per-request [*log/slog.Logger].
	KeyLogger key = "logger"
)
