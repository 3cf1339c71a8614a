// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package constants provides centralized, immutable values for the platform.

Categories:

  - Server Timing: Read/Write/Idle timeouts for the HTTP server.
  - Rate Limiting: Token bucket sizing and client eviction.
  - Security: JWT issuer and token lifetime.
  - Cache Taxonomy: Redis key prefixes.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "epicdb-api"
	AppVersion = "0.1.0-dev"
)

// # Server Timing

const (
	DefaultReadTimeout       = 5 * time.Second
	DefaultWriteTimeout      = 10 * time.Second
	DefaultIdleTimeout       = 120 * time.Second
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout is the deadline for the entire request lifecycle.
	// It also bounds the per-connection statement_timeout in Postgres.
	GlobalRequestTimeout = 30 * time.Second

	// ShutdownTimeout is how long in-flight requests get during shutdown.
	ShutdownTimeout = 30 * time.Second
)

// # Rate Limiting

const (
	DefaultRateLimitRPS      = 100.0
	DefaultRateLimitBurst    = 150
	RateLimitCleanupInterval = 1 * time.Minute
	RateLimitClientTTL       = 3 * time.Minute
)

// # Authentication

const (
	// AuthIssuer is the 'iss' claim in JWTs.
	AuthIssuer = "epicdb"

	// AccessTokenTTL is the lifetime of an access token issued at login.
	AccessTokenTTL = 24 * time.Hour
)

// # HTTP Headers

const (
	HeaderXRequestID    = "X-Request-ID"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderOrigin        = "Origin"
	HeaderAuthorization = "Authorization"
)

// # JSON Field Identifiers

const (
	FieldError  = "error"
	FieldCode   = "code"
	FieldStatus = "status"
	FieldChecks = "checks"
)

// # Database Schemas

const (
	SchemaCore  = "core"
	SchemaUsers = "users"
)

// # Redis Prefixes (Cache Taxonomy)

const (
	RedisPrefixCategoryList = "cache:category:list:"
	RedisPrefixOriginList   = "cache:origin:list:"
)
