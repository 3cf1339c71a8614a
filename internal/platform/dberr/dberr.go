// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package dberr translates PostgreSQL failures into [apperr.AppError] values.
//
// Referential integrity, uniqueness and NOT NULL rules live in the schema;
// this package is where their violations become client-facing errors.
package dberr

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/taibuivan/epicdb/internal/platform/apperr"
)

// ErrNotFound is returned when a queried row does not exist.
var ErrNotFound = apperr.NotFound("Resource")

// Wrap classifies err by SQLSTATE. The action names the failed operation
// (e.g. "create_hero") and is kept on the cause for server-side logs.
//
//   - pgx.ErrNoRows       → NOT_FOUND
//   - 23505 unique        → CONFLICT
//   - 23503 foreign key   → UNPROCESSABLE
//   - 23502/23514         → VALIDATION_ERROR
//   - anything else       → INTERNAL_ERROR
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}

	cause := &actionError{action: action, err: err}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return apperr.Internal(cause)
	}

	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		return apperr.Conflict("Record already exists").WithCause(cause)
	case pgerrcode.ForeignKeyViolation:
		return apperr.Unprocessable("Referenced record does not exist").WithCause(cause)
	case pgerrcode.NotNullViolation, pgerrcode.CheckViolation:
		field := pgErr.ColumnName
		if field == "" {
			field = pgErr.ConstraintName
		}
		return apperr.ValidationError("Validation failed", apperr.FieldError{
			Field:   field,
			Message: "Violates a database constraint",
		}).WithCause(cause)
	default:
		return apperr.Internal(cause)
	}
}

// NotFound rewrites a generic [ErrNotFound] into a resource-specific one.
func NotFound(err error, resource string) error {
	if err == ErrNotFound {
		return apperr.NotFound(resource)
	}
	return err
}

type actionError struct {
	action string
	err    error
}

func (e *actionError) Error() string { return e.action + ": " + e.err.Error() }

func (e *actionError) Unwrap() error { return e.err }
