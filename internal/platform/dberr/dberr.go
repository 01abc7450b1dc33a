// Copyright (c) 2026 Gumruk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package dberr translates PostgreSQL errors into [apperr.AppError] values.
//
// Repositories call [Wrap] on every error coming back from pgx so the service layer
// receives 404/409/422 classifications instead of driver types.
package dberr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/taibuivan/gumruk/internal/platform/apperr"
)

// PostgreSQL SQLSTATE codes handled explicitly.
const (
	UniqueViolation     = "23505"
	ForeignKeyViolation = "23503"
	CheckViolation      = "23514"
	NotNullViolation    = "23502"
)

var (
	// ErrNotFound is returned when a queried row doesn't exist.
	ErrNotFound = apperr.NotFound("Resource")
)

// constraintMessages maps named database constraints to client-facing conflict messages.
// Unknown constraints fall back to a generic message.
var constraintMessages = map[string]string{}

// RegisterConstraint associates a constraint name with the message returned when it is violated.
// Domain packages call it from init so the mapping lives next to the owning table.
func RegisterConstraint(name, message string) {
	constraintMessages[name] = message
}

// Wrap inspects a database error and wraps it into a meaningful [apperr.AppError].
//
// The action label is attached to the cause so server logs show which query failed.
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	// Already classified further down the stack
	if apperr.IsAppError(err) {
		return err
	}

	// 1. Not found
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}

	cause := fmt.Errorf("%s: %w", action, err)

	// 2. Constraint violations
	var pgError *pgconn.PgError
	if errors.As(err, &pgError) {
		switch pgError.Code {
		case UniqueViolation:
			return apperr.Conflict(messageFor(pgError.ConstraintName, "A record with the same value already exists")).WithCause(cause)
		case ForeignKeyViolation:
			return apperr.Unprocessable(messageFor(pgError.ConstraintName, "The record references a missing entry or is still referenced")).WithCause(cause)
		case CheckViolation, NotNullViolation:
			return apperr.ValidationError(messageFor(pgError.ConstraintName, "The record violates a data constraint")).WithCause(cause)
		}
	}

	// 3. Everything else is a server error
	return apperr.Internal(cause)
}

// NotFound wraps err like [Wrap] but names the missing resource on 404.
func NotFound(err error, action, resource string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.NotFound(resource)
	}
	return Wrap(err, action)
}

// IsUniqueViolation reports whether err is a unique constraint failure on the given constraint.
// An empty constraint matches any unique violation.
func IsUniqueViolation(err error, constraint string) bool {
	var pgError *pgconn.PgError
	if !errors.As(err, &pgError) || pgError.Code != UniqueViolation {
		return false
	}
	return constraint == "" || pgError.ConstraintName == constraint
}

func messageFor(constraint, fallback string) string {
	if message, ok := constraintMessages[constraint]; ok {
		return message
	}
	return fallback
}

// IsForeignKeyViolation reports whether err is a foreign key failure, typically
// a delete of a row other tables still reference.
func IsForeignKeyViolation(err error) bool {
	var pgError *pgconn.PgError
	return errors.As(err, &pgError) && pgError.Code == ForeignKeyViolation
}
