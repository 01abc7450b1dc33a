// Copyright (c) 2026 Gumruk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks

import (
	"context"
	"time"
)

// # User Data Access

// UserRepository defines the data access contract for accounts.
type UserRepository interface {

	/*
		FindByID returns the account with the given ID.

		Returns:
		  - *User: Hydrated entity
		  - error: apperr NOT_FOUND when the account does not exist
	*/
	FindByID(context context.Context, id string) (*User, error)

	/*
		FindByLogin returns the account whose username or email matches login,
		compared case-insensitively.

		Returns:
		  - *User: Hydrated entity
		  - error: apperr NOT_FOUND when nothing matches
	*/
	FindByLogin(context context.Context, login string) (*User, error)

	/*
		Create persists a new account.

		Returns:
		  - error: apperr CONFLICT on a taken username or email
	*/
	Create(context context.Context, user *User) error

	// UpdatePassword replaces only the password hash.
	UpdatePassword(context context.Context, userID, newHash string) error

	// TouchLogin stamps the last successful sign-in.
	TouchLogin(context context.Context, userID string, at time.Time) error
}

// # Session Data Access

// SessionStore keeps refresh sessions until they expire or are revoked.
type SessionStore interface {

	// Create stores session until its ExpiresAt.
	Create(context context.Context, session *Session) error

	/*
		FindByTokenHash returns the live session for a token digest.

		Returns:
		  - *Session: Active session
		  - error: apperr NOT_FOUND when revoked, expired or unknown
	*/
	FindByTokenHash(context context.Context, tokenHash string) (*Session, error)

	// Revoke deletes a single session.
	Revoke(context context.Context, session *Session) error

	// RevokeOthers deletes every session of userID except the one keyed by keepTokenHash.
	RevokeOthers(context context.Context, userID, keepTokenHash string) error
}
