// Copyright (c) 2026 Gumruk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import "time"

// # Authentication Constraints

const (
	// AccessTokenTTL is the lifetime of a JWT access token.
	AccessTokenTTL = 15 * time.Minute

	// RefreshTokenTTL is the lifetime of a refresh session. Inspectors work in
	// shifts, so a week covers a rotation without forcing a daily login.
	RefreshTokenTTL = 7 * 24 * time.Hour

	// RefreshTokenLength is the byte length of the random refresh token.
	RefreshTokenLength = 32

	// MinPasswordLength applies to registration and password changes.
	MinPasswordLength = 8

	// MinUsernameLength applies to registration.
	MinUsernameLength = 3
)
