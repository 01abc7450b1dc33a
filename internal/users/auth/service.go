// Copyright (c) 2026 Gumruk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/taibuivan/gumruk/internal/platform/apperr"
	"github.com/taibuivan/gumruk/internal/platform/dberr"
	"github.com/taibuivan/gumruk/internal/platform/sec"
	"github.com/taibuivan/gumruk/internal/platform/validate"
	"github.com/taibuivan/gumruk/pkg/uuid"
)

func init() {
	dberr.RegisterConstraint("account_username_key", "Username is already taken")
	dberr.RegisterConstraint("account_email_key", "Email is already registered")
	dberr.RegisterConstraint("account_role_check", "Unknown role")
}

// # Contracts & Types

// TokenProvider signs access tokens.
type TokenProvider interface {
	GenerateAccessToken(userID, username, role string, timeToLive time.Duration) (string, error)
}

// Service implements sign-in, session rotation and account enrolment.
type Service struct {
	users    UserRepository
	sessions SessionStore
	tokens   TokenProvider
	logger   *slog.Logger
	now      func() time.Time
}

// NewService constructs an auth [Service].
func NewService(users UserRepository, sessions SessionStore, tokens TokenProvider, logger *slog.Logger) *Service {
	return &Service{
		users:    users,
		sessions: sessions,
		tokens:   tokens,
		logger:   logger,
		now:      time.Now,
	}
}

// # Registration

// RegisterInput holds the data for a new account.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	FullName string
	Role     sec.UserRole
}

/*
Register creates an account. Only administrators may enrol users.

Description: The role defaults to inspector. Username and email uniqueness is
enforced by case-insensitive indexes and reported as CONFLICT.

Returns:
  - *User: Created account
  - error: FORBIDDEN, VALIDATION_ERROR or CONFLICT
*/
func (service *Service) Register(context context.Context, actor *sec.AuthClaims, input RegisterInput) (*User, error) {
	if actor == nil {
		return nil, apperr.Unauthorized("Authentication required")
	}
	if !actor.IsAdmin() {
		return nil, apperr.Forbidden("Only administrators can register users")
	}

	input.Username = strings.TrimSpace(input.Username)
	input.Email = strings.TrimSpace(input.Email)
	input.FullName = strings.TrimSpace(input.FullName)
	if input.Role == "" {
		input.Role = sec.RoleInspector
	}

	validator := &validate.Validator{}
	validator.Required(FieldUsername, input.Username).
		MinLen(FieldUsername, input.Username, MinUsernameLength).
		MaxLen(FieldUsername, input.Username, 150).
		Required(FieldPassword, input.Password).
		MinLen(FieldPassword, input.Password, MinPasswordLength).
		MaxLen(FieldFullName, input.FullName, 255).
		Custom(FieldRole, !input.Role.IsValid(), "Must be one of admin, supervisor, inspector, viewer")
	if input.Email != "" {
		validator.Email(FieldEmail, input.Email).MaxLen(FieldEmail, input.Email, 254)
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	hashedPassword, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("auth_service_hash_failed: %w", err))
	}

	user := &User{
		ID:           uuid.New(),
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		FullName:     input.FullName,
		Role:         input.Role,
		IsActive:     true,
	}
	if err := service.users.Create(context, user); err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "user_registered",
		slog.String("id", user.ID),
		slog.String("role", string(user.Role)),
		slog.String("by", actor.UserID),
	)
	return user, nil
}

// # Authentication

// LoginInput holds the credentials of a sign-in attempt.
type LoginInput struct {
	Login     string
	Password  string
	UserAgent string
	IPAddress string
}

// LoginSession is a successful sign-in or refresh.
type LoginSession struct {
	AccessToken           string
	RefreshToken          string
	RefreshTokenExpiresAt time.Time
	User                  *User
}

/*
Login verifies credentials and opens a session.

Description: Unknown logins, wrong passwords and disabled accounts all
produce the same UNAUTHORIZED message.
*/
func (service *Service) Login(context context.Context, input LoginInput) (*LoginSession, error) {
	invalid := apperr.Unauthorized("Invalid login credentials")

	user, err := service.users.FindByLogin(context, strings.TrimSpace(input.Login))
	if err != nil {
		if apperr.HasCode(err, apperr.CodeNotFound) {
			return nil, invalid
		}
		return nil, err
	}
	if !user.IsActive || !sec.CheckPasswordHash(input.Password, user.PasswordHash) {
		service.logger.WarnContext(context, "login_rejected", slog.String("user_id", user.ID))
		return nil, invalid
	}

	session, err := service.issue(context, user, input.UserAgent, input.IPAddress)
	if err != nil {
		return nil, err
	}

	if err := service.users.TouchLogin(context, user.ID, service.now()); err != nil {
		service.logger.WarnContext(context, "login_touch_failed", slog.String("user_id", user.ID), slog.Any("error", err))
	}

	service.logger.InfoContext(context, "user_logged_in", slog.String("user_id", user.ID))
	return session, nil
}

/*
Refresh rotates a refresh token.

Description: The presented session is revoked before a new pair is issued, so
a refresh token works exactly once.
*/
func (service *Service) Refresh(context context.Context, refreshToken, userAgent, ipAddress string) (*LoginSession, error) {
	invalid := apperr.Unauthorized("Invalid or expired refresh token")
	if refreshToken == "" {
		return nil, invalid
	}

	session, err := service.sessions.FindByTokenHash(context, sec.HashToken(refreshToken))
	if err != nil {
		if apperr.HasCode(err, apperr.CodeNotFound) {
			return nil, invalid
		}
		return nil, err
	}

	if err := service.sessions.Revoke(context, session); err != nil {
		return nil, err
	}

	user, err := service.users.FindByID(context, session.UserID)
	if err != nil {
		if apperr.HasCode(err, apperr.CodeNotFound) {
			return nil, invalid
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, invalid
	}

	return service.issue(context, user, userAgent, ipAddress)
}

// Logout revokes the session of refreshToken. Unknown tokens are ignored.
func (service *Service) Logout(context context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}

	session, err := service.sessions.FindByTokenHash(context, sec.HashToken(refreshToken))
	if err != nil {
		if apperr.HasCode(err, apperr.CodeNotFound) {
			return nil
		}
		return err
	}

	if err := service.sessions.Revoke(context, session); err != nil {
		return err
	}

	service.logger.InfoContext(context, "user_logged_out", slog.String("user_id", session.UserID))
	return nil
}

/*
ChangePassword replaces the caller's password.

Description: Every other session of the user is revoked. The session of
currentRefreshToken, when given, stays valid.
*/
func (service *Service) ChangePassword(context context.Context, actor *sec.AuthClaims, currentPassword, newPassword, currentRefreshToken string) error {
	if actor == nil {
		return apperr.Unauthorized("Authentication required")
	}

	validator := &validate.Validator{}
	validator.Required(FieldCurrentPassword, currentPassword).
		Required(FieldNewPassword, newPassword).
		MinLen(FieldNewPassword, newPassword, MinPasswordLength)
	if err := validator.Err(); err != nil {
		return err
	}

	user, err := service.users.FindByID(context, actor.UserID)
	if err != nil {
		return err
	}
	if !sec.CheckPasswordHash(currentPassword, user.PasswordHash) {
		return apperr.Unauthorized("Current password is incorrect")
	}

	hashedPassword, err := sec.HashPassword(newPassword)
	if err != nil {
		return apperr.Internal(fmt.Errorf("auth_service_hash_failed: %w", err))
	}
	if err := service.users.UpdatePassword(context, user.ID, hashedPassword); err != nil {
		return err
	}

	keep := ""
	if currentRefreshToken != "" {
		keep = sec.HashToken(currentRefreshToken)
	}
	if err := service.sessions.RevokeOthers(context, user.ID, keep); err != nil {
		service.logger.WarnContext(context, "session_revoke_failed", slog.String("user_id", user.ID), slog.Any("error", err))
	}

	service.logger.InfoContext(context, "password_changed", slog.String("user_id", user.ID))
	return nil
}

// issue signs an access token and stores a fresh refresh session.
func (service *Service) issue(context context.Context, user *User, userAgent, ipAddress string) (*LoginSession, error) {
	accessToken, err := service.tokens.GenerateAccessToken(user.ID, user.Username, string(user.Role), AccessTokenTTL)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("auth_service_token_failed: %w", err))
	}

	refreshToken, err := sec.GenerateSecureToken(RefreshTokenLength)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("auth_service_refresh_token_failed: %w", err))
	}

	now := service.now()
	session := &Session{
		ID:        uuid.New(),
		UserID:    user.ID,
		TokenHash: sec.HashToken(refreshToken),
		UserAgent: userAgent,
		IPAddress: ipAddress,
		ExpiresAt: now.Add(RefreshTokenTTL),
		CreatedAt: now,
	}
	if err := service.sessions.Create(context, session); err != nil {
		return nil, err
	}

	return &LoginSession{
		AccessToken:           accessToken,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresAt: session.ExpiresAt,
		User:                  user,
	}, nil
}
