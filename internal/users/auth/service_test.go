// Copyright (c) 2026 Gumruk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/taibuivan/gumruk/internal/platform/apperr"
	"github.com/taibuivan/gumruk/internal/platform/sec"
	"github.com/taibuivan/gumruk/internal/users/auth"
	"github.com/taibuivan/gumruk/internal/users/auth/mocks"
)

var (
	admin     = &sec.AuthClaims{UserID: "a-1", Role: string(sec.RoleAdmin)}
	inspector = &sec.AuthClaims{UserID: "u-1", Role: string(sec.RoleInspector)}
)

type stubTokens struct{}

func (stubTokens) GenerateAccessToken(userID, _, role string, _ time.Duration) (string, error) {
	return "access-" + userID + "-" + role, nil
}

type fixture struct {
	users    *mocks.MockUserRepository
	sessions *mocks.MockSessionStore
	service  *auth.Service
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserRepository(ctrl)
	sessions := mocks.NewMockSessionStore(ctrl)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return fixture{
		users:    users,
		sessions: sessions,
		service:  auth.NewService(users, sessions, stubTokens{}, logger),
	}
}

func storedUser(t *testing.T, password string) *auth.User {
	t.Helper()
	hash, err := sec.HashPassword(password)
	require.NoError(t, err)
	return &auth.User{ID: "u-1", Username: "merdan", PasswordHash: hash, Role: sec.RoleInspector, IsActive: true}
}

/*
TestService_Register covers the admin gate, validation and defaults.
*/
func TestService_Register(t *testing.T) {
	t.Run("forbidden", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.service.Register(context.Background(), inspector, auth.RegisterInput{Username: "new", Password: "long-enough"})
		assert.True(t, apperr.HasCode(err, apperr.CodeForbidden))
	})

	validation := []struct {
		name      string
		input     auth.RegisterInput
		wantField string
	}{
		{"short_username", auth.RegisterInput{Username: "ab", Password: "long-enough"}, auth.FieldUsername},
		{"short_password", auth.RegisterInput{Username: "merdan", Password: "short"}, auth.FieldPassword},
		{"bad_email", auth.RegisterInput{Username: "merdan", Password: "long-enough", Email: "nope"}, auth.FieldEmail},
		{"bad_role", auth.RegisterInput{Username: "merdan", Password: "long-enough", Role: "root"}, auth.FieldRole},
	}
	for _, tt := range validation {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			_, err := f.service.Register(context.Background(), admin, tt.input)
			require.True(t, apperr.HasCode(err, apperr.CodeValidation))
			require.NotEmpty(t, apperr.As(err).Details)
			assert.Equal(t, tt.wantField, apperr.As(err).Details[0].Field)
		})
	}

	t.Run("created", func(t *testing.T) {
		f := newFixture(t)

		var created *auth.User
		f.users.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, user *auth.User) error {
			created = user
			return nil
		})

		user, err := f.service.Register(context.Background(), admin, auth.RegisterInput{
			Username: "  merdan ", Password: "long-enough", FullName: "Merdan Ataýew",
		})
		require.NoError(t, err)

		assert.Same(t, created, user)
		assert.Equal(t, "merdan", user.Username)
		assert.Equal(t, sec.RoleInspector, user.Role)
		assert.True(t, user.IsActive)
		assert.Len(t, user.ID, 36)
		assert.True(t, sec.CheckPasswordHash("long-enough", user.PasswordHash))
	})
}

/*
TestService_Login rejects every bad credential with the same error.
*/
func TestService_Login(t *testing.T) {
	disabled := storedUser(t, "correct-horse")
	disabled.IsActive = false

	tests := []struct {
		name  string
		setup func(f fixture)
	}{
		{"unknown_login", func(f fixture) {
			f.users.EXPECT().FindByLogin(gomock.Any(), "merdan").Return(nil, apperr.NotFound("User"))
		}},
		{"wrong_password", func(f fixture) {
			f.users.EXPECT().FindByLogin(gomock.Any(), "merdan").Return(storedUser(t, "correct-horse"), nil)
		}},
		{"disabled_account", func(f fixture) {
			f.users.EXPECT().FindByLogin(gomock.Any(), "merdan").Return(disabled, nil)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)

			password := "wrong-horse"
			if tt.name == "disabled_account" {
				password = "correct-horse"
			}
			_, err := f.service.Login(context.Background(), auth.LoginInput{Login: "merdan", Password: password})
			require.True(t, apperr.HasCode(err, apperr.CodeUnauthorized))
			assert.Equal(t, "Invalid login credentials", err.Error())
		})
	}

	t.Run("success", func(t *testing.T) {
		f := newFixture(t)
		f.users.EXPECT().FindByLogin(gomock.Any(), "merdan").Return(storedUser(t, "correct-horse"), nil)

		var stored *auth.Session
		f.sessions.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, session *auth.Session) error {
			stored = session
			return nil
		})
		f.users.EXPECT().TouchLogin(gomock.Any(), "u-1", gomock.Any()).Return(errors.New("replica read-only"))

		session, err := f.service.Login(context.Background(), auth.LoginInput{
			Login: " merdan ", Password: "correct-horse", UserAgent: "curl", IPAddress: "10.0.0.4",
		})
		require.NoError(t, err)

		assert.Equal(t, "access-u-1-inspector", session.AccessToken)
		assert.NotEmpty(t, session.RefreshToken)
		assert.Equal(t, sec.HashToken(session.RefreshToken), stored.TokenHash)
		assert.Equal(t, "u-1", stored.UserID)
		assert.Equal(t, "10.0.0.4", stored.IPAddress)
		assert.WithinDuration(t, time.Now().Add(auth.RefreshTokenTTL), session.RefreshTokenExpiresAt, time.Minute)
	})
}

/*
TestService_Refresh rotates the session and refuses reuse.
*/
func TestService_Refresh(t *testing.T) {
	t.Run("unknown_token", func(t *testing.T) {
		f := newFixture(t)
		f.sessions.EXPECT().FindByTokenHash(gomock.Any(), sec.HashToken("old")).Return(nil, apperr.NotFound("Session"))

		_, err := f.service.Refresh(context.Background(), "old", "", "")
		assert.True(t, apperr.HasCode(err, apperr.CodeUnauthorized))
	})

	t.Run("empty_token", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.service.Refresh(context.Background(), "", "", "")
		assert.True(t, apperr.HasCode(err, apperr.CodeUnauthorized))
	})

	t.Run("disabled_user", func(t *testing.T) {
		f := newFixture(t)
		existing := &auth.Session{ID: "s-1", UserID: "u-1", TokenHash: sec.HashToken("old")}
		user := storedUser(t, "pw-pw-pw-pw")
		user.IsActive = false

		f.sessions.EXPECT().FindByTokenHash(gomock.Any(), existing.TokenHash).Return(existing, nil)
		f.sessions.EXPECT().Revoke(gomock.Any(), existing).Return(nil)
		f.users.EXPECT().FindByID(gomock.Any(), "u-1").Return(user, nil)

		_, err := f.service.Refresh(context.Background(), "old", "", "")
		assert.True(t, apperr.HasCode(err, apperr.CodeUnauthorized))
	})

	t.Run("rotated", func(t *testing.T) {
		f := newFixture(t)
		existing := &auth.Session{ID: "s-1", UserID: "u-1", TokenHash: sec.HashToken("old")}

		gomock.InOrder(
			f.sessions.EXPECT().FindByTokenHash(gomock.Any(), existing.TokenHash).Return(existing, nil),
			f.sessions.EXPECT().Revoke(gomock.Any(), existing).Return(nil),
			f.users.EXPECT().FindByID(gomock.Any(), "u-1").Return(storedUser(t, "pw-pw-pw-pw"), nil),
			f.sessions.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil),
		)

		session, err := f.service.Refresh(context.Background(), "old", "ua", "ip")
		require.NoError(t, err)
		assert.NotEqual(t, "old", session.RefreshToken)
	})
}

/*
TestService_Logout is idempotent for unknown tokens.
*/
func TestService_Logout(t *testing.T) {
	t.Run("unknown", func(t *testing.T) {
		f := newFixture(t)
		f.sessions.EXPECT().FindByTokenHash(gomock.Any(), gomock.Any()).Return(nil, apperr.NotFound("Session"))

		assert.NoError(t, f.service.Logout(context.Background(), "gone"))
	})

	t.Run("revoked", func(t *testing.T) {
		f := newFixture(t)
		existing := &auth.Session{ID: "s-1", UserID: "u-1"}
		f.sessions.EXPECT().FindByTokenHash(gomock.Any(), sec.HashToken("live")).Return(existing, nil)
		f.sessions.EXPECT().Revoke(gomock.Any(), existing).Return(nil)

		assert.NoError(t, f.service.Logout(context.Background(), "live"))
	})
}

/*
TestService_ChangePassword verifies the current password and keeps the caller's session.
*/
func TestService_ChangePassword(t *testing.T) {
	t.Run("wrong_current", func(t *testing.T) {
		f := newFixture(t)
		f.users.EXPECT().FindByID(gomock.Any(), "u-1").Return(storedUser(t, "correct-horse"), nil)

		err := f.service.ChangePassword(context.Background(), inspector, "wrong-horse", "battery-staple", "")
		assert.True(t, apperr.HasCode(err, apperr.CodeUnauthorized))
	})

	t.Run("too_short", func(t *testing.T) {
		f := newFixture(t)

		err := f.service.ChangePassword(context.Background(), inspector, "correct-horse", "short", "")
		assert.True(t, apperr.HasCode(err, apperr.CodeValidation))
	})

	t.Run("changed", func(t *testing.T) {
		f := newFixture(t)
		f.users.EXPECT().FindByID(gomock.Any(), "u-1").Return(storedUser(t, "correct-horse"), nil)
		f.users.EXPECT().UpdatePassword(gomock.Any(), "u-1", gomock.Any()).DoAndReturn(func(_ context.Context, _, hash string) error {
			assert.True(t, sec.CheckPasswordHash("battery-staple", hash))
			return nil
		})
		f.sessions.EXPECT().RevokeOthers(gomock.Any(), "u-1", sec.HashToken("current")).Return(nil)

		err := f.service.ChangePassword(context.Background(), inspector, "correct-horse", "battery-staple", "current")
		assert.NoError(t, err)
	})
}
