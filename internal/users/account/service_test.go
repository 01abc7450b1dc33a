// Copyright (c) 2026 Gumruk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/taibuivan/gumruk/internal/platform/apperr"
	"github.com/taibuivan/gumruk/internal/platform/sec"
	"github.com/taibuivan/gumruk/internal/users/account"
	"github.com/taibuivan/gumruk/internal/users/account/mocks"
	"github.com/taibuivan/gumruk/internal/users/auth"
)

const (
	adminID     = "0190a1b2-0000-7000-8000-000000000001"
	inspectorID = "0190a1b2-0000-7000-8000-000000000002"
	colleagueID = "0190a1b2-0000-7000-8000-000000000003"
)

var (
	admin     = &sec.AuthClaims{UserID: adminID, Role: string(sec.RoleAdmin)}
	inspector = &sec.AuthClaims{UserID: inspectorID, Role: string(sec.RoleInspector)}
)

type fixture struct {
	repo    *mocks.MockRepository
	service *account.Service
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return fixture{repo: repo, service: account.NewService(repo, logger)}
}

func user(id string, role sec.UserRole) *auth.User {
	return &auth.User{ID: id, Username: "user-" + id[len(id)-1:], Role: role, IsActive: true}
}

/*
TestService_Me returns the caller with related users, never nil.
*/
func TestService_Me(t *testing.T) {
	t.Run("with_related", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Get(gomock.Any(), inspectorID).Return(user(inspectorID, sec.RoleInspector), nil)
		f.repo.EXPECT().RelatedUsers(gomock.Any(), inspectorID).Return([]account.Member{{ID: colleagueID, Username: "aman"}}, nil)

		profile, err := f.service.Me(context.Background(), inspector)
		require.NoError(t, err)
		assert.Equal(t, inspectorID, profile.ID)
		assert.Equal(t, []account.Member{{ID: colleagueID, Username: "aman"}}, profile.RelatedUsers)
	})

	t.Run("without_related", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Get(gomock.Any(), inspectorID).Return(user(inspectorID, sec.RoleInspector), nil)
		f.repo.EXPECT().RelatedUsers(gomock.Any(), inspectorID).Return(nil, nil)

		profile, err := f.service.Me(context.Background(), inspector)
		require.NoError(t, err)
		assert.NotNil(t, profile.RelatedUsers)
		assert.Empty(t, profile.RelatedUsers)
	})

	t.Run("anonymous", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.service.Me(context.Background(), nil)
		assert.True(t, apperr.HasCode(err, apperr.CodeUnauthorized))
	})
}

/*
TestService_AdminOnly rejects non-admin callers before touching storage.
*/
func TestService_AdminOnly(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, _, err := f.service.List(ctx, inspector, account.Filter{}, 20, 0)
	assert.True(t, apperr.HasCode(err, apperr.CodeForbidden))

	_, err = f.service.Get(ctx, inspector, colleagueID)
	assert.True(t, apperr.HasCode(err, apperr.CodeForbidden))

	_, err = f.service.Update(ctx, inspector, colleagueID, account.UpdateInput{Role: sec.RoleAdmin, IsActive: true})
	assert.True(t, apperr.HasCode(err, apperr.CodeForbidden))

	_, err = f.service.ReplaceRelated(ctx, inspector, inspectorID, []string{colleagueID})
	assert.True(t, apperr.HasCode(err, apperr.CodeForbidden))
}

/*
TestService_ReplaceRelated validates, deduplicates and stores the related set.
*/
func TestService_ReplaceRelated(t *testing.T) {
	invalid := []struct {
		name string
		ids  []string
	}{
		{"malformed_id", []string{"42"}},
		{"self", []string{inspectorID}},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			_, err := f.service.ReplaceRelated(context.Background(), admin, inspectorID, tt.ids)
			require.True(t, apperr.HasCode(err, apperr.CodeValidation))
			assert.Equal(t, account.FieldRelatedUsers, apperr.As(err).Details[0].Field)
		})
	}

	t.Run("deduplicated", func(t *testing.T) {
		f := newFixture(t)
		gomock.InOrder(
			f.repo.EXPECT().ReplaceRelated(gomock.Any(), inspectorID, []string{colleagueID, adminID}).Return(nil),
			f.repo.EXPECT().Get(gomock.Any(), inspectorID).Return(user(inspectorID, sec.RoleInspector), nil),
			f.repo.EXPECT().RelatedUsers(gomock.Any(), inspectorID).Return([]account.Member{{ID: adminID}, {ID: colleagueID}}, nil),
		)

		profile, err := f.service.ReplaceRelated(context.Background(), admin, inspectorID,
			[]string{colleagueID, " " + adminID, colleagueID})
		require.NoError(t, err)
		assert.Len(t, profile.RelatedUsers, 2)
	})

	t.Run("cleared", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().ReplaceRelated(gomock.Any(), inspectorID, []string{}).Return(nil)
		f.repo.EXPECT().Get(gomock.Any(), inspectorID).Return(user(inspectorID, sec.RoleInspector), nil)
		f.repo.EXPECT().RelatedUsers(gomock.Any(), inspectorID).Return(nil, nil)

		profile, err := f.service.ReplaceRelated(context.Background(), admin, inspectorID, nil)
		require.NoError(t, err)
		assert.Empty(t, profile.RelatedUsers)
	})

	t.Run("unknown_user", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.service.ReplaceRelated(context.Background(), admin, "nope", []string{colleagueID})
		assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))
	})
}

/*
TestService_Update stops administrators from locking themselves out.
*/
func TestService_Update(t *testing.T) {
	tests := []struct {
		name      string
		id        string
		input     account.UpdateInput
		wantField string
	}{
		{"self_demotion", adminID, account.UpdateInput{Role: sec.RoleInspector, IsActive: true}, account.FieldRole},
		{"self_deactivation", adminID, account.UpdateInput{Role: sec.RoleAdmin, IsActive: false}, account.FieldIsActive},
		{"unknown_role", colleagueID, account.UpdateInput{Role: "root", IsActive: true}, account.FieldRole},
		{"bad_email", colleagueID, account.UpdateInput{Role: sec.RoleViewer, Email: "nope", IsActive: true}, account.FieldEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.repo.EXPECT().Get(gomock.Any(), tt.id).Return(user(tt.id, sec.RoleAdmin), nil)

			_, err := f.service.Update(context.Background(), admin, tt.id, tt.input)
			require.True(t, apperr.HasCode(err, apperr.CodeValidation))
			assert.Equal(t, tt.wantField, apperr.As(err).Details[0].Field)
		})
	}

	t.Run("demote_other", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Get(gomock.Any(), colleagueID).Return(user(colleagueID, sec.RoleSupervisor), nil).Times(2)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, updated *auth.User) error {
			assert.Equal(t, sec.RoleViewer, updated.Role)
			assert.False(t, updated.IsActive)
			assert.Equal(t, "Aman Orazow", updated.FullName)
			return nil
		})
		f.repo.EXPECT().RelatedUsers(gomock.Any(), colleagueID).Return(nil, nil)

		_, err := f.service.Update(context.Background(), admin, colleagueID, account.UpdateInput{
			FullName: "  Aman Orazow ", Role: sec.RoleViewer, IsActive: false,
		})
		assert.NoError(t, err)
	})
}
