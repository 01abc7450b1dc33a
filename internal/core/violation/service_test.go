// Copyright (c) 2026 Gumruk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package violation_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/taibuivan/gumruk/internal/core/violation"
	"github.com/taibuivan/gumruk/internal/core/violation/mocks"
	"github.com/taibuivan/gumruk/internal/platform/apperr"
	"github.com/taibuivan/gumruk/pkg/date"
	"github.com/taibuivan/gumruk/pkg/uuid"
)

func newService(t *testing.T) (*violation.Service, *mocks.MockRepository) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	return violation.NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil))), repo
}

func fields(err error) []string {
	appErr := apperr.As(err)
	if appErr == nil {
		return nil
	}
	names := make([]string, len(appErr.Details))
	for i, detail := range appErr.Details {
		names[i] = detail.Field
	}
	return names
}

/*
TestService_Create_RequiredPerKind lists the fields each kind demands.
*/
func TestService_Create_RequiredPerKind(t *testing.T) {
	tests := []struct {
		name       string
		kind       violation.Kind
		wantFields []string
	}{
		{"legal_entity", violation.KindLegalEntity, []string{violation.FieldCompanyName, violation.FieldAddress}},
		{"individual", violation.KindIndividual, []string{
			violation.FieldViolatorName, violation.FieldViolatorSurname, violation.FieldDateOfBirth,
			violation.FieldPlaceOfBirth, violation.FieldViolatorAddress,
		}},
		{"official", violation.KindOfficial, []string{
			violation.FieldViolatorName, violation.FieldViolatorSurname, violation.FieldDateOfBirth,
			violation.FieldPlaceOfBirth, violation.FieldViolatorAddress,
		}},
		{"unknown", violation.Kind("alien"), []string{violation.FieldKind}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _ := newService(t)

			err := service.Create(context.Background(), &violation.Violation{Kind: tt.kind})
			assert.True(t, apperr.HasCode(err, apperr.CodeValidation))
			assert.Equal(t, tt.wantFields, fields(err))
		})
	}
}

/*
TestService_Create_ClearsOtherGroup stores an individual without stale company data.
*/
func TestService_Create_ClearsOtherGroup(t *testing.T) {
	service, repo := newService(t)

	input := populated(violation.KindIndividual)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, v *violation.Violation) error {
		assert.True(t, uuid.Valid(v.ID))
		assert.Empty(t, v.CompanyName)
		assert.Empty(t, v.CompanyBossFullName)
		assert.Equal(t, "Merdan", v.ViolatorName)
		return nil
	})

	require.NoError(t, service.Create(context.Background(), input))
}

/*
TestService_Update_KindChange resets the person group when an individual becomes a company.
*/
func TestService_Update_KindChange(t *testing.T) {
	service, repo := newService(t)
	id := uuid.New()
	born := date.New(1990, time.January, 1)

	repo.EXPECT().Get(gomock.Any(), id).Return(&violation.Violation{ID: id, Kind: violation.KindIndividual, DateOfBirth: &born}, nil)
	repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, v *violation.Violation) error {
		assert.Equal(t, id, v.ID)
		assert.Equal(t, violation.KindLegalEntity, v.Kind)
		personCleared(t, v)
		assert.Equal(t, "Altyn Ýol HJ", v.CompanyName)
		return nil
	})

	require.NoError(t, service.Update(context.Background(), id, populated(violation.KindLegalEntity)))
}

/*
TestService_Update_Missing returns 404 for malformed and unknown IDs.
*/
func TestService_Update_Missing(t *testing.T) {
	service, repo := newService(t)

	err := service.Update(context.Background(), "not-a-uuid", populated(violation.KindIndividual))
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))

	id := uuid.New()
	repo.EXPECT().Get(gomock.Any(), id).Return(nil, apperr.NotFound("Violation"))
	err = service.Update(context.Background(), id, populated(violation.KindIndividual))
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))
}

/*
TestService_List_InvalidKind rejects unknown kind filters before querying.
*/
func TestService_List_InvalidKind(t *testing.T) {
	service, _ := newService(t)
	kind := violation.Kind("company")

	_, _, err := service.List(context.Background(), violation.Filter{Kind: &kind}, 20, 0)
	assert.True(t, apperr.HasCode(err, apperr.CodeValidation))
}

/*
TestService_FindByPassport requires a passport number.
*/
func TestService_FindByPassport(t *testing.T) {
	service, repo := newService(t)

	_, err := service.FindByPassport(context.Background(), "  ")
	assert.True(t, apperr.HasCode(err, apperr.CodeValidation))

	repo.EXPECT().FindByPassport(gomock.Any(), "I-AŞ 123456").Return(&violation.Violation{ID: "x"}, nil)
	found, err := service.FindByPassport(context.Background(), " I-AŞ 123456 ")
	require.NoError(t, err)
	assert.Equal(t, "x", found.ID)
}
