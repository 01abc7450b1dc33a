// Copyright (c) 2026 Gumruk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package officer_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/taibuivan/gumruk/internal/core/officer"
	"github.com/taibuivan/gumruk/internal/core/officer/mocks"
	"github.com/taibuivan/gumruk/internal/platform/apperr"
	"github.com/taibuivan/gumruk/pkg/pointer"
)

/*
TestCustomsOfficer_DisplayName skips blank parts and the empty position.
*/
func TestCustomsOfficer_DisplayName(t *testing.T) {
	tests := []struct {
		name    string
		officer officer.CustomsOfficer
		want    string
	}{
		{
			"full",
			officer.CustomsOfficer{Name: "Aman", Surname: "Orazow", Midname: "Berdiyewiç", MilitaryName: "Kapitan", PositionName: "Inspector"},
			"Kapitan Orazow Aman Berdiyewiç (Inspector)",
		},
		{
			"no_rank_no_midname",
			officer.CustomsOfficer{Name: "Aman", Surname: "Orazow", PositionName: "Inspector"},
			"Orazow Aman (Inspector)",
		},
		{
			"no_position",
			officer.CustomsOfficer{Name: "Aman", Surname: "Orazow", MilitaryName: "Leýtenant"},
			"Leýtenant Orazow Aman",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.officer.DisplayName())
		})
	}
}

/*
TestService_Create reloads the officer so rank and position names are filled.
*/
func TestService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	service := officer.NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, item *officer.CustomsOfficer) error {
		assert.Equal(t, "Orazow", item.Surname)
		item.ID = 12
		return nil
	})
	repo.EXPECT().Get(gomock.Any(), 12).Return(&officer.CustomsOfficer{ID: 12, Surname: "Orazow", MilitaryName: "Kapitan"}, nil)

	created, err := service.Create(context.Background(), &officer.CustomsOfficer{
		Name: "Aman", Surname: " Orazow ", MilitaryNameID: pointer.To(2),
	})
	require.NoError(t, err)
	assert.Equal(t, "Kapitan", created.MilitaryName)
}

/*
TestService_Create_Validation requires name and surname and rejects zero lookup IDs.
*/
func TestService_Create_Validation(t *testing.T) {
	tests := []struct {
		name      string
		input     officer.CustomsOfficer
		wantField string
	}{
		{"missing_name", officer.CustomsOfficer{Surname: "Orazow"}, officer.FieldName},
		{"missing_surname", officer.CustomsOfficer{Name: "Aman"}, officer.FieldSurname},
		{"zero_position", officer.CustomsOfficer{Name: "Aman", Surname: "Orazow", PositionID: pointer.To(0)}, officer.FieldPositionID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := officer.NewService(mocks.NewMockRepository(ctrl), slog.New(slog.NewTextHandler(io.Discard, nil)))

			input := tt.input
			_, err := service.Create(context.Background(), &input)

			appErr := apperr.As(err)
			require.NotNil(t, appErr)
			assert.Equal(t, tt.wantField, appErr.Details[0].Field)
		})
	}
}
