// Copyright (c) 2026 Gumruk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package office_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/taibuivan/gumruk/internal/core/office"
	"github.com/taibuivan/gumruk/internal/core/office/mocks"
	"github.com/taibuivan/gumruk/internal/platform/apperr"
	"github.com/taibuivan/gumruk/pkg/pointer"
)

/*
TestService_CreateOffice_Code stores blank codes as NULL and upper-cases the rest.
*/
func TestService_CreateOffice_Code(t *testing.T) {
	tests := []struct {
		name     string
		code     *string
		wantCode *string
		wantErr  bool
	}{
		{"absent", nil, nil, false},
		{"blank", pointer.To("  "), nil, false},
		{"lower_case", pointer.To("ah01"), pointer.To("AH01"), false},
		{"too_long", pointer.To("AHAL01"), nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mocks.NewMockRepository(ctrl)
			service := office.NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))

			if !tt.wantErr {
				repo.EXPECT().CreateOffice(gomock.Any(), gomock.Any()).Return(nil)
			}

			input := &office.CustomsOffice{Name: "Ahal", Code: tt.code}
			err := service.CreateOffice(context.Background(), input)
			if tt.wantErr {
				assert.True(t, apperr.HasCode(err, apperr.CodeValidation))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantCode, input.Code)
		})
	}
}

/*
TestService_PointOptions_Empty never returns a nil slice.
*/
func TestService_PointOptions_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	service := office.NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))

	repo.EXPECT().GetOffice(gomock.Any(), 1).Return(&office.CustomsOffice{ID: 1}, nil)
	repo.EXPECT().PointOptions(gomock.Any(), 1, "").Return(nil, nil)

	options, err := service.PointOptions(context.Background(), 1, "")
	require.NoError(t, err)
	assert.NotNil(t, options)
	assert.Empty(t, options)
}

/*
TestService_CreatePoint_RequiresOffice rejects points without a parent office.
*/
func TestService_CreatePoint_RequiresOffice(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := office.NewService(mocks.NewMockRepository(ctrl), slog.New(slog.NewTextHandler(io.Discard, nil)))

	err := service.CreatePoint(context.Background(), &office.CustomsPoint{Name: "Farap"})

	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, office.FieldOfficeID, appErr.Details[0].Field)
}

/*
TestCustomsOffice_Label prefixes the code when there is one.
*/
func TestCustomsOffice_Label(t *testing.T) {
	assert.Equal(t, "Lebap", (&office.CustomsOffice{Name: "Lebap"}).Label())
	assert.Equal(t, "LB - Lebap", (&office.CustomsOffice{Name: "Lebap", Code: pointer.To("LB")}).Label())
}
