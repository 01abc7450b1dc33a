// Copyright (c) 2026 Gumruk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package office_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/taibuivan/gumruk/internal/core/office"
	"github.com/taibuivan/gumruk/internal/core/office/mocks"
	"github.com/taibuivan/gumruk/internal/platform/apperr"
	"github.com/taibuivan/gumruk/internal/platform/ctxutil"
	"github.com/taibuivan/gumruk/internal/platform/sec"
)

func newRouter(t *testing.T) (http.Handler, *mocks.MockRepository) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	service := office.NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))

	router := chi.NewRouter()
	router.Mount("/customs-offices", office.NewHandler(service).OfficeRoutes())
	return router, repo
}

func asInspector(request *http.Request) *http.Request {
	claims := &sec.AuthClaims{UserID: "u-1", Role: string(sec.RoleInspector)}
	return request.WithContext(ctxutil.WithAuthUser(request.Context(), claims))
}

/*
TestHandler_ListOfficePoints returns the dropdown payload for one office.
*/
func TestHandler_ListOfficePoints(t *testing.T) {
	router, repo := newRouter(t)

	repo.EXPECT().GetOffice(gomock.Any(), 4).Return(&office.CustomsOffice{ID: 4, Name: "Ahal"}, nil)
	repo.EXPECT().PointOptions(gomock.Any(), 4, "sera").Return([]office.PointOption{{ID: 9, Name: "Serhetabat"}}, nil)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, asInspector(httptest.NewRequest(http.MethodGet, "/customs-offices/4/points?q=+sera+", nil)))

	require.Equal(t, http.StatusOK, recorder.Code)

	var body struct {
		Data struct {
			Points []office.PointOption `json:"points"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&body))
	assert.Equal(t, []office.PointOption{{ID: 9, Name: "Serhetabat"}}, body.Data.Points)
}

/*
TestHandler_ListOfficePoints_Errors covers bad IDs, unknown offices and anonymous callers.
*/
func TestHandler_ListOfficePoints_Errors(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		anonymous  bool
		setup      func(repo *mocks.MockRepository)
		wantStatus int
	}{
		{"anonymous", "/customs-offices/4/points", true, nil, http.StatusUnauthorized},
		{"malformed_id", "/customs-offices/abc/points", false, nil, http.StatusBadRequest},
		{"unknown_office", "/customs-offices/5/points", false, func(repo *mocks.MockRepository) {
			repo.EXPECT().GetOffice(gomock.Any(), 5).Return(nil, apperr.NotFound("Customs office"))
		}, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, repo := newRouter(t)
			if tt.setup != nil {
				tt.setup(repo)
			}

			request := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if !tt.anonymous {
				request = asInspector(request)
			}
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, request)

			assert.Equal(t, tt.wantStatus, recorder.Code)
		})
	}
}

/*
TestHandler_CreateOffice_RequiresSupervisor blocks inspectors from writing.
*/
func TestHandler_CreateOffice_RequiresSupervisor(t *testing.T) {
	router, _ := newRouter(t)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, asInspector(httptest.NewRequest(http.MethodPost, "/customs-offices", nil)))

	assert.Equal(t, http.StatusForbidden, recorder.Code)
}
