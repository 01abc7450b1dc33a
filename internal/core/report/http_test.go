// Copyright (c) 2026 Gumruk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package report_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/taibuivan/gumruk/internal/core/report"
	"github.com/taibuivan/gumruk/internal/platform/ctxutil"
	"github.com/taibuivan/gumruk/internal/platform/sec"
)

/*
TestHandler_Routes covers authentication, role checks and request validation.
*/
func TestHandler_Routes(t *testing.T) {
	viewer := &sec.AuthClaims{UserID: "v-1", Role: string(sec.RoleViewer)}

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		claims     *sec.AuthClaims
		setup      func(f fixture)
		wantStatus int
	}{
		{"anonymous_list", http.MethodGet, "/reports", "", nil, nil, http.StatusUnauthorized},
		{"viewer_cannot_create", http.MethodPost, "/reports", "{}", viewer, nil, http.StatusForbidden},
		{"unknown_field", http.MethodPost, "/reports", `{"case":"1"}`, inspector, nil, http.StatusBadRequest},
		{"bad_direction_filter", http.MethodGet, "/reports?direction=north", "", viewer, nil, http.StatusBadRequest},
		{"malformed_report_id", http.MethodGet, "/reports/42", "", viewer, nil, http.StatusNotFound},
		{"person_without_passport", http.MethodGet, "/persons", "", viewer, nil, http.StatusBadRequest},
		{"person_lookup", http.MethodGet, "/persons?passport_number=A1", "", viewer, func(f fixture) {
			f.repo.EXPECT().PersonReports(gomock.Any(), "A1").Return([]*report.PersonReport{}, nil)
		}, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			if tt.setup != nil {
				tt.setup(f)
			}

			handler := report.NewHandler(f.service)
			router := chi.NewRouter()
			router.Mount("/reports", handler.Routes())
			router.Mount("/persons", handler.PersonRoutes())

			request := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			if tt.claims != nil {
				request = request.WithContext(ctxutil.WithAuthUser(request.Context(), tt.claims))
			}
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, request)

			assert.Equal(t, tt.wantStatus, recorder.Code)
		})
	}
}
