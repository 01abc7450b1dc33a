// Copyright (c) 2026 Gumruk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/taibuivan/gumruk/internal/platform/ctxutil"
	"github.com/taibuivan/gumruk/internal/platform/sec"
	"github.com/taibuivan/gumruk/internal/users/account"
	"github.com/taibuivan/gumruk/internal/users/auth"
)

/*
TestHandler_Routes covers the profile and admin routes.
*/
func TestHandler_Routes(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		claims     *sec.AuthClaims
		setup      func(f fixture)
		wantStatus int
	}{
		{"me_anonymous", http.MethodGet, "/users/me", "", nil, nil, http.StatusUnauthorized},
		{"me", http.MethodGet, "/users/me", "", inspector, func(f fixture) {
			f.repo.EXPECT().Get(gomock.Any(), inspectorID).Return(user(inspectorID, sec.RoleInspector), nil)
			f.repo.EXPECT().RelatedUsers(gomock.Any(), inspectorID).Return(nil, nil)
		}, http.StatusOK},
		{"list_inspector", http.MethodGet, "/users", "", inspector, nil, http.StatusForbidden},
		{"list_bad_role", http.MethodGet, "/users?role=root", "", admin, nil, http.StatusBadRequest},
		{"list", http.MethodGet, "/users?q=aman&page=2", "", admin, func(f fixture) {
			f.repo.EXPECT().List(gomock.Any(), account.Filter{Query: "aman"}, 20, 20).Return([]*auth.User{}, 0, nil)
		}, http.StatusOK},
		{"get_malformed", http.MethodGet, "/users/42", "", admin, nil, http.StatusNotFound},
		{"related_unknown_field", http.MethodPut, "/users/" + inspectorID + "/related-users", `{"users":[]}`, admin, nil, http.StatusBadRequest},
		{"related_inspector", http.MethodPut, "/users/" + inspectorID + "/related-users", `{"related_users":[]}`, inspector, nil, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			if tt.setup != nil {
				tt.setup(f)
			}

			router := chi.NewRouter()
			router.Mount("/users", account.NewHandler(f.service).Routes())

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
