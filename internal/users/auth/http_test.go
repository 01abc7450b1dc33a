// Copyright (c) 2026 Gumruk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/taibuivan/gumruk/internal/platform/apperr"
	"github.com/taibuivan/gumruk/internal/platform/constants"
	"github.com/taibuivan/gumruk/internal/platform/ctxutil"
	"github.com/taibuivan/gumruk/internal/platform/sec"
	"github.com/taibuivan/gumruk/internal/users/auth"
)

func serve(f fixture, request *http.Request, claims *sec.AuthClaims) *httptest.ResponseRecorder {
	router := chi.NewRouter()
	router.Mount("/auth", auth.NewHandler(f.service).Routes())

	if claims != nil {
		request = request.WithContext(ctxutil.WithAuthUser(request.Context(), claims))
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	return recorder
}

/*
TestHandler_Routes covers the public, authenticated and admin routes.
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
		{"register_anonymous", http.MethodPost, "/auth/register", `{}`, nil, nil, http.StatusUnauthorized},
		{"register_inspector", http.MethodPost, "/auth/register", `{}`, inspector, nil, http.StatusForbidden},
		{"register_unknown_field", http.MethodPost, "/auth/register", `{"nick":"x"}`, admin, nil, http.StatusBadRequest},
		{"login_missing_password", http.MethodPost, "/auth/login", `{"login":"merdan"}`, nil, nil, http.StatusBadRequest},
		{"login_rejected", http.MethodPost, "/auth/login", `{"login":"merdan","password":"nope-nope"}`, nil, func(f fixture) {
			f.users.EXPECT().FindByLogin(gomock.Any(), "merdan").Return(nil, apperr.NotFound("User"))
		}, http.StatusUnauthorized},
		{"refresh_without_token", http.MethodPost, "/auth/refresh", ``, nil, nil, http.StatusUnauthorized},
		{"logout_without_token", http.MethodPost, "/auth/logout", ``, nil, nil, http.StatusNoContent},
		{"password_anonymous", http.MethodPut, "/auth/password", `{}`, nil, nil, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			if tt.setup != nil {
				tt.setup(f)
			}

			recorder := serve(f, httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body)), tt.claims)
			assert.Equal(t, tt.wantStatus, recorder.Code)
		})
	}
}

/*
TestHandler_Login sets the refresh cookie on the auth path.
*/
func TestHandler_Login(t *testing.T) {
	f := newFixture(t)
	f.users.EXPECT().FindByLogin(gomock.Any(), "merdan").Return(storedUser(t, "correct-horse"), nil)
	f.sessions.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	f.users.EXPECT().TouchLogin(gomock.Any(), "u-1", gomock.Any()).Return(nil)

	request := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"login":"merdan","password":"correct-horse"}`))
	recorder := serve(f, request, nil)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"access_token":"access-u-1-inspector"`)
	assert.Contains(t, recorder.Body.String(), `"token_type":"Bearer"`)

	cookies := recorder.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, constants.RefreshTokenCookieName, cookies[0].Name)
	assert.Equal(t, constants.RefreshTokenCookiePath, cookies[0].Path)
	assert.True(t, cookies[0].HttpOnly)
	assert.NotEmpty(t, cookies[0].Value)
}

/*
TestHandler_Refresh accepts the token from the JSON body when no cookie is sent.
*/
func TestHandler_Refresh(t *testing.T) {
	f := newFixture(t)
	existing := &auth.Session{ID: "s-1", UserID: "u-1", TokenHash: sec.HashToken("from-body")}

	f.sessions.EXPECT().FindByTokenHash(gomock.Any(), existing.TokenHash).Return(existing, nil)
	f.sessions.EXPECT().Revoke(gomock.Any(), existing).Return(nil)
	f.users.EXPECT().FindByID(gomock.Any(), "u-1").Return(storedUser(t, "pw-pw-pw-pw"), nil)
	f.sessions.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	request := httptest.NewRequest(http.MethodPost, "/auth/refresh", strings.NewReader(`{"refresh_token":"from-body"}`))
	recorder := serve(f, request, nil)

	assert.Equal(t, http.StatusOK, recorder.Code)
}
