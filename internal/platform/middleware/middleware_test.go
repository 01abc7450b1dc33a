// Copyright (c) 2026 Gumruk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/gumruk/internal/platform/ctxutil"
	"github.com/taibuivan/gumruk/internal/platform/middleware"
	"github.com/taibuivan/gumruk/internal/platform/sec"
)

type stubVerifier struct {
	claims *sec.AuthClaims
}

func (verifier stubVerifier) VerifyToken(token string) (*sec.AuthClaims, error) {
	if token != "good" {
		return nil, errors.New("bad token")
	}
	return verifier.claims, nil
}

type recordedRequest struct {
	method string
	route  string
	status int
}

type stubObserver struct {
	requests []recordedRequest
}

func (observer *stubObserver) ObserveRequest(method, route string, status int, _ time.Duration) {
	observer.requests = append(observer.requests, recordedRequest{method, route, status})
}

func okHandler(writer http.ResponseWriter, _ *http.Request) {
	writer.WriteHeader(http.StatusOK)
}

/*
TestAuthenticate covers anonymous, malformed, invalid and valid tokens.
*/
func TestAuthenticate(t *testing.T) {
	verifier := stubVerifier{claims: &sec.AuthClaims{UserID: "u-7", Role: string(sec.RoleInspector)}}

	var seen *sec.AuthClaims
	handler := middleware.Authenticate(verifier)(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		seen = ctxutil.GetAuthUser(request.Context())
		writer.WriteHeader(http.StatusOK)
	}))

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantUser   bool
	}{
		{"anonymous", "", http.StatusOK, false},
		{"malformed", "Token good", http.StatusUnauthorized, false},
		{"invalid", "Bearer nope", http.StatusUnauthorized, false},
		{"valid", "Bearer good", http.StatusOK, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seen = nil
			request := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				request.Header.Set("Authorization", tt.header)
			}
			recorder := httptest.NewRecorder()

			handler.ServeHTTP(recorder, request)

			assert.Equal(t, tt.wantStatus, recorder.Code)
			assert.Equal(t, tt.wantUser, seen != nil)
		})
	}
}

/*
TestRequireRole verifies the role ladder at the HTTP boundary.
*/
func TestRequireRole(t *testing.T) {
	guarded := middleware.RequireRole(sec.RoleSupervisor)(http.HandlerFunc(okHandler))

	tests := []struct {
		name       string
		claims     *sec.AuthClaims
		wantStatus int
	}{
		{"anonymous", nil, http.StatusUnauthorized},
		{"inspector", &sec.AuthClaims{Role: string(sec.RoleInspector)}, http.StatusForbidden},
		{"supervisor", &sec.AuthClaims{Role: string(sec.RoleSupervisor)}, http.StatusOK},
		{"admin", &sec.AuthClaims{Role: string(sec.RoleAdmin)}, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodPost, "/lookups/units", nil)
			if tt.claims != nil {
				request = request.WithContext(ctxutil.WithAuthUser(request.Context(), tt.claims))
			}
			recorder := httptest.NewRecorder()

			guarded.ServeHTTP(recorder, request)
			assert.Equal(t, tt.wantStatus, recorder.Code)
		})
	}
}

/*
TestMetrics_RoutePattern labels requests with the chi pattern, not the raw path.
*/
func TestMetrics_RoutePattern(t *testing.T) {
	observer := &stubObserver{}

	router := chi.NewRouter()
	router.Use(middleware.Metrics(observer))
	router.Get("/reports/{id}", okHandler)

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/reports/0190a1b2", nil))

	require.Len(t, observer.requests, 1)
	assert.Equal(t, "/reports/{id}", observer.requests[0].route)
	assert.Equal(t, http.StatusOK, observer.requests[0].status)
}

/*
TestRateLimit rejects a client once its burst is spent.
*/
func TestRateLimit(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	handler := middleware.RateLimit(ctx, 0.001, 2)(http.HandlerFunc(okHandler))

	statuses := make([]int, 0, 3)
	for range 3 {
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		request.RemoteAddr = "10.0.0.1:5000"
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)
		statuses = append(statuses, recorder.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, statuses)
}

/*
TestRequestID echoes a supplied ID and generates one otherwise.
*/
func TestRequestID(t *testing.T) {
	handler := middleware.RequestID()(http.HandlerFunc(okHandler))

	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.Header.Set("X-Request-ID", "abc")
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	assert.Equal(t, "abc", recorder.Header().Get("X-Request-ID"))

	recorder = httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Len(t, recorder.Header().Get("X-Request-ID"), 36)
}

/*
TestRealIP prefers proxy headers over the socket address.
*/
func TestRealIP(t *testing.T) {
	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.RemoteAddr = "192.0.2.10:1234"
	assert.Equal(t, "192.0.2.10", middleware.RealIP(request))

	request.Header.Set("X-Forwarded-For", "203.0.113.5, 10.0.0.1")
	assert.Equal(t, "203.0.113.5", middleware.RealIP(request))

	request.Header.Set("X-Real-IP", "198.51.100.7")
	assert.Equal(t, "198.51.100.7", middleware.RealIP(request))
}
