// Copyright (c) 2026 Gumruk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package auth implements accounts, credentials and refresh sessions.

Accounts live in PostgreSQL (users.account). Refresh sessions live in Redis
keyed by the SHA-256 digest of the opaque token, so flushing Redis logs
everyone out and loses nothing else.

Browsers receive the refresh token as an HttpOnly cookie scoped to
/api/v1/auth; other clients may send it as "refresh_token" in the JSON body.

# Access Control

  - Public: login, refresh, logout.
  - Authenticated: change own password.
  - Admin: register accounts.
*/
package auth

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/gumruk/internal/platform/constants"
	"github.com/taibuivan/gumruk/internal/platform/middleware"
	requestutil "github.com/taibuivan/gumruk/internal/platform/request"
	"github.com/taibuivan/gumruk/internal/platform/respond"
	"github.com/taibuivan/gumruk/internal/platform/sec"
	"github.com/taibuivan/gumruk/internal/platform/validate"
)

// Handler implements the HTTP layer for authentication.
type Handler struct {
	service *Service
}

// NewHandler constructs an auth [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router mounted at /auth.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/login", handler.login)
	router.Post("/refresh", handler.refresh)
	router.Post("/logout", handler.logout)

	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Put("/password", handler.changePassword)
		r.With(middleware.RequireRole(sec.RoleAdmin)).Post("/register", handler.register)
	})

	return router
}

// # Request Payloads

type registerRequest struct {
	Username string       `json:"username"`
	Email    string       `json:"email"`
	Password string       `json:"password"`
	FullName string       `json:"full_name"`
	Role     sec.UserRole `json:"role"`
}

type loginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

/*
POST /api/v1/auth/register.

Response:
  - 201: User
  - 400: Validation failure
  - 403: Caller is not an administrator
  - 409: Username or email taken
*/
func (handler *Handler) register(writer http.ResponseWriter, request *http.Request) {
	var input registerRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.service.Register(request.Context(), requestutil.Claims(request), RegisterInput{
		Username: input.Username,
		Email:    input.Email,
		Password: input.Password,
		FullName: input.FullName,
		Role:     input.Role,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, user)
}

/*
POST /api/v1/auth/login.

Request:
  - Body: {"login": username or email, "password"}

Response:
  - 200: Access token and user; the refresh token is set as a cookie
  - 401: Invalid credentials
*/
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var input loginRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldLogin, input.Login).Required(FieldPassword, input.Password)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	session, err := handler.service.Login(request.Context(), LoginInput{
		Login:     input.Login,
		Password:  input.Password,
		UserAgent: request.UserAgent(),
		IPAddress: middleware.RealIP(request),
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	writeSession(writer, session)
}

/*
POST /api/v1/auth/refresh.

Response:
  - 200: New access token; the rotated refresh token is set as a cookie
  - 401: Missing, expired or already used refresh token
*/
func (handler *Handler) refresh(writer http.ResponseWriter, request *http.Request) {
	session, err := handler.service.Refresh(
		request.Context(),
		refreshTokenFrom(request),
		request.UserAgent(),
		middleware.RealIP(request),
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	writeSession(writer, session)
}

/*
POST /api/v1/auth/logout.

Response:
  - 204: Session revoked and cookie cleared
*/
func (handler *Handler) logout(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.Logout(request.Context(), refreshTokenFrom(request)); err != nil {
		respond.Error(writer, request, err)
		return
	}

	http.SetCookie(writer, refreshCookie("", time.Time{}, -1))
	respond.NoContent(writer)
}

/*
PUT /api/v1/auth/password.

Response:
  - 204: Password changed, other sessions revoked
  - 400: Validation failure
  - 401: Current password is wrong
*/
func (handler *Handler) changePassword(writer http.ResponseWriter, request *http.Request) {
	var input changePasswordRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	currentToken := ""
	if cookie, err := request.Cookie(constants.RefreshTokenCookieName); err == nil {
		currentToken = cookie.Value
	}

	err := handler.service.ChangePassword(request.Context(), requestutil.Claims(request),
		input.CurrentPassword, input.NewPassword, currentToken)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

// # Helpers

func writeSession(writer http.ResponseWriter, session *LoginSession) {
	http.SetCookie(writer, refreshCookie(session.RefreshToken, session.RefreshTokenExpiresAt, 0))

	respond.OK(writer, map[string]any{
		FieldAccessToken:  session.AccessToken,
		FieldTokenType:    "Bearer",
		FieldExpiresIn:    int(AccessTokenTTL / time.Second),
		FieldRefreshToken: session.RefreshToken,
		FieldUser:         session.User,
	})
}

func refreshCookie(value string, expires time.Time, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     constants.RefreshTokenCookieName,
		Value:    value,
		Path:     constants.RefreshTokenCookiePath,
		Expires:  expires,
		MaxAge:   maxAge,
		Secure:   true,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	}
}

// refreshTokenFrom prefers the cookie and falls back to a JSON body.
func refreshTokenFrom(request *http.Request) string {
	if cookie, err := request.Cookie(constants.RefreshTokenCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	var body refreshRequest
	if request.Body != nil && json.NewDecoder(request.Body).Decode(&body) == nil {
		return body.RefreshToken
	}
	return ""
}
