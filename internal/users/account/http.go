// Copyright (c) 2026 Gumruk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package account serves user profiles and the admin user directory.

A profile carries the related users whose reports its owner may edit in
addition to their own; report, goods and task handlers consult that list
through [Service.RelatedUserIDs].

# Access Control

  - Authenticated: own profile (GET /me).
  - Admin: list, read and edit accounts; replace related users.
*/
package account

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/gumruk/internal/platform/middleware"
	requestutil "github.com/taibuivan/gumruk/internal/platform/request"
	"github.com/taibuivan/gumruk/internal/platform/respond"
	"github.com/taibuivan/gumruk/internal/platform/sec"
	"github.com/taibuivan/gumruk/pkg/pagination"
)

// Handler implements the HTTP layer for profiles.
type Handler struct {
	service *Service
}

// NewHandler constructs an account [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router mounted at /users.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireAuth)

	router.Get("/me", handler.me)

	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireRole(sec.RoleAdmin))
		r.Get("/", handler.list)
		r.Get("/{id}", handler.get)
		r.Put("/{id}", handler.update)
		r.Put("/{id}/related-users", handler.replaceRelated)
	})

	return router
}

type relatedUsersRequest struct {
	RelatedUsers []string `json:"related_users"`
}

/*
GET /api/v1/users/me.

Response:
  - 200: Profile with related users
*/
func (handler *Handler) me(writer http.ResponseWriter, request *http.Request) {
	profile, err := handler.service.Me(request.Context(), requestutil.Claims(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, profile)
}

/*
GET /api/v1/users.

Request:
  - Query: q, role, page, limit
*/
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)
	filter := Filter{Query: request.URL.Query().Get("q")}
	if raw := request.URL.Query().Get("role"); raw != "" {
		role := sec.UserRole(raw)
		filter.Role = &role
	}

	users, total, err := handler.service.List(request.Context(), requestutil.Claims(request), filter, params.Limit, params.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, users, pagination.NewMeta(params.Page, params.Limit, total))
}

func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	profile, err := handler.service.Get(request.Context(), requestutil.Claims(request), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, profile)
}

/*
PUT /api/v1/users/{id}.

Request:
  - Body: {"email", "full_name", "role", "is_active"}

Response:
  - 200: Updated profile
  - 400: Validation failure, including self-demotion
*/
func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	var input UpdateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	profile, err := handler.service.Update(request.Context(), requestutil.Claims(request), requestutil.ID(request, "id"), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, profile)
}

/*
PUT /api/v1/users/{id}/related-users.

Request:
  - Body: {"related_users": [user IDs]}; an empty list clears the set

Response:
  - 200: Updated profile
  - 422: A listed user does not exist
*/
func (handler *Handler) replaceRelated(writer http.ResponseWriter, request *http.Request) {
	var input relatedUsersRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	profile, err := handler.service.ReplaceRelated(request.Context(), requestutil.Claims(request), requestutil.ID(request, "id"), input.RelatedUsers)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, profile)
}
