// Copyright (c) 2026 Gumruk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package violation manages the offenders named on reports.

A violation is one of three kinds. Legal entities carry the company group
(name, head, address, phone); individuals and officials carry the person
group (names, birth data, passport, nationality, address). The service keeps
exactly one group populated and resets the other when the kind changes.

# Access Control

  - Authenticated: list, read, create and update.
  - Admin: delete.
*/
package violation

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/gumruk/internal/platform/middleware"
	requestutil "github.com/taibuivan/gumruk/internal/platform/request"
	"github.com/taibuivan/gumruk/internal/platform/respond"
	"github.com/taibuivan/gumruk/internal/platform/sec"
	"github.com/taibuivan/gumruk/pkg/pagination"
)

// Handler implements the HTTP layer for violations.
type Handler struct {
	service *Service
}

// NewHandler constructs a violation [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type violationView struct {
	*Violation
	FullName    string `json:"full_name"`
	DisplayName string `json:"display_name"`
}

func view(violation *Violation) violationView {
	return violationView{Violation: violation, FullName: violation.FullName(), DisplayName: violation.DisplayName()}
}

// Routes returns the router mounted at /violations.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireAuth)

	router.Get("/", handler.list)
	router.Get("/{id}", handler.get)

	router.Group(func(writeRoute chi.Router) {
		writeRoute.Use(middleware.RequireRole(sec.RoleInspector))

		writeRoute.Post("/", handler.create)
		writeRoute.Put("/{id}", handler.update)

		writeRoute.With(middleware.RequireRole(sec.RoleAdmin)).Delete("/{id}", handler.delete)
	})

	return router
}

/*
GET /api/v1/violations.

Request:
  - kind: legal_entity | individual | official
  - q: string (company, head, names, passport)
  - page, limit: int

Response:
  - 200: []violationView: Paginated list, newest first
  - 400: Unknown kind
*/
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)
	filter := Filter{Query: request.URL.Query().Get("q")}
	if raw := request.URL.Query().Get("kind"); raw != "" {
		kind := Kind(raw)
		filter.Kind = &kind
	}

	violations, total, err := handler.service.List(request.Context(), filter, params.Limit, params.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	views := make([]violationView, len(violations))
	for i, violation := range violations {
		views[i] = view(violation)
	}

	respond.Paginated(writer, views, pagination.NewMeta(params.Page, params.Limit, total))
}

func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	violation, err := handler.service.Get(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, view(violation))
}

/*
POST /api/v1/violations.

Description: Fields of the group the kind does not use are ignored.

Response:
  - 201: violationView
  - 400: Missing kind-specific fields
  - 409: Duplicate company, head, passport or identity
*/
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var input Violation
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Create(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, view(&input))
}

/*
PUT /api/v1/violations/{id}.

Description: Changing the kind clears the abandoned attribute group.
*/
func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	var input Violation
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Update(request.Context(), requestutil.ID(request, "id"), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, view(&input))
}

func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.Delete(request.Context(), requestutil.ID(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
