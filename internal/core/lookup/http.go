// Copyright (c) 2026 Gumruk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package lookup serves the name/description reference tables that reports,
goods and tasks point to: discovery methods, violation reasons, workgroups,
codex articles, units and the rest.

# Access Control

  - Authenticated: list and read every kind.
  - Supervisor: create and update rows.
  - Admin: delete rows no case still references.
*/
package lookup

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/gumruk/internal/platform/middleware"
	requestutil "github.com/taibuivan/gumruk/internal/platform/request"
	"github.com/taibuivan/gumruk/internal/platform/respond"
	"github.com/taibuivan/gumruk/internal/platform/sec"
	"github.com/taibuivan/gumruk/pkg/pagination"
)

// Handler implements the HTTP layer for lookup tables.
type Handler struct {
	service *Service
}

// NewHandler constructs a lookup [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router mounted at /lookups.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireAuth)

	router.Get("/", handler.listKinds)

	router.Route("/{kind}", func(kindRoute chi.Router) {
		kindRoute.Get("/", handler.list)
		kindRoute.Get("/{id}", handler.get)

		kindRoute.Group(func(writeRoute chi.Router) {
			writeRoute.Use(middleware.RequireRole(sec.RoleSupervisor))

			writeRoute.Post("/", handler.create)
			writeRoute.Put("/{id}", handler.update)

			writeRoute.With(middleware.RequireRole(sec.RoleAdmin)).Delete("/{id}", handler.delete)
		})
	})

	return router
}

func kindOf(request *http.Request) Kind {
	return Kind(chi.URLParam(request, "kind"))
}

/*
GET /api/v1/lookups.

Description: Lists the available lookup kinds with their labels and limits.

Response:
  - 200: []Spec
*/
func (handler *Handler) listKinds(writer http.ResponseWriter, _ *http.Request) {
	respond.OK(writer, Specs())
}

/*
GET /api/v1/lookups/{kind}.

Description: Paginated rows of one kind, ordered by name.

Request:
  - q: string (case-insensitive name search)
  - page, limit: int

Response:
  - 200: []Lookup: Paginated list
  - 404: Unknown kind
*/
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)
	filter := Filter{Query: request.URL.Query().Get("q")}

	items, total, err := handler.service.List(request.Context(), kindOf(request), filter, params.Limit, params.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, items, pagination.NewMeta(params.Page, params.Limit, total))
}

/*
GET /api/v1/lookups/{kind}/{id}.

Response:
  - 200: Lookup
  - 400: Malformed ID
  - 404: Unknown kind or row
*/
func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	item, err := handler.service.Get(request.Context(), kindOf(request), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, item)
}

/*
POST /api/v1/lookups/{kind}.

Request (Body):
  - name: string (required)
  - description: string

Response:
  - 201: Lookup
  - 400: Validation failure
  - 409: Duplicate name
*/
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var input Lookup
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Create(request.Context(), kindOf(request), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, input)
}

/*
PUT /api/v1/lookups/{kind}/{id}.

Response:
  - 200: Lookup
  - 404: Row not found
  - 409: Duplicate name
*/
func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Lookup
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Update(request.Context(), kindOf(request), id, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, input)
}

/*
DELETE /api/v1/lookups/{kind}/{id}.

Response:
  - 204: Deleted
  - 404: Row not found
  - 422: Row still referenced
*/
func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Delete(request.Context(), kindOf(request), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
