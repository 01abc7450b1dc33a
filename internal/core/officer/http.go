// Copyright (c) 2026 Gumruk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package officer manages the customs officers named on reports.
package officer

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/gumruk/internal/platform/middleware"
	requestutil "github.com/taibuivan/gumruk/internal/platform/request"
	"github.com/taibuivan/gumruk/internal/platform/respond"
	"github.com/taibuivan/gumruk/internal/platform/sec"
	"github.com/taibuivan/gumruk/pkg/pagination"
)

// Handler implements the HTTP layer for officers.
type Handler struct {
	service *Service
}

// NewHandler constructs an officer [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// officerView adds the rendered display name to API responses.
type officerView struct {
	*CustomsOfficer
	DisplayName string `json:"display_name"`
}

func view(officer *CustomsOfficer) officerView {
	return officerView{CustomsOfficer: officer, DisplayName: officer.DisplayName()}
}

// Routes returns the router mounted at /customs-officers.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireAuth)

	router.Get("/", handler.list)
	router.Get("/{id}", handler.get)

	router.Group(func(writeRoute chi.Router) {
		writeRoute.Use(middleware.RequireRole(sec.RoleSupervisor))

		writeRoute.Post("/", handler.create)
		writeRoute.Put("/{id}", handler.update)

		writeRoute.With(middleware.RequireRole(sec.RoleAdmin)).Delete("/{id}", handler.delete)
	})

	return router
}

/*
GET /api/v1/customs-officers.

Request:
  - q: string (name, midname, surname, rank or position)
  - page, limit: int

Response:
  - 200: []officerView: Paginated list ordered by surname, name
*/
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)
	filter := Filter{Query: request.URL.Query().Get("q")}

	officers, total, err := handler.service.List(request.Context(), filter, params.Limit, params.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	views := make([]officerView, len(officers))
	for i, officer := range officers {
		views[i] = view(officer)
	}

	respond.Paginated(writer, views, pagination.NewMeta(params.Page, params.Limit, total))
}

func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	officer, err := handler.service.Get(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, view(officer))
}

func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var input CustomsOfficer
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	officer, err := handler.service.Create(request.Context(), &input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, view(officer))
}

func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input CustomsOfficer
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	officer, err := handler.service.Update(request.Context(), id, &input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, view(officer))
}

func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Delete(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
