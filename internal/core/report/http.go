// Copyright (c) 2026 Gumruk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package report manages case reports, their witnesses and codex citations.

A report ties a violation to the office, point and officer that recorded it.
Goods, tasks, letters and investigation results hang off a report and are
managed by their own packages; all of them go through [Guard] before a write.

# Access Control

  - Authenticated: list, read and person lookups.
  - Inspector and above: create.
  - Update and delete: administrators, the creator, or users whose profile
    lists the creator as related.
*/
package report

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/gumruk/internal/platform/middleware"
	requestutil "github.com/taibuivan/gumruk/internal/platform/request"
	"github.com/taibuivan/gumruk/internal/platform/respond"
	"github.com/taibuivan/gumruk/internal/platform/sec"
	"github.com/taibuivan/gumruk/pkg/pagination"
)

// Handler implements the HTTP layer for reports.
type Handler struct {
	service *Service
}

// NewHandler constructs a report [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router mounted at /reports.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireAuth)

	router.Get("/", handler.list)
	router.Get("/{id}", handler.get)

	router.Group(func(writeRoute chi.Router) {
		writeRoute.Use(middleware.RequireRole(sec.RoleInspector))

		writeRoute.Post("/", handler.create)
		writeRoute.Put("/{id}", handler.update)
		writeRoute.Delete("/{id}", handler.delete)
	})

	return router
}

// PersonRoutes returns the router mounted at /persons.
func (handler *Handler) PersonRoutes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireAuth)
	router.Get("/", handler.personInfo)
	return router
}

/*
GET /api/v1/reports.

Request: see [FilterFromRequest], plus page and limit.

Response:
  - 200: []Report: Paginated list, newest first
  - 400: Malformed dates or unknown direction
*/
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	filter, err := FilterFromRequest(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	params := pagination.FromRequest(request)
	reports, total, err := handler.service.List(request.Context(), filter, params.Limit, params.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, reports, pagination.NewMeta(params.Page, params.Limit, total))
}

func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	report, err := handler.service.Get(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, report)
}

/*
POST /api/v1/reports.

Description: The caller becomes the report owner.

Response:
  - 201: Report
  - 400: Validation failures
  - 409: Duplicate case, protocol or declaration number
  - 422: Unknown violation, office, point, officer or lookup
*/
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var input Report
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	report, err := handler.service.Create(request.Context(), requestutil.Claims(request), &input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, report)
}

/*
PUT /api/v1/reports/{id}.

Response:
  - 200: Report
  - 403: Caller may not edit this report
*/
func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	var input Report
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	report, err := handler.service.Update(request.Context(), requestutil.Claims(request), requestutil.ID(request, "id"), &input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, report)
}

func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.Delete(request.Context(), requestutil.Claims(request), requestutil.ID(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

/*
GET /api/v1/persons?passport_number=.

Response:
  - 200: []PersonReport
  - 400: passport_number missing
*/
func (handler *Handler) personInfo(writer http.ResponseWriter, request *http.Request) {
	reports, err := handler.service.PersonInfo(request.Context(), request.URL.Query().Get("passport_number"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, reports)
}
