// Copyright (c) 2026 Gumruk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package office manages customs offices and the checkpoints each one operates.

Reports reference both; the report form picks an office first and then one of
that office's points, which is what [Handler.listOfficePoints] serves.
*/
package office

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/gumruk/internal/platform/middleware"
	requestutil "github.com/taibuivan/gumruk/internal/platform/request"
	"github.com/taibuivan/gumruk/internal/platform/respond"
	"github.com/taibuivan/gumruk/internal/platform/sec"
	"github.com/taibuivan/gumruk/pkg/pagination"
)

// Handler implements the HTTP layer for offices and points.
type Handler struct {
	service *Service
}

// NewHandler constructs an office [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// OfficeRoutes returns the router mounted at /customs-offices.
func (handler *Handler) OfficeRoutes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireAuth)

	router.Get("/", handler.listOffices)
	router.Get("/{id}", handler.getOffice)
	router.Get("/{id}/points", handler.listOfficePoints)

	router.Group(func(writeRoute chi.Router) {
		writeRoute.Use(middleware.RequireRole(sec.RoleSupervisor))

		writeRoute.Post("/", handler.createOffice)
		writeRoute.Put("/{id}", handler.updateOffice)

		writeRoute.With(middleware.RequireRole(sec.RoleAdmin)).Delete("/{id}", handler.deleteOffice)
	})

	return router
}

// PointRoutes returns the router mounted at /customs-points.
func (handler *Handler) PointRoutes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireAuth)

	router.Get("/", handler.listPoints)
	router.Get("/{id}", handler.getPoint)

	router.Group(func(writeRoute chi.Router) {
		writeRoute.Use(middleware.RequireRole(sec.RoleSupervisor))

		writeRoute.Post("/", handler.createPoint)
		writeRoute.Put("/{id}", handler.updatePoint)

		writeRoute.With(middleware.RequireRole(sec.RoleAdmin)).Delete("/{id}", handler.deletePoint)
	})

	return router
}

// # Offices

/*
GET /api/v1/customs-offices.

Request:
  - q: string (name or code)
  - page, limit: int

Response:
  - 200: []CustomsOffice: Paginated list
*/
func (handler *Handler) listOffices(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)
	filter := Filter{Query: request.URL.Query().Get("q")}

	offices, total, err := handler.service.ListOffices(request.Context(), filter, params.Limit, params.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, offices, pagination.NewMeta(params.Page, params.Limit, total))
}

func (handler *Handler) getOffice(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	office, err := handler.service.GetOffice(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, office)
}

/*
GET /api/v1/customs-offices/{id}/points.

Description: Dependent dropdown data for the report form.

Request:
  - q: string (optional name fragment)

Response:
  - 200: {"points": [{"id", "name"}]}
  - 404: Office not found
*/
func (handler *Handler) listOfficePoints(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	options, err := handler.service.PointOptions(request.Context(), id, request.URL.Query().Get("q"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]any{"points": options})
}

func (handler *Handler) createOffice(writer http.ResponseWriter, request *http.Request) {
	var input CustomsOffice
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateOffice(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, input)
}

func (handler *Handler) updateOffice(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input CustomsOffice
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateOffice(request.Context(), id, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, input)
}

func (handler *Handler) deleteOffice(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteOffice(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

// # Points

/*
GET /api/v1/customs-points.

Request:
  - office_id: int (optional)
  - q: string
  - page, limit: int
*/
func (handler *Handler) listPoints(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)
	filter := Filter{
		Query:    request.URL.Query().Get("q"),
		OfficeID: requestutil.QueryInt(request, "office_id"),
	}

	points, total, err := handler.service.ListPoints(request.Context(), filter, params.Limit, params.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, points, pagination.NewMeta(params.Page, params.Limit, total))
}

func (handler *Handler) getPoint(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	point, err := handler.service.GetPoint(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, point)
}

func (handler *Handler) createPoint(writer http.ResponseWriter, request *http.Request) {
	var input CustomsPoint
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreatePoint(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, input)
}

func (handler *Handler) updatePoint(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input CustomsPoint
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdatePoint(request.Context(), id, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, input)
}

func (handler *Handler) deletePoint(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeletePoint(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
