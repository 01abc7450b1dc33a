// Copyright (c) 2026 Gumruk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package export renders the report list as Excel workbooks.

Both layouts accept the report list filter. The flat layout writes one row
per stored good; the grouped layout collects the reports of each offender and
is limited to administrators.

# Access Control

  - Authenticated: flat export.
  - Admin: grouped export.
*/
package export

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/gumruk/internal/core/report"
	"github.com/taibuivan/gumruk/internal/platform/constants"
	"github.com/taibuivan/gumruk/internal/platform/middleware"
	requestutil "github.com/taibuivan/gumruk/internal/platform/request"
	"github.com/taibuivan/gumruk/internal/platform/respond"
	"github.com/taibuivan/gumruk/internal/platform/sec"
)

// Handler implements the HTTP layer for exports.
type Handler struct {
	service *Service
}

// NewHandler constructs an export [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router mounted at /exports.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireAuth)

	router.Get("/reports", handler.flat)
	router.With(middleware.RequireRole(sec.RoleAdmin)).Get("/reports/grouped", handler.grouped)

	return router
}

/*
GET /api/v1/exports/reports.

Request: the query parameters of GET /api/v1/reports.

Response:
  - 200: reports_<YYYYmmdd_HHMMSS>.xlsx, with X-Export-Truncated: true when cut off
  - 400: Malformed filter
*/
func (handler *Handler) flat(writer http.ResponseWriter, request *http.Request) {
	filter, err := report.FilterFromRequest(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	file, err := handler.service.Flat(request.Context(), requestutil.Claims(request), filter)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	writeFile(writer, file)
}

/*
GET /api/v1/exports/reports/grouped.

Response:
  - 200: report_export_<YYYYmmdd_HHMMSS>.xlsx
  - 403: Caller is not an administrator
*/
func (handler *Handler) grouped(writer http.ResponseWriter, request *http.Request) {
	filter, err := report.FilterFromRequest(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	file, err := handler.service.Grouped(request.Context(), requestutil.Claims(request), filter)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	writeFile(writer, file)
}

func writeFile(writer http.ResponseWriter, file *File) {
	if file.Truncated {
		writer.Header().Set(constants.HeaderXExportTruncated, "true")
	}
	respond.Attachment(writer, file.Name, ContentType, file.Data)
}
