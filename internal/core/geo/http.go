// Copyright (c) 2026 Gumruk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package geo manages countries and their cities.

Countries are the origin and destination of transported goods and the
nationality of individual violators.
*/
package geo

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/gumruk/internal/platform/middleware"
	requestutil "github.com/taibuivan/gumruk/internal/platform/request"
	"github.com/taibuivan/gumruk/internal/platform/respond"
	"github.com/taibuivan/gumruk/internal/platform/sec"
	"github.com/taibuivan/gumruk/pkg/pagination"
)

// Handler implements the HTTP layer for geography data.
type Handler struct {
	service *Service
}

// NewHandler constructs a geo [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// CountryRoutes returns the router mounted at /countries.
func (handler *Handler) CountryRoutes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireAuth)

	router.Get("/", handler.listCountries)
	router.Get("/{id}", handler.getCountry)
	router.Get("/{id}/cities", handler.listCities)

	router.Group(func(writeRoute chi.Router) {
		writeRoute.Use(middleware.RequireRole(sec.RoleSupervisor))

		writeRoute.Post("/", handler.createCountry)
		writeRoute.Put("/{id}", handler.updateCountry)

		writeRoute.With(middleware.RequireRole(sec.RoleAdmin)).Delete("/{id}", handler.deleteCountry)
	})

	return router
}

// CityRoutes returns the router mounted at /cities.
func (handler *Handler) CityRoutes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireAuth)

	router.Get("/{id}", handler.getCity)

	router.Group(func(writeRoute chi.Router) {
		writeRoute.Use(middleware.RequireRole(sec.RoleSupervisor))

		writeRoute.Post("/", handler.createCity)
		writeRoute.Put("/{id}", handler.updateCity)

		writeRoute.With(middleware.RequireRole(sec.RoleAdmin)).Delete("/{id}", handler.deleteCity)
	})

	return router
}

// # Countries

/*
GET /api/v1/countries.

Request:
  - q: string (name or code)
  - page, limit: int

Response:
  - 200: []Country: Paginated list
*/
func (handler *Handler) listCountries(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)
	filter := Filter{Query: request.URL.Query().Get("q")}

	countries, total, err := handler.service.ListCountries(request.Context(), filter, params.Limit, params.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, countries, pagination.NewMeta(params.Page, params.Limit, total))
}

func (handler *Handler) getCountry(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	country, err := handler.service.GetCountry(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, country)
}

func (handler *Handler) createCountry(writer http.ResponseWriter, request *http.Request) {
	var input Country
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateCountry(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, input)
}

func (handler *Handler) updateCountry(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Country
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateCountry(request.Context(), id, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, input)
}

/*
DELETE /api/v1/countries/{id}.

Description: Removes the country and its cities. Countries still referenced
by reports or violators are refused.

Response:
  - 204: Deleted
  - 422: Still referenced
*/
func (handler *Handler) deleteCountry(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteCountry(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

// # Cities

/*
GET /api/v1/countries/{id}/cities.

Response:
  - 200: []City: Paginated list
  - 404: Country not found
*/
func (handler *Handler) listCities(writer http.ResponseWriter, request *http.Request) {
	countryID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	params := pagination.FromRequest(request)
	filter := Filter{Query: request.URL.Query().Get("q")}

	cities, total, err := handler.service.ListCities(request.Context(), countryID, filter, params.Limit, params.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, cities, pagination.NewMeta(params.Page, params.Limit, total))
}

func (handler *Handler) getCity(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	city, err := handler.service.GetCity(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, city)
}

func (handler *Handler) createCity(writer http.ResponseWriter, request *http.Request) {
	var input City
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateCity(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, input)
}

func (handler *Handler) updateCity(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input City
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateCity(request.Context(), id, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, input)
}

func (handler *Handler) deleteCity(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteCity(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
