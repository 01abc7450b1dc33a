// Copyright (c) 2026 Gumruk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package goods manages the goods seized under a report and their photos.

Photos are uploaded as multipart forms, resized to fit 800x800, re-encoded as
JPEG and written to object storage. Replacing or deleting a photo removes the
old object.

# Access Control

  - Authenticated: list and read.
  - Inspector and above, subject to the report edit gate: every write.
*/
package goods

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/gumruk/internal/platform/constants"
	"github.com/taibuivan/gumruk/internal/platform/middleware"
	requestutil "github.com/taibuivan/gumruk/internal/platform/request"
	"github.com/taibuivan/gumruk/internal/platform/respond"
	"github.com/taibuivan/gumruk/internal/platform/sec"
)

// Handler implements the HTTP layer for stored goods.
type Handler struct {
	service *Service
}

// NewHandler constructs a goods [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// GoodRoutes returns the router mounted at /stored-goods.
func (handler *Handler) GoodRoutes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireAuth)

	router.Get("/", handler.list)
	router.Get("/{id}", handler.get)

	router.Group(func(writeRoute chi.Router) {
		writeRoute.Use(middleware.RequireRole(sec.RoleInspector))

		writeRoute.Post("/", handler.create)
		writeRoute.Put("/{id}", handler.update)
		writeRoute.Delete("/{id}", handler.delete)
		writeRoute.Post("/{id}/images", handler.addImage)
	})

	return router
}

// ImageRoutes returns the router mounted at /stored-good-images.
func (handler *Handler) ImageRoutes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireAuth, middleware.RequireRole(sec.RoleInspector))

	router.Put("/{id}", handler.updateImage)
	router.Delete("/{id}", handler.deleteImage)

	return router
}

/*
GET /api/v1/stored-goods?report_id=.

Response:
  - 200: []StoredGood
  - 400: report_id missing or malformed
*/
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	goods, err := handler.service.ListByReport(request.Context(), request.URL.Query().Get("report_id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, goods)
}

func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	good, err := handler.service.Get(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, good)
}

func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var input StoredGood
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	good, err := handler.service.Create(request.Context(), requestutil.Claims(request), &input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, good)
}

func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	var input StoredGood
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	good, err := handler.service.Update(request.Context(), requestutil.Claims(request), requestutil.ID(request, "id"), &input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, good)
}

func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.Delete(request.Context(), requestutil.Claims(request), requestutil.ID(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

/*
POST /api/v1/stored-goods/{id}/images.

Request: multipart form with "file" (image, at most 15 MB) and optional "description".

Response:
  - 201: Image
  - 400: Missing or undecodable file
  - 403: Caller may not edit the report
*/
func (handler *Handler) addImage(writer http.ResponseWriter, request *http.Request) {
	upload, err := requestutil.FormFile(writer, request, constants.MaxImageUploadBytes)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	defer upload.Body.Close()

	image, err := handler.service.AddImage(request.Context(), requestutil.Claims(request), requestutil.ID(request, "id"), Upload{
		Filename:    upload.Filename,
		Body:        upload.Body,
		Description: upload.Fields[FieldDescription],
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, image)
}

/*
PUT /api/v1/stored-good-images/{id}.

Request: multipart form with "description" and, to replace the photo, "file".
*/
func (handler *Handler) updateImage(writer http.ResponseWriter, request *http.Request) {
	input := Upload{}

	upload, err := requestutil.FormFile(writer, request, constants.MaxImageUploadBytes)
	switch {
	case err == nil:
		defer upload.Body.Close()
		input = Upload{Filename: upload.Filename, Body: upload.Body, Description: upload.Fields[FieldDescription]}
	case request.MultipartForm != nil:
		// Description-only update
		input.Description = request.FormValue(FieldDescription)
	default:
		respond.Error(writer, request, err)
		return
	}

	image, err := handler.service.UpdateImage(request.Context(), requestutil.Claims(request), requestutil.ID(request, "id"), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, image)
}

func (handler *Handler) deleteImage(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.DeleteImage(request.Context(), requestutil.Claims(request), requestutil.ID(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
