// Copyright (c) 2026 Gumruk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package task manages the enforcement actions decided on a report: assigned
tasks, the letters sent while carrying them out and investigation results.

Each of the three rows may carry one PDF document. Documents are uploaded as
multipart forms and stored under documents/<yyyy>/<mm>/. Replacing or
detaching a document, or deleting its row, removes the stored object.

# Access Control

  - Authenticated: list and read.
  - Inspector and above, subject to the report edit gate: every write.
*/
package task

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/gumruk/internal/platform/constants"
	"github.com/taibuivan/gumruk/internal/platform/middleware"
	requestutil "github.com/taibuivan/gumruk/internal/platform/request"
	"github.com/taibuivan/gumruk/internal/platform/respond"
	"github.com/taibuivan/gumruk/internal/platform/sec"
)

// Handler implements the HTTP layer for tasks, letters and results.
type Handler struct {
	service *Service
}

// NewHandler constructs a task [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// TaskRoutes returns the router mounted at /assigned-tasks.
func (handler *Handler) TaskRoutes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireAuth)

	router.Get("/", handler.listTasks)
	router.Get("/{id}", handler.getTask)

	router.Group(func(writeRoute chi.Router) {
		writeRoute.Use(middleware.RequireRole(sec.RoleInspector))

		writeRoute.Post("/", handler.createTask)
		writeRoute.Put("/{id}", handler.updateTask)
		writeRoute.Delete("/{id}", handler.deleteTask)
		handler.documentRoutes(writeRoute, OwnerTask)
	})

	return router
}

// LetterRoutes returns the router mounted at /assigned-letters.
func (handler *Handler) LetterRoutes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireAuth)

	router.Get("/{id}", handler.getLetter)

	router.Group(func(writeRoute chi.Router) {
		writeRoute.Use(middleware.RequireRole(sec.RoleInspector))

		writeRoute.Post("/", handler.createLetter)
		writeRoute.Put("/{id}", handler.updateLetter)
		writeRoute.Delete("/{id}", handler.deleteLetter)
		handler.documentRoutes(writeRoute, OwnerLetter)
	})

	return router
}

// ResultRoutes returns the router mounted at /investigation-results.
func (handler *Handler) ResultRoutes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireAuth)

	router.Get("/{id}", handler.getResult)

	router.Group(func(writeRoute chi.Router) {
		writeRoute.Use(middleware.RequireRole(sec.RoleInspector))

		writeRoute.Post("/", handler.createResult)
		writeRoute.Put("/{id}", handler.updateResult)
		writeRoute.Delete("/{id}", handler.deleteResult)
		handler.documentRoutes(writeRoute, OwnerResult)
	})

	return router
}

func (handler *Handler) documentRoutes(router chi.Router, owner Owner) {
	router.Put("/{id}/document", handler.attachDocument(owner))
	router.Delete("/{id}/document", handler.removeDocument(owner))
}

// # Tasks

/*
GET /api/v1/assigned-tasks?report_id=.

Response:
  - 200: []AssignedTask with letters and investigation results
  - 400: report_id missing or malformed
*/
func (handler *Handler) listTasks(writer http.ResponseWriter, request *http.Request) {
	tasks, err := handler.service.ListTasks(request.Context(), request.URL.Query().Get(FieldReportID))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, tasks)
}

func (handler *Handler) getTask(writer http.ResponseWriter, request *http.Request) {
	task, err := handler.service.GetTask(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, task)
}

func (handler *Handler) createTask(writer http.ResponseWriter, request *http.Request) {
	var input AssignedTask
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	task, err := handler.service.CreateTask(request.Context(), requestutil.Claims(request), &input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, task)
}

func (handler *Handler) updateTask(writer http.ResponseWriter, request *http.Request) {
	var input AssignedTask
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	task, err := handler.service.UpdateTask(request.Context(), requestutil.Claims(request), requestutil.ID(request, "id"), &input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, task)
}

func (handler *Handler) deleteTask(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.DeleteTask(request.Context(), requestutil.Claims(request), requestutil.ID(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

// # Letters

func (handler *Handler) getLetter(writer http.ResponseWriter, request *http.Request) {
	letter, err := handler.service.GetLetter(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, letter)
}

func (handler *Handler) createLetter(writer http.ResponseWriter, request *http.Request) {
	var input AssignedLetter
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	letter, err := handler.service.CreateLetter(request.Context(), requestutil.Claims(request), &input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, letter)
}

func (handler *Handler) updateLetter(writer http.ResponseWriter, request *http.Request) {
	var input AssignedLetter
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	letter, err := handler.service.UpdateLetter(request.Context(), requestutil.Claims(request), requestutil.ID(request, "id"), &input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, letter)
}

func (handler *Handler) deleteLetter(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.DeleteLetter(request.Context(), requestutil.Claims(request), requestutil.ID(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

// # Investigation Results

func (handler *Handler) getResult(writer http.ResponseWriter, request *http.Request) {
	result, err := handler.service.GetResult(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, result)
}

func (handler *Handler) createResult(writer http.ResponseWriter, request *http.Request) {
	var input InvestigationResult
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.service.CreateResult(request.Context(), requestutil.Claims(request), &input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, result)
}

func (handler *Handler) updateResult(writer http.ResponseWriter, request *http.Request) {
	var input InvestigationResult
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.service.UpdateResult(request.Context(), requestutil.Claims(request), requestutil.ID(request, "id"), &input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, result)
}

func (handler *Handler) deleteResult(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.DeleteResult(request.Context(), requestutil.Claims(request), requestutil.ID(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

// # Documents

/*
PUT /api/v1/{assigned-tasks|assigned-letters|investigation-results}/{id}/document.

Request: multipart form with "file" (PDF, at most 25 MB).

Response:
  - 200: Document
  - 400: Missing file or not a PDF
  - 403: Caller may not edit the report
*/
func (handler *Handler) attachDocument(owner Owner) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		upload, err := requestutil.FormFile(writer, request, constants.MaxDocumentUploadBytes)
		if err != nil {
			respond.Error(writer, request, err)
			return
		}
		defer upload.Body.Close()

		document, err := handler.service.AttachDocument(request.Context(), requestutil.Claims(request), owner, requestutil.ID(request, "id"), Upload{
			Filename: upload.Filename,
			Body:     upload.Body,
		})
		if err != nil {
			respond.Error(writer, request, err)
			return
		}

		respond.OK(writer, document)
	}
}

func (handler *Handler) removeDocument(owner Owner) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		if err := handler.service.RemoveDocument(request.Context(), requestutil.Claims(request), owner, requestutil.ID(request, "id")); err != nil {
			respond.Error(writer, request, err)
			return
		}

		respond.NoContent(writer)
	}
}
