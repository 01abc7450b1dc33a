// Copyright (c) 2026 Gumruk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package requestutil provides utilities for extracting data from HTTP requests.

It hides chi's parameter extraction and the body/query/multipart decoding patterns so
every handler reports malformed input the same way.
*/
package requestutil

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/gumruk/internal/platform/apperr"
	"github.com/taibuivan/gumruk/internal/platform/constants"
	"github.com/taibuivan/gumruk/internal/platform/ctxutil"
	"github.com/taibuivan/gumruk/internal/platform/sec"
	"github.com/taibuivan/gumruk/internal/platform/validate"
	"github.com/taibuivan/gumruk/pkg/convert"
	"github.com/taibuivan/gumruk/pkg/date"
)

/*
DecodeJSON reads the request body and decodes it into the target structure.

Parameters:
  - request: *http.Request
  - target: interface{} (Pointer to the destination struct)

Returns:
  - error: validate.ErrInvalidJSON if decoding fails, otherwise nil
*/
func DecodeJSON(request *http.Request, target interface{}) error {
	decoder := json.NewDecoder(request.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(target); err != nil {
		return validate.ErrInvalidJSON.WithCause(err)
	}
	return nil
}

/*
ID retrieves a named URL parameter (UUID) from the request.
*/
func ID(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
IntID retrieves a named integer URL parameter, such as a lookup row ID.

Returns:
  - int: parsed identifier
  - error: VALIDATION_ERROR when the segment is not a positive integer
*/
func IntID(request *http.Request, name string) (int, error) {
	raw := chi.URLParam(request, name)
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return 0, validate.RequiredError(name, "Must be a positive integer")
	}
	return value, nil
}

/*
QueryInt parses an optional integer query parameter.
Missing or malformed values yield nil.
*/
func QueryInt(request *http.Request, name string) *int {
	return convert.IntPtr(request.URL.Query().Get(name))
}

/*
QueryDate parses an optional YYYY-MM-DD query parameter.

Returns:
  - *date.Date: nil when absent
  - error: VALIDATION_ERROR when present but malformed
*/
func QueryDate(request *http.Request, name string) (*date.Date, error) {
	raw := strings.TrimSpace(request.URL.Query().Get(name))
	if raw == "" {
		return nil, nil
	}
	value, err := date.Parse(raw)
	if err != nil {
		return nil, validate.RequiredError(name, "Must be a date in YYYY-MM-DD format")
	}
	return &value, nil
}

/*
QueryTime parses an optional RFC 3339 or YYYY-MM-DD query parameter as an instant.
*/
func QueryTime(request *http.Request, name string) (*time.Time, error) {
	raw := strings.TrimSpace(request.URL.Query().Get(name))
	if raw == "" {
		return nil, nil
	}
	if value, err := time.Parse(time.RFC3339, raw); err == nil {
		return &value, nil
	}
	if value, err := date.Parse(raw); err == nil {
		instant := value.Time
		return &instant, nil
	}
	return nil, validate.RequiredError(name, "Must be an RFC 3339 timestamp or YYYY-MM-DD date")
}

// Upload is a file received through a multipart form.
type Upload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.ReadCloser
	Fields      map[string]string
}

/*
FormFile reads the single "file" part of a multipart request, capped at maxBytes.
Non-file form values are copied into Upload.Fields.

The caller must close Upload.Body.
*/
func FormFile(writer http.ResponseWriter, request *http.Request, maxBytes int64) (*Upload, error) {
	request.Body = http.MaxBytesReader(writer, request.Body, maxBytes)
	if err := request.ParseMultipartForm(maxBytes); err != nil {
		return nil, validate.RequiredError(constants.FormFieldFile, fmt.Sprintf("Expected a multipart upload of at most %d MB", maxBytes>>20)).WithCause(err)
	}

	file, header, err := request.FormFile(constants.FormFieldFile)
	if err != nil {
		return nil, validate.RequiredError(constants.FormFieldFile, "This field is required")
	}

	fields := make(map[string]string, len(request.MultipartForm.Value))
	for key, values := range request.MultipartForm.Value {
		if len(values) > 0 {
			fields[key] = values[0]
		}
	}

	return &Upload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Body:        file,
		Fields:      fields,
	}, nil
}

/*
Claims extracts the authenticated user claims from the request context.

Returns nil if the request is not authenticated.
*/
func Claims(request *http.Request) *sec.AuthClaims {
	return ctxutil.GetAuthUser(request.Context())
}

/*
RequiredClaims ensures the request is authenticated and returns the user claims.

Returns:
  - *sec.AuthClaims: The authenticated user claims
  - error: apperr.Unauthorized if the request is not authenticated
*/
func RequiredClaims(request *http.Request) (*sec.AuthClaims, error) {
	claims := ctxutil.GetAuthUser(request.Context())
	if claims == nil {
		return nil, apperr.Unauthorized("Authentication required")
	}
	return claims, nil
}

/*
RequiredUserID returns the User ID of the currently logged-in user.
*/
func RequiredUserID(request *http.Request) (string, error) {
	claims, err := RequiredClaims(request)
	if err != nil {
		return "", err
	}
	return claims.UserID, nil
}
