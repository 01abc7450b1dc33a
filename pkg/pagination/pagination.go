// Copyright (c) 2026 Gumruk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package pagination reads page/limit query parameters and builds the meta
// block of list responses.
package pagination

import (
	"net/http"

	"github.com/taibuivan/gumruk/pkg/convert"
)

const (
	// DefaultLimit is the page size when none is requested. Lookup lists cache only this size.
	DefaultLimit = 20
	// MaxLimit caps the page size; larger requests fall back to DefaultLimit.
	MaxLimit = 100
	// DefaultPage is the first page (1-indexed).
	DefaultPage = 1
)

// Params holds the parsed page and limit from a request's query string.
type Params struct {
	Page  int
	Limit int
}

// Offset returns the SQL OFFSET for the page.
func (p Params) Offset() int {
	if p.Page <= 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit
}

// Meta is the pagination block of list responses.
type Meta struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// NewMeta builds the meta block for total matching rows.
func NewMeta(page, limit, total int) Meta {
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return Meta{Page: page, Limit: limit, Total: total, TotalPages: totalPages}
}

// FromRequest parses "page" and "limit". Values below 1, above [MaxLimit]
// or not numeric fall back to the defaults.
func FromRequest(r *http.Request) Params {
	query := r.URL.Query()
	page := convert.IntOr(query.Get("page"), DefaultPage)
	limit := convert.IntOr(query.Get("limit"), DefaultLimit)

	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 || limit > MaxLimit {
		limit = DefaultLimit
	}
	return Params{Page: page, Limit: limit}
}
