// Copyright (c) 2026 Gumruk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package office

import (
	"time"
)

// CustomsOffice is a regional customs administration.
type CustomsOffice struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Code      *string   `json:"code"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Label renders "<code> - <name>", or just the name without a code.
func (office *CustomsOffice) Label() string {
	if office.Code == nil || *office.Code == "" {
		return office.Name
	}
	return *office.Code + " - " + office.Name
}

// CustomsPoint is a checkpoint operated by one office.
type CustomsPoint struct {
	ID        int       `json:"id"`
	OfficeID  int       `json:"office_id"`
	Name      string    `json:"name"`
	Code      *string   `json:"code"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PointOption is the compact form used by dependent dropdowns.
type PointOption struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Filter holds the parameters for a paginated office or point search.
type Filter struct {
	Query    string
	OfficeID *int // points only
}

const (
	FieldName     = "name"
	FieldCode     = "code"
	FieldOfficeID = "office_id"
)

const (
	maxNameLength = 255
	maxCodeLength = 5
)
