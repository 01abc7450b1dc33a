// Copyright (c) 2026 Gumruk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package geo

import "time"

// Country is a state that goods travel from or to, and the nationality of violators.
type Country struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Code      string    `json:"code"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// City belongs to exactly one country.
type City struct {
	ID        int       `json:"id"`
	CountryID int       `json:"country_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Filter holds the parameters for a paginated country or city search.
type Filter struct {
	Query string // case-insensitive match on name (and code for countries)
}

const (
	FieldName      = "name"
	FieldCode      = "code"
	FieldCountryID = "country_id"
)

const (
	maxNameLength = 255
	maxCodeLength = 3
)
