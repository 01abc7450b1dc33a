// Copyright (c) 2026 Gumruk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package product

import (
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Product is a kind of seized goods ("Cigarettes", "Mobile phone").
type Product struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	CategoryID   *int      `json:"category_id"`
	CategoryName string    `json:"category_name,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Filter holds the parameters for a paginated product search.
type Filter struct {
	Query      string
	CategoryID *int
}

const (
	FieldName       = "name"
	FieldCategoryID = "category_id"
)

const maxNameLength = 255

// Capitalize trims s and returns it with the first letter upper-cased and
// the remainder lower-cased ("tELEFON" becomes "Telefon").
func Capitalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}

	// Casers carry state and are built per call.
	_, size := utf8.DecodeRuneInString(s)
	return cases.Upper(language.Und).String(s[:size]) + cases.Lower(language.Und).String(s[size:])
}
