// Copyright (c) 2026 Gumruk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// CountryTable represents the 'registry.country' table
type CountryTable struct {
	Table     string
	ID        string
	Name      string
	Code      string
	CreatedAt string
	UpdatedAt string
}

// Country is the schema definition for registry.country
var Country = CountryTable{
	Table:     "registry.country",
	ID:        "id",
	Name:      "name",
	Code:      "code",
	CreatedAt: "created_at",
	UpdatedAt: "updated_at",
}

func (t CountryTable) Columns() []string {
	return []string{t.ID, t.Name, t.Code, t.CreatedAt, t.UpdatedAt}
}

// CityTable represents the 'registry.city' table
type CityTable struct {
	Table     string
	ID        string
	CountryID string
	Name      string
	CreatedAt string
	UpdatedAt string
}

// City is the schema definition for registry.city
var City = CityTable{
	Table:     "registry.city",
	ID:        "id",
	CountryID: "country_id",
	Name:      "name",
	CreatedAt: "created_at",
	UpdatedAt: "updated_at",
}

func (t CityTable) Columns() []string {
	return []string{t.ID, t.CountryID, t.Name, t.CreatedAt, t.UpdatedAt}
}
