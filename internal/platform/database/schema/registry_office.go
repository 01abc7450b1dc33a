// Copyright (c) 2026 Gumruk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// CustomsOfficeTable represents the 'registry.customs_office' table
type CustomsOfficeTable struct {
	Table     string
	ID        string
	Name      string
	Code      string
	CreatedAt string
	UpdatedAt string
}

// CustomsOffice is the schema definition for registry.customs_office
var CustomsOffice = CustomsOfficeTable{
	Table:     "registry.customs_office",
	ID:        "id",
	Name:      "name",
	Code:      "code",
	CreatedAt: "created_at",
	UpdatedAt: "updated_at",
}

func (t CustomsOfficeTable) Columns() []string {
	return []string{t.ID, t.Name, t.Code, t.CreatedAt, t.UpdatedAt}
}

// CustomsPointTable represents the 'registry.customs_point' table
type CustomsPointTable struct {
	Table     string
	ID        string
	OfficeID  string
	Name      string
	Code      string
	CreatedAt string
	UpdatedAt string
}

// CustomsPoint is the schema definition for registry.customs_point
var CustomsPoint = CustomsPointTable{
	Table:     "registry.customs_point",
	ID:        "id",
	OfficeID:  "office_id",
	Name:      "name",
	Code:      "code",
	CreatedAt: "created_at",
	UpdatedAt: "updated_at",
}

func (t CustomsPointTable) Columns() []string {
	return []string{t.ID, t.OfficeID, t.Name, t.Code, t.CreatedAt, t.UpdatedAt}
}
