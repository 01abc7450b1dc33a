// Copyright (c) 2026 Gumruk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// CustomsOfficerTable represents the 'registry.customs_officer' table
type CustomsOfficerTable struct {
	Table          string
	ID             string
	Name           string
	Surname        string
	Midname        string
	PositionID     string
	MilitaryNameID string
	CreatedAt      string
	UpdatedAt      string
}

// CustomsOfficer is the schema definition for registry.customs_officer
var CustomsOfficer = CustomsOfficerTable{
	Table:          "registry.customs_officer",
	ID:             "id",
	Name:           "name",
	Surname:        "surname",
	Midname:        "midname",
	PositionID:     "position_id",
	MilitaryNameID: "military_name_id",
	CreatedAt:      "created_at",
	UpdatedAt:      "updated_at",
}

func (t CustomsOfficerTable) Columns() []string {
	return []string{t.ID, t.Name, t.Surname, t.Midname, t.PositionID, t.MilitaryNameID, t.CreatedAt, t.UpdatedAt}
}
