// Copyright (c) 2026 Gumruk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package officer

import (
	"strings"
	"time"
)

// CustomsOfficer is the inspector who drew up a report.
//
// PositionName and MilitaryName are read-only and filled from the joined
// lookup tables.
type CustomsOfficer struct {
	ID             int       `json:"id"`
	Name           string    `json:"name"`
	Surname        string    `json:"surname"`
	Midname        string    `json:"midname"`
	PositionID     *int      `json:"position_id"`
	MilitaryNameID *int      `json:"military_name_id"`
	PositionName   string    `json:"position_name,omitempty"`
	MilitaryName   string    `json:"military_name,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// DisplayName renders "<rank> <surname> <name> <midname> (<position>)",
// skipping blank parts.
func (officer *CustomsOfficer) DisplayName() string {
	parts := make([]string, 0, 4)
	for _, part := range []string{officer.MilitaryName, officer.Surname, officer.Name, officer.Midname} {
		if part = strings.TrimSpace(part); part != "" {
			parts = append(parts, part)
		}
	}

	display := strings.Join(parts, " ")
	if position := strings.TrimSpace(officer.PositionName); position != "" {
		display += " (" + position + ")"
	}
	return display
}

// ShortName is "<name> <surname>", the form used in exports.
func (officer *CustomsOfficer) ShortName() string {
	return strings.TrimSpace(officer.Name + " " + officer.Surname)
}

// Filter holds the parameters for a paginated officer search.
type Filter struct {
	Query string // name, midname, surname, rank or position
}

const (
	FieldName           = "name"
	FieldSurname        = "surname"
	FieldMidname        = "midname"
	FieldPositionID     = "position_id"
	FieldMilitaryNameID = "military_name_id"
)

const maxNameLength = 255
