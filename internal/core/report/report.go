// Copyright (c) 2026 Gumruk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package report

import (
	"slices"
	"time"

	"github.com/taibuivan/gumruk/internal/platform/sec"
	"github.com/taibuivan/gumruk/pkg/date"
)

// Direction is the movement across the border during which the violation was found.
type Direction string

const (
	DirectionEntry   Direction = "entry"
	DirectionExit    Direction = "exit"
	DirectionTransit Direction = "transit"
)

// IsValid reports whether d is a known direction.
func (d Direction) IsValid() bool {
	switch d {
	case DirectionEntry, DirectionExit, DirectionTransit:
		return true
	}
	return false
}

// Label is the human form of the direction.
func (d Direction) Label() string {
	switch d {
	case DirectionEntry:
		return "Entry"
	case DirectionExit:
		return "Exit"
	case DirectionTransit:
		return "Transit"
	}
	return string(d)
}

// DefaultLanguageOfWork is used when a report does not name the working language.
const DefaultLanguageOfWork = "Turkmen"

// Report is the case file of one seizure or violation event.
type Report struct {
	ID                string     `json:"id"`
	CaseNumber        string     `json:"case_number"`
	ProtocolNumber    string     `json:"protocol_number"`
	DeclarationNumber string     `json:"declaration_number"`
	ReportDate        *date.Date `json:"report_date"`

	ViolationID string `json:"violation_id"`
	OfficeID    int    `json:"office_id"`
	PointID     int    `json:"point_id"`
	OfficerID   int    `json:"officer_id"`
	BasisID     int    `json:"basis_id"`
	MethodID    *int   `json:"method_id"`
	CodexIDs    []int  `json:"codex_ids"`

	LanguageOfWork     string    `json:"language_of_work"`
	Direction          Direction `json:"direction"`
	FromCountryID      *int      `json:"from_country_id"`
	ToCountryID        *int      `json:"to_country_id"`
	VehicleBrandID     *int      `json:"vehicle_brand_id"`
	TransportCompanyID *int      `json:"transport_company_id"`
	CarNumber          string    `json:"car_number"`

	Witnesses []Witness `json:"witnesses"`

	// Stamped from the caller on create and never changed afterwards
	CreatedBy         *string `json:"created_by"`
	CreatedByUsername string  `json:"created_by_username,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Witness is a person present when the report was drawn up.
type Witness struct {
	ID       int    `json:"id"`
	FullName string `json:"full_name"`
	Address  string `json:"address"`
}

// normalizeCodexes drops duplicates and non-positive IDs and sorts the rest.
func (report *Report) normalizeCodexes() {
	codexes := make([]int, 0, len(report.CodexIDs))
	for _, id := range report.CodexIDs {
		if id > 0 {
			codexes = append(codexes, id)
		}
	}
	slices.Sort(codexes)
	report.CodexIDs = slices.Compact(codexes)
}

// Filter narrows report lists and exports. Nil fields do not filter.
type Filter struct {
	CreatedFrom    *date.Date
	CreatedTo      *date.Date
	Direction      *Direction
	ReportDateFrom *date.Date
	ReportDateTo   *date.Date
	OfficeID       *int
	PointID        *int
	FromCountryID  *int
	ToCountryID    *int
	BasisID        *int
	MethodID       *int
	OfficerID      *int
	CodexIDs       []int
	Query          string

	// Location decides the calendar day of created_at. Nil means UTC.
	Location *time.Location
}

/*
CanEdit decides whether actor may change a report owned by ownerID.

Administrators may edit everything. Other users may edit their own reports and
the reports of the users listed as related in their profile. A report without
an owner is editable by administrators only.

Parameters:
  - actor: *sec.AuthClaims
  - ownerID: *string (report creator, nil when the account was deleted)
  - related: []string (the actor's related user IDs)
*/
func CanEdit(actor *sec.AuthClaims, ownerID *string, related []string) bool {
	if actor == nil {
		return false
	}
	if actor.IsAdmin() {
		return true
	}
	if ownerID == nil {
		return false
	}
	return *ownerID == actor.UserID || slices.Contains(related, *ownerID)
}

// # Field Identifiers

const (
	FieldCaseNumber        = "case_number"
	FieldProtocolNumber    = "protocol_number"
	FieldDeclarationNumber = "declaration_number"
	FieldViolationID       = "violation_id"
	FieldOfficeID          = "office_id"
	FieldPointID           = "point_id"
	FieldOfficerID         = "officer_id"
	FieldBasisID           = "basis_id"
	FieldDirection         = "direction"
	FieldLanguageOfWork    = "language_of_work"
	FieldCarNumber         = "car_number"
	FieldWitnesses         = "witnesses"
	FieldPassportNumber    = "passport_number"
)

const (
	maxNumberLength   = 255
	maxLanguageLength = 100
	maxCarNumber      = 20
	maxWitnessName    = 255
	maxWitnessAddress = 512
)
