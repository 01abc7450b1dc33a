// Copyright (c) 2026 Gumruk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// ReportTable represents the 'cases.report' table
type ReportTable struct {
	Table              string
	ID                 string
	CaseNumber         string
	ProtocolNumber     string
	DeclarationNumber  string
	ReportDate         string
	ViolationID        string
	OfficeID           string
	PointID            string
	OfficerID          string
	BasisID            string
	MethodID           string
	LanguageOfWork     string
	Direction          string
	FromCountryID      string
	ToCountryID        string
	VehicleBrandID     string
	TransportCompanyID string
	CarNumber          string
	CreatedBy          string
	CreatedAt          string
	UpdatedAt          string
}

// Report is the schema definition for cases.report
var Report = ReportTable{
	Table:              "cases.report",
	ID:                 "id",
	CaseNumber:         "case_number",
	ProtocolNumber:     "protocol_number",
	DeclarationNumber:  "declaration_number",
	ReportDate:         "report_date",
	ViolationID:        "violation_id",
	OfficeID:           "office_id",
	PointID:            "point_id",
	OfficerID:          "officer_id",
	BasisID:            "basis_id",
	MethodID:           "method_id",
	LanguageOfWork:     "language_of_work",
	Direction:          "direction",
	FromCountryID:      "from_country_id",
	ToCountryID:        "to_country_id",
	VehicleBrandID:     "vehicle_brand_id",
	TransportCompanyID: "transport_company_id",
	CarNumber:          "car_number",
	CreatedBy:          "created_by",
	CreatedAt:          "created_at",
	UpdatedAt:          "updated_at",
}

func (t ReportTable) Columns() []string {
	return []string{t.ID, t.CaseNumber, t.ProtocolNumber, t.DeclarationNumber, t.ReportDate, t.ViolationID, t.OfficeID, t.PointID, t.OfficerID, t.BasisID, t.MethodID, t.LanguageOfWork, t.Direction, t.FromCountryID, t.ToCountryID, t.VehicleBrandID, t.TransportCompanyID, t.CarNumber, t.CreatedBy, t.CreatedAt, t.UpdatedAt}
}

// ReportCodexTable represents the 'cases.report_codex' table
type ReportCodexTable struct {
	Table    string
	ReportID string
	CodexID  string
}

// ReportCodex is the schema definition for cases.report_codex
var ReportCodex = ReportCodexTable{
	Table:    "cases.report_codex",
	ReportID: "report_id",
	CodexID:  "codex_id",
}

// WitnessTable represents the 'cases.witness' table
type WitnessTable struct {
	Table     string
	ID        string
	ReportID  string
	FullName  string
	Address   string
	CreatedAt string
	UpdatedAt string
}

// Witness is the schema definition for cases.witness
var Witness = WitnessTable{
	Table:     "cases.witness",
	ID:        "id",
	ReportID:  "report_id",
	FullName:  "full_name",
	Address:   "address",
	CreatedAt: "created_at",
	UpdatedAt: "updated_at",
}

func (t WitnessTable) Columns() []string {
	return []string{t.ID, t.ReportID, t.FullName, t.Address, t.CreatedAt, t.UpdatedAt}
}
