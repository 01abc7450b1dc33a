// Copyright (c) 2026 Gumruk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// ViolationTable represents the 'cases.violation' table
type ViolationTable struct {
	Table               string
	ID                  string
	Kind                string
	CompanyName         string
	CompanyBossFullName string
	Address             string
	Phone               string
	ViolatorName        string
	ViolatorSurname     string
	FatherName          string
	DateOfBirth         string
	PlaceOfBirth        string
	PassportNumber      string
	PassportIssueDate   string
	NationalityID       string
	ViolatorAddress     string
	CreatedAt           string
	UpdatedAt           string
}

// Violation is the schema definition for cases.violation
var Violation = ViolationTable{
	Table:               "cases.violation",
	ID:                  "id",
	Kind:                "kind",
	CompanyName:         "company_name",
	CompanyBossFullName: "company_boss_full_name",
	Address:             "address",
	Phone:               "phone",
	ViolatorName:        "violator_name",
	ViolatorSurname:     "violator_surname",
	FatherName:          "father_name",
	DateOfBirth:         "date_of_birth",
	PlaceOfBirth:        "place_of_birth",
	PassportNumber:      "passport_number",
	PassportIssueDate:   "passport_issue_date",
	NationalityID:       "nationality_id",
	ViolatorAddress:     "violator_address",
	CreatedAt:           "created_at",
	UpdatedAt:           "updated_at",
}

func (t ViolationTable) Columns() []string {
	return []string{t.ID, t.Kind, t.CompanyName, t.CompanyBossFullName, t.Address, t.Phone, t.ViolatorName, t.ViolatorSurname, t.FatherName, t.DateOfBirth, t.PlaceOfBirth, t.PassportNumber, t.PassportIssueDate, t.NationalityID, t.ViolatorAddress, t.CreatedAt, t.UpdatedAt}
}
