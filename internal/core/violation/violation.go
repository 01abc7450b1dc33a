// Copyright (c) 2026 Gumruk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package violation

import (
	"strings"
	"time"

	"github.com/taibuivan/gumruk/pkg/date"
)

// Kind tells which attribute group of a [Violation] is in use.
type Kind string

const (
	KindLegalEntity Kind = "legal_entity"
	KindIndividual  Kind = "individual"
	KindOfficial    Kind = "official"
)

// Kinds lists every kind in display order.
var Kinds = []Kind{KindLegalEntity, KindIndividual, KindOfficial}

// IsValid reports whether k is a known kind.
func (k Kind) IsValid() bool {
	switch k {
	case KindLegalEntity, KindIndividual, KindOfficial:
		return true
	}
	return false
}

// IsPerson reports whether k uses the person attribute group.
func (k Kind) IsPerson() bool {
	return k == KindIndividual || k == KindOfficial
}

// Label is the human form of the kind.
func (k Kind) Label() string {
	switch k {
	case KindLegalEntity:
		return "Legal entity"
	case KindIndividual:
		return "Individual"
	case KindOfficial:
		return "Official"
	}
	return string(k)
}

// Violation is the offender of a report: a company, a private person or an
// official. Company fields are used by legal entities, person fields by the
// other two kinds.
type Violation struct {
	ID   string `json:"id"`
	Kind Kind   `json:"kind"`

	// Company group
	CompanyName         string `json:"company_name"`
	CompanyBossFullName string `json:"company_boss_full_name"`
	Address             string `json:"address"`
	Phone               string `json:"phone"`

	// Person group
	ViolatorName      string     `json:"violator_name"`
	ViolatorSurname   string     `json:"violator_surname"`
	FatherName        string     `json:"father_name"`
	DateOfBirth       *date.Date `json:"date_of_birth"`
	PlaceOfBirth      string     `json:"place_of_birth"`
	PassportNumber    string     `json:"passport_number"`
	PassportIssueDate *date.Date `json:"passport_issue_date"`
	NationalityID     *int       `json:"nationality_id"`
	NationalityName   string     `json:"nationality_name,omitempty"`
	ViolatorAddress   string     `json:"violator_address"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func joinNonEmpty(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			kept = append(kept, part)
		}
	}
	return strings.Join(kept, " ")
}

// FullName is "<name> <surname> <father name>" with blanks skipped.
func (v *Violation) FullName() string {
	return joinNonEmpty(v.ViolatorName, v.ViolatorSurname, v.FatherName)
}

// DisplayName is "<kind>: <company>" for legal entities and
// "<kind>: <surname> <name> <father name>" for people. The bare kind label
// is returned when the relevant names are empty.
func (v *Violation) DisplayName() string {
	label := v.Kind.Label()

	switch {
	case v.Kind == KindLegalEntity && v.CompanyName != "":
		return label + ": " + v.CompanyName
	case v.Kind.IsPerson():
		if name := joinNonEmpty(v.ViolatorSurname, v.ViolatorName, v.FatherName); name != "" {
			return label + ": " + name
		}
	}
	return label
}

// OffenderName is the company name for legal entities and the full name otherwise.
func (v *Violation) OffenderName() string {
	if v.Kind == KindLegalEntity {
		return v.CompanyName
	}
	return v.FullName()
}

func (v *Violation) clearCompany() {
	v.CompanyName = ""
	v.CompanyBossFullName = ""
	v.Address = ""
	v.Phone = ""
}

func (v *Violation) clearPerson() {
	v.ViolatorName = ""
	v.ViolatorSurname = ""
	v.FatherName = ""
	v.DateOfBirth = nil
	v.PlaceOfBirth = ""
	v.PassportNumber = ""
	v.PassportIssueDate = nil
	v.NationalityID = nil
	v.NationalityName = ""
	v.ViolatorAddress = ""
}

// ClearInapplicable empties the attribute group the current kind does not use.
func (v *Violation) ClearInapplicable() {
	if v.Kind == KindLegalEntity {
		v.clearPerson()
		return
	}
	v.clearCompany()
}

/*
ResetOnKindChange clears the group left behind when the kind moves away from
previous.

Leaving a legal entity, or becoming an individual or official, empties the
company group. Becoming a legal entity from a person kind empties the person
group. Nothing changes when the kind is unchanged.

Returns true when a reset happened.
*/
func (v *Violation) ResetOnKindChange(previous Kind) bool {
	if previous == v.Kind {
		return false
	}

	if previous == KindLegalEntity || v.Kind.IsPerson() {
		v.clearCompany()
		return true
	}

	if v.Kind == KindLegalEntity {
		v.clearPerson()
		return true
	}
	return false
}

// normalize trims every free-text field.
func (v *Violation) normalize() {
	for _, field := range []*string{
		&v.CompanyName, &v.CompanyBossFullName, &v.Address, &v.Phone,
		&v.ViolatorName, &v.ViolatorSurname, &v.FatherName, &v.PlaceOfBirth,
		&v.PassportNumber, &v.ViolatorAddress,
	} {
		*field = strings.TrimSpace(*field)
	}
}

// Filter holds the parameters for a paginated violation search.
type Filter struct {
	Kind  *Kind
	Query string // company, boss, person names or passport number
}

const (
	FieldKind                = "kind"
	FieldCompanyName         = "company_name"
	FieldCompanyBossFullName = "company_boss_full_name"
	FieldAddress             = "address"
	FieldPhone               = "phone"
	FieldViolatorName        = "violator_name"
	FieldViolatorSurname     = "violator_surname"
	FieldFatherName          = "father_name"
	FieldDateOfBirth         = "date_of_birth"
	FieldPlaceOfBirth        = "place_of_birth"
	FieldPassportNumber      = "passport_number"
	FieldNationalityID       = "nationality_id"
	FieldViolatorAddress     = "violator_address"
)

const (
	maxTextLength  = 255
	maxPhoneLength = 50
)
