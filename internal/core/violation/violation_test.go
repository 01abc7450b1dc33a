// Copyright (c) 2026 Gumruk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package violation_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/gumruk/internal/core/violation"
	"github.com/taibuivan/gumruk/pkg/date"
	"github.com/taibuivan/gumruk/pkg/pointer"
)

func populated(kind violation.Kind) *violation.Violation {
	born := date.New(1985, time.March, 2)
	return &violation.Violation{
		Kind:                kind,
		CompanyName:         "Altyn Ýol HJ",
		CompanyBossFullName: "Myradow Serdar",
		Address:             "Aşgabat, Bitarap 12",
		Phone:               "+99312000000",
		ViolatorName:        "Merdan",
		ViolatorSurname:     "Annaýew",
		FatherName:          "Batyrowiç",
		DateOfBirth:         &born,
		PlaceOfBirth:        "Mary",
		PassportNumber:      "I-AŞ 123456",
		NationalityID:       pointer.To(1),
		ViolatorAddress:     "Mary, Magtymguly 4",
	}
}

func companyCleared(t *testing.T, v *violation.Violation) {
	t.Helper()
	assert.Empty(t, v.CompanyName)
	assert.Empty(t, v.CompanyBossFullName)
	assert.Empty(t, v.Address)
	assert.Empty(t, v.Phone)
}

func personCleared(t *testing.T, v *violation.Violation) {
	t.Helper()
	assert.Empty(t, v.ViolatorName)
	assert.Empty(t, v.ViolatorSurname)
	assert.Empty(t, v.FatherName)
	assert.Nil(t, v.DateOfBirth)
	assert.Empty(t, v.PlaceOfBirth)
	assert.Empty(t, v.PassportNumber)
	assert.Nil(t, v.PassportIssueDate)
	assert.Nil(t, v.NationalityID)
	assert.Empty(t, v.ViolatorAddress)
}

/*
TestViolation_ResetOnKindChange covers every transition between the three kinds.
*/
func TestViolation_ResetOnKindChange(t *testing.T) {
	tests := []struct {
		name          string
		from, to      violation.Kind
		wantReset     bool
		clearsCompany bool
		clearsPerson  bool
	}{
		{"unchanged_legal", violation.KindLegalEntity, violation.KindLegalEntity, false, false, false},
		{"unchanged_individual", violation.KindIndividual, violation.KindIndividual, false, false, false},
		{"legal_to_individual", violation.KindLegalEntity, violation.KindIndividual, true, true, false},
		{"legal_to_official", violation.KindLegalEntity, violation.KindOfficial, true, true, false},
		{"individual_to_official", violation.KindIndividual, violation.KindOfficial, true, true, false},
		{"official_to_individual", violation.KindOfficial, violation.KindIndividual, true, true, false},
		{"individual_to_legal", violation.KindIndividual, violation.KindLegalEntity, true, false, true},
		{"official_to_legal", violation.KindOfficial, violation.KindLegalEntity, true, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := populated(tt.to)

			assert.Equal(t, tt.wantReset, v.ResetOnKindChange(tt.from))

			if tt.clearsCompany {
				companyCleared(t, v)
			} else {
				assert.NotEmpty(t, v.CompanyName)
			}
			if tt.clearsPerson {
				personCleared(t, v)
			} else {
				assert.NotEmpty(t, v.ViolatorName)
			}
		})
	}
}

/*
TestViolation_ClearInapplicable keeps only the group the kind uses.
*/
func TestViolation_ClearInapplicable(t *testing.T) {
	legal := populated(violation.KindLegalEntity)
	legal.ClearInapplicable()
	personCleared(t, legal)
	assert.Equal(t, "Altyn Ýol HJ", legal.CompanyName)

	official := populated(violation.KindOfficial)
	official.ClearInapplicable()
	companyCleared(t, official)
	assert.Equal(t, "Merdan", official.ViolatorName)
}

/*
TestViolation_Names checks the full and display name forms.
*/
func TestViolation_Names(t *testing.T) {
	tests := []struct {
		name        string
		violation   violation.Violation
		wantFull    string
		wantDisplay string
	}{
		{
			"legal_entity",
			violation.Violation{Kind: violation.KindLegalEntity, CompanyName: "Altyn Ýol HJ"},
			"",
			"Legal entity: Altyn Ýol HJ",
		},
		{
			"individual",
			violation.Violation{Kind: violation.KindIndividual, ViolatorName: "Merdan", ViolatorSurname: "Annaýew", FatherName: "Batyrowiç"},
			"Merdan Annaýew Batyrowiç",
			"Individual: Annaýew Merdan Batyrowiç",
		},
		{
			"official_without_father",
			violation.Violation{Kind: violation.KindOfficial, ViolatorName: "Merdan", ViolatorSurname: "Annaýew"},
			"Merdan Annaýew",
			"Official: Annaýew Merdan",
		},
		{
			"legal_entity_without_company",
			violation.Violation{Kind: violation.KindLegalEntity},
			"",
			"Legal entity",
		},
		{
			"individual_without_names",
			violation.Violation{Kind: violation.KindIndividual},
			"",
			"Individual",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantFull, tt.violation.FullName())
			assert.Equal(t, tt.wantDisplay, tt.violation.DisplayName())
		})
	}
}
