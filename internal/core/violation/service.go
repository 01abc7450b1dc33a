// Copyright (c) 2026 Gumruk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package violation

import (
	"context"
	"log/slog"
	"strings"

	"github.com/taibuivan/gumruk/internal/platform/apperr"
	"github.com/taibuivan/gumruk/internal/platform/dberr"
	"github.com/taibuivan/gumruk/internal/platform/validate"
	"github.com/taibuivan/gumruk/pkg/uuid"
)

func init() {
	dberr.RegisterConstraint("violation_company_name_key", "A violation for this company already exists")
	dberr.RegisterConstraint("violation_company_boss_key", "A violation naming this company head already exists")
	dberr.RegisterConstraint("violation_passport_number_key", "A violator with this passport number already exists")
	dberr.RegisterConstraint("violation_identity_key", "This violator is already registered")
	dberr.RegisterConstraint("violation_kind_check", "Unknown violation kind")
	dberr.RegisterConstraint("violation_nationality_id_fkey", "Nationality does not exist")
}

// Service implements the business logic for violations.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a violation service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// List returns a page of violations.
func (service *Service) List(context context.Context, filter Filter, limit, offset int) ([]*Violation, int, error) {
	if filter.Kind != nil && !filter.Kind.IsValid() {
		return nil, 0, validate.RequiredError(FieldKind, "Must be one of legal_entity, individual, official")
	}
	filter.Query = strings.TrimSpace(filter.Query)
	return service.repo.List(context, filter, limit, offset)
}

// Get returns a single violation.
func (service *Service) Get(context context.Context, id string) (*Violation, error) {
	if !uuid.Valid(id) {
		return nil, apperr.NotFound("Violation")
	}
	return service.repo.Get(context, id)
}

// FindByPassport returns the violator holding passportNumber.
func (service *Service) FindByPassport(context context.Context, passportNumber string) (*Violation, error) {
	passportNumber = strings.TrimSpace(passportNumber)
	if passportNumber == "" {
		return nil, validate.RequiredError(FieldPassportNumber, "This field is required")
	}
	return service.repo.FindByPassport(context, passportNumber)
}

/*
Create validates and inserts a violation.

Description: The group the kind does not use is emptied before validation,
so a form that still carries stale company fields for an individual is
accepted and stored clean.
*/
func (service *Service) Create(context context.Context, violation *Violation) error {
	violation.normalize()
	violation.ClearInapplicable()

	if err := validateViolation(violation); err != nil {
		return err
	}

	violation.ID = uuid.New()
	if err := service.repo.Create(context, violation); err != nil {
		return err
	}

	service.logger.InfoContext(context, "violation_created",
		slog.String("id", violation.ID),
		slog.String("kind", string(violation.Kind)),
	)
	return nil
}

/*
Update validates and overwrites a violation.

Description: When the kind differs from the stored one the abandoned group is
reset first (see [Violation.ResetOnKindChange]).
*/
func (service *Service) Update(context context.Context, id string, violation *Violation) error {
	existing, err := service.Get(context, id)
	if err != nil {
		return err
	}

	violation.ID = id
	violation.normalize()
	if violation.ResetOnKindChange(existing.Kind) {
		service.logger.InfoContext(context, "violation_kind_changed",
			slog.String("id", id),
			slog.String("from", string(existing.Kind)),
			slog.String("to", string(violation.Kind)),
		)
	}
	violation.ClearInapplicable()

	if err := validateViolation(violation); err != nil {
		return err
	}

	if err := service.repo.Update(context, violation); err != nil {
		return err
	}

	service.logger.InfoContext(context, "violation_updated", slog.String("id", id))
	return nil
}

// Delete removes a violation no report references.
func (service *Service) Delete(context context.Context, id string) error {
	if !uuid.Valid(id) {
		return apperr.NotFound("Violation")
	}
	if err := service.repo.Delete(context, id); err != nil {
		return err
	}

	service.logger.WarnContext(context, "violation_deleted", slog.String("id", id))
	return nil
}

// validateViolation enforces the fields each kind requires.
func validateViolation(violation *Violation) error {
	validator := &validate.Validator{}
	validator.Custom(FieldKind, !violation.Kind.IsValid(), "Must be one of legal_entity, individual, official")

	switch {
	case violation.Kind == KindLegalEntity:
		validator.Required(FieldCompanyName, violation.CompanyName)
		validator.Required(FieldAddress, violation.Address)
	case violation.Kind.IsPerson():
		validator.Required(FieldViolatorName, violation.ViolatorName)
		validator.Required(FieldViolatorSurname, violation.ViolatorSurname)
		validate.RequiredPtr(validator, FieldDateOfBirth, violation.DateOfBirth)
		validator.Required(FieldPlaceOfBirth, violation.PlaceOfBirth)
		validator.Required(FieldViolatorAddress, violation.ViolatorAddress)
	}

	for _, text := range []struct{ field, value string }{
		{FieldCompanyName, violation.CompanyName},
		{FieldCompanyBossFullName, violation.CompanyBossFullName},
		{FieldAddress, violation.Address},
		{FieldViolatorName, violation.ViolatorName},
		{FieldViolatorSurname, violation.ViolatorSurname},
		{FieldFatherName, violation.FatherName},
		{FieldPlaceOfBirth, violation.PlaceOfBirth},
		{FieldViolatorAddress, violation.ViolatorAddress},
	} {
		validator.MaxLen(text.field, text.value, maxTextLength)
	}
	validator.MaxLen(FieldPhone, violation.Phone, maxPhoneLength)
	validator.MaxLen(FieldPassportNumber, violation.PassportNumber, maxPhoneLength)
	if violation.NationalityID != nil {
		validator.RequiredID(FieldNationalityID, *violation.NationalityID)
	}

	return validator.Err()
}
