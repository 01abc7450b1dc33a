// Copyright (c) 2026 Gumruk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package officer

import (
	"context"
	"log/slog"
	"strings"

	"github.com/taibuivan/gumruk/internal/platform/dberr"
	"github.com/taibuivan/gumruk/internal/platform/validate"
)

func init() {
	dberr.RegisterConstraint("customs_officer_identity_key", "An officer with this name, surname and rank already exists")
	dberr.RegisterConstraint("customs_officer_position_id_fkey", "Position does not exist")
	dberr.RegisterConstraint("customs_officer_military_name_id_fkey", "Military rank does not exist")
}

// Service implements the business logic for customs officers.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs an officer service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// List returns a page of officers.
func (service *Service) List(context context.Context, filter Filter, limit, offset int) ([]*CustomsOfficer, int, error) {
	filter.Query = strings.TrimSpace(filter.Query)
	return service.repo.List(context, filter, limit, offset)
}

// Get returns a single officer.
func (service *Service) Get(context context.Context, id int) (*CustomsOfficer, error) {
	return service.repo.Get(context, id)
}

/*
Create validates and inserts an officer.

Returns:
  - *CustomsOfficer: the stored row with rank and position names
  - error: VALIDATION_ERROR, CONFLICT or UNPROCESSABLE for unknown lookups
*/
func (service *Service) Create(context context.Context, officer *CustomsOfficer) (*CustomsOfficer, error) {
	if err := validateOfficer(officer); err != nil {
		return nil, err
	}
	if err := service.repo.Create(context, officer); err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "customs_officer_created", slog.Int("id", officer.ID))
	return service.repo.Get(context, officer.ID)
}

// Update validates and overwrites an officer.
func (service *Service) Update(context context.Context, id int, officer *CustomsOfficer) (*CustomsOfficer, error) {
	officer.ID = id
	if err := validateOfficer(officer); err != nil {
		return nil, err
	}
	if err := service.repo.Update(context, officer); err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "customs_officer_updated", slog.Int("id", id))
	return service.repo.Get(context, id)
}

// Delete removes an officer.
func (service *Service) Delete(context context.Context, id int) error {
	if err := service.repo.Delete(context, id); err != nil {
		return err
	}

	service.logger.WarnContext(context, "customs_officer_deleted", slog.Int("id", id))
	return nil
}

func validateOfficer(officer *CustomsOfficer) error {
	officer.Name = strings.TrimSpace(officer.Name)
	officer.Surname = strings.TrimSpace(officer.Surname)
	officer.Midname = strings.TrimSpace(officer.Midname)

	validator := &validate.Validator{}
	validator.Required(FieldName, officer.Name).MaxLen(FieldName, officer.Name, maxNameLength)
	validator.Required(FieldSurname, officer.Surname).MaxLen(FieldSurname, officer.Surname, maxNameLength)
	validator.MaxLen(FieldMidname, officer.Midname, maxNameLength)
	if officer.PositionID != nil {
		validator.RequiredID(FieldPositionID, *officer.PositionID)
	}
	if officer.MilitaryNameID != nil {
		validator.RequiredID(FieldMilitaryNameID, *officer.MilitaryNameID)
	}
	return validator.Err()
}
