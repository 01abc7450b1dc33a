// Copyright (c) 2026 Gumruk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package office

import (
	"context"
	"log/slog"
	"strings"

	"github.com/taibuivan/gumruk/internal/platform/dberr"
	"github.com/taibuivan/gumruk/internal/platform/validate"
)

func init() {
	dberr.RegisterConstraint("customs_office_name_key", "A customs office with this name already exists")
	dberr.RegisterConstraint("customs_office_code_key", "A customs office with this code already exists")
	dberr.RegisterConstraint("customs_point_name_key", "A customs point with this name already exists")
	dberr.RegisterConstraint("customs_point_code_key", "A customs point with this code already exists")
	dberr.RegisterConstraint("customs_point_office_name_key", "A customs point with this name already exists in this office")
	dberr.RegisterConstraint("customs_point_office_id_fkey", "Customs office does not exist")
}

// Service implements the business logic for the office hierarchy.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs an office service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// # Offices

// ListOffices returns a page of offices.
func (service *Service) ListOffices(context context.Context, filter Filter, limit, offset int) ([]*CustomsOffice, int, error) {
	filter.Query = strings.TrimSpace(filter.Query)
	return service.repo.ListOffices(context, filter, limit, offset)
}

// GetOffice returns a single office.
func (service *Service) GetOffice(context context.Context, id int) (*CustomsOffice, error) {
	return service.repo.GetOffice(context, id)
}

// CreateOffice validates and inserts an office.
func (service *Service) CreateOffice(context context.Context, office *CustomsOffice) error {
	if err := validateOffice(office); err != nil {
		return err
	}
	if err := service.repo.CreateOffice(context, office); err != nil {
		return err
	}

	service.logger.InfoContext(context, "customs_office_created", slog.Int("id", office.ID))
	return nil
}

// UpdateOffice validates and overwrites an office.
func (service *Service) UpdateOffice(context context.Context, id int, office *CustomsOffice) error {
	office.ID = id
	if err := validateOffice(office); err != nil {
		return err
	}
	if err := service.repo.UpdateOffice(context, office); err != nil {
		return err
	}

	service.logger.InfoContext(context, "customs_office_updated", slog.Int("id", id))
	return nil
}

// DeleteOffice removes an office and its points.
func (service *Service) DeleteOffice(context context.Context, id int) error {
	if err := service.repo.DeleteOffice(context, id); err != nil {
		return err
	}

	service.logger.WarnContext(context, "customs_office_deleted", slog.Int("id", id))
	return nil
}

// # Points

// ListPoints returns a page of points.
func (service *Service) ListPoints(context context.Context, filter Filter, limit, offset int) ([]*CustomsPoint, int, error) {
	filter.Query = strings.TrimSpace(filter.Query)
	return service.repo.ListPoints(context, filter, limit, offset)
}

/*
PointOptions returns the points of one office, filtered by a case-insensitive
name fragment.

Returns:
  - []PointOption: never nil
  - error: NOT_FOUND when the office does not exist
*/
func (service *Service) PointOptions(context context.Context, officeID int, query string) ([]PointOption, error) {
	if _, err := service.repo.GetOffice(context, officeID); err != nil {
		return nil, err
	}

	options, err := service.repo.PointOptions(context, officeID, strings.TrimSpace(query))
	if err != nil {
		return nil, err
	}
	if options == nil {
		options = []PointOption{}
	}
	return options, nil
}

// GetPoint returns a single point.
func (service *Service) GetPoint(context context.Context, id int) (*CustomsPoint, error) {
	return service.repo.GetPoint(context, id)
}

// CreatePoint validates and inserts a point.
func (service *Service) CreatePoint(context context.Context, point *CustomsPoint) error {
	if err := validatePoint(point); err != nil {
		return err
	}
	if err := service.repo.CreatePoint(context, point); err != nil {
		return err
	}

	service.logger.InfoContext(context, "customs_point_created", slog.Int("id", point.ID), slog.Int("office_id", point.OfficeID))
	return nil
}

// UpdatePoint validates and overwrites a point.
func (service *Service) UpdatePoint(context context.Context, id int, point *CustomsPoint) error {
	point.ID = id
	if err := validatePoint(point); err != nil {
		return err
	}
	if err := service.repo.UpdatePoint(context, point); err != nil {
		return err
	}

	service.logger.InfoContext(context, "customs_point_updated", slog.Int("id", id))
	return nil
}

// DeletePoint removes a point.
func (service *Service) DeletePoint(context context.Context, id int) error {
	if err := service.repo.DeletePoint(context, id); err != nil {
		return err
	}

	service.logger.WarnContext(context, "customs_point_deleted", slog.Int("id", id))
	return nil
}

// normalizeCode trims the code and turns a blank one into NULL so several
// offices may omit it without tripping the unique index.
func normalizeCode(code *string) *string {
	if code == nil {
		return nil
	}
	trimmed := strings.ToUpper(strings.TrimSpace(*code))
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func validateOffice(office *CustomsOffice) error {
	office.Name = strings.TrimSpace(office.Name)
	office.Code = normalizeCode(office.Code)

	validator := &validate.Validator{}
	validator.Required(FieldName, office.Name).MaxLen(FieldName, office.Name, maxNameLength)
	if office.Code != nil {
		validator.MaxLen(FieldCode, *office.Code, maxCodeLength)
	}
	return validator.Err()
}

func validatePoint(point *CustomsPoint) error {
	point.Name = strings.TrimSpace(point.Name)
	point.Code = normalizeCode(point.Code)

	validator := &validate.Validator{}
	validator.RequiredID(FieldOfficeID, point.OfficeID)
	validator.Required(FieldName, point.Name).MaxLen(FieldName, point.Name, maxNameLength)
	if point.Code != nil {
		validator.MaxLen(FieldCode, *point.Code, maxCodeLength)
	}
	return validator.Err()
}
