// Copyright (c) 2026 Gumruk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package report

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/taibuivan/gumruk/internal/platform/apperr"
	"github.com/taibuivan/gumruk/internal/platform/dberr"
	"github.com/taibuivan/gumruk/internal/platform/sec"
	"github.com/taibuivan/gumruk/internal/platform/validate"
	"github.com/taibuivan/gumruk/pkg/uuid"
)

func init() {
	dberr.RegisterConstraint("report_case_number_key", "A report with this case number already exists")
	dberr.RegisterConstraint("report_protocol_number_key", "A report with this protocol number already exists")
	dberr.RegisterConstraint("report_declaration_number_key", "A report with this customs declaration number already exists")
	dberr.RegisterConstraint("report_direction_check", "Direction must be entry, exit or transit")
	dberr.RegisterConstraint("report_violation_id_fkey", "Violation does not exist")
	dberr.RegisterConstraint("report_office_id_fkey", "Customs office does not exist")
	dberr.RegisterConstraint("report_point_id_fkey", "Customs point does not exist")
	dberr.RegisterConstraint("report_point_office_fkey", "Customs point does not belong to the customs office")
	dberr.RegisterConstraint("report_officer_id_fkey", "Customs officer does not exist")
	dberr.RegisterConstraint("report_basis_id_fkey", "Discovery basis does not exist")
	dberr.RegisterConstraint("report_method_id_fkey", "Method of discovery does not exist")
	dberr.RegisterConstraint("report_from_country_id_fkey", "Origin country does not exist")
	dberr.RegisterConstraint("report_to_country_id_fkey", "Destination country does not exist")
	dberr.RegisterConstraint("report_vehicle_brand_id_fkey", "Vehicle brand does not exist")
	dberr.RegisterConstraint("report_transport_company_id_fkey", "Transport company does not exist")
	dberr.RegisterConstraint("report_codex_codex_id_fkey", "Administration codex does not exist")
}

// Recorder counts created reports.
type Recorder interface {
	IncrementReportsCreated()
}

// FileStore resolves and removes the stored files of a report.
type FileStore interface {
	URL(key string) string
	Delete(context context.Context, key string) error
}

// Service implements the business logic for reports.
type Service struct {
	repo     Repository
	guard    *Guard
	files    FileStore
	recorder Recorder
	location *time.Location
	logger   *slog.Logger
}

// NewService constructs a report service. Creation-day filters are read in location.
func NewService(repo Repository, guard *Guard, files FileStore, recorder Recorder, location *time.Location, logger *slog.Logger) *Service {
	return &Service{repo: repo, guard: guard, files: files, recorder: recorder, location: location, logger: logger}
}

// List returns a page of reports matching filter.
func (service *Service) List(context context.Context, filter Filter, limit, offset int) ([]*Report, int, error) {
	if err := validateFilter(filter); err != nil {
		return nil, 0, err
	}
	filter.Location = service.location
	return service.repo.List(context, filter, limit, offset)
}

// Get returns a report with its witnesses and codex IDs.
func (service *Service) Get(context context.Context, id string) (*Report, error) {
	if !uuid.Valid(id) {
		return nil, apperr.NotFound("Report")
	}
	return service.repo.Get(context, id)
}

/*
Create validates and stores a report owned by actor.

Returns:
  - *Report: the stored report reloaded with witnesses
  - error: VALIDATION_ERROR, CONFLICT on duplicate numbers, UNPROCESSABLE on unknown references
*/
func (service *Service) Create(context context.Context, actor *sec.AuthClaims, report *Report) (*Report, error) {
	if actor == nil {
		return nil, apperr.Unauthorized("Authentication required")
	}

	report.normalize()
	if err := validateReport(report); err != nil {
		return nil, err
	}

	report.ID = uuid.New()
	report.CreatedBy = &actor.UserID
	if err := service.repo.Create(context, report); err != nil {
		return nil, err
	}

	service.recorder.IncrementReportsCreated()
	service.logger.InfoContext(context, "report_created",
		slog.String("id", report.ID),
		slog.String("case_number", report.CaseNumber),
		slog.String("created_by", actor.UserID),
	)
	return service.repo.Get(context, report.ID)
}

/*
Update overwrites a report the actor may edit.

Description: Witnesses and codexes in the payload replace the stored sets.
*/
func (service *Service) Update(context context.Context, actor *sec.AuthClaims, id string, report *Report) (*Report, error) {
	if err := service.guard.Authorize(context, actor, id); err != nil {
		return nil, err
	}

	report.ID = id
	report.normalize()
	if err := validateReport(report); err != nil {
		return nil, err
	}

	if err := service.repo.Update(context, report); err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "report_updated", slog.String("id", id), slog.String("by", actor.UserID))
	return service.repo.Get(context, id)
}

// Delete removes a report the actor may edit, together with everything attached to it.
func (service *Service) Delete(context context.Context, actor *sec.AuthClaims, id string) error {
	if err := service.guard.Authorize(context, actor, id); err != nil {
		return err
	}
	keys, err := service.repo.Delete(context, id)
	if err != nil {
		return err
	}

	// Rows are gone; a file that cannot be removed is only logged
	for _, key := range keys {
		if err := service.files.Delete(context, key); err != nil {
			service.logger.WarnContext(context, "storage_delete_failed", slog.String("key", key), slog.Any("error", err))
		}
	}

	service.logger.WarnContext(context, "report_deleted",
		slog.String("id", id),
		slog.String("by", actor.UserID),
		slog.Int("files", len(keys)),
	)
	return nil
}

/*
PersonInfo returns the history of the violator holding passportNumber.

Returns:
  - []*PersonReport: newest first, empty when the passport is unknown
  - error: VALIDATION_ERROR when passportNumber is blank
*/
func (service *Service) PersonInfo(context context.Context, passportNumber string) ([]*PersonReport, error) {
	passportNumber = strings.TrimSpace(passportNumber)
	if passportNumber == "" {
		return nil, validate.RequiredError(FieldPassportNumber, "passport_number is required")
	}

	reports, err := service.repo.PersonReports(context, passportNumber)
	if err != nil {
		return nil, err
	}

	for _, report := range reports {
		for i := range report.StoredGoods {
			images := report.StoredGoods[i].Images
			for j := range images {
				images[j].URL = service.files.URL(images[j].Key)
			}
		}
	}
	return reports, nil
}

// normalize trims text, fills defaults and drops empty witness rows.
func (report *Report) normalize() {
	report.CaseNumber = strings.TrimSpace(report.CaseNumber)
	report.ProtocolNumber = strings.TrimSpace(report.ProtocolNumber)
	report.DeclarationNumber = strings.TrimSpace(report.DeclarationNumber)
	report.LanguageOfWork = strings.TrimSpace(report.LanguageOfWork)
	report.CarNumber = strings.TrimSpace(report.CarNumber)
	if report.LanguageOfWork == "" {
		report.LanguageOfWork = DefaultLanguageOfWork
	}

	witnesses := make([]Witness, 0, len(report.Witnesses))
	for _, witness := range report.Witnesses {
		witness.ID = 0
		witness.FullName = strings.TrimSpace(witness.FullName)
		witness.Address = strings.TrimSpace(witness.Address)
		if witness.FullName == "" && witness.Address == "" {
			continue
		}
		witnesses = append(witnesses, witness)
	}
	report.Witnesses = witnesses

	report.normalizeCodexes()
}

func validateReport(report *Report) error {
	validator := &validate.Validator{}
	validator.Required(FieldCaseNumber, report.CaseNumber).
		MaxLen(FieldCaseNumber, report.CaseNumber, maxNumberLength).
		MaxLen(FieldProtocolNumber, report.ProtocolNumber, maxNumberLength).
		MaxLen(FieldDeclarationNumber, report.DeclarationNumber, maxNumberLength).
		UUID(FieldViolationID, report.ViolationID).
		RequiredID(FieldOfficeID, report.OfficeID).
		RequiredID(FieldPointID, report.PointID).
		RequiredID(FieldOfficerID, report.OfficerID).
		RequiredID(FieldBasisID, report.BasisID).
		Custom(FieldDirection, !report.Direction.IsValid(), "Must be one of entry, exit, transit").
		MaxLen(FieldLanguageOfWork, report.LanguageOfWork, maxLanguageLength).
		MaxLen(FieldCarNumber, report.CarNumber, maxCarNumber)

	for i, witness := range report.Witnesses {
		field := FieldWitnesses + "[" + strconv.Itoa(i) + "]"
		validator.MaxLen(field+".full_name", witness.FullName, maxWitnessName)
		validator.MaxLen(field+".address", witness.Address, maxWitnessAddress)
	}

	return validator.Err()
}

func validateFilter(filter Filter) error {
	if filter.Direction != nil && !filter.Direction.IsValid() {
		return validate.RequiredError(FieldDirection, "Must be one of entry, exit, transit")
	}
	return nil
}
