// Copyright (c) 2026 Gumruk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package task

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/taibuivan/gumruk/internal/platform/apperr"
	"github.com/taibuivan/gumruk/internal/platform/dberr"
	"github.com/taibuivan/gumruk/internal/platform/sec"
	"github.com/taibuivan/gumruk/internal/platform/storage"
	"github.com/taibuivan/gumruk/internal/platform/validate"
	"github.com/taibuivan/gumruk/pkg/uuid"
)

func init() {
	dberr.RegisterConstraint("assigned_task_trb_number_key", "TRB number already exists")
	dberr.RegisterConstraint("assigned_task_imposed_fine_check", "Imposed fine must not be negative")
	dberr.RegisterConstraint("assigned_task_paid_fine_check", "Paid fine must not be negative")
	dberr.RegisterConstraint("assigned_task_workgroup_id_fkey", "Workgroup does not exist")
	dberr.RegisterConstraint("assigned_task_report_id_fkey", "Report does not exist")
	dberr.RegisterConstraint("assigned_letter_action_id_fkey", "Letter action does not exist")
	dberr.RegisterConstraint("assigned_letter_task_id_fkey", "Assigned task does not exist")
	dberr.RegisterConstraint("investigation_result_type_id_fkey", "Investigation type does not exist")
	dberr.RegisterConstraint("investigation_result_committee_id_fkey", "Investigation committee does not exist")
	dberr.RegisterConstraint("investigation_result_workgroup_id_fkey", "Workgroup does not exist")
	dberr.RegisterConstraint("investigation_result_task_id_fkey", "Assigned task does not exist")
}

const documentContentType = "application/pdf"

// UploadRecorder counts stored uploads.
type UploadRecorder interface {
	RecordUpload(kind string)
}

// Service implements the business logic for tasks, letters, results and their documents.
type Service struct {
	repo     Repository
	guard    Authorizer
	store    storage.Store
	recorder UploadRecorder
	logger   *slog.Logger
	now      func() time.Time
}

// NewService constructs a task service.
func NewService(repo Repository, guard Authorizer, store storage.Store, recorder UploadRecorder, logger *slog.Logger) *Service {
	return &Service{repo: repo, guard: guard, store: store, recorder: recorder, logger: logger, now: time.Now}
}

// # Tasks

// ListTasks returns the tasks of a report with document URLs.
func (service *Service) ListTasks(context context.Context, reportID string) ([]*AssignedTask, error) {
	if !uuid.Valid(reportID) {
		return nil, validate.RequiredError(FieldReportID, "Must be a valid UUID")
	}

	tasks, err := service.repo.ListTasks(context, reportID)
	if err != nil {
		return nil, err
	}
	for _, task := range tasks {
		service.resolveTask(task)
	}
	return tasks, nil
}

// GetTask returns one task with its letters and results.
func (service *Service) GetTask(context context.Context, id string) (*AssignedTask, error) {
	if !uuid.Valid(id) {
		return nil, apperr.NotFound("Assigned task")
	}

	task, err := service.repo.GetTask(context, id)
	if err != nil {
		return nil, err
	}
	service.resolveTask(task)
	return task, nil
}

// CreateTask adds a task to a report the actor may edit.
func (service *Service) CreateTask(context context.Context, actor *sec.AuthClaims, task *AssignedTask) (*AssignedTask, error) {
	task.TrbNumber = strings.TrimSpace(task.TrbNumber)
	if err := validateTask(task); err != nil {
		return nil, err
	}
	if err := service.guard.Authorize(context, actor, task.ReportID); err != nil {
		return nil, err
	}

	task.ID = uuid.New()
	if err := service.repo.CreateTask(context, task); err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "assigned_task_created",
		slog.String("id", task.ID),
		slog.String("report_id", task.ReportID),
	)
	return service.GetTask(context, task.ID)
}

// UpdateTask overwrites a task. The report and the expert document are kept.
func (service *Service) UpdateTask(context context.Context, actor *sec.AuthClaims, id string, task *AssignedTask) (*AssignedTask, error) {
	existing, err := service.GetTask(context, id)
	if err != nil {
		return nil, err
	}
	if err := service.guard.Authorize(context, actor, existing.ReportID); err != nil {
		return nil, err
	}

	task.ID = id
	task.ReportID = existing.ReportID
	task.TrbNumber = strings.TrimSpace(task.TrbNumber)
	if err := validateTask(task); err != nil {
		return nil, err
	}
	if err := service.repo.UpdateTask(context, task); err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "assigned_task_updated", slog.String("id", id))
	return service.GetTask(context, id)
}

// DeleteTask removes a task with its letters and results and every document they carry.
func (service *Service) DeleteTask(context context.Context, actor *sec.AuthClaims, id string) error {
	existing, err := service.GetTask(context, id)
	if err != nil {
		return err
	}
	if err := service.guard.Authorize(context, actor, existing.ReportID); err != nil {
		return err
	}
	if err := service.repo.DeleteTask(context, id); err != nil {
		return err
	}

	keys := taskDocumentKeys(existing)
	for _, key := range keys {
		service.removeObject(context, key)
	}

	service.logger.WarnContext(context, "assigned_task_deleted", slog.String("id", id), slog.Int("documents", len(keys)))
	return nil
}

// # Letters

// GetLetter returns one letter.
func (service *Service) GetLetter(context context.Context, id string) (*AssignedLetter, error) {
	if !uuid.Valid(id) {
		return nil, apperr.NotFound("Assigned letter")
	}

	letter, err := service.repo.GetLetter(context, id)
	if err != nil {
		return nil, err
	}
	service.resolve(letter.Document)
	return letter, nil
}

// CreateLetter adds a letter to a task.
func (service *Service) CreateLetter(context context.Context, actor *sec.AuthClaims, letter *AssignedLetter) (*AssignedLetter, error) {
	letter.Number = strings.TrimSpace(letter.Number)
	if err := validateLetter(letter); err != nil {
		return nil, err
	}

	task, err := service.GetTask(context, letter.TaskID)
	if err != nil {
		return nil, err
	}
	if err := service.guard.Authorize(context, actor, task.ReportID); err != nil {
		return nil, err
	}

	letter.ID = uuid.New()
	if err := service.repo.CreateLetter(context, letter); err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "assigned_letter_created", slog.String("id", letter.ID), slog.String("task_id", letter.TaskID))
	return service.GetLetter(context, letter.ID)
}

// UpdateLetter overwrites a letter. The task cannot change.
func (service *Service) UpdateLetter(context context.Context, actor *sec.AuthClaims, id string, letter *AssignedLetter) (*AssignedLetter, error) {
	existing, err := service.GetLetter(context, id)
	if err != nil {
		return nil, err
	}
	if err := service.guard.Authorize(context, actor, existing.ReportID); err != nil {
		return nil, err
	}

	letter.ID = id
	letter.TaskID = existing.TaskID
	letter.Number = strings.TrimSpace(letter.Number)
	if err := validateLetter(letter); err != nil {
		return nil, err
	}
	if err := service.repo.UpdateLetter(context, letter); err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "assigned_letter_updated", slog.String("id", id))
	return service.GetLetter(context, id)
}

// DeleteLetter removes a letter and its document.
func (service *Service) DeleteLetter(context context.Context, actor *sec.AuthClaims, id string) error {
	existing, err := service.GetLetter(context, id)
	if err != nil {
		return err
	}
	if err := service.guard.Authorize(context, actor, existing.ReportID); err != nil {
		return err
	}
	if err := service.repo.DeleteLetter(context, id); err != nil {
		return err
	}

	if existing.Document != nil {
		service.removeObject(context, existing.Document.Key)
	}
	service.logger.WarnContext(context, "assigned_letter_deleted", slog.String("id", id))
	return nil
}

// # Investigation Results

// GetResult returns one investigation result.
func (service *Service) GetResult(context context.Context, id string) (*InvestigationResult, error) {
	if !uuid.Valid(id) {
		return nil, apperr.NotFound("Investigation result")
	}

	result, err := service.repo.GetResult(context, id)
	if err != nil {
		return nil, err
	}
	service.resolve(result.Document)
	return result, nil
}

// CreateResult adds an investigation result to a task.
func (service *Service) CreateResult(context context.Context, actor *sec.AuthClaims, result *InvestigationResult) (*InvestigationResult, error) {
	result.Conclusion = strings.TrimSpace(result.Conclusion)
	if err := validateResult(result); err != nil {
		return nil, err
	}

	task, err := service.GetTask(context, result.TaskID)
	if err != nil {
		return nil, err
	}
	if err := service.guard.Authorize(context, actor, task.ReportID); err != nil {
		return nil, err
	}

	result.ID = uuid.New()
	if err := service.repo.CreateResult(context, result); err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "investigation_result_created", slog.String("id", result.ID), slog.String("task_id", result.TaskID))
	return service.GetResult(context, result.ID)
}

// UpdateResult overwrites an investigation result.
func (service *Service) UpdateResult(context context.Context, actor *sec.AuthClaims, id string, result *InvestigationResult) (*InvestigationResult, error) {
	existing, err := service.GetResult(context, id)
	if err != nil {
		return nil, err
	}
	if err := service.guard.Authorize(context, actor, existing.ReportID); err != nil {
		return nil, err
	}

	result.ID = id
	result.TaskID = existing.TaskID
	result.Conclusion = strings.TrimSpace(result.Conclusion)
	if err := validateResult(result); err != nil {
		return nil, err
	}
	if err := service.repo.UpdateResult(context, result); err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "investigation_result_updated", slog.String("id", id))
	return service.GetResult(context, id)
}

// DeleteResult removes an investigation result and its document.
func (service *Service) DeleteResult(context context.Context, actor *sec.AuthClaims, id string) error {
	existing, err := service.GetResult(context, id)
	if err != nil {
		return err
	}
	if err := service.guard.Authorize(context, actor, existing.ReportID); err != nil {
		return err
	}
	if err := service.repo.DeleteResult(context, id); err != nil {
		return err
	}

	if existing.Document != nil {
		service.removeObject(context, existing.Document.Key)
	}
	service.logger.WarnContext(context, "investigation_result_deleted", slog.String("id", id))
	return nil
}

// # Documents

/*
AttachDocument stores a PDF and points the row at it.

Description: Any document the row carried before is deleted once the row
references the new object. If the row cannot be updated the new object is
removed again.

Returns:
  - *Document: the stored document with its URL
  - error: VALIDATION_ERROR when the upload is not a PDF
*/
func (service *Service) AttachDocument(context context.Context, actor *sec.AuthClaims, owner Owner, id string, upload Upload) (*Document, error) {
	ref, err := service.documentRef(context, owner, id)
	if err != nil {
		return nil, err
	}
	if err := service.guard.Authorize(context, actor, ref.ReportID); err != nil {
		return nil, err
	}

	data, err := io.ReadAll(upload.Body)
	if err != nil {
		return nil, validate.RequiredError(FieldFile, "Could not read the uploaded file").WithCause(err)
	}
	if !isPDF(data) {
		return nil, validate.RequiredError(FieldFile, "Must be a PDF document")
	}

	key := storage.DocumentKey(service.now())
	if _, err := service.store.Put(context, key, bytes.NewReader(data), documentContentType); err != nil {
		return nil, apperr.Internal(err)
	}
	service.recorder.RecordUpload("document")

	if err := service.repo.SetDocument(context, owner, id, &key); err != nil {
		service.removeObject(context, key)
		return nil, err
	}
	if ref.Key != nil && *ref.Key != "" {
		service.removeObject(context, *ref.Key)
	}

	service.logger.InfoContext(context, "document_attached",
		slog.String("owner", string(owner)),
		slog.String("id", id),
		slog.String("key", key),
		slog.Int("bytes", len(data)),
	)
	return &Document{Key: key, URL: service.store.URL(key)}, nil
}

// RemoveDocument detaches and deletes the document of a row.
func (service *Service) RemoveDocument(context context.Context, actor *sec.AuthClaims, owner Owner, id string) error {
	ref, err := service.documentRef(context, owner, id)
	if err != nil {
		return err
	}
	if err := service.guard.Authorize(context, actor, ref.ReportID); err != nil {
		return err
	}
	if ref.Key == nil || *ref.Key == "" {
		return apperr.NotFound("Document")
	}

	if err := service.repo.SetDocument(context, owner, id, nil); err != nil {
		return err
	}
	service.removeObject(context, *ref.Key)

	service.logger.WarnContext(context, "document_removed", slog.String("owner", string(owner)), slog.String("id", id))
	return nil
}

func (service *Service) documentRef(context context.Context, owner Owner, id string) (DocumentRef, error) {
	if !uuid.Valid(id) {
		return DocumentRef{}, apperr.NotFound("Document owner")
	}
	return service.repo.Document(context, owner, id)
}

// removeObject deletes a stored file. Failures leave an orphan and are only logged.
func (service *Service) removeObject(context context.Context, key string) {
	if err := service.store.Delete(context, key); err != nil {
		service.logger.WarnContext(context, "storage_delete_failed", slog.String("key", key), slog.Any("error", err))
	}
}

func (service *Service) resolve(document *Document) {
	if document != nil {
		document.URL = service.store.URL(document.Key)
	}
}

func (service *Service) resolveTask(task *AssignedTask) {
	service.resolve(task.ExpertDocument)
	for _, letter := range task.Letters {
		service.resolve(letter.Document)
	}
	for _, result := range task.Results {
		service.resolve(result.Document)
	}
}

// taskDocumentKeys collects the documents of a task and of its children.
func taskDocumentKeys(task *AssignedTask) []string {
	var keys []string
	if task.ExpertDocument != nil {
		keys = append(keys, task.ExpertDocument.Key)
	}
	for _, letter := range task.Letters {
		if letter.Document != nil {
			keys = append(keys, letter.Document.Key)
		}
	}
	for _, result := range task.Results {
		if result.Document != nil {
			keys = append(keys, result.Document.Key)
		}
	}
	return keys
}

// # Validation

func validateTask(task *AssignedTask) error {
	validator := &validate.Validator{}
	validator.UUID(FieldReportID, task.ReportID).
		MaxLen(FieldTrbNumber, task.TrbNumber, maxTrbNumberLength).
		NonNegative(FieldImposedFine, task.ImposedFine).
		NonNegative(FieldPaidFine, task.PaidFine).
		RequiredID(FieldWorkgroupID, task.WorkgroupID)
	return validator.Err()
}

func validateLetter(letter *AssignedLetter) error {
	validator := &validate.Validator{}
	validator.UUID(FieldTaskID, letter.TaskID).
		RequiredID(FieldActionID, letter.ActionID).
		Required(FieldNumber, letter.Number).
		MaxLen(FieldNumber, letter.Number, maxLetterNumberLength).
		Custom(FieldDate, letter.Date.IsZero(), "This field is required")
	return validator.Err()
}

func validateResult(result *InvestigationResult) error {
	validator := &validate.Validator{}
	validator.UUID(FieldTaskID, result.TaskID)
	for _, reference := range []struct {
		field string
		id    *int
	}{
		{FieldTypeID, result.TypeID},
		{FieldCommitteeID, result.CommitteeID},
		{FieldWorkgroupID, result.WorkgroupID},
	} {
		if reference.id != nil {
			validator.RequiredID(reference.field, *reference.id)
		}
	}
	return validator.Err()
}
