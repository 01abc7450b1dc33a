// Copyright (c) 2026 Gumruk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package goods

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/taibuivan/gumruk/internal/platform/apperr"
	"github.com/taibuivan/gumruk/internal/platform/dberr"
	"github.com/taibuivan/gumruk/internal/platform/imaging"
	"github.com/taibuivan/gumruk/internal/platform/sec"
	"github.com/taibuivan/gumruk/internal/platform/storage"
	"github.com/taibuivan/gumruk/internal/platform/validate"
	"github.com/taibuivan/gumruk/pkg/uuid"
)

func init() {
	dberr.RegisterConstraint("stored_good_amount_check", "Amount must be greater than zero")
	dberr.RegisterConstraint("stored_good_product_id_fkey", "Product does not exist")
	dberr.RegisterConstraint("stored_good_unit_id_fkey", "Unit does not exist")
	dberr.RegisterConstraint("stored_good_reason_id_fkey", "Violation reason does not exist")
	dberr.RegisterConstraint("stored_good_report_id_fkey", "Report does not exist")
}

const imageContentType = "image/jpeg"

// UploadRecorder counts stored uploads.
type UploadRecorder interface {
	RecordUpload(kind string)
}

// Service implements the business logic for stored goods and their photos.
type Service struct {
	repo     Repository
	guard    Authorizer
	store    storage.Store
	recorder UploadRecorder
	logger   *slog.Logger
	now      func() time.Time
}

// NewService constructs a goods service.
func NewService(repo Repository, guard Authorizer, store storage.Store, recorder UploadRecorder, logger *slog.Logger) *Service {
	return &Service{repo: repo, guard: guard, store: store, recorder: recorder, logger: logger, now: time.Now}
}

// ListByReport returns the goods of a report with image URLs.
func (service *Service) ListByReport(context context.Context, reportID string) ([]*StoredGood, error) {
	if !uuid.Valid(reportID) {
		return nil, validate.RequiredError(FieldReportID, "Must be a valid UUID")
	}

	goods, err := service.repo.ListByReport(context, reportID)
	if err != nil {
		return nil, err
	}
	for _, good := range goods {
		service.resolve(good)
	}
	return goods, nil
}

// Get returns one stored good.
func (service *Service) Get(context context.Context, id string) (*StoredGood, error) {
	if !uuid.Valid(id) {
		return nil, apperr.NotFound("Stored good")
	}

	good, err := service.repo.Get(context, id)
	if err != nil {
		return nil, err
	}
	service.resolve(good)
	return good, nil
}

// Create adds a good to a report the actor may edit.
func (service *Service) Create(context context.Context, actor *sec.AuthClaims, good *StoredGood) (*StoredGood, error) {
	good.Note = strings.TrimSpace(good.Note)
	if err := validateGood(good); err != nil {
		return nil, err
	}
	if err := service.guard.Authorize(context, actor, good.ReportID); err != nil {
		return nil, err
	}

	good.ID = uuid.New()
	if err := service.repo.Create(context, good); err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "stored_good_created",
		slog.String("id", good.ID),
		slog.String("report_id", good.ReportID),
	)
	return service.Get(context, good.ID)
}

// Update overwrites a good. The owning report cannot change.
func (service *Service) Update(context context.Context, actor *sec.AuthClaims, id string, good *StoredGood) (*StoredGood, error) {
	existing, err := service.Get(context, id)
	if err != nil {
		return nil, err
	}
	if err := service.guard.Authorize(context, actor, existing.ReportID); err != nil {
		return nil, err
	}

	good.ID = id
	good.ReportID = existing.ReportID
	good.Note = strings.TrimSpace(good.Note)
	if err := validateGood(good); err != nil {
		return nil, err
	}
	if err := service.repo.Update(context, good); err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "stored_good_updated", slog.String("id", id))
	return service.Get(context, id)
}

// Delete removes a good and the stored files of its photos.
func (service *Service) Delete(context context.Context, actor *sec.AuthClaims, id string) error {
	existing, err := service.Get(context, id)
	if err != nil {
		return err
	}
	if err := service.guard.Authorize(context, actor, existing.ReportID); err != nil {
		return err
	}
	if err := service.repo.Delete(context, id); err != nil {
		return err
	}

	for _, image := range existing.Images {
		service.removeObject(context, image.Key)
	}

	service.logger.WarnContext(context, "stored_good_deleted", slog.String("id", id), slog.Int("images", len(existing.Images)))
	return nil
}

/*
AddImage normalises an uploaded photo and attaches it to a good.

Description: The photo is resized to fit 800x800 and re-encoded as JPEG
before it is stored. The stored object is removed again if the row cannot be
written.

Returns:
  - *Image: the stored image with its URL
  - error: VALIDATION_ERROR when the upload is not a decodable image
*/
func (service *Service) AddImage(context context.Context, actor *sec.AuthClaims, goodID string, upload Upload) (*Image, error) {
	good, err := service.Get(context, goodID)
	if err != nil {
		return nil, err
	}
	if err := service.guard.Authorize(context, actor, good.ReportID); err != nil {
		return nil, err
	}

	description := strings.TrimSpace(upload.Description)
	if err := validateDescription(description); err != nil {
		return nil, err
	}

	key, err := service.putImage(context, upload)
	if err != nil {
		return nil, err
	}

	image := &Image{ID: uuid.New(), StoredGoodID: goodID, Key: key, Description: description, ReportID: good.ReportID}
	if err := service.repo.CreateImage(context, image); err != nil {
		service.removeObject(context, key)
		return nil, err
	}

	image.URL = service.store.URL(key)
	service.logger.InfoContext(context, "stored_good_image_added", slog.String("id", image.ID), slog.String("key", key))
	return image, nil
}

/*
UpdateImage changes the description of a photo and, when upload carries a
file, replaces the photo itself. The previous object is deleted only after
the row points at the new one.
*/
func (service *Service) UpdateImage(context context.Context, actor *sec.AuthClaims, imageID string, upload Upload) (*Image, error) {
	image, err := service.getImage(context, imageID)
	if err != nil {
		return nil, err
	}
	if err := service.guard.Authorize(context, actor, image.ReportID); err != nil {
		return nil, err
	}

	image.Description = strings.TrimSpace(upload.Description)
	if err := validateDescription(image.Description); err != nil {
		return nil, err
	}

	previousKey := image.Key
	if upload.Body != nil {
		if image.Key, err = service.putImage(context, upload); err != nil {
			return nil, err
		}
	}

	if err := service.repo.UpdateImage(context, image); err != nil {
		if image.Key != previousKey {
			service.removeObject(context, image.Key)
		}
		return nil, err
	}
	if image.Key != previousKey {
		service.removeObject(context, previousKey)
	}

	image.URL = service.store.URL(image.Key)
	service.logger.InfoContext(context, "stored_good_image_updated", slog.String("id", imageID), slog.Bool("replaced", image.Key != previousKey))
	return image, nil
}

// DeleteImage removes a photo row and its stored object.
func (service *Service) DeleteImage(context context.Context, actor *sec.AuthClaims, imageID string) error {
	image, err := service.getImage(context, imageID)
	if err != nil {
		return err
	}
	if err := service.guard.Authorize(context, actor, image.ReportID); err != nil {
		return err
	}
	if err := service.repo.DeleteImage(context, imageID); err != nil {
		return err
	}

	service.removeObject(context, image.Key)
	service.logger.WarnContext(context, "stored_good_image_deleted", slog.String("id", imageID))
	return nil
}

func (service *Service) getImage(context context.Context, id string) (*Image, error) {
	if !uuid.Valid(id) {
		return nil, apperr.NotFound("Image")
	}
	return service.repo.GetImage(context, id)
}

// putImage resizes upload and writes it under a fresh key.
func (service *Service) putImage(context context.Context, upload Upload) (string, error) {
	result, err := imaging.Normalize(upload.Body, imaging.DefaultOptions())
	if err != nil {
		if errors.Is(err, imaging.ErrUnsupported) {
			return "", validate.RequiredError(FieldFile, "Must be a JPEG, PNG, GIF, WebP, BMP or TIFF image").WithCause(err)
		}
		return "", apperr.Internal(err)
	}

	key := storage.ImageKey(service.now(), upload.Filename)
	if _, err := service.store.Put(context, key, bytes.NewReader(result.Data), imageContentType); err != nil {
		return "", apperr.Internal(err)
	}

	service.recorder.RecordUpload("image")
	return key, nil
}

// removeObject deletes a stored file. Failures leave an orphan and are only logged.
func (service *Service) removeObject(context context.Context, key string) {
	if err := service.store.Delete(context, key); err != nil {
		service.logger.WarnContext(context, "storage_delete_failed", slog.String("key", key), slog.Any("error", err))
	}
}

func (service *Service) resolve(good *StoredGood) {
	for i := range good.Images {
		good.Images[i].URL = service.store.URL(good.Images[i].Key)
	}
}

func validateGood(good *StoredGood) error {
	validator := &validate.Validator{}
	validator.UUID(FieldReportID, good.ReportID).
		RequiredID(FieldProductID, good.ProductID).
		Positive(FieldAmount, good.Amount).
		Custom(FieldAmount, good.Amount >= maxAmount, "Must be less than 10000000000").
		Custom(FieldAmount, !hasTwoDecimals(good.Amount), "At most two decimal places").
		RequiredID(FieldUnitID, good.UnitID)
	if good.ReasonID != nil {
		validator.RequiredID(FieldReasonID, *good.ReasonID)
	}
	return validator.Err()
}

func validateDescription(description string) error {
	validator := &validate.Validator{}
	return validator.MaxLen(FieldDescription, description, maxDescriptionLength).Err()
}
