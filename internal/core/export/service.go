// Copyright (c) 2026 Gumruk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/taibuivan/gumruk/internal/core/report"
	"github.com/taibuivan/gumruk/internal/platform/apperr"
	"github.com/taibuivan/gumruk/internal/platform/constants"
	"github.com/taibuivan/gumruk/internal/platform/sec"
)

const tracerName = "github.com/taibuivan/gumruk/internal/core/export"

// filenameLayout stamps generated file names.
const filenameLayout = "20060102_150405"

// Recorder counts generated spreadsheets.
type Recorder interface {
	RecordExport(layout string, rows int)
}

// Service builds spreadsheet exports of the report list.
type Service struct {
	repo     Repository
	recorder Recorder
	location *time.Location
	logger   *slog.Logger
	tracer   trace.Tracer
	now      func() time.Time

	// Reports per file
	limit int
}

// NewService constructs an export service. Timestamps are written in location.
func NewService(repo Repository, recorder Recorder, location *time.Location, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		recorder: recorder,
		location: location,
		logger:   logger,
		tracer:   otel.Tracer(tracerName),
		now:      time.Now,
		limit:    constants.MaxExportReports,
	}
}

// Flat renders the matching reports with one row per stored good.
func (service *Service) Flat(context context.Context, actor *sec.AuthClaims, filter report.Filter) (*File, error) {
	return service.generate(context, actor, filter, LayoutFlat)
}

// Grouped renders the matching reports grouped by offender. Admins only.
func (service *Service) Grouped(context context.Context, actor *sec.AuthClaims, filter report.Filter) (*File, error) {
	if actor != nil && !actor.IsAdmin() {
		return nil, apperr.Forbidden("Only administrators can export grouped reports")
	}
	return service.generate(context, actor, filter, LayoutGrouped)
}

func (service *Service) generate(context context.Context, actor *sec.AuthClaims, filter report.Filter, layout Layout) (*File, error) {
	if actor == nil {
		return nil, apperr.Unauthorized("Authentication required")
	}
	if filter.Direction != nil && !filter.Direction.IsValid() {
		return nil, apperr.ValidationError("Validation failed", apperr.FieldError{Field: "direction", Message: "Must be one of: entry, exit, transit"})
	}

	filter.Location = service.location

	context, span := service.tracer.Start(context, "export.generate", trace.WithAttributes(attribute.String("export.layout", string(layout))))
	defer span.End()

	records, truncated, err := service.load(context, filter)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "load failed")
		return nil, err
	}

	file, err := service.build(context, records, layout, truncated)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "render failed")
		return nil, apperr.Internal(err)
	}

	span.SetAttributes(
		attribute.Int("export.reports", len(records)),
		attribute.Int("export.rows", file.Rows),
		attribute.Bool("export.truncated", truncated),
	)
	service.recorder.RecordExport(string(layout), file.Rows)

	service.logger.InfoContext(context, "export_generated",
		slog.String("layout", string(layout)),
		slog.String("file", file.Name),
		slog.Int("reports", len(records)),
		slog.Int("rows", file.Rows),
		slog.Bool("truncated", truncated),
		slog.String("by", actor.UserID),
	)
	return file, nil
}

// load fetches one report past the limit so a cut-off file can be told apart
// from one that holds exactly limit reports.
func (service *Service) load(context context.Context, filter report.Filter) ([]*Record, bool, error) {
	context, span := service.tracer.Start(context, "export.load")
	defer span.End()

	records, err := service.repo.Records(context, filter, service.limit+1)
	if err != nil {
		return nil, false, err
	}

	truncated := len(records) > service.limit
	if truncated {
		records = records[:service.limit]
		service.logger.WarnContext(context, "export_truncated", slog.Int("limit", service.limit))
	}

	span.SetAttributes(attribute.Int("export.reports", len(records)))
	return records, truncated, nil
}

func (service *Service) build(context context.Context, records []*Record, layout Layout, truncated bool) (*File, error) {
	_, span := service.tracer.Start(context, "export.render")
	defer span.End()

	var (
		rows   [][]any
		shaded []bool
		target sheet
		prefix string
	)
	switch layout {
	case LayoutGrouped:
		rows, target, prefix = BuildGroupedRows(records), groupedSheet, "report_export_"
	default:
		rows, shaded = buildFlat(records, service.location)
		target, prefix = flatSheet, "reports_"
	}
	if truncated {
		target.title += fmt.Sprintf(" (first %d reports only, narrow the filter for the rest)", service.limit)
	}

	data, err := render(target, rows, shaded)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("export.bytes", len(data)))
	return &File{
		Name:      prefix + service.now().In(service.location).Format(filenameLayout) + ".xlsx",
		Data:      data,
		Rows:      len(rows),
		Truncated: truncated,
	}, nil
}
