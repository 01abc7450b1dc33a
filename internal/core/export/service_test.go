// Copyright (c) 2026 Gumruk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package export_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"

	"github.com/taibuivan/gumruk/internal/core/export"
	"github.com/taibuivan/gumruk/internal/core/export/mocks"
	"github.com/taibuivan/gumruk/internal/core/report"
	"github.com/taibuivan/gumruk/internal/platform/apperr"
	"github.com/taibuivan/gumruk/internal/platform/constants"
	"github.com/taibuivan/gumruk/internal/platform/sec"
	"github.com/taibuivan/gumruk/pkg/pointer"
)

var (
	admin     = &sec.AuthClaims{UserID: "a-1", Role: string(sec.RoleAdmin)}
	inspector = &sec.AuthClaims{UserID: "i-1", Role: string(sec.RoleInspector)}
)

type exportCall struct {
	layout string
	rows   int
}

type exportCounter struct {
	calls []exportCall
}

func (counter *exportCounter) RecordExport(layout string, rows int) {
	counter.calls = append(counter.calls, exportCall{layout, rows})
}

type fixture struct {
	repo     *mocks.MockRepository
	recorder *exportCounter
	service  *export.Service
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	recorder := &exportCounter{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return fixture{
		repo:     repo,
		recorder: recorder,
		service:  export.NewService(repo, recorder, time.UTC, logger),
	}
}

/*
TestService_Flat renders a workbook whose header row matches the flat columns.
*/
func TestService_Flat(t *testing.T) {
	f := newFixture(t)
	records := []*export.Record{
		personRecord("1", "v1", export.Good{Product: "Tea", Amount: 2, Unit: "kg"}, export.Good{Product: "Sugar", Amount: 1, Unit: "kg"}),
	}
	f.repo.EXPECT().Records(gomock.Any(), report.Filter{Location: time.UTC}, constants.MaxExportReports+1).Return(records, nil)

	file, err := f.service.Flat(context.Background(), inspector, report.Filter{})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(file.Name, "reports_"))
	assert.True(t, strings.HasSuffix(file.Name, ".xlsx"))
	assert.Equal(t, 2, file.Rows)
	assert.Equal(t, []exportCall{{"flat", 2}}, f.recorder.calls)

	workbook, err := excelize.OpenReader(bytes.NewReader(file.Data))
	require.NoError(t, err)
	defer workbook.Close()

	rows, err := workbook.GetRows("Reports")
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, "Customs violation reports", rows[0][0])
	assert.Equal(t, export.FlatHeaders, rows[1])
	assert.Equal(t, "case-1", rows[2][1])
	assert.Equal(t, "Sugar", rows[3][16])
}

/*
TestService_Grouped gates the grouped layout on the admin role.
*/
func TestService_Grouped(t *testing.T) {
	t.Run("forbidden", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.service.Grouped(context.Background(), inspector, report.Filter{})
		assert.True(t, apperr.HasCode(err, apperr.CodeForbidden))
		assert.Empty(t, f.recorder.calls)
	})

	t.Run("admin", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Records(gomock.Any(), gomock.Any(), constants.MaxExportReports+1).
			Return([]*export.Record{personRecord("1", "v1"), personRecord("2", "v1")}, nil)

		file, err := f.service.Grouped(context.Background(), admin, report.Filter{})
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(file.Name, "report_export_"))
		assert.Equal(t, []exportCall{{"grouped", 2}}, f.recorder.calls)

		workbook, err := excelize.OpenReader(bytes.NewReader(file.Data))
		require.NoError(t, err)
		defer workbook.Close()

		header, err := workbook.GetCellValue("Reports Export", "B2")
		require.NoError(t, err)
		assert.Equal(t, "Offender Side", header)
	})
}

/*
TestService_Generate_Errors covers the failures shared by both layouts.
*/
func TestService_Generate_Errors(t *testing.T) {
	north := report.Direction("north")

	tests := []struct {
		name     string
		actor    *sec.AuthClaims
		filter   report.Filter
		setup    func(f fixture)
		wantCode string
	}{
		{"anonymous", nil, report.Filter{}, nil, apperr.CodeUnauthorized},
		{"bad_direction", inspector, report.Filter{Direction: &north}, nil, apperr.CodeValidation},
		{"load_failure", inspector, report.Filter{OfficeID: pointer.To(3)}, func(f fixture) {
			f.repo.EXPECT().Records(gomock.Any(), report.Filter{OfficeID: pointer.To(3), Location: time.UTC}, constants.MaxExportReports+1).
				Return(nil, apperr.Internal(errors.New("connection reset")))
		}, apperr.CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			if tt.setup != nil {
				tt.setup(f)
			}

			file, err := f.service.Flat(context.Background(), tt.actor, tt.filter)
			assert.Nil(t, file)
			assert.True(t, apperr.HasCode(err, tt.wantCode), "got %v", err)
			assert.Empty(t, f.recorder.calls)
		})
	}
}

/*
TestService_Flat_Empty still produces a workbook with the header row.
*/
func TestService_Flat_Empty(t *testing.T) {
	f := newFixture(t)
	f.repo.EXPECT().Records(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

	file, err := f.service.Flat(context.Background(), admin, report.Filter{})
	require.NoError(t, err)
	assert.Zero(t, file.Rows)
	assert.NotEmpty(t, file.Data)
}

/*
TestService_Flat_ShadesByReport gives every goods row of a report the same fill.
*/
func TestService_Flat_ShadesByReport(t *testing.T) {
	f := newFixture(t)
	records := []*export.Record{
		personRecord("1", "v1", export.Good{Product: "Tea", Amount: 2, Unit: "kg"}, export.Good{Product: "Sugar", Amount: 1, Unit: "kg"}),
		personRecord("2", "v2"),
		personRecord("3", "v3", export.Good{Product: "Rice", Amount: 5, Unit: "kg"}, export.Good{Product: "Salt", Amount: 1, Unit: "kg"}),
	}
	f.repo.EXPECT().Records(gomock.Any(), gomock.Any(), gomock.Any()).Return(records, nil)

	file, err := f.service.Flat(context.Background(), inspector, report.Filter{})
	require.NoError(t, err)
	require.Equal(t, 5, file.Rows)

	workbook, err := excelize.OpenReader(bytes.NewReader(file.Data))
	require.NoError(t, err)
	defer workbook.Close()

	fill := func(cell string) string {
		id, err := workbook.GetCellStyle("Reports", cell)
		require.NoError(t, err)
		style, err := workbook.GetStyle(id)
		require.NoError(t, err)
		require.NotEmpty(t, style.Fill.Color, cell)
		return strings.ToUpper(style.Fill.Color[0])
	}

	tests := []struct {
		cell string
		want string
	}{
		{"A3", "FFFFFF"},
		{"Q4", "FFFFFF"},
		{"A5", "EAEAEA"},
		{"AQ5", "EAEAEA"},
		{"A6", "FFFFFF"},
		{"Q7", "FFFFFF"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, fill(tt.cell), tt.cell)
	}
}

/*
TestService_Flat_Truncated trims to the limit and says so in the file.
*/
func TestService_Flat_Truncated(t *testing.T) {
	tests := []struct {
		name          string
		loaded        int
		wantRows      int
		wantTruncated bool
	}{
		{"exactly_limit", 2, 2, false},
		{"over_limit", 3, 2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.service.SetLimit(2)

			var records []*export.Record
			for i := range tt.loaded {
				id := string(rune('1' + i))
				records = append(records, personRecord(id, "v"+id))
			}
			f.repo.EXPECT().Records(gomock.Any(), gomock.Any(), 3).Return(records, nil)

			file, err := f.service.Flat(context.Background(), inspector, report.Filter{})
			require.NoError(t, err)
			assert.Equal(t, tt.wantRows, file.Rows)
			assert.Equal(t, tt.wantTruncated, file.Truncated)

			workbook, err := excelize.OpenReader(bytes.NewReader(file.Data))
			require.NoError(t, err)
			defer workbook.Close()

			title, err := workbook.GetCellValue("Reports", "A1")
			require.NoError(t, err)
			if tt.wantTruncated {
				assert.Contains(t, title, "first 2 reports only")
			} else {
				assert.Equal(t, "Customs violation reports", title)
			}
		})
	}
}

/*
TestService_Generate_Location reads creation-day filters in the export zone.
*/
func TestService_Generate_Location(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	ashgabat := time.FixedZone("TMT", 5*60*60)
	service := export.NewService(repo, &exportCounter{}, ashgabat, slog.New(slog.NewTextHandler(io.Discard, nil)))

	repo.EXPECT().Records(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter report.Filter, _ int) ([]*export.Record, error) {
			assert.Same(t, ashgabat, filter.Location)
			return nil, nil
		})

	_, err := service.Flat(context.Background(), inspector, report.Filter{})
	require.NoError(t, err)
}
