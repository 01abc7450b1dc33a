// Copyright (c) 2026 Gumruk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package report_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/taibuivan/gumruk/internal/core/report"
	"github.com/taibuivan/gumruk/internal/core/report/mocks"
	"github.com/taibuivan/gumruk/internal/platform/apperr"
	"github.com/taibuivan/gumruk/internal/platform/dberr"
	"github.com/taibuivan/gumruk/internal/platform/sec"
	"github.com/taibuivan/gumruk/pkg/pointer"
	"github.com/taibuivan/gumruk/pkg/uuid"
)

type countingRecorder struct{ created int }

func (recorder *countingRecorder) IncrementReportsCreated() { recorder.created++ }

type fakeFiles struct{ deleted []string }

func (files *fakeFiles) URL(key string) string { return "/media/" + key }

func (files *fakeFiles) Delete(_ context.Context, key string) error {
	files.deleted = append(files.deleted, key)
	if key == "broken" {
		return errors.New("bucket unavailable")
	}
	return nil
}

type fixture struct {
	service   *report.Service
	repo      *mocks.MockRepository
	relations *mocks.MockRelations
	recorder  *countingRecorder
	files     *fakeFiles
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	relations := mocks.NewMockRelations(ctrl)
	recorder := &countingRecorder{}
	files := &fakeFiles{}

	guard := report.NewGuard(repo, relations)
	service := report.NewService(repo, guard, files, recorder, time.UTC, slog.New(slog.NewTextHandler(io.Discard, nil)))
	return fixture{service: service, repo: repo, relations: relations, recorder: recorder, files: files}
}

var inspector = &sec.AuthClaims{UserID: "0190a1b2-0000-7000-8000-000000000001", Role: string(sec.RoleInspector)}

func validReport() *report.Report {
	return &report.Report{
		CaseNumber:  " 12/2025 ",
		ViolationID: uuid.New(),
		OfficeID:    1,
		PointID:     2,
		OfficerID:   3,
		BasisID:     4,
		Direction:   report.DirectionEntry,
		CodexIDs:    []int{5, 2, 5, 0},
		Witnesses: []report.Witness{
			{FullName: " Aman Amanow ", Address: "Aşgabat"},
			{FullName: " ", Address: ""},
		},
	}
}

/*
TestService_Create stamps the owner and normalises the payload.
*/
func TestService_Create(t *testing.T) {
	f := newFixture(t)

	var storedID string
	f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, r *report.Report) error {
		storedID = r.ID
		assert.True(t, uuid.Valid(r.ID))
		assert.Equal(t, inspector.UserID, *r.CreatedBy)
		assert.Equal(t, "12/2025", r.CaseNumber)
		assert.Equal(t, report.DefaultLanguageOfWork, r.LanguageOfWork)
		assert.Equal(t, []int{2, 5}, r.CodexIDs)
		assert.Equal(t, []report.Witness{{FullName: "Aman Amanow", Address: "Aşgabat"}}, r.Witnesses)
		return nil
	})
	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, id string) (*report.Report, error) {
		assert.Equal(t, storedID, id)
		return &report.Report{ID: id}, nil
	})

	created, err := f.service.Create(context.Background(), inspector, validReport())
	require.NoError(t, err)
	assert.Equal(t, storedID, created.ID)
	assert.Equal(t, 1, f.recorder.created)
}

/*
TestService_Create_PointOutsideOffice reports a checkpoint of another office.
*/
func TestService_Create_PointOutsideOffice(t *testing.T) {
	f := newFixture(t)

	mismatch := &pgconn.PgError{Code: dberr.ForeignKeyViolation, ConstraintName: "report_point_office_fkey"}
	f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(dberr.Wrap(mismatch, "create_report"))

	_, err := f.service.Create(context.Background(), inspector, validReport())
	require.Error(t, err)

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, http.StatusUnprocessableEntity, appError.HTTPStatus)
	assert.Equal(t, "Customs point does not belong to the customs office", appError.Message)
	assert.Zero(t, f.recorder.created)
}

/*
TestService_Create_Validation rejects incomplete reports before touching storage.
*/
func TestService_Create_Validation(t *testing.T) {
	f := newFixture(t)

	input := validReport()
	input.CaseNumber = ""
	input.ViolationID = "nope"
	input.Direction = "sideways"
	input.CarNumber = "AG 1234 AG 5678 AG 90 12"

	_, err := f.service.Create(context.Background(), inspector, input)
	require.True(t, apperr.HasCode(err, apperr.CodeValidation))

	var fields []string
	for _, detail := range apperr.As(err).Details {
		fields = append(fields, detail.Field)
	}
	assert.ElementsMatch(t, []string{report.FieldCaseNumber, report.FieldViolationID, report.FieldDirection, report.FieldCarNumber}, fields)
	assert.Zero(t, f.recorder.created)
}

/*
TestService_Update_Gate exercises the edit gate on update.
*/
func TestService_Update_Gate(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name     string
		actor    *sec.AuthClaims
		setup    func(f fixture)
		wantCode string
	}{
		{
			name:  "owner",
			actor: inspector,
			setup: func(f fixture) {
				f.repo.EXPECT().Owner(gomock.Any(), id).Return(pointer.To(inspector.UserID), nil)
				f.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
				f.repo.EXPECT().Get(gomock.Any(), id).Return(&report.Report{ID: id}, nil)
			},
		},
		{
			name:  "related_owner",
			actor: inspector,
			setup: func(f fixture) {
				f.repo.EXPECT().Owner(gomock.Any(), id).Return(pointer.To("colleague"), nil)
				f.relations.EXPECT().RelatedUserIDs(gomock.Any(), inspector.UserID).Return([]string{"colleague"}, nil)
				f.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
				f.repo.EXPECT().Get(gomock.Any(), id).Return(&report.Report{ID: id}, nil)
			},
		},
		{
			name:  "unrelated_owner",
			actor: inspector,
			setup: func(f fixture) {
				f.repo.EXPECT().Owner(gomock.Any(), id).Return(pointer.To("stranger"), nil)
				f.relations.EXPECT().RelatedUserIDs(gomock.Any(), inspector.UserID).Return([]string{"colleague"}, nil)
			},
			wantCode: apperr.CodeForbidden,
		},
		{
			name:  "admin_skips_relations",
			actor: &sec.AuthClaims{UserID: "root", Role: string(sec.RoleAdmin)},
			setup: func(f fixture) {
				f.repo.EXPECT().Owner(gomock.Any(), id).Return(pointer.To("stranger"), nil)
				f.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
				f.repo.EXPECT().Get(gomock.Any(), id).Return(&report.Report{ID: id}, nil)
			},
		},
		{
			name:  "missing_report",
			actor: inspector,
			setup: func(f fixture) {
				f.repo.EXPECT().Owner(gomock.Any(), id).Return(nil, apperr.NotFound("Report"))
			},
			wantCode: apperr.CodeNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)

			_, err := f.service.Update(context.Background(), tt.actor, id, validReport())
			if tt.wantCode == "" {
				require.NoError(t, err)
				return
			}
			assert.True(t, apperr.HasCode(err, tt.wantCode))
		})
	}
}

/*
TestService_Delete_Forbidden leaves the report in place when the gate fails.
*/
func TestService_Delete_Forbidden(t *testing.T) {
	f := newFixture(t)
	id := uuid.New()

	f.repo.EXPECT().Owner(gomock.Any(), id).Return(nil, nil)

	err := f.service.Delete(context.Background(), inspector, id)
	assert.True(t, apperr.HasCode(err, apperr.CodeForbidden))
}

/*
TestService_Delete removes the stored files of the report after the rows are gone.
*/
func TestService_Delete(t *testing.T) {
	f := newFixture(t)
	id := uuid.New()
	owner := inspector.UserID

	f.repo.EXPECT().Owner(gomock.Any(), id).Return(&owner, nil)
	f.repo.EXPECT().Delete(gomock.Any(), id).Return([]string{"goods/2026/01/a_resized.jpg", "broken", "documents/2026/01/b.pdf"}, nil)

	require.NoError(t, f.service.Delete(context.Background(), inspector, id))
	assert.Equal(t, []string{"goods/2026/01/a_resized.jpg", "broken", "documents/2026/01/b.pdf"}, f.files.deleted)
}

/*
TestService_PersonInfo resolves image URLs and requires a passport number.
*/
func TestService_PersonInfo(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.PersonInfo(context.Background(), "")
	assert.True(t, apperr.HasCode(err, apperr.CodeValidation))

	f.repo.EXPECT().PersonReports(gomock.Any(), "I-AŞ 123456").Return([]*report.PersonReport{{
		ReportID: "r-1",
		StoredGoods: []report.PersonGood{{
			ID:     "g-1",
			Images: []report.PersonImage{{ID: "i-1", Key: "goods/2025/01/a_resized.jpg"}},
		}},
	}}, nil)

	reports, err := f.service.PersonInfo(context.Background(), "I-AŞ 123456")
	require.NoError(t, err)
	assert.Equal(t, "/media/goods/2025/01/a_resized.jpg", reports[0].StoredGoods[0].Images[0].URL)
}

/*
TestService_List_Location hands the configured zone to the repository filter.
*/
func TestService_List_Location(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	ashgabat := time.FixedZone("TMT", 5*60*60)
	service := report.NewService(repo, report.NewGuard(repo, mocks.NewMockRelations(ctrl)), &fakeFiles{}, &countingRecorder{},
		ashgabat, slog.New(slog.NewTextHandler(io.Discard, nil)))

	repo.EXPECT().List(gomock.Any(), gomock.Any(), 20, 0).
		DoAndReturn(func(_ context.Context, filter report.Filter, _, _ int) ([]*report.Report, int, error) {
			assert.Same(t, ashgabat, filter.Location)
			return nil, 0, nil
		})

	_, total, err := service.List(context.Background(), report.Filter{}, 20, 0)
	require.NoError(t, err)
	assert.Zero(t, total)
}
