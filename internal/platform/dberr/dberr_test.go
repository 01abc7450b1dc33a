// Copyright (c) 2026 Gumruk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package dberr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/gumruk/internal/platform/apperr"
	"github.com/taibuivan/gumruk/internal/platform/dberr"
)

/*
TestWrap maps driver errors onto application errors.
*/
func TestWrap(t *testing.T) {
	dberr.RegisterConstraint("report_case_number_key", "A report with this case number already exists")

	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{"no rows", pgx.ErrNoRows, http.StatusNotFound, ""},
		{"registered unique", &pgconn.PgError{Code: dberr.UniqueViolation, ConstraintName: "report_case_number_key"}, http.StatusConflict, "A report with this case number already exists"},
		{"unknown unique", &pgconn.PgError{Code: dberr.UniqueViolation, ConstraintName: "other"}, http.StatusConflict, "A record with the same value already exists"},
		{"foreign key", &pgconn.PgError{Code: dberr.ForeignKeyViolation}, http.StatusUnprocessableEntity, ""},
		{"check", &pgconn.PgError{Code: dberr.CheckViolation}, http.StatusBadRequest, ""},
		{"other", errors.New("connection reset"), http.StatusInternalServerError, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := apperr.As(dberr.Wrap(fmt.Errorf("query: %w", tt.err), "test_action"))
			require.NotNil(t, wrapped)
			assert.Equal(t, tt.wantStatus, wrapped.HTTPStatus)
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, wrapped.Message)
			}
		})
	}

	assert.NoError(t, dberr.Wrap(nil, "noop"))
}

/*
TestPredicates classifies unique and foreign key failures.
*/
func TestPredicates(t *testing.T) {
	unique := fmt.Errorf("insert: %w", &pgconn.PgError{Code: dberr.UniqueViolation, ConstraintName: "product_name_ci_key"})
	assert.True(t, dberr.IsUniqueViolation(unique, "product_name_ci_key"))
	assert.True(t, dberr.IsUniqueViolation(unique, ""))
	assert.False(t, dberr.IsUniqueViolation(unique, "other"))
	assert.False(t, dberr.IsForeignKeyViolation(unique))

	assert.True(t, dberr.IsForeignKeyViolation(&pgconn.PgError{Code: dberr.ForeignKeyViolation}))
}

/*
TestNotFound names the missing resource.
*/
func TestNotFound(t *testing.T) {
	err := apperr.As(dberr.NotFound(pgx.ErrNoRows, "get_report", "Report"))
	require.NotNil(t, err)
	assert.Equal(t, "Report not found", err.Message)
}
