// Copyright (c) 2026 Gumruk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/gumruk/internal/platform/apperr"
	"github.com/taibuivan/gumruk/internal/platform/validate"
)

/*
TestValidator_Required tests the mandatory field validation logic.
*/
func TestValidator_Required(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		value    string
		hasError bool
	}{
		{"valid_string", "case_number", "IT-2024-001", false},
		{"empty_string", "case_number", "", true},
		{"whitespace_only", "case_number", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Required(tt.field, tt.value)

			if tt.hasError {
				assert.True(t, v.HasErrors())
				err := v.Err()
				require.NotNil(t, err)

				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, apperr.CodeValidation, ae.Code)
				assert.Equal(t, tt.field, ae.Details[0].Field)
			} else {
				assert.False(t, v.HasErrors())
				assert.Nil(t, v.Err())
			}
		})
	}
}

/*
TestValidator_Amounts covers the positive and non-negative money rules.
*/
func TestValidator_Amounts(t *testing.T) {
	negative := -0.01
	zero := 0.0

	tests := []struct {
		name     string
		run      func(v *validate.Validator)
		hasError bool
	}{
		{"positive_ok", func(v *validate.Validator) { v.Positive("amount", 1.5) }, false},
		{"positive_zero", func(v *validate.Validator) { v.Positive("amount", 0) }, true},
		{"non_negative_nil", func(v *validate.Validator) { v.NonNegative("paid_fine", nil) }, false},
		{"non_negative_zero", func(v *validate.Validator) { v.NonNegative("paid_fine", &zero) }, false},
		{"non_negative_below", func(v *validate.Validator) { v.NonNegative("paid_fine", &negative) }, true},
		{"required_id_zero", func(v *validate.Validator) { v.RequiredID("office_id", 0) }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			tt.run(v)
			assert.Equal(t, tt.hasError, v.HasErrors())
		})
	}
}

/*
TestValidator_Email checks the email format validation rule.
*/
func TestValidator_Email(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		isValid bool
	}{
		{"valid_email", "inspector@customs.gov.tm", true},
		{"invalid_format", "invalid-email", false},
		{"missing_domain", "test@", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Email("email", tt.email)
			assert.Equal(t, !tt.isValid, v.HasErrors())
		})
	}
}

/*
TestValidator_Chain_Failure tests error accumulation in the chain.
*/
func TestValidator_Chain_Failure(t *testing.T) {
	v := &validate.Validator{}

	err := v.
		Required("company_name", "").
		MaxLen("car_number", "0123456789012345678901", 20).
		OneOf("direction", "sideways", "entry", "exit", "transit").
		Err()

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Len(t, ae.Details, 3)
}
