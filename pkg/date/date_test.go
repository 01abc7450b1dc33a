// Copyright (c) 2026 Gumruk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package date_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/gumruk/pkg/date"
)

/*
TestParse accepts ISO dates and rejects everything else.
*/
func TestParse(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"2024-02-29", false},
		{"2023-02-29", true},
		{"29.02.2024", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			parsed, err := date.Parse(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, parsed.String())
		})
	}
}

/*
TestDate_JSON round-trips the wire form and treats null as the zero date.
*/
func TestDate_JSON(t *testing.T) {
	type payload struct {
		Born     date.Date  `json:"born"`
		Optional *date.Date `json:"optional"`
	}

	var decoded payload
	require.NoError(t, json.Unmarshal([]byte(`{"born":"1990-05-17","optional":null}`), &decoded))
	assert.Equal(t, date.New(1990, time.May, 17), decoded.Born)
	assert.Nil(t, decoded.Optional)

	encoded, err := json.Marshal(decoded)
	require.NoError(t, err)
	assert.JSONEq(t, `{"born":"1990-05-17","optional":null}`, string(encoded))

	assert.Error(t, json.Unmarshal([]byte(`{"born":"17/05/1990"}`), &decoded))
}

/*
TestDate_Postgres covers the pgx scanner and valuer hooks.
*/
func TestDate_Postgres(t *testing.T) {
	var scanned date.Date
	require.NoError(t, scanned.ScanDate(pgtype.Date{Time: time.Date(2021, 3, 4, 0, 0, 0, 0, time.UTC), Valid: true}))
	assert.Equal(t, "2021-03-04", scanned.String())

	require.NoError(t, scanned.ScanDate(pgtype.Date{}))
	assert.True(t, scanned.IsZero())

	value, err := date.New(2021, time.March, 4).DateValue()
	require.NoError(t, err)
	assert.True(t, value.Valid)

	value, err = date.Date{}.DateValue()
	require.NoError(t, err)
	assert.False(t, value.Valid)
}

/*
TestDisplay renders the spreadsheet form.
*/
func TestDisplay(t *testing.T) {
	d := date.New(2024, time.January, 9)
	assert.Equal(t, "09.01.2024", d.Display())
	assert.Equal(t, "09.01.2024", date.Display(&d))
	assert.Equal(t, "", date.Display(nil))
}
