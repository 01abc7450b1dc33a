// Copyright (c) 2026 Gumruk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package date provides a calendar date without a time-of-day component.
//
// Birth dates, report dates and letter dates are stored in PostgreSQL DATE
// columns and travel through JSON as "YYYY-MM-DD". [Date] implements the pgx
// DateScanner/DateValuer pair and the JSON (un)marshalers, so domain structs
// can carry it directly; nullable columns use *Date.
package date

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

// Layout is the ISO form used on the wire.
const Layout = "2006-01-02"

// DisplayLayout is the day-first form used in exported spreadsheets.
const DisplayLayout = "02.01.2006"

// Date is a UTC midnight instant.
type Date struct {
	time.Time
}

// New builds a Date from calendar components.
func New(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Of truncates t to its calendar date in t's location.
func Of(t time.Time) Date {
	return New(t.Year(), t.Month(), t.Day())
}

// Today returns the current UTC date.
func Today() Date {
	return Of(time.Now().UTC())
}

// Parse reads a "YYYY-MM-DD" string.
func Parse(value string) (Date, error) {
	parsed, err := time.Parse(Layout, value)
	if err != nil {
		return Date{}, fmt.Errorf("date: %q is not YYYY-MM-DD", value)
	}
	return Date{parsed}, nil
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(Layout)
}

// Display renders the date as dd.mm.yyyy; the zero value renders empty.
func (d Date) Display() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DisplayLayout)
}

// Display renders an optional date, empty when nil.
func Display(d *Date) string {
	if d == nil {
		return ""
	}
	return d.Display()
}

// # JSON

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Format(Layout))
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*d = Date{}
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == "" {
		*d = Date{}
		return nil
	}

	parsed, err := Parse(raw)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// # PostgreSQL

// ScanDate implements pgtype.DateScanner.
func (d *Date) ScanDate(value pgtype.Date) error {
	if !value.Valid {
		*d = Date{}
		return nil
	}
	*d = Of(value.Time)
	return nil
}

// DateValue implements pgtype.DateValuer.
func (d Date) DateValue() (pgtype.Date, error) {
	if d.IsZero() {
		return pgtype.Date{}, nil
	}
	return pgtype.Date{Time: d.Time, Valid: true}, nil
}
