// Copyright (c) 2026 Gumruk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package export

import (
	"time"

	"github.com/taibuivan/gumruk/internal/core/report"
	"github.com/taibuivan/gumruk/internal/core/violation"
	"github.com/taibuivan/gumruk/pkg/date"
)

// Layout names a spreadsheet shape.
type Layout string

const (
	LayoutFlat    Layout = "flat"
	LayoutGrouped Layout = "grouped"
)

// Record is one report with every name the spreadsheets print already resolved.
type Record struct {
	ReportID       string
	CaseNumber     string
	ProtocolNumber string
	ReportDate     *date.Date

	OfficeName string
	PointName  string

	Violation violation.Violation

	Direction        report.Direction
	FromCountry      string
	ToCountry        string
	VehicleBrand     string
	CarNumber        string
	TransportCompany string
	Basis            string
	Method           string
	LanguageOfWork   string

	Officer   Officer
	Codexes   []string
	Witnesses []report.Witness
	Goods     []Good

	// Newest first
	Tasks []Task

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Officer is the customs officer who drew up a report.
type Officer struct {
	Name         string
	Surname      string
	Midname      string
	Position     string
	MilitaryName string
}

// Good is a seized product line.
type Good struct {
	Product string
	Amount  float64
	Unit    string
	Reason  string
	Note    string
}

// Task is an assigned task with its letters, newest letter first.
type Task struct {
	ImposedFine *float64
	PaidFine    *float64
	Workgroup   string
	Letters     []Letter
}

// Letter is an outgoing letter of a task.
type Letter struct {
	Number string
	Date   date.Date
	Action string
}

// File is a rendered spreadsheet ready to download.
type File struct {
	Name string
	Data []byte
	Rows int

	// Truncated is set when more reports matched than one file holds.
	Truncated bool
}

// ContentType is the MIME type of .xlsx workbooks.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
