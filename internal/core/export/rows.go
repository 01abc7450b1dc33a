// Copyright (c) 2026 Gumruk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package export

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/taibuivan/gumruk/internal/core/report"
	"github.com/taibuivan/gumruk/internal/core/violation"
	"github.com/taibuivan/gumruk/pkg/date"
	"github.com/taibuivan/gumruk/pkg/slice"
)

// timestampLayout renders created/updated instants.
const timestampLayout = "02.01.2006 15:04"

// listSeparator joins multi-valued cells.
const listSeparator = ", "

// FlatHeaders are the column titles of the flat layout.
var FlatHeaders = []string{
	"No.", "Case Number", "Protocol Number", "Report Date", "Customs Office", "Customs Point",
	"Violation Type", "Violator", "Passport Number", "Passport Issue Date", "Date of Birth",
	"Place of Birth", "Address", "Phone", "Nationality",
	"Product No.", "Product", "Amount", "Unit", "Reason for Violation", "Note",
	"Entry / Exit / Transit", "From Country", "To Country", "Vehicle Brand", "Car Number",
	"Transport Company", "Basis for Discovery", "Method of Discovery", "Administration Codexes",
	"Customs Officer", "Position", "Military Name", "Language of Work",
	"Witness Full Names", "Witness Addresses",
	"Assigned Task Fines", "Assigned Task Workgroups",
	"Letter Numbers", "Letter Dates", "Letter Actions",
	"Created At", "Updated At",
}

// GroupedHeaders are the column titles of the grouped layout.
var GroupedHeaders = []string{
	"No.", "Offender Side", "Full Name of Offender", "Date of Birth", "Passport Number",
	"Citizenship", "Address", "Number of Offences", "Customs Office", "Customs Checkpoint",
	"Protocol Number", "Date", "Goods", "Quantity", "Place of Discovery",
	"Entry / Exit / Transit", "Country of Origin", "Destination Country",
	"Vehicle Registration Number", "Articles of the Customs Code",
	"Imposed Fine (manat)", "Paid Fine (manat)", "Customs Officer",
}

/*
BuildFlatRows lays out one row per stored good.

Description: A report without goods still gets one row with the goods columns
blank. The running index is written only on the first row of each report.
Timestamps are rendered in location.
*/
func BuildFlatRows(records []*Record, location *time.Location) [][]any {
	rows, _ := buildFlat(records, location)
	return rows
}

// buildFlat also returns, per row, whether the row's report is shaded. Every
// goods row of one report shares its report's shade.
func buildFlat(records []*Record, location *time.Location) ([][]any, []bool) {
	rows := make([][]any, 0, len(records))
	shaded := make([]bool, 0, len(records))

	for index, record := range records {
		shared := flatReportColumns(record, location)

		goods := record.Goods
		if len(goods) == 0 {
			goods = []Good{{}}
		}

		for position, good := range goods {
			row := make([]any, 0, len(FlatHeaders))
			if position == 0 {
				row = append(row, index+1)
			} else {
				row = append(row, "")
			}
			row = append(row, shared.before...)
			row = append(row, flatGoodColumns(good, position, len(record.Goods) > 0)...)
			row = append(row, shared.after...)
			rows = append(rows, row)
			shaded = append(shaded, index%2 == 1)
		}
	}

	return rows, shaded
}

type flatShared struct {
	before []any
	after  []any
}

func flatReportColumns(record *Record, location *time.Location) flatShared {
	offender := &record.Violation

	tasks := record.Tasks
	var letters []Letter
	for _, task := range tasks {
		letters = append(letters, task.Letters...)
	}

	return flatShared{
		before: []any{
			record.CaseNumber,
			record.ProtocolNumber,
			date.Display(record.ReportDate),
			record.OfficeName,
			record.PointName,
			offender.Kind.Label(),
			offender.OffenderName(),
			offender.PassportNumber,
			date.Display(offender.PassportIssueDate),
			date.Display(offender.DateOfBirth),
			offender.PlaceOfBirth,
			firstNonEmpty(offender.ViolatorAddress, offender.Address),
			offender.Phone,
			offender.NationalityName,
		},
		after: []any{
			record.Direction.Label(),
			record.FromCountry,
			record.ToCountry,
			record.VehicleBrand,
			record.CarNumber,
			record.TransportCompany,
			record.Basis,
			record.Method,
			strings.Join(record.Codexes, listSeparator),
			joinWords(record.Officer.Name, record.Officer.Surname),
			record.Officer.Position,
			record.Officer.MilitaryName,
			record.LanguageOfWork,
			strings.Join(slice.Map(record.Witnesses, func(witness report.Witness) string { return witness.FullName }), listSeparator),
			strings.Join(slice.Map(record.Witnesses, func(witness report.Witness) string { return witness.Address }), listSeparator),
			strings.Join(slice.Map(tasks, func(task Task) string { return money(task.ImposedFine) }), listSeparator),
			strings.Join(slice.Map(tasks, func(task Task) string { return task.Workgroup }), listSeparator),
			strings.Join(slice.Map(letters, func(letter Letter) string { return letter.Number }), listSeparator),
			strings.Join(slice.Map(letters, func(letter Letter) string { return letter.Date.Display() }), listSeparator),
			strings.Join(slice.Map(letters, func(letter Letter) string { return letter.Action }), listSeparator),
			record.CreatedAt.In(location).Format(timestampLayout),
			record.UpdatedAt.In(location).Format(timestampLayout),
		},
	}
}

func flatGoodColumns(good Good, position int, present bool) []any {
	if !present {
		return blanks(6)
	}
	return []any{position + 1, good.Product, good.Amount, good.Unit, good.Reason, good.Note}
}

// group is the reports of one offender.
type group struct {
	offender *violation.Violation
	records  []*Record
}

/*
BuildGroupedRows lays out the reports grouped by offender.

Description: Groups are sorted by their report count, largest first; ties
keep the order in which the offender first appears. Offender columns are
written only on a group's first row. Inside a group every report produces one
row per stored good, or one row with blank goods columns.
*/
func BuildGroupedRows(records []*Record) [][]any {
	groups := groupByOffender(records)

	var rows [][]any
	for number, current := range groups {
		offenderColumns := groupedOffenderColumns(number+1, current)
		first := true

		for _, record := range current.records {
			goods := record.Goods
			if len(goods) == 0 {
				goods = []Good{{}}
			}

			for _, good := range goods {
				row := make([]any, 0, len(GroupedHeaders))
				if first {
					row = append(row, offenderColumns...)
					first = false
				} else {
					row = append(row, blanks(len(offenderColumns))...)
				}
				row = append(row, groupedReportColumns(record, good)...)
				rows = append(rows, row)
			}
		}
	}

	return rows
}

func groupByOffender(records []*Record) []*group {
	var groups []*group
	byID := make(map[string]*group)

	for _, record := range records {
		current, seen := byID[record.Violation.ID]
		if !seen {
			current = &group{offender: &record.Violation}
			byID[record.Violation.ID] = current
			groups = append(groups, current)
		}
		current.records = append(current.records, record)
	}

	slices.SortStableFunc(groups, func(a, b *group) int {
		return cmp.Compare(len(b.records), len(a.records))
	})
	return groups
}

func groupedOffenderColumns(number int, current *group) []any {
	offender := current.offender

	fullName := joinWords(offender.ViolatorSurname, offender.ViolatorName, offender.FatherName)
	address := offender.ViolatorAddress
	if offender.Kind == violation.KindLegalEntity {
		fullName = offender.CompanyName + "\nHead: " + offender.CompanyBossFullName
		address = offender.Address
	}

	return []any{
		number,
		offender.Kind.Label(),
		fullName,
		date.Display(offender.DateOfBirth),
		offender.PassportNumber,
		offender.NationalityName,
		address,
		len(current.records),
	}
}

func groupedReportColumns(record *Record, good Good) []any {
	var imposed, paid any = "", ""
	if len(record.Tasks) > 0 {
		imposed = amountCell(record.Tasks[0].ImposedFine)
		paid = amountCell(record.Tasks[0].PaidFine)
	}

	quantity := ""
	if good.Product != "" || good.Amount != 0 {
		quantity = joinWords(strconv.FormatFloat(good.Amount, 'f', -1, 64), good.Unit)
	}

	return []any{
		record.OfficeName,
		record.PointName,
		record.ProtocolNumber,
		date.Display(record.ReportDate),
		good.Product,
		quantity,
		good.Reason,
		record.Direction.Label(),
		record.FromCountry,
		record.ToCountry,
		record.CarNumber,
		strings.Join(record.Codexes, listSeparator),
		imposed,
		paid,
		joinWords(record.Officer.Surname, record.Officer.Name, record.Officer.Midname),
	}
}

// # Formatting

func money(value *float64) string {
	if value == nil {
		return ""
	}
	return strconv.FormatFloat(*value, 'f', 2, 64)
}

func amountCell(value *float64) any {
	if value == nil {
		return ""
	}
	return *value
}

func joinWords(parts ...string) string {
	kept := slices.DeleteFunc(slices.Clone(parts), func(part string) bool { return strings.TrimSpace(part) == "" })
	return strings.Join(kept, " ")
}

func blanks(count int) []any {
	cells := make([]any, count)
	for i := range cells {
		cells[i] = ""
	}
	return cells
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}
