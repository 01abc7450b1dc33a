// Copyright (c) 2026 Gumruk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package report

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/taibuivan/gumruk/internal/platform/database/schema"
	requestutil "github.com/taibuivan/gumruk/internal/platform/request"
	"github.com/taibuivan/gumruk/pkg/convert"
	"github.com/taibuivan/gumruk/pkg/date"
)

/*
FilterFromRequest reads the report filter from the query string.

Request:
  - created_from, created_to, report_date_from, report_date_to: YYYY-MM-DD (inclusive)

created_from and created_to are calendar days in [Filter.Location], which the
caller sets.
  - direction: entry | exit | transit
  - office, point, from_country, to_country, basis, method, officer: int
  - codex: int, repeatable (any of)
  - q: string

Returns:
  - error: VALIDATION_ERROR for malformed dates
*/
func FilterFromRequest(request *http.Request) (Filter, error) {
	values := request.URL.Query()
	filter := Filter{
		OfficeID:      requestutil.QueryInt(request, "office"),
		PointID:       requestutil.QueryInt(request, "point"),
		FromCountryID: requestutil.QueryInt(request, "from_country"),
		ToCountryID:   requestutil.QueryInt(request, "to_country"),
		BasisID:       requestutil.QueryInt(request, "basis"),
		MethodID:      requestutil.QueryInt(request, "method"),
		OfficerID:     requestutil.QueryInt(request, "officer"),
		CodexIDs:      convert.Ints(values["codex"]),
		Query:         strings.TrimSpace(values.Get("q")),
	}

	if raw := strings.TrimSpace(values.Get("direction")); raw != "" {
		direction := Direction(raw)
		filter.Direction = &direction
	}

	var err error
	if filter.CreatedFrom, err = requestutil.QueryDate(request, "created_from"); err != nil {
		return Filter{}, err
	}
	if filter.CreatedTo, err = requestutil.QueryDate(request, "created_to"); err != nil {
		return Filter{}, err
	}
	if filter.ReportDateFrom, err = requestutil.QueryDate(request, "report_date_from"); err != nil {
		return Filter{}, err
	}
	if filter.ReportDateTo, err = requestutil.QueryDate(request, "report_date_to"); err != nil {
		return Filter{}, err
	}

	return filter, nil
}

/*
FromClause is the FROM part shared by report lists and exports.

Aliases: r (report), v (violation), o (officer), u (creator account).
*/
func FromClause() string {
	report := schema.Report
	return fmt.Sprintf(`
		FROM %s r
		JOIN %s v ON v.%s = r.%s
		JOIN %s o ON o.%s = r.%s
		LEFT JOIN %s u ON u.%s = r.%s`,
		report.Table,
		schema.Violation.Table, schema.Violation.ID, report.ViolationID,
		schema.CustomsOfficer.Table, schema.CustomsOfficer.ID, report.OfficerID,
		schema.UserAccount.Table, schema.UserAccount.ID, report.CreatedBy,
	)
}

/*
Where renders the filter as a WHERE clause over [FromClause].

Parameters:
  - args: []any (arguments already bound by the caller, numbering continues after them)

Returns:
  - string: " WHERE ..." or "" when nothing filters
  - []any: args with the filter's values appended
*/
func (filter Filter) Where(args []any) (string, []any) {
	var conditions []string
	bind := func(format string, value any) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf(format, "$"+strconv.Itoa(len(args))))
	}

	report := schema.Report
	if filter.CreatedFrom != nil {
		bind("r."+report.CreatedAt+" >= %s", filter.dayStart(*filter.CreatedFrom))
	}
	if filter.CreatedTo != nil {
		bind("r."+report.CreatedAt+" < %s", filter.dayStart(*filter.CreatedTo).AddDate(0, 0, 1))
	}
	if filter.Direction != nil {
		bind("r."+report.Direction+" = %s", string(*filter.Direction))
	}
	if filter.ReportDateFrom != nil {
		bind("r."+report.ReportDate+" >= %s", *filter.ReportDateFrom)
	}
	if filter.ReportDateTo != nil {
		bind("r."+report.ReportDate+" <= %s", *filter.ReportDateTo)
	}

	for _, reference := range []struct {
		column string
		value  *int
	}{
		{report.OfficeID, filter.OfficeID},
		{report.PointID, filter.PointID},
		{report.FromCountryID, filter.FromCountryID},
		{report.ToCountryID, filter.ToCountryID},
		{report.BasisID, filter.BasisID},
		{report.MethodID, filter.MethodID},
		{report.OfficerID, filter.OfficerID},
	} {
		if reference.value != nil {
			bind("r."+reference.column+" = %s", *reference.value)
		}
	}

	if len(filter.CodexIDs) > 0 {
		codex := schema.ReportCodex
		bind(fmt.Sprintf("EXISTS (SELECT 1 FROM %s rc WHERE rc.%s = r.%s AND rc.%s = ANY(%%s))",
			codex.Table, codex.ReportID, report.ID, codex.CodexID), filter.CodexIDs)
	}

	if filter.Query != "" {
		bind(searchCondition(), "%"+filter.Query+"%")
	}

	if len(conditions) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

// dayStart is local midnight of day in the filter's location.
func (filter Filter) dayStart(day date.Date) time.Time {
	location := filter.Location
	if location == nil {
		location = time.UTC
	}
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, location)
}

// searchCondition matches q against numbers, offender names, officer names,
// the car number, the creator and the names of seized products.
func searchCondition() string {
	report, violation, officer := schema.Report, schema.Violation, schema.CustomsOfficer
	good, product := schema.StoredGood, schema.Product

	columns := []string{
		"r." + report.CaseNumber,
		"r." + report.ProtocolNumber,
		"r." + report.DeclarationNumber,
		"r." + report.CarNumber,
		"v." + violation.CompanyName,
		"v." + violation.ViolatorName,
		"v." + violation.ViolatorSurname,
		"v." + violation.FatherName,
		"v." + violation.PassportNumber,
		"o." + officer.Name,
		"o." + officer.Surname,
		"o." + officer.Midname,
		"u." + schema.UserAccount.Username,
	}

	matches := make([]string, 0, len(columns)+1)
	for _, column := range columns {
		matches = append(matches, column+" ILIKE %[1]s")
	}
	matches = append(matches, fmt.Sprintf(
		"EXISTS (SELECT 1 FROM %s g JOIN %s p ON p.%s = g.%s WHERE g.%s = r.%s AND p.%s ILIKE %%[1]s)",
		good.Table, product.Table, product.ID, good.ProductID, good.ReportID, report.ID, product.Name,
	))

	return "(" + strings.Join(matches, " OR ") + ")"
}
