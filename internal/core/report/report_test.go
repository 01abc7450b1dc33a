// Copyright (c) 2026 Gumruk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package report_test

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/gumruk/internal/core/report"
	"github.com/taibuivan/gumruk/internal/platform/apperr"
	"github.com/taibuivan/gumruk/internal/platform/sec"
	"github.com/taibuivan/gumruk/pkg/date"
	"github.com/taibuivan/gumruk/pkg/pointer"
)

/*
TestCanEdit covers the administrator bypass, ownership and related users.
*/
func TestCanEdit(t *testing.T) {
	admin := &sec.AuthClaims{UserID: "admin", Role: string(sec.RoleAdmin)}
	inspector := &sec.AuthClaims{UserID: "aman", Role: string(sec.RoleInspector)}

	tests := []struct {
		name    string
		actor   *sec.AuthClaims
		owner   *string
		related []string
		want    bool
	}{
		{"anonymous", nil, pointer.To("aman"), nil, false},
		{"admin_any_report", admin, pointer.To("someone"), nil, true},
		{"admin_orphan_report", admin, nil, nil, true},
		{"owner", inspector, pointer.To("aman"), nil, true},
		{"owner_in_related", inspector, pointer.To("bahar"), []string{"dowlet", "bahar"}, true},
		{"stranger", inspector, pointer.To("bahar"), []string{"dowlet"}, false},
		{"orphan_report", inspector, nil, []string{"bahar"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, report.CanEdit(tt.actor, tt.owner, tt.related))
		})
	}
}

/*
TestDirection checks the accepted values and their labels.
*/
func TestDirection(t *testing.T) {
	assert.True(t, report.DirectionEntry.IsValid())
	assert.True(t, report.DirectionTransit.IsValid())
	assert.False(t, report.Direction("import").IsValid())
	assert.Equal(t, "Exit", report.DirectionExit.Label())
}

/*
TestFilterFromRequest parses every supported query parameter.
*/
func TestFilterFromRequest(t *testing.T) {
	request := httptest.NewRequest("GET",
		"/reports?direction=exit&office=3&point=7&codex=2&codex=5&codex=x&report_date_from=2025-01-01&created_to=2025-02-28&q=+Annaýew+", nil)

	filter, err := report.FilterFromRequest(request)
	require.NoError(t, err)

	require.NotNil(t, filter.Direction)
	assert.Equal(t, report.DirectionExit, *filter.Direction)
	assert.Equal(t, 3, *filter.OfficeID)
	assert.Equal(t, 7, *filter.PointID)
	assert.Nil(t, filter.OfficerID)
	assert.Equal(t, []int{2, 5}, filter.CodexIDs)
	assert.Equal(t, date.New(2025, time.January, 1), *filter.ReportDateFrom)
	assert.Equal(t, date.New(2025, time.February, 28), *filter.CreatedTo)
	assert.Equal(t, "Annaýew", filter.Query)

	_, err = report.FilterFromRequest(httptest.NewRequest("GET", "/reports?report_date_to=31.12.2025", nil))
	assert.True(t, apperr.HasCode(err, apperr.CodeValidation))
}

/*
TestFilter_Where numbers placeholders after the caller's arguments.
*/
func TestFilter_Where(t *testing.T) {
	where, args := report.Filter{}.Where(nil)
	assert.Empty(t, where)
	assert.Empty(t, args)

	filter := report.Filter{
		Direction: pointer.To(report.DirectionEntry),
		OfficeID:  pointer.To(4),
		CodexIDs:  []int{1, 2},
		Query:     "tekstil",
	}
	where, args = filter.Where([]any{"preset"})

	assert.True(t, strings.HasPrefix(where, " WHERE "))
	assert.Contains(t, where, "r.direction = $2")
	assert.Contains(t, where, "r.office_id = $3")
	assert.Contains(t, where, "rc.codex_id = ANY($4)")
	assert.Contains(t, where, "v.passport_number ILIKE $5")
	assert.Contains(t, where, "p.name ILIKE $5")
	assert.NotContains(t, where, "%!")
	assert.Equal(t, []any{"preset", "entry", 4, []int{1, 2}, "%tekstil%"}, args)
}

/*
TestFilter_Where_CreatedDays bounds created_at by local midnights of the filter's zone.
*/
func TestFilter_Where_CreatedDays(t *testing.T) {
	ashgabat := time.FixedZone("TMT", 5*60*60)

	tests := []struct {
		name     string
		location *time.Location
		wantFrom time.Time
		wantTo   time.Time
	}{
		{
			name:     "configured_zone",
			location: ashgabat,
			wantFrom: time.Date(2026, time.January, 1, 19, 0, 0, 0, time.UTC),
			wantTo:   time.Date(2026, time.January, 2, 19, 0, 0, 0, time.UTC),
		},
		{
			name:     "utc_default",
			wantFrom: time.Date(2026, time.January, 2, 0, 0, 0, 0, time.UTC),
			wantTo:   time.Date(2026, time.January, 3, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			day := date.New(2026, time.January, 2)
			filter := report.Filter{CreatedFrom: &day, CreatedTo: &day, Location: tt.location}

			where, args := filter.Where(nil)
			assert.Equal(t, " WHERE r.created_at >= $1 AND r.created_at < $2", where)
			assert.NotContains(t, where, "::date")
			require.Len(t, args, 2)

			from, to := args[0].(time.Time), args[1].(time.Time)
			assert.True(t, tt.wantFrom.Equal(from), "from %s", from)
			assert.True(t, tt.wantTo.Equal(to), "to %s", to)

			// 02:00 local on 2 Jan is 21:00 UTC on 1 Jan and must fall inside.
			created := time.Date(2026, time.January, 2, 2, 0, 0, 0, ashgabat)
			if tt.location != nil {
				assert.False(t, created.Before(from))
				assert.True(t, created.Before(to))
			}
		})
	}
}
