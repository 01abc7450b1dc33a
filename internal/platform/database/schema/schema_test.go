// Copyright (c) 2026 Gumruk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/gumruk/internal/platform/database/schema"
)

/*
TestLookup builds registry-qualified descriptors.
*/
func TestLookup(t *testing.T) {
	table := schema.Lookup("unit")
	assert.Equal(t, "registry.unit", table.Table)
	assert.Equal(t, []string{"id", "name", "description", "created_at", "updated_at"}, table.Columns())
	assert.Equal(t, table, schema.Unit)
}

/*
TestColumns keeps descriptor column lists free of duplicates.
*/
func TestColumns(t *testing.T) {
	for name, columns := range map[string][]string{
		"report":    schema.Report.Columns(),
		"violation": schema.Violation.Columns(),
		"task":      schema.AssignedTask.Columns(),
		"account":   schema.UserAccount.Columns(),
	} {
		seen := map[string]bool{}
		for _, column := range columns {
			assert.False(t, seen[column], "%s: duplicate %s", name, column)
			seen[column] = true
		}
	}
}

/*
TestPrefixed qualifies columns with an alias.
*/
func TestPrefixed(t *testing.T) {
	assert.Equal(t, "r.id, r.case_number", schema.Prefixed("r", schema.Report.ID, schema.Report.CaseNumber))
	assert.Equal(t, "id, name", schema.List("id", "name"))
}
