// Copyright (c) 2026 Gumruk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package schema names the tables and columns of the users, registry and cases schemas.

Repositories build their SQL from these descriptors so a renamed column is a
one-line change here plus a migration.
*/
package schema

import "strings"

// List joins columns for a SELECT or INSERT column list.
func List(columns ...string) string {
	return strings.Join(columns, ", ")
}

// Prefixed qualifies every column with a table alias ("r.id, r.case_number").
func Prefixed(alias string, columns ...string) string {
	qualified := make([]string, len(columns))
	for i, column := range columns {
		qualified[i] = alias + "." + column
	}
	return strings.Join(qualified, ", ")
}
