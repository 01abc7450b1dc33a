// Copyright (c) 2026 Gumruk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package convert parses integers out of query strings.

Malformed input never produces an error here: a missing or unparsable filter
is treated as absent. Use [strconv] directly where a bad value must be
reported to the client.
*/
package convert

import (
	"strconv"
	"strings"
)

// IntOr parses raw, returning def when raw is blank or not an integer.
func IntOr(raw string, def int) int {
	if value := IntPtr(raw); value != nil {
		return *value
	}
	return def
}

// IntPtr parses raw into a pointer, nil when blank or malformed.
func IntPtr(raw string) *int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &value
}

// Ints parses repeated parameters (?codex=1&codex=4) and comma lists
// (?codex=1,4) alike. Invalid entries are dropped; order is kept.
func Ints(values []string) []int {
	var result []int
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			if parsed := IntPtr(part); parsed != nil {
				result = append(result, *parsed)
			}
		}
	}
	return result
}
