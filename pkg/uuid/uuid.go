// Copyright (c) 2026 Gumruk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package uuid generates the UUIDv7 primary keys of reports, violations, stored
goods, tasks and users.

Version 7 values sort by creation time, so "newest first" listings can fall back
to the primary key when timestamps collide.
*/
package uuid

import "github.com/google/uuid"

// New returns a fresh UUIDv7 string. It panics only when the OS entropy source fails.
func New() string {
	id, err := uuid.NewV7()
	if err != nil {
		panic("uuid: entropy source unavailable: " + err.Error())
	}
	return id.String()
}

// Valid reports whether value parses as a UUID of any version.
func Valid(value string) bool {
	return uuid.Validate(value) == nil
}
