// Copyright (c) 2026 Gumruk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

// # User Roles

// UserRole represents the authorization level granted to an account.
type UserRole string

const (
	// Unrestricted access, bypasses report ownership checks
	RoleAdmin UserRole = "admin"

	// Maintains lookup tables and reference data
	RoleSupervisor UserRole = "supervisor"

	// Files reports and edits the ones they own or share
	RoleInspector UserRole = "inspector"

	// Read-only access to registry data
	RoleViewer UserRole = "viewer"
)

// Roles lists every assignable role from highest to lowest.
var Roles = []UserRole{RoleAdmin, RoleSupervisor, RoleInspector, RoleViewer}

// # Role Hierarchy

// AtLeast checks if the current role meets or exceeds the required target role.
func (r UserRole) AtLeast(target UserRole) bool {
	return r.level() >= target.level()
}

// IsValid reports whether r is one of the known roles.
func (r UserRole) IsValid() bool {
	return r.level() > 0
}

func (r UserRole) level() int {
	switch r {
	case RoleAdmin:
		return 40
	case RoleSupervisor:
		return 30
	case RoleInspector:
		return 20
	case RoleViewer:
		return 10
	default:
		return 0
	}
}
