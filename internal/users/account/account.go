// Copyright (c) 2026 Gumruk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account

import (
	"strings"
	"time"

	"github.com/taibuivan/gumruk/internal/platform/sec"
	"github.com/taibuivan/gumruk/internal/users/auth"
)

// # Domain Entities

// Member is the short form of a user shown inside another profile.
type Member struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
}

// Profile is an account together with the users whose reports it may edit.
type Profile struct {
	ID           string       `json:"id"`
	Username     string       `json:"username"`
	Email        string       `json:"email,omitempty"`
	FullName     string       `json:"full_name"`
	Role         sec.UserRole `json:"role"`
	IsActive     bool         `json:"is_active"`
	LastLoginAt  *time.Time   `json:"last_login_at,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
	RelatedUsers []Member     `json:"related_users"`
}

func newProfile(user *auth.User, related []Member) *Profile {
	if related == nil {
		related = []Member{}
	}
	return &Profile{
		ID:           user.ID,
		Username:     user.Username,
		Email:        user.Email,
		FullName:     user.FullName,
		Role:         user.Role,
		IsActive:     user.IsActive,
		LastLoginAt:  user.LastLoginAt,
		CreatedAt:    user.CreatedAt,
		RelatedUsers: related,
	}
}

// Filter narrows the admin user list.
type Filter struct {
	// Query matches username, email and full name
	Query string
	Role  *sec.UserRole
}

// UpdateInput holds the admin-editable account fields.
type UpdateInput struct {
	Email    string       `json:"email"`
	FullName string       `json:"full_name"`
	Role     sec.UserRole `json:"role"`
	IsActive bool         `json:"is_active"`
}

func (input *UpdateInput) normalize() {
	input.Email = strings.TrimSpace(input.Email)
	input.FullName = strings.TrimSpace(input.FullName)
}

// # Field Identifiers

const (
	FieldRelatedUsers = "related_users"
	FieldEmail        = "email"
	FieldFullName     = "full_name"
	FieldRole         = "role"
	FieldIsActive     = "is_active"
)
