// Copyright (c) 2026 Gumruk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// UserAccountTable represents the 'users.account' table
type UserAccountTable struct {
	Table        string
	ID           string
	Username     string
	Email        string
	PasswordHash string
	FullName     string
	Role         string
	IsActive     string
	LastLoginAt  string
	CreatedAt    string
	UpdatedAt    string
}

// UserAccount is the schema definition for users.account
var UserAccount = UserAccountTable{
	Table:        "users.account",
	ID:           "id",
	Username:     "username",
	Email:        "email",
	PasswordHash: "password_hash",
	FullName:     "full_name",
	Role:         "role",
	IsActive:     "is_active",
	LastLoginAt:  "last_login_at",
	CreatedAt:    "created_at",
	UpdatedAt:    "updated_at",
}

func (t UserAccountTable) Columns() []string {
	return []string{t.ID, t.Username, t.Email, t.PasswordHash, t.FullName, t.Role, t.IsActive, t.LastLoginAt, t.CreatedAt, t.UpdatedAt}
}

// RelatedUserTable represents the 'users.related_user' table
type RelatedUserTable struct {
	Table         string
	UserID        string
	RelatedUserID string
}

// RelatedUser is the schema definition for users.related_user
var RelatedUser = RelatedUserTable{
	Table:         "users.related_user",
	UserID:        "user_id",
	RelatedUserID: "related_user_id",
}
