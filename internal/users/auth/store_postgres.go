// Copyright (c) 2026 Gumruk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/gumruk/internal/platform/database/schema"
	"github.com/taibuivan/gumruk/internal/platform/dberr"
	"github.com/taibuivan/gumruk/pkg/pointer"
)

// PostgresUserRepository implements [UserRepository] on users.account.
type PostgresUserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository returns a postgres-backed [UserRepository].
func NewUserRepository(db *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func selectUsers() string {
	return fmt.Sprintf(`SELECT %s FROM %s`, schema.List(schema.UserAccount.Columns()...), schema.UserAccount.Table)
}

// ScanUser reads a row selected with schema.UserAccount.Columns().
func ScanUser(row pgx.Row) (*User, error) {
	var (
		user  User
		email *string
	)
	err := row.Scan(
		&user.ID, &user.Username, &email, &user.PasswordHash, &user.FullName, &user.Role,
		&user.IsActive, &user.LastLoginAt, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	user.Email = pointer.Val(email)
	return &user, nil
}

// FindByID fetches an account by ID.
func (repository *PostgresUserRepository) FindByID(context context.Context, id string) (*User, error) {
	query := selectUsers() + fmt.Sprintf(` WHERE %s = $1`, schema.UserAccount.ID)

	user, err := ScanUser(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.NotFound(err, "find_user_by_id", "User")
	}
	return user, nil
}

/*
FindByLogin fetches an account by username or email.

Description: Both columns carry case-insensitive unique indexes on lower(),
so at most one row can match each branch. A username wins over an email.
*/
func (repository *PostgresUserRepository) FindByLogin(context context.Context, login string) (*User, error) {
	account := schema.UserAccount
	query := selectUsers() + fmt.Sprintf(`
		WHERE lower(%s) = lower($1) OR lower(%s) = lower($1)
		ORDER BY (lower(%s) = lower($1)) DESC
		LIMIT 1`, account.Username, account.Email, account.Username)

	user, err := ScanUser(repository.db.QueryRow(context, query, login))
	if err != nil {
		return nil, dberr.NotFound(err, "find_user_by_login", "User")
	}
	return user, nil
}

// Create inserts an account and fills the timestamps.
func (repository *PostgresUserRepository) Create(context context.Context, user *User) error {
	account := schema.UserAccount
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING %s, %s
	`, account.Table, account.ID, account.Username, account.Email, account.PasswordHash,
		account.FullName, account.Role, account.IsActive,
		account.CreatedAt, account.UpdatedAt)

	err := repository.db.QueryRow(context, query,
		user.ID, user.Username, pointer.NonEmpty(user.Email), user.PasswordHash,
		user.FullName, user.Role, user.IsActive,
	).Scan(&user.CreatedAt, &user.UpdatedAt)
	return dberr.Wrap(err, "create_user")
}

// UpdatePassword replaces the password hash.
func (repository *PostgresUserRepository) UpdatePassword(context context.Context, userID, newHash string) error {
	account := schema.UserAccount
	query := fmt.Sprintf(`UPDATE %s SET %s = $2, %s = NOW() WHERE %s = $1`,
		account.Table, account.PasswordHash, account.UpdatedAt, account.ID)

	tag, err := repository.db.Exec(context, query, userID, newHash)
	if err != nil {
		return dberr.Wrap(err, "update_user_password")
	}
	if tag.RowsAffected() == 0 {
		return dberr.NotFound(pgx.ErrNoRows, "update_user_password", "User")
	}
	return nil
}

// TouchLogin stamps last_login_at.
func (repository *PostgresUserRepository) TouchLogin(context context.Context, userID string, at time.Time) error {
	account := schema.UserAccount
	query := fmt.Sprintf(`UPDATE %s SET %s = $2 WHERE %s = $1`, account.Table, account.LastLoginAt, account.ID)

	_, err := repository.db.Exec(context, query, userID, at)
	return dberr.Wrap(err, "touch_user_login")
}
