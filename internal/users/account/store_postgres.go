// Copyright (c) 2026 Gumruk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/gumruk/internal/platform/database/schema"
	"github.com/taibuivan/gumruk/internal/platform/dberr"
	"github.com/taibuivan/gumruk/internal/users/auth"
	"github.com/taibuivan/gumruk/pkg/pointer"
)

// PostgresRepository implements [Repository] on users.account and users.related_user.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository returns a postgres-backed [Repository].
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// List retrieves a page of accounts.
func (repository *PostgresRepository) List(context context.Context, filter Filter, limit, offset int) ([]*auth.User, int, error) {
	account := schema.UserAccount

	where := ` WHERE TRUE`
	args := []any{}
	if filter.Query != "" {
		args = append(args, "%"+filter.Query+"%")
		where += fmt.Sprintf(` AND (%s ILIKE $%d OR %s ILIKE $%d OR %s ILIKE $%d)`,
			account.Username, len(args), account.Email, len(args), account.FullName, len(args))
	}
	if filter.Role != nil {
		args = append(args, *filter.Role)
		where += fmt.Sprintf(` AND %s = $%d`, account.Role, len(args))
	}

	var total int
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s`, account.Table) + where
	if err := repository.db.QueryRow(context, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_users")
	}

	query := fmt.Sprintf(`SELECT %s FROM %s`, schema.List(account.Columns()...), account.Table) + where +
		fmt.Sprintf(` ORDER BY lower(%s) ASC LIMIT $%d OFFSET $%d`, account.Username, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_users")
	}
	defer rows.Close()

	users := make([]*auth.User, 0, limit)
	for rows.Next() {
		user, err := auth.ScanUser(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_user")
		}
		users = append(users, user)
	}
	return users, total, dberr.Wrap(rows.Err(), "list_users")
}

// Get fetches an account by ID.
func (repository *PostgresRepository) Get(context context.Context, id string) (*auth.User, error) {
	account := schema.UserAccount
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, schema.List(account.Columns()...), account.Table, account.ID)

	user, err := auth.ScanUser(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.NotFound(err, "get_user", "User")
	}
	return user, nil
}

// Update writes the admin-editable columns.
func (repository *PostgresRepository) Update(context context.Context, user *auth.User) error {
	account := schema.UserAccount
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`, account.Table, account.Email, account.FullName, account.Role, account.IsActive, account.UpdatedAt,
		account.ID, account.UpdatedAt)

	err := repository.db.QueryRow(context, query,
		user.ID, pointer.NonEmpty(user.Email), user.FullName, user.Role, user.IsActive,
	).Scan(&user.UpdatedAt)
	if err != nil {
		return dberr.NotFound(err, "update_user", "User")
	}
	return nil
}

// RelatedUsers lists the related users of userID.
func (repository *PostgresRepository) RelatedUsers(context context.Context, userID string) ([]Member, error) {
	account, related := schema.UserAccount, schema.RelatedUser
	query := fmt.Sprintf(`
		SELECT a.%s, a.%s, a.%s
		FROM %s r
		JOIN %s a ON a.%s = r.%s
		WHERE r.%s = $1
		ORDER BY lower(a.%s) ASC
	`, account.ID, account.Username, account.FullName,
		related.Table,
		account.Table, account.ID, related.RelatedUserID,
		related.UserID,
		account.Username)

	rows, err := repository.db.Query(context, query, userID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_related_users")
	}

	members, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (Member, error) {
		var member Member
		err := row.Scan(&member.ID, &member.Username, &member.FullName)
		return member, err
	})
	return members, dberr.Wrap(err, "scan_related_users")
}

// RelatedUserIDs lists the related user IDs of userID.
func (repository *PostgresRepository) RelatedUserIDs(context context.Context, userID string) ([]string, error) {
	related := schema.RelatedUser
	query := fmt.Sprintf(`SELECT %s::text FROM %s WHERE %s = $1`, related.RelatedUserID, related.Table, related.UserID)

	rows, err := repository.db.Query(context, query, userID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_related_user_ids")
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[string])
	return ids, dberr.Wrap(err, "scan_related_user_ids")
}

/*
ReplaceRelated swaps the related set of userID.

Description: The account row is locked first so two admins editing the same
profile apply their sets one after the other.
*/
func (repository *PostgresRepository) ReplaceRelated(context context.Context, userID string, relatedIDs []string) error {
	account, related := schema.UserAccount, schema.RelatedUser

	return pgx.BeginFunc(context, repository.db, func(tx pgx.Tx) error {
		lock := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 FOR UPDATE`, account.ID, account.Table, account.ID)
		var locked string
		if err := tx.QueryRow(context, lock, userID).Scan(&locked); err != nil {
			return dberr.NotFound(err, "lock_user", "User")
		}

		reset := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, related.Table, related.UserID)
		if _, err := tx.Exec(context, reset, userID); err != nil {
			return dberr.Wrap(err, "clear_related_users")
		}

		if len(relatedIDs) == 0 {
			return nil
		}

		insert := fmt.Sprintf(`INSERT INTO %s (%s, %s) SELECT $1, unnest($2::uuid[])`,
			related.Table, related.UserID, related.RelatedUserID)
		if _, err := tx.Exec(context, insert, userID, relatedIDs); err != nil {
			return dberr.Wrap(err, "insert_related_users")
		}
		return nil
	})
}
