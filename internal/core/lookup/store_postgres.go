// Copyright (c) 2026 Gumruk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package lookup

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/gumruk/internal/platform/apperr"
	"github.com/taibuivan/gumruk/internal/platform/database/schema"
	"github.com/taibuivan/gumruk/internal/platform/dberr"
)

// PostgresRepository implements [Repository] using a pgxpool.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository returns a fully wired postgres implementation.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

/*
List retrieves a page of one lookup table.

Description: The table name comes from the fixed [Spec] registry, never from
user input, so it is safe to interpolate.

Parameters:
  - context: context.Context
  - spec: Spec
  - filter: Filter
  - limit, offset: int

Returns:
  - []*Lookup: Page of rows
  - int: Total matching count
  - error: Database execution errors
*/
func (repository *PostgresRepository) List(context context.Context, spec Spec, filter Filter, limit, offset int) ([]*Lookup, int, error) {
	table := schema.Lookup(spec.Table)

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE TRUE`, schema.List(table.Columns()...), table.Table)
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s WHERE TRUE`, table.Table)

	args := []any{}
	if filter.Query != "" {
		condition := fmt.Sprintf(` AND %s ILIKE $1`, table.Name)
		query += condition
		countQuery += condition
		args = append(args, "%"+filter.Query+"%")
	}

	var total int
	if err := repository.db.QueryRow(context, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_"+spec.Table)
	}

	query += fmt.Sprintf(` ORDER BY %s ASC, %s ASC LIMIT $%s OFFSET $%s`, table.Name, table.ID, itos(len(args)+1), itos(len(args)+2))
	args = append(args, limit, offset)

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_"+spec.Table)
	}
	defer rows.Close()

	items := make([]*Lookup, 0, limit)
	for rows.Next() {
		item := &Lookup{}
		if err := rows.Scan(&item.ID, &item.Name, &item.Description, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_"+spec.Table)
		}
		items = append(items, item)
	}

	return items, total, dberr.Wrap(rows.Err(), "list_"+spec.Table)
}

/*
Get fetches a single row by primary key.

Parameters:
  - context: context.Context
  - spec: Spec
  - id: int

Returns:
  - *Lookup: Hydrated row
  - error: NOT_FOUND or execution errors
*/
func (repository *PostgresRepository) Get(context context.Context, spec Spec, id int) (*Lookup, error) {
	table := schema.Lookup(spec.Table)
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, schema.List(table.Columns()...), table.Table, table.ID)

	item := &Lookup{}
	err := repository.db.QueryRow(context, query, id).Scan(&item.ID, &item.Name, &item.Description, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return nil, dberr.NotFound(err, "get_"+spec.Table, spec.Label)
	}
	return item, nil
}

/*
Create inserts a row and returns the generated key and audit timestamps.

Parameters:
  - context: context.Context
  - spec: Spec
  - item: *Lookup

Returns:
  - error: CONFLICT on duplicate name, or execution errors
*/
func (repository *PostgresRepository) Create(context context.Context, spec Spec, item *Lookup) error {
	table := schema.Lookup(spec.Table)
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s)
		VALUES ($1, $2)
		RETURNING %s, %s, %s
	`, table.Table, table.Name, table.Description, table.ID, table.CreatedAt, table.UpdatedAt)

	err := repository.db.QueryRow(context, query, item.Name, item.Description).Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
	return dberr.Wrap(err, "create_"+spec.Table)
}

/*
Update overwrites name and description and renews updated_at.

Parameters:
  - context: context.Context
  - spec: Spec
  - item: *Lookup (with ID)

Returns:
  - error: NOT_FOUND, CONFLICT or execution errors
*/
func (repository *PostgresRepository) Update(context context.Context, spec Spec, item *Lookup) error {
	table := schema.Lookup(spec.Table)
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = NOW()
		WHERE %s = $1
		RETURNING %s, %s
	`, table.Table, table.Name, table.Description, table.UpdatedAt, table.ID, table.CreatedAt, table.UpdatedAt)

	err := repository.db.QueryRow(context, query, item.ID, item.Name, item.Description).Scan(&item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return dberr.NotFound(err, "update_"+spec.Table, spec.Label)
	}
	return nil
}

/*
Delete removes a row permanently.

Parameters:
  - context: context.Context
  - spec: Spec
  - id: int

Returns:
  - error: NOT_FOUND, UNPROCESSABLE when still referenced, or execution errors
*/
func (repository *PostgresRepository) Delete(context context.Context, spec Spec, id int) error {
	table := schema.Lookup(spec.Table)
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, table.Table, table.ID)

	command, err := repository.db.Exec(context, query, id)
	if err != nil {
		if dberr.IsForeignKeyViolation(err) {
			return apperr.Unprocessable(spec.Label + " is still used by other records").WithCause(err)
		}
		return dberr.Wrap(err, "delete_"+spec.Table)
	}

	if command.RowsAffected() == 0 {
		return apperr.NotFound(spec.Label)
	}
	return nil
}

func itos(i int) string {
	return strconv.Itoa(i)
}
