// Copyright (c) 2026 Gumruk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package officer

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
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

// selectFrom returns the joined SELECT shared by List and Get.
func selectFrom() string {
	officer := schema.CustomsOfficer
	return fmt.Sprintf(`
		SELECT %s, COALESCE(p.%s, ''), COALESCE(m.%s, '')
		FROM %s o
		LEFT JOIN %s p ON p.%s = o.%s
		LEFT JOIN %s m ON m.%s = o.%s
	`,
		schema.Prefixed("o", officer.Columns()...), schema.Position.Name, schema.MilitaryName.Name,
		officer.Table,
		schema.Position.Table, schema.Position.ID, officer.PositionID,
		schema.MilitaryName.Table, schema.MilitaryName.ID, officer.MilitaryNameID,
	)
}

/*
List retrieves a page of officers.

Description: q matches name, midname, surname, rank and position name.
*/
func (repository *PostgresRepository) List(context context.Context, filter Filter, limit, offset int) ([]*CustomsOfficer, int, error) {
	officer := schema.CustomsOfficer

	where := ` WHERE TRUE`
	args := []any{}
	if filter.Query != "" {
		where += fmt.Sprintf(` AND (o.%s ILIKE $1 OR o.%s ILIKE $1 OR o.%s ILIKE $1 OR m.%s ILIKE $1 OR p.%s ILIKE $1)`,
			officer.Name, officer.Midname, officer.Surname, schema.MilitaryName.Name, schema.Position.Name)
		args = append(args, "%"+filter.Query+"%")
	}

	countQuery := fmt.Sprintf(`
		SELECT count(*)
		FROM %s o
		LEFT JOIN %s p ON p.%s = o.%s
		LEFT JOIN %s m ON m.%s = o.%s
	`, officer.Table,
		schema.Position.Table, schema.Position.ID, officer.PositionID,
		schema.MilitaryName.Table, schema.MilitaryName.ID, officer.MilitaryNameID,
	) + where

	var total int
	if err := repository.db.QueryRow(context, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_officers")
	}

	query := selectFrom() + where + fmt.Sprintf(` ORDER BY o.%s ASC, o.%s ASC, o.%s ASC LIMIT $%s OFFSET $%s`,
		officer.Surname, officer.Name, officer.ID, itos(len(args)+1), itos(len(args)+2))
	args = append(args, limit, offset)

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_officers")
	}
	defer rows.Close()

	officers := make([]*CustomsOfficer, 0, limit)
	for rows.Next() {
		item, err := scanOfficer(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_officer")
		}
		officers = append(officers, item)
	}

	return officers, total, dberr.Wrap(rows.Err(), "list_officers")
}

// Get fetches an officer by ID.
func (repository *PostgresRepository) Get(context context.Context, id int) (*CustomsOfficer, error) {
	query := selectFrom() + fmt.Sprintf(` WHERE o.%s = $1`, schema.CustomsOfficer.ID)

	item, err := scanOfficer(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.NotFound(err, "get_officer", "Customs officer")
	}
	return item, nil
}

// Create inserts an officer.
func (repository *PostgresRepository) Create(context context.Context, officer *CustomsOfficer) error {
	table := schema.CustomsOfficer
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING %s, %s, %s
	`, table.Table, table.Name, table.Surname, table.Midname, table.PositionID, table.MilitaryNameID,
		table.ID, table.CreatedAt, table.UpdatedAt)

	err := repository.db.QueryRow(context, query,
		officer.Name, officer.Surname, officer.Midname, officer.PositionID, officer.MilitaryNameID,
	).Scan(&officer.ID, &officer.CreatedAt, &officer.UpdatedAt)
	return dberr.Wrap(err, "create_officer")
}

// Update overwrites every editable column.
func (repository *PostgresRepository) Update(context context.Context, officer *CustomsOfficer) error {
	table := schema.CustomsOfficer
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = NOW()
		WHERE %s = $1
		RETURNING %s, %s
	`, table.Table, table.Name, table.Surname, table.Midname, table.PositionID, table.MilitaryNameID, table.UpdatedAt,
		table.ID, table.CreatedAt, table.UpdatedAt)

	err := repository.db.QueryRow(context, query,
		officer.ID, officer.Name, officer.Surname, officer.Midname, officer.PositionID, officer.MilitaryNameID,
	).Scan(&officer.CreatedAt, &officer.UpdatedAt)
	if err != nil {
		return dberr.NotFound(err, "update_officer", "Customs officer")
	}
	return nil
}

// Delete removes an officer.
func (repository *PostgresRepository) Delete(context context.Context, id int) error {
	table := schema.CustomsOfficer
	command, err := repository.db.Exec(context, fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, table.Table, table.ID), id)
	if err != nil {
		if dberr.IsForeignKeyViolation(err) {
			return apperr.Unprocessable("Customs officer is still named on reports").WithCause(err)
		}
		return dberr.Wrap(err, "delete_officer")
	}
	if command.RowsAffected() == 0 {
		return apperr.NotFound("Customs officer")
	}
	return nil
}

func scanOfficer(row pgx.Row) (*CustomsOfficer, error) {
	item := &CustomsOfficer{}
	err := row.Scan(
		&item.ID, &item.Name, &item.Surname, &item.Midname, &item.PositionID, &item.MilitaryNameID,
		&item.CreatedAt, &item.UpdatedAt, &item.PositionName, &item.MilitaryName,
	)
	return item, err
}

func itos(i int) string {
	return strconv.Itoa(i)
}
