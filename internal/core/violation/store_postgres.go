// Copyright (c) 2026 Gumruk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package violation

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/gumruk/internal/platform/apperr"
	"github.com/taibuivan/gumruk/internal/platform/database/schema"
	"github.com/taibuivan/gumruk/internal/platform/dberr"
	"github.com/taibuivan/gumruk/pkg/pointer"
)

// PostgresRepository implements [Repository] using a pgxpool.
//
// Blank text fields are written as NULL: the company and passport columns are
// unique, and several people without a company must not collide on ''.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository returns a fully wired postgres implementation.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func fromClause() string {
	return fmt.Sprintf(` FROM %s v LEFT JOIN %s c ON c.%s = v.%s`,
		schema.Violation.Table, schema.Country.Table, schema.Country.ID, schema.Violation.NationalityID)
}

func selectClause() string {
	return fmt.Sprintf(`SELECT %s, COALESCE(c.%s, '')`, schema.Prefixed("v", schema.Violation.Columns()...), schema.Country.Name)
}

/*
List retrieves a page of violations.

Description: q matches company name, boss, person names and passport number.
*/
func (repository *PostgresRepository) List(context context.Context, filter Filter, limit, offset int) ([]*Violation, int, error) {
	table := schema.Violation

	where := ` WHERE TRUE`
	args := []any{}
	if filter.Kind != nil {
		args = append(args, string(*filter.Kind))
		where += fmt.Sprintf(` AND v.%s = $%s`, table.Kind, itos(len(args)))
	}
	if filter.Query != "" {
		args = append(args, "%"+filter.Query+"%")
		placeholder := "$" + itos(len(args))
		where += fmt.Sprintf(` AND (v.%s ILIKE %s OR v.%s ILIKE %s OR v.%s ILIKE %s OR v.%s ILIKE %s OR v.%s ILIKE %s OR v.%s ILIKE %s)`,
			table.CompanyName, placeholder,
			table.CompanyBossFullName, placeholder,
			table.ViolatorName, placeholder,
			table.ViolatorSurname, placeholder,
			table.FatherName, placeholder,
			table.PassportNumber, placeholder,
		)
	}

	var total int
	if err := repository.db.QueryRow(context, `SELECT count(*)`+fromClause()+where, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_violations")
	}

	query := selectClause() + fromClause() + where +
		fmt.Sprintf(` ORDER BY v.%s DESC, v.%s DESC LIMIT $%s OFFSET $%s`, table.CreatedAt, table.ID, itos(len(args)+1), itos(len(args)+2))
	args = append(args, limit, offset)

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_violations")
	}
	defer rows.Close()

	violations := make([]*Violation, 0, limit)
	for rows.Next() {
		item, err := scanViolation(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_violation")
		}
		violations = append(violations, item)
	}

	return violations, total, dberr.Wrap(rows.Err(), "list_violations")
}

// Get fetches a violation by ID.
func (repository *PostgresRepository) Get(context context.Context, id string) (*Violation, error) {
	query := selectClause() + fromClause() + fmt.Sprintf(` WHERE v.%s = $1`, schema.Violation.ID)

	item, err := scanViolation(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.NotFound(err, "get_violation", "Violation")
	}
	return item, nil
}

// FindByPassport fetches the violation holding a passport number.
func (repository *PostgresRepository) FindByPassport(context context.Context, passportNumber string) (*Violation, error) {
	query := selectClause() + fromClause() + fmt.Sprintf(` WHERE v.%s = $1`, schema.Violation.PassportNumber)

	item, err := scanViolation(repository.db.QueryRow(context, query, passportNumber))
	if err != nil {
		return nil, dberr.NotFound(err, "find_violation_by_passport", "Violator with this passport number")
	}
	return item, nil
}

// Create inserts a violation.
func (repository *PostgresRepository) Create(context context.Context, violation *Violation) error {
	table := schema.Violation
	columns := writableColumns()

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING %s, %s
	`, table.Table, table.ID, schema.List(columns...), table.CreatedAt, table.UpdatedAt)

	args := append([]any{violation.ID}, writableValues(violation)...)
	err := repository.db.QueryRow(context, query, args...).Scan(&violation.CreatedAt, &violation.UpdatedAt)
	return dberr.Wrap(err, "create_violation")
}

// Update overwrites both attribute groups and the kind.
func (repository *PostgresRepository) Update(context context.Context, violation *Violation) error {
	table := schema.Violation
	columns := writableColumns()

	assignments := ""
	for i, column := range columns {
		assignments += fmt.Sprintf("%s = $%s, ", column, itos(i+2))
	}

	query := fmt.Sprintf(`
		UPDATE %s
		SET %s%s = NOW()
		WHERE %s = $1
		RETURNING %s, %s
	`, table.Table, assignments, table.UpdatedAt, table.ID, table.CreatedAt, table.UpdatedAt)

	args := append([]any{violation.ID}, writableValues(violation)...)
	err := repository.db.QueryRow(context, query, args...).Scan(&violation.CreatedAt, &violation.UpdatedAt)
	if err != nil {
		return dberr.NotFound(err, "update_violation", "Violation")
	}
	return nil
}

// Delete removes a violation.
func (repository *PostgresRepository) Delete(context context.Context, id string) error {
	table := schema.Violation
	command, err := repository.db.Exec(context, fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, table.Table, table.ID), id)
	if err != nil {
		if dberr.IsForeignKeyViolation(err) {
			return apperr.Unprocessable("Violation is still referenced by reports").WithCause(err)
		}
		return dberr.Wrap(err, "delete_violation")
	}
	if command.RowsAffected() == 0 {
		return apperr.NotFound("Violation")
	}
	return nil
}

// writableColumns lists the editable columns in the order of writableValues.
func writableColumns() []string {
	table := schema.Violation
	return []string{
		table.Kind,
		table.CompanyName, table.CompanyBossFullName, table.Address, table.Phone,
		table.ViolatorName, table.ViolatorSurname, table.FatherName, table.DateOfBirth, table.PlaceOfBirth,
		table.PassportNumber, table.PassportIssueDate, table.NationalityID, table.ViolatorAddress,
	}
}

func writableValues(violation *Violation) []any {
	return []any{
		string(violation.Kind),
		pointer.NonEmpty(violation.CompanyName),
		pointer.NonEmpty(violation.CompanyBossFullName),
		pointer.NonEmpty(violation.Address),
		pointer.NonEmpty(violation.Phone),
		pointer.NonEmpty(violation.ViolatorName),
		pointer.NonEmpty(violation.ViolatorSurname),
		pointer.NonEmpty(violation.FatherName),
		violation.DateOfBirth,
		pointer.NonEmpty(violation.PlaceOfBirth),
		pointer.NonEmpty(violation.PassportNumber),
		violation.PassportIssueDate,
		violation.NationalityID,
		pointer.NonEmpty(violation.ViolatorAddress),
	}
}

func scanViolation(row pgx.Row) (*Violation, error) {
	var (
		item = &Violation{}
		kind string

		companyName, companyBoss, address, phone                *string
		violatorName, violatorSurname, fatherName, placeOfBirth *string
		passportNumber, violatorAddress                         *string
	)

	err := row.Scan(
		&item.ID, &kind,
		&companyName, &companyBoss, &address, &phone,
		&violatorName, &violatorSurname, &fatherName, &item.DateOfBirth, &placeOfBirth,
		&passportNumber, &item.PassportIssueDate, &item.NationalityID, &violatorAddress,
		&item.CreatedAt, &item.UpdatedAt, &item.NationalityName,
	)
	if err != nil {
		return nil, err
	}

	item.Kind = Kind(kind)
	item.CompanyName = pointer.Val(companyName)
	item.CompanyBossFullName = pointer.Val(companyBoss)
	item.Address = pointer.Val(address)
	item.Phone = pointer.Val(phone)
	item.ViolatorName = pointer.Val(violatorName)
	item.ViolatorSurname = pointer.Val(violatorSurname)
	item.FatherName = pointer.Val(fatherName)
	item.PlaceOfBirth = pointer.Val(placeOfBirth)
	item.PassportNumber = pointer.Val(passportNumber)
	item.ViolatorAddress = pointer.Val(violatorAddress)
	return item, nil
}

func itos(i int) string {
	return strconv.Itoa(i)
}
