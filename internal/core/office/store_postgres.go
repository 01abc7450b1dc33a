// Copyright (c) 2026 Gumruk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package office

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

// # Offices

// ListOffices retrieves a page of offices.
func (repository *PostgresRepository) ListOffices(context context.Context, filter Filter, limit, offset int) ([]*CustomsOffice, int, error) {
	table := schema.CustomsOffice

	where := ` WHERE TRUE`
	args := []any{}
	if filter.Query != "" {
		where += fmt.Sprintf(` AND (%s ILIKE $1 OR %s ILIKE $1)`, table.Name, table.Code)
		args = append(args, "%"+filter.Query+"%")
	}

	var total int
	if err := repository.db.QueryRow(context, `SELECT count(*) FROM `+table.Table+where, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_offices")
	}

	query := fmt.Sprintf(`SELECT %s FROM %s`, schema.List(table.Columns()...), table.Table) + where +
		fmt.Sprintf(` ORDER BY %s ASC LIMIT $%s OFFSET $%s`, table.Name, itos(len(args)+1), itos(len(args)+2))
	args = append(args, limit, offset)

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_offices")
	}
	defer rows.Close()

	offices := make([]*CustomsOffice, 0, limit)
	for rows.Next() {
		office, err := scanOffice(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_office")
		}
		offices = append(offices, office)
	}

	return offices, total, dberr.Wrap(rows.Err(), "list_offices")
}

// GetOffice fetches an office by ID.
func (repository *PostgresRepository) GetOffice(context context.Context, id int) (*CustomsOffice, error) {
	table := schema.CustomsOffice
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, schema.List(table.Columns()...), table.Table, table.ID)

	office, err := scanOffice(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.NotFound(err, "get_office", "Customs office")
	}
	return office, nil
}

// CreateOffice inserts an office.
func (repository *PostgresRepository) CreateOffice(context context.Context, office *CustomsOffice) error {
	table := schema.CustomsOffice
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s)
		VALUES ($1, $2)
		RETURNING %s, %s, %s
	`, table.Table, table.Name, table.Code, table.ID, table.CreatedAt, table.UpdatedAt)

	err := repository.db.QueryRow(context, query, office.Name, office.Code).Scan(&office.ID, &office.CreatedAt, &office.UpdatedAt)
	return dberr.Wrap(err, "create_office")
}

// UpdateOffice overwrites name and code.
func (repository *PostgresRepository) UpdateOffice(context context.Context, office *CustomsOffice) error {
	table := schema.CustomsOffice
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = NOW()
		WHERE %s = $1
		RETURNING %s, %s
	`, table.Table, table.Name, table.Code, table.UpdatedAt, table.ID, table.CreatedAt, table.UpdatedAt)

	err := repository.db.QueryRow(context, query, office.ID, office.Name, office.Code).Scan(&office.CreatedAt, &office.UpdatedAt)
	if err != nil {
		return dberr.NotFound(err, "update_office", "Customs office")
	}
	return nil
}

// DeleteOffice removes an office; reports pointing at it block the delete.
func (repository *PostgresRepository) DeleteOffice(context context.Context, id int) error {
	return repository.delete(context, schema.CustomsOffice.Table, schema.CustomsOffice.ID, id, "Customs office")
}

// # Points

// ListPoints retrieves a page of points, optionally restricted to one office.
func (repository *PostgresRepository) ListPoints(context context.Context, filter Filter, limit, offset int) ([]*CustomsPoint, int, error) {
	table := schema.CustomsPoint

	where := ` WHERE TRUE`
	args := []any{}
	if filter.OfficeID != nil {
		args = append(args, *filter.OfficeID)
		where += fmt.Sprintf(` AND %s = $%s`, table.OfficeID, itos(len(args)))
	}
	if filter.Query != "" {
		args = append(args, "%"+filter.Query+"%")
		where += fmt.Sprintf(` AND (%s ILIKE $%s OR %s ILIKE $%s)`, table.Name, itos(len(args)), table.Code, itos(len(args)))
	}

	var total int
	if err := repository.db.QueryRow(context, `SELECT count(*) FROM `+table.Table+where, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_points")
	}

	query := fmt.Sprintf(`SELECT %s FROM %s`, schema.List(table.Columns()...), table.Table) + where +
		fmt.Sprintf(` ORDER BY %s ASC LIMIT $%s OFFSET $%s`, table.Name, itos(len(args)+1), itos(len(args)+2))
	args = append(args, limit, offset)

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_points")
	}
	defer rows.Close()

	points := make([]*CustomsPoint, 0, limit)
	for rows.Next() {
		point, err := scanPoint(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_point")
		}
		points = append(points, point)
	}

	return points, total, dberr.Wrap(rows.Err(), "list_points")
}

/*
PointOptions lists the points of one office for the report form's dropdown.

Description: Unpaginated; an office operates a handful of checkpoints.
*/
func (repository *PostgresRepository) PointOptions(context context.Context, officeID int, query string) ([]PointOption, error) {
	table := schema.CustomsPoint

	statement := fmt.Sprintf(`SELECT %s, %s FROM %s WHERE %s = $1`, table.ID, table.Name, table.Table, table.OfficeID)
	args := []any{officeID}
	if query != "" {
		statement += fmt.Sprintf(` AND %s ILIKE $2`, table.Name)
		args = append(args, "%"+query+"%")
	}
	statement += fmt.Sprintf(` ORDER BY %s ASC`, table.Name)

	rows, err := repository.db.Query(context, statement, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "list_point_options")
	}

	options, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (PointOption, error) {
		var option PointOption
		err := row.Scan(&option.ID, &option.Name)
		return option, err
	})
	return options, dberr.Wrap(err, "list_point_options")
}

// GetPoint fetches a point by ID.
func (repository *PostgresRepository) GetPoint(context context.Context, id int) (*CustomsPoint, error) {
	table := schema.CustomsPoint
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, schema.List(table.Columns()...), table.Table, table.ID)

	point, err := scanPoint(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.NotFound(err, "get_point", "Customs point")
	}
	return point, nil
}

// CreatePoint inserts a point.
func (repository *PostgresRepository) CreatePoint(context context.Context, point *CustomsPoint) error {
	table := schema.CustomsPoint
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, $2, $3)
		RETURNING %s, %s, %s
	`, table.Table, table.OfficeID, table.Name, table.Code, table.ID, table.CreatedAt, table.UpdatedAt)

	err := repository.db.QueryRow(context, query, point.OfficeID, point.Name, point.Code).Scan(&point.ID, &point.CreatedAt, &point.UpdatedAt)
	return dberr.Wrap(err, "create_point")
}

// UpdatePoint overwrites office, name and code.
func (repository *PostgresRepository) UpdatePoint(context context.Context, point *CustomsPoint) error {
	table := schema.CustomsPoint
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = NOW()
		WHERE %s = $1
		RETURNING %s, %s
	`, table.Table, table.OfficeID, table.Name, table.Code, table.UpdatedAt, table.ID, table.CreatedAt, table.UpdatedAt)

	err := repository.db.QueryRow(context, query, point.ID, point.OfficeID, point.Name, point.Code).Scan(&point.CreatedAt, &point.UpdatedAt)
	if err != nil {
		return dberr.NotFound(err, "update_point", "Customs point")
	}
	return nil
}

// DeletePoint removes a point.
func (repository *PostgresRepository) DeletePoint(context context.Context, id int) error {
	return repository.delete(context, schema.CustomsPoint.Table, schema.CustomsPoint.ID, id, "Customs point")
}

func (repository *PostgresRepository) delete(context context.Context, table, idColumn string, id int, resource string) error {
	command, err := repository.db.Exec(context, fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, table, idColumn), id)
	if err != nil {
		if dberr.IsForeignKeyViolation(err) {
			return apperr.Unprocessable(resource + " is still used by reports").WithCause(err)
		}
		return dberr.Wrap(err, "delete_"+table)
	}
	if command.RowsAffected() == 0 {
		return apperr.NotFound(resource)
	}
	return nil
}

func scanOffice(row pgx.Row) (*CustomsOffice, error) {
	office := &CustomsOffice{}
	err := row.Scan(&office.ID, &office.Name, &office.Code, &office.CreatedAt, &office.UpdatedAt)
	return office, err
}

func scanPoint(row pgx.Row) (*CustomsPoint, error) {
	point := &CustomsPoint{}
	err := row.Scan(&point.ID, &point.OfficeID, &point.Name, &point.Code, &point.CreatedAt, &point.UpdatedAt)
	return point, err
}

func itos(i int) string {
	return strconv.Itoa(i)
}
