// Copyright (c) 2026 Gumruk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package geo

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

// # Countries

// ListCountries retrieves a page of countries, matching q against name or code.
func (repository *PostgresRepository) ListCountries(context context.Context, filter Filter, limit, offset int) ([]*Country, int, error) {
	table := schema.Country

	where := ` WHERE TRUE`
	args := []any{}
	if filter.Query != "" {
		where += fmt.Sprintf(` AND (%s ILIKE $1 OR %s ILIKE $1)`, table.Name, table.Code)
		args = append(args, "%"+filter.Query+"%")
	}

	var total int
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s`, table.Table) + where
	if err := repository.db.QueryRow(context, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_countries")
	}

	query := fmt.Sprintf(`SELECT %s FROM %s`, schema.List(table.Columns()...), table.Table) + where +
		fmt.Sprintf(` ORDER BY %s ASC LIMIT $%s OFFSET $%s`, table.Name, itos(len(args)+1), itos(len(args)+2))
	args = append(args, limit, offset)

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_countries")
	}
	defer rows.Close()

	countries := make([]*Country, 0, limit)
	for rows.Next() {
		country := &Country{}
		if err := rows.Scan(&country.ID, &country.Name, &country.Code, &country.CreatedAt, &country.UpdatedAt); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_country")
		}
		countries = append(countries, country)
	}

	return countries, total, dberr.Wrap(rows.Err(), "list_countries")
}

// GetCountry fetches a country by ID.
func (repository *PostgresRepository) GetCountry(context context.Context, id int) (*Country, error) {
	table := schema.Country
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, schema.List(table.Columns()...), table.Table, table.ID)

	country := &Country{}
	err := repository.db.QueryRow(context, query, id).Scan(&country.ID, &country.Name, &country.Code, &country.CreatedAt, &country.UpdatedAt)
	if err != nil {
		return nil, dberr.NotFound(err, "get_country", "Country")
	}
	return country, nil
}

// CreateCountry inserts a country.
func (repository *PostgresRepository) CreateCountry(context context.Context, country *Country) error {
	table := schema.Country
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s)
		VALUES ($1, $2)
		RETURNING %s, %s, %s
	`, table.Table, table.Name, table.Code, table.ID, table.CreatedAt, table.UpdatedAt)

	err := repository.db.QueryRow(context, query, country.Name, country.Code).Scan(&country.ID, &country.CreatedAt, &country.UpdatedAt)
	return dberr.Wrap(err, "create_country")
}

// UpdateCountry overwrites name and code.
func (repository *PostgresRepository) UpdateCountry(context context.Context, country *Country) error {
	table := schema.Country
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = NOW()
		WHERE %s = $1
		RETURNING %s, %s
	`, table.Table, table.Name, table.Code, table.UpdatedAt, table.ID, table.CreatedAt, table.UpdatedAt)

	err := repository.db.QueryRow(context, query, country.ID, country.Name, country.Code).Scan(&country.CreatedAt, &country.UpdatedAt)
	if err != nil {
		return dberr.NotFound(err, "update_country", "Country")
	}
	return nil
}

// DeleteCountry removes a country; cities cascade, referencing reports block it.
func (repository *PostgresRepository) DeleteCountry(context context.Context, id int) error {
	return repository.delete(context, schema.Country.Table, schema.Country.ID, id, "Country")
}

// # Cities

// ListCities retrieves the cities of one country.
func (repository *PostgresRepository) ListCities(context context.Context, countryID int, filter Filter, limit, offset int) ([]*City, int, error) {
	table := schema.City

	where := fmt.Sprintf(` WHERE %s = $1`, table.CountryID)
	args := []any{countryID}
	if filter.Query != "" {
		where += fmt.Sprintf(` AND %s ILIKE $2`, table.Name)
		args = append(args, "%"+filter.Query+"%")
	}

	var total int
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s`, table.Table) + where
	if err := repository.db.QueryRow(context, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_cities")
	}

	query := fmt.Sprintf(`SELECT %s FROM %s`, schema.List(table.Columns()...), table.Table) + where +
		fmt.Sprintf(` ORDER BY %s ASC LIMIT $%s OFFSET $%s`, table.Name, itos(len(args)+1), itos(len(args)+2))
	args = append(args, limit, offset)

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_cities")
	}
	defer rows.Close()

	cities := make([]*City, 0, limit)
	for rows.Next() {
		city := &City{}
		if err := rows.Scan(&city.ID, &city.CountryID, &city.Name, &city.CreatedAt, &city.UpdatedAt); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_city")
		}
		cities = append(cities, city)
	}

	return cities, total, dberr.Wrap(rows.Err(), "list_cities")
}

// GetCity fetches a city by ID.
func (repository *PostgresRepository) GetCity(context context.Context, id int) (*City, error) {
	table := schema.City
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, schema.List(table.Columns()...), table.Table, table.ID)

	city := &City{}
	err := repository.db.QueryRow(context, query, id).Scan(&city.ID, &city.CountryID, &city.Name, &city.CreatedAt, &city.UpdatedAt)
	if err != nil {
		return nil, dberr.NotFound(err, "get_city", "City")
	}
	return city, nil
}

// CreateCity inserts a city.
func (repository *PostgresRepository) CreateCity(context context.Context, city *City) error {
	table := schema.City
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s)
		VALUES ($1, $2)
		RETURNING %s, %s, %s
	`, table.Table, table.CountryID, table.Name, table.ID, table.CreatedAt, table.UpdatedAt)

	err := repository.db.QueryRow(context, query, city.CountryID, city.Name).Scan(&city.ID, &city.CreatedAt, &city.UpdatedAt)
	return dberr.Wrap(err, "create_city")
}

// UpdateCity overwrites name and country.
func (repository *PostgresRepository) UpdateCity(context context.Context, city *City) error {
	table := schema.City
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = NOW()
		WHERE %s = $1
		RETURNING %s, %s
	`, table.Table, table.CountryID, table.Name, table.UpdatedAt, table.ID, table.CreatedAt, table.UpdatedAt)

	err := repository.db.QueryRow(context, query, city.ID, city.CountryID, city.Name).Scan(&city.CreatedAt, &city.UpdatedAt)
	if err != nil {
		return dberr.NotFound(err, "update_city", "City")
	}
	return nil
}

// DeleteCity removes a city.
func (repository *PostgresRepository) DeleteCity(context context.Context, id int) error {
	return repository.delete(context, schema.City.Table, schema.City.ID, id, "City")
}

func (repository *PostgresRepository) delete(context context.Context, table, idColumn string, id int, resource string) error {
	command, err := repository.db.Exec(context, fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, table, idColumn), id)
	if err != nil {
		if dberr.IsForeignKeyViolation(err) {
			return apperr.Unprocessable(resource + " is still used by other records").WithCause(err)
		}
		return dberr.Wrap(err, "delete_"+table)
	}
	if command.RowsAffected() == 0 {
		return apperr.NotFound(resource)
	}
	return nil
}

func itos(i int) string {
	return strconv.Itoa(i)
}
