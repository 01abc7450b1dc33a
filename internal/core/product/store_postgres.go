// Copyright (c) 2026 Gumruk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package product

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

func fromClause() string {
	return fmt.Sprintf(` FROM %s p LEFT JOIN %s c ON c.%s = p.%s`,
		schema.Product.Table, schema.ProductCategory.Table, schema.ProductCategory.ID, schema.Product.CategoryID)
}

// List retrieves a page of products.
func (repository *PostgresRepository) List(context context.Context, filter Filter, limit, offset int) ([]*Product, int, error) {
	table := schema.Product

	where := ` WHERE TRUE`
	args := []any{}
	if filter.Query != "" {
		args = append(args, "%"+filter.Query+"%")
		where += fmt.Sprintf(` AND p.%s ILIKE $%s`, table.Name, itos(len(args)))
	}
	if filter.CategoryID != nil {
		args = append(args, *filter.CategoryID)
		where += fmt.Sprintf(` AND p.%s = $%s`, table.CategoryID, itos(len(args)))
	}

	var total int
	if err := repository.db.QueryRow(context, `SELECT count(*)`+fromClause()+where, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_products")
	}

	query := fmt.Sprintf(`SELECT %s, COALESCE(c.%s, '')`, schema.Prefixed("p", table.Columns()...), schema.ProductCategory.Name) +
		fromClause() + where +
		fmt.Sprintf(` ORDER BY p.%s ASC LIMIT $%s OFFSET $%s`, table.Name, itos(len(args)+1), itos(len(args)+2))
	args = append(args, limit, offset)

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_products")
	}
	defer rows.Close()

	products := make([]*Product, 0, limit)
	for rows.Next() {
		item, err := scanProduct(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_product")
		}
		products = append(products, item)
	}

	return products, total, dberr.Wrap(rows.Err(), "list_products")
}

// Get fetches a product by ID.
func (repository *PostgresRepository) Get(context context.Context, id int) (*Product, error) {
	table := schema.Product
	query := fmt.Sprintf(`SELECT %s, COALESCE(c.%s, '')`, schema.Prefixed("p", table.Columns()...), schema.ProductCategory.Name) +
		fromClause() + fmt.Sprintf(` WHERE p.%s = $1`, table.ID)

	item, err := scanProduct(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.NotFound(err, "get_product", "Product")
	}
	return item, nil
}

// Create inserts a product.
func (repository *PostgresRepository) Create(context context.Context, product *Product) error {
	table := schema.Product
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s)
		VALUES ($1, $2)
		RETURNING %s, %s, %s
	`, table.Table, table.Name, table.CategoryID, table.ID, table.CreatedAt, table.UpdatedAt)

	err := repository.db.QueryRow(context, query, product.Name, product.CategoryID).Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt)
	return dberr.Wrap(err, "create_product")
}

// Update overwrites name and category.
func (repository *PostgresRepository) Update(context context.Context, product *Product) error {
	table := schema.Product
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = NOW()
		WHERE %s = $1
		RETURNING %s, %s
	`, table.Table, table.Name, table.CategoryID, table.UpdatedAt, table.ID, table.CreatedAt, table.UpdatedAt)

	err := repository.db.QueryRow(context, query, product.ID, product.Name, product.CategoryID).Scan(&product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		return dberr.NotFound(err, "update_product", "Product")
	}
	return nil
}

// Delete removes a product.
func (repository *PostgresRepository) Delete(context context.Context, id int) error {
	table := schema.Product
	command, err := repository.db.Exec(context, fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, table.Table, table.ID), id)
	if err != nil {
		if dberr.IsForeignKeyViolation(err) {
			return apperr.Unprocessable("Product is still used by stored goods").WithCause(err)
		}
		return dberr.Wrap(err, "delete_product")
	}
	if command.RowsAffected() == 0 {
		return apperr.NotFound("Product")
	}
	return nil
}

func scanProduct(row pgx.Row) (*Product, error) {
	item := &Product{}
	err := row.Scan(&item.ID, &item.Name, &item.CategoryID, &item.CreatedAt, &item.UpdatedAt, &item.CategoryName)
	return item, err
}

func itos(i int) string {
	return strconv.Itoa(i)
}
