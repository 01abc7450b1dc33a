// Copyright (c) 2026 Gumruk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package goods

import (
	"context"
	"fmt"

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

func selectGoods() string {
	good, product, unit, reason := schema.StoredGood, schema.Product, schema.Unit, schema.ViolationReason
	return fmt.Sprintf(`
		SELECT g.%s, g.%s, g.%s, g.%s, g.%s, g.%s, g.%s, g.%s, g.%s,
			p.%s, u.%s, COALESCE(rs.%s, '')
		FROM %s g
		JOIN %s p ON p.%s = g.%s
		JOIN %s u ON u.%s = g.%s
		LEFT JOIN %s rs ON rs.%s = g.%s`,
		good.ID, good.ReportID, good.ProductID, good.Amount, good.UnitID, good.Note, good.ReasonID, good.CreatedAt, good.UpdatedAt,
		product.Name, unit.Name, reason.Name,
		good.Table,
		product.Table, product.ID, good.ProductID,
		unit.Table, unit.ID, good.UnitID,
		reason.Table, reason.ID, good.ReasonID,
	)
}

// ListByReport returns the goods of a report with their images.
func (repository *PostgresRepository) ListByReport(context context.Context, reportID string) ([]*StoredGood, error) {
	good := schema.StoredGood
	query := selectGoods() + fmt.Sprintf(` WHERE g.%s = $1 ORDER BY g.%s, g.%s`, good.ReportID, good.CreatedAt, good.ID)

	rows, err := repository.db.Query(context, query, reportID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_stored_goods")
	}

	goods, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*StoredGood, error) {
		return scanGood(row)
	})
	if err != nil {
		return nil, dberr.Wrap(err, "scan_stored_good")
	}

	return goods, repository.attachImages(context, goods)
}

// Get fetches a stored good with its images.
func (repository *PostgresRepository) Get(context context.Context, id string) (*StoredGood, error) {
	query := selectGoods() + fmt.Sprintf(` WHERE g.%s = $1`, schema.StoredGood.ID)

	item, err := scanGood(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.NotFound(err, "get_stored_good", "Stored good")
	}
	return item, repository.attachImages(context, []*StoredGood{item})
}

func (repository *PostgresRepository) attachImages(context context.Context, goods []*StoredGood) error {
	if len(goods) == 0 {
		return nil
	}

	ids := make([]string, len(goods))
	byID := make(map[string]*StoredGood, len(goods))
	for i, item := range goods {
		item.Images = []Image{}
		ids[i] = item.ID
		byID[item.ID] = item
	}

	image := schema.StoredGoodImage
	rows, err := repository.db.Query(context, fmt.Sprintf(`
		SELECT %s FROM %s WHERE %s = ANY($1::uuid[]) ORDER BY %s, %s
	`, schema.List(image.Columns()...), image.Table, image.StoredGoodID, image.UploadedAt, image.ID), ids)
	if err != nil {
		return dberr.Wrap(err, "list_stored_good_images")
	}

	images, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (Image, error) {
		var item Image
		err := row.Scan(&item.ID, &item.StoredGoodID, &item.Key, &item.Description, &item.UploadedAt)
		return item, err
	})
	if err != nil {
		return dberr.Wrap(err, "scan_stored_good_image")
	}

	for _, item := range images {
		owner := byID[item.StoredGoodID]
		item.ReportID = owner.ReportID
		owner.Images = append(owner.Images, item)
	}
	return nil
}

// Create inserts a stored good.
func (repository *PostgresRepository) Create(context context.Context, good *StoredGood) error {
	table := schema.StoredGood
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING %s, %s
	`, table.Table, table.ID, table.ReportID, table.ProductID, table.Amount, table.UnitID, table.Note, table.ReasonID,
		table.CreatedAt, table.UpdatedAt)

	err := repository.db.QueryRow(context, query,
		good.ID, good.ReportID, good.ProductID, good.Amount, good.UnitID, good.Note, good.ReasonID,
	).Scan(&good.CreatedAt, &good.UpdatedAt)
	return dberr.Wrap(err, "create_stored_good")
}

// Update overwrites a stored good.
func (repository *PostgresRepository) Update(context context.Context, good *StoredGood) error {
	table := schema.StoredGood
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = NOW()
		WHERE %s = $1
		RETURNING %s, %s
	`, table.Table, table.ProductID, table.Amount, table.UnitID, table.Note, table.ReasonID, table.UpdatedAt,
		table.ID, table.CreatedAt, table.UpdatedAt)

	err := repository.db.QueryRow(context, query,
		good.ID, good.ProductID, good.Amount, good.UnitID, good.Note, good.ReasonID,
	).Scan(&good.CreatedAt, &good.UpdatedAt)
	if err != nil {
		return dberr.NotFound(err, "update_stored_good", "Stored good")
	}
	return nil
}

// Delete removes a stored good.
func (repository *PostgresRepository) Delete(context context.Context, id string) error {
	return repository.delete(context, schema.StoredGood.Table, schema.StoredGood.ID, id, "Stored good")
}

// GetImage fetches an image with the report of its good.
func (repository *PostgresRepository) GetImage(context context.Context, id string) (*Image, error) {
	image, good := schema.StoredGoodImage, schema.StoredGood
	query := fmt.Sprintf(`
		SELECT %s, g.%s
		FROM %s i
		JOIN %s g ON g.%s = i.%s
		WHERE i.%s = $1
	`, schema.Prefixed("i", image.Columns()...), good.ReportID,
		image.Table,
		good.Table, good.ID, image.StoredGoodID,
		image.ID)

	var item Image
	err := repository.db.QueryRow(context, query, id).Scan(
		&item.ID, &item.StoredGoodID, &item.Key, &item.Description, &item.UploadedAt, &item.ReportID,
	)
	if err != nil {
		return nil, dberr.NotFound(err, "get_stored_good_image", "Image")
	}
	return &item, nil
}

// CreateImage inserts an image row.
func (repository *PostgresRepository) CreateImage(context context.Context, image *Image) error {
	table := schema.StoredGoodImage
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, $3, $4)
		RETURNING %s
	`, table.Table, table.ID, table.StoredGoodID, table.ObjectKey, table.Description, table.UploadedAt)

	err := repository.db.QueryRow(context, query, image.ID, image.StoredGoodID, image.Key, image.Description).Scan(&image.UploadedAt)
	return dberr.Wrap(err, "create_stored_good_image")
}

// UpdateImage overwrites the key and description of an image.
func (repository *PostgresRepository) UpdateImage(context context.Context, image *Image) error {
	table := schema.StoredGoodImage
	query := fmt.Sprintf(`
		UPDATE %s SET %s = $2, %s = $3, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`, table.Table, table.ObjectKey, table.Description, table.UploadedAt, table.ID, table.UploadedAt)

	if err := repository.db.QueryRow(context, query, image.ID, image.Key, image.Description).Scan(&image.UploadedAt); err != nil {
		return dberr.NotFound(err, "update_stored_good_image", "Image")
	}
	return nil
}

// DeleteImage removes an image row.
func (repository *PostgresRepository) DeleteImage(context context.Context, id string) error {
	return repository.delete(context, schema.StoredGoodImage.Table, schema.StoredGoodImage.ID, id, "Image")
}

func (repository *PostgresRepository) delete(context context.Context, table, idColumn, id, resource string) error {
	command, err := repository.db.Exec(context, fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, table, idColumn), id)
	if err != nil {
		return dberr.Wrap(err, "delete_"+table)
	}
	if command.RowsAffected() == 0 {
		return apperr.NotFound(resource)
	}
	return nil
}

func scanGood(row pgx.Row) (*StoredGood, error) {
	item := &StoredGood{}
	err := row.Scan(
		&item.ID, &item.ReportID, &item.ProductID, &item.Amount, &item.UnitID, &item.Note, &item.ReasonID,
		&item.CreatedAt, &item.UpdatedAt,
		&item.ProductName, &item.UnitName, &item.ReasonName,
	)
	return item, err
}
