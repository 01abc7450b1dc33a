// Copyright (c) 2026 Gumruk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package goods

import (
	"context"

	"github.com/taibuivan/gumruk/internal/platform/sec"
)

// # Stored Good Data Access

// Repository defines the data access contract for stored goods and their photos.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type Repository interface {

	/*
		ListByReport returns the goods of one report in insertion order.

		Returns:
		  - []*StoredGood: Goods with registry names and images (URLs unresolved)
		  - error: Database retrieval failures
	*/
	ListByReport(context context.Context, reportID string) ([]*StoredGood, error)

	// Get fetches a stored good with its images.
	Get(context context.Context, id string) (*StoredGood, error)

	// Create inserts a stored good whose ID is already set.
	Create(context context.Context, good *StoredGood) error

	// Update overwrites product, amount, unit, note and reason.
	Update(context context.Context, good *StoredGood) error

	// Delete removes a stored good and, by cascade, its image rows.
	Delete(context context.Context, id string) error

	/*
		GetImage fetches an image with the report of its good.

		Returns:
		  - *Image: Image with ReportID populated
		  - error: apperr NOT_FOUND when missing
	*/
	GetImage(context context.Context, id string) (*Image, error)

	// CreateImage inserts an image whose ID and key are already set.
	CreateImage(context context.Context, image *Image) error

	// UpdateImage overwrites the key and description of an image.
	UpdateImage(context context.Context, image *Image) error

	// DeleteImage removes an image row.
	DeleteImage(context context.Context, id string) error
}

// Authorizer applies the report edit gate.
type Authorizer interface {
	Authorize(context context.Context, actor *sec.AuthClaims, reportID string) error
}
