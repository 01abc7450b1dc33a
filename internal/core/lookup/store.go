// Copyright (c) 2026 Gumruk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package lookup

import "context"

// # Lookup Data Access

// Repository defines the data access contract shared by every lookup table.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type Repository interface {

	/*
		List retrieves a page of one lookup table ordered by name.

		Parameters:
		  - context: context.Context
		  - spec: Spec (target table)
		  - filter: Filter (case-insensitive name search)
		  - limit, offset: int

		Returns:
		  - []*Lookup: Matching rows
		  - int: Total matching count
		  - error: Database retrieval failures
	*/
	List(context context.Context, spec Spec, filter Filter, limit, offset int) ([]*Lookup, int, error)

	/*
		Get fetches a single row.

		Returns:
		  - *Lookup: The row
		  - error: apperr NOT_FOUND when missing
	*/
	Get(context context.Context, spec Spec, id int) (*Lookup, error)

	// Create inserts the row and fills ID and timestamps.
	Create(context context.Context, spec Spec, item *Lookup) error

	// Update overwrites name and description.
	Update(context context.Context, spec Spec, item *Lookup) error

	// Delete removes the row; rows still referenced fail with UNPROCESSABLE.
	Delete(context context.Context, spec Spec, id int) error
}

// Cache keeps the default first page of each kind.
type Cache interface {

	// GetList returns the cached page, or nil on a miss.
	GetList(context context.Context, kind Kind) (*Page, error)

	// SetList stores the page for the configured TTL.
	SetList(context context.Context, kind Kind, page *Page) error

	// Invalidate drops the cached page of kind.
	Invalidate(context context.Context, kind Kind) error
}
