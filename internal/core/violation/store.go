// Copyright (c) 2026 Gumruk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package violation

import "context"

// # Violation Data Access

// Repository defines the data access contract for violations.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type Repository interface {

	/*
		List retrieves a page of violations, newest first.

		Parameters:
		  - context: context.Context
		  - filter: Filter (kind, free-text search)
		  - limit, offset: int

		Returns:
		  - []*Violation: Matching violations with nationality names
		  - int: Total matching count
		  - error: Database retrieval failures
	*/
	List(context context.Context, filter Filter, limit, offset int) ([]*Violation, int, error)

	/*
		Get fetches a violation by its UUID.

		Returns:
		  - *Violation: Hydrated record
		  - error: apperr NOT_FOUND when missing
	*/
	Get(context context.Context, id string) (*Violation, error)

	// FindByPassport returns the person violation carrying passportNumber.
	FindByPassport(context context.Context, passportNumber string) (*Violation, error)

	// Create inserts a violation whose ID is already set.
	Create(context context.Context, violation *Violation) error

	// Update overwrites every attribute of both groups.
	Update(context context.Context, violation *Violation) error

	// Delete removes a violation no report references.
	Delete(context context.Context, id string) error
}
