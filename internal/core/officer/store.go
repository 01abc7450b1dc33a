// Copyright (c) 2026 Gumruk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package officer

import "context"

// Repository defines the data access contract for customs officers.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type Repository interface {

	/*
		List retrieves a page of officers ordered by surname, then name.

		Parameters:
		  - context: context.Context
		  - filter: Filter
		  - limit, offset: int

		Returns:
		  - []*CustomsOfficer: Officers with rank and position names
		  - int: Total matching count
		  - error: Database retrieval failures
	*/
	List(context context.Context, filter Filter, limit, offset int) ([]*CustomsOfficer, int, error)

	// Get fetches an officer with rank and position names.
	Get(context context.Context, id int) (*CustomsOfficer, error)

	// Create inserts an officer.
	Create(context context.Context, officer *CustomsOfficer) error

	// Update overwrites every editable column.
	Update(context context.Context, officer *CustomsOfficer) error

	// Delete removes an officer no report references.
	Delete(context context.Context, id int) error
}
