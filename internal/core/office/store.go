// Copyright (c) 2026 Gumruk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package office

import "context"

// # Office Data Access

// Repository defines the data access contract for customs offices and points.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type Repository interface {

	/*
		ListOffices retrieves a page of offices ordered by name.

		Parameters:
		  - context: context.Context
		  - filter: Filter (name or code search)
		  - limit, offset: int

		Returns:
		  - []*CustomsOffice: Matching offices
		  - int: Total matching count
		  - error: Database retrieval failures
	*/
	ListOffices(context context.Context, filter Filter, limit, offset int) ([]*CustomsOffice, int, error)

	// GetOffice fetches an office by ID.
	GetOffice(context context.Context, id int) (*CustomsOffice, error)

	// CreateOffice inserts an office.
	CreateOffice(context context.Context, office *CustomsOffice) error

	// UpdateOffice overwrites name and code.
	UpdateOffice(context context.Context, office *CustomsOffice) error

	// DeleteOffice removes an office and cascades to its points.
	DeleteOffice(context context.Context, id int) error

	/*
		ListPoints retrieves a page of points ordered by name.

		Parameters:
		  - context: context.Context
		  - filter: Filter (name or code search, optional office)
		  - limit, offset: int

		Returns:
		  - []*CustomsPoint: Matching points
		  - int: Total matching count
		  - error: Database retrieval failures
	*/
	ListPoints(context context.Context, filter Filter, limit, offset int) ([]*CustomsPoint, int, error)

	/*
		PointOptions returns every point of one office whose name contains query.

		Returns:
		  - []PointOption: id/name pairs ordered by name
		  - error: Database retrieval failures
	*/
	PointOptions(context context.Context, officeID int, query string) ([]PointOption, error)

	// GetPoint fetches a point by ID.
	GetPoint(context context.Context, id int) (*CustomsPoint, error)

	// CreatePoint inserts a point under an existing office.
	CreatePoint(context context.Context, point *CustomsPoint) error

	// UpdatePoint overwrites office, name and code.
	UpdatePoint(context context.Context, point *CustomsPoint) error

	// DeletePoint removes a point.
	DeletePoint(context context.Context, id int) error
}
