// Copyright (c) 2026 Gumruk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package product

import "context"

// Repository defines the data access contract for products.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type Repository interface {

	/*
		List retrieves a page of products ordered by name.

		Parameters:
		  - context: context.Context
		  - filter: Filter (name search, optional category)
		  - limit, offset: int

		Returns:
		  - []*Product: Products with their category name
		  - int: Total matching count
		  - error: Database retrieval failures
	*/
	List(context context.Context, filter Filter, limit, offset int) ([]*Product, int, error)

	// Get fetches a product with its category name.
	Get(context context.Context, id int) (*Product, error)

	// Create inserts a product; names collide case-insensitively.
	Create(context context.Context, product *Product) error

	// Update overwrites name and category.
	Update(context context.Context, product *Product) error

	// Delete removes a product no stored good references.
	Delete(context context.Context, id int) error
}
