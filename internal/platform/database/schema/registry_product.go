// Copyright (c) 2026 Gumruk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// ProductTable represents the 'registry.product' table
type ProductTable struct {
	Table      string
	ID         string
	Name       string
	CategoryID string
	CreatedAt  string
	UpdatedAt  string
}

// Product is the schema definition for registry.product
var Product = ProductTable{
	Table:      "registry.product",
	ID:         "id",
	Name:       "name",
	CategoryID: "category_id",
	CreatedAt:  "created_at",
	UpdatedAt:  "updated_at",
}

func (t ProductTable) Columns() []string {
	return []string{t.ID, t.Name, t.CategoryID, t.CreatedAt, t.UpdatedAt}
}
