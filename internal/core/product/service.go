// Copyright (c) 2026 Gumruk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package product

import (
	"context"
	"log/slog"
	"strings"

	"github.com/taibuivan/gumruk/internal/platform/dberr"
	"github.com/taibuivan/gumruk/internal/platform/validate"
)

func init() {
	dberr.RegisterConstraint("product_name_ci_key", "A product with this name already exists")
	dberr.RegisterConstraint("product_category_id_fkey", "Product category does not exist")
}

// Service implements the business logic for products.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a product service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// List returns a page of products.
func (service *Service) List(context context.Context, filter Filter, limit, offset int) ([]*Product, int, error) {
	filter.Query = strings.TrimSpace(filter.Query)
	return service.repo.List(context, filter, limit, offset)
}

// Get returns a single product.
func (service *Service) Get(context context.Context, id int) (*Product, error) {
	return service.repo.Get(context, id)
}

/*
Create capitalises the name and inserts the product.

Description: "TELEFON" and "telefon" both become "Telefon", and the unique
index on lower(name) rejects the second with a 409.
*/
func (service *Service) Create(context context.Context, product *Product) (*Product, error) {
	if err := validateProduct(product); err != nil {
		return nil, err
	}
	if err := service.repo.Create(context, product); err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "product_created", slog.Int("id", product.ID), slog.String("name", product.Name))
	return service.repo.Get(context, product.ID)
}

// Update capitalises the name and overwrites the product.
func (service *Service) Update(context context.Context, id int, product *Product) (*Product, error) {
	product.ID = id
	if err := validateProduct(product); err != nil {
		return nil, err
	}
	if err := service.repo.Update(context, product); err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "product_updated", slog.Int("id", id))
	return service.repo.Get(context, id)
}

// Delete removes a product.
func (service *Service) Delete(context context.Context, id int) error {
	if err := service.repo.Delete(context, id); err != nil {
		return err
	}

	service.logger.WarnContext(context, "product_deleted", slog.Int("id", id))
	return nil
}

func validateProduct(product *Product) error {
	product.Name = Capitalize(product.Name)

	validator := &validate.Validator{}
	validator.Required(FieldName, product.Name).MaxLen(FieldName, product.Name, maxNameLength)
	if product.CategoryID != nil {
		validator.RequiredID(FieldCategoryID, *product.CategoryID)
	}
	return validator.Err()
}
