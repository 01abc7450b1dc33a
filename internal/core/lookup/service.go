// Copyright (c) 2026 Gumruk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package lookup

import (
	"context"
	"log/slog"
	"strings"

	"github.com/taibuivan/gumruk/internal/platform/dberr"
	"github.com/taibuivan/gumruk/internal/platform/validate"
	"github.com/taibuivan/gumruk/pkg/pagination"
)

func init() {
	for _, spec := range specs {
		dberr.RegisterConstraint(spec.Table+"_name_key", "A "+strings.ToLower(spec.Label)+" with this name already exists")
	}
}

// Service implements the business logic shared by all lookup tables.
type Service struct {
	repo   Repository
	cache  Cache
	logger *slog.Logger
}

// NewService constructs a lookup service. cache may be nil to disable caching.
func NewService(repo Repository, cache Cache, logger *slog.Logger) *Service {
	return &Service{repo: repo, cache: cache, logger: logger}
}

// cacheable reports whether a request targets the default first page.
func cacheable(filter Filter, limit, offset int) bool {
	return filter.Query == "" && offset == 0 && limit == pagination.DefaultLimit
}

/*
List returns a page of a lookup table.

Description: The default first page (no search) is served from the cache when
present. Cache failures are logged and the database answers instead.

Returns:
  - []*Lookup: Page of rows
  - int: Total count
  - error: Unknown kind or database errors
*/
func (service *Service) List(context context.Context, kind Kind, filter Filter, limit, offset int) ([]*Lookup, int, error) {
	spec, err := SpecFor(kind)
	if err != nil {
		return nil, 0, err
	}
	filter.Query = strings.TrimSpace(filter.Query)

	useCache := service.cache != nil && cacheable(filter, limit, offset)
	if useCache {
		page, err := service.cache.GetList(context, kind)
		if err != nil {
			service.logger.WarnContext(context, "lookup_cache_read_failed", slog.String("kind", string(kind)), slog.Any("error", err))
		} else if page != nil {
			return page.Items, page.Total, nil
		}
	}

	items, total, err := service.repo.List(context, spec, filter, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	if useCache {
		if err := service.cache.SetList(context, kind, &Page{Items: items, Total: total}); err != nil {
			service.logger.WarnContext(context, "lookup_cache_write_failed", slog.String("kind", string(kind)), slog.Any("error", err))
		}
	}
	return items, total, nil
}

// Get returns a single row.
func (service *Service) Get(context context.Context, kind Kind, id int) (*Lookup, error) {
	spec, err := SpecFor(kind)
	if err != nil {
		return nil, err
	}
	return service.repo.Get(context, spec, id)
}

// Create validates and inserts a row.
func (service *Service) Create(context context.Context, kind Kind, item *Lookup) error {
	spec, err := SpecFor(kind)
	if err != nil {
		return err
	}

	if err := service.validate(spec, item); err != nil {
		return err
	}

	if err := service.repo.Create(context, spec, item); err != nil {
		return err
	}

	service.invalidate(context, kind)
	service.logger.InfoContext(context, "lookup_created", slog.String("kind", string(kind)), slog.Int("id", item.ID))
	return nil
}

// Update validates and overwrites a row.
func (service *Service) Update(context context.Context, kind Kind, id int, item *Lookup) error {
	spec, err := SpecFor(kind)
	if err != nil {
		return err
	}

	item.ID = id
	if err := service.validate(spec, item); err != nil {
		return err
	}

	if err := service.repo.Update(context, spec, item); err != nil {
		return err
	}

	service.invalidate(context, kind)
	service.logger.InfoContext(context, "lookup_updated", slog.String("kind", string(kind)), slog.Int("id", id))
	return nil
}

// Delete removes a row that nothing references.
func (service *Service) Delete(context context.Context, kind Kind, id int) error {
	spec, err := SpecFor(kind)
	if err != nil {
		return err
	}

	if err := service.repo.Delete(context, spec, id); err != nil {
		return err
	}

	service.invalidate(context, kind)
	service.logger.WarnContext(context, "lookup_deleted", slog.String("kind", string(kind)), slog.Int("id", id))
	return nil
}

func (service *Service) validate(spec Spec, item *Lookup) error {
	item.Name = strings.TrimSpace(item.Name)
	item.Description = strings.TrimSpace(item.Description)

	validator := &validate.Validator{}
	validator.Required(FieldName, item.Name).MaxLen(FieldName, item.Name, spec.MaxName)
	return validator.Err()
}

func (service *Service) invalidate(context context.Context, kind Kind) {
	if service.cache == nil {
		return
	}
	if err := service.cache.Invalidate(context, kind); err != nil {
		service.logger.WarnContext(context, "lookup_cache_invalidate_failed", slog.String("kind", string(kind)), slog.Any("error", err))
	}
}
