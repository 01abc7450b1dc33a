// Copyright (c) 2026 Gumruk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package geo

import (
	"context"
	"log/slog"
	"strings"

	"github.com/taibuivan/gumruk/internal/platform/dberr"
	"github.com/taibuivan/gumruk/internal/platform/validate"
)

func init() {
	dberr.RegisterConstraint("country_name_key", "A country with this name already exists")
	dberr.RegisterConstraint("country_code_key", "A country with this code already exists")
	dberr.RegisterConstraint("city_country_id_fkey", "Country does not exist")
}

// Service implements the business logic for countries and cities.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a geography service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// # Countries

// ListCountries returns a page of countries.
func (service *Service) ListCountries(context context.Context, filter Filter, limit, offset int) ([]*Country, int, error) {
	filter.Query = strings.TrimSpace(filter.Query)
	return service.repo.ListCountries(context, filter, limit, offset)
}

// GetCountry returns a single country.
func (service *Service) GetCountry(context context.Context, id int) (*Country, error) {
	return service.repo.GetCountry(context, id)
}

/*
CreateCountry validates and inserts a country.

Description: Codes are stored upper-case so "tm" and "TM" collide on the
unique index.
*/
func (service *Service) CreateCountry(context context.Context, country *Country) error {
	if err := validateCountry(country); err != nil {
		return err
	}
	if err := service.repo.CreateCountry(context, country); err != nil {
		return err
	}

	service.logger.InfoContext(context, "country_created", slog.Int("id", country.ID), slog.String("code", country.Code))
	return nil
}

// UpdateCountry validates and overwrites a country.
func (service *Service) UpdateCountry(context context.Context, id int, country *Country) error {
	country.ID = id
	if err := validateCountry(country); err != nil {
		return err
	}
	if err := service.repo.UpdateCountry(context, country); err != nil {
		return err
	}

	service.logger.InfoContext(context, "country_updated", slog.Int("id", id))
	return nil
}

// DeleteCountry removes a country and its cities.
func (service *Service) DeleteCountry(context context.Context, id int) error {
	if err := service.repo.DeleteCountry(context, id); err != nil {
		return err
	}

	service.logger.WarnContext(context, "country_deleted", slog.Int("id", id))
	return nil
}

// # Cities

// ListCities returns the cities of a country. An unknown country is a 404
// rather than an empty page.
func (service *Service) ListCities(context context.Context, countryID int, filter Filter, limit, offset int) ([]*City, int, error) {
	if _, err := service.repo.GetCountry(context, countryID); err != nil {
		return nil, 0, err
	}

	filter.Query = strings.TrimSpace(filter.Query)
	return service.repo.ListCities(context, countryID, filter, limit, offset)
}

// GetCity returns a single city.
func (service *Service) GetCity(context context.Context, id int) (*City, error) {
	return service.repo.GetCity(context, id)
}

// CreateCity validates and inserts a city.
func (service *Service) CreateCity(context context.Context, city *City) error {
	if err := validateCity(city); err != nil {
		return err
	}
	if err := service.repo.CreateCity(context, city); err != nil {
		return err
	}

	service.logger.InfoContext(context, "city_created", slog.Int("id", city.ID), slog.Int("country_id", city.CountryID))
	return nil
}

// UpdateCity validates and overwrites a city.
func (service *Service) UpdateCity(context context.Context, id int, city *City) error {
	city.ID = id
	if err := validateCity(city); err != nil {
		return err
	}
	if err := service.repo.UpdateCity(context, city); err != nil {
		return err
	}

	service.logger.InfoContext(context, "city_updated", slog.Int("id", id))
	return nil
}

// DeleteCity removes a city.
func (service *Service) DeleteCity(context context.Context, id int) error {
	if err := service.repo.DeleteCity(context, id); err != nil {
		return err
	}

	service.logger.WarnContext(context, "city_deleted", slog.Int("id", id))
	return nil
}

func validateCountry(country *Country) error {
	country.Name = strings.TrimSpace(country.Name)
	country.Code = strings.ToUpper(strings.TrimSpace(country.Code))

	validator := &validate.Validator{}
	validator.Required(FieldName, country.Name).MaxLen(FieldName, country.Name, maxNameLength)
	validator.Required(FieldCode, country.Code).MaxLen(FieldCode, country.Code, maxCodeLength)
	return validator.Err()
}

func validateCity(city *City) error {
	city.Name = strings.TrimSpace(city.Name)

	validator := &validate.Validator{}
	validator.Required(FieldName, city.Name).MaxLen(FieldName, city.Name, maxNameLength)
	validator.RequiredID(FieldCountryID, city.CountryID)
	return validator.Err()
}
