// Copyright (c) 2026 Gumruk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package geo

import "context"

// Repository defines the data access contract for countries and cities.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type Repository interface {

	/*
		ListCountries retrieves a page of countries ordered by name.

		Parameters:
		  - context: context.Context
		  - filter: Filter
		  - limit, offset: int

		Returns:
		  - []*Country: Matching countries
		  - int: Total matching count
		  - error: Database retrieval failures
	*/
	ListCountries(context context.Context, filter Filter, limit, offset int) ([]*Country, int, error)

	// GetCountry fetches a country by ID.
	GetCountry(context context.Context, id int) (*Country, error)

	// CreateCountry inserts a country and fills ID and timestamps.
	CreateCountry(context context.Context, country *Country) error

	// UpdateCountry overwrites name and code.
	UpdateCountry(context context.Context, country *Country) error

	// DeleteCountry removes a country together with its cities.
	DeleteCountry(context context.Context, id int) error

	/*
		ListCities retrieves the cities of one country ordered by name.

		Parameters:
		  - context: context.Context
		  - countryID: int
		  - filter: Filter
		  - limit, offset: int

		Returns:
		  - []*City: Matching cities
		  - int: Total matching count
		  - error: Database retrieval failures
	*/
	ListCities(context context.Context, countryID int, filter Filter, limit, offset int) ([]*City, int, error)

	// GetCity fetches a city by ID.
	GetCity(context context.Context, id int) (*City, error)

	// CreateCity inserts a city under an existing country.
	CreateCity(context context.Context, city *City) error

	// UpdateCity overwrites name and country.
	UpdateCity(context context.Context, city *City) error

	// DeleteCity removes a city.
	DeleteCity(context context.Context, id int) error
}
