// Copyright (c) 2026 Gumruk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package seed loads reference data from a YAML fixture into an empty or
partially filled database.

Every insert goes through the domain services, so the same validation and
normalisation rules apply as for API writes. Rows that already exist
(unique constraint conflicts) are skipped, which makes a run repeatable.
*/
package seed

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/taibuivan/gumruk/internal/core/geo"
	"github.com/taibuivan/gumruk/internal/core/lookup"
	"github.com/taibuivan/gumruk/internal/platform/apperr"
	"github.com/taibuivan/gumruk/internal/platform/sec"
	"github.com/taibuivan/gumruk/internal/users/auth"
	"github.com/taibuivan/gumruk/pkg/uuid"
)

// File is the fixture layout.
type File struct {
	Admin     *Admin                   `yaml:"admin"`
	Countries []Country                `yaml:"countries"`
	Lookups   map[lookup.Kind][]Lookup `yaml:"lookups"`
}

// Admin describes the bootstrap administrator. The password comes from the environment.
type Admin struct {
	Username string `yaml:"username"`
	Email    string `yaml:"email"`
	FullName string `yaml:"full_name"`
}

// Country is a country with the cities to create under it.
type Country struct {
	Name   string   `yaml:"name"`
	Code   string   `yaml:"code"`
	Cities []string `yaml:"cities"`
}

// Lookup is one reference-table row.
type Lookup struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// Load reads and parses a fixture file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("seed: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes fixture YAML. Unknown lookup kinds are rejected up front.
func Parse(data []byte) (*File, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("seed: parse: %w", err)
	}
	for kind := range file.Lookups {
		if _, err := lookup.SpecFor(kind); err != nil {
			return nil, fmt.Errorf("seed: unknown lookup kind %q", kind)
		}
	}
	return &file, nil
}

// # Targets

// LookupWriter creates lookup rows. Implemented by lookup.Service.
type LookupWriter interface {
	Create(context context.Context, kind lookup.Kind, item *lookup.Lookup) error
}

// GeoWriter creates countries and cities. Implemented by geo.Service.
type GeoWriter interface {
	ListCountries(context context.Context, filter geo.Filter, limit, offset int) ([]*geo.Country, int, error)
	CreateCountry(context context.Context, country *geo.Country) error
	CreateCity(context context.Context, city *geo.City) error
}

// UserWriter creates the bootstrap account. Implemented by the auth user repository.
type UserWriter interface {
	FindByLogin(context context.Context, login string) (*auth.User, error)
	Create(context context.Context, user *auth.User) error
}

// Result counts what a run did.
type Result struct {
	Created int
	Skipped int
}

func (result *Result) track(err error) error {
	switch {
	case err == nil:
		result.Created++
	case apperr.HasCode(err, apperr.CodeConflict):
		result.Skipped++
	default:
		return err
	}
	return nil
}

// Seeder applies a [File].
type Seeder struct {
	lookups LookupWriter
	geo     GeoWriter
	users   UserWriter
	logger  *slog.Logger
}

// NewSeeder constructs a [Seeder].
func NewSeeder(lookups LookupWriter, geo GeoWriter, users UserWriter, logger *slog.Logger) *Seeder {
	return &Seeder{lookups: lookups, geo: geo, users: users, logger: logger}
}

/*
Run applies file. adminPassword is only needed when file names an admin that
does not exist yet.
*/
func (seeder *Seeder) Run(context context.Context, file *File, adminPassword string) (Result, error) {
	var result Result

	if file.Admin != nil {
		if err := seeder.admin(context, file.Admin, adminPassword, &result); err != nil {
			return result, err
		}
	}

	for _, spec := range lookup.Specs() {
		for _, row := range file.Lookups[spec.Kind] {
			item := &lookup.Lookup{Name: row.Name, Description: row.Description}
			if err := result.track(seeder.lookups.Create(context, spec.Kind, item)); err != nil {
				return result, fmt.Errorf("seed: %s %q: %w", spec.Kind, row.Name, err)
			}
		}
	}

	for _, country := range file.Countries {
		if err := seeder.country(context, country, &result); err != nil {
			return result, err
		}
	}

	seeder.logger.InfoContext(context, "seed_finished",
		slog.Int("created", result.Created),
		slog.Int("skipped", result.Skipped),
	)
	return result, nil
}

func (seeder *Seeder) admin(context context.Context, admin *Admin, password string, result *Result) error {
	_, err := seeder.users.FindByLogin(context, admin.Username)
	switch {
	case err == nil:
		result.Skipped++
		return nil
	case !apperr.HasCode(err, apperr.CodeNotFound):
		return fmt.Errorf("seed: find admin: %w", err)
	}

	if len(password) < auth.MinPasswordLength {
		return fmt.Errorf("seed: admin password must be at least %d characters", auth.MinPasswordLength)
	}
	hash, err := sec.HashPassword(password)
	if err != nil {
		return fmt.Errorf("seed: hash admin password: %w", err)
	}

	user := &auth.User{
		ID:           uuid.New(),
		Username:     strings.TrimSpace(admin.Username),
		Email:        strings.ToLower(strings.TrimSpace(admin.Email)),
		FullName:     strings.TrimSpace(admin.FullName),
		PasswordHash: hash,
		Role:         sec.RoleAdmin,
		IsActive:     true,
	}
	if err := seeder.users.Create(context, user); err != nil {
		return fmt.Errorf("seed: create admin: %w", err)
	}

	result.Created++
	seeder.logger.InfoContext(context, "seed_admin_created", slog.String("username", user.Username))
	return nil
}

func (seeder *Seeder) country(context context.Context, country Country, result *Result) error {
	created := &geo.Country{Name: country.Name, Code: country.Code}
	err := seeder.geo.CreateCountry(context, created)
	if err := result.track(err); err != nil {
		return fmt.Errorf("seed: country %q: %w", country.Name, err)
	}

	countryID := created.ID
	if err != nil {
		// Already present; find its ID by code
		existing, _, err := seeder.geo.ListCountries(context, geo.Filter{Query: country.Code}, 100, 0)
		if err != nil {
			return fmt.Errorf("seed: find country %q: %w", country.Name, err)
		}
		countryID = 0
		for _, candidate := range existing {
			if strings.EqualFold(candidate.Code, country.Code) {
				countryID = candidate.ID
				break
			}
		}
		if countryID == 0 {
			return fmt.Errorf("seed: country %q conflicts but was not found by code", country.Name)
		}
	}

	for _, name := range country.Cities {
		city := &geo.City{CountryID: countryID, Name: name}
		if err := result.track(seeder.geo.CreateCity(context, city)); err != nil {
			return fmt.Errorf("seed: city %q: %w", name, err)
		}
	}
	return nil
}
