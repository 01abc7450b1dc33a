// Copyright (c) 2026 Gumruk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package seed_test

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/gumruk/internal/core/geo"
	"github.com/taibuivan/gumruk/internal/core/lookup"
	"github.com/taibuivan/gumruk/internal/platform/apperr"
	"github.com/taibuivan/gumruk/internal/platform/sec"
	"github.com/taibuivan/gumruk/internal/seed"
	"github.com/taibuivan/gumruk/internal/users/auth"
)

const fixture = `
admin:
  username: admin
  email: Admin@Gumruk.gov.tm
  full_name: System Administrator
lookups:
  units:
    - name: kg
    - name: litre
  workgroups:
    - name: Group A
      description: Border post team
countries:
  - name: Turkmenistan
    code: TM
    cities: [Ashgabat, Mary]
`

type lookupSink struct {
	created  map[lookup.Kind][]string
	existing map[string]bool
}

func (sink *lookupSink) Create(_ context.Context, kind lookup.Kind, item *lookup.Lookup) error {
	if sink.existing[item.Name] {
		return apperr.Conflict("exists")
	}
	sink.created[kind] = append(sink.created[kind], item.Name)
	return nil
}

type geoSink struct {
	countries []*geo.Country
	cities    []*geo.City
	conflict  bool
}

func (sink *geoSink) ListCountries(context.Context, geo.Filter, int, int) ([]*geo.Country, int, error) {
	return []*geo.Country{{ID: 3, Code: "TR"}, {ID: 7, Code: "TM"}}, 2, nil
}

func (sink *geoSink) CreateCountry(_ context.Context, country *geo.Country) error {
	if sink.conflict {
		return apperr.Conflict("exists")
	}
	country.ID = len(sink.countries) + 1
	sink.countries = append(sink.countries, country)
	return nil
}

func (sink *geoSink) CreateCity(_ context.Context, city *geo.City) error {
	sink.cities = append(sink.cities, city)
	return nil
}

type userSink struct {
	existing *auth.User
	created  *auth.User
}

func (sink *userSink) FindByLogin(context.Context, string) (*auth.User, error) {
	if sink.existing != nil {
		return sink.existing, nil
	}
	return nil, apperr.NotFound("User")
}

func (sink *userSink) Create(_ context.Context, user *auth.User) error {
	sink.created = user
	return nil
}

func newSeeder(geoConflict bool, existingUser *auth.User) (*seed.Seeder, *lookupSink, *geoSink, *userSink) {
	lookups := &lookupSink{created: map[lookup.Kind][]string{}, existing: map[string]bool{"litre": true}}
	places := &geoSink{conflict: geoConflict}
	users := &userSink{existing: existingUser}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return seed.NewSeeder(lookups, places, users, logger), lookups, places, users
}

/*
TestParse rejects kinds that have no lookup table.
*/
func TestParse(t *testing.T) {
	file, err := seed.Parse([]byte(fixture))
	require.NoError(t, err)
	assert.Equal(t, "admin", file.Admin.Username)
	assert.Len(t, file.Lookups[lookup.KindUnit], 2)
	assert.Equal(t, []string{"Ashgabat", "Mary"}, file.Countries[0].Cities)

	_, err = seed.Parse([]byte("lookups:\n  colours:\n    - name: red\n"))
	assert.ErrorContains(t, err, "unknown lookup kind")

	_, err = seed.Parse([]byte("admin: [not, a, map]"))
	assert.Error(t, err)
}

/*
TestSeeder_Run creates everything missing and counts conflicts as skipped.
*/
func TestSeeder_Run(t *testing.T) {
	file, err := seed.Parse([]byte(fixture))
	require.NoError(t, err)

	seeder, lookups, places, users := newSeeder(false, nil)
	result, err := seeder.Run(context.Background(), file, "correct-horse")
	require.NoError(t, err)

	// admin + kg + Group A + country + 2 cities
	assert.Equal(t, seed.Result{Created: 6, Skipped: 1}, result)
	assert.Equal(t, []string{"kg"}, lookups.created[lookup.KindUnit])
	assert.Equal(t, []string{"Group A"}, lookups.created[lookup.KindWorkgroup])

	require.Len(t, places.cities, 2)
	assert.Equal(t, places.countries[0].ID, places.cities[0].CountryID)

	require.NotNil(t, users.created)
	assert.Equal(t, sec.RoleAdmin, users.created.Role)
	assert.Equal(t, "admin@gumruk.gov.tm", users.created.Email)
	assert.True(t, users.created.IsActive)
	assert.True(t, sec.CheckPasswordHash("correct-horse", users.created.PasswordHash))
}

/*
TestSeeder_Rerun reuses existing rows instead of failing.
*/
func TestSeeder_Rerun(t *testing.T) {
	file, err := seed.Parse([]byte(fixture))
	require.NoError(t, err)

	seeder, _, places, users := newSeeder(true, &auth.User{Username: "admin"})
	result, err := seeder.Run(context.Background(), file, "")
	require.NoError(t, err)

	assert.Nil(t, users.created)
	assert.Equal(t, 3, result.Skipped)
	require.Len(t, places.cities, 2)
	assert.Equal(t, 7, places.cities[1].CountryID)
}

/*
TestSeeder_AdminPassword refuses to create an admin with a short password.
*/
func TestSeeder_AdminPassword(t *testing.T) {
	seeder, _, _, users := newSeeder(false, nil)
	_, err := seeder.Run(context.Background(), &seed.File{Admin: &seed.Admin{Username: "root"}}, "short")

	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "at least"))
	assert.Nil(t, users.created)
}
