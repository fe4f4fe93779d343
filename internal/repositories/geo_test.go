package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContinentRepository_CRUD(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	ctx := context.Background()
	readRepo := NewContinentReadRepository(db)
	writeRepo := NewContinentWriteRepository(db)

	desc := "Islands of the Pacific"
	created, err := writeRepo.Create(ctx, "Oceania", &desc)
	require.NoError(t, err)
	assert.Equal(t, "Oceania", created.Name)
	require.NotNil(t, created.Description)

	t.Run("duplicate name is a unique violation", func(t *testing.T) {
		_, err := writeRepo.Create(ctx, "Oceania", nil)
		assert.ErrorIs(t, err, ErrUniqueViolation)
	})

	t.Run("get by id", func(t *testing.T) {
		got, err := readRepo.GetByID(ctx, created.ContinentID)
		require.NoError(t, err)
		assert.Equal(t, "Oceania", got.Name)
	})

	t.Run("get missing id", func(t *testing.T) {
		_, err := readRepo.GetByID(ctx, 9999)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("partial update keeps absent fields", func(t *testing.T) {
		newName := "Oceania and Australasia"
		updated, err := writeRepo.Update(ctx, created.ContinentID, &newName, nil)
		require.NoError(t, err)
		assert.Equal(t, newName, updated.Name)
		require.NotNil(t, updated.Description)
		assert.Equal(t, desc, *updated.Description)
	})

	t.Run("list counts countries", func(t *testing.T) {
		continents, total, err := readRepo.List(ctx, 1, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, continents, 1)
		assert.Equal(t, int64(0), continents[0].CountryCount)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, writeRepo.Delete(ctx, created.ContinentID))
		assert.ErrorIs(t, writeRepo.Delete(ctx, created.ContinentID), ErrNotFound)
	})
}

func TestCountryRepository(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	ctx := context.Background()
	continentID, countryID, _ := seedGeo(t, db)
	readRepo := NewCountryReadRepository(db)
	writeRepo := NewCountryWriteRepository(db)

	t.Run("get joins the continent", func(t *testing.T) {
		country, err := readRepo.GetByID(ctx, countryID)
		require.NoError(t, err)
		assert.Equal(t, "Brazil", country.Name)
		assert.Equal(t, "South America", country.Continent.Name)
	})

	t.Run("list counts cities and filters by continent", func(t *testing.T) {
		countries, total, err := readRepo.List(ctx, 1, 10, &continentID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, countries, 1)
		assert.Equal(t, int64(1), countries[0].CityCount)

		other := int64(9999)
		_, total, err = readRepo.List(ctx, 1, 10, &other)
		require.NoError(t, err)
		assert.Equal(t, int64(0), total)
	})

	t.Run("create with missing continent is a foreign key violation", func(t *testing.T) {
		name := "Atlantis"
		missing := int64(9999)
		_, err := writeRepo.Create(ctx, CountryFields{Name: &name, ContinentID: &missing})
		assert.ErrorIs(t, err, ErrForeignKeyViolation)
	})

	t.Run("delete with cities is a foreign key violation", func(t *testing.T) {
		assert.ErrorIs(t, writeRepo.Delete(ctx, countryID), ErrForeignKeyViolation)
	})

	t.Run("partial update", func(t *testing.T) {
		capital := "Brasília"
		updated, err := writeRepo.Update(ctx, countryID, CountryFields{Capital: &capital})
		require.NoError(t, err)
		require.NotNil(t, updated.Capital)
		assert.Equal(t, "Brasília", *updated.Capital)
		assert.Equal(t, "Brazil", updated.Name)
	})

	t.Run("continent delete blocked while it has countries", func(t *testing.T) {
		assert.ErrorIs(t, NewContinentWriteRepository(db).Delete(ctx, continentID), ErrForeignKeyViolation)
	})
}

func TestCityRepository(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	ctx := context.Background()
	continentID, countryID, cityID := seedGeo(t, db)
	readRepo := NewCityReadRepository(db)

	t.Run("list joins country and continent", func(t *testing.T) {
		cities, total, err := readRepo.List(ctx, 1, 10, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, cities, 1)
		assert.Equal(t, "Brazil", cities[0].Country.Name)
		assert.Equal(t, "South America", cities[0].Country.Continent.Name)
	})

	t.Run("continent filter", func(t *testing.T) {
		_, total, err := readRepo.List(ctx, 1, 10, nil, &continentID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)

		other := int64(9999)
		_, total, err = readRepo.List(ctx, 1, 10, nil, &other)
		require.NoError(t, err)
		assert.Equal(t, int64(0), total)
	})

	t.Run("detail carries full lineage", func(t *testing.T) {
		city, err := readRepo.GetByID(ctx, cityID)
		require.NoError(t, err)
		assert.Equal(t, "São Paulo", city.Name)
		assert.Equal(t, "Brazil", city.Country.Name)
		assert.Equal(t, "South America", city.Country.Continent.Name)
	})

	t.Run("list by country", func(t *testing.T) {
		cities, err := readRepo.ListByCountry(ctx, countryID)
		require.NoError(t, err)
		require.Len(t, cities, 1)
		assert.Equal(t, cityID, cities[0].CityID)
	})
}
