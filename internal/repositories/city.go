package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/viagemtrack/travelog/internal/logger"
	"github.com/viagemtrack/travelog/internal/models"
)

type CityReadRepository struct {
	db *sqlx.DB
}

func NewCityReadRepository(db *sqlx.DB) *CityReadRepository {
	return &CityReadRepository{db: db}
}

// List returns one page of cities ordered by name, optionally filtered by
// country or (via the owning country) by continent, plus the total count.
func (r *CityReadRepository) List(ctx context.Context, page, limit int, countryID, continentID *int64) ([]models.CityListItem, int64, error) {
	const query = `
		SELECT ci.city_id, ci.name, ci.population, ci.latitude, ci.longitude,
		       ci.climate, ci.country_id, ci.created_at, ci.updated_at,
		       p.country_id AS "country.country_id",
		       p.name       AS "country.name",
		       p.iso_code   AS "country.iso_code",
		       c.continent_id AS "country.continent.continent_id",
		       c.name         AS "country.continent.name"
		FROM cities ci
		JOIN countries p ON p.country_id = ci.country_id
		JOIN continents c ON c.continent_id = p.continent_id
		WHERE ($3::BIGINT IS NULL OR ci.country_id = $3)
		  AND ($4::BIGINT IS NULL OR p.continent_id = $4)
		ORDER BY ci.name ASC
		LIMIT $1 OFFSET $2
	`
	q := querierFromContext(ctx, r.db)

	items := make([]models.CityListItem, 0, limit)
	if err := q.SelectContext(ctx, &items, query, limit, (page-1)*limit, countryID, continentID); err != nil {
		logger.Log.Errorw("failed to list cities", "error", err)
		return nil, 0, translate(err)
	}

	const countQuery = `
		SELECT COUNT(*)
		FROM cities ci
		JOIN countries p ON p.country_id = ci.country_id
		WHERE ($1::BIGINT IS NULL OR ci.country_id = $1)
		  AND ($2::BIGINT IS NULL OR p.continent_id = $2)
	`
	var total int64
	if err := q.GetContext(ctx, &total, countQuery, countryID, continentID); err != nil {
		return nil, 0, translate(err)
	}

	return items, total, nil
}

// ListByCountry returns all cities of a country ordered by name.
func (r *CityReadRepository) ListByCountry(ctx context.Context, countryID int64) ([]models.CityDB, error) {
	const query = `
		SELECT city_id, name, population, latitude, longitude, climate,
		       country_id, created_at, updated_at
		FROM cities
		WHERE country_id = $1
		ORDER BY name ASC
	`
	items := make([]models.CityDB, 0)
	if err := querierFromContext(ctx, r.db).SelectContext(ctx, &items, query, countryID); err != nil {
		return nil, translate(err)
	}
	return items, nil
}

// ListSummariesByCountry returns the city summaries embedded in a country
// detail response.
func (r *CityReadRepository) ListSummariesByCountry(ctx context.Context, countryID int64) ([]models.CitySummary, error) {
	const query = `
		SELECT city_id, name, population
		FROM cities
		WHERE country_id = $1
		ORDER BY name ASC
	`
	items := make([]models.CitySummary, 0)
	if err := querierFromContext(ctx, r.db).SelectContext(ctx, &items, query, countryID); err != nil {
		return nil, translate(err)
	}
	return items, nil
}

// GetByID returns a city joined with its country and continent.
func (r *CityReadRepository) GetByID(ctx context.Context, id int64) (*models.CityDetail, error) {
	const query = `
		SELECT ci.city_id, ci.name, ci.population, ci.latitude, ci.longitude,
		       ci.climate, ci.country_id, ci.created_at, ci.updated_at,
		       p.country_id        AS "country.country_id",
		       p.name              AS "country.name",
		       p.capital           AS "country.capital",
		       p.language          AS "country.language",
		       p.official_language AS "country.official_language",
		       p.currency          AS "country.currency",
		       p.iso_code          AS "country.iso_code",
		       p.country_code      AS "country.country_code",
		       p.population        AS "country.population",
		       p.continent_id      AS "country.continent_id",
		       p.created_at        AS "country.created_at",
		       p.updated_at        AS "country.updated_at",
		       c.continent_id AS "country.continent.continent_id",
		       c.name         AS "country.continent.name",
		       c.description  AS "country.continent.description",
		       c.created_at   AS "country.continent.created_at",
		       c.updated_at   AS "country.continent.updated_at"
		FROM cities ci
		JOIN countries p ON p.country_id = ci.country_id
		JOIN continents c ON c.continent_id = p.continent_id
		WHERE ci.city_id = $1
	`
	var city models.CityDetail
	if err := querierFromContext(ctx, r.db).GetContext(ctx, &city, query, id); err != nil {
		return nil, translate(err)
	}
	return &city, nil
}

type CityWriteRepository struct {
	db *sqlx.DB
}

func NewCityWriteRepository(db *sqlx.DB) *CityWriteRepository {
	return &CityWriteRepository{db: db}
}

// CityFields carries the writable columns of a city. Nil fields are unset
// on create and left unchanged on update.
type CityFields struct {
	Name       *string
	Population *int64
	Latitude   *float64
	Longitude  *float64
	Climate    *string
	CountryID  *int64
}

// Create inserts a city and returns the stored row. A missing country
// surfaces as ErrForeignKeyViolation.
func (r *CityWriteRepository) Create(ctx context.Context, f CityFields) (*models.CityDB, error) {
	const query = `
		INSERT INTO cities (name, population, latitude, longitude, climate,
		                    country_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING city_id, name, population, latitude, longitude, climate,
		          country_id, created_at, updated_at
	`
	var city models.CityDB
	err := querierFromContext(ctx, r.db).GetContext(ctx, &city, query,
		f.Name, f.Population, f.Latitude, f.Longitude, f.Climate, f.CountryID)
	if err != nil {
		logger.Log.Errorw("failed to create city", "error", err)
		return nil, translate(err)
	}
	return &city, nil
}

// Update applies a partial update: nil fields are left unchanged.
func (r *CityWriteRepository) Update(ctx context.Context, id int64, f CityFields) (*models.CityDB, error) {
	const query = `
		UPDATE cities
		SET name       = COALESCE($2, name),
		    population = COALESCE($3, population),
		    latitude   = COALESCE($4, latitude),
		    longitude  = COALESCE($5, longitude),
		    climate    = COALESCE($6, climate),
		    country_id = COALESCE($7, country_id),
		    updated_at = NOW()
		WHERE city_id = $1
		RETURNING city_id, name, population, latitude, longitude, climate,
		          country_id, created_at, updated_at
	`
	var city models.CityDB
	err := querierFromContext(ctx, r.db).GetContext(ctx, &city, query, id,
		f.Name, f.Population, f.Latitude, f.Longitude, f.Climate, f.CountryID)
	if err != nil {
		return nil, translate(err)
	}
	return &city, nil
}

// Delete removes a city. Deleting a city with recorded visits fails with
// ErrForeignKeyViolation.
func (r *CityWriteRepository) Delete(ctx context.Context, id int64) error {
	res, err := querierFromContext(ctx, r.db).ExecContext(ctx, `DELETE FROM cities WHERE city_id = $1`, id)
	if err != nil {
		return translate(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
