package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/viagemtrack/travelog/internal/logger"
	"github.com/viagemtrack/travelog/internal/models"
)

type CountryReadRepository struct {
	db *sqlx.DB
}

func NewCountryReadRepository(db *sqlx.DB) *CountryReadRepository {
	return &CountryReadRepository{db: db}
}

const countryListColumns = `
	p.country_id, p.name, p.capital, p.language, p.official_language,
	p.currency, p.iso_code, p.country_code, p.population, p.continent_id,
	p.created_at, p.updated_at,
	c.continent_id AS "continent.continent_id",
	c.name         AS "continent.name",
	(SELECT COUNT(*) FROM cities ci WHERE ci.country_id = p.country_id) AS city_count
`

// List returns one page of countries ordered by name, optionally filtered
// by continent, plus the total row count for the same filter.
func (r *CountryReadRepository) List(ctx context.Context, page, limit int, continentID *int64) ([]models.CountryListItem, int64, error) {
	query := `
		SELECT ` + countryListColumns + `
		FROM countries p
		JOIN continents c ON c.continent_id = p.continent_id
		WHERE ($3::BIGINT IS NULL OR p.continent_id = $3)
		ORDER BY p.name ASC
		LIMIT $1 OFFSET $2
	`
	q := querierFromContext(ctx, r.db)

	items := make([]models.CountryListItem, 0, limit)
	if err := q.SelectContext(ctx, &items, query, limit, (page-1)*limit, continentID); err != nil {
		logger.Log.Errorw("failed to list countries", "error", err)
		return nil, 0, translate(err)
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM countries p WHERE ($1::BIGINT IS NULL OR p.continent_id = $1)`
	if err := q.GetContext(ctx, &total, countQuery, continentID); err != nil {
		return nil, 0, translate(err)
	}

	return items, total, nil
}

// ListByContinent returns all countries of a continent ordered by name.
func (r *CountryReadRepository) ListByContinent(ctx context.Context, continentID int64) ([]models.CountryListItem, error) {
	query := `
		SELECT ` + countryListColumns + `
		FROM countries p
		JOIN continents c ON c.continent_id = p.continent_id
		WHERE p.continent_id = $1
		ORDER BY p.name ASC
	`
	items := make([]models.CountryListItem, 0)
	if err := querierFromContext(ctx, r.db).SelectContext(ctx, &items, query, continentID); err != nil {
		return nil, translate(err)
	}
	return items, nil
}

// ListSummariesByContinent returns the country summaries embedded in a
// continent detail response.
func (r *CountryReadRepository) ListSummariesByContinent(ctx context.Context, continentID int64) ([]models.CountrySummary, error) {
	const query = `
		SELECT country_id, name, iso_code, population
		FROM countries
		WHERE continent_id = $1
		ORDER BY name ASC
	`
	items := make([]models.CountrySummary, 0)
	if err := querierFromContext(ctx, r.db).SelectContext(ctx, &items, query, continentID); err != nil {
		return nil, translate(err)
	}
	return items, nil
}

// GetByID returns a country joined with its continent.
func (r *CountryReadRepository) GetByID(ctx context.Context, id int64) (*models.CountryWithContinent, error) {
	const query = `
		SELECT p.country_id, p.name, p.capital, p.language, p.official_language,
		       p.currency, p.iso_code, p.country_code, p.population, p.continent_id,
		       p.created_at, p.updated_at,
		       c.continent_id AS "continent.continent_id",
		       c.name         AS "continent.name",
		       c.description  AS "continent.description",
		       c.created_at   AS "continent.created_at",
		       c.updated_at   AS "continent.updated_at"
		FROM countries p
		JOIN continents c ON c.continent_id = p.continent_id
		WHERE p.country_id = $1
	`
	var country models.CountryWithContinent
	if err := querierFromContext(ctx, r.db).GetContext(ctx, &country, query, id); err != nil {
		return nil, translate(err)
	}
	return &country, nil
}

type CountryWriteRepository struct {
	db *sqlx.DB
}

func NewCountryWriteRepository(db *sqlx.DB) *CountryWriteRepository {
	return &CountryWriteRepository{db: db}
}

// CountryFields carries the writable columns of a country. Nil fields are
// unset on create and left unchanged on update.
type CountryFields struct {
	Name             *string
	Capital          *string
	Language         *string
	OfficialLanguage *string
	Currency         *string
	ISOCode          *string
	CountryCode      *string
	Population       *int64
	ContinentID      *int64
}

// Create inserts a country and returns the stored row. A missing continent
// surfaces as ErrForeignKeyViolation.
func (r *CountryWriteRepository) Create(ctx context.Context, f CountryFields) (*models.CountryDB, error) {
	const query = `
		INSERT INTO countries (name, capital, language, official_language, currency,
		                       iso_code, country_code, population, continent_id,
		                       created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING country_id, name, capital, language, official_language, currency,
		          iso_code, country_code, population, continent_id, created_at, updated_at
	`
	var country models.CountryDB
	err := querierFromContext(ctx, r.db).GetContext(ctx, &country, query,
		f.Name, f.Capital, f.Language, f.OfficialLanguage, f.Currency,
		f.ISOCode, f.CountryCode, f.Population, f.ContinentID)
	if err != nil {
		logger.Log.Errorw("failed to create country", "error", err)
		return nil, translate(err)
	}
	return &country, nil
}

// Update applies a partial update: nil fields are left unchanged.
func (r *CountryWriteRepository) Update(ctx context.Context, id int64, f CountryFields) (*models.CountryDB, error) {
	const query = `
		UPDATE countries
		SET name              = COALESCE($2, name),
		    capital           = COALESCE($3, capital),
		    language          = COALESCE($4, language),
		    official_language = COALESCE($5, official_language),
		    currency          = COALESCE($6, currency),
		    iso_code          = COALESCE($7, iso_code),
		    country_code      = COALESCE($8, country_code),
		    population        = COALESCE($9, population),
		    continent_id      = COALESCE($10, continent_id),
		    updated_at        = NOW()
		WHERE country_id = $1
		RETURNING country_id, name, capital, language, official_language, currency,
		          iso_code, country_code, population, continent_id, created_at, updated_at
	`
	var country models.CountryDB
	err := querierFromContext(ctx, r.db).GetContext(ctx, &country, query, id,
		f.Name, f.Capital, f.Language, f.OfficialLanguage, f.Currency,
		f.ISOCode, f.CountryCode, f.Population, f.ContinentID)
	if err != nil {
		return nil, translate(err)
	}
	return &country, nil
}

// Delete removes a country. Deleting a country that still owns cities
// fails with ErrForeignKeyViolation.
func (r *CountryWriteRepository) Delete(ctx context.Context, id int64) error {
	res, err := querierFromContext(ctx, r.db).ExecContext(ctx, `DELETE FROM countries WHERE country_id = $1`, id)
	if err != nil {
		return translate(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
