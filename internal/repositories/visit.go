package repositories

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/viagemtrack/travelog/internal/logger"
	"github.com/viagemtrack/travelog/internal/models"
)

type VisitReadRepository struct {
	db *sqlx.DB
}

func NewVisitReadRepository(db *sqlx.DB) *VisitReadRepository {
	return &VisitReadRepository{db: db}
}

// ListByUser returns one page of a user's visits ordered by visit date,
// newest first, with the visited city, its country and continent.
func (r *VisitReadRepository) ListByUser(ctx context.Context, userID int64, page, limit int) ([]models.VisitListItem, int64, error) {
	const query = `
		SELECT v.visit_id, v.user_id, v.city_id, v.visit_date, v.comment,
		       v.created_at, v.updated_at,
		       ci.city_id    AS "city.city_id",
		       ci.name       AS "city.name",
		       ci.population AS "city.population",
		       ci.latitude   AS "city.latitude",
		       ci.longitude  AS "city.longitude",
		       ci.climate    AS "city.climate",
		       ci.country_id AS "city.country_id",
		       ci.created_at AS "city.created_at",
		       ci.updated_at AS "city.updated_at",
		       p.country_id        AS "city.country.country_id",
		       p.name              AS "city.country.name",
		       p.capital           AS "city.country.capital",
		       p.language          AS "city.country.language",
		       p.official_language AS "city.country.official_language",
		       p.currency          AS "city.country.currency",
		       p.iso_code          AS "city.country.iso_code",
		       p.country_code      AS "city.country.country_code",
		       p.population        AS "city.country.population",
		       p.continent_id      AS "city.country.continent_id",
		       p.created_at        AS "city.country.created_at",
		       p.updated_at        AS "city.country.updated_at",
		       c.continent_id AS "city.country.continent.continent_id",
		       c.name         AS "city.country.continent.name",
		       c.description  AS "city.country.continent.description",
		       c.created_at   AS "city.country.continent.created_at",
		       c.updated_at   AS "city.country.continent.updated_at"
		FROM visits v
		JOIN cities ci ON ci.city_id = v.city_id
		JOIN countries p ON p.country_id = ci.country_id
		JOIN continents c ON c.continent_id = p.continent_id
		WHERE v.user_id = $1
		ORDER BY v.visit_date DESC
		LIMIT $2 OFFSET $3
	`
	q := querierFromContext(ctx, r.db)

	items := make([]models.VisitListItem, 0, limit)
	if err := q.SelectContext(ctx, &items, query, userID, limit, (page-1)*limit); err != nil {
		logger.Log.Errorw("failed to list visits", "user_id", userID, "error", err)
		return nil, 0, translate(err)
	}

	var total int64
	if err := q.GetContext(ctx, &total, `SELECT COUNT(*) FROM visits WHERE user_id = $1`, userID); err != nil {
		return nil, 0, translate(err)
	}

	return items, total, nil
}

// ListByCity returns the visits recorded for a city with their authors.
func (r *VisitReadRepository) ListByCity(ctx context.Context, cityID int64) ([]models.CityVisit, error) {
	const query = `
		SELECT v.visit_id, v.visit_date, v.comment,
		       u.user_id AS "user.user_id",
		       u.name    AS "user.name"
		FROM visits v
		JOIN users u ON u.user_id = v.user_id
		WHERE v.city_id = $1
		ORDER BY v.visit_date DESC
	`
	items := make([]models.CityVisit, 0)
	if err := querierFromContext(ctx, r.db).SelectContext(ctx, &items, query, cityID); err != nil {
		return nil, translate(err)
	}
	return items, nil
}

// GetByID returns a single visit row.
func (r *VisitReadRepository) GetByID(ctx context.Context, id int64) (*models.VisitDB, error) {
	const query = `
		SELECT visit_id, user_id, city_id, visit_date, comment, created_at, updated_at
		FROM visits
		WHERE visit_id = $1
	`
	var v models.VisitDB
	if err := querierFromContext(ctx, r.db).GetContext(ctx, &v, query, id); err != nil {
		return nil, translate(err)
	}
	return &v, nil
}

// GetByUserAndCity returns the visit a user recorded for a city, or
// ErrNotFound when the pair has not been recorded.
func (r *VisitReadRepository) GetByUserAndCity(ctx context.Context, userID, cityID int64) (*models.VisitDB, error) {
	const query = `
		SELECT visit_id, user_id, city_id, visit_date, comment, created_at, updated_at
		FROM visits
		WHERE user_id = $1 AND city_id = $2
	`
	var v models.VisitDB
	if err := querierFromContext(ctx, r.db).GetContext(ctx, &v, query, userID, cityID); err != nil {
		return nil, translate(err)
	}
	return &v, nil
}

type VisitWriteRepository struct {
	db *sqlx.DB
}

func NewVisitWriteRepository(db *sqlx.DB) *VisitWriteRepository {
	return &VisitWriteRepository{db: db}
}

// Create inserts a visit and returns the stored row. A duplicate
// (user, city) pair surfaces as ErrUniqueViolation; a missing user or
// city as ErrForeignKeyViolation.
func (r *VisitWriteRepository) Create(ctx context.Context, userID, cityID int64, visitDate time.Time, comment *string) (*models.VisitDB, error) {
	const query = `
		INSERT INTO visits (user_id, city_id, visit_date, comment, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING visit_id, user_id, city_id, visit_date, comment, created_at, updated_at
	`
	var v models.VisitDB
	if err := querierFromContext(ctx, r.db).GetContext(ctx, &v, query, userID, cityID, visitDate, comment); err != nil {
		logger.Log.Errorw("failed to create visit", "user_id", userID, "city_id", cityID, "error", err)
		return nil, translate(err)
	}
	return &v, nil
}

// Update changes the visit date and/or comment. A nil visitDate leaves the
// date unchanged; the comment is only written when commentSet is true, so
// callers can distinguish "leave as is" from "clear the comment".
func (r *VisitWriteRepository) Update(ctx context.Context, id int64, visitDate *time.Time, comment *string, commentSet bool) (*models.VisitDB, error) {
	const query = `
		UPDATE visits
		SET visit_date = COALESCE($2, visit_date),
		    comment    = CASE WHEN $3::BOOLEAN THEN $4 ELSE comment END,
		    updated_at = NOW()
		WHERE visit_id = $1
		RETURNING visit_id, user_id, city_id, visit_date, comment, created_at, updated_at
	`
	var v models.VisitDB
	if err := querierFromContext(ctx, r.db).GetContext(ctx, &v, query, id, visitDate, commentSet, comment); err != nil {
		return nil, translate(err)
	}
	return &v, nil
}

// Delete removes a visit.
func (r *VisitWriteRepository) Delete(ctx context.Context, id int64) error {
	res, err := querierFromContext(ctx, r.db).ExecContext(ctx, `DELETE FROM visits WHERE visit_id = $1`, id)
	if err != nil {
		return translate(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
