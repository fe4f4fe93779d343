package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/viagemtrack/travelog/internal/logger"
	"github.com/viagemtrack/travelog/internal/models"
)

type ContinentReadRepository struct {
	db *sqlx.DB
}

func NewContinentReadRepository(db *sqlx.DB) *ContinentReadRepository {
	return &ContinentReadRepository{db: db}
}

// List returns one page of continents ordered by name, with their country
// counts, plus the total row count.
func (r *ContinentReadRepository) List(ctx context.Context, page, limit int) ([]models.ContinentListItem, int64, error) {
	const query = `
		SELECT c.continent_id, c.name, c.description, c.created_at, c.updated_at,
		       (SELECT COUNT(*) FROM countries p WHERE p.continent_id = c.continent_id) AS country_count
		FROM continents c
		ORDER BY c.name ASC
		LIMIT $1 OFFSET $2
	`
	q := querierFromContext(ctx, r.db)

	items := make([]models.ContinentListItem, 0, limit)
	if err := q.SelectContext(ctx, &items, query, limit, (page-1)*limit); err != nil {
		logger.Log.Errorw("failed to list continents", "error", err)
		return nil, 0, translate(err)
	}

	var total int64
	if err := q.GetContext(ctx, &total, `SELECT COUNT(*) FROM continents`); err != nil {
		return nil, 0, translate(err)
	}

	return items, total, nil
}

// GetByID returns a single continent row.
func (r *ContinentReadRepository) GetByID(ctx context.Context, id int64) (*models.ContinentDB, error) {
	const query = `
		SELECT continent_id, name, description, created_at, updated_at
		FROM continents
		WHERE continent_id = $1
	`
	var c models.ContinentDB
	if err := querierFromContext(ctx, r.db).GetContext(ctx, &c, query, id); err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

type ContinentWriteRepository struct {
	db *sqlx.DB
}

func NewContinentWriteRepository(db *sqlx.DB) *ContinentWriteRepository {
	return &ContinentWriteRepository{db: db}
}

// Create inserts a continent and returns the stored row.
func (r *ContinentWriteRepository) Create(ctx context.Context, name string, description *string) (*models.ContinentDB, error) {
	const query = `
		INSERT INTO continents (name, description, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		RETURNING continent_id, name, description, created_at, updated_at
	`
	var c models.ContinentDB
	if err := querierFromContext(ctx, r.db).GetContext(ctx, &c, query, name, description); err != nil {
		logger.Log.Errorw("failed to create continent", "name", name, "error", err)
		return nil, translate(err)
	}
	return &c, nil
}

// Update applies a partial update: nil fields are left unchanged.
func (r *ContinentWriteRepository) Update(ctx context.Context, id int64, name, description *string) (*models.ContinentDB, error) {
	const query = `
		UPDATE continents
		SET name        = COALESCE($2, name),
		    description = COALESCE($3, description),
		    updated_at  = NOW()
		WHERE continent_id = $1
		RETURNING continent_id, name, description, created_at, updated_at
	`
	var c models.ContinentDB
	if err := querierFromContext(ctx, r.db).GetContext(ctx, &c, query, id, name, description); err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

// Delete removes a continent. Deleting a continent that still owns
// countries fails with ErrForeignKeyViolation.
func (r *ContinentWriteRepository) Delete(ctx context.Context, id int64) error {
	res, err := querierFromContext(ctx, r.db).ExecContext(ctx, `DELETE FROM continents WHERE continent_id = $1`, id)
	if err != nil {
		return translate(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
