package repositories

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/viagemtrack/travelog/internal/logger"
	"github.com/viagemtrack/travelog/internal/models"
)

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByEmail returns the user with the given email, or nil when no such
// user exists.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	const query = `
		SELECT user_id, name, email, password_hash, created_at
		FROM users
		WHERE email = $1
	`
	var user models.UserDB
	err := querierFromContext(ctx, r.db).GetContext(ctx, &user, query, email)
	if err != nil {
		if errors.Is(translate(err), ErrNotFound) {
			return nil, nil
		}
		return nil, translate(err)
	}
	return &user, nil
}

// GetProfile returns a user with their recorded visit count.
func (r *UserReadRepository) GetProfile(ctx context.Context, id int64) (*models.UserProfile, error) {
	const query = `
		SELECT u.user_id, u.name, u.email, u.created_at,
		       (SELECT COUNT(*) FROM visits v WHERE v.user_id = u.user_id) AS visit_count
		FROM users u
		WHERE u.user_id = $1
	`
	var profile models.UserProfile
	if err := querierFromContext(ctx, r.db).GetContext(ctx, &profile, query, id); err != nil {
		return nil, translate(err)
	}
	return &profile, nil
}

type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Create inserts a user and returns the stored row. A duplicate email
// surfaces as ErrUniqueViolation.
func (r *UserWriteRepository) Create(ctx context.Context, name, email, passwordHash string) (*models.UserDB, error) {
	const query = `
		INSERT INTO users (name, email, password_hash, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING user_id, name, email, password_hash, created_at
	`
	var user models.UserDB
	if err := querierFromContext(ctx, r.db).GetContext(ctx, &user, query, name, email, passwordHash); err != nil {
		logger.Log.Errorw("failed to create user", "email", email, "error", err)
		return nil, translate(err)
	}
	return &user, nil
}
