package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestUserReadRepository_GetByEmail(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewUserReadRepository(sqlxDB)
	now := time.Now()

	t.Run("found", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"user_id", "name", "email", "password_hash", "created_at"}).
			AddRow(int64(1), "Ana", "ana@example.com", "hash", now)
		mock.ExpectQuery("SELECT (.+) FROM users").
			WithArgs("ana@example.com").
			WillReturnRows(rows)

		user, err := repo.GetByEmail(context.Background(), "ana@example.com")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, int64(1), user.UserID)
		assert.Equal(t, "hash", user.PasswordHash)
	})

	t.Run("absent is nil, not an error", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM users").
			WithArgs("ghost@example.com").
			WillReturnRows(sqlmock.NewRows([]string{"user_id", "name", "email", "password_hash", "created_at"}))

		user, err := repo.GetByEmail(context.Background(), "ghost@example.com")
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("driver error passes through", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM users").
			WithArgs("ana@example.com").
			WillReturnError(errors.New("connection reset"))

		_, err := repo.GetByEmail(context.Background(), "ana@example.com")
		assert.Error(t, err)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserReadRepository_GetProfile(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewUserReadRepository(sqlxDB)

	t.Run("counts visits", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"user_id", "name", "email", "created_at", "visit_count"}).
			AddRow(int64(1), "Ana", "ana@example.com", time.Now(), int64(3))
		mock.ExpectQuery("SELECT (.+) FROM users u").
			WithArgs(int64(1)).
			WillReturnRows(rows)

		profile, err := repo.GetProfile(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, int64(3), profile.VisitCount)
	})

	t.Run("missing user", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM users u").
			WithArgs(int64(2)).
			WillReturnRows(sqlmock.NewRows([]string{"user_id", "name", "email", "created_at", "visit_count"}))

		_, err := repo.GetProfile(context.Background(), 2)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserWriteRepository_Create(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewUserWriteRepository(sqlxDB)

	t.Run("returns stored row", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"user_id", "name", "email", "password_hash", "created_at"}).
			AddRow(int64(7), "Ana", "ana@example.com", "hash", time.Now())
		mock.ExpectQuery("INSERT INTO users").
			WithArgs("Ana", "ana@example.com", "hash").
			WillReturnRows(rows)

		user, err := repo.Create(context.Background(), "Ana", "ana@example.com", "hash")
		require.NoError(t, err)
		assert.Equal(t, int64(7), user.UserID)
	})

	t.Run("duplicate email", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO users").
			WithArgs("Ana", "ana@example.com", "hash").
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

		_, err := repo.Create(context.Background(), "Ana", "ana@example.com", "hash")
		assert.ErrorIs(t, err, ErrUniqueViolation)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTranslate(t *testing.T) {
	assert.NoError(t, translate(nil))
	assert.ErrorIs(t, translate(&pgconn.PgError{Code: "23505"}), ErrUniqueViolation)
	assert.ErrorIs(t, translate(&pgconn.PgError{Code: "23503"}), ErrForeignKeyViolation)

	plain := errors.New("boom")
	assert.Equal(t, plain, translate(plain))
}
