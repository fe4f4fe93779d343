package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const testSchema = `
CREATE TABLE IF NOT EXISTS continents (
	continent_id BIGSERIAL PRIMARY KEY,
	name VARCHAR(100) NOT NULL UNIQUE,
	description TEXT,
	created_at TIMESTAMP NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS countries (
	country_id BIGSERIAL PRIMARY KEY,
	name VARCHAR(100) NOT NULL,
	capital VARCHAR(100),
	language VARCHAR(100),
	official_language VARCHAR(100),
	currency VARCHAR(50),
	iso_code VARCHAR(2),
	country_code VARCHAR(3),
	population BIGINT,
	continent_id BIGINT NOT NULL REFERENCES continents (continent_id) ON DELETE RESTRICT,
	created_at TIMESTAMP NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS cities (
	city_id BIGSERIAL PRIMARY KEY,
	name VARCHAR(100) NOT NULL,
	population BIGINT,
	latitude DOUBLE PRECISION,
	longitude DOUBLE PRECISION,
	climate VARCHAR(100),
	country_id BIGINT NOT NULL REFERENCES countries (country_id) ON DELETE RESTRICT,
	created_at TIMESTAMP NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS users (
	user_id BIGSERIAL PRIMARY KEY,
	name VARCHAR(100) NOT NULL,
	email VARCHAR(100) NOT NULL UNIQUE,
	password_hash VARCHAR(255) NOT NULL,
	created_at TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS visits (
	visit_id BIGSERIAL PRIMARY KEY,
	user_id BIGINT NOT NULL REFERENCES users (user_id) ON DELETE RESTRICT,
	city_id BIGINT NOT NULL REFERENCES cities (city_id) ON DELETE RESTRICT,
	visit_date TIMESTAMP NOT NULL DEFAULT NOW(),
	comment TEXT,
	created_at TIMESTAMP NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMP NOT NULL DEFAULT NOW(),
	CONSTRAINT visits_user_city_unique UNIQUE (user_id, city_id)
);
`

func setupPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	require.NoError(t, err)

	_, err = db.Exec(testSchema)
	require.NoError(t, err)

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}

// seedGeo inserts one continent, one country and one city and returns
// their ids.
func seedGeo(t *testing.T, db *sqlx.DB) (continentID, countryID, cityID int64) {
	t.Helper()
	ctx := context.Background()

	continent, err := NewContinentWriteRepository(db).Create(ctx, "South America", nil)
	require.NoError(t, err)

	name := "Brazil"
	iso := "BR"
	country, err := NewCountryWriteRepository(db).Create(ctx, CountryFields{
		Name:        &name,
		ISOCode:     &iso,
		ContinentID: &continent.ContinentID,
	})
	require.NoError(t, err)

	cityName := "São Paulo"
	city, err := NewCityWriteRepository(db).Create(ctx, CityFields{
		Name:      &cityName,
		CountryID: &country.CountryID,
	})
	require.NoError(t, err)

	return continent.ContinentID, country.CountryID, city.CityID
}
