package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"

	"github.com/viagemtrack/travelog/internal/facades"
	"github.com/viagemtrack/travelog/internal/handlers"
	"github.com/viagemtrack/travelog/internal/jwt"
	"github.com/viagemtrack/travelog/internal/logger"
	"github.com/viagemtrack/travelog/internal/middlewares"
	"github.com/viagemtrack/travelog/internal/repositories"
	"github.com/viagemtrack/travelog/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/viagemtrack/travelog/docs"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title travelog API
// @version 1.0.0
// @description REST backend for a travel log: continents, countries, cities, user visits and external geo/weather/flag lookups
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		jwtSecretKey, jwtExpSecond,
		geoBaseURL, geoUsername,
		weatherBaseURL, weatherAPIKey,
		flagBaseURL,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		jwtSecretKey, jwtExpSecond,
		geoBaseURL, geoUsername,
		weatherBaseURL, weatherAPIKey,
		flagBaseURL,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns all
// application, database, JWT, and upstream service configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	jwtSecretKey string, jwtExpSecond int,
	geoBaseURL, geoUsername string,
	weatherBaseURL, weatherAPIKey string,
	flagBaseURL string,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "travelog")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "3600")); err != nil {
		return
	}

	// Upstream services config
	geoBaseURL = getEnv("GEONAMES_BASE_URL", "http://api.geonames.org")
	geoUsername = getEnv("GEONAMES_USERNAME", "demo")
	weatherBaseURL = getEnv("WEATHER_BASE_URL", "https://api.weatherapi.com/v1")
	weatherAPIKey = getEnv("WEATHER_API_KEY", "")
	flagBaseURL = getEnv("FLAG_BASE_URL", "https://flagcdn.com")

	return
}

// run initializes the logger, database, facades, and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	jwtSecretKey string, jwtExpSecond int,
	geoBaseURL, geoUsername string,
	weatherBaseURL, weatherAPIKey string,
	flagBaseURL string,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	log := logger.Log
	log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	log.Infof("Connecting to PostgreSQL at %s:%d/%s", pgHost, pgPort, pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		log.Errorw("PostgreSQL connection error", "error", err)
		return err
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		log.Errorw("PostgreSQL ping failed", "error", err)
		return err
	}

	// Initialize JWT service
	jwtSvc := jwt.New(jwtSecretKey, time.Duration(jwtExpSecond)*time.Second)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	continentReadRepo := repositories.NewContinentReadRepository(db)
	continentWriteRepo := repositories.NewContinentWriteRepository(db)
	countryReadRepo := repositories.NewCountryReadRepository(db)
	countryWriteRepo := repositories.NewCountryWriteRepository(db)
	cityReadRepo := repositories.NewCityReadRepository(db)
	cityWriteRepo := repositories.NewCityWriteRepository(db)
	visitReadRepo := repositories.NewVisitReadRepository(db)
	visitWriteRepo := repositories.NewVisitWriteRepository(db)

	// Initialize facades
	httpClient := &http.Client{Timeout: 10 * time.Second}
	geoFacade := facades.NewGeoNamesFacade(httpClient, geoBaseURL, geoUsername)
	weatherFacade := facades.NewWeatherFacade(httpClient, weatherBaseURL, weatherAPIKey)
	flagFacade := facades.NewFlagFacade(flagBaseURL)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, jwtSvc)
	continentService := services.NewContinentService(continentReadRepo, continentWriteRepo, countryReadRepo)
	countryService := services.NewCountryService(countryReadRepo, countryWriteRepo, cityReadRepo)
	cityService := services.NewCityService(cityReadRepo, cityWriteRepo, visitReadRepo)
	visitService := services.NewVisitService(visitReadRepo, visitWriteRepo)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(log))

	r.Get("/health", handlers.NewHealthHandler(db))

	authMiddleware := middlewares.AuthMiddleware(jwtSvc)

	r.Route("/api", func(r chi.Router) {
		r.Use(middlewares.TxMiddleware(db))

		// Users and auth
		r.Post("/users/register", handlers.NewRegisterHandler(authService))
		r.Post("/users/login", handlers.NewLoginHandler(authService))
		r.With(authMiddleware).Get("/users/{id}", handlers.NewUserProfileHandler(authService))
		r.Get("/users/{id}/visits", handlers.NewListVisitsByUserHandler(visitService))

		// Continents
		r.Get("/continents", handlers.NewListContinentsHandler(continentService))
		r.Get("/continents/{id}", handlers.NewGetContinentHandler(continentService))
		r.Post("/continents", handlers.NewCreateContinentHandler(continentService))
		r.Put("/continents/{id}", handlers.NewUpdateContinentHandler(continentService))
		r.Delete("/continents/{id}", handlers.NewDeleteContinentHandler(continentService))
		r.Get("/continents/{id}/countries", handlers.NewListCountriesByContinentHandler(countryService))

		// Countries
		r.Get("/countries", handlers.NewListCountriesHandler(countryService))
		r.Get("/countries/{id}", handlers.NewGetCountryHandler(countryService))
		r.Post("/countries", handlers.NewCreateCountryHandler(countryService))
		r.Put("/countries/{id}", handlers.NewUpdateCountryHandler(countryService))
		r.Delete("/countries/{id}", handlers.NewDeleteCountryHandler(countryService))
		r.Get("/countries/{id}/cities", handlers.NewListCitiesByCountryHandler(cityService))

		// Cities
		r.Get("/cities", handlers.NewListCitiesHandler(cityService))
		r.Get("/cities/{id}", handlers.NewGetCityHandler(cityService))
		r.Post("/cities", handlers.NewCreateCityHandler(cityService))
		r.Put("/cities/{id}", handlers.NewUpdateCityHandler(cityService))
		r.Delete("/cities/{id}", handlers.NewDeleteCityHandler(cityService))

		// Visits
		r.Get("/visits/check/{userId}/{cityId}", handlers.NewCheckVisitHandler(visitService))
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)
			r.Post("/visits", handlers.NewCreateVisitHandler(visitService))
			r.Put("/visits/{id}", handlers.NewUpdateVisitHandler(visitService))
			r.Delete("/visits/{id}", handlers.NewDeleteVisitHandler(visitService))
		})

		// External service proxies
		r.Route("/external", func(r chi.Router) {
			r.Get("/geonames/countries", handlers.NewGeoCountriesHandler(geoFacade))
			r.Get("/geonames/countries/{code}", handlers.NewGeoCountryByCodeHandler(geoFacade))
			r.Get("/geonames/country-by-name", handlers.NewGeoCountryByNameHandler(geoFacade))
			r.Get("/geonames/cities", handlers.NewGeoCitiesHandler(geoFacade))
			r.Get("/geonames/nearby/{lat}/{lng}", handlers.NewGeoNearbyHandler(geoFacade))
			r.Get("/weather/current/{lat}/{lon}", handlers.NewWeatherByCoordsHandler(weatherFacade))
			r.Get("/weather/city/{name}", handlers.NewWeatherByCityHandler(weatherFacade))
			r.Get("/weather/forecast/{lat}/{lon}", handlers.NewWeatherForecastHandler(weatherFacade))
			r.Get("/flags/{code}", handlers.NewFlagsHandler(flagFacade))
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("HTTP server shutdown error", "error", err)
	}

	log.Info("HTTP server stopped gracefully")
	return nil
}
