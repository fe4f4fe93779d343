package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/viagemtrack/travelog/internal/logger"
	"github.com/viagemtrack/travelog/internal/models"
)

// CountryDirectory defines the interface that the directory facade must
// implement.
type CountryDirectory interface {
	Countries(ctx context.Context) ([]models.GeoCountry, error)
	CountryByCode(ctx context.Context, code string) (*models.GeoCountry, error)
	CountryByName(ctx context.Context, name string) (*models.GeoCountry, error)
	SearchCities(ctx context.Context, query string, max int) ([]models.GeoCity, error)
	CitiesByCountry(ctx context.Context, countryCode string, max int) ([]models.GeoCity, error)
	FindNearby(ctx context.Context, lat, lng float64) (*models.GeoCity, error)
}

const defaultCityRows = 10

// NewGeoCountriesHandler returns an HTTP handler proxying the country
// directory.
// @Summary List directory countries
// @Description Returns the full country directory from the external geographic service.
// @Tags external
// @Produce json
// @Success 200 {array} models.GeoCountry "Directory countries"
// @Failure 500 {object} handlers.ErrorResponse "Directory unavailable"
// @Router /api/external/geonames/countries [get]
func NewGeoCountriesHandler(directory CountryDirectory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		countries, err := directory.Countries(r.Context())
		if err != nil {
			logger.Log.Errorw("country directory lookup failed", "error", err)
			writeError(w, http.StatusInternalServerError, "Country directory unavailable")
			return
		}
		writeJSON(w, http.StatusOK, countries)
	}
}

// NewGeoCountryByCodeHandler returns an HTTP handler for a single
// directory country by ISO code.
// @Summary Get a directory country by ISO code
// @Tags external
// @Produce json
// @Param code path string true "ISO-3166 alpha-2 code"
// @Success 200 {object} models.GeoCountry "Directory country"
// @Failure 404 {object} handlers.ErrorResponse "Country not available"
// @Failure 500 {object} handlers.ErrorResponse "Directory unavailable"
// @Router /api/external/geonames/countries/{code} [get]
func NewGeoCountryByCodeHandler(directory CountryDirectory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code := chi.URLParam(r, "code")

		country, err := directory.CountryByCode(r.Context(), code)
		if err != nil {
			logger.Log.Errorw("country directory lookup failed", "code", code, "error", err)
			writeError(w, http.StatusInternalServerError, "Country directory unavailable")
			return
		}
		if country == nil {
			writeError(w, http.StatusNotFound, "Country not available")
			return
		}
		writeJSON(w, http.StatusOK, country)
	}
}

// NewGeoCountryByNameHandler returns an HTTP handler resolving a
// free-text country name against the directory.
// @Summary Resolve a country name
// @Description Resolves a possibly partial country name to a directory country. Matching prefers exact names, then name prefixes, then word matches, then substrings.
// @Tags external
// @Produce json
// @Param name query string true "Country name, possibly partial"
// @Success 200 {object} models.GeoCountry "Best matching country"
// @Failure 400 {object} handlers.ErrorResponse "Missing name"
// @Failure 404 {object} handlers.ErrorResponse "No matching country"
// @Failure 500 {object} handlers.ErrorResponse "Directory unavailable"
// @Router /api/external/geonames/country-by-name [get]
func NewGeoCountryByNameHandler(directory CountryDirectory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := r.URL.Query().Get("name")
		if name == "" {
			writeError(w, http.StatusBadRequest, "Name is required")
			return
		}

		country, err := directory.CountryByName(r.Context(), name)
		if err != nil {
			logger.Log.Errorw("country directory lookup failed", "name", name, "error", err)
			writeError(w, http.StatusInternalServerError, "Country directory unavailable")
			return
		}
		if country == nil {
			writeError(w, http.StatusNotFound, "No matching country")
			return
		}
		writeJSON(w, http.StatusOK, country)
	}
}

// NewGeoCitiesHandler returns an HTTP handler for directory city search.
// Either a free-text query or a country code must be given; the query
// wins when both are present.
// @Summary Search directory cities
// @Description Searches populated places by free-text query or lists them by country, ranked by population.
// @Tags external
// @Produce json
// @Param q query string false "Free-text city query"
// @Param country query string false "ISO-3166 alpha-2 code"
// @Param limit query int false "Maximum rows" default(10)
// @Success 200 {array} models.GeoCity "Matching cities"
// @Failure 400 {object} handlers.ErrorResponse "Missing query and country"
// @Failure 500 {object} handlers.ErrorResponse "Directory unavailable"
// @Router /api/external/geonames/cities [get]
func NewGeoCitiesHandler(directory CountryDirectory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("q")
		country := r.URL.Query().Get("country")
		if query == "" && country == "" {
			writeError(w, http.StatusBadRequest, "Either q or country is required")
			return
		}

		max := defaultCityRows
		if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 && v <= maxLimit {
			max = v
		}

		var (
			cities []models.GeoCity
			err    error
		)
		if query != "" {
			cities, err = directory.SearchCities(r.Context(), query, max)
		} else {
			cities, err = directory.CitiesByCountry(r.Context(), country, max)
		}
		if err != nil {
			logger.Log.Errorw("city directory lookup failed", "q", query, "country", country, "error", err)
			writeError(w, http.StatusInternalServerError, "City directory unavailable")
			return
		}
		writeJSON(w, http.StatusOK, cities)
	}
}

// NewGeoNearbyHandler returns an HTTP handler for reverse place lookup.
// @Summary Find the place nearest to coordinates
// @Tags external
// @Produce json
// @Param lat path number true "Latitude in decimal degrees"
// @Param lng path number true "Longitude in decimal degrees"
// @Success 200 {object} models.GeoCity "Nearest place"
// @Failure 400 {object} handlers.ErrorResponse "Invalid coordinates"
// @Failure 404 {object} handlers.ErrorResponse "No place found"
// @Failure 500 {object} handlers.ErrorResponse "Directory unavailable"
// @Router /api/external/geonames/nearby/{lat}/{lng} [get]
func NewGeoNearbyHandler(directory CountryDirectory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lat, err := strconv.ParseFloat(chi.URLParam(r, "lat"), 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid coordinates")
			return
		}
		lng, err := strconv.ParseFloat(chi.URLParam(r, "lng"), 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid coordinates")
			return
		}

		city, err := directory.FindNearby(r.Context(), lat, lng)
		if err != nil {
			logger.Log.Errorw("nearby place lookup failed", "lat", lat, "lng", lng, "error", err)
			writeError(w, http.StatusInternalServerError, "Place directory unavailable")
			return
		}
		if city == nil {
			writeError(w, http.StatusNotFound, "No place found")
			return
		}
		writeJSON(w, http.StatusOK, city)
	}
}
