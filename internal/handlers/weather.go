package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/viagemtrack/travelog/internal/models"
)

// WeatherProvider defines the interface that the weather facade must
// implement. A nil report with a nil error means the data is unavailable.
type WeatherProvider interface {
	CurrentByCoords(ctx context.Context, lat, lon float64) (*models.WeatherReport, error)
	CurrentByCity(ctx context.Context, city string) (*models.WeatherReport, error)
	Forecast(ctx context.Context, lat, lon float64, days int) (json.RawMessage, error)
}

const (
	defaultForecastDays = 3
	maxForecastDays     = 10
)

// NewWeatherByCoordsHandler returns an HTTP handler for current weather
// at coordinates.
// @Summary Current weather at coordinates
// @Tags external
// @Produce json
// @Param lat path number true "Latitude in decimal degrees"
// @Param lon path number true "Longitude in decimal degrees"
// @Success 200 {object} models.WeatherReport "Current conditions"
// @Failure 400 {object} handlers.ErrorResponse "Invalid coordinates"
// @Failure 404 {object} handlers.ErrorResponse "Weather data not available"
// @Router /api/external/weather/current/{lat}/{lon} [get]
func NewWeatherByCoordsHandler(weather WeatherProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lat, err := strconv.ParseFloat(chi.URLParam(r, "lat"), 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid coordinates")
			return
		}
		lon, err := strconv.ParseFloat(chi.URLParam(r, "lon"), 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid coordinates")
			return
		}

		report, err := weather.CurrentByCoords(r.Context(), lat, lon)
		if err != nil || report == nil {
			writeError(w, http.StatusNotFound, "Weather data not available")
			return
		}
		writeJSON(w, http.StatusOK, report)
	}
}

// NewWeatherByCityHandler returns an HTTP handler for current weather in
// a named city.
// @Summary Current weather in a city
// @Tags external
// @Produce json
// @Param name path string true "City name"
// @Success 200 {object} models.WeatherReport "Current conditions"
// @Failure 404 {object} handlers.ErrorResponse "Weather data not available"
// @Router /api/external/weather/city/{name} [get]
func NewWeatherByCityHandler(weather WeatherProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "name")

		report, err := weather.CurrentByCity(r.Context(), name)
		if err != nil || report == nil {
			writeError(w, http.StatusNotFound, "Weather data not available")
			return
		}
		writeJSON(w, http.StatusOK, report)
	}
}

// NewWeatherForecastHandler returns an HTTP handler for the multi-day
// forecast at coordinates.
// @Summary Weather forecast at coordinates
// @Tags external
// @Produce json
// @Param lat path number true "Latitude in decimal degrees"
// @Param lon path number true "Longitude in decimal degrees"
// @Param days query int false "Forecast days" default(3)
// @Success 200 {object} object "Forecast document as returned upstream"
// @Failure 400 {object} handlers.ErrorResponse "Invalid coordinates"
// @Failure 404 {object} handlers.ErrorResponse "Weather data not available"
// @Router /api/external/weather/forecast/{lat}/{lon} [get]
func NewWeatherForecastHandler(weather WeatherProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lat, err := strconv.ParseFloat(chi.URLParam(r, "lat"), 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid coordinates")
			return
		}
		lon, err := strconv.ParseFloat(chi.URLParam(r, "lon"), 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid coordinates")
			return
		}

		days := defaultForecastDays
		if v, err := strconv.Atoi(r.URL.Query().Get("days")); err == nil && v > 0 && v <= maxForecastDays {
			days = v
		}

		forecast, err := weather.Forecast(r.Context(), lat, lon, days)
		if err != nil || forecast == nil {
			writeError(w, http.StatusNotFound, "Weather data not available")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(forecast)
	}
}
