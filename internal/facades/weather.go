package facades

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/viagemtrack/travelog/internal/logger"
	"github.com/viagemtrack/travelog/internal/models"
)

// WeatherFacade implements current-conditions and forecast lookups against
// a WeatherAPI-compatible HTTP service. Weather is supplementary data: a
// missing API key or an upstream failure yields (nil, nil), never an
// error, so callers render "unavailable" instead of failing the request.
type WeatherFacade struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

// NewWeatherFacade creates a new facade with an HTTP client.
func NewWeatherFacade(client *http.Client, baseURL, apiKey string) *WeatherFacade {
	return &WeatherFacade{client: client, baseURL: baseURL, apiKey: apiKey}
}

func (f *WeatherFacade) get(ctx context.Context, endpoint string, params url.Values, dest interface{}) bool {
	if f.apiKey == "" {
		logger.Log.Warnw("weather API key not configured")
		return false
	}
	params.Set("key", f.apiKey)
	params.Set("aqi", "no")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL+endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return false
	}

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("weather request failed", "endpoint", endpoint, "error", err)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Log.Errorw("weather service returned non-OK status", "endpoint", endpoint, "status", resp.StatusCode)
		return false
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		logger.Log.Errorw("failed to decode weather response", "endpoint", endpoint, "error", err)
		return false
	}
	return true
}

// CurrentByCoords returns current conditions at the coordinates, or nil
// when unavailable.
func (f *WeatherFacade) CurrentByCoords(ctx context.Context, lat, lon float64) (*models.WeatherReport, error) {
	return f.current(ctx, fmt.Sprintf("%s,%s",
		strconv.FormatFloat(lat, 'f', -1, 64),
		strconv.FormatFloat(lon, 'f', -1, 64)))
}

// CurrentByCity returns current conditions for a city name, or nil when
// unavailable.
func (f *WeatherFacade) CurrentByCity(ctx context.Context, city string) (*models.WeatherReport, error) {
	return f.current(ctx, city)
}

func (f *WeatherFacade) current(ctx context.Context, q string) (*models.WeatherReport, error) {
	params := url.Values{}
	params.Set("q", q)
	var report models.WeatherReport
	if !f.get(ctx, "/current.json", params, &report) {
		return nil, nil
	}
	return &report, nil
}

// Forecast returns the multi-day forecast at the coordinates as the
// upstream document, or nil when unavailable.
func (f *WeatherFacade) Forecast(ctx context.Context, lat, lon float64, days int) (json.RawMessage, error) {
	params := url.Values{}
	params.Set("q", fmt.Sprintf("%s,%s",
		strconv.FormatFloat(lat, 'f', -1, 64),
		strconv.FormatFloat(lon, 'f', -1, 64)))
	params.Set("days", strconv.Itoa(days))

	var forecast json.RawMessage
	if !f.get(ctx, "/forecast.json", params, &forecast) {
		return nil, nil
	}
	return forecast, nil
}
