package facades

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/viagemtrack/travelog/internal/logger"
	"github.com/viagemtrack/travelog/internal/models"
)

// GeoNamesFacade implements country and city directory lookups against the
// GeoNames HTTP API. Every call hits the upstream service; responses are
// not cached.
type GeoNamesFacade struct {
	client   *http.Client
	baseURL  string
	username string
}

// NewGeoNamesFacade creates a new facade with an HTTP client.
func NewGeoNamesFacade(client *http.Client, baseURL, username string) *GeoNamesFacade {
	return &GeoNamesFacade{client: client, baseURL: baseURL, username: username}
}

// geoNamesCountry is the upstream countryInfoJSON record shape.
// GeoNames serializes country populations as strings.
type geoNamesCountry struct {
	CountryCode  string      `json:"countryCode"`
	CountryName  string      `json:"countryName"`
	Capital      string      `json:"capital"`
	Population   json.Number `json:"population"`
	Languages    string      `json:"languages"`
	CurrencyCode string      `json:"currencyCode"`
}

// geoNamesCity is the upstream searchJSON record shape. Coordinates come
// back as strings and are passed through as-is.
type geoNamesCity struct {
	GeonameID   int64       `json:"geonameId"`
	Name        string      `json:"name"`
	CountryCode string      `json:"countryCode"`
	CountryName string      `json:"countryName"`
	Population  json.Number `json:"population"`
	Lat         string      `json:"lat"`
	Lng         string      `json:"lng"`
}

func (f *GeoNamesFacade) get(ctx context.Context, endpoint string, params url.Values, dest interface{}) error {
	params.Set("username", f.username)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL+endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("geonames request failed", "endpoint", endpoint, "error", err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Log.Errorw("geonames returned non-OK status", "endpoint", endpoint, "status", resp.StatusCode)
		return fmt.Errorf("geonames: unexpected status %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(dest)
}

// Countries returns the full country directory.
func (f *GeoNamesFacade) Countries(ctx context.Context) ([]models.GeoCountry, error) {
	var payload struct {
		Geonames []geoNamesCountry `json:"geonames"`
	}
	params := url.Values{}
	params.Set("lang", "en")
	if err := f.get(ctx, "/countryInfoJSON", params, &payload); err != nil {
		return nil, err
	}

	countries := make([]models.GeoCountry, 0, len(payload.Geonames))
	for _, c := range payload.Geonames {
		countries = append(countries, mapGeoCountry(c))
	}
	return countries, nil
}

// CountryByCode returns the country with the given ISO alpha-2 code, or
// nil when the directory does not know it.
func (f *GeoNamesFacade) CountryByCode(ctx context.Context, code string) (*models.GeoCountry, error) {
	var payload struct {
		Geonames []geoNamesCountry `json:"geonames"`
	}
	params := url.Values{}
	params.Set("country", strings.ToUpper(code))
	params.Set("lang", "en")
	if err := f.get(ctx, "/countryInfoJSON", params, &payload); err != nil {
		return nil, err
	}

	if len(payload.Geonames) == 0 {
		return nil, nil
	}
	country := mapGeoCountry(payload.Geonames[0])
	return &country, nil
}

// CountryByName fetches the full directory and resolves a free-text name
// against it. Returns nil when no candidate matches.
func (f *GeoNamesFacade) CountryByName(ctx context.Context, name string) (*models.GeoCountry, error) {
	countries, err := f.Countries(ctx)
	if err != nil {
		return nil, err
	}
	return MatchCountry(name, countries), nil
}

// SearchCities returns up to max populated places matching the query,
// ranked by population descending.
func (f *GeoNamesFacade) SearchCities(ctx context.Context, query string, max int) ([]models.GeoCity, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("maxRows", strconv.Itoa(max))
	params.Set("featureClass", "P")
	params.Set("orderby", "population")
	params.Set("lang", "en")
	return f.searchCities(ctx, params)
}

// CitiesByCountry returns up to max populated places of a country, ranked
// by population descending.
func (f *GeoNamesFacade) CitiesByCountry(ctx context.Context, countryCode string, max int) ([]models.GeoCity, error) {
	params := url.Values{}
	params.Set("country", strings.ToUpper(countryCode))
	params.Set("maxRows", strconv.Itoa(max))
	params.Set("featureClass", "P")
	params.Set("orderby", "population")
	params.Set("lang", "en")
	return f.searchCities(ctx, params)
}

func (f *GeoNamesFacade) searchCities(ctx context.Context, params url.Values) ([]models.GeoCity, error) {
	var payload struct {
		Geonames []geoNamesCity `json:"geonames"`
	}
	if err := f.get(ctx, "/searchJSON", params, &payload); err != nil {
		return nil, err
	}

	cities := make([]models.GeoCity, 0, len(payload.Geonames))
	for _, c := range payload.Geonames {
		cities = append(cities, mapGeoCity(c))
	}
	return cities, nil
}

// FindNearby returns the nearest named place to the coordinates, or nil
// when the directory knows none.
func (f *GeoNamesFacade) FindNearby(ctx context.Context, lat, lng float64) (*models.GeoCity, error) {
	var payload struct {
		Geonames []geoNamesCity `json:"geonames"`
	}
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lng", strconv.FormatFloat(lng, 'f', -1, 64))
	params.Set("maxRows", "1")
	params.Set("lang", "en")
	if err := f.get(ctx, "/findNearbyPlaceNameJSON", params, &payload); err != nil {
		return nil, err
	}

	if len(payload.Geonames) == 0 {
		return nil, nil
	}
	city := mapGeoCity(payload.Geonames[0])
	return &city, nil
}

func mapGeoCountry(c geoNamesCountry) models.GeoCountry {
	population, _ := c.Population.Int64()
	return models.GeoCountry{
		Code:         c.CountryCode,
		Name:         c.CountryName,
		Capital:      c.Capital,
		Population:   population,
		Languages:    c.Languages,
		CurrencyCode: c.CurrencyCode,
	}
}

func mapGeoCity(c geoNamesCity) models.GeoCity {
	population, _ := c.Population.Int64()
	return models.GeoCity{
		GeonameID:   c.GeonameID,
		Name:        c.Name,
		CountryCode: c.CountryCode,
		CountryName: c.CountryName,
		Population:  population,
		Latitude:    c.Lat,
		Longitude:   c.Lng,
	}
}
