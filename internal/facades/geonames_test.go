package facades

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeoNamesFacade_Countries_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/countryInfoJSON", r.URL.Path)
		assert.Equal(t, "demo", r.URL.Query().Get("username"))
		assert.Equal(t, "en", r.URL.Query().Get("lang"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"geonames":[
			{"countryCode":"BR","countryName":"Brazil","capital":"Brasilia","population":"212559417","languages":"pt-BR,es,en,fr","currencyCode":"BRL"},
			{"countryCode":"PT","countryName":"Portugal","capital":"Lisbon","population":"10305564","languages":"pt-PT,mwl","currencyCode":"EUR"}
		]}`))
	}))
	defer srv.Close()

	facade := NewGeoNamesFacade(srv.Client(), srv.URL, "demo")

	countries, err := facade.Countries(context.Background())
	require.NoError(t, err)
	require.Len(t, countries, 2)
	assert.Equal(t, "BR", countries[0].Code)
	assert.Equal(t, "Brazil", countries[0].Name)
	assert.Equal(t, "Brasilia", countries[0].Capital)
	assert.Equal(t, int64(212559417), countries[0].Population)
	assert.Equal(t, "BRL", countries[0].CurrencyCode)
}

func TestGeoNamesFacade_Countries_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	facade := NewGeoNamesFacade(srv.Client(), srv.URL, "demo")

	countries, err := facade.Countries(context.Background())
	assert.Error(t, err)
	assert.Nil(t, countries)
}

func TestGeoNamesFacade_CountryByCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "BR", r.URL.Query().Get("country"))
		w.Write([]byte(`{"geonames":[{"countryCode":"BR","countryName":"Brazil","capital":"Brasilia","population":"212559417","languages":"pt-BR","currencyCode":"BRL"}]}`))
	}))
	defer srv.Close()

	facade := NewGeoNamesFacade(srv.Client(), srv.URL, "demo")

	country, err := facade.CountryByCode(context.Background(), "br")
	require.NoError(t, err)
	require.NotNil(t, country)
	assert.Equal(t, "Brazil", country.Name)
}

func TestGeoNamesFacade_CountryByCode_Unknown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"geonames":[]}`))
	}))
	defer srv.Close()

	facade := NewGeoNamesFacade(srv.Client(), srv.URL, "demo")

	country, err := facade.CountryByCode(context.Background(), "ZZ")
	require.NoError(t, err)
	assert.Nil(t, country)
}

func TestGeoNamesFacade_CountryByName(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"geonames":[
			{"countryCode":"BA","countryName":"Bosnia and Herzegovina","population":"3280819"},
			{"countryCode":"BR","countryName":"Brazil","population":"212559417"}
		]}`))
	}))
	defer srv.Close()

	facade := NewGeoNamesFacade(srv.Client(), srv.URL, "demo")

	country, err := facade.CountryByName(context.Background(), "Brazil")
	require.NoError(t, err)
	require.NotNil(t, country)
	assert.Equal(t, "BR", country.Code)

	country, err = facade.CountryByName(context.Background(), "atlantis")
	require.NoError(t, err)
	assert.Nil(t, country)
}

func TestGeoNamesFacade_SearchCities(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/searchJSON", r.URL.Path)
		assert.Equal(t, "sao paulo", r.URL.Query().Get("q"))
		assert.Equal(t, "10", r.URL.Query().Get("maxRows"))
		assert.Equal(t, "P", r.URL.Query().Get("featureClass"))
		assert.Equal(t, "population", r.URL.Query().Get("orderby"))

		w.Write([]byte(`{"geonames":[{"geonameId":3448439,"name":"Sao Paulo","countryCode":"BR","countryName":"Brazil","population":"10021295","lat":"-23.5475","lng":"-46.63611"}]}`))
	}))
	defer srv.Close()

	facade := NewGeoNamesFacade(srv.Client(), srv.URL, "demo")

	cities, err := facade.SearchCities(context.Background(), "sao paulo", 10)
	require.NoError(t, err)
	require.Len(t, cities, 1)
	assert.Equal(t, int64(3448439), cities[0].GeonameID)
	assert.Equal(t, "-23.5475", cities[0].Latitude)
	assert.Equal(t, "-46.63611", cities[0].Longitude)
}

func TestGeoNamesFacade_CitiesByCountry(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/searchJSON", r.URL.Path)
		assert.Equal(t, "PT", r.URL.Query().Get("country"))
		w.Write([]byte(`{"geonames":[{"geonameId":2267057,"name":"Lisbon","countryCode":"PT","countryName":"Portugal","population":"517802","lat":"38.71667","lng":"-9.13333"}]}`))
	}))
	defer srv.Close()

	facade := NewGeoNamesFacade(srv.Client(), srv.URL, "demo")

	cities, err := facade.CitiesByCountry(context.Background(), "pt", 5)
	require.NoError(t, err)
	require.Len(t, cities, 1)
	assert.Equal(t, "Lisbon", cities[0].Name)
}

func TestGeoNamesFacade_FindNearby(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/findNearbyPlaceNameJSON", r.URL.Path)
		assert.Equal(t, "-23.5475", r.URL.Query().Get("lat"))
		assert.Equal(t, "1", r.URL.Query().Get("maxRows"))
		w.Write([]byte(`{"geonames":[{"geonameId":3448439,"name":"Sao Paulo","countryCode":"BR","countryName":"Brazil","population":"10021295","lat":"-23.5475","lng":"-46.63611"}]}`))
	}))
	defer srv.Close()

	facade := NewGeoNamesFacade(srv.Client(), srv.URL, "demo")

	city, err := facade.FindNearby(context.Background(), -23.5475, -46.63611)
	require.NoError(t, err)
	require.NotNil(t, city)
	assert.Equal(t, "Sao Paulo", city.Name)
}

func TestGeoNamesFacade_FindNearby_NoPlace(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"geonames":[]}`))
	}))
	defer srv.Close()

	facade := NewGeoNamesFacade(srv.Client(), srv.URL, "demo")

	city, err := facade.FindNearby(context.Background(), 0, 0)
	require.NoError(t, err)
	assert.Nil(t, city)
}
