package models

// GeoCountry is a country record from the external directory service
// swagger:model GeoCountry
type GeoCountry struct {
	// ISO-3166 alpha-2 code
	// example: BR
	Code string `json:"code"`

	// Canonical country name
	// example: Brazil
	Name string `json:"name"`

	// Capital city
	// example: Brasília
	Capital string `json:"capital"`

	// Country population
	Population int64 `json:"population"`

	// Comma-separated language codes
	// example: pt-BR,es,en,fr
	Languages string `json:"languages"`

	// ISO-4217 currency code
	// example: BRL
	CurrencyCode string `json:"currencyCode"`
}

// GeoCity is a populated-place record from the external directory service
// swagger:model GeoCity
type GeoCity struct {
	// Directory identifier of the place
	GeonameID int64 `json:"id"`

	// Place name
	// example: São Paulo
	Name string `json:"name"`

	// ISO-3166 alpha-2 code of the containing country
	CountryCode string `json:"countryCode"`

	// Name of the containing country
	CountryName string `json:"countryName"`

	// Place population
	Population int64 `json:"population"`

	// Latitude in decimal degrees, as reported upstream
	Latitude string `json:"latitude"`

	// Longitude in decimal degrees, as reported upstream
	Longitude string `json:"longitude"`
}
