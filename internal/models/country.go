package models

import "time"

// CountryDB represents a country row in the database
type CountryDB struct {
	CountryID        int64       `json:"id" db:"country_id"`                     // Primary key
	Name             string      `json:"name" db:"name"`                         // Country name
	Capital          *string     `json:"capital" db:"capital"`                   // Capital city name
	Language         *string     `json:"language" db:"language"`                 // Free-text language list
	OfficialLanguage *string     `json:"officialLanguage" db:"official_language"` // First language token
	Currency         *string     `json:"currency" db:"currency"`                 // Currency name or code
	ISOCode          *string     `json:"isoCode" db:"iso_code"`                  // ISO-3166 alpha-2, upper case
	CountryCode      *string     `json:"countryCode" db:"country_code"`          // Lower-cased alpha-2 code
	Population       *Population `json:"population" db:"population"`             // May exceed 32-bit range
	ContinentID      int64       `json:"continentId" db:"continent_id"`          // Owning continent
	CreatedAt        time.Time   `json:"createdAt" db:"created_at"`
	UpdatedAt        time.Time   `json:"updatedAt" db:"updated_at"`
}

// CountryListItem is a country row with its continent and city count, as listed.
type CountryListItem struct {
	CountryDB
	Continent ContinentSummary `json:"continent" db:"continent"`
	CityCount int64            `json:"cityCount" db:"city_count"`
}

// CountrySummary is the minimal country shape embedded in other responses.
type CountrySummary struct {
	CountryID  int64       `json:"id" db:"country_id"`
	Name       string      `json:"name" db:"name"`
	ISOCode    *string     `json:"isoCode" db:"iso_code"`
	Population *Population `json:"population,omitempty" db:"population"`
}

// CountryDetail is a country with its continent and cities.
type CountryDetail struct {
	CountryDB
	Continent ContinentDB   `json:"continent"`
	Cities    []CitySummary `json:"cities"`
}
