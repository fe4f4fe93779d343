package models

import "time"

// CityDB represents a city row in the database
type CityDB struct {
	CityID     int64     `json:"id" db:"city_id"`           // Primary key
	Name       string    `json:"name" db:"name"`            // City name
	Population *int64    `json:"population" db:"population"`
	Latitude   *float64  `json:"latitude" db:"latitude"`    // Decimal degrees
	Longitude  *float64  `json:"longitude" db:"longitude"`  // Decimal degrees
	Climate    *string   `json:"climate" db:"climate"`      // Free-text climate descriptor
	CountryID  int64     `json:"countryId" db:"country_id"` // Owning country
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time `json:"updatedAt" db:"updated_at"`
}

// CityListItem is a city row with its country and continent, as listed.
type CityListItem struct {
	CityDB
	Country CityCountryRef `json:"country" db:"country"`
}

// CityCountryRef is the country shape embedded in city list items.
type CityCountryRef struct {
	CountryID int64            `json:"id" db:"country_id"`
	Name      string           `json:"name" db:"name"`
	ISOCode   *string          `json:"isoCode" db:"iso_code"`
	Continent ContinentSummary `json:"continent" db:"continent"`
}

// CitySummary is the minimal city shape embedded in other responses.
type CitySummary struct {
	CityID     int64  `json:"id" db:"city_id"`
	Name       string `json:"name" db:"name"`
	Population *int64 `json:"population" db:"population"`
}

// CityDetail is a city with its country, continent and recorded visits.
type CityDetail struct {
	CityDB
	Country CountryWithContinent `json:"country" db:"country"`
	Visits  []CityVisit          `json:"visits"`
}

// CountryWithContinent is a full country row plus its continent.
type CountryWithContinent struct {
	CountryDB
	Continent ContinentDB `json:"continent" db:"continent"`
}

// CityVisit is a visit entry shown on a city detail page.
type CityVisit struct {
	VisitID   int64       `json:"id" db:"visit_id"`
	VisitDate time.Time   `json:"visitDate" db:"visit_date"`
	Comment   *string     `json:"comment" db:"comment"`
	User      UserSummary `json:"user" db:"user"`
}
