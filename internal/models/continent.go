package models

import "time"

// ContinentDB represents a continent row in the database
type ContinentDB struct {
	ContinentID int64     `json:"id" db:"continent_id"`             // Primary key
	Name        string    `json:"name" db:"name"`                   // Unique continent name
	Description *string   `json:"description" db:"description"`     // Free-text description
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`        // Creation timestamp
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`        // Last update timestamp
}

// ContinentListItem is a continent row with its country count, as listed.
type ContinentListItem struct {
	ContinentDB
	CountryCount int64 `json:"countryCount" db:"country_count"`
}

// ContinentSummary is the minimal continent shape embedded in other responses.
type ContinentSummary struct {
	ContinentID int64  `json:"id" db:"continent_id"`
	Name        string `json:"name" db:"name"`
}

// ContinentDetail is a continent with its countries.
type ContinentDetail struct {
	ContinentDB
	Countries []CountrySummary `json:"countries"`
}
