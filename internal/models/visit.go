package models

import "time"

// VisitDB represents a visit row in the database.
// The (user_id, city_id) pair is unique: a user records a city at most once.
type VisitDB struct {
	VisitID   int64     `json:"id" db:"visit_id"`          // Primary key
	UserID    int64     `json:"userId" db:"user_id"`       // Visiting user
	CityID    int64     `json:"cityId" db:"city_id"`       // Visited city
	VisitDate time.Time `json:"visitDate" db:"visit_date"` // Date of the visit
	Comment   *string   `json:"comment" db:"comment"`      // Optional journal comment
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// VisitListItem is a visit with the visited city, its country and continent.
type VisitListItem struct {
	VisitDB
	City VisitCity `json:"city" db:"city"`
}

// VisitCity is the city shape embedded in visit responses.
type VisitCity struct {
	CityDB
	Country CountryWithContinent `json:"country" db:"country"`
}
