package models

import "time"

// UserDB represents a user row in the database
type UserDB struct {
	UserID       int64     `json:"id" db:"user_id"`     // Primary key
	Name         string    `json:"name" db:"name"`      // Display name
	Email        string    `json:"email" db:"email"`    // Unique email
	PasswordHash string    `json:"-" db:"password_hash"` // bcrypt hash, never serialized
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

// UserSummary is the minimal user shape embedded in other responses.
type UserSummary struct {
	UserID int64  `json:"id" db:"user_id"`
	Name   string `json:"name" db:"name"`
}

// UserProfile is a user with their visit count.
type UserProfile struct {
	UserID     int64     `json:"id" db:"user_id"`
	Name       string    `json:"name" db:"name"`
	Email      string    `json:"email" db:"email"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
	VisitCount int64     `json:"visitCount" db:"visit_count"`
}
