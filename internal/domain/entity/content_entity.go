package entity

import "time"

type News struct {
	ID          string
	Title       string
	Photo       string
	Body        string
	CreatedByID string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Comment is owned by its author; staff get no override.
type Comment struct {
	ID           string
	Body         string
	UserID       string
	UniversityID string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Favorite is a user-to-university bookmark, unique per pair.
type Favorite struct {
	ID           string
	UserID       string
	UniversityID string
	CreatedAt    time.Time
}

// FavoriteEntry is a favorite together with the university it points at.
type FavoriteEntry struct {
	Favorite   Favorite
	University University
}
