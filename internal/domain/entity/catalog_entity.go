package entity

import "time"

// Category groups universities (e.g. state, private).
type Category struct {
	ID          string
	Name        string
	CreatedByID string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Region struct {
	ID          string
	Name        string
	CreatedByID string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Location always belongs to a Region.
type Location struct {
	ID          string
	Name        string
	RegionID    string
	CreatedByID string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
