package entity

import "time"

type University struct {
	ID               string
	Name             string
	Photo            string
	Video            string
	Description      string
	AmountOfStudents int
	PhoneNumber      string
	Email            string
	Webpage          string
	CategoryID       string
	LocationID       string
	CreatedByID      string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type Department struct {
	ID           string
	Name         string
	Photo        string
	Description  string
	UniversityID string
	CreatedByID  string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Program is an academic program of a department. Clients of the original
// API call it a "deterioration".
type Program struct {
	ID               string
	Name             string
	Photo            string
	Description      string
	NumberOfStudents int
	DepartmentID     string
	CreatedByID      string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Student is a graduate profile attached to a program. Students have no
// creator; only staff write them.
type Student struct {
	ID           string
	Name         string
	Lastname     string
	Photo        string
	Description  string
	WorkingPlace string
	Achievements string
	ProgramID    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
