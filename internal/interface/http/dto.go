package handlers

import (
	"time"

	"github.com/oksasatya/unibase/internal/domain/entity"
)

type userDTO struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	FullName    string    `json:"full_name"`
	PhoneNumber string    `json:"phone_number"`
	IsStaff     bool      `json:"is_staff"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toUser(u *entity.User) userDTO {
	return userDTO{ID: u.ID, Email: u.Email, FullName: u.FullName, PhoneNumber: u.PhoneNumber, IsStaff: u.IsStaff, CreatedAt: u.CreatedAt, UpdatedAt: u.UpdatedAt}
}

type categoryDTO struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	CreatedByID string    `json:"created_by_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toCategory(c *entity.Category) categoryDTO {
	return categoryDTO{ID: c.ID, Name: c.Name, CreatedByID: c.CreatedByID, CreatedAt: c.CreatedAt, UpdatedAt: c.UpdatedAt}
}

// regions share the category shape
func toRegion(r *entity.Region) categoryDTO {
	return categoryDTO{ID: r.ID, Name: r.Name, CreatedByID: r.CreatedByID, CreatedAt: r.CreatedAt, UpdatedAt: r.UpdatedAt}
}

type locationDTO struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	RegionID    string    `json:"region_id"`
	CreatedByID string    `json:"created_by_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toLocation(l *entity.Location) locationDTO {
	return locationDTO{ID: l.ID, Name: l.Name, RegionID: l.RegionID, CreatedByID: l.CreatedByID, CreatedAt: l.CreatedAt, UpdatedAt: l.UpdatedAt}
}

type universityDTO struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Photo            string    `json:"photo"`
	Video            string    `json:"video"`
	Description      string    `json:"description"`
	AmountOfStudents int       `json:"amount_of_students"`
	PhoneNumber      string    `json:"phone_number"`
	Email            string    `json:"email"`
	Webpage          string    `json:"webpage"`
	CategoryID       string    `json:"category_id"`
	LocationID       string    `json:"location_id"`
	CreatedByID      string    `json:"created_by_id"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func toUniversity(u *entity.University) universityDTO {
	return universityDTO{
		ID:               u.ID,
		Name:             u.Name,
		Photo:            u.Photo,
		Video:            u.Video,
		Description:      u.Description,
		AmountOfStudents: u.AmountOfStudents,
		PhoneNumber:      u.PhoneNumber,
		Email:            u.Email,
		Webpage:          u.Webpage,
		CategoryID:       u.CategoryID,
		LocationID:       u.LocationID,
		CreatedByID:      u.CreatedByID,
		CreatedAt:        u.CreatedAt,
		UpdatedAt:        u.UpdatedAt,
	}
}

type departmentDTO struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Photo        string    `json:"photo"`
	Description  string    `json:"description"`
	UniversityID string    `json:"university_id"`
	CreatedByID  string    `json:"created_by_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func toDepartment(d *entity.Department) departmentDTO {
	return departmentDTO{ID: d.ID, Name: d.Name, Photo: d.Photo, Description: d.Description, UniversityID: d.UniversityID, CreatedByID: d.CreatedByID, CreatedAt: d.CreatedAt, UpdatedAt: d.UpdatedAt}
}

type programDTO struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Photo            string    `json:"photo"`
	Description      string    `json:"description"`
	NumberOfStudents int       `json:"number_of_students"`
	DepartmentID     string    `json:"department_id"`
	CreatedByID      string    `json:"created_by_id"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func toProgram(p *entity.Program) programDTO {
	return programDTO{ID: p.ID, Name: p.Name, Photo: p.Photo, Description: p.Description, NumberOfStudents: p.NumberOfStudents, DepartmentID: p.DepartmentID, CreatedByID: p.CreatedByID, CreatedAt: p.CreatedAt, UpdatedAt: p.UpdatedAt}
}

type studentDTO struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Lastname     string    `json:"lastname"`
	Photo        string    `json:"photo"`
	Description  string    `json:"description"`
	WorkingPlace string    `json:"working_place"`
	Achievements string    `json:"achievements"`
	ProgramID    string    `json:"program_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func toStudent(s *entity.Student) studentDTO {
	return studentDTO{ID: s.ID, Name: s.Name, Lastname: s.Lastname, Photo: s.Photo, Description: s.Description, WorkingPlace: s.WorkingPlace, Achievements: s.Achievements, ProgramID: s.ProgramID, CreatedAt: s.CreatedAt, UpdatedAt: s.UpdatedAt}
}

// studentSummaryDTO is the list shape.
type studentSummaryDTO struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Lastname string `json:"lastname"`
	Photo    string `json:"photo"`
}

func toStudentSummary(s *entity.Student) studentSummaryDTO {
	return studentSummaryDTO{ID: s.ID, Name: s.Name, Lastname: s.Lastname, Photo: s.Photo}
}

type newsDTO struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Photo       string    `json:"photo"`
	Body        string    `json:"body"`
	CreatedByID string    `json:"created_by_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toNews(n *entity.News) newsDTO {
	return newsDTO{ID: n.ID, Title: n.Title, Photo: n.Photo, Body: n.Body, CreatedByID: n.CreatedByID, CreatedAt: n.CreatedAt, UpdatedAt: n.UpdatedAt}
}

type commentDTO struct {
	ID           string    `json:"id"`
	Body         string    `json:"body"`
	UserID       string    `json:"user_id"`
	UniversityID string    `json:"university_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func toComment(c *entity.Comment) commentDTO {
	return commentDTO{ID: c.ID, Body: c.Body, UserID: c.UserID, UniversityID: c.UniversityID, CreatedAt: c.CreatedAt, UpdatedAt: c.UpdatedAt}
}

type favoriteDTO struct {
	ID           string         `json:"id"`
	UniversityID string         `json:"university_id"`
	CreatedAt    time.Time      `json:"created_at"`
	University   *universityDTO `json:"university,omitempty"`
}

func toFavorite(f *entity.Favorite) favoriteDTO {
	return favoriteDTO{ID: f.ID, UniversityID: f.UniversityID, CreatedAt: f.CreatedAt}
}

func toFavoriteEntry(e *entity.FavoriteEntry) favoriteDTO {
	dto := toFavorite(&e.Favorite)
	u := toUniversity(&e.University)
	dto.University = &u
	return dto
}
