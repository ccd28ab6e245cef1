package repository

import (
	"context"

	"github.com/oksasatya/unibase/internal/domain/entity"
)

// UniversityFilter narrows university lists. Query is a case-insensitive
// substring match on the name.
type UniversityFilter struct {
	CategoryID  string
	LocationID  string
	CreatedByID string
	Query       string
	Page        Page
}

type UniversityRepository interface {
	Create(ctx context.Context, u *entity.University) error
	GetByID(ctx context.Context, id string) (*entity.University, error)
	List(ctx context.Context, f UniversityFilter) ([]entity.University, error)
	NameTaken(ctx context.Context, name, excludeID string) (bool, error)
	EmailTaken(ctx context.Context, email, excludeID string) (bool, error)
	PhoneTaken(ctx context.Context, phone, excludeID string) (bool, error)
	Update(ctx context.Context, u *entity.University) error
	Delete(ctx context.Context, id string) error
}

type DepartmentFilter struct {
	UniversityID string
	CreatedByID  string
	Query        string
	Page         Page
}

type DepartmentRepository interface {
	Create(ctx context.Context, d *entity.Department) error
	GetByID(ctx context.Context, id string) (*entity.Department, error)
	List(ctx context.Context, f DepartmentFilter) ([]entity.Department, error)
	NameTaken(ctx context.Context, name, excludeID string) (bool, error)
	Update(ctx context.Context, d *entity.Department) error
	Delete(ctx context.Context, id string) error
}

type ProgramFilter struct {
	DepartmentID string
	CreatedByID  string
	Query        string
	Page         Page
}

type ProgramRepository interface {
	Create(ctx context.Context, p *entity.Program) error
	GetByID(ctx context.Context, id string) (*entity.Program, error)
	List(ctx context.Context, f ProgramFilter) ([]entity.Program, error)
	NameTaken(ctx context.Context, name, excludeID string) (bool, error)
	Update(ctx context.Context, p *entity.Program) error
	Delete(ctx context.Context, id string) error
}

type StudentFilter struct {
	ProgramID string
	Page      Page
}

type StudentRepository interface {
	Create(ctx context.Context, s *entity.Student) error
	GetByID(ctx context.Context, id string) (*entity.Student, error)
	List(ctx context.Context, f StudentFilter) ([]entity.Student, error)
	Update(ctx context.Context, s *entity.Student) error
	Delete(ctx context.Context, id string) error
}
