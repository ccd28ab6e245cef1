package repository

import (
	"context"

	"github.com/oksasatya/unibase/internal/domain/entity"
)

type CategoryFilter struct {
	CreatedByID string
	Page        Page
}

type CategoryRepository interface {
	Create(ctx context.Context, c *entity.Category) error
	GetByID(ctx context.Context, id string) (*entity.Category, error)
	List(ctx context.Context, f CategoryFilter) ([]entity.Category, error)
	NameTaken(ctx context.Context, name, excludeID string) (bool, error)
	Update(ctx context.Context, c *entity.Category) error
	Delete(ctx context.Context, id string) error
}

type RegionFilter struct {
	CreatedByID string
	Page        Page
}

type RegionRepository interface {
	Create(ctx context.Context, r *entity.Region) error
	GetByID(ctx context.Context, id string) (*entity.Region, error)
	List(ctx context.Context, f RegionFilter) ([]entity.Region, error)
	NameTaken(ctx context.Context, name, excludeID string) (bool, error)
	Update(ctx context.Context, r *entity.Region) error
	Delete(ctx context.Context, id string) error
}

type LocationFilter struct {
	RegionID    string
	CreatedByID string
	Page        Page
}

type LocationRepository interface {
	Create(ctx context.Context, l *entity.Location) error
	GetByID(ctx context.Context, id string) (*entity.Location, error)
	List(ctx context.Context, f LocationFilter) ([]entity.Location, error)
	NameTaken(ctx context.Context, name, excludeID string) (bool, error)
	Update(ctx context.Context, l *entity.Location) error
	Delete(ctx context.Context, id string) error
}
