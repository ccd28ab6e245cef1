package repository

import (
	"context"

	"github.com/oksasatya/unibase/internal/domain/entity"
)

type NewsFilter struct {
	CreatedByID string
	Page        Page
}

// NewsRepository lists newest first.
type NewsRepository interface {
	Create(ctx context.Context, n *entity.News) error
	GetByID(ctx context.Context, id string) (*entity.News, error)
	List(ctx context.Context, f NewsFilter) ([]entity.News, error)
	Update(ctx context.Context, n *entity.News) error
	Delete(ctx context.Context, id string) error
}

type CommentFilter struct {
	UserID       string
	UniversityID string
	Page         Page
}

type CommentRepository interface {
	Create(ctx context.Context, c *entity.Comment) error
	GetByID(ctx context.Context, id string) (*entity.Comment, error)
	List(ctx context.Context, f CommentFilter) ([]entity.Comment, error)
	Update(ctx context.Context, c *entity.Comment) error
	Delete(ctx context.Context, id string) error
}

// FavoriteRepository stores (user, university) pairs. Add on an existing pair
// and Remove on an absent one both fail. ListByUser returns each favorite with
// its university, newest first.
type FavoriteRepository interface {
	Add(ctx context.Context, f *entity.Favorite) error
	Remove(ctx context.Context, userID, universityID string) error
	Exists(ctx context.Context, userID, universityID string) (bool, error)
	ListByUser(ctx context.Context, userID string, p Page) ([]entity.FavoriteEntry, error)
}
