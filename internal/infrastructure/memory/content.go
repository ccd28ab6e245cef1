package memory

import (
	"context"
	"time"

	"github.com/oksasatya/unibase/internal/domain/apperror"
	"github.com/oksasatya/unibase/internal/domain/entity"
	"github.com/oksasatya/unibase/internal/domain/repository"
)

type NewsRepository struct{ s *Store }

func (s *Store) News() *NewsRepository { return &NewsRepository{s: s} }

func (r *NewsRepository) Create(_ context.Context, n *entity.News) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if !r.s.hasUser(n.CreatedByID) {
		return apperror.Conflict(missingParent)
	}
	n.ID = newID()
	n.CreatedAt = r.s.now()
	n.UpdatedAt = n.CreatedAt
	r.s.news[n.ID] = *n
	return nil
}

func (r *NewsRepository) GetByID(_ context.Context, id string) (*entity.News, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	n, ok := r.s.news[id]
	if !ok {
		return nil, apperror.NotFound("news not found")
	}
	return &n, nil
}

func (r *NewsRepository) List(_ context.Context, f repository.NewsFilter) ([]entity.News, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := []entity.News{}
	for _, n := range r.s.news {
		if f.CreatedByID == "" || n.CreatedByID == f.CreatedByID {
			out = append(out, n)
		}
	}
	sortNewestFirst(out, func(n entity.News) time.Time { return n.CreatedAt })
	return paginate(out, f.Page), nil
}

func (r *NewsRepository) Update(_ context.Context, n *entity.News) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.news[n.ID]
	if !ok {
		return apperror.NotFound("news not found")
	}
	cur.Title, cur.Photo, cur.Body = n.Title, n.Photo, n.Body
	cur.UpdatedAt = r.s.now()
	r.s.news[n.ID] = cur
	*n = cur
	return nil
}

func (r *NewsRepository) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.news[id]; !ok {
		return apperror.NotFound("news not found")
	}
	delete(r.s.news, id)
	return nil
}

type CommentRepository struct{ s *Store }

func (s *Store) Comments() *CommentRepository { return &CommentRepository{s: s} }

func (r *CommentRepository) Create(_ context.Context, c *entity.Comment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.universities[c.UniversityID]; !ok || !r.s.hasUser(c.UserID) {
		return apperror.Conflict(missingParent)
	}
	c.ID = newID()
	c.CreatedAt = r.s.now()
	c.UpdatedAt = c.CreatedAt
	r.s.comments[c.ID] = *c
	return nil
}

func (r *CommentRepository) GetByID(_ context.Context, id string) (*entity.Comment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.s.comments[id]
	if !ok {
		return nil, apperror.NotFound("comment not found")
	}
	return &c, nil
}

func (r *CommentRepository) List(_ context.Context, f repository.CommentFilter) ([]entity.Comment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := []entity.Comment{}
	for _, c := range r.s.comments {
		if f.UserID != "" && c.UserID != f.UserID {
			continue
		}
		if f.UniversityID != "" && c.UniversityID != f.UniversityID {
			continue
		}
		out = append(out, c)
	}
	sortNewestFirst(out, func(c entity.Comment) time.Time { return c.CreatedAt })
	return paginate(out, f.Page), nil
}

func (r *CommentRepository) Update(_ context.Context, c *entity.Comment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.comments[c.ID]
	if !ok {
		return apperror.NotFound("comment not found")
	}
	cur.Body = c.Body
	cur.UpdatedAt = r.s.now()
	r.s.comments[c.ID] = cur
	*c = cur
	return nil
}

func (r *CommentRepository) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.comments[id]; !ok {
		return apperror.NotFound("comment not found")
	}
	delete(r.s.comments, id)
	return nil
}

type FavoriteRepository struct{ s *Store }

func (s *Store) Favorites() *FavoriteRepository { return &FavoriteRepository{s: s} }

func (r *FavoriteRepository) find(userID, universityID string) (string, bool) {
	for id, f := range r.s.favorites {
		if f.UserID == userID && f.UniversityID == universityID {
			return id, true
		}
	}
	return "", false
}

func (r *FavoriteRepository) Add(_ context.Context, f *entity.Favorite) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.find(f.UserID, f.UniversityID); ok {
		return apperror.Conflict("university already in favorites")
	}
	if _, ok := r.s.universities[f.UniversityID]; !ok || !r.s.hasUser(f.UserID) {
		return apperror.Conflict(missingParent)
	}
	f.ID = newID()
	f.CreatedAt = r.s.now()
	r.s.favorites[f.ID] = *f
	return nil
}

func (r *FavoriteRepository) Remove(_ context.Context, userID, universityID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	id, ok := r.find(userID, universityID)
	if !ok {
		return apperror.NotFound("university not in favorites")
	}
	delete(r.s.favorites, id)
	return nil
}

func (r *FavoriteRepository) Exists(_ context.Context, userID, universityID string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	_, ok := r.find(userID, universityID)
	return ok, nil
}

func (r *FavoriteRepository) ListByUser(_ context.Context, userID string, p repository.Page) ([]entity.FavoriteEntry, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := []entity.FavoriteEntry{}
	for _, f := range r.s.favorites {
		if f.UserID != userID {
			continue
		}
		u, ok := r.s.universities[f.UniversityID]
		if !ok {
			continue
		}
		out = append(out, entity.FavoriteEntry{Favorite: f, University: u})
	}
	sortNewestFirst(out, func(e entity.FavoriteEntry) time.Time { return e.Favorite.CreatedAt })
	return paginate(out, p), nil
}

var (
	_ repository.NewsRepository     = (*NewsRepository)(nil)
	_ repository.CommentRepository  = (*CommentRepository)(nil)
	_ repository.FavoriteRepository = (*FavoriteRepository)(nil)
)
