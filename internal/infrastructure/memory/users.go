package memory

import (
	"context"

	"github.com/oksasatya/unibase/internal/domain/apperror"
	"github.com/oksasatya/unibase/internal/domain/entity"
	"github.com/oksasatya/unibase/internal/domain/repository"
)

type UserRepository struct{ s *Store }

func (s *Store) Users() *UserRepository { return &UserRepository{s: s} }

func (r *UserRepository) emailTaken(email, excludeID string) bool {
	for id, u := range r.s.users {
		if id != excludeID && u.Email == email {
			return true
		}
	}
	return false
}

func (r *UserRepository) Create(_ context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u.Email = normalizeEmail(u.Email)
	if r.emailTaken(u.Email, "") {
		return apperror.Conflict("email already registered")
	}
	u.ID = newID()
	u.CreatedAt = r.s.now()
	u.UpdatedAt = u.CreatedAt
	r.s.users[u.ID] = *u
	return nil
}

func (r *UserRepository) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, apperror.NotFound("user not found")
	}
	return &u, nil
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	email = normalizeEmail(email)
	for _, u := range r.s.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, apperror.NotFound("user not found")
}

func (r *UserRepository) EmailTaken(_ context.Context, email, excludeID string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.emailTaken(normalizeEmail(email), excludeID), nil
}

func (r *UserRepository) Update(_ context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.users[u.ID]
	if !ok {
		return apperror.NotFound("user not found")
	}
	u.Email = normalizeEmail(u.Email)
	if r.emailTaken(u.Email, u.ID) {
		return apperror.Conflict("email already registered")
	}
	cur.Email, cur.FullName, cur.PhoneNumber, cur.Password = u.Email, u.FullName, u.PhoneNumber, u.Password
	cur.UpdatedAt = r.s.now()
	r.s.users[u.ID] = cur
	*u = cur
	return nil
}

func (r *UserRepository) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[id]; !ok {
		return apperror.NotFound("user not found")
	}
	if msg := r.s.userReference(id); msg != "" {
		return apperror.Conflict(msg)
	}
	delete(r.s.users, id)
	return nil
}

// userReference mirrors the *_created_by_id_fkey, comments_user_id_fkey and
// favorites_user_id_fkey constraints.
func (s *Store) userReference(id string) string {
	for _, c := range s.categories {
		if c.CreatedByID == id {
			return "user still owns categories"
		}
	}
	for _, rg := range s.regions {
		if rg.CreatedByID == id {
			return "user still owns regions"
		}
	}
	for _, l := range s.locations {
		if l.CreatedByID == id {
			return "user still owns locations"
		}
	}
	for _, u := range s.universities {
		if u.CreatedByID == id {
			return "user still owns universities"
		}
	}
	for _, d := range s.departments {
		if d.CreatedByID == id {
			return "user still owns departments"
		}
	}
	for _, p := range s.programs {
		if p.CreatedByID == id {
			return "user still owns programs"
		}
	}
	for _, n := range s.news {
		if n.CreatedByID == id {
			return "user still owns news"
		}
	}
	for _, c := range s.comments {
		if c.UserID == id {
			return "user still owns comments"
		}
	}
	for _, f := range s.favorites {
		if f.UserID == id {
			return "user still has favorites"
		}
	}
	return ""
}

var _ repository.UserRepository = (*UserRepository)(nil)
