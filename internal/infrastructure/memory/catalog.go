package memory

import (
	"context"

	"github.com/oksasatya/unibase/internal/domain/apperror"
	"github.com/oksasatya/unibase/internal/domain/entity"
	"github.com/oksasatya/unibase/internal/domain/repository"
)

const missingParent = "referenced resource does not exist"

func (s *Store) hasUser(id string) bool {
	_, ok := s.users[id]
	return ok
}

type CategoryRepository struct{ s *Store }

func (s *Store) Categories() *CategoryRepository { return &CategoryRepository{s: s} }

func (r *CategoryRepository) nameTaken(name, excludeID string) bool {
	for id, c := range r.s.categories {
		if id != excludeID && c.Name == name {
			return true
		}
	}
	return false
}

func (r *CategoryRepository) Create(_ context.Context, c *entity.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.nameTaken(c.Name, "") {
		return apperror.Conflict("category name already exists")
	}
	if !r.s.hasUser(c.CreatedByID) {
		return apperror.Conflict(missingParent)
	}
	c.ID = newID()
	c.CreatedAt = r.s.now()
	c.UpdatedAt = c.CreatedAt
	r.s.categories[c.ID] = *c
	return nil
}

func (r *CategoryRepository) GetByID(_ context.Context, id string) (*entity.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.s.categories[id]
	if !ok {
		return nil, apperror.NotFound("category not found")
	}
	return &c, nil
}

func (r *CategoryRepository) List(_ context.Context, f repository.CategoryFilter) ([]entity.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := []entity.Category{}
	for _, c := range r.s.categories {
		if f.CreatedByID == "" || c.CreatedByID == f.CreatedByID {
			out = append(out, c)
		}
	}
	sortByName(out, func(c entity.Category) string { return c.Name })
	return paginate(out, f.Page), nil
}

func (r *CategoryRepository) NameTaken(_ context.Context, name, excludeID string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.nameTaken(name, excludeID), nil
}

func (r *CategoryRepository) Update(_ context.Context, c *entity.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.categories[c.ID]
	if !ok {
		return apperror.NotFound("category not found")
	}
	if r.nameTaken(c.Name, c.ID) {
		return apperror.Conflict("category name already exists")
	}
	cur.Name = c.Name
	cur.UpdatedAt = r.s.now()
	r.s.categories[c.ID] = cur
	*c = cur
	return nil
}

func (r *CategoryRepository) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.categories[id]; !ok {
		return apperror.NotFound("category not found")
	}
	for _, u := range r.s.universities {
		if u.CategoryID == id {
			return apperror.Conflict("category is referenced by universities")
		}
	}
	delete(r.s.categories, id)
	return nil
}

type RegionRepository struct{ s *Store }

func (s *Store) Regions() *RegionRepository { return &RegionRepository{s: s} }

func (r *RegionRepository) nameTaken(name, excludeID string) bool {
	for id, rg := range r.s.regions {
		if id != excludeID && rg.Name == name {
			return true
		}
	}
	return false
}

func (r *RegionRepository) Create(_ context.Context, rg *entity.Region) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.nameTaken(rg.Name, "") {
		return apperror.Conflict("region name already exists")
	}
	if !r.s.hasUser(rg.CreatedByID) {
		return apperror.Conflict(missingParent)
	}
	rg.ID = newID()
	rg.CreatedAt = r.s.now()
	rg.UpdatedAt = rg.CreatedAt
	r.s.regions[rg.ID] = *rg
	return nil
}

func (r *RegionRepository) GetByID(_ context.Context, id string) (*entity.Region, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	rg, ok := r.s.regions[id]
	if !ok {
		return nil, apperror.NotFound("region not found")
	}
	return &rg, nil
}

func (r *RegionRepository) List(_ context.Context, f repository.RegionFilter) ([]entity.Region, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := []entity.Region{}
	for _, rg := range r.s.regions {
		if f.CreatedByID == "" || rg.CreatedByID == f.CreatedByID {
			out = append(out, rg)
		}
	}
	sortByName(out, func(rg entity.Region) string { return rg.Name })
	return paginate(out, f.Page), nil
}

func (r *RegionRepository) NameTaken(_ context.Context, name, excludeID string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.nameTaken(name, excludeID), nil
}

func (r *RegionRepository) Update(_ context.Context, rg *entity.Region) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.regions[rg.ID]
	if !ok {
		return apperror.NotFound("region not found")
	}
	if r.nameTaken(rg.Name, rg.ID) {
		return apperror.Conflict("region name already exists")
	}
	cur.Name = rg.Name
	cur.UpdatedAt = r.s.now()
	r.s.regions[rg.ID] = cur
	*rg = cur
	return nil
}

func (r *RegionRepository) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.regions[id]; !ok {
		return apperror.NotFound("region not found")
	}
	for _, l := range r.s.locations {
		if l.RegionID == id {
			return apperror.Conflict("region is referenced by locations")
		}
	}
	delete(r.s.regions, id)
	return nil
}

type LocationRepository struct{ s *Store }

func (s *Store) Locations() *LocationRepository { return &LocationRepository{s: s} }

func (r *LocationRepository) nameTaken(name, excludeID string) bool {
	for id, l := range r.s.locations {
		if id != excludeID && l.Name == name {
			return true
		}
	}
	return false
}

func (r *LocationRepository) Create(_ context.Context, l *entity.Location) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.nameTaken(l.Name, "") {
		return apperror.Conflict("location name already exists")
	}
	if _, ok := r.s.regions[l.RegionID]; !ok || !r.s.hasUser(l.CreatedByID) {
		return apperror.Conflict(missingParent)
	}
	l.ID = newID()
	l.CreatedAt = r.s.now()
	l.UpdatedAt = l.CreatedAt
	r.s.locations[l.ID] = *l
	return nil
}

func (r *LocationRepository) GetByID(_ context.Context, id string) (*entity.Location, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	l, ok := r.s.locations[id]
	if !ok {
		return nil, apperror.NotFound("location not found")
	}
	return &l, nil
}

func (r *LocationRepository) List(_ context.Context, f repository.LocationFilter) ([]entity.Location, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := []entity.Location{}
	for _, l := range r.s.locations {
		if f.RegionID != "" && l.RegionID != f.RegionID {
			continue
		}
		if f.CreatedByID != "" && l.CreatedByID != f.CreatedByID {
			continue
		}
		out = append(out, l)
	}
	sortByName(out, func(l entity.Location) string { return l.Name })
	return paginate(out, f.Page), nil
}

func (r *LocationRepository) NameTaken(_ context.Context, name, excludeID string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.nameTaken(name, excludeID), nil
}

func (r *LocationRepository) Update(_ context.Context, l *entity.Location) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.locations[l.ID]
	if !ok {
		return apperror.NotFound("location not found")
	}
	if r.nameTaken(l.Name, l.ID) {
		return apperror.Conflict("location name already exists")
	}
	if _, ok := r.s.regions[l.RegionID]; !ok {
		return apperror.Conflict(missingParent)
	}
	cur.Name, cur.RegionID = l.Name, l.RegionID
	cur.UpdatedAt = r.s.now()
	r.s.locations[l.ID] = cur
	*l = cur
	return nil
}

func (r *LocationRepository) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.locations[id]; !ok {
		return apperror.NotFound("location not found")
	}
	for _, u := range r.s.universities {
		if u.LocationID == id {
			return apperror.Conflict("location is referenced by universities")
		}
	}
	delete(r.s.locations, id)
	return nil
}

var (
	_ repository.CategoryRepository = (*CategoryRepository)(nil)
	_ repository.RegionRepository   = (*RegionRepository)(nil)
	_ repository.LocationRepository = (*LocationRepository)(nil)
)
