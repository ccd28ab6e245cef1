package memory

import (
	"context"

	"github.com/oksasatya/unibase/internal/domain/apperror"
	"github.com/oksasatya/unibase/internal/domain/entity"
	"github.com/oksasatya/unibase/internal/domain/repository"
)

type UniversityRepository struct{ s *Store }

func (s *Store) Universities() *UniversityRepository { return &UniversityRepository{s: s} }

// uniqueMessage mirrors the three universities unique constraints.
func (r *UniversityRepository) uniqueMessage(u *entity.University) string {
	for id, other := range r.s.universities {
		if id == u.ID {
			continue
		}
		switch {
		case other.Name == u.Name:
			return "university name already exists"
		case other.Email == u.Email:
			return "university email already exists"
		case other.PhoneNumber == u.PhoneNumber:
			return "university phone number already exists"
		}
	}
	return ""
}

func (r *UniversityRepository) parentsExist(u *entity.University) bool {
	_, cat := r.s.categories[u.CategoryID]
	_, loc := r.s.locations[u.LocationID]
	return cat && loc
}

func (r *UniversityRepository) Create(_ context.Context, u *entity.University) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u.ID = ""
	u.Email = normalizeEmail(u.Email)
	if msg := r.uniqueMessage(u); msg != "" {
		return apperror.Conflict(msg)
	}
	if !r.parentsExist(u) || !r.s.hasUser(u.CreatedByID) {
		return apperror.Conflict(missingParent)
	}
	u.ID = newID()
	u.CreatedAt = r.s.now()
	u.UpdatedAt = u.CreatedAt
	r.s.universities[u.ID] = *u
	return nil
}

func (r *UniversityRepository) GetByID(_ context.Context, id string) (*entity.University, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	u, ok := r.s.universities[id]
	if !ok {
		return nil, apperror.NotFound("university not found")
	}
	return &u, nil
}

func (r *UniversityRepository) List(_ context.Context, f repository.UniversityFilter) ([]entity.University, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := []entity.University{}
	for _, u := range r.s.universities {
		if f.CategoryID != "" && u.CategoryID != f.CategoryID {
			continue
		}
		if f.LocationID != "" && u.LocationID != f.LocationID {
			continue
		}
		if f.CreatedByID != "" && u.CreatedByID != f.CreatedByID {
			continue
		}
		if !containsFold(u.Name, f.Query) {
			continue
		}
		out = append(out, u)
	}
	sortByName(out, func(u entity.University) string { return u.Name })
	return paginate(out, f.Page), nil
}

func (r *UniversityRepository) taken(excludeID string, match func(entity.University) bool) bool {
	for id, u := range r.s.universities {
		if id != excludeID && match(u) {
			return true
		}
	}
	return false
}

func (r *UniversityRepository) NameTaken(_ context.Context, name, excludeID string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.taken(excludeID, func(u entity.University) bool { return u.Name == name }), nil
}

func (r *UniversityRepository) EmailTaken(_ context.Context, email, excludeID string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	email = normalizeEmail(email)
	return r.taken(excludeID, func(u entity.University) bool { return u.Email == email }), nil
}

func (r *UniversityRepository) PhoneTaken(_ context.Context, phone, excludeID string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.taken(excludeID, func(u entity.University) bool { return u.PhoneNumber == phone }), nil
}

func (r *UniversityRepository) Update(_ context.Context, u *entity.University) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.universities[u.ID]
	if !ok {
		return apperror.NotFound("university not found")
	}
	u.Email = normalizeEmail(u.Email)
	if msg := r.uniqueMessage(u); msg != "" {
		return apperror.Conflict(msg)
	}
	if !r.parentsExist(u) {
		return apperror.Conflict(missingParent)
	}
	u.CreatedByID, u.CreatedAt = cur.CreatedByID, cur.CreatedAt
	u.UpdatedAt = r.s.now()
	r.s.universities[u.ID] = *u
	return nil
}

func (r *UniversityRepository) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.universities[id]; !ok {
		return apperror.NotFound("university not found")
	}
	for _, d := range r.s.departments {
		if d.UniversityID == id {
			return apperror.Conflict("university is referenced by departments")
		}
	}
	for _, c := range r.s.comments {
		if c.UniversityID == id {
			return apperror.Conflict("university is referenced by comments")
		}
	}
	for _, f := range r.s.favorites {
		if f.UniversityID == id {
			return apperror.Conflict("university is referenced by favorites")
		}
	}
	delete(r.s.universities, id)
	return nil
}

type DepartmentRepository struct{ s *Store }

func (s *Store) Departments() *DepartmentRepository { return &DepartmentRepository{s: s} }

func (r *DepartmentRepository) nameTaken(name, excludeID string) bool {
	for id, d := range r.s.departments {
		if id != excludeID && d.Name == name {
			return true
		}
	}
	return false
}

func (r *DepartmentRepository) Create(_ context.Context, d *entity.Department) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.nameTaken(d.Name, "") {
		return apperror.Conflict("department name already exists")
	}
	if _, ok := r.s.universities[d.UniversityID]; !ok || !r.s.hasUser(d.CreatedByID) {
		return apperror.Conflict(missingParent)
	}
	d.ID = newID()
	d.CreatedAt = r.s.now()
	d.UpdatedAt = d.CreatedAt
	r.s.departments[d.ID] = *d
	return nil
}

func (r *DepartmentRepository) GetByID(_ context.Context, id string) (*entity.Department, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	d, ok := r.s.departments[id]
	if !ok {
		return nil, apperror.NotFound("department not found")
	}
	return &d, nil
}

func (r *DepartmentRepository) List(_ context.Context, f repository.DepartmentFilter) ([]entity.Department, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := []entity.Department{}
	for _, d := range r.s.departments {
		if f.UniversityID != "" && d.UniversityID != f.UniversityID {
			continue
		}
		if f.CreatedByID != "" && d.CreatedByID != f.CreatedByID {
			continue
		}
		if !containsFold(d.Name, f.Query) {
			continue
		}
		out = append(out, d)
	}
	sortByName(out, func(d entity.Department) string { return d.Name })
	return paginate(out, f.Page), nil
}

func (r *DepartmentRepository) NameTaken(_ context.Context, name, excludeID string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.nameTaken(name, excludeID), nil
}

func (r *DepartmentRepository) Update(_ context.Context, d *entity.Department) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.departments[d.ID]
	if !ok {
		return apperror.NotFound("department not found")
	}
	if r.nameTaken(d.Name, d.ID) {
		return apperror.Conflict("department name already exists")
	}
	if _, ok := r.s.universities[d.UniversityID]; !ok {
		return apperror.Conflict(missingParent)
	}
	d.CreatedByID, d.CreatedAt = cur.CreatedByID, cur.CreatedAt
	d.UpdatedAt = r.s.now()
	r.s.departments[d.ID] = *d
	return nil
}

func (r *DepartmentRepository) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.departments[id]; !ok {
		return apperror.NotFound("department not found")
	}
	for _, p := range r.s.programs {
		if p.DepartmentID == id {
			return apperror.Conflict("department is referenced by programs")
		}
	}
	delete(r.s.departments, id)
	return nil
}

type ProgramRepository struct{ s *Store }

func (s *Store) Programs() *ProgramRepository { return &ProgramRepository{s: s} }

func (r *ProgramRepository) nameTaken(name, excludeID string) bool {
	for id, p := range r.s.programs {
		if id != excludeID && p.Name == name {
			return true
		}
	}
	return false
}

func (r *ProgramRepository) Create(_ context.Context, p *entity.Program) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.nameTaken(p.Name, "") {
		return apperror.Conflict("program name already exists")
	}
	if _, ok := r.s.departments[p.DepartmentID]; !ok || !r.s.hasUser(p.CreatedByID) {
		return apperror.Conflict(missingParent)
	}
	p.ID = newID()
	p.CreatedAt = r.s.now()
	p.UpdatedAt = p.CreatedAt
	r.s.programs[p.ID] = *p
	return nil
}

func (r *ProgramRepository) GetByID(_ context.Context, id string) (*entity.Program, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.programs[id]
	if !ok {
		return nil, apperror.NotFound("program not found")
	}
	return &p, nil
}

func (r *ProgramRepository) List(_ context.Context, f repository.ProgramFilter) ([]entity.Program, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := []entity.Program{}
	for _, p := range r.s.programs {
		if f.DepartmentID != "" && p.DepartmentID != f.DepartmentID {
			continue
		}
		if f.CreatedByID != "" && p.CreatedByID != f.CreatedByID {
			continue
		}
		if !containsFold(p.Name, f.Query) {
			continue
		}
		out = append(out, p)
	}
	sortByName(out, func(p entity.Program) string { return p.Name })
	return paginate(out, f.Page), nil
}

func (r *ProgramRepository) NameTaken(_ context.Context, name, excludeID string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.nameTaken(name, excludeID), nil
}

func (r *ProgramRepository) Update(_ context.Context, p *entity.Program) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.programs[p.ID]
	if !ok {
		return apperror.NotFound("program not found")
	}
	if r.nameTaken(p.Name, p.ID) {
		return apperror.Conflict("program name already exists")
	}
	if _, ok := r.s.departments[p.DepartmentID]; !ok {
		return apperror.Conflict(missingParent)
	}
	p.CreatedByID, p.CreatedAt = cur.CreatedByID, cur.CreatedAt
	p.UpdatedAt = r.s.now()
	r.s.programs[p.ID] = *p
	return nil
}

func (r *ProgramRepository) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.programs[id]; !ok {
		return apperror.NotFound("program not found")
	}
	for _, st := range r.s.students {
		if st.ProgramID == id {
			return apperror.Conflict("program is referenced by students")
		}
	}
	delete(r.s.programs, id)
	return nil
}

type StudentRepository struct{ s *Store }

func (s *Store) Students() *StudentRepository { return &StudentRepository{s: s} }

func (r *StudentRepository) Create(_ context.Context, st *entity.Student) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.programs[st.ProgramID]; !ok {
		return apperror.Conflict(missingParent)
	}
	st.ID = newID()
	st.CreatedAt = r.s.now()
	st.UpdatedAt = st.CreatedAt
	r.s.students[st.ID] = *st
	return nil
}

func (r *StudentRepository) GetByID(_ context.Context, id string) (*entity.Student, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	st, ok := r.s.students[id]
	if !ok {
		return nil, apperror.NotFound("student not found")
	}
	return &st, nil
}

func (r *StudentRepository) List(_ context.Context, f repository.StudentFilter) ([]entity.Student, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := []entity.Student{}
	for _, st := range r.s.students {
		if f.ProgramID == "" || st.ProgramID == f.ProgramID {
			out = append(out, st)
		}
	}
	sortByName(out, func(st entity.Student) string { return st.Lastname + "\x00" + st.Name })
	return paginate(out, f.Page), nil
}

func (r *StudentRepository) Update(_ context.Context, st *entity.Student) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.students[st.ID]
	if !ok {
		return apperror.NotFound("student not found")
	}
	if _, ok := r.s.programs[st.ProgramID]; !ok {
		return apperror.Conflict(missingParent)
	}
	st.CreatedAt = cur.CreatedAt
	st.UpdatedAt = r.s.now()
	r.s.students[st.ID] = *st
	return nil
}

func (r *StudentRepository) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.students[id]; !ok {
		return apperror.NotFound("student not found")
	}
	delete(r.s.students, id)
	return nil
}

var (
	_ repository.UniversityRepository = (*UniversityRepository)(nil)
	_ repository.DepartmentRepository = (*DepartmentRepository)(nil)
	_ repository.ProgramRepository    = (*ProgramRepository)(nil)
	_ repository.StudentRepository    = (*StudentRepository)(nil)
)
