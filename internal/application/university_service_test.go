package application

import (
	"context"
	"testing"

	"github.com/oksasatya/unibase/internal/domain/apperror"
	repo "github.com/oksasatya/unibase/internal/domain/repository"
)

func TestUniversityCreateAndUpdateRequireCapability(t *testing.T) {
	f := newCatalogFixture(t)
	ctx := context.Background()
	svc := f.universities()
	student := mustUser(t, f.store, "a@example.com", false)

	_, err := svc.Create(ctx, student, f.universityInput("tuit"))
	wantKind(t, err, apperror.ErrForbidden)

	u, err := svc.Create(ctx, f.staff, f.universityInput("tuit"))
	if err != nil {
		t.Fatalf("staff create: %v", err)
	}
	if u.CreatedByID != f.staff.ID {
		t.Fatalf("expected owner %s, got %s", f.staff.ID, u.CreatedByID)
	}

	in := f.universityInput("tuit")
	in.Description = "renamed campus"
	_, err = svc.Update(ctx, student, u.ID, in)
	wantKind(t, err, apperror.ErrForbidden)

	updated, err := svc.Update(ctx, f.staff, u.ID, in)
	if err != nil {
		t.Fatalf("staff update: %v", err)
	}
	if updated.Description != "renamed campus" || updated.CreatedByID != f.staff.ID {
		t.Fatalf("unexpected update result %+v", updated)
	}
}

func TestUniversityUniqueness(t *testing.T) {
	f := newCatalogFixture(t)
	ctx := context.Background()
	svc := f.universities()

	if _, err := svc.Create(ctx, f.staff, f.universityInput("alpha")); err != nil {
		t.Fatalf("create: %v", err)
	}

	dupName := f.universityInput("alpha")
	dupName.Email = "other@uni.example"
	dupName.PhoneNumber = "+1"
	_, err := svc.Create(ctx, f.staff, dupName)
	wantKind(t, err, apperror.ErrConflict)

	dupEmail := f.universityInput("beta")
	dupEmail.Email = "ALPHA@uni.example"
	_, err = svc.Create(ctx, f.staff, dupEmail)
	wantKind(t, err, apperror.ErrConflict)

	dupPhone := f.universityInput("gamma")
	dupPhone.PhoneNumber = "+998-alpha"
	_, err = svc.Create(ctx, f.staff, dupPhone)
	wantKind(t, err, apperror.ErrConflict)

	list, err := svc.List(ctx, repo.UniversityFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 university after rejected creates, got %d", len(list))
	}
}

func TestUniversityUpdateKeepsOwnUniqueValues(t *testing.T) {
	f := newCatalogFixture(t)
	ctx := context.Background()
	svc := f.universities()

	u, err := svc.Create(ctx, f.staff, f.universityInput("alpha"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Update(ctx, f.staff, u.ID, f.universityInput("alpha")); err != nil {
		t.Fatalf("update with unchanged unique fields: %v", err)
	}
}

func TestUniversityMissingParents(t *testing.T) {
	f := newCatalogFixture(t)
	ctx := context.Background()
	svc := f.universities()

	in := f.universityInput("orphan")
	in.CategoryID = "00000000-0000-0000-0000-000000000000"
	_, err := svc.Create(ctx, f.staff, in)
	wantKind(t, err, apperror.ErrNotFound)

	in = f.universityInput("orphan")
	in.LocationID = "00000000-0000-0000-0000-000000000000"
	_, err = svc.Create(ctx, f.staff, in)
	wantKind(t, err, apperror.ErrNotFound)
}

func TestUniversityValidation(t *testing.T) {
	f := newCatalogFixture(t)
	ctx := context.Background()
	svc := f.universities()

	in := f.universityInput("neg")
	in.AmountOfStudents = -1
	_, err := svc.Create(ctx, f.staff, in)
	wantKind(t, err, apperror.ErrInvalid)

	in = f.universityInput("blank")
	in.Name = "   "
	_, err = svc.Create(ctx, f.staff, in)
	wantKind(t, err, apperror.ErrInvalid)
}

func TestUniversityListFilters(t *testing.T) {
	f := newCatalogFixture(t)
	ctx := context.Background()
	svc := f.universities()

	for _, name := range []string{"National University", "State Institute", "Westminster"} {
		if _, err := svc.Create(ctx, f.staff, f.universityInput(name)); err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
	}

	got, err := svc.List(ctx, repo.UniversityFilter{Query: "uni"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || got[0].Name != "National University" {
		t.Fatalf("unexpected search result %+v", got)
	}

	got, err = svc.List(ctx, repo.UniversityFilter{CategoryID: f.category.ID, Page: repo.Page{Limit: 2}})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected page of 2, got %d", len(got))
	}

	got, err = svc.List(ctx, repo.UniversityFilter{Query: "nothing matches"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}

func TestUniversityDeleteByOwnerOrStaff(t *testing.T) {
	f := newCatalogFixture(t)
	ctx := context.Background()
	svc := f.universities()
	other := mustUser(t, f.store, "other@example.com", false)

	u, err := svc.Create(ctx, f.staff, f.universityInput("gone"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	wantKind(t, svc.Delete(ctx, other, u.ID), apperror.ErrForbidden)
	wantKind(t, svc.Delete(ctx, nil, u.ID), apperror.ErrUnauthenticated)
	if err := svc.Delete(ctx, f.staff, u.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	_, err = svc.Get(ctx, u.ID)
	wantKind(t, err, apperror.ErrNotFound)
}

func TestProgramDuplicateNameCreatesNothing(t *testing.T) {
	f := newCatalogFixture(t)
	ctx := context.Background()
	log := quietLogger()

	u, err := f.universities().Create(ctx, f.staff, f.universityInput("tuit"))
	if err != nil {
		t.Fatalf("create university: %v", err)
	}
	departments := NewDepartmentService(f.store.Departments(), f.store.Universities(), f.store, log)
	d, err := departments.Create(ctx, f.staff, DepartmentInput{Name: "Engineering", UniversityID: u.ID})
	if err != nil {
		t.Fatalf("create department: %v", err)
	}

	programs := NewProgramService(f.store.Programs(), f.store.Departments(), f.store, log)
	if _, err := programs.Create(ctx, f.staff, ProgramInput{Name: "Software", DepartmentID: d.ID}); err != nil {
		t.Fatalf("create program: %v", err)
	}
	_, err = programs.Create(ctx, f.staff, ProgramInput{Name: "Software", DepartmentID: d.ID, NumberOfStudents: 3})
	wantKind(t, err, apperror.ErrConflict)

	list, err := programs.List(ctx, repo.ProgramFilter{DepartmentID: d.ID})
	if err != nil {
		t.Fatalf("list programs: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected one program, got %d", len(list))
	}

	_, err = programs.Create(ctx, f.staff, ProgramInput{Name: "Orphan", DepartmentID: u.ID})
	wantKind(t, err, apperror.ErrNotFound)
}

func TestDepartmentOwnerMayEditWithoutStaff(t *testing.T) {
	f := newCatalogFixture(t)
	ctx := context.Background()
	log := quietLogger()

	u, err := f.universities().Create(ctx, f.staff, f.universityInput("tuit"))
	if err != nil {
		t.Fatalf("create university: %v", err)
	}
	departments := NewDepartmentService(f.store.Departments(), f.store.Universities(), f.store, log)
	d, err := departments.Create(ctx, f.staff, DepartmentInput{Name: "Math", UniversityID: u.ID})
	if err != nil {
		t.Fatalf("create department: %v", err)
	}

	// staff status revoked after creation; ownership still allows edits
	demoted := *f.staff
	demoted.IsStaff = false
	got, err := departments.Update(ctx, &demoted, d.ID, DepartmentInput{Name: "Mathematics", UniversityID: u.ID})
	if err != nil {
		t.Fatalf("owner update: %v", err)
	}
	if got.Name != "Mathematics" {
		t.Fatalf("expected renamed department, got %s", got.Name)
	}

	mine, err := departments.ListMine(ctx, f.staff, repo.Page{})
	if err != nil {
		t.Fatalf("list mine: %v", err)
	}
	if len(mine) != 1 {
		t.Fatalf("expected 1 owned department, got %d", len(mine))
	}
}

func TestStudentWritesAreStaffOnly(t *testing.T) {
	f := newCatalogFixture(t)
	ctx := context.Background()
	log := quietLogger()

	u, err := f.universities().Create(ctx, f.staff, f.universityInput("tuit"))
	if err != nil {
		t.Fatalf("create university: %v", err)
	}
	d, err := NewDepartmentService(f.store.Departments(), f.store.Universities(), f.store, log).
		Create(ctx, f.staff, DepartmentInput{Name: "CS", UniversityID: u.ID})
	if err != nil {
		t.Fatalf("create department: %v", err)
	}
	p, err := NewProgramService(f.store.Programs(), f.store.Departments(), f.store, log).
		Create(ctx, f.staff, ProgramInput{Name: "AI", DepartmentID: d.ID})
	if err != nil {
		t.Fatalf("create program: %v", err)
	}

	students := NewStudentService(f.store.Students(), f.store.Programs(), f.store, log)
	user := mustUser(t, f.store, "user@example.com", false)
	in := StudentInput{Name: "Ada", Lastname: "Lovelace", ProgramID: p.ID}

	_, err = students.Create(ctx, user, in)
	wantKind(t, err, apperror.ErrForbidden)

	st, err := students.Create(ctx, f.staff, in)
	if err != nil {
		t.Fatalf("create student: %v", err)
	}
	wantKind(t, students.Delete(ctx, user, st.ID), apperror.ErrForbidden)

	// two students may share a name
	if _, err := students.Create(ctx, f.staff, in); err != nil {
		t.Fatalf("create namesake: %v", err)
	}
	list, err := students.List(ctx, p.ID, repo.Page{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 students, got %d", len(list))
	}
}
