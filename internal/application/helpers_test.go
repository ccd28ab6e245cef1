package application

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/unibase/internal/domain/entity"
	"github.com/oksasatya/unibase/internal/infrastructure/memory"
	"github.com/oksasatya/unibase/pkg/helpers"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func testJWT() *helpers.JWTManager {
	return helpers.NewJWTManager("access-secret", "refresh-secret", "unibase-test", time.Hour, 24*time.Hour)
}

func mustUser(t *testing.T, st *memory.Store, email string, staff bool) *entity.User {
	t.Helper()
	u := &entity.User{Email: email, FullName: email, PhoneNumber: "+10000000", Password: "x", IsStaff: staff}
	if err := st.Users().Create(context.Background(), u); err != nil {
		t.Fatalf("seed user %s: %v", email, err)
	}
	return u
}

func wantKind(t *testing.T, err, kind error) {
	t.Helper()
	if !errors.Is(err, kind) {
		t.Fatalf("expected %v, got %v", kind, err)
	}
}

// catalogFixture creates a staff user plus one category and one location.
type catalogFixture struct {
	store    *memory.Store
	staff    *entity.User
	category *entity.Category
	location *entity.Location
}

func newCatalogFixture(t *testing.T) catalogFixture {
	t.Helper()
	st := memory.New()
	staff := mustUser(t, st, "staff@example.com", true)
	log := quietLogger()
	ctx := context.Background()

	cat, err := NewCategoryService(st.Categories(), st, log).Create(ctx, staff, "Public")
	if err != nil {
		t.Fatalf("create category: %v", err)
	}
	reg, err := NewRegionService(st.Regions(), st, log).Create(ctx, staff, "Tashkent")
	if err != nil {
		t.Fatalf("create region: %v", err)
	}
	loc, err := NewLocationService(st.Locations(), st.Regions(), st, log).Create(ctx, staff, LocationInput{Name: "Chilonzor", RegionID: reg.ID})
	if err != nil {
		t.Fatalf("create location: %v", err)
	}
	return catalogFixture{store: st, staff: staff, category: cat, location: loc}
}

func (f catalogFixture) universities() *UniversityService {
	return NewUniversityService(f.store.Universities(), f.store.Categories(), f.store.Locations(), f.store, quietLogger())
}

func (f catalogFixture) universityInput(name string) UniversityInput {
	return UniversityInput{
		Name:             name,
		PhoneNumber:      "+998-" + name,
		Email:            name + "@uni.example",
		AmountOfStudents: 1200,
		CategoryID:       f.category.ID,
		LocationID:       f.location.ID,
	}
}

