package application

import (
	"context"
	"testing"

	"github.com/oksasatya/unibase/internal/domain/apperror"
	repo "github.com/oksasatya/unibase/internal/domain/repository"
	"github.com/oksasatya/unibase/internal/infrastructure/memory"
)

func TestCategoryLifecycle(t *testing.T) {
	st := memory.New()
	ctx := context.Background()
	staff := mustUser(t, st, "staff@example.com", true)
	user := mustUser(t, st, "user@example.com", false)
	svc := NewCategoryService(st.Categories(), st, quietLogger())

	_, err := svc.Create(ctx, user, "Private")
	wantKind(t, err, apperror.ErrForbidden)
	_, err = svc.Create(ctx, nil, "Private")
	wantKind(t, err, apperror.ErrUnauthenticated)
	_, err = svc.Create(ctx, staff, "  ")
	wantKind(t, err, apperror.ErrInvalid)

	c, err := svc.Create(ctx, staff, " Private ")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if c.Name != "Private" {
		t.Fatalf("expected trimmed name, got %q", c.Name)
	}
	_, err = svc.Create(ctx, staff, "Private")
	wantKind(t, err, apperror.ErrConflict)

	if _, err := svc.Update(ctx, staff, c.ID, "Private"); err != nil {
		t.Fatalf("update to same name: %v", err)
	}
	_, err = svc.Update(ctx, user, c.ID, "Hacked")
	wantKind(t, err, apperror.ErrForbidden)

	mine, err := svc.ListMine(ctx, staff, repo.Page{})
	if err != nil || len(mine) != 1 {
		t.Fatalf("list mine: %v %d", err, len(mine))
	}
	mine, err = svc.ListMine(ctx, user, repo.Page{})
	if err != nil || len(mine) != 0 {
		t.Fatalf("expected nothing owned by user: %v %d", err, len(mine))
	}

	if err := svc.Delete(ctx, staff, c.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	_, err = svc.Get(ctx, c.ID)
	wantKind(t, err, apperror.ErrNotFound)
}

func TestRegionDeleteBlockedByLocations(t *testing.T) {
	st := memory.New()
	ctx := context.Background()
	staff := mustUser(t, st, "staff@example.com", true)
	regions := NewRegionService(st.Regions(), st, quietLogger())
	locations := NewLocationService(st.Locations(), st.Regions(), st, quietLogger())

	r, err := regions.Create(ctx, staff, "Samarkand")
	if err != nil {
		t.Fatalf("create region: %v", err)
	}
	if _, err := locations.Create(ctx, staff, LocationInput{Name: "Old Town", RegionID: r.ID}); err != nil {
		t.Fatalf("create location: %v", err)
	}
	wantKind(t, regions.Delete(ctx, staff, r.ID), apperror.ErrConflict)
}

func TestLocationRequiresRegion(t *testing.T) {
	st := memory.New()
	ctx := context.Background()
	staff := mustUser(t, st, "staff@example.com", true)
	regions := NewRegionService(st.Regions(), st, quietLogger())
	locations := NewLocationService(st.Locations(), st.Regions(), st, quietLogger())

	_, err := locations.Create(ctx, staff, LocationInput{Name: "Nowhere", RegionID: "00000000-0000-0000-0000-000000000000"})
	wantKind(t, err, apperror.ErrNotFound)

	a, _ := regions.Create(ctx, staff, "A")
	b, _ := regions.Create(ctx, staff, "B")
	l, err := locations.Create(ctx, staff, LocationInput{Name: "Center", RegionID: a.ID})
	if err != nil {
		t.Fatalf("create location: %v", err)
	}
	if _, err := locations.Create(ctx, staff, LocationInput{Name: "Suburb", RegionID: b.ID}); err != nil {
		t.Fatalf("create location: %v", err)
	}

	inA, err := locations.List(ctx, a.ID, repo.Page{})
	if err != nil || len(inA) != 1 || inA[0].ID != l.ID {
		t.Fatalf("unexpected region filter result %v %+v", err, inA)
	}
	all, err := locations.List(ctx, "", repo.Page{})
	if err != nil || len(all) != 2 {
		t.Fatalf("expected 2 locations: %v %d", err, len(all))
	}

	moved, err := locations.Update(ctx, staff, l.ID, LocationInput{Name: "Center", RegionID: b.ID})
	if err != nil {
		t.Fatalf("move location: %v", err)
	}
	if moved.RegionID != b.ID {
		t.Fatalf("expected region %s, got %s", b.ID, moved.RegionID)
	}
}
