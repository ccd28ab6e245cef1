package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/oksasatya/unibase/internal/domain/apperror"
	"github.com/oksasatya/unibase/internal/domain/entity"
	"github.com/oksasatya/unibase/internal/domain/repository"
)

func TestStoreEnforcesConstraints(t *testing.T) {
	ctx := context.Background()
	s := New()

	owner := &entity.User{Email: "Owner@Example.local", Password: "hash"}
	if err := s.Users().Create(ctx, owner); err != nil {
		t.Fatalf("create user: %v", err)
	}
	if owner.Email != "owner@example.local" {
		t.Fatalf("expected lowercased email, got %s", owner.Email)
	}
	if err := s.Users().Create(ctx, &entity.User{Email: "owner@example.local"}); !errors.Is(err, apperror.ErrConflict) {
		t.Fatalf("expected duplicate email conflict, got %v", err)
	}

	rg := &entity.Region{Name: "Tashkent", CreatedByID: owner.ID}
	if err := s.Regions().Create(ctx, rg); err != nil {
		t.Fatalf("create region: %v", err)
	}
	if err := s.Locations().Create(ctx, &entity.Location{Name: "Chilanzar", RegionID: "missing", CreatedByID: owner.ID}); !errors.Is(err, apperror.ErrConflict) {
		t.Fatalf("expected missing region to be rejected, got %v", err)
	}
	if err := s.Locations().Create(ctx, &entity.Location{Name: "Chilanzar", RegionID: rg.ID, CreatedByID: owner.ID}); err != nil {
		t.Fatalf("create location: %v", err)
	}
	if err := s.Regions().Delete(ctx, rg.ID); !errors.Is(err, apperror.ErrConflict) {
		t.Fatalf("expected referenced region delete conflict, got %v", err)
	}
	if err := s.Users().Delete(ctx, owner.ID); !errors.Is(err, apperror.ErrConflict) {
		t.Fatalf("expected owner delete conflict, got %v", err)
	}
}

func TestListPaginatesAndNeverReturnsNil(t *testing.T) {
	ctx := context.Background()
	s := New()
	owner := &entity.User{Email: "owner@example.local"}
	_ = s.Users().Create(ctx, owner)

	got, err := s.Categories().List(ctx, repository.CategoryFilter{})
	if err != nil || got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil list, got %v (%v)", got, err)
	}

	for _, name := range []string{"State", "Private", "International"} {
		if err := s.Categories().Create(ctx, &entity.Category{Name: name, CreatedByID: owner.ID}); err != nil {
			t.Fatalf("create category: %v", err)
		}
	}
	got, _ = s.Categories().List(ctx, repository.CategoryFilter{Page: repository.Page{Limit: 2, Offset: 1}})
	if len(got) != 2 || got[0].Name != "Private" || got[1].Name != "State" {
		t.Fatalf("unexpected page %+v", got)
	}
	got, _ = s.Categories().List(ctx, repository.CategoryFilter{Page: repository.Page{Offset: 10}})
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty page past the end")
	}
}

func TestNewsNewestFirst(t *testing.T) {
	ctx := context.Background()
	s := New()
	owner := &entity.User{Email: "owner@example.local"}
	_ = s.Users().Create(ctx, owner)
	for _, title := range []string{"first", "second", "third"} {
		if err := s.News().Create(ctx, &entity.News{Title: title, Body: "b", CreatedByID: owner.ID}); err != nil {
			t.Fatalf("create news: %v", err)
		}
	}
	got, _ := s.News().List(ctx, repository.NewsFilter{})
	if len(got) != 3 || got[0].Title != "third" || got[2].Title != "first" {
		t.Fatalf("unexpected order %+v", got)
	}
}

func TestWithinTxRollsBack(t *testing.T) {
	ctx := context.Background()
	s := New()
	owner := &entity.User{Email: "owner@example.local"}
	if err := s.Users().Create(ctx, owner); err != nil {
		t.Fatalf("create user: %v", err)
	}

	boom := errors.New("boom")
	err := s.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.Categories().Create(ctx, &entity.Category{Name: "Public", CreatedByID: owner.ID}); err != nil {
			return err
		}
		// nested calls share the outer transaction
		return s.WithinTx(ctx, func(ctx context.Context) error {
			if err := s.Regions().Create(ctx, &entity.Region{Name: "Tashkent", CreatedByID: owner.ID}); err != nil {
				return err
			}
			return boom
		})
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if taken, _ := s.Categories().NameTaken(ctx, "Public", ""); taken {
		t.Fatalf("expected rollback to discard the category")
	}
	if taken, _ := s.Regions().NameTaken(ctx, "Tashkent", ""); taken {
		t.Fatalf("expected rollback to discard the nested region")
	}
	if _, err := s.Users().GetByID(ctx, owner.ID); err != nil {
		t.Fatalf("expected rows written before the transaction to survive: %v", err)
	}

	func() {
		defer func() {
			if recover() == nil {
				t.Fatalf("expected panic to propagate")
			}
		}()
		_ = s.WithinTx(ctx, func(ctx context.Context) error {
			_ = s.Categories().Create(ctx, &entity.Category{Name: "Private", CreatedByID: owner.ID})
			panic("boom")
		})
	}()
	if taken, _ := s.Categories().NameTaken(ctx, "Private", ""); taken {
		t.Fatalf("expected panic to roll back the category")
	}

	if err := s.WithinTx(ctx, func(ctx context.Context) error {
		return s.Categories().Create(ctx, &entity.Category{Name: "Public", CreatedByID: owner.ID})
	}); err != nil {
		t.Fatalf("commit: %v", err)
	}
	if taken, _ := s.Categories().NameTaken(ctx, "Public", ""); !taken {
		t.Fatalf("expected committed category to persist")
	}
}
