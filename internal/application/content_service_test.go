package application

import (
	"context"
	"testing"

	"github.com/oksasatya/unibase/internal/domain/apperror"
	repo "github.com/oksasatya/unibase/internal/domain/repository"
)

func TestFavoriteAddRepeatRemove(t *testing.T) {
	f := newCatalogFixture(t)
	ctx := context.Background()
	u, err := f.universities().Create(ctx, f.staff, f.universityInput("tuit"))
	if err != nil {
		t.Fatalf("create university: %v", err)
	}
	svc := NewFavoriteService(f.store.Favorites(), f.store.Universities(), f.store, quietLogger())
	a := mustUser(t, f.store, "a@example.com", false)

	if _, err := svc.Add(ctx, a, u.ID); err != nil {
		t.Fatalf("add: %v", err)
	}
	_, err = svc.Add(ctx, a, u.ID)
	wantKind(t, err, apperror.ErrConflict)

	ok, err := svc.Exists(ctx, a, u.ID)
	if err != nil || !ok {
		t.Fatalf("expected favorite to exist: %v", err)
	}
	list, err := svc.List(ctx, a, repo.Page{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 || list[0].University.Name != "tuit" {
		t.Fatalf("unexpected favorites %+v", list)
	}

	if err := svc.Remove(ctx, a, u.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}
	wantKind(t, svc.Remove(ctx, a, u.ID), apperror.ErrNotFound)

	ok, err = svc.Exists(ctx, a, u.ID)
	if err != nil || ok {
		t.Fatalf("expected favorite to be gone: %v", err)
	}
}

func TestFavoriteMissingUniversity(t *testing.T) {
	f := newCatalogFixture(t)
	svc := NewFavoriteService(f.store.Favorites(), f.store.Universities(), f.store, quietLogger())
	_, err := svc.Add(context.Background(), f.staff, "00000000-0000-0000-0000-000000000000")
	wantKind(t, err, apperror.ErrNotFound)
}

func TestCommentsAreAuthorOnly(t *testing.T) {
	f := newCatalogFixture(t)
	ctx := context.Background()
	u, err := f.universities().Create(ctx, f.staff, f.universityInput("tuit"))
	if err != nil {
		t.Fatalf("create university: %v", err)
	}
	svc := NewCommentService(f.store.Comments(), f.store.Universities(), f.store, quietLogger())
	author := mustUser(t, f.store, "author@example.com", false)

	_, err = svc.Create(ctx, author, "00000000-0000-0000-0000-000000000000", "hello")
	wantKind(t, err, apperror.ErrNotFound)
	_, err = svc.Create(ctx, author, u.ID, " ")
	wantKind(t, err, apperror.ErrInvalid)

	c, err := svc.Create(ctx, author, u.ID, "great campus")
	if err != nil {
		t.Fatalf("create comment: %v", err)
	}

	// staff has no override on comments
	_, err = svc.Update(ctx, f.staff, c.ID, "edited by staff")
	wantKind(t, err, apperror.ErrForbidden)
	wantKind(t, svc.Delete(ctx, f.staff, c.ID), apperror.ErrForbidden)

	got, err := svc.Update(ctx, author, c.ID, "great library")
	if err != nil {
		t.Fatalf("author update: %v", err)
	}
	if got.Body != "great library" {
		t.Fatalf("unexpected body %q", got.Body)
	}

	byUni, err := svc.ListByUniversity(ctx, u.ID, repo.Page{})
	if err != nil || len(byUni) != 1 {
		t.Fatalf("list by university: %v %d", err, len(byUni))
	}
	if err := svc.Delete(ctx, author, c.ID); err != nil {
		t.Fatalf("author delete: %v", err)
	}
	mine, err := svc.ListMine(ctx, author, repo.Page{})
	if err != nil || len(mine) != 0 {
		t.Fatalf("expected no comments left: %v %d", err, len(mine))
	}
}

func TestNewsPartialUpdateAndOrdering(t *testing.T) {
	f := newCatalogFixture(t)
	ctx := context.Background()
	svc := NewNewsService(f.store.News(), f.store, quietLogger())
	user := mustUser(t, f.store, "user@example.com", false)

	_, err := svc.Create(ctx, user, NewsInput{Title: "t", Body: "b"})
	wantKind(t, err, apperror.ErrForbidden)
	_, err = svc.Create(ctx, f.staff, NewsInput{Title: "t"})
	wantKind(t, err, apperror.ErrInvalid)

	first, err := svc.Create(ctx, f.staff, NewsInput{Title: "Open day", Photo: "https://cdn/x.png", Body: "Come visit"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	second, err := svc.Create(ctx, f.staff, NewsInput{Title: "Results", Body: "Published"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := svc.Update(ctx, f.staff, first.ID, NewsInput{Title: "Open day 2026"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Title != "Open day 2026" || got.Body != "Come visit" || got.Photo != "https://cdn/x.png" {
		t.Fatalf("partial update lost fields: %+v", got)
	}

	list, err := svc.List(ctx, repo.Page{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 || list[0].ID != second.ID {
		t.Fatalf("expected newest first, got %+v", list)
	}
}
