package postgres

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/oksasatya/unibase/internal/domain/apperror"
	"github.com/oksasatya/unibase/internal/domain/repository"
)

func TestWhereBuildsPositionalArgs(t *testing.T) {
	var w where
	w.eq("category_id", "c1")
	w.eq("location_id", "")
	w.contains("name", " tash_50% ")
	sql := w.String() + w.page(repository.Page{Limit: 500, Offset: -3})

	want := " WHERE category_id = $1 AND name ILIKE $2 LIMIT $3 OFFSET $4"
	if sql != want {
		t.Fatalf("unexpected sql %q", sql)
	}
	if len(w.args) != 4 {
		t.Fatalf("expected 4 args, got %d", len(w.args))
	}
	if w.args[1] != `%tash\_50\%%` {
		t.Fatalf("expected escaped pattern, got %v", w.args[1])
	}
	if w.args[2] != repository.MaxLimit || w.args[3] != 0 {
		t.Fatalf("expected clamped page, got %v %v", w.args[2], w.args[3])
	}
}

func TestWhereEmpty(t *testing.T) {
	var w where
	if w.String() != "" {
		t.Fatalf("expected no where clause")
	}
	if got := w.page(repository.Page{}); got != " LIMIT $1 OFFSET $2" {
		t.Fatalf("unexpected page sql %q", got)
	}
	if w.args[0] != repository.DefaultLimit {
		t.Fatalf("expected default limit, got %v", w.args[0])
	}
}

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		err  error
		kind error
		msg  string
	}{
		{"no rows", pgx.ErrNoRows, apperror.ErrNotFound, "category not found"},
		{"unique", &pgconn.PgError{Code: "23505", ConstraintName: "universities_email_key"}, apperror.ErrConflict, "university email already exists"},
		{"unique unknown constraint", &pgconn.PgError{Code: "23505"}, apperror.ErrConflict, "resource already exists"},
		{"foreign key", &pgconn.PgError{Code: "23503", ConstraintName: "locations_region_id_fkey"}, apperror.ErrConflict, "region is referenced by locations"},
		{"missing parent", &pgconn.PgError{Code: "23503", ConstraintName: "locations_region_id_fkey",
			Message: `insert or update on table "locations" violates foreign key constraint "locations_region_id_fkey"`},
			apperror.ErrConflict, "referenced resource does not exist"},
		{"bad uuid", &pgconn.PgError{Code: "22P02"}, apperror.ErrInvalid, "malformed identifier"},
		{"check", &pgconn.PgError{Code: "23514"}, apperror.ErrInvalid, "value out of range"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := classify(tc.err, "category not found")
			if !errors.Is(err, tc.kind) {
				t.Fatalf("expected %v, got %v", tc.kind, err)
			}
			if got := apperror.Message(err, ""); got != tc.msg {
				t.Fatalf("expected message %q, got %q", tc.msg, got)
			}
		})
	}

	other := errors.New("connection refused")
	if classify(other, "") != other {
		t.Fatalf("expected unknown errors to pass through")
	}
	if classify(nil, "") != nil {
		t.Fatalf("expected nil to stay nil")
	}
}
