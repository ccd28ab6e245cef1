package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/oksasatya/unibase/internal/domain/repository"
)

// where accumulates AND-ed filter clauses with positional args.
type where struct {
	clauses []string
	args    []any
}

func (w *where) eq(column, value string) {
	if value == "" {
		return
	}
	w.args = append(w.args, value)
	w.clauses = append(w.clauses, fmt.Sprintf("%s = $%d", column, len(w.args)))
}

func (w *where) contains(column, value string) {
	value = strings.TrimSpace(value)
	if value == "" {
		return
	}
	w.args = append(w.args, "%"+escapeLike(value)+"%")
	w.clauses = append(w.clauses, fmt.Sprintf("%s ILIKE $%d", column, len(w.args)))
}

func (w *where) String() string {
	if len(w.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.clauses, " AND ")
}

// page appends LIMIT/OFFSET args and returns the matching SQL tail.
func (w *where) page(p repository.Page) string {
	p = p.Normalize()
	w.args = append(w.args, p.Limit, p.Offset)
	return fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(w.args)-1, len(w.args))
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string { return likeEscaper.Replace(s) }

// taken reports whether another row in table already holds value in column.
func taken(ctx context.Context, db DBTX, table, column, value, excludeID string) (bool, error) {
	q := "SELECT EXISTS (SELECT 1 FROM " + table + " WHERE " + column + " = $1"
	args := []any{value}
	if excludeID != "" {
		q += " AND id <> $2"
		args = append(args, excludeID)
	}
	q += ")"
	var ok bool
	if err := db.QueryRow(ctx, q, args...).Scan(&ok); err != nil {
		return false, classify(err, "")
	}
	return ok, nil
}

// execOne runs a single-row write and reports NotFound when nothing matched.
func execOne(ctx context.Context, db DBTX, notFound, sql string, args ...any) error {
	tag, err := db.Exec(ctx, sql, args...)
	if err != nil {
		return classify(err, notFound)
	}
	if tag.RowsAffected() == 0 {
		return classify(errNoRows, notFound)
	}
	return nil
}
