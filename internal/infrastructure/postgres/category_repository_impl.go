package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/unibase/internal/domain/entity"
	"github.com/oksasatya/unibase/internal/domain/repository"
)

const categoryNotFound = "category not found"

type CategoryRepository struct {
	pool *pgxpool.Pool
}

func NewCategoryRepository(pool *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{pool: pool}
}

func scanCategory(row pgx.Row) (entity.Category, error) {
	var c entity.Category
	err := row.Scan(&c.ID, &c.Name, &c.CreatedByID, &c.CreatedAt, &c.UpdatedAt)
	return c, classify(err, categoryNotFound)
}

func (r *CategoryRepository) Create(ctx context.Context, c *entity.Category) error {
	row := querier(ctx, r.pool).QueryRow(ctx, `
		INSERT INTO categories (name, created_by_id)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at
	`, c.Name, c.CreatedByID)
	return classify(row.Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt), categoryNotFound)
}

func (r *CategoryRepository) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	c, err := scanCategory(querier(ctx, r.pool).QueryRow(ctx, `
		SELECT id, name, created_by_id, created_at, updated_at
		FROM categories WHERE id = $1
	`, id))
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CategoryRepository) List(ctx context.Context, f repository.CategoryFilter) ([]entity.Category, error) {
	var w where
	w.eq("created_by_id", f.CreatedByID)
	q := `SELECT id, name, created_by_id, created_at, updated_at FROM categories` + w.String() +
		` ORDER BY name` + w.page(f.Page)
	rows, err := querier(ctx, r.pool).Query(ctx, q, w.args...)
	if err != nil {
		return nil, classify(err, "")
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.Category, error) {
		return scanCategory(row)
	})
}

func (r *CategoryRepository) NameTaken(ctx context.Context, name, excludeID string) (bool, error) {
	return taken(ctx, querier(ctx, r.pool), "categories", "name", name, excludeID)
}

func (r *CategoryRepository) Update(ctx context.Context, c *entity.Category) error {
	row := querier(ctx, r.pool).QueryRow(ctx, `
		UPDATE categories SET name = $1, updated_at = now()
		WHERE id = $2
		RETURNING updated_at
	`, c.Name, c.ID)
	return classify(row.Scan(&c.UpdatedAt), categoryNotFound)
}

func (r *CategoryRepository) Delete(ctx context.Context, id string) error {
	return execOne(ctx, querier(ctx, r.pool), categoryNotFound, `DELETE FROM categories WHERE id = $1`, id)
}

var _ repository.CategoryRepository = (*CategoryRepository)(nil)
