package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/unibase/internal/domain/entity"
	"github.com/oksasatya/unibase/internal/domain/repository"
)

const regionNotFound = "region not found"

type RegionRepository struct {
	pool *pgxpool.Pool
}

func NewRegionRepository(pool *pgxpool.Pool) *RegionRepository {
	return &RegionRepository{pool: pool}
}

func scanRegion(row pgx.Row) (entity.Region, error) {
	var rg entity.Region
	err := row.Scan(&rg.ID, &rg.Name, &rg.CreatedByID, &rg.CreatedAt, &rg.UpdatedAt)
	return rg, classify(err, regionNotFound)
}

func (r *RegionRepository) Create(ctx context.Context, rg *entity.Region) error {
	row := querier(ctx, r.pool).QueryRow(ctx, `
		INSERT INTO regions (name, created_by_id)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at
	`, rg.Name, rg.CreatedByID)
	return classify(row.Scan(&rg.ID, &rg.CreatedAt, &rg.UpdatedAt), regionNotFound)
}

func (r *RegionRepository) GetByID(ctx context.Context, id string) (*entity.Region, error) {
	rg, err := scanRegion(querier(ctx, r.pool).QueryRow(ctx, `
		SELECT id, name, created_by_id, created_at, updated_at
		FROM regions WHERE id = $1
	`, id))
	if err != nil {
		return nil, err
	}
	return &rg, nil
}

func (r *RegionRepository) List(ctx context.Context, f repository.RegionFilter) ([]entity.Region, error) {
	var w where
	w.eq("created_by_id", f.CreatedByID)
	q := `SELECT id, name, created_by_id, created_at, updated_at FROM regions` + w.String() +
		` ORDER BY name` + w.page(f.Page)
	rows, err := querier(ctx, r.pool).Query(ctx, q, w.args...)
	if err != nil {
		return nil, classify(err, "")
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.Region, error) {
		return scanRegion(row)
	})
}

func (r *RegionRepository) NameTaken(ctx context.Context, name, excludeID string) (bool, error) {
	return taken(ctx, querier(ctx, r.pool), "regions", "name", name, excludeID)
}

func (r *RegionRepository) Update(ctx context.Context, rg *entity.Region) error {
	row := querier(ctx, r.pool).QueryRow(ctx, `
		UPDATE regions SET name = $1, updated_at = now()
		WHERE id = $2
		RETURNING updated_at
	`, rg.Name, rg.ID)
	return classify(row.Scan(&rg.UpdatedAt), regionNotFound)
}

func (r *RegionRepository) Delete(ctx context.Context, id string) error {
	return execOne(ctx, querier(ctx, r.pool), regionNotFound, `DELETE FROM regions WHERE id = $1`, id)
}

var _ repository.RegionRepository = (*RegionRepository)(nil)
