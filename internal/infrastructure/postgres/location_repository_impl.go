package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/unibase/internal/domain/entity"
	"github.com/oksasatya/unibase/internal/domain/repository"
)

const locationNotFound = "location not found"

const locationColumns = `id, name, region_id, created_by_id, created_at, updated_at`

type LocationRepository struct {
	pool *pgxpool.Pool
}

func NewLocationRepository(pool *pgxpool.Pool) *LocationRepository {
	return &LocationRepository{pool: pool}
}

func scanLocation(row pgx.Row) (entity.Location, error) {
	var l entity.Location
	err := row.Scan(&l.ID, &l.Name, &l.RegionID, &l.CreatedByID, &l.CreatedAt, &l.UpdatedAt)
	return l, classify(err, locationNotFound)
}

func (r *LocationRepository) Create(ctx context.Context, l *entity.Location) error {
	row := querier(ctx, r.pool).QueryRow(ctx, `
		INSERT INTO locations (name, region_id, created_by_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`, l.Name, l.RegionID, l.CreatedByID)
	return classify(row.Scan(&l.ID, &l.CreatedAt, &l.UpdatedAt), locationNotFound)
}

func (r *LocationRepository) GetByID(ctx context.Context, id string) (*entity.Location, error) {
	l, err := scanLocation(querier(ctx, r.pool).QueryRow(ctx,
		`SELECT `+locationColumns+` FROM locations WHERE id = $1`, id))
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *LocationRepository) List(ctx context.Context, f repository.LocationFilter) ([]entity.Location, error) {
	var w where
	w.eq("region_id", f.RegionID)
	w.eq("created_by_id", f.CreatedByID)
	q := `SELECT ` + locationColumns + ` FROM locations` + w.String() + ` ORDER BY name` + w.page(f.Page)
	rows, err := querier(ctx, r.pool).Query(ctx, q, w.args...)
	if err != nil {
		return nil, classify(err, "")
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.Location, error) {
		return scanLocation(row)
	})
}

func (r *LocationRepository) NameTaken(ctx context.Context, name, excludeID string) (bool, error) {
	return taken(ctx, querier(ctx, r.pool), "locations", "name", name, excludeID)
}

func (r *LocationRepository) Update(ctx context.Context, l *entity.Location) error {
	row := querier(ctx, r.pool).QueryRow(ctx, `
		UPDATE locations SET name = $1, region_id = $2, updated_at = now()
		WHERE id = $3
		RETURNING updated_at
	`, l.Name, l.RegionID, l.ID)
	return classify(row.Scan(&l.UpdatedAt), locationNotFound)
}

func (r *LocationRepository) Delete(ctx context.Context, id string) error {
	return execOne(ctx, querier(ctx, r.pool), locationNotFound, `DELETE FROM locations WHERE id = $1`, id)
}

var _ repository.LocationRepository = (*LocationRepository)(nil)
