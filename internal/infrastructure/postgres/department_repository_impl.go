package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/unibase/internal/domain/entity"
	"github.com/oksasatya/unibase/internal/domain/repository"
)

const departmentNotFound = "department not found"

const departmentColumns = `id, name, photo, description, university_id, created_by_id, created_at, updated_at`

type DepartmentRepository struct {
	pool *pgxpool.Pool
}

func NewDepartmentRepository(pool *pgxpool.Pool) *DepartmentRepository {
	return &DepartmentRepository{pool: pool}
}

func scanDepartment(row pgx.Row) (entity.Department, error) {
	var d entity.Department
	err := row.Scan(&d.ID, &d.Name, &d.Photo, &d.Description, &d.UniversityID, &d.CreatedByID,
		&d.CreatedAt, &d.UpdatedAt)
	return d, classify(err, departmentNotFound)
}

func (r *DepartmentRepository) Create(ctx context.Context, d *entity.Department) error {
	row := querier(ctx, r.pool).QueryRow(ctx, `
		INSERT INTO departments (name, photo, description, university_id, created_by_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`, d.Name, d.Photo, d.Description, d.UniversityID, d.CreatedByID)
	return classify(row.Scan(&d.ID, &d.CreatedAt, &d.UpdatedAt), departmentNotFound)
}

func (r *DepartmentRepository) GetByID(ctx context.Context, id string) (*entity.Department, error) {
	d, err := scanDepartment(querier(ctx, r.pool).QueryRow(ctx,
		`SELECT `+departmentColumns+` FROM departments WHERE id = $1`, id))
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DepartmentRepository) List(ctx context.Context, f repository.DepartmentFilter) ([]entity.Department, error) {
	var w where
	w.eq("university_id", f.UniversityID)
	w.eq("created_by_id", f.CreatedByID)
	w.contains("name", f.Query)
	q := `SELECT ` + departmentColumns + ` FROM departments` + w.String() + ` ORDER BY name` + w.page(f.Page)
	rows, err := querier(ctx, r.pool).Query(ctx, q, w.args...)
	if err != nil {
		return nil, classify(err, "")
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.Department, error) {
		return scanDepartment(row)
	})
}

func (r *DepartmentRepository) NameTaken(ctx context.Context, name, excludeID string) (bool, error) {
	return taken(ctx, querier(ctx, r.pool), "departments", "name", name, excludeID)
}

func (r *DepartmentRepository) Update(ctx context.Context, d *entity.Department) error {
	row := querier(ctx, r.pool).QueryRow(ctx, `
		UPDATE departments
		SET name = $1, photo = $2, description = $3, university_id = $4, updated_at = now()
		WHERE id = $5
		RETURNING updated_at
	`, d.Name, d.Photo, d.Description, d.UniversityID, d.ID)
	return classify(row.Scan(&d.UpdatedAt), departmentNotFound)
}

func (r *DepartmentRepository) Delete(ctx context.Context, id string) error {
	return execOne(ctx, querier(ctx, r.pool), departmentNotFound, `DELETE FROM departments WHERE id = $1`, id)
}

var _ repository.DepartmentRepository = (*DepartmentRepository)(nil)
