package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/unibase/internal/domain/entity"
	"github.com/oksasatya/unibase/internal/domain/repository"
)

const programNotFound = "program not found"

const programColumns = `id, name, photo, description, number_of_students, department_id, created_by_id,
	created_at, updated_at`

type ProgramRepository struct {
	pool *pgxpool.Pool
}

func NewProgramRepository(pool *pgxpool.Pool) *ProgramRepository {
	return &ProgramRepository{pool: pool}
}

func scanProgram(row pgx.Row) (entity.Program, error) {
	var p entity.Program
	err := row.Scan(&p.ID, &p.Name, &p.Photo, &p.Description, &p.NumberOfStudents, &p.DepartmentID,
		&p.CreatedByID, &p.CreatedAt, &p.UpdatedAt)
	return p, classify(err, programNotFound)
}

func (r *ProgramRepository) Create(ctx context.Context, p *entity.Program) error {
	row := querier(ctx, r.pool).QueryRow(ctx, `
		INSERT INTO programs (name, photo, description, number_of_students, department_id, created_by_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`, p.Name, p.Photo, p.Description, p.NumberOfStudents, p.DepartmentID, p.CreatedByID)
	return classify(row.Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt), programNotFound)
}

func (r *ProgramRepository) GetByID(ctx context.Context, id string) (*entity.Program, error) {
	p, err := scanProgram(querier(ctx, r.pool).QueryRow(ctx,
		`SELECT `+programColumns+` FROM programs WHERE id = $1`, id))
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProgramRepository) List(ctx context.Context, f repository.ProgramFilter) ([]entity.Program, error) {
	var w where
	w.eq("department_id", f.DepartmentID)
	w.eq("created_by_id", f.CreatedByID)
	w.contains("name", f.Query)
	q := `SELECT ` + programColumns + ` FROM programs` + w.String() + ` ORDER BY name` + w.page(f.Page)
	rows, err := querier(ctx, r.pool).Query(ctx, q, w.args...)
	if err != nil {
		return nil, classify(err, "")
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.Program, error) {
		return scanProgram(row)
	})
}

func (r *ProgramRepository) NameTaken(ctx context.Context, name, excludeID string) (bool, error) {
	return taken(ctx, querier(ctx, r.pool), "programs", "name", name, excludeID)
}

func (r *ProgramRepository) Update(ctx context.Context, p *entity.Program) error {
	row := querier(ctx, r.pool).QueryRow(ctx, `
		UPDATE programs
		SET name = $1, photo = $2, description = $3, number_of_students = $4, department_id = $5,
			updated_at = now()
		WHERE id = $6
		RETURNING updated_at
	`, p.Name, p.Photo, p.Description, p.NumberOfStudents, p.DepartmentID, p.ID)
	return classify(row.Scan(&p.UpdatedAt), programNotFound)
}

func (r *ProgramRepository) Delete(ctx context.Context, id string) error {
	return execOne(ctx, querier(ctx, r.pool), programNotFound, `DELETE FROM programs WHERE id = $1`, id)
}

var _ repository.ProgramRepository = (*ProgramRepository)(nil)
