package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/unibase/internal/domain/entity"
	"github.com/oksasatya/unibase/internal/domain/repository"
)

const studentNotFound = "student not found"

const studentColumns = `id, name, lastname, photo, description, working_place, achievements, program_id,
	created_at, updated_at`

type StudentRepository struct {
	pool *pgxpool.Pool
}

func NewStudentRepository(pool *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{pool: pool}
}

func scanStudent(row pgx.Row) (entity.Student, error) {
	var s entity.Student
	err := row.Scan(&s.ID, &s.Name, &s.Lastname, &s.Photo, &s.Description, &s.WorkingPlace,
		&s.Achievements, &s.ProgramID, &s.CreatedAt, &s.UpdatedAt)
	return s, classify(err, studentNotFound)
}

func (r *StudentRepository) Create(ctx context.Context, s *entity.Student) error {
	row := querier(ctx, r.pool).QueryRow(ctx, `
		INSERT INTO students (name, lastname, photo, description, working_place, achievements, program_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`, s.Name, s.Lastname, s.Photo, s.Description, s.WorkingPlace, s.Achievements, s.ProgramID)
	return classify(row.Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt), studentNotFound)
}

func (r *StudentRepository) GetByID(ctx context.Context, id string) (*entity.Student, error) {
	s, err := scanStudent(querier(ctx, r.pool).QueryRow(ctx,
		`SELECT `+studentColumns+` FROM students WHERE id = $1`, id))
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *StudentRepository) List(ctx context.Context, f repository.StudentFilter) ([]entity.Student, error) {
	var w where
	w.eq("program_id", f.ProgramID)
	q := `SELECT ` + studentColumns + ` FROM students` + w.String() + ` ORDER BY lastname, name` + w.page(f.Page)
	rows, err := querier(ctx, r.pool).Query(ctx, q, w.args...)
	if err != nil {
		return nil, classify(err, "")
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.Student, error) {
		return scanStudent(row)
	})
}

func (r *StudentRepository) Update(ctx context.Context, s *entity.Student) error {
	row := querier(ctx, r.pool).QueryRow(ctx, `
		UPDATE students
		SET name = $1, lastname = $2, photo = $3, description = $4, working_place = $5,
			achievements = $6, program_id = $7, updated_at = now()
		WHERE id = $8
		RETURNING updated_at
	`, s.Name, s.Lastname, s.Photo, s.Description, s.WorkingPlace, s.Achievements, s.ProgramID, s.ID)
	return classify(row.Scan(&s.UpdatedAt), studentNotFound)
}

func (r *StudentRepository) Delete(ctx context.Context, id string) error {
	return execOne(ctx, querier(ctx, r.pool), studentNotFound, `DELETE FROM students WHERE id = $1`, id)
}

var _ repository.StudentRepository = (*StudentRepository)(nil)
