package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/unibase/internal/domain/entity"
	"github.com/oksasatya/unibase/internal/domain/repository"
)

const universityNotFound = "university not found"

const universityColumns = `id, name, photo, video, description, amount_of_students, phone_number, email,
	webpage, category_id, location_id, created_by_id, created_at, updated_at`

type UniversityRepository struct {
	pool *pgxpool.Pool
}

func NewUniversityRepository(pool *pgxpool.Pool) *UniversityRepository {
	return &UniversityRepository{pool: pool}
}

func scanUniversity(row pgx.Row) (entity.University, error) {
	var u entity.University
	err := row.Scan(&u.ID, &u.Name, &u.Photo, &u.Video, &u.Description, &u.AmountOfStudents,
		&u.PhoneNumber, &u.Email, &u.Webpage, &u.CategoryID, &u.LocationID, &u.CreatedByID,
		&u.CreatedAt, &u.UpdatedAt)
	return u, classify(err, universityNotFound)
}

func (r *UniversityRepository) Create(ctx context.Context, u *entity.University) error {
	row := querier(ctx, r.pool).QueryRow(ctx, `
		INSERT INTO universities (name, photo, video, description, amount_of_students, phone_number,
			email, webpage, category_id, location_id, created_by_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at
	`, u.Name, u.Photo, u.Video, u.Description, u.AmountOfStudents, u.PhoneNumber,
		normalizeEmail(u.Email), u.Webpage, u.CategoryID, u.LocationID, u.CreatedByID)
	u.Email = normalizeEmail(u.Email)
	return classify(row.Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt), universityNotFound)
}

func (r *UniversityRepository) GetByID(ctx context.Context, id string) (*entity.University, error) {
	u, err := scanUniversity(querier(ctx, r.pool).QueryRow(ctx,
		`SELECT `+universityColumns+` FROM universities WHERE id = $1`, id))
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UniversityRepository) List(ctx context.Context, f repository.UniversityFilter) ([]entity.University, error) {
	var w where
	w.eq("category_id", f.CategoryID)
	w.eq("location_id", f.LocationID)
	w.eq("created_by_id", f.CreatedByID)
	w.contains("name", f.Query)
	q := `SELECT ` + universityColumns + ` FROM universities` + w.String() + ` ORDER BY name` + w.page(f.Page)
	rows, err := querier(ctx, r.pool).Query(ctx, q, w.args...)
	if err != nil {
		return nil, classify(err, "")
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.University, error) {
		return scanUniversity(row)
	})
}

func (r *UniversityRepository) NameTaken(ctx context.Context, name, excludeID string) (bool, error) {
	return taken(ctx, querier(ctx, r.pool), "universities", "name", name, excludeID)
}

func (r *UniversityRepository) EmailTaken(ctx context.Context, email, excludeID string) (bool, error) {
	return taken(ctx, querier(ctx, r.pool), "universities", "email", normalizeEmail(email), excludeID)
}

func (r *UniversityRepository) PhoneTaken(ctx context.Context, phone, excludeID string) (bool, error) {
	return taken(ctx, querier(ctx, r.pool), "universities", "phone_number", phone, excludeID)
}

func (r *UniversityRepository) Update(ctx context.Context, u *entity.University) error {
	u.Email = normalizeEmail(u.Email)
	row := querier(ctx, r.pool).QueryRow(ctx, `
		UPDATE universities
		SET name = $1, photo = $2, video = $3, description = $4, amount_of_students = $5,
			phone_number = $6, email = $7, webpage = $8, category_id = $9, location_id = $10,
			updated_at = now()
		WHERE id = $11
		RETURNING updated_at
	`, u.Name, u.Photo, u.Video, u.Description, u.AmountOfStudents, u.PhoneNumber, u.Email,
		u.Webpage, u.CategoryID, u.LocationID, u.ID)
	return classify(row.Scan(&u.UpdatedAt), universityNotFound)
}

func (r *UniversityRepository) Delete(ctx context.Context, id string) error {
	return execOne(ctx, querier(ctx, r.pool), universityNotFound, `DELETE FROM universities WHERE id = $1`, id)
}

var _ repository.UniversityRepository = (*UniversityRepository)(nil)
