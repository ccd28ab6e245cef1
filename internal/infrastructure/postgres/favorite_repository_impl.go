package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/unibase/internal/domain/entity"
	"github.com/oksasatya/unibase/internal/domain/repository"
)

const favoriteNotFound = "university not in favorites"

type FavoriteRepository struct {
	pool *pgxpool.Pool
}

func NewFavoriteRepository(pool *pgxpool.Pool) *FavoriteRepository {
	return &FavoriteRepository{pool: pool}
}

// Add relies on favorites_user_university_key to reject a second add of the
// same pair.
func (r *FavoriteRepository) Add(ctx context.Context, f *entity.Favorite) error {
	row := querier(ctx, r.pool).QueryRow(ctx, `
		INSERT INTO favorites (user_id, university_id)
		VALUES ($1, $2)
		RETURNING id, created_at
	`, f.UserID, f.UniversityID)
	return classify(row.Scan(&f.ID, &f.CreatedAt), favoriteNotFound)
}

func (r *FavoriteRepository) Remove(ctx context.Context, userID, universityID string) error {
	return execOne(ctx, querier(ctx, r.pool), favoriteNotFound,
		`DELETE FROM favorites WHERE user_id = $1 AND university_id = $2`, userID, universityID)
}

func (r *FavoriteRepository) Exists(ctx context.Context, userID, universityID string) (bool, error) {
	var ok bool
	err := querier(ctx, r.pool).QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM favorites WHERE user_id = $1 AND university_id = $2)
	`, userID, universityID).Scan(&ok)
	if err != nil {
		return false, classify(err, "")
	}
	return ok, nil
}

// ListByUser reads favorites and their universities in one query.
func (r *FavoriteRepository) ListByUser(ctx context.Context, userID string, p repository.Page) ([]entity.FavoriteEntry, error) {
	w := where{}
	w.eq("f.user_id", userID)
	q := `SELECT f.id, f.user_id, f.university_id, f.created_at,
			u.id, u.name, u.photo, u.video, u.description, u.amount_of_students, u.phone_number,
			u.email, u.webpage, u.category_id, u.location_id, u.created_by_id, u.created_at, u.updated_at
		FROM favorites f
		JOIN universities u ON u.id = f.university_id` + w.String() +
		` ORDER BY f.created_at DESC, f.id` + w.page(p)
	rows, err := querier(ctx, r.pool).Query(ctx, q, w.args...)
	if err != nil {
		return nil, classify(err, "")
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.FavoriteEntry, error) {
		var e entity.FavoriteEntry
		f, u := &e.Favorite, &e.University
		err := row.Scan(&f.ID, &f.UserID, &f.UniversityID, &f.CreatedAt,
			&u.ID, &u.Name, &u.Photo, &u.Video, &u.Description, &u.AmountOfStudents, &u.PhoneNumber,
			&u.Email, &u.Webpage, &u.CategoryID, &u.LocationID, &u.CreatedByID, &u.CreatedAt, &u.UpdatedAt)
		return e, err
	})
}

var _ repository.FavoriteRepository = (*FavoriteRepository)(nil)
