package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/unibase/internal/domain/entity"
	"github.com/oksasatya/unibase/internal/domain/repository"
)

const newsNotFound = "news not found"

const newsColumns = `id, title, photo, body, created_by_id, created_at, updated_at`

type NewsRepository struct {
	pool *pgxpool.Pool
}

func NewNewsRepository(pool *pgxpool.Pool) *NewsRepository {
	return &NewsRepository{pool: pool}
}

func scanNews(row pgx.Row) (entity.News, error) {
	var n entity.News
	err := row.Scan(&n.ID, &n.Title, &n.Photo, &n.Body, &n.CreatedByID, &n.CreatedAt, &n.UpdatedAt)
	return n, classify(err, newsNotFound)
}

func (r *NewsRepository) Create(ctx context.Context, n *entity.News) error {
	row := querier(ctx, r.pool).QueryRow(ctx, `
		INSERT INTO news (title, photo, body, created_by_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`, n.Title, n.Photo, n.Body, n.CreatedByID)
	return classify(row.Scan(&n.ID, &n.CreatedAt, &n.UpdatedAt), newsNotFound)
}

func (r *NewsRepository) GetByID(ctx context.Context, id string) (*entity.News, error) {
	n, err := scanNews(querier(ctx, r.pool).QueryRow(ctx,
		`SELECT `+newsColumns+` FROM news WHERE id = $1`, id))
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *NewsRepository) List(ctx context.Context, f repository.NewsFilter) ([]entity.News, error) {
	var w where
	w.eq("created_by_id", f.CreatedByID)
	q := `SELECT ` + newsColumns + ` FROM news` + w.String() + ` ORDER BY created_at DESC, id` + w.page(f.Page)
	rows, err := querier(ctx, r.pool).Query(ctx, q, w.args...)
	if err != nil {
		return nil, classify(err, "")
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.News, error) {
		return scanNews(row)
	})
}

func (r *NewsRepository) Update(ctx context.Context, n *entity.News) error {
	row := querier(ctx, r.pool).QueryRow(ctx, `
		UPDATE news SET title = $1, photo = $2, body = $3, updated_at = now()
		WHERE id = $4
		RETURNING updated_at
	`, n.Title, n.Photo, n.Body, n.ID)
	return classify(row.Scan(&n.UpdatedAt), newsNotFound)
}

func (r *NewsRepository) Delete(ctx context.Context, id string) error {
	return execOne(ctx, querier(ctx, r.pool), newsNotFound, `DELETE FROM news WHERE id = $1`, id)
}

var _ repository.NewsRepository = (*NewsRepository)(nil)
