package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/unibase/internal/domain/entity"
	"github.com/oksasatya/unibase/internal/domain/repository"
)

const commentNotFound = "comment not found"

const commentColumns = `id, body, user_id, university_id, created_at, updated_at`

type CommentRepository struct {
	pool *pgxpool.Pool
}

func NewCommentRepository(pool *pgxpool.Pool) *CommentRepository {
	return &CommentRepository{pool: pool}
}

func scanComment(row pgx.Row) (entity.Comment, error) {
	var c entity.Comment
	err := row.Scan(&c.ID, &c.Body, &c.UserID, &c.UniversityID, &c.CreatedAt, &c.UpdatedAt)
	return c, classify(err, commentNotFound)
}

func (r *CommentRepository) Create(ctx context.Context, c *entity.Comment) error {
	row := querier(ctx, r.pool).QueryRow(ctx, `
		INSERT INTO comments (body, user_id, university_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`, c.Body, c.UserID, c.UniversityID)
	return classify(row.Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt), commentNotFound)
}

func (r *CommentRepository) GetByID(ctx context.Context, id string) (*entity.Comment, error) {
	c, err := scanComment(querier(ctx, r.pool).QueryRow(ctx,
		`SELECT `+commentColumns+` FROM comments WHERE id = $1`, id))
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CommentRepository) List(ctx context.Context, f repository.CommentFilter) ([]entity.Comment, error) {
	var w where
	w.eq("user_id", f.UserID)
	w.eq("university_id", f.UniversityID)
	q := `SELECT ` + commentColumns + ` FROM comments` + w.String() + ` ORDER BY created_at DESC, id` + w.page(f.Page)
	rows, err := querier(ctx, r.pool).Query(ctx, q, w.args...)
	if err != nil {
		return nil, classify(err, "")
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.Comment, error) {
		return scanComment(row)
	})
}

func (r *CommentRepository) Update(ctx context.Context, c *entity.Comment) error {
	row := querier(ctx, r.pool).QueryRow(ctx, `
		UPDATE comments SET body = $1, updated_at = now()
		WHERE id = $2
		RETURNING updated_at
	`, c.Body, c.ID)
	return classify(row.Scan(&c.UpdatedAt), commentNotFound)
}

func (r *CommentRepository) Delete(ctx context.Context, id string) error {
	return execOne(ctx, querier(ctx, r.pool), commentNotFound, `DELETE FROM comments WHERE id = $1`, id)
}

var _ repository.CommentRepository = (*CommentRepository)(nil)
