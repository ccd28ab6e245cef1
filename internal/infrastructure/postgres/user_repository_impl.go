package postgres

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/unibase/internal/domain/entity"
	"github.com/oksasatya/unibase/internal/domain/repository"
)

var errNoRows = pgx.ErrNoRows

const userNotFound = "user not found"

const userColumns = `id, email, full_name, phone_number, password, is_staff, created_at, updated_at`

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func scanUser(row pgx.Row) (*entity.User, error) {
	u := &entity.User{}
	if err := row.Scan(&u.ID, &u.Email, &u.FullName, &u.PhoneNumber, &u.Password, &u.IsStaff,
		&u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, classify(err, userNotFound)
	}
	return u, nil
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	row := querier(ctx, r.pool).QueryRow(ctx, `
		INSERT INTO users (email, full_name, phone_number, password, is_staff)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`, normalizeEmail(u.Email), u.FullName, u.PhoneNumber, u.Password, u.IsStaff)

	u.Email = normalizeEmail(u.Email)
	return classify(row.Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt), userNotFound)
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return scanUser(querier(ctx, r.pool).QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id))
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return scanUser(querier(ctx, r.pool).QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`, normalizeEmail(email)))
}

func (r *UserRepository) EmailTaken(ctx context.Context, email, excludeID string) (bool, error) {
	return taken(ctx, querier(ctx, r.pool), "users", "email", normalizeEmail(email), excludeID)
}

func (r *UserRepository) Update(ctx context.Context, u *entity.User) error {
	u.Email = normalizeEmail(u.Email)
	row := querier(ctx, r.pool).QueryRow(ctx, `
		UPDATE users
		SET email = $1, full_name = $2, phone_number = $3, password = $4, updated_at = now()
		WHERE id = $5
		RETURNING updated_at
	`, u.Email, u.FullName, u.PhoneNumber, u.Password, u.ID)
	return classify(row.Scan(&u.UpdatedAt), userNotFound)
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	return execOne(ctx, querier(ctx, r.pool), userNotFound, `DELETE FROM users WHERE id = $1`, id)
}

// Emails are compared case-insensitively by storing them lowercased.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

var _ repository.UserRepository = (*UserRepository)(nil)
