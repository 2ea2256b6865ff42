package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Jayzhong/insta-backend/internal/domain/entity"
	"github.com/Jayzhong/insta-backend/internal/domain/repository"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

const userColumns = `id, username, email, password_hash, nickname, avatar_url, bio, is_public, created_at, updated_at`

func (r *UserRepository) Add(ctx context.Context, u *entity.User) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO users (`+userColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, u.ID, u.Username, u.Email, u.Password, u.Nickname, u.AvatarURL, u.Bio, u.IsPublic, u.CreatedAt, u.UpdatedAt)
	return translateUnique(err)
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return r.getBy(ctx, `id = $1`, id)
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	return r.getBy(ctx, `username = $1`, username)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.getBy(ctx, `email = $1`, email)
}

func (r *UserRepository) getBy(ctx context.Context, where string, arg any) (*entity.User, error) {
	u := &entity.User{}
	row := r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE `+where, arg)
	if err := row.Scan(&u.ID, &u.Username, &u.Email, &u.Password, &u.Nickname, &u.AvatarURL,
		&u.Bio, &u.IsPublic, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return u, nil
}

// Save upserts the user keyed by id in a single atomic statement.
func (r *UserRepository) Save(ctx context.Context, u *entity.User) error {
	u.UpdatedAt = time.Now().UTC()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO users (`+userColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO UPDATE SET
			username = EXCLUDED.username,
			email = EXCLUDED.email,
			password_hash = EXCLUDED.password_hash,
			nickname = EXCLUDED.nickname,
			avatar_url = EXCLUDED.avatar_url,
			bio = EXCLUDED.bio,
			is_public = EXCLUDED.is_public,
			updated_at = EXCLUDED.updated_at
	`, u.ID, u.Username, u.Email, u.Password, u.Nickname, u.AvatarURL, u.Bio, u.IsPublic, u.CreatedAt, u.UpdatedAt)
	return translateUnique(err)
}

var _ repository.UserRepository = (*UserRepository)(nil)
