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

type PostRepository struct {
	pool *pgxpool.Pool
}

func NewPostRepository(pool *pgxpool.Pool) *PostRepository {
	return &PostRepository{pool: pool}
}

const postColumns = `id, user_id, image_url, caption, created_at, updated_at`

func (r *PostRepository) Add(ctx context.Context, p *entity.Post) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO posts (`+postColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, p.ID, p.UserID, p.ImageURL, p.Caption, p.CreatedAt, p.UpdatedAt)
	return err
}

func (r *PostRepository) GetByID(ctx context.Context, id string) (*entity.Post, error) {
	p := &entity.Post{}
	row := r.pool.QueryRow(ctx, `SELECT `+postColumns+` FROM posts WHERE id = $1`, id)
	if err := row.Scan(&p.ID, &p.UserID, &p.ImageURL, &p.Caption, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

// ListByUser returns the user's posts newest-first. The (user_id,
// created_at DESC) index backs this query.
func (r *PostRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Post, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+postColumns+` FROM posts
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := make([]*entity.Post, 0)
	for rows.Next() {
		p := &entity.Post{}
		if err := rows.Scan(&p.ID, &p.UserID, &p.ImageURL, &p.Caption, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

func (r *PostRepository) Delete(ctx context.Context, p *entity.Post) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM posts WHERE id = $1`, p.ID)
	return err
}

// Save upserts the post keyed by id in a single atomic statement.
func (r *PostRepository) Save(ctx context.Context, p *entity.Post) error {
	p.UpdatedAt = time.Now().UTC()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO posts (`+postColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			image_url = EXCLUDED.image_url,
			caption = EXCLUDED.caption,
			updated_at = EXCLUDED.updated_at
	`, p.ID, p.UserID, p.ImageURL, p.Caption, p.CreatedAt, p.UpdatedAt)
	return err
}

var _ repository.PostRepository = (*PostRepository)(nil)
