package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Jayzhong/insta-backend/internal/domain"
	"github.com/Jayzhong/insta-backend/internal/domain/entity"
	"github.com/Jayzhong/insta-backend/internal/domain/repository"
)

type FollowRepository struct {
	pool *pgxpool.Pool
}

func NewFollowRepository(pool *pgxpool.Pool) *FollowRepository {
	return &FollowRepository{pool: pool}
}

func (r *FollowRepository) Add(ctx context.Context, f entity.Follow) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO follows (follower_id, followed_id, created_at)
		VALUES ($1, $2, $3)
	`, f.FollowerID, f.FollowedID, f.CreatedAt)
	return translateUnique(err)
}

// Remove deletes the edge. Zero rows affected means the edge was already
// gone, which maps to the same domain error the pre-check raises.
func (r *FollowRepository) Remove(ctx context.Context, followerID, followedID string) error {
	tag, err := r.pool.Exec(ctx, `
		DELETE FROM follows WHERE follower_id = $1 AND followed_id = $2
	`, followerID, followedID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFollowing
	}
	return nil
}

func (r *FollowRepository) GetFollowers(ctx context.Context, userID string) ([]*entity.User, error) {
	return r.queryUsers(ctx, `
		SELECT `+prefixUserColumns(`u`)+`
		FROM users u
		JOIN follows f ON f.follower_id = u.id
		WHERE f.followed_id = $1
		ORDER BY f.created_at DESC, u.id
	`, userID)
}

func (r *FollowRepository) GetFollowing(ctx context.Context, userID string) ([]*entity.User, error) {
	return r.queryUsers(ctx, `
		SELECT `+prefixUserColumns(`u`)+`
		FROM users u
		JOIN follows f ON f.followed_id = u.id
		WHERE f.follower_id = $1
		ORDER BY f.created_at DESC, u.id
	`, userID)
}

func (r *FollowRepository) IsFollowing(ctx context.Context, followerID, followedID string) (bool, error) {
	var following bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM follows WHERE follower_id = $1 AND followed_id = $2
		)
	`, followerID, followedID).Scan(&following)
	return following, err
}

func (r *FollowRepository) queryUsers(ctx context.Context, sql string, arg any) ([]*entity.User, error) {
	rows, err := r.pool.Query(ctx, sql, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]*entity.User, 0)
	for rows.Next() {
		u := &entity.User{}
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.Password, &u.Nickname, &u.AvatarURL,
			&u.Bio, &u.IsPublic, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func prefixUserColumns(alias string) string {
	return alias + `.id, ` + alias + `.username, ` + alias + `.email, ` + alias + `.password_hash, ` +
		alias + `.nickname, ` + alias + `.avatar_url, ` + alias + `.bio, ` + alias + `.is_public, ` +
		alias + `.created_at, ` + alias + `.updated_at`
}

var _ repository.FollowRepository = (*FollowRepository)(nil)
