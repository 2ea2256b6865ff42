package repository

import (
	"context"

	"github.com/Jayzhong/insta-backend/internal/domain/entity"
)

// FollowRepository defines the persistence contract for directed follow
// edges, keyed by the (follower_id, followed_id) pair.
type FollowRepository interface {
	Add(ctx context.Context, f entity.Follow) error
	Remove(ctx context.Context, followerID, followedID string) error
	GetFollowers(ctx context.Context, userID string) ([]*entity.User, error)
	GetFollowing(ctx context.Context, userID string) ([]*entity.User, error)
	IsFollowing(ctx context.Context, followerID, followedID string) (bool, error)
}
