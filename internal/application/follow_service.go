package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/Jayzhong/insta-backend/internal/domain"
	"github.com/Jayzhong/insta-backend/internal/domain/entity"
	"github.com/Jayzhong/insta-backend/internal/domain/repository"
)

// FollowService implements the social-graph use cases.
type FollowService struct {
	Follows repository.FollowRepository
	Users   repository.UserRepository
	Logger  *logrus.Logger
}

func NewFollowService(follows repository.FollowRepository, users repository.UserRepository, logger *logrus.Logger) *FollowService {
	return &FollowService{Follows: follows, Users: users, Logger: logger}
}

// Follow creates the directed edge follower -> followed. The self-follow
// guard runs before any lookup; the edge primary key in storage backs the
// IsFollowing pre-check against concurrent callers.
func (s *FollowService) Follow(ctx context.Context, followerID, followedID string) error {
	if followerID == followedID {
		return domain.ErrSelfFollow
	}

	target, err := s.Users.GetByID(ctx, followedID)
	if err != nil {
		return err
	}
	if target == nil {
		return domain.ErrUserNotFound
	}

	following, err := s.Follows.IsFollowing(ctx, followerID, followedID)
	if err != nil {
		return err
	}
	if following {
		return domain.ErrAlreadyFollowing
	}

	if err := s.Follows.Add(ctx, entity.NewFollow(followerID, followedID)); err != nil {
		return err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"follower_id": followerID, "followed_id": followedID}).Info("follow created")
	}
	return nil
}

// Unfollow removes the directed edge follower -> followed.
func (s *FollowService) Unfollow(ctx context.Context, followerID, followedID string) error {
	target, err := s.Users.GetByID(ctx, followedID)
	if err != nil {
		return err
	}
	if target == nil {
		return domain.ErrUserNotFound
	}

	following, err := s.Follows.IsFollowing(ctx, followerID, followedID)
	if err != nil {
		return err
	}
	if !following {
		return domain.ErrNotFollowing
	}

	return s.Follows.Remove(ctx, followerID, followedID)
}

// Followers returns the users following userID.
func (s *FollowService) Followers(ctx context.Context, userID string) ([]*entity.User, error) {
	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}
	return s.Follows.GetFollowers(ctx, userID)
}

// Following returns the users that userID follows.
func (s *FollowService) Following(ctx context.Context, userID string) ([]*entity.User, error) {
	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}
	return s.Follows.GetFollowing(ctx, userID)
}

func (s *FollowService) requireUser(ctx context.Context, userID string) error {
	u, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if u == nil {
		return domain.ErrUserNotFound
	}
	return nil
}
