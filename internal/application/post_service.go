package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/Jayzhong/insta-backend/internal/domain"
	"github.com/Jayzhong/insta-backend/internal/domain/entity"
	"github.com/Jayzhong/insta-backend/internal/domain/repository"
)

// PostService implements the post use cases.
type PostService struct {
	Repo   repository.PostRepository
	Images ImageStorage
	Logger *logrus.Logger
}

func NewPostService(repo repository.PostRepository, images ImageStorage, logger *logrus.Logger) *PostService {
	return &PostService{Repo: repo, Images: images, Logger: logger}
}

type CreatePostInput struct {
	UserID        string
	ImageFileName string
	ImageData     []byte
	Caption       string
}

// Create builds the post in two phases: the draft mints the id, the image is
// stored under that id, and only then is the completed post persisted. The
// stored row always carries the final image location.
func (s *PostService) Create(ctx context.Context, in CreatePostInput) (*entity.Post, error) {
	draft := entity.NewPostDraft(in.UserID, in.Caption)

	imageURL, err := s.Images.Save(ctx, draft.ID(), in.ImageFileName, in.ImageData)
	if err != nil {
		return nil, err
	}

	post, err := draft.Complete(imageURL)
	if err != nil {
		return nil, err
	}

	if err := s.Repo.Add(ctx, post); err != nil {
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"post_id": post.ID, "user_id": post.UserID}).Info("post created")
	}
	return post, nil
}

func (s *PostService) Get(ctx context.Context, postID string) (*entity.Post, error) {
	p, err := s.Repo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrPostNotFound
	}
	return p, nil
}

// ListByUser returns the user's posts newest-first; no posts is an empty
// slice, not an error.
func (s *PostService) ListByUser(ctx context.Context, userID string) ([]*entity.Post, error) {
	return s.Repo.ListByUser(ctx, userID)
}

// Delete removes a post. Only the owner may delete it.
func (s *PostService) Delete(ctx context.Context, userID, postID string) error {
	p, err := s.Repo.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrPostNotFound
	}
	if p.UserID != userID {
		return domain.ErrNotPostOwner
	}
	return s.Repo.Delete(ctx, p)
}
