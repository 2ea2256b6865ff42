package repository

import (
	"context"

	"github.com/Jayzhong/insta-backend/internal/domain/entity"
)

// PostRepository defines the persistence contract for posts. ListByUser
// returns posts newest-first and an empty slice when the user has none.
type PostRepository interface {
	Add(ctx context.Context, p *entity.Post) error
	GetByID(ctx context.Context, id string) (*entity.Post, error)
	ListByUser(ctx context.Context, userID string) ([]*entity.Post, error)
	Delete(ctx context.Context, p *entity.Post) error
	Save(ctx context.Context, p *entity.Post) error
}
