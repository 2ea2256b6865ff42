package repository

import (
	"context"

	"github.com/Jayzhong/insta-backend/internal/domain/entity"
)

// UserRepository defines the persistence contract for users. Lookups return
// (nil, nil) when no row matches; Save has insert-or-update semantics keyed
// by ID.
type UserRepository interface {
	Add(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Save(ctx context.Context, u *entity.User) error
}
