package repository

import (
	"context"

	"github.com/Jayzhong/insta-backend/internal/domain/entity"
)

// HealthRepository reports the liveness of the system's backing services.
type HealthRepository interface {
	GetStatus(ctx context.Context) (entity.Health, error)
}
