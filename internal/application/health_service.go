package application

import (
	"context"

	"github.com/Jayzhong/insta-backend/internal/domain/entity"
	"github.com/Jayzhong/insta-backend/internal/domain/repository"
)

// HealthService runs the liveness probe through the health repository.
type HealthService struct {
	Repo repository.HealthRepository
}

func NewHealthService(repo repository.HealthRepository) *HealthService {
	return &HealthService{Repo: repo}
}

func (s *HealthService) Check(ctx context.Context) (entity.Health, error) {
	return s.Repo.GetStatus(ctx)
}
