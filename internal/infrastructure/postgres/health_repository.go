package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/Jayzhong/insta-backend/internal/domain/entity"
	"github.com/Jayzhong/insta-backend/internal/domain/repository"
)

// HealthRepository probes the backing services. Redis is optional.
type HealthRepository struct {
	pool *pgxpool.Pool
	rdb  *redis.Client
}

func NewHealthRepository(pool *pgxpool.Pool, rdb *redis.Client) *HealthRepository {
	return &HealthRepository{pool: pool, rdb: rdb}
}

func (r *HealthRepository) GetStatus(ctx context.Context) (entity.Health, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := r.pool.Ping(ctx); err != nil {
		return entity.Health{}, err
	}
	if r.rdb != nil {
		if err := r.rdb.Ping(ctx).Err(); err != nil {
			return entity.Health{}, err
		}
	}
	return entity.Health{Status: "ok"}, nil
}

var _ repository.HealthRepository = (*HealthRepository)(nil)
