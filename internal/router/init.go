package router

import (
	"github.com/Jayzhong/insta-backend/internal/application"
	"github.com/Jayzhong/insta-backend/internal/container"
	pginfra "github.com/Jayzhong/insta-backend/internal/infrastructure/postgres"
	"github.com/Jayzhong/insta-backend/internal/infrastructure/storage"
	handlers "github.com/Jayzhong/insta-backend/internal/interface/http"
	"github.com/Jayzhong/insta-backend/internal/router/modules"
	"github.com/Jayzhong/insta-backend/pkg/helpers"
)

// imageStores picks GCS when a bucket is configured, local disk otherwise.
// Avatars and post images live under separate prefixes.
func imageStores() (avatars, posts application.ImageStorage, err error) {
	cfg := container.GetConfig()
	if cfg.GCSBucket != "" && container.GetGCS() != nil {
		return storage.NewGCSImageStorage(container.GetGCS(), cfg.GCSBucket, "avatars"),
			storage.NewGCSImageStorage(container.GetGCS(), cfg.GCSBucket, "posts"),
			nil
	}
	av, err := storage.NewLocalImageStorage(cfg.MediaDir+"/avatars", cfg.MediaBaseURL+"/avatars")
	if err != nil {
		return nil, nil, err
	}
	ps, err := storage.NewLocalImageStorage(cfg.MediaDir+"/posts", cfg.MediaBaseURL+"/posts")
	if err != nil {
		return nil, nil, err
	}
	return av, ps, nil
}

// InitModules wires repositories, services, and handlers from the container
// singletons and registers every feature module. Call once during startup.
func InitModules(r *Registry) error {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	pool := container.GetPGPool()

	userRepo := pginfra.NewUserRepository(pool)
	postRepo := pginfra.NewPostRepository(pool)
	followRepo := pginfra.NewFollowRepository(pool)
	healthRepo := pginfra.NewHealthRepository(pool, container.GetRedis())

	avatarStore, postStore, err := imageStores()
	if err != nil {
		return err
	}

	userSvc := application.NewUserService(userRepo, &helpers.BcryptHasher{}, container.GetJWT(), avatarStore, logger)
	userSvc.Pub = container.GetRabbitPub()
	userSvc.ES = container.GetES()
	userSvc.ESUsersIndex = cfg.ESUsersIndex

	postSvc := application.NewPostService(postRepo, postStore, logger)
	followSvc := application.NewFollowService(followRepo, userRepo, logger)
	healthSvc := application.NewHealthService(healthRepo)

	jwt := container.GetJWT()
	r.Add(modules.NewUserModule(handlers.NewUserHandler(userSvc, logger), jwt))
	r.Add(modules.NewPostModule(handlers.NewPostHandler(postSvc, logger), jwt))
	r.Add(modules.NewFollowModule(handlers.NewFollowHandler(followSvc, logger), jwt))
	r.Add(modules.NewHealthModule(handlers.NewHealthHandler(healthSvc)))
	if cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
	return nil
}
