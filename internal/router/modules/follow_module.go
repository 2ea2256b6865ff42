package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Jayzhong/insta-backend/internal/container"
	handlers "github.com/Jayzhong/insta-backend/internal/interface/http"
	"github.com/Jayzhong/insta-backend/internal/interface/middleware"
	"github.com/Jayzhong/insta-backend/pkg/helpers"
)

// FollowModule wires the social-graph routes. Follower/following listings
// are public; creating and removing edges require auth.
type FollowModule struct {
	Handler *handlers.FollowHandler
	JWT     *helpers.JWTManager
}

func NewFollowModule(h *handlers.FollowHandler, jwt *helpers.JWTManager) *FollowModule {
	return &FollowModule{Handler: h, JWT: jwt}
}

func (m *FollowModule) Register(rg *gin.RouterGroup) {
	readLimiter := middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())

	rg.GET("/users/:user_id/followers", readLimiter, m.Handler.Followers)
	rg.GET("/users/:user_id/following", readLimiter, m.Handler.Following)

	auth := rg.Group("/users/:user_id")
	auth.Use(
		middleware.Auth(m.JWT),
		middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByUserID(), nil),
	)
	{
		auth.POST("/follow", m.Handler.Follow)
		auth.DELETE("/follow", m.Handler.Unfollow)
	}
}
