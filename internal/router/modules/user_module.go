package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Jayzhong/insta-backend/internal/container"
	handlers "github.com/Jayzhong/insta-backend/internal/interface/http"
	"github.com/Jayzhong/insta-backend/internal/interface/middleware"
	"github.com/Jayzhong/insta-backend/pkg/helpers"
)

// UserModule wires the account routes.
// Public: POST /users/register, POST /users/login, GET /users/:user_id/posts
// is owned by the post module; profile and search require auth.
type UserModule struct {
	Handler *handlers.UserHandler
	JWT     *helpers.JWTManager
}

func NewUserModule(h *handlers.UserHandler, jwt *helpers.JWTManager) *UserModule {
	return &UserModule{Handler: h, JWT: jwt}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	// Credential endpoints get a tight per-route limit
	registerLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), nil)
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), nil)

	rg.POST("/users/register", registerLimiter, m.Handler.Register)
	rg.POST("/users/login", loginLimiter, m.Handler.Login)

	auth := rg.Group("/users")
	auth.Use(
		middleware.Auth(m.JWT),
		middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), middleware.AllowPrivateIP()),
	)
	{
		auth.GET("/profile", m.Handler.GetProfile)
		auth.PATCH("/profile", m.Handler.UpdateProfile)
		auth.GET("/search", m.Handler.Search)
	}
}
