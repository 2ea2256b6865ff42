package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Jayzhong/insta-backend/internal/container"
	handlers "github.com/Jayzhong/insta-backend/internal/interface/http"
	"github.com/Jayzhong/insta-backend/internal/interface/middleware"
	"github.com/Jayzhong/insta-backend/pkg/helpers"
)

// PostModule wires the post routes. Reads are public; create and delete
// require auth.
type PostModule struct {
	Handler *handlers.PostHandler
	JWT     *helpers.JWTManager
}

func NewPostModule(h *handlers.PostHandler, jwt *helpers.JWTManager) *PostModule {
	return &PostModule{Handler: h, JWT: jwt}
}

func (m *PostModule) Register(rg *gin.RouterGroup) {
	readLimiter := middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())

	rg.GET("/posts/:post_id", readLimiter, m.Handler.Get)
	rg.GET("/posts/user/:user_id", readLimiter, m.Handler.ListByUser)

	auth := rg.Group("/posts")
	auth.Use(
		middleware.Auth(m.JWT),
		middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByUserID(), nil),
	)
	{
		auth.POST("", m.Handler.Create)
		auth.DELETE("/:post_id", m.Handler.Delete)
	}
}
