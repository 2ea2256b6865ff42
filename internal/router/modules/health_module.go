package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/Jayzhong/insta-backend/internal/interface/http"
)

// HealthModule exposes the liveness probe. Not rate-limited; orchestrator
// probes must never be throttled.
type HealthModule struct {
	Handler *handlers.HealthHandler
}

func NewHealthModule(h *handlers.HealthHandler) *HealthModule {
	return &HealthModule{Handler: h}
}

func (m *HealthModule) Register(rg *gin.RouterGroup) {
	rg.GET("/health", m.Handler.Check)
}
