package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Jayzhong/insta-backend/internal/application"
	"github.com/Jayzhong/insta-backend/pkg/response"
)

type HealthHandler struct {
	Svc *application.HealthService
}

func NewHealthHandler(svc *application.HealthService) *HealthHandler {
	return &HealthHandler{Svc: svc}
}

func (h *HealthHandler) Check(c *gin.Context) {
	hs, err := h.Svc.Check(c.Request.Context())
	if err != nil {
		response.Error[any](c, http.StatusServiceUnavailable, "unhealthy", err.Error())
		return
	}
	response.Success(c, http.StatusOK, gin.H{"status": hs.Status}, "health", nil)
}
