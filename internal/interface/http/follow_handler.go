package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Jayzhong/insta-backend/internal/application"
	"github.com/Jayzhong/insta-backend/internal/domain/entity"
	"github.com/Jayzhong/insta-backend/pkg/response"
)

type FollowHandler struct {
	Svc    *application.FollowService
	Logger *logrus.Logger
}

func NewFollowHandler(svc *application.FollowService, logger *logrus.Logger) *FollowHandler {
	return &FollowHandler{Svc: svc, Logger: logger}
}

func (h *FollowHandler) Follow(c *gin.Context) {
	if err := h.Svc.Follow(c.Request.Context(), c.GetString("userID"), c.Param("user_id")); err != nil {
		writeDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *FollowHandler) Unfollow(c *gin.Context) {
	if err := h.Svc.Unfollow(c.Request.Context(), c.GetString("userID"), c.Param("user_id")); err != nil {
		writeDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *FollowHandler) Followers(c *gin.Context) {
	users, err := h.Svc.Followers(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	response.Success(c, http.StatusOK, userViews(users), "followers", gin.H{"count": len(users)})
}

func (h *FollowHandler) Following(c *gin.Context) {
	users, err := h.Svc.Following(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	response.Success(c, http.StatusOK, userViews(users), "following", gin.H{"count": len(users)})
}

func userViews(users []*entity.User) []gin.H {
	out := make([]gin.H, 0, len(users))
	for _, u := range users {
		out = append(out, userView(u))
	}
	return out
}
