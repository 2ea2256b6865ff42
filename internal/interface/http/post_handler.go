package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Jayzhong/insta-backend/internal/application"
	"github.com/Jayzhong/insta-backend/internal/domain/entity"
	"github.com/Jayzhong/insta-backend/pkg/response"
)

const maxImageBytes = 10 << 20

type PostHandler struct {
	Svc    *application.PostService
	Logger *logrus.Logger
}

func NewPostHandler(svc *application.PostService, logger *logrus.Logger) *PostHandler {
	return &PostHandler{Svc: svc, Logger: logger}
}

func postView(p *entity.Post) gin.H {
	return gin.H{
		"id":         p.ID,
		"user_id":    p.UserID,
		"image_url":  p.ImageURL,
		"caption":    p.Caption,
		"created_at": p.CreatedAt,
		"updated_at": p.UpdatedAt,
	}
}

// Create accepts a multipart form with a required image file and an
// optional caption.
func (h *PostHandler) Create(c *gin.Context) {
	fh, err := c.FormFile("image")
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", gin.H{"image": "is required"})
		return
	}
	name, data, err := readUpload(fh, maxImageBytes)
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid image upload", err.Error())
		return
	}

	p, err := h.Svc.Create(c.Request.Context(), application.CreatePostInput{
		UserID:        c.GetString("userID"),
		ImageFileName: name,
		ImageData:     data,
		Caption:       c.PostForm("caption"),
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.Header("Location", "/posts/"+p.ID)
	response.Success(c, http.StatusCreated, postView(p), "post created", nil)
}

func (h *PostHandler) Get(c *gin.Context) {
	p, err := h.Svc.Get(c.Request.Context(), c.Param("post_id"))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	response.Success(c, http.StatusOK, postView(p), "post", nil)
}

func (h *PostHandler) ListByUser(c *gin.Context) {
	posts, err := h.Svc.ListByUser(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	views := make([]gin.H, 0, len(posts))
	for _, p := range posts {
		views = append(views, postView(p))
	}
	response.Success(c, http.StatusOK, views, "posts", gin.H{"count": len(views)})
}

func (h *PostHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.GetString("userID"), c.Param("post_id")); err != nil {
		writeDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
