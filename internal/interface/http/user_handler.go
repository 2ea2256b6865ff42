package handlers

import (
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Jayzhong/insta-backend/internal/application"
	"github.com/Jayzhong/insta-backend/internal/domain/entity"
	"github.com/Jayzhong/insta-backend/pkg/response"
	"github.com/Jayzhong/insta-backend/pkg/validation"
)

const maxAvatarBytes = 5 << 20

type UserHandler struct {
	Svc    *application.UserService
	Logger *logrus.Logger
}

func NewUserHandler(svc *application.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

type registerRequest struct {
	Username string `json:"username" binding:"required,username"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,pwd"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func userView(u *entity.User) gin.H {
	return gin.H{
		"id":         u.ID,
		"username":   u.Username,
		"email":      u.Email,
		"nickname":   u.Nickname,
		"avatar_url": u.AvatarURL,
		"bio":        u.Bio,
		"is_public":  u.IsPublic,
		"created_at": u.CreatedAt,
		"updated_at": u.UpdatedAt,
	}
}

func (h *UserHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	u, err := h.Svc.Register(c.Request.Context(), application.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, userView(u), "user registered", nil)
}

func (h *UserHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	res, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"access_token": res.AccessToken,
		"token_type":   "bearer",
	}, "login successful", gin.H{"expires_at": res.ExpiresAt})
}

func (h *UserHandler) GetProfile(c *gin.Context) {
	u, err := h.Svc.GetProfile(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	response.Success(c, http.StatusOK, userView(u), "profile", nil)
}

// UpdateProfile applies a partial multipart update. Only the fields present
// in the form are touched; delete_avatar=true resets the avatar and wins
// over an uploaded file.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var in application.UpdateProfileInput

	if v, ok := c.GetPostForm("nickname"); ok {
		in.Nickname = &v
	}
	if v, ok := c.GetPostForm("bio"); ok {
		in.Bio = &v
	}
	if v, ok := c.GetPostForm("is_public"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			response.Error[any](c, http.StatusBadRequest, "invalid payload", gin.H{"is_public": "must be a boolean"})
			return
		}
		in.IsPublic = &b
	}
	if v, ok := c.GetPostForm("delete_avatar"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			response.Error[any](c, http.StatusBadRequest, "invalid payload", gin.H{"delete_avatar": "must be a boolean"})
			return
		}
		in.DeleteAvatar = b
	}

	if fh, err := c.FormFile("avatar"); err == nil {
		name, data, err := readUpload(fh, maxAvatarBytes)
		if err != nil {
			response.Error[any](c, http.StatusBadRequest, "invalid avatar upload", err.Error())
			return
		}
		in.AvatarFileName = name
		in.AvatarData = data
	}

	u, err := h.Svc.UpdateProfile(c.Request.Context(), c.GetString("userID"), in)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	response.Success(c, http.StatusOK, userView(u), "profile updated", nil)
}

func (h *UserHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", gin.H{"q": "is required"})
		return
	}
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))

	hits, err := h.Svc.SearchUsers(c.Request.Context(), q, size)
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).Warn("user search failed")
		}
		response.Error[any](c, http.StatusServiceUnavailable, "search unavailable", nil)
		return
	}
	response.Success(c, http.StatusOK, hits, "search results", gin.H{"count": len(hits)})
}

func readUpload(fh *multipart.FileHeader, limit int64) (string, []byte, error) {
	f, err := fh.Open()
	if err != nil {
		return "", nil, err
	}
	defer func() { _ = f.Close() }()
	data, err := io.ReadAll(io.LimitReader(f, limit+1))
	if err != nil {
		return "", nil, err
	}
	if int64(len(data)) > limit {
		return "", nil, errFileTooLarge
	}
	return fh.Filename, data, nil
}
