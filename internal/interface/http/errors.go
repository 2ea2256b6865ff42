package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Jayzhong/insta-backend/internal/domain"
	"github.com/Jayzhong/insta-backend/pkg/response"
)

var errFileTooLarge = errors.New("uploaded file too large")

// writeDomainError maps domain errors onto HTTP statuses and writes the
// error envelope. Unrecognized errors become a 500 with a generic message.
func writeDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrUsernameTaken),
		errors.Is(err, domain.ErrEmailTaken),
		errors.Is(err, domain.ErrAlreadyFollowing),
		errors.Is(err, domain.ErrNotFollowing):
		response.Error[any](c, http.StatusConflict, err.Error(), nil)
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrPostNotFound):
		response.Error[any](c, http.StatusNotFound, err.Error(), nil)
	case errors.Is(err, domain.ErrInvalidCredentials):
		response.Error[any](c, http.StatusUnauthorized, "invalid credentials", nil)
	case errors.Is(err, domain.ErrSelfFollow):
		response.Error[any](c, http.StatusUnprocessableEntity, err.Error(), nil)
	case errors.Is(err, domain.ErrNotPostOwner):
		response.Error[any](c, http.StatusForbidden, err.Error(), nil)
	default:
		response.Error[any](c, http.StatusInternalServerError, "internal error", nil)
	}
}
