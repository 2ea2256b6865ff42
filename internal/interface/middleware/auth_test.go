package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/Jayzhong/insta-backend/internal/domain"
)

type staticTokens struct{}

func (staticTokens) GenerateToken(userID string) (string, time.Time, error) {
	return "good-" + userID, time.Now().Add(time.Minute), nil
}

func (staticTokens) VerifyAndExtractUserID(token string) (string, error) {
	if !strings.HasPrefix(token, "good-") {
		return "", domain.ErrInvalidCredentials
	}
	return strings.TrimPrefix(token, "good-"), nil
}

func authRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", Auth(staticTokens{}), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("userID"))
	})
	return r
}

func TestAuthAcceptsBearerToken(t *testing.T) {
	r := authRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer good-user-1")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user-1", w.Body.String())
}

func TestAuthRejectsMissingHeader(t *testing.T) {
	r := authRouter()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRejectsBadToken(t *testing.T) {
	r := authRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer forged")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRejectsNonBearerScheme(t *testing.T) {
	r := authRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Basic Zm9vOmJhcg==")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
