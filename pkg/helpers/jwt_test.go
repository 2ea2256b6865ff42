package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jayzhong/insta-backend/internal/domain"
)

func TestJWTRoundTrip(t *testing.T) {
	m := NewJWTManager("test-secret", time.Minute)

	token, exp, err := m.GenerateToken("user-123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Minute), exp, 5*time.Second)

	uid, err := m.VerifyAndExtractUserID(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", uid)
}

func TestJWTExpired(t *testing.T) {
	m := NewJWTManager("test-secret", -time.Minute)
	token, _, err := m.GenerateToken("user-123")
	require.NoError(t, err)

	_, err = m.VerifyAndExtractUserID(token)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestJWTWrongSecret(t *testing.T) {
	m := NewJWTManager("test-secret", time.Minute)
	token, _, err := m.GenerateToken("user-123")
	require.NoError(t, err)

	other := NewJWTManager("other-secret", time.Minute)
	_, err = other.VerifyAndExtractUserID(token)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestJWTGarbage(t *testing.T) {
	m := NewJWTManager("test-secret", time.Minute)
	_, err := m.VerifyAndExtractUserID("not-a-token")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}
