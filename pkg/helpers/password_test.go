package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("password123")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", hash)
	assert.True(t, CompareHashAndPassword(hash, "password123"))
	assert.False(t, CompareHashAndPassword(hash, "password124"))
}

func TestBcryptHasher(t *testing.T) {
	h := NewBcryptHasher()
	hash, err := h.Hash("s3cret")
	require.NoError(t, err)
	assert.True(t, h.Verify("s3cret", hash))
	assert.False(t, h.Verify("nope", hash))
}

func TestHashPasswordSalted(t *testing.T) {
	a, err := HashPassword("password123")
	require.NoError(t, err)
	b, err := HashPassword("password123")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
