package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewUserDefaults(t *testing.T) {
	u := NewUser("alice", "alice@example.com", "hashed", "https://avatar.test/alice")
	assert.NotEmpty(t, u.ID)
	assert.True(t, u.IsPublic)
	assert.Equal(t, "", u.Nickname)
	assert.Equal(t, "", u.Bio)
	assert.Equal(t, u.CreatedAt, u.UpdatedAt)
	assert.Equal(t, "https://avatar.test/alice", u.AvatarURL)
}
