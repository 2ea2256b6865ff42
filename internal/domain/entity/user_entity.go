package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the aggregate root for the user domain.
// Password holds a bcrypt hash, never the raw password.
type User struct {
	ID        string
	Username  string
	Email     string
	Password  string
	Nickname  string
	AvatarURL string
	Bio       string
	IsPublic  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewUser mints the identity at construction time. The username and email
// uniqueness invariants are enforced by the registration use case and,
// authoritatively, by the storage layer.
func NewUser(username, email, hashedPassword, avatarURL string) *User {
	now := time.Now().UTC()
	return &User{
		ID:        uuid.NewString(),
		Username:  username,
		Email:     email,
		Password:  hashedPassword,
		AvatarURL: avatarURL,
		IsPublic:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
