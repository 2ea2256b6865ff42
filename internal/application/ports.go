package application

import (
	"context"
	"time"
)

// PasswordHasher is the one-way credential hashing contract. Hash output is
// opaque to the application layer.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(plain, hashed string) bool
}

// TokenService issues and verifies signed, time-bounded access tokens that
// carry the user id as subject. Verification failures of any kind (malformed,
// expired, unsigned) surface as domain.ErrInvalidCredentials.
type TokenService interface {
	GenerateToken(userID string) (string, time.Time, error)
	VerifyAndExtractUserID(token string) (string, error)
}

// ImageStorage persists an image owned by ownerID and returns its public
// location. Avatars and post images use two independent instances.
type ImageStorage interface {
	Save(ctx context.Context, ownerID, fileName string, data []byte) (string, error)
}
