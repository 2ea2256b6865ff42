package helpers

import "golang.org/x/crypto/bcrypt"

// HashPassword hashes a plain text password using bcrypt.
func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CompareHashAndPassword compares a bcrypt hash with a plain password.
func CompareHashAndPassword(hash string, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// BcryptHasher is the bcrypt-backed password hashing service used by the
// user use cases.
type BcryptHasher struct{}

func NewBcryptHasher() BcryptHasher { return BcryptHasher{} }

func (BcryptHasher) Hash(plain string) (string, error) { return HashPassword(plain) }

func (BcryptHasher) Verify(plain, hashed string) bool { return CompareHashAndPassword(hashed, plain) }
