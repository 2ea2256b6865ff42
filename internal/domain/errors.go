package domain

import "errors"

// Domain errors surfaced by the application layer. The HTTP boundary maps
// them to status codes; nothing below it knows about transport.
var (
	// Identity conflicts.
	ErrUsernameTaken = errors.New("username already taken")
	ErrEmailTaken    = errors.New("email already registered")

	// Not found.
	ErrUserNotFound = errors.New("user not found")
	ErrPostNotFound = errors.New("post not found")

	// Auth. Covers unknown account, wrong password, and bad tokens uniformly
	// so callers cannot probe for account existence.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Social graph conflicts.
	ErrSelfFollow       = errors.New("cannot follow yourself")
	ErrAlreadyFollowing = errors.New("already following this user")
	ErrNotFollowing     = errors.New("not following this user")

	// Ownership.
	ErrNotPostOwner = errors.New("post belongs to another user")
)
