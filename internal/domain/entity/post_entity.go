package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Post is the aggregate root for user content. ImageURL is non-empty on
// every persisted Post; the only way to build one is through PostDraft.
type Post struct {
	ID        string
	UserID    string
	ImageURL  string
	Caption   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ErrEmptyImageURL is returned when a draft is completed without a stored
// image location.
var ErrEmptyImageURL = errors.New("post image url must not be empty")

// PostDraft is the provisional first phase of post creation. The id exists
// before the image is stored because the stored image is namespaced by it,
// but a draft cannot be persisted: only Complete yields a Post.
type PostDraft struct {
	id        string
	userID    string
	caption   string
	createdAt time.Time
}

func NewPostDraft(userID, caption string) PostDraft {
	return PostDraft{
		id:        uuid.NewString(),
		userID:    userID,
		caption:   caption,
		createdAt: time.Now().UTC(),
	}
}

// ID is the pre-minted post identity used to namespace the stored image.
func (d PostDraft) ID() string { return d.id }

// Complete finalizes the draft with the stored image location.
func (d PostDraft) Complete(imageURL string) (*Post, error) {
	if imageURL == "" {
		return nil, ErrEmptyImageURL
	}
	return &Post{
		ID:        d.id,
		UserID:    d.userID,
		ImageURL:  imageURL,
		Caption:   d.caption,
		CreatedAt: d.createdAt,
		UpdatedAt: d.createdAt,
	}, nil
}
