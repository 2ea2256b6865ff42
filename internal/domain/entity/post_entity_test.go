package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostDraftComplete(t *testing.T) {
	draft := NewPostDraft("user-1", "hello")
	require.NotEmpty(t, draft.ID())

	p, err := draft.Complete("https://img.test/" + draft.ID() + ".jpg")
	require.NoError(t, err)
	assert.Equal(t, draft.ID(), p.ID)
	assert.Equal(t, "user-1", p.UserID)
	assert.Equal(t, "hello", p.Caption)
	assert.Equal(t, p.CreatedAt, p.UpdatedAt)
}

func TestPostDraftCompleteEmptyURL(t *testing.T) {
	draft := NewPostDraft("user-1", "hello")
	_, err := draft.Complete("")
	assert.ErrorIs(t, err, ErrEmptyImageURL)
}

func TestPostDraftsMintDistinctIDs(t *testing.T) {
	a := NewPostDraft("user-1", "")
	b := NewPostDraft("user-1", "")
	assert.NotEqual(t, a.ID(), b.ID())
}
