package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalImageStorageSave(t *testing.T) {
	dir := t.TempDir()
	s, err := NewLocalImageStorage(filepath.Join(dir, "posts"), "/media/posts")
	require.NoError(t, err)

	url, err := s.Save(context.Background(), "post-1", "cat.JPG", []byte{0xff, 0xd8})
	require.NoError(t, err)
	assert.Equal(t, "/media/posts/post-1.jpg", url)

	data, err := os.ReadFile(filepath.Join(dir, "posts", "post-1.jpg"))
	require.NoError(t, err)
	assert.Equal(t, []byte{0xff, 0xd8}, data)
}

func TestLocalImageStorageOverwrite(t *testing.T) {
	s, err := NewLocalImageStorage(t.TempDir(), "/media")
	require.NoError(t, err)

	_, err = s.Save(context.Background(), "u1", "a.png", []byte{1})
	require.NoError(t, err)
	url, err := s.Save(context.Background(), "u1", "b.png", []byte{2})
	require.NoError(t, err)
	assert.Equal(t, "/media/u1.png", url)
}
