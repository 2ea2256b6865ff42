package storage

import (
	"context"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/Jayzhong/insta-backend/internal/application"
)

// LocalImageStorage writes images to the local filesystem. It serves as the
// fallback when no GCS bucket is configured; BaseURL must match the static
// file route that serves BasePath.
type LocalImageStorage struct {
	BasePath string
	BaseURL  string
}

func NewLocalImageStorage(basePath, baseURL string) (*LocalImageStorage, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, err
	}
	return &LocalImageStorage{BasePath: basePath, BaseURL: baseURL}, nil
}

func (s *LocalImageStorage) Save(ctx context.Context, ownerID, fileName string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(fileName))
	name := ownerID + ext
	if err := os.WriteFile(filepath.Join(s.BasePath, name), data, 0o644); err != nil {
		return "", err
	}
	return path.Join(s.BaseURL, name), nil
}

var _ application.ImageStorage = (*LocalImageStorage)(nil)
