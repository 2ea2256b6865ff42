package storage

import (
	"bytes"
	"context"
	"mime"
	"path"
	"path/filepath"
	"strings"

	gcs "cloud.google.com/go/storage"

	"github.com/Jayzhong/insta-backend/internal/application"
	"github.com/Jayzhong/insta-backend/pkg/helpers"
)

// GCSImageStorage stores images in a Google Cloud Storage bucket under a
// fixed prefix. Avatars and post images are two instances with different
// prefixes ("avatars", "posts").
type GCSImageStorage struct {
	Client *gcs.Client
	Bucket string
	Prefix string
}

func NewGCSImageStorage(client *gcs.Client, bucket, prefix string) *GCSImageStorage {
	return &GCSImageStorage{Client: client, Bucket: bucket, Prefix: prefix}
}

// Save writes the image to <prefix>/<ownerID><ext> and returns its public
// URL. The object name carries the owner id so the location is derivable
// from the owning entity alone.
func (s *GCSImageStorage) Save(ctx context.Context, ownerID, fileName string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(fileName))
	objectPath := path.Join(s.Prefix, ownerID+ext)
	contentType := mime.TypeByExtension(ext)
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return helpers.UploadObject(ctx, s.Client, s.Bucket, objectPath, contentType, bytes.NewReader(data))
}

var _ application.ImageStorage = (*GCSImageStorage)(nil)
