package gcs

import (
	"context"
	"fmt"

	"cloud.google.com/go/storage"

	"github.com/voxlog/speechtotext/domain/repositories"
)

// ObjectStorage implements transcript storage on a Google Cloud Storage
// bucket. The client is created once at startup; its lifecycle is owned by
// the caller.
type ObjectStorage struct {
	client *storage.Client
	bucket string
}

// NewObjectStorage creates the adapter with its own storage client.
func NewObjectStorage(ctx context.Context, bucket string) (*ObjectStorage, error) {
	if bucket == "" {
		return nil, fmt.Errorf("storage bucket name is required")
	}
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	return &ObjectStorage{client: client, bucket: bucket}, nil
}

// Save writes data under the given object name and returns its gs:// URI.
func (s *ObjectStorage) Save(ctx context.Context, name string, data []byte) (string, error) {
	w := s.client.Bucket(s.bucket).Object(name).NewWriter(ctx)
	w.ContentType = "text/plain; charset=utf-8"

	if _, err := w.Write(data); err != nil {
		w.Close()
		return "", fmt.Errorf("failed to write object %s: %w", name, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize object %s: %w", name, err)
	}

	return fmt.Sprintf("gs://%s/%s", s.bucket, name), nil
}

// Close releases the underlying storage client.
func (s *ObjectStorage) Close() error {
	return s.client.Close()
}

var _ repositories.ObjectStorage = &ObjectStorage{}
