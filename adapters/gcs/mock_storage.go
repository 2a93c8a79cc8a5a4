package gcs

import (
	"context"
	"fmt"

	"github.com/voxlog/speechtotext/domain/repositories"
)

// MockObjectStorage keeps saved objects in memory for tests.
type MockObjectStorage struct {
	// Err, when set, is returned by Save.
	Err error

	Objects map[string][]byte
}

func NewMockObjectStorage() *MockObjectStorage {
	return &MockObjectStorage{Objects: make(map[string][]byte)}
}

func (s *MockObjectStorage) Save(ctx context.Context, name string, data []byte) (string, error) {
	if s.Err != nil {
		return "", s.Err
	}
	s.Objects[name] = data
	return fmt.Sprintf("gs://mock-bucket/%s", name), nil
}

var _ repositories.ObjectStorage = &MockObjectStorage{}
