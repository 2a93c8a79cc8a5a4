package repositories

import "context"

// ObjectStorage abstracts the bucket the final transcripts are written to.
type ObjectStorage interface {
	// Save writes data under the given object name and returns the storage URI.
	Save(ctx context.Context, name string, data []byte) (string, error)
}
