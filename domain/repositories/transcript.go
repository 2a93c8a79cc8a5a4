package repositories

import (
	"context"

	"github.com/voxlog/speechtotext/domain/entities"
)

// TranscriptRepository defines data access methods for transcripts
type TranscriptRepository interface {
	Create(ctx context.Context, transcript *entities.Transcript) error
	GetByEmail(ctx context.Context, email string) ([]*entities.Transcript, error)
}
