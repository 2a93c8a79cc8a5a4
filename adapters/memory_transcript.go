package adapters

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/voxlog/speechtotext/domain/entities"
	"github.com/voxlog/speechtotext/domain/repositories"
)

// MemoryTranscriptRepository is an in-memory implementation of
// TranscriptRepository, suitable as a simple storage backend and for tests.
type MemoryTranscriptRepository struct {
	mu      sync.RWMutex
	byID    map[string]*entities.Transcript
	byEmail map[string][]*entities.Transcript
}

// NewMemoryTranscriptRepository creates a new in-memory transcript repository
func NewMemoryTranscriptRepository() *MemoryTranscriptRepository {
	return &MemoryTranscriptRepository{
		byID:    make(map[string]*entities.Transcript),
		byEmail: make(map[string][]*entities.Transcript),
	}
}

// Create implements TranscriptRepository interface
func (m *MemoryTranscriptRepository) Create(ctx context.Context, transcript *entities.Transcript) error {
	if transcript == nil {
		return errors.New("transcript cannot be nil")
	}
	if err := transcript.Validate(); err != nil {
		return fmt.Errorf("invalid transcript: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if transcript.ID == "" {
		transcript.ID = uuid.New().String()
	}
	if transcript.CreatedAt.IsZero() {
		transcript.CreatedAt = time.Now()
	}

	m.byID[transcript.ID] = transcript
	m.byEmail[transcript.Email] = append(m.byEmail[transcript.Email], transcript)
	return nil
}

// GetByEmail implements TranscriptRepository interface, newest first
func (m *MemoryTranscriptRepository) GetByEmail(ctx context.Context, email string) ([]*entities.Transcript, error) {
	if email == "" {
		return nil, errors.New("email cannot be empty")
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	transcripts := make([]*entities.Transcript, len(m.byEmail[email]))
	copy(transcripts, m.byEmail[email])
	sort.Slice(transcripts, func(i, j int) bool {
		return transcripts[i].CreatedAt.After(transcripts[j].CreatedAt)
	})
	return transcripts, nil
}

var _ repositories.TranscriptRepository = &MemoryTranscriptRepository{}
