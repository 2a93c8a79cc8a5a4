package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/voxlog/speechtotext/domain/entities"
	"github.com/voxlog/speechtotext/domain/repositories"
	"github.com/voxlog/speechtotext/internal/audio"
)

// ErrRecognition marks failures from the speech recognition collaborator, so
// callers can tell an upstream outage apart from a bad upload.
var ErrRecognition = errors.New("speech recognition failed")

// TranscriptionRequest is one incoming upload. The audio bytes are in an
// arbitrary supported container at this point.
type TranscriptionRequest struct {
	Audio    []byte
	MIMEType string
	Email    string
	Title    string
	Filename string
}

// TranscriptionService orchestrates the upload-to-transcript flow
type TranscriptionService struct {
	normalizer   *audio.Normalizer
	speechToText repositories.SpeechToText
	storage      repositories.ObjectStorage
	transcripts  repositories.TranscriptRepository
	language     string
	logger       *zap.Logger
}

// NewTranscriptionService creates a new transcription service
func NewTranscriptionService(
	normalizer *audio.Normalizer,
	stt repositories.SpeechToText,
	storage repositories.ObjectStorage,
	transcripts repositories.TranscriptRepository,
	language string,
	logger *zap.Logger,
) *TranscriptionService {
	return &TranscriptionService{
		normalizer:   normalizer,
		speechToText: stt,
		storage:      storage,
		transcripts:  transcripts,
		language:     language,
		logger:       logger,
	}
}

// Transcribe runs the pipeline end to end: normalize the container, downmix
// to mono, recognize, store the transcript object, then persist the record.
// Stages run in strict order; any failure aborts the request and nothing
// partial is persisted.
func (s *TranscriptionService) Transcribe(ctx context.Context, req TranscriptionRequest) (*entities.Transcript, error) {
	s.logger.Info("Processing upload",
		zap.String("email", req.Email),
		zap.String("title", req.Title),
		zap.String("mimeType", req.MIMEType),
		zap.Int("audioSize", len(req.Audio)))

	// Step 1: normalize to 16-bit PCM WAV at the target sample rate
	normalized, err := s.normalizer.Normalize(ctx, req.Audio)
	if err != nil {
		return nil, fmt.Errorf("normalization failed: %w", err)
	}

	// Step 2: downmix to mono
	wave, err := audio.DecodeWAV(normalized)
	if err != nil {
		return nil, fmt.Errorf("decoding normalized audio failed: %w", err)
	}
	mono, err := audio.Downmix(wave)
	if err != nil {
		return nil, fmt.Errorf("downmix failed: %w", err)
	}
	monoWAV, err := audio.EncodeWAV(mono)
	if err != nil {
		return nil, fmt.Errorf("re-encoding mono audio failed: %w", err)
	}

	// Step 3: speech recognition
	transcription, err := s.speechToText.Transcribe(ctx, monoWAV, repositories.AudioConfig{
		SampleRate: mono.SampleRate,
		Encoding:   "LINEAR16",
		Language:   s.language,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRecognition, err)
	}

	s.logger.Info("Transcription completed",
		zap.Int("sampleRate", mono.SampleRate),
		zap.Int("textLength", len(transcription)))

	// Step 4: store the transcript object
	objectName := fmt.Sprintf("%s.txt", uuid.New().String())
	storageURI, err := s.storage.Save(ctx, objectName, []byte(transcription))
	if err != nil {
		return nil, fmt.Errorf("storing transcript failed: %w", err)
	}

	// Step 5: persist the record
	transcript := entities.NewTranscript(req.Email, req.Title, req.Filename, transcription)
	transcript.StorageURI = storageURI
	if err := s.transcripts.Create(ctx, transcript); err != nil {
		return nil, fmt.Errorf("persisting transcript failed: %w", err)
	}

	s.logger.Info("Transcript persisted",
		zap.String("id", transcript.ID),
		zap.String("storageURI", storageURI))

	return transcript, nil
}

// ListByEmail returns the persisted transcripts for a submitter, newest first.
func (s *TranscriptionService) ListByEmail(ctx context.Context, email string) ([]*entities.Transcript, error) {
	return s.transcripts.GetByEmail(ctx, email)
}
