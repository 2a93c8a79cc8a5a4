package stt

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/voxlog/speechtotext/domain/repositories"
)

// MockSpeechToText is a placeholder implementation for speech recognition
type MockSpeechToText struct {
	logger *zap.Logger

	// Transcription is returned for every request.
	Transcription string
	// Err, when set, is returned instead.
	Err error
}

// NewMockSpeechToText creates a new mock speech-to-text service
func NewMockSpeechToText(logger *zap.Logger) *MockSpeechToText {
	return &MockSpeechToText{
		logger:        logger,
		Transcription: "mock transcription result",
	}
}

// Transcribe returns the canned transcription
func (s *MockSpeechToText) Transcribe(ctx context.Context, audioData []byte, config repositories.AudioConfig) (string, error) {
	s.logger.Info("Mock transcription requested",
		zap.Int("audioSize", len(audioData)),
		zap.Int("sampleRate", config.SampleRate),
		zap.String("encoding", config.Encoding),
		zap.String("language", config.Language))

	if s.Err != nil {
		return "", s.Err
	}
	if len(audioData) == 0 {
		return "", fmt.Errorf("no audio data received")
	}
	return s.Transcription, nil
}

var _ repositories.SpeechToText = &MockSpeechToText{}
