package api

import "github.com/voxlog/speechtotext/domain/entities"

// TranscriptListResponse represents the response payload for transcript lookup
type TranscriptListResponse struct {
	Email       string                 `json:"email"`
	Transcripts []*entities.Transcript `json:"transcripts"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
