package entities

import (
	"errors"
	"strings"
	"time"
)

// Transcript represents a persisted transcription result
type Transcript struct {
	ID         string    `json:"id" bson:"-"`
	Email      string    `json:"email" bson:"email"`
	Title      string    `json:"title" bson:"title"`
	Filename   string    `json:"filename" bson:"filename"`
	StorageURI string    `json:"storage_uri" bson:"storage_uri"`
	Text       string    `json:"text" bson:"text"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
}

// NewTranscript creates a transcript record for an upload
func NewTranscript(email, title, filename, text string) *Transcript {
	return &Transcript{
		Email:     email,
		Title:     title,
		Filename:  filename,
		Text:      text,
		CreatedAt: time.Now(),
	}
}

// Domain validation methods
func (t *Transcript) Validate() error {
	if t.Email == "" {
		return errors.New("email is required")
	}
	if !strings.Contains(t.Email, "@") {
		return errors.New("email is malformed")
	}
	if t.Title == "" {
		return errors.New("title is required")
	}
	if t.Text == "" {
		return errors.New("transcript text is empty")
	}
	return nil
}
