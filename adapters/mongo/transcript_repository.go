package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/voxlog/speechtotext/domain/entities"
	"github.com/voxlog/speechtotext/domain/repositories"
)

type TranscriptRepository struct {
	collection *mongo.Collection
}

// NewTranscriptRepository creates a new MongoDB transcript repository
func NewTranscriptRepository(db *mongo.Database) repositories.TranscriptRepository {
	return &TranscriptRepository{
		collection: db.Collection("transcripts"),
	}
}

// Create implements repositories.TranscriptRepository
func (r *TranscriptRepository) Create(ctx context.Context, transcript *entities.Transcript) error {
	if transcript == nil {
		return errors.New("transcript cannot be nil")
	}
	if err := transcript.Validate(); err != nil {
		return fmt.Errorf("invalid transcript: %w", err)
	}

	if transcript.CreatedAt.IsZero() {
		transcript.CreatedAt = time.Now()
	}

	// Convert to MongoDB document
	doc := bson.M{
		"email":       transcript.Email,
		"title":       transcript.Title,
		"filename":    transcript.Filename,
		"storage_uri": transcript.StorageURI,
		"text":        transcript.Text,
		"created_at":  transcript.CreatedAt,
	}

	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("failed to create transcript: %w", err)
	}

	// Set the generated ID back on the entity
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		transcript.ID = oid.Hex()
	}

	return nil
}

// GetByEmail implements repositories.TranscriptRepository
func (r *TranscriptRepository) GetByEmail(ctx context.Context, email string) ([]*entities.Transcript, error) {
	if email == "" {
		return nil, errors.New("email cannot be empty")
	}

	filter := bson.M{"email": email}
	opts := options.Find().SetSort(bson.M{"created_at": -1})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find transcripts for %s: %w", email, err)
	}
	defer cursor.Close(ctx)

	var transcripts []*entities.Transcript
	for cursor.Next(ctx) {
		var doc struct {
			ID         primitive.ObjectID  `bson:"_id"`
			Transcript entities.Transcript `bson:",inline"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode transcript: %w", err)
		}
		t := doc.Transcript
		t.ID = doc.ID.Hex()
		transcripts = append(transcripts, &t)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}

	return transcripts, nil
}
