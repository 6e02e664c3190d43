package noteRepo

import (
	"context"
	"fmt"
	"time"

	"counselhub/database"
	"counselhub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoNoteRepo implements NoteRepository using MongoDB.
type MongoNoteRepo struct {
	coll *mongo.Collection
}

// NewMongoNoteRepo creates a new instance of NoteRepository using MongoDB.
func NewMongoNoteRepo() NoteRepository {
	coll := database.Collection("session_notes")
	repo := &MongoNoteRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create session note indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoNoteRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "appointmentId", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByAppointment retrieves the note for an appointment.
func (r *MongoNoteRepo) GetByAppointment(appointmentID string) (*models.SessionNote, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var note models.SessionNote
	if err := r.coll.FindOne(ctx, bson.M{"appointmentId": appointmentID}).Decode(&note); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch note for appointment %s: %w", appointmentID, err)
	}
	return &note, nil
}

// Create inserts a new session note document.
func (r *MongoNoteRepo) Create(note *models.SessionNote) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	note.CreatedAt = now
	note.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, note)
	if err != nil {
		return fmt.Errorf("failed to create session note: %w", err)
	}
	return nil
}

// Update replaces the stored text and file fields of an existing note.
func (r *MongoNoteRepo) Update(note *models.SessionNote) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	note.UpdatedAt = time.Now()
	update := bson.M{"$set": bson.M{
		"text":      note.Text,
		"file":      note.File,
		"updatedAt": note.UpdatedAt,
	}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"appointmentId": note.AppointmentID}, update)
	if err != nil {
		return fmt.Errorf("failed to update note for appointment %s: %w", note.AppointmentID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("note for appointment %s not found", note.AppointmentID)
	}
	return nil
}
