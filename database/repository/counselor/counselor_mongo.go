package counselorRepo

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

// MongoCounselorRepo implements CounselorRepository using MongoDB.
type MongoCounselorRepo struct {
	coll *mongo.Collection
}

// NewMongoCounselorRepo creates a new instance of CounselorRepository using MongoDB.
func NewMongoCounselorRepo() CounselorRepository {
	coll := database.Collection("counselors")
	repo := &MongoCounselorRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create counselor indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoCounselorRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a counselor by its unique ID.
func (r *MongoCounselorRepo) GetByID(id string) (*models.Counselor, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var counselor models.Counselor
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&counselor); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch counselor with id %s: %w", id, err)
	}
	return &counselor, nil
}

// GetByEmail retrieves a counselor by its email address.
func (r *MongoCounselorRepo) GetByEmail(email string) (*models.Counselor, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var counselor models.Counselor
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&counselor); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch counselor with email %s: %w", email, err)
	}
	return &counselor, nil
}

// GetAll retrieves all counselors with credential fields projected out.
func (r *MongoCounselorRepo) GetAll() ([]models.Counselor, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	proj := bson.M{"passwordHash": 0, "tokenHash": 0}
	opts := options.Find().SetProjection(proj)

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve counselors: %w", err)
	}
	defer cursor.Close(ctx)

	var counselors []models.Counselor
	for cursor.Next(ctx) {
		var c models.Counselor
		if err := cursor.Decode(&c); err != nil {
			return nil, fmt.Errorf("failed to decode counselor: %w", err)
		}
		counselors = append(counselors, c)
	}
	return counselors, nil
}

// Create inserts a new counselor document.
func (r *MongoCounselorRepo) Create(counselor *models.Counselor) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	counselor.CreatedAt = now
	counselor.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, counselor)
	if err != nil {
		return fmt.Errorf("failed to create counselor: %w", err)
	}
	return nil
}

// UpdateTokenHash stores the hash of the counselor's current session token.
func (r *MongoCounselorRepo) UpdateTokenHash(id, tokenHash string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"tokenHash": tokenHash, "updatedAt": time.Now()}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update token hash for counselor %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("counselor with id %s not found", id)
	}
	return nil
}

// ReplaceAvailability replaces the counselor's entire slot list. This is a
// full replace, not a merge.
func (r *MongoCounselorRepo) ReplaceAvailability(id string, slots []models.AvailabilitySlot) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"availability": slots, "updatedAt": time.Now()}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to replace availability for counselor %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("counselor with id %s not found", id)
	}
	return nil
}
