package clientRepo

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

// MongoClientRepo implements ClientRepository using MongoDB.
type MongoClientRepo struct {
	coll *mongo.Collection
}

// NewMongoClientRepo creates a new instance of ClientRepository using MongoDB.
func NewMongoClientRepo() ClientRepository {
	coll := database.Collection("clients")
	repo := &MongoClientRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create client indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
// Email uniqueness is per collection, so the same email may exist under the
// counselor role independently.
func (r *MongoClientRepo) ensureIndexes() error {
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

// GetByID retrieves a client by its unique ID.
func (r *MongoClientRepo) GetByID(id string) (*models.Client, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var client models.Client
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&client); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch client with id %s: %w", id, err)
	}
	return &client, nil
}

// GetByEmail retrieves a client by its email address.
func (r *MongoClientRepo) GetByEmail(email string) (*models.Client, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var client models.Client
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&client); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch client with email %s: %w", email, err)
	}
	return &client, nil
}

// Create inserts a new client document.
func (r *MongoClientRepo) Create(client *models.Client) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	client.CreatedAt = now
	client.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, client)
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}
	return nil
}

// UpdateTokenHash stores the hash of the client's current session token.
func (r *MongoClientRepo) UpdateTokenHash(id, tokenHash string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"tokenHash": tokenHash, "updatedAt": time.Now()}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update token hash for client %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("client with id %s not found", id)
	}
	return nil
}

// AddAppointment appends an appointment reference to the client's list.
func (r *MongoClientRepo) AddAppointment(id, appointmentID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{
		"$addToSet": bson.M{"appointments": appointmentID},
		"$set":      bson.M{"updatedAt": time.Now()},
	}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to add appointment to client %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("client with id %s not found", id)
	}
	return nil
}
