package chatRepo

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

// MongoChatRepo implements ChatRepository using MongoDB.
type MongoChatRepo struct {
	coll *mongo.Collection
}

// NewMongoChatRepo creates a new instance of ChatRepository using MongoDB.
func NewMongoChatRepo() ChatRepository {
	coll := database.Collection("chats")
	repo := &MongoChatRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create chat indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoChatRepo) ensureIndexes() error {
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

// GetByAppointment retrieves the thread for an appointment.
func (r *MongoChatRepo) GetByAppointment(appointmentID string) (*models.Chat, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var chat models.Chat
	if err := r.coll.FindOne(ctx, bson.M{"appointmentId": appointmentID}).Decode(&chat); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch chat for appointment %s: %w", appointmentID, err)
	}
	if chat.Messages == nil {
		chat.Messages = []models.ChatMessage{}
	}
	return &chat, nil
}

// Create inserts a new, empty thread.
func (r *MongoChatRepo) Create(chat *models.Chat) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	chat.CreatedAt = now
	chat.UpdatedAt = now
	if chat.Messages == nil {
		chat.Messages = []models.ChatMessage{}
	}

	_, err := r.coll.InsertOne(ctx, chat)
	if err != nil {
		return fmt.Errorf("failed to create chat: %w", err)
	}
	return nil
}

// AppendMessage appends a message to the appointment's thread.
func (r *MongoChatRepo) AppendMessage(appointmentID string, message models.ChatMessage) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{
		"$push": bson.M{"messages": message},
		"$set":  bson.M{"updatedAt": time.Now()},
	}
	result, err := r.coll.UpdateOne(ctx, bson.M{"appointmentId": appointmentID}, update)
	if err != nil {
		return fmt.Errorf("failed to append message for appointment %s: %w", appointmentID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("chat for appointment %s not found", appointmentID)
	}
	return nil
}
