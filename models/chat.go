package models

import "time"

// ChatMessage is one message in an appointment's thread. Sender is the role
// of the author, derived from the caller's identity, never client-supplied.
type ChatMessage struct {
	Sender    Role      `bson:"sender" json:"sender"`
	Text      string    `bson:"text" json:"text"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
}

// Chat is the ordered message log for an appointment.
type Chat struct {
	ID            string        `bson:"id" json:"id"`
	AppointmentID string        `bson:"appointmentId" json:"appointmentId"`
	Messages      []ChatMessage `bson:"messages" json:"messages"`
	CreatedAt     time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time     `bson:"updatedAt" json:"updatedAt"`
}
