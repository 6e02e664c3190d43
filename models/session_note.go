package models

import "time"

// SessionNote holds the counselor's free-text notes for an appointment plus
// an optional stored file reference. One note document per appointment.
type SessionNote struct {
	ID            string    `bson:"id" json:"id"`
	AppointmentID string    `bson:"appointmentId" json:"appointmentId"`
	Text          string    `bson:"text" json:"text"`
	File          string    `bson:"file,omitempty" json:"file,omitempty"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updatedAt" json:"updatedAt"`
}
