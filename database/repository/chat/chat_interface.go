package chatRepo

import "counselhub/models"

// ChatRepository defines methods for chat-thread data access. There is one
// thread per appointment; messages are embedded in insertion order.
type ChatRepository interface {
	// GetByAppointment retrieves the thread for an appointment, or (nil, nil)
	// if none exists yet.
	GetByAppointment(appointmentID string) (*models.Chat, error)
	// Create inserts a new, empty thread.
	Create(chat *models.Chat) error
	// AppendMessage appends a message to the appointment's thread.
	AppendMessage(appointmentID string, message models.ChatMessage) error
}
