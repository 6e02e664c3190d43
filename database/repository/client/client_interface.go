package clientRepo

import "counselhub/models"

// ClientRepository defines methods for client account data access.
type ClientRepository interface {
	// GetByID retrieves a client by its unique ID, or (nil, nil) if absent.
	GetByID(id string) (*models.Client, error)
	// GetByEmail retrieves a client by email, or (nil, nil) if absent.
	GetByEmail(email string) (*models.Client, error)
	// Create inserts a new client record.
	Create(client *models.Client) error
	// UpdateTokenHash stores the hash of the client's current session token.
	UpdateTokenHash(id, tokenHash string) error
	// AddAppointment appends an appointment reference to the client's list.
	AddAppointment(id, appointmentID string) error
}
