package paymentRepo

import "counselhub/models"

// PaymentRepository defines methods for payment record data access.
type PaymentRepository interface {
	// Create inserts a new payment record.
	Create(payment *models.Payment) error
	// ListByClient retrieves all payment records for a client.
	ListByClient(clientID string) ([]models.Payment, error)
}
