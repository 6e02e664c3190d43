package counselorRepo

import "counselhub/models"

// CounselorRepository defines methods for counselor account data access.
type CounselorRepository interface {
	// GetByID retrieves a counselor by its unique ID, or (nil, nil) if absent.
	GetByID(id string) (*models.Counselor, error)
	// GetByEmail retrieves a counselor by email, or (nil, nil) if absent.
	GetByEmail(email string) (*models.Counselor, error)
	// GetAll retrieves all counselors without credential material.
	GetAll() ([]models.Counselor, error)
	// Create inserts a new counselor record.
	Create(counselor *models.Counselor) error
	// UpdateTokenHash stores the hash of the counselor's current session token.
	UpdateTokenHash(id, tokenHash string) error
	// ReplaceAvailability replaces the counselor's entire slot list.
	ReplaceAvailability(id string, slots []models.AvailabilitySlot) error
}
