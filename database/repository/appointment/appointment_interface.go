package appointmentRepo

import (
	"errors"

	"counselhub/models"
)

// ErrDuplicateSlot is returned by Create when an appointment already exists
// for the same (counselor, date, time) tuple. The uniqueness lives in a
// compound index, so concurrent schedule calls cannot both win.
var ErrDuplicateSlot = errors.New("appointment slot already taken")

// AppointmentRepository defines methods for appointment data access.
type AppointmentRepository interface {
	// Create inserts a new appointment. Returns ErrDuplicateSlot when the
	// (counselor, date, time) tuple is already booked.
	Create(appointment *models.Appointment) error
	// GetByID retrieves an appointment by ID, or (nil, nil) if absent.
	GetByID(id string) (*models.Appointment, error)
	// ExistsAt reports whether the counselor already has an appointment at
	// the given date and time.
	ExistsAt(counselorID, date, timeOfDay string) (bool, error)
	// ListByClient retrieves all appointments owned by a client.
	ListByClient(clientID string) ([]models.Appointment, error)
	// ListByCounselor retrieves all appointments of a counselor.
	ListByCounselor(counselorID string) ([]models.Appointment, error)
	// UpdateStatus sets the appointment status. Returns (false, nil) when the
	// appointment does not exist.
	UpdateStatus(id, status string) (bool, error)
}
