package scheduling

import (
	appointmentRepo "counselhub/database/repository/appointment"
	clientRepo "counselhub/database/repository/client"
	counselorRepo "counselhub/database/repository/counselor"
	"counselhub/models"
)

// SchedulingService books appointments against counselor availability.
type SchedulingService interface {
	// Schedule validates the request against the counselor's slots and
	// existing bookings, persists the appointment and returns it.
	Schedule(req models.ScheduleRequest) (*models.Appointment, error)
	// Get retrieves an appointment by ID.
	Get(id string) (*models.Appointment, error)
	// ListForClient returns all appointments owned by a client.
	ListForClient(clientID string) ([]models.Appointment, error)
	// ListForCounselor returns all appointments of a counselor.
	ListForCounselor(counselorID string) ([]models.Appointment, error)
	// UpdateStatus moves an appointment to a new status.
	UpdateStatus(id, status string) error
}

// ReminderScheduler enqueues a reminder for an upcoming appointment.
// Enqueue failures are logged, never surfaced to the booking caller.
type ReminderScheduler interface {
	ScheduleReminder(appointment models.Appointment) error
}

// DefaultSchedulingService is the production implementation.
type DefaultSchedulingService struct {
	Appointments appointmentRepo.AppointmentRepository
	Counselors   counselorRepo.CounselorRepository
	Clients      clientRepo.ClientRepository
	Reminders    ReminderScheduler // optional
}
