package noteRepo

import "counselhub/models"

// NoteRepository defines methods for session-note data access. Notes are
// keyed one-to-one by appointment ID.
type NoteRepository interface {
	// GetByAppointment retrieves the note for an appointment, or (nil, nil)
	// if none exists yet.
	GetByAppointment(appointmentID string) (*models.SessionNote, error)
	// Create inserts a new note record.
	Create(note *models.SessionNote) error
	// Update replaces the stored text and file fields of an existing note.
	Update(note *models.SessionNote) error
}
