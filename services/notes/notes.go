package notes

import (
	"context"
	"time"

	appointmentRepo "counselhub/database/repository/appointment"
	noteRepo "counselhub/database/repository/sessionnote"
	"counselhub/models"
	"counselhub/services/storage"
	"counselhub/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// NoteService manages the one-note-per-appointment store.
type NoteService interface {
	// Upsert creates the appointment's note on first submission and updates
	// it in place afterwards. Omitted fields are preserved, not nulled. A new
	// file replaces the previous one; the old stored file is deleted best
	// effort.
	Upsert(appointmentID, text, fileID string) (*models.SessionNote, error)
	// Get returns the appointment's note.
	Get(appointmentID string) (*models.SessionNote, error)
}

// DefaultNoteService is the production implementation.
type DefaultNoteService struct {
	Notes        noteRepo.NoteRepository
	Appointments appointmentRepo.AppointmentRepository
	Storage      storage.Service
}

var (
	errAppointmentNotFound = utils.NewAppError(utils.CodeNotFound, "appointment not found")
	errNoteNotFound        = utils.NewAppError(utils.CodeNotFound, "session notes not found")
)

// Upsert creates or updates the note for an appointment. fileID is the
// already-stored file identifier, or empty when no file was uploaded.
func (s *DefaultNoteService) Upsert(appointmentID, text, fileID string) (*models.SessionNote, error) {
	appointment, err := s.Appointments.GetByID(appointmentID)
	if err != nil {
		return nil, s.storageFailure("UpsertNote: failed to fetch appointment", err)
	}
	if appointment == nil {
		return nil, errAppointmentNotFound
	}

	note, err := s.Notes.GetByAppointment(appointmentID)
	if err != nil {
		return nil, s.storageFailure("UpsertNote: failed to fetch note", err)
	}

	if note == nil {
		if text == "" {
			return nil, utils.NewAppError(utils.CodeValidation, "notes text is required")
		}
		note = &models.SessionNote{
			ID:            uuid.New().String(),
			AppointmentID: appointmentID,
			Text:          text,
			File:          fileID,
		}
		if err := s.Notes.Create(note); err != nil {
			return nil, s.storageFailure("UpsertNote: failed to create note", err)
		}
		return note, nil
	}

	if text != "" {
		note.Text = text
	}
	if fileID != "" {
		if old := note.File; old != "" && old != fileID {
			s.deleteStoredFile(old)
		}
		note.File = fileID
	}
	if err := s.Notes.Update(note); err != nil {
		return nil, s.storageFailure("UpsertNote: failed to update note", err)
	}
	return note, nil
}

// Get returns the appointment's note.
func (s *DefaultNoteService) Get(appointmentID string) (*models.SessionNote, error) {
	note, err := s.Notes.GetByAppointment(appointmentID)
	if err != nil {
		return nil, s.storageFailure("GetNote: failed to fetch note", err)
	}
	if note == nil {
		return nil, errNoteNotFound
	}
	return note, nil
}

// deleteStoredFile removes a replaced attachment. Deletion failure leaves an
// orphaned file and is logged, never surfaced.
func (s *DefaultNoteService) deleteStoredFile(storedID string) {
	if s.Storage == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.Storage.Delete(ctx, storedID); err != nil {
		utils.GetLogger().Warn("UpsertNote: failed to delete replaced file",
			zap.String("file", storedID), zap.Error(err))
	}
}

func (s *DefaultNoteService) storageFailure(msg string, err error) error {
	utils.GetLogger().Error(msg, zap.Error(err))
	return utils.NewAppError(utils.CodeStorage, "operation failed, please try again")
}
