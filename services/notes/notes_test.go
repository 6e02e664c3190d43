package notes_test

import (
	"context"
	"errors"
	"testing"

	"counselhub/models"
	"counselhub/services/notes"
	"counselhub/utils"
)

type memNoteRepo struct {
	byAppointment map[string]*models.SessionNote
}

func newMemNoteRepo() *memNoteRepo {
	return &memNoteRepo{byAppointment: map[string]*models.SessionNote{}}
}

func (r *memNoteRepo) GetByAppointment(appointmentID string) (*models.SessionNote, error) {
	if n, ok := r.byAppointment[appointmentID]; ok {
		cp := *n
		return &cp, nil
	}
	return nil, nil
}

func (r *memNoteRepo) Create(note *models.SessionNote) error {
	cp := *note
	r.byAppointment[note.AppointmentID] = &cp
	return nil
}

func (r *memNoteRepo) Update(note *models.SessionNote) error {
	cp := *note
	r.byAppointment[note.AppointmentID] = &cp
	return nil
}

type stubAppointmentRepo struct {
	appointment *models.Appointment
}

func (r *stubAppointmentRepo) Create(*models.Appointment) error { return nil }

func (r *stubAppointmentRepo) GetByID(id string) (*models.Appointment, error) {
	if r.appointment != nil && r.appointment.ID == id {
		cp := *r.appointment
		return &cp, nil
	}
	return nil, nil
}

func (r *stubAppointmentRepo) ExistsAt(string, string, string) (bool, error) { return false, nil }
func (r *stubAppointmentRepo) ListByClient(string) ([]models.Appointment, error) {
	return nil, nil
}
func (r *stubAppointmentRepo) ListByCounselor(string) ([]models.Appointment, error) {
	return nil, nil
}
func (r *stubAppointmentRepo) UpdateStatus(string, string) (bool, error) { return false, nil }

// recordingStorage records deletions so replacement cleanup can be asserted.
type recordingStorage struct {
	deleted []string
}

func (s *recordingStorage) Upload(_ context.Context, localFilePath, _ string) (string, error) {
	return "stored-" + localFilePath, nil
}

func (s *recordingStorage) Delete(_ context.Context, storedID string) error {
	s.deleted = append(s.deleted, storedID)
	return nil
}

func newService(t *testing.T) (notes.NoteService, *recordingStorage) {
	t.Helper()
	storage := &recordingStorage{}
	svc := &notes.DefaultNoteService{
		Notes:        newMemNoteRepo(),
		Appointments: &stubAppointmentRepo{appointment: &models.Appointment{ID: "appt-1"}},
		Storage:      storage,
	}
	return svc, storage
}

func TestUpsertCreate(t *testing.T) {
	svc, _ := newService(t)

	note, err := svc.Upsert("appt-1", "initial observations", "file-1")
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if note.Text != "initial observations" || note.File != "file-1" {
		t.Fatalf("unexpected note: %+v", note)
	}
	if note.ID == "" {
		t.Fatal("empty note id")
	}
}

func TestUpsertCreateRequiresText(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Upsert("appt-1", "", "file-1")
	var appErr *utils.AppError
	if !errors.As(err, &appErr) || appErr.Code != utils.CodeValidation {
		t.Fatalf("want validation error, got %v", err)
	}
}

func TestUpsertPartialUpdate(t *testing.T) {
	svc, _ := newService(t)

	if _, err := svc.Upsert("appt-1", "first draft", "file-1"); err != nil {
		t.Fatalf("create: %v", err)
	}

	// Text-only update keeps the file.
	note, err := svc.Upsert("appt-1", "second draft", "")
	if err != nil {
		t.Fatalf("update text: %v", err)
	}
	if note.Text != "second draft" || note.File != "file-1" {
		t.Fatalf("unexpected note after text update: %+v", note)
	}

	// File-only update keeps the text.
	note, err = svc.Upsert("appt-1", "", "file-2")
	if err != nil {
		t.Fatalf("update file: %v", err)
	}
	if note.Text != "second draft" || note.File != "file-2" {
		t.Fatalf("unexpected note after file update: %+v", note)
	}
}

func TestUpsertFileReplacementDeletesOld(t *testing.T) {
	svc, storage := newService(t)

	if _, err := svc.Upsert("appt-1", "notes", "file-1"); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Upsert("appt-1", "", "file-2"); err != nil {
		t.Fatalf("replace file: %v", err)
	}

	if len(storage.deleted) != 1 || storage.deleted[0] != "file-1" {
		t.Fatalf("want old file deleted, got %v", storage.deleted)
	}
}

func TestUpsertSameFileNotDeleted(t *testing.T) {
	svc, storage := newService(t)

	if _, err := svc.Upsert("appt-1", "notes", "file-1"); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Upsert("appt-1", "more notes", "file-1"); err != nil {
		t.Fatalf("update: %v", err)
	}
	if len(storage.deleted) != 0 {
		t.Fatalf("unexpected deletions: %v", storage.deleted)
	}
}

func TestUpsertUnknownAppointment(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Upsert("nobody", "text", "")
	var appErr *utils.AppError
	if !errors.As(err, &appErr) || appErr.Code != utils.CodeNotFound {
		t.Fatalf("want not_found, got %v", err)
	}
}

func TestGetNotFound(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Get("appt-1")
	var appErr *utils.AppError
	if !errors.As(err, &appErr) || appErr.Code != utils.CodeNotFound {
		t.Fatalf("want not_found, got %v", err)
	}
}
