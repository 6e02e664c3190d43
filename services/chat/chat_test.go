package chat_test

import (
	"errors"
	"testing"

	"counselhub/models"
	"counselhub/services/chat"
	"counselhub/utils"
)

type memChatRepo struct {
	byAppointment map[string]*models.Chat
}

func newMemChatRepo() *memChatRepo {
	return &memChatRepo{byAppointment: map[string]*models.Chat{}}
}

func (r *memChatRepo) GetByAppointment(appointmentID string) (*models.Chat, error) {
	if c, ok := r.byAppointment[appointmentID]; ok {
		cp := *c
		cp.Messages = append([]models.ChatMessage(nil), c.Messages...)
		return &cp, nil
	}
	return nil, nil
}

func (r *memChatRepo) Create(thread *models.Chat) error {
	cp := *thread
	r.byAppointment[thread.AppointmentID] = &cp
	return nil
}

func (r *memChatRepo) AppendMessage(appointmentID string, message models.ChatMessage) error {
	thread, ok := r.byAppointment[appointmentID]
	if !ok {
		return errors.New("no thread")
	}
	thread.Messages = append(thread.Messages, message)
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

func newService(t *testing.T) (chat.ChatService, *memChatRepo) {
	t.Helper()
	repo := newMemChatRepo()
	svc := &chat.DefaultChatService{
		Chats: repo,
		Appointments: &stubAppointmentRepo{appointment: &models.Appointment{
			ID:          "appt-1",
			ClientID:    "client-1",
			CounselorID: "counselor-1",
		}},
	}
	return svc, repo
}

func TestThreadCreatesEmpty(t *testing.T) {
	svc, _ := newService(t)

	thread, err := svc.Thread("appt-1")
	if err != nil {
		t.Fatalf("thread: %v", err)
	}
	if thread.AppointmentID != "appt-1" {
		t.Fatalf("want appointment appt-1, got %q", thread.AppointmentID)
	}
	if thread.Messages == nil {
		t.Fatal("want empty messages slice, got nil")
	}
	if len(thread.Messages) != 0 {
		t.Fatalf("want 0 messages, got %d", len(thread.Messages))
	}

	// A second call returns the same thread, not a new one.
	again, err := svc.Thread("appt-1")
	if err != nil {
		t.Fatalf("thread again: %v", err)
	}
	if again.ID != thread.ID {
		t.Fatalf("thread recreated: %q vs %q", again.ID, thread.ID)
	}
}

func TestThreadUnknownAppointment(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Thread("nobody")
	var appErr *utils.AppError
	if !errors.As(err, &appErr) || appErr.Code != utils.CodeNotFound {
		t.Fatalf("want not_found, got %v", err)
	}
}

func TestPostDerivesSenderRole(t *testing.T) {
	svc, _ := newService(t)

	fromClient, err := svc.Post("appt-1", "client-1", "hello")
	if err != nil {
		t.Fatalf("post as client: %v", err)
	}
	if fromClient.Sender != models.RoleClient {
		t.Fatalf("want sender client, got %q", fromClient.Sender)
	}

	fromCounselor, err := svc.Post("appt-1", "counselor-1", "hi there")
	if err != nil {
		t.Fatalf("post as counselor: %v", err)
	}
	if fromCounselor.Sender != models.RoleCounselor {
		t.Fatalf("want sender counselor, got %q", fromCounselor.Sender)
	}

	thread, err := svc.Thread("appt-1")
	if err != nil {
		t.Fatalf("thread: %v", err)
	}
	if len(thread.Messages) != 2 {
		t.Fatalf("want 2 messages, got %d", len(thread.Messages))
	}
	if thread.Messages[0].Text != "hello" || thread.Messages[1].Text != "hi there" {
		t.Fatalf("messages out of order: %v", thread.Messages)
	}
}

func TestPostForbiddenForOutsider(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Post("appt-1", "someone-else", "let me in")
	var appErr *utils.AppError
	if !errors.As(err, &appErr) || appErr.Code != utils.CodeForbidden {
		t.Fatalf("want forbidden, got %v", err)
	}
}

func TestPostEmptyText(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Post("appt-1", "client-1", "")
	var appErr *utils.AppError
	if !errors.As(err, &appErr) || appErr.Code != utils.CodeValidation {
		t.Fatalf("want validation error, got %v", err)
	}
}

func TestPostCreatesThreadLazily(t *testing.T) {
	svc, repo := newService(t)

	if _, err := svc.Post("appt-1", "client-1", "first"); err != nil {
		t.Fatalf("post: %v", err)
	}
	thread, _ := repo.GetByAppointment("appt-1")
	if thread == nil || len(thread.Messages) != 1 {
		t.Fatalf("thread not created with message: %+v", thread)
	}
}
