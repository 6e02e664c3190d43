package scheduling_test

import (
	"errors"
	"testing"
	"time"

	appointmentRepo "counselhub/database/repository/appointment"
	"counselhub/models"
	"counselhub/services/scheduling"
	"counselhub/utils"
)

// ----- in-memory repositories -----

type memAppointmentRepo struct {
	appointments map[string]*models.Appointment
	slots        map[string]bool // counselorId|date|time, the unique index
	hideExisting bool            // when set, ExistsAt lies to exercise the index path
}

func newMemAppointmentRepo() *memAppointmentRepo {
	return &memAppointmentRepo{
		appointments: map[string]*models.Appointment{},
		slots:        map[string]bool{},
	}
}

func slotKey(counselorID, date, timeOfDay string) string {
	return counselorID + "|" + date + "|" + timeOfDay
}

func (r *memAppointmentRepo) Create(a *models.Appointment) error {
	key := slotKey(a.CounselorID, a.Date, a.Time)
	if r.slots[key] {
		return appointmentRepo.ErrDuplicateSlot
	}
	r.slots[key] = true
	cp := *a
	r.appointments[a.ID] = &cp
	return nil
}

func (r *memAppointmentRepo) GetByID(id string) (*models.Appointment, error) {
	if a, ok := r.appointments[id]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, nil
}

func (r *memAppointmentRepo) ExistsAt(counselorID, date, timeOfDay string) (bool, error) {
	if r.hideExisting {
		return false, nil
	}
	return r.slots[slotKey(counselorID, date, timeOfDay)], nil
}

func (r *memAppointmentRepo) ListByClient(clientID string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range r.appointments {
		if a.ClientID == clientID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *memAppointmentRepo) ListByCounselor(counselorID string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range r.appointments {
		if a.CounselorID == counselorID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *memAppointmentRepo) UpdateStatus(id, status string) (bool, error) {
	a, ok := r.appointments[id]
	if !ok {
		return false, nil
	}
	a.Status = status
	return true, nil
}

type stubCounselorRepo struct {
	counselor *models.Counselor
}

func (r *stubCounselorRepo) GetByID(id string) (*models.Counselor, error) {
	if r.counselor != nil && r.counselor.ID == id {
		cp := *r.counselor
		return &cp, nil
	}
	return nil, nil
}

func (r *stubCounselorRepo) GetByEmail(string) (*models.Counselor, error)  { return nil, nil }
func (r *stubCounselorRepo) GetAll() ([]models.Counselor, error)          { return nil, nil }
func (r *stubCounselorRepo) Create(*models.Counselor) error               { return nil }
func (r *stubCounselorRepo) UpdateTokenHash(string, string) error         { return nil }
func (r *stubCounselorRepo) ReplaceAvailability(string, []models.AvailabilitySlot) error {
	return nil
}

type stubClientRepo struct {
	client       *models.Client
	appointments []string
}

func (r *stubClientRepo) GetByID(id string) (*models.Client, error) {
	if r.client != nil && r.client.ID == id {
		cp := *r.client
		return &cp, nil
	}
	return nil, nil
}

func (r *stubClientRepo) GetByEmail(string) (*models.Client, error) { return nil, nil }
func (r *stubClientRepo) Create(*models.Client) error               { return nil }
func (r *stubClientRepo) UpdateTokenHash(string, string) error      { return nil }

func (r *stubClientRepo) AddAppointment(id, appointmentID string) error {
	r.appointments = append(r.appointments, appointmentID)
	return nil
}

type recordingReminders struct {
	scheduled []models.Appointment
}

func (r *recordingReminders) ScheduleReminder(a models.Appointment) error {
	r.scheduled = append(r.scheduled, a)
	return nil
}

// ----- helpers -----

func futureDate(t *testing.T) string {
	t.Helper()
	return time.Now().AddDate(0, 0, 2).Format("2006-01-02")
}

func newScheduler(t *testing.T, slotDate string) (*scheduling.DefaultSchedulingService, *memAppointmentRepo, *stubClientRepo, *recordingReminders) {
	t.Helper()
	appointments := newMemAppointmentRepo()
	clients := &stubClientRepo{client: &models.Client{ID: "client-1", Name: "Dana"}}
	counselors := &stubCounselorRepo{counselor: &models.Counselor{
		ID:   "counselor-1",
		Name: "Casey",
		Availability: []models.AvailabilitySlot{
			{Date: slotDate, StartTime: "09:00", EndTime: "10:00"},
		},
	}}
	reminders := &recordingReminders{}
	svc := &scheduling.DefaultSchedulingService{
		Appointments: appointments,
		Counselors:   counselors,
		Clients:      clients,
		Reminders:    reminders,
	}
	return svc, appointments, clients, reminders
}

func scheduleRequest(date, timeOfDay string) models.ScheduleRequest {
	return models.ScheduleRequest{
		CounselorID: "counselor-1",
		ClientID:    "client-1",
		SessionType: models.SessionVideoCall,
		Date:        date,
		Time:        timeOfDay,
	}
}

// ----- tests -----

func TestScheduleWithinSlot(t *testing.T) {
	date := futureDate(t)
	svc, _, clients, reminders := newScheduler(t, date)

	appointment, err := svc.Schedule(scheduleRequest(date, "09:30"))
	if err != nil {
		t.Fatalf("schedule: %v", err)
	}
	if appointment.Status != models.StatusScheduled {
		t.Fatalf("want status scheduled, got %q", appointment.Status)
	}
	if appointment.ID == "" {
		t.Fatal("empty appointment id")
	}
	if len(clients.appointments) != 1 || clients.appointments[0] != appointment.ID {
		t.Fatalf("client back-reference not recorded: %v", clients.appointments)
	}
	if len(reminders.scheduled) != 1 || reminders.scheduled[0].ID != appointment.ID {
		t.Fatalf("reminder not enqueued: %v", reminders.scheduled)
	}
}

func TestScheduleSlotBoundaries(t *testing.T) {
	date := futureDate(t)

	tests := []struct {
		name string
		time string
		ok   bool
	}{
		{"at start", "09:00", true},
		{"inside", "09:30", true},
		{"at end", "10:00", true},
		{"before start", "08:59", false},
		{"after end", "10:30", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc, _, _, _ := newScheduler(t, date)
			_, err := svc.Schedule(scheduleRequest(date, tc.time))
			if tc.ok && err != nil {
				t.Fatalf("want success, got %v", err)
			}
			if !tc.ok && !errors.Is(err, scheduling.ErrUnavailable) {
				t.Fatalf("want ErrUnavailable, got %v", err)
			}
		})
	}
}

func TestScheduleSlotTaken(t *testing.T) {
	date := futureDate(t)
	svc, _, _, _ := newScheduler(t, date)

	if _, err := svc.Schedule(scheduleRequest(date, "09:30")); err != nil {
		t.Fatalf("first schedule: %v", err)
	}
	_, err := svc.Schedule(scheduleRequest(date, "09:30"))
	if !errors.Is(err, scheduling.ErrSlotTaken) {
		t.Fatalf("want ErrSlotTaken, got %v", err)
	}
}

func TestScheduleLostRaceMapsToSlotTaken(t *testing.T) {
	date := futureDate(t)
	svc, appointments, _, _ := newScheduler(t, date)

	if _, err := svc.Schedule(scheduleRequest(date, "09:30")); err != nil {
		t.Fatalf("first schedule: %v", err)
	}
	// Simulate a concurrent booking that the pre-check misses; the insert
	// must still fail on the unique index and surface as ErrSlotTaken.
	appointments.hideExisting = true
	_, err := svc.Schedule(scheduleRequest(date, "09:30"))
	if !errors.Is(err, scheduling.ErrSlotTaken) {
		t.Fatalf("want ErrSlotTaken, got %v", err)
	}
}

func TestSchedulePastTime(t *testing.T) {
	past := time.Now().AddDate(0, 0, -1).Format("2006-01-02")
	svc, _, _, _ := newScheduler(t, past)

	_, err := svc.Schedule(scheduleRequest(past, "09:30"))
	if !errors.Is(err, scheduling.ErrNotInFuture) {
		t.Fatalf("want ErrNotInFuture, got %v", err)
	}
}

func TestScheduleUnknownCounselor(t *testing.T) {
	date := futureDate(t)
	svc, _, _, _ := newScheduler(t, date)

	req := scheduleRequest(date, "09:30")
	req.CounselorID = "nobody"
	_, err := svc.Schedule(req)
	if !errors.Is(err, scheduling.ErrCounselorNotFound) {
		t.Fatalf("want ErrCounselorNotFound, got %v", err)
	}
}

func TestScheduleUnknownClient(t *testing.T) {
	date := futureDate(t)
	svc, _, _, _ := newScheduler(t, date)

	req := scheduleRequest(date, "09:30")
	req.ClientID = "nobody"
	_, err := svc.Schedule(req)
	if !errors.Is(err, scheduling.ErrClientNotFound) {
		t.Fatalf("want ErrClientNotFound, got %v", err)
	}
}

func TestScheduleValidation(t *testing.T) {
	date := futureDate(t)

	tests := []struct {
		name   string
		mutate func(*models.ScheduleRequest)
	}{
		{"missing counselor", func(r *models.ScheduleRequest) { r.CounselorID = "" }},
		{"missing client", func(r *models.ScheduleRequest) { r.ClientID = "" }},
		{"missing session type", func(r *models.ScheduleRequest) { r.SessionType = "" }},
		{"unknown session type", func(r *models.ScheduleRequest) { r.SessionType = "carrier_pigeon" }},
		{"missing date", func(r *models.ScheduleRequest) { r.Date = "" }},
		{"missing time", func(r *models.ScheduleRequest) { r.Time = "" }},
		{"malformed date", func(r *models.ScheduleRequest) { r.Date = "10-03-2030" }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc, _, _, _ := newScheduler(t, date)
			req := scheduleRequest(date, "09:30")
			tc.mutate(&req)
			_, err := svc.Schedule(req)
			if err == nil {
				t.Fatal("want error, got nil")
			}
			var appErr *utils.AppError
			if !errors.As(err, &appErr) || appErr.Code != utils.CodeValidation {
				t.Fatalf("want validation error, got %v", err)
			}
		})
	}
}

func TestUpdateStatus(t *testing.T) {
	date := futureDate(t)
	svc, _, _, _ := newScheduler(t, date)

	appointment, err := svc.Schedule(scheduleRequest(date, "09:30"))
	if err != nil {
		t.Fatalf("schedule: %v", err)
	}

	if err := svc.UpdateStatus(appointment.ID, models.StatusCompleted); err != nil {
		t.Fatalf("update status: %v", err)
	}
	got, err := svc.Get(appointment.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Status != models.StatusCompleted {
		t.Fatalf("want status completed, got %q", got.Status)
	}

	if err := svc.UpdateStatus(appointment.ID, "postponed"); err == nil {
		t.Fatal("want validation error for unknown status")
	}
	if err := svc.UpdateStatus("nobody", models.StatusCanceled); !errors.Is(err, scheduling.ErrAppointmentNotFound) {
		t.Fatalf("want ErrAppointmentNotFound, got %v", err)
	}
}

func TestListForClientEmpty(t *testing.T) {
	svc, _, _, _ := newScheduler(t, futureDate(t))

	appointments, err := svc.ListForClient("client-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if appointments == nil {
		t.Fatal("want empty slice, got nil")
	}
	if len(appointments) != 0 {
		t.Fatalf("want 0 appointments, got %d", len(appointments))
	}
}
