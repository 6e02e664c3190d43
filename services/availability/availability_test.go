package availability_test

import (
	"errors"
	"testing"

	"counselhub/models"
	"counselhub/services/availability"
	"counselhub/utils"
)

type memCounselorRepo struct {
	counselors map[string]*models.Counselor
}

func newMemCounselorRepo() *memCounselorRepo {
	return &memCounselorRepo{counselors: map[string]*models.Counselor{}}
}

func (r *memCounselorRepo) GetByID(id string) (*models.Counselor, error) {
	if c, ok := r.counselors[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, nil
}

func (r *memCounselorRepo) GetByEmail(string) (*models.Counselor, error) { return nil, nil }
func (r *memCounselorRepo) GetAll() ([]models.Counselor, error)         { return nil, nil }

func (r *memCounselorRepo) Create(counselor *models.Counselor) error {
	cp := *counselor
	r.counselors[counselor.ID] = &cp
	return nil
}

func (r *memCounselorRepo) UpdateTokenHash(string, string) error { return nil }

func (r *memCounselorRepo) ReplaceAvailability(id string, slots []models.AvailabilitySlot) error {
	if c, ok := r.counselors[id]; ok {
		c.Availability = slots
	}
	return nil
}

func newService(t *testing.T) (availability.AvailabilityService, *memCounselorRepo) {
	t.Helper()
	repo := newMemCounselorRepo()
	repo.counselors["counselor-1"] = &models.Counselor{ID: "counselor-1", Name: "Casey"}
	return &availability.DefaultAvailabilityService{Counselors: repo}, repo
}

func validationCode(t *testing.T, err error) {
	t.Helper()
	var appErr *utils.AppError
	if !errors.As(err, &appErr) || appErr.Code != utils.CodeValidation {
		t.Fatalf("want validation error, got %v", err)
	}
}

func TestSetReplacesSlots(t *testing.T) {
	svc, repo := newService(t)

	first := []models.AvailabilitySlot{
		{Date: "2030-03-10", StartTime: "09:00", EndTime: "10:00"},
		{Date: "2030-03-11", StartTime: "14:00", EndTime: "16:00"},
	}
	if err := svc.Set("counselor-1", first); err != nil {
		t.Fatalf("set: %v", err)
	}

	second := []models.AvailabilitySlot{
		{Date: "2030-03-12", StartTime: "08:00", EndTime: "09:00"},
	}
	if err := svc.Set("counselor-1", second); err != nil {
		t.Fatalf("replace: %v", err)
	}

	stored, _ := repo.GetByID("counselor-1")
	if len(stored.Availability) != 1 || stored.Availability[0].Date != "2030-03-12" {
		t.Fatalf("slots not replaced: %v", stored.Availability)
	}
}

func TestSetValidation(t *testing.T) {
	svc, _ := newService(t)

	tests := []struct {
		name  string
		slots []models.AvailabilitySlot
	}{
		{"empty list", nil},
		{"missing date", []models.AvailabilitySlot{{StartTime: "09:00", EndTime: "10:00"}}},
		{"missing start", []models.AvailabilitySlot{{Date: "2030-03-10", EndTime: "10:00"}}},
		{"missing end", []models.AvailabilitySlot{{Date: "2030-03-10", StartTime: "09:00"}}},
		{"start after end", []models.AvailabilitySlot{{Date: "2030-03-10", StartTime: "11:00", EndTime: "10:00"}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			validationCode(t, svc.Set("counselor-1", tc.slots))
		})
	}
}

func TestSetUnknownCounselor(t *testing.T) {
	svc, _ := newService(t)

	err := svc.Set("nobody", []models.AvailabilitySlot{
		{Date: "2030-03-10", StartTime: "09:00", EndTime: "10:00"},
	})
	var appErr *utils.AppError
	if !errors.As(err, &appErr) || appErr.Code != utils.CodeNotFound {
		t.Fatalf("want not_found, got %v", err)
	}
}

func TestGetDefaultsToEmpty(t *testing.T) {
	svc, _ := newService(t)

	slots, err := svc.Get("counselor-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if slots == nil {
		t.Fatal("want empty slice, got nil")
	}
	if len(slots) != 0 {
		t.Fatalf("want 0 slots, got %d", len(slots))
	}
}
