package scheduling

import (
	"errors"
	"time"

	appointmentRepo "counselhub/database/repository/appointment"
	"counselhub/models"
	"counselhub/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Schedule books an appointment. The algorithm:
//
//  1. resolve counselor and client,
//  2. validate the request fields,
//  3. scan the counselor's slots for one covering the requested date/time,
//  4. reject times not strictly in the future,
//  5. insert; the unique (counselorId, date, time) index turns a lost race
//     into ErrSlotTaken rather than a double booking.
//
// Times compare lexicographically, so callers must send zero-padded 24-hour
// "HH:MM" values.
func (s *DefaultSchedulingService) Schedule(req models.ScheduleRequest) (*models.Appointment, error) {
	if req.CounselorID == "" || req.ClientID == "" || req.SessionType == "" || req.Date == "" || req.Time == "" {
		return nil, utils.NewAppError(utils.CodeValidation, "counselorId, clientId, sessionType, date and time are required")
	}
	if !models.ValidSessionType(req.SessionType) {
		return nil, utils.NewAppError(utils.CodeValidation, "sessionType must be video_call, chat or email")
	}

	counselor, err := s.Counselors.GetByID(req.CounselorID)
	if err != nil {
		return nil, s.storageFailure("Schedule: failed to fetch counselor", err)
	}
	if counselor == nil {
		return nil, ErrCounselorNotFound
	}

	client, err := s.Clients.GetByID(req.ClientID)
	if err != nil {
		return nil, s.storageFailure("Schedule: failed to fetch client", err)
	}
	if client == nil {
		return nil, ErrClientNotFound
	}

	startsAt, err := time.ParseInLocation("2006-01-02 15:04", req.Date+" "+req.Time, time.Local)
	if err != nil {
		return nil, utils.NewAppError(utils.CodeValidation, "date must be YYYY-MM-DD and time must be HH:MM")
	}
	if !startsAt.After(time.Now()) {
		return nil, ErrNotInFuture
	}

	covered := false
	for _, slot := range counselor.Availability {
		if slot.Covers(req.Date, req.Time) {
			covered = true
			break
		}
	}
	if !covered {
		return nil, ErrUnavailable
	}

	// Friendly answer on the common path; the unique index below is what
	// actually closes the race.
	taken, err := s.Appointments.ExistsAt(req.CounselorID, req.Date, req.Time)
	if err != nil {
		return nil, s.storageFailure("Schedule: conflict check failed", err)
	}
	if taken {
		return nil, ErrSlotTaken
	}

	appointment := &models.Appointment{
		ID:          uuid.New().String(),
		CounselorID: req.CounselorID,
		ClientID:    req.ClientID,
		SessionType: req.SessionType,
		Date:        req.Date,
		Time:        req.Time,
		Status:      models.StatusScheduled,
	}
	if err := s.Appointments.Create(appointment); err != nil {
		if errors.Is(err, appointmentRepo.ErrDuplicateSlot) {
			return nil, ErrSlotTaken
		}
		return nil, s.storageFailure("Schedule: failed to persist appointment", err)
	}

	if err := s.Clients.AddAppointment(req.ClientID, appointment.ID); err != nil {
		// The appointment exists; the back-reference is best effort.
		utils.GetLogger().Warn("Schedule: failed to link appointment to client",
			zap.String("appointmentId", appointment.ID), zap.Error(err))
	}

	if s.Reminders != nil {
		if err := s.Reminders.ScheduleReminder(*appointment); err != nil {
			utils.GetLogger().Warn("Schedule: failed to enqueue reminder",
				zap.String("appointmentId", appointment.ID), zap.Error(err))
		}
	}

	return appointment, nil
}

// Get retrieves an appointment by ID.
func (s *DefaultSchedulingService) Get(id string) (*models.Appointment, error) {
	appointment, err := s.Appointments.GetByID(id)
	if err != nil {
		return nil, s.storageFailure("Get: failed to fetch appointment", err)
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	return appointment, nil
}

// ListForClient returns all appointments owned by a client.
func (s *DefaultSchedulingService) ListForClient(clientID string) ([]models.Appointment, error) {
	appointments, err := s.Appointments.ListByClient(clientID)
	if err != nil {
		return nil, s.storageFailure("ListForClient: query failed", err)
	}
	if appointments == nil {
		appointments = []models.Appointment{}
	}
	return appointments, nil
}

// ListForCounselor returns all appointments of a counselor.
func (s *DefaultSchedulingService) ListForCounselor(counselorID string) ([]models.Appointment, error) {
	appointments, err := s.Appointments.ListByCounselor(counselorID)
	if err != nil {
		return nil, s.storageFailure("ListForCounselor: query failed", err)
	}
	if appointments == nil {
		appointments = []models.Appointment{}
	}
	return appointments, nil
}

// UpdateStatus moves an appointment to a new status.
func (s *DefaultSchedulingService) UpdateStatus(id, status string) error {
	if !models.ValidStatus(status) {
		return utils.NewAppError(utils.CodeValidation, "status must be scheduled, completed, canceled or missed")
	}
	matched, err := s.Appointments.UpdateStatus(id, status)
	if err != nil {
		return s.storageFailure("UpdateStatus: update failed", err)
	}
	if !matched {
		return ErrAppointmentNotFound
	}
	return nil
}

func (s *DefaultSchedulingService) storageFailure(msg string, err error) error {
	utils.GetLogger().Error(msg, zap.Error(err))
	return utils.NewAppError(utils.CodeStorage, "operation failed, please try again")
}
