package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	appointmentRepo "counselhub/database/repository/appointment"
	clientRepo "counselhub/database/repository/client"
	counselorRepo "counselhub/database/repository/counselor"
	"counselhub/models"
	"counselhub/services/notification"
	"counselhub/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeReminderSend = "reminder:send"

// reminderLead is how long before the session the reminder goes out.
const reminderLead = time.Hour

type reminderPayload struct {
	AppointmentID string `json:"appointmentId"`
}

// ReminderQueue is the enqueue side of the reminder pipeline. It satisfies
// scheduling.ReminderScheduler.
type ReminderQueue struct {
	client *asynq.Client
}

// NewReminderQueue builds a queue client over the given Redis connection.
func NewReminderQueue(redisOpts asynq.RedisClientOpt) *ReminderQueue {
	return &ReminderQueue{client: asynq.NewClient(redisOpts)}
}

// ScheduleReminder enqueues a reminder task to fire one hour before the
// appointment starts. Appointments closer than the lead time are reminded
// immediately.
func (q *ReminderQueue) ScheduleReminder(appointment models.Appointment) error {
	startsAt, err := appointment.StartsAt()
	if err != nil {
		return fmt.Errorf("reminder: unparseable appointment time: %w", err)
	}

	payload, err := json.Marshal(reminderPayload{AppointmentID: appointment.ID})
	if err != nil {
		return fmt.Errorf("reminder: failed to encode payload: %w", err)
	}

	processAt := startsAt.Add(-reminderLead)
	if processAt.Before(time.Now()) {
		processAt = time.Now()
	}

	task := asynq.NewTask(TypeReminderSend, payload)
	if _, err := q.client.Enqueue(task, asynq.ProcessAt(processAt)); err != nil {
		return fmt.Errorf("reminder: enqueue failed: %w", err)
	}
	return nil
}

// ReminderWorker consumes reminder tasks and emails both parties.
type ReminderWorker struct {
	Appointments appointmentRepo.AppointmentRepository
	Clients      clientRepo.ClientRepository
	Counselors   counselorRepo.CounselorRepository
	Email        notification.EmailSender
}

// Start runs the asynq server in the background. The API keeps serving if
// the worker cannot start.
func (w *ReminderWorker) Start(redisOpts asynq.RedisClientOpt) {
	srv := asynq.NewServer(redisOpts, asynq.Config{
		Concurrency: 10,
		Queues:      map[string]int{"default": 1},
	})

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeReminderSend, w.handleReminder)

	go func() {
		if err := srv.Run(mux); err != nil {
			utils.GetLogger().Error("reminder worker stopped", zap.Error(err))
		}
	}()
}

func (w *ReminderWorker) handleReminder(ctx context.Context, task *asynq.Task) error {
	var payload reminderPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("reminder: bad payload: %w", err)
	}

	appointment, err := w.Appointments.GetByID(payload.AppointmentID)
	if err != nil {
		return fmt.Errorf("reminder: failed to load appointment: %w", err)
	}
	// Canceled or deleted appointments get no reminder.
	if appointment == nil || appointment.Status != models.StatusScheduled {
		return nil
	}

	subject := "Upcoming counseling session"
	body := fmt.Sprintf("Your %s session is scheduled for %s at %s.",
		appointment.SessionType, appointment.Date, appointment.Time)

	client, err := w.Clients.GetByID(appointment.ClientID)
	if err != nil {
		return fmt.Errorf("reminder: failed to load client: %w", err)
	}
	if client != nil {
		if err := w.Email.Send(client.Email, client.Name, subject, body); err != nil {
			utils.GetLogger().Warn("reminder: client email failed",
				zap.String("appointmentId", appointment.ID), zap.Error(err))
		}
	}

	counselor, err := w.Counselors.GetByID(appointment.CounselorID)
	if err != nil {
		return fmt.Errorf("reminder: failed to load counselor: %w", err)
	}
	if counselor != nil {
		if err := w.Email.Send(counselor.Email, counselor.Name, subject, body); err != nil {
			utils.GetLogger().Warn("reminder: counselor email failed",
				zap.String("appointmentId", appointment.ID), zap.Error(err))
		}
	}
	return nil
}
