package chat

import (
	"time"

	appointmentRepo "counselhub/database/repository/appointment"
	chatRepo "counselhub/database/repository/chat"
	"counselhub/models"
	"counselhub/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ChatService manages per-appointment message threads.
type ChatService interface {
	// Thread returns the appointment's message thread, creating an empty one
	// on first access.
	Thread(appointmentID string) (*models.Chat, error)
	// Post appends a message. Only the appointment's client or counselor may
	// post; the sender role is derived from the caller, never supplied.
	Post(appointmentID, callerID, text string) (*models.ChatMessage, error)
}

// DefaultChatService is the production implementation.
type DefaultChatService struct {
	Chats        chatRepo.ChatRepository
	Appointments appointmentRepo.AppointmentRepository
}

var (
	errAppointmentNotFound = utils.NewAppError(utils.CodeNotFound, "appointment not found")
	errNotParticipant      = utils.NewAppError(utils.CodeForbidden, "only the appointment's client or counselor may post")
)

// Thread returns the appointment's message thread, creating it if needed.
func (s *DefaultChatService) Thread(appointmentID string) (*models.Chat, error) {
	appointment, err := s.Appointments.GetByID(appointmentID)
	if err != nil {
		return nil, s.storageFailure("ChatThread: failed to fetch appointment", err)
	}
	if appointment == nil {
		return nil, errAppointmentNotFound
	}

	thread, err := s.Chats.GetByAppointment(appointmentID)
	if err != nil {
		return nil, s.storageFailure("ChatThread: failed to fetch thread", err)
	}
	if thread != nil {
		return thread, nil
	}

	thread = &models.Chat{
		ID:            uuid.New().String(),
		AppointmentID: appointmentID,
		Messages:      []models.ChatMessage{},
	}
	if err := s.Chats.Create(thread); err != nil {
		return nil, s.storageFailure("ChatThread: failed to create thread", err)
	}
	return thread, nil
}

// Post appends a message to the appointment's thread.
func (s *DefaultChatService) Post(appointmentID, callerID, text string) (*models.ChatMessage, error) {
	if text == "" {
		return nil, utils.NewAppError(utils.CodeValidation, "message text is required")
	}

	appointment, err := s.Appointments.GetByID(appointmentID)
	if err != nil {
		return nil, s.storageFailure("ChatPost: failed to fetch appointment", err)
	}
	if appointment == nil {
		return nil, errAppointmentNotFound
	}

	var sender models.Role
	switch callerID {
	case appointment.ClientID:
		sender = models.RoleClient
	case appointment.CounselorID:
		sender = models.RoleCounselor
	default:
		return nil, errNotParticipant
	}

	// Create the thread lazily so a first message does not require a prior
	// Thread call.
	if _, err := s.Thread(appointmentID); err != nil {
		return nil, err
	}

	message := models.ChatMessage{
		Sender:    sender,
		Text:      text,
		Timestamp: time.Now(),
	}
	if err := s.Chats.AppendMessage(appointmentID, message); err != nil {
		return nil, s.storageFailure("ChatPost: failed to append message", err)
	}
	return &message, nil
}

func (s *DefaultChatService) storageFailure(msg string, err error) error {
	utils.GetLogger().Error(msg, zap.Error(err))
	return utils.NewAppError(utils.CodeStorage, "operation failed, please try again")
}
