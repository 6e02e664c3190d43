package availability

import (
	counselorRepo "counselhub/database/repository/counselor"
	"counselhub/models"
	"counselhub/utils"

	"go.uber.org/zap"
)

// AvailabilityService manages a counselor's declared slots.
type AvailabilityService interface {
	// Set replaces the counselor's entire slot list. Callers must resend the
	// complete desired list; this is not a merge.
	Set(counselorID string, slots []models.AvailabilitySlot) error
	// Get returns the counselor's current slot list.
	Get(counselorID string) ([]models.AvailabilitySlot, error)
}

// DefaultAvailabilityService is the production implementation.
type DefaultAvailabilityService struct {
	Counselors counselorRepo.CounselorRepository
}

// ValidateSlots checks that every slot carries a date, a start and an end
// time, and that start does not come after end. Overlap between a counselor's
// own slots is allowed.
func ValidateSlots(slots []models.AvailabilitySlot) error {
	for _, slot := range slots {
		if slot.Date == "" || slot.StartTime == "" || slot.EndTime == "" {
			return utils.NewAppError(utils.CodeValidation, "each slot requires a date, start time and end time")
		}
		if slot.StartTime > slot.EndTime {
			return utils.NewAppError(utils.CodeValidation, "slot start time must not be after its end time")
		}
	}
	return nil
}

// Set replaces the counselor's entire slot list.
func (s *DefaultAvailabilityService) Set(counselorID string, slots []models.AvailabilitySlot) error {
	if len(slots) == 0 {
		return utils.NewAppError(utils.CodeValidation, "availability must be a non-empty list of slots")
	}
	if err := ValidateSlots(slots); err != nil {
		return err
	}

	counselor, err := s.Counselors.GetByID(counselorID)
	if err != nil {
		utils.GetLogger().Error("SetAvailability: failed to fetch counselor", zap.Error(err))
		return utils.NewAppError(utils.CodeStorage, "operation failed, please try again")
	}
	if counselor == nil {
		return utils.NewAppError(utils.CodeNotFound, "counselor not found")
	}

	if err := s.Counselors.ReplaceAvailability(counselorID, slots); err != nil {
		utils.GetLogger().Error("SetAvailability: failed to replace slots", zap.Error(err))
		return utils.NewAppError(utils.CodeStorage, "operation failed, please try again")
	}
	return nil
}

// Get returns the counselor's current slot list.
func (s *DefaultAvailabilityService) Get(counselorID string) ([]models.AvailabilitySlot, error) {
	counselor, err := s.Counselors.GetByID(counselorID)
	if err != nil {
		utils.GetLogger().Error("GetAvailability: failed to fetch counselor", zap.Error(err))
		return nil, utils.NewAppError(utils.CodeStorage, "operation failed, please try again")
	}
	if counselor == nil {
		return nil, utils.NewAppError(utils.CodeNotFound, "counselor not found")
	}
	if counselor.Availability == nil {
		return []models.AvailabilitySlot{}, nil
	}
	return counselor.Availability, nil
}
