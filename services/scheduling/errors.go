package scheduling

import "counselhub/utils"

var (
	// ErrCounselorNotFound: the referenced counselor does not exist.
	ErrCounselorNotFound = utils.NewAppError(utils.CodeNotFound, "counselor not found")

	// ErrClientNotFound: the referenced client does not exist.
	ErrClientNotFound = utils.NewAppError(utils.CodeNotFound, "client not found")

	// ErrAppointmentNotFound: the referenced appointment does not exist.
	ErrAppointmentNotFound = utils.NewAppError(utils.CodeNotFound, "appointment not found")

	// ErrUnavailable: no availability slot covers the requested date and time.
	ErrUnavailable = utils.NewAppError(utils.CodeUnavailable, "counselor is not available at this time")

	// ErrSlotTaken: the counselor already has an appointment at that date and
	// time. Enforced by a unique index, so concurrent requests cannot both win.
	ErrSlotTaken = utils.NewAppError(utils.CodeSlotTaken, "this time slot is already booked")

	// ErrNotInFuture: the requested date and time is not strictly in the future.
	ErrNotInFuture = utils.NewAppError(utils.CodeInvalidTime, "appointment time must be in the future")
)
