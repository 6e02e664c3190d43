package utils

// Error codes shared by all services. Handlers map these onto HTTP statuses.
const (
	CodeValidation         = "validation_error"
	CodeNotFound           = "not_found"
	CodeAlreadyExists      = "already_exists"
	CodeInvalidCredentials = "invalid_credentials"
	CodeInvalidToken       = "invalid_token"
	CodeUnavailable        = "unavailable"
	CodeSlotTaken          = "slot_taken"
	CodeInvalidTime        = "invalid_time"
	CodeForbidden          = "forbidden"
	CodeStorage            = "storage_error"
)

// AppError is a caller-visible failure with a stable code and a
// human-readable message.
type AppError struct {
	Code    string
	Message string
}

func (e *AppError) Error() string {
	return e.Code + ": " + e.Message
}

func NewAppError(code, message string) *AppError {
	return &AppError{Code: code, Message: message}
}
