package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse defines the structure of error responses
type ErrorResponse struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// ErrorHandler is a middleware to catch panics and return structured errors
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				Logger := GetLogger()
				Logger.Error("Unhandled panic", zap.Any("error", err))

				c.JSON(http.StatusInternalServerError, ErrorResponse{
					Message: "Internal Server Error",
					Details: "An unexpected error occurred. Please try again later.",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// JSONError sends a standardized JSON error response
func JSONError(c *gin.Context, status int, message string, details string) {
	Logger := GetLogger()
	Logger.Warn(message, zap.String("details", details))
	c.JSON(status, ErrorResponse{Message: message, Details: details})
}

// httpStatus maps service error codes onto HTTP statuses. Anything
// unrecognized is treated as an internal storage failure.
func httpStatus(code string) int {
	switch code {
	case CodeValidation, CodeInvalidTime:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeAlreadyExists, CodeUnavailable, CodeSlotTaken:
		return http.StatusConflict
	case CodeInvalidCredentials, CodeInvalidToken:
		return http.StatusUnauthorized
	case CodeForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// RespondError translates a service error into a JSON response. Errors that
// are not AppErrors are reported as opaque internal failures.
func RespondError(c *gin.Context, err error) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		c.JSON(httpStatus(appErr.Code), ErrorResponse{Message: appErr.Message})
		return
	}
	GetLogger().Error("internal error", zap.Error(err))
	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Message: "Internal Server Error",
		Details: "An unexpected error occurred. Please try again later.",
	})
}
