package api

import (
	"errors"
	"net/http"

	"taskboard/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	ErrCodeUnauthorized       = "ERR_UNAUTHORIZED"
	ErrCodeForbidden          = "ERR_FORBIDDEN"
	ErrCodeSessionExpired     = "ERR_SESSION_EXPIRED"
	ErrCodeInternalError      = "ERR_INTERNAL_ERROR"
	ErrCodeServiceUnavailable = "ERR_SERVICE_UNAVAILABLE"
)

// Opaque error codes carried in registration redirects. Only the code crosses
// the URL boundary, never the raw error text.
const (
	RegisterErrUsernameTaken   = "username_taken"
	RegisterErrInvalidUsername = "invalid_username"
	RegisterErrInvalidPassword = "invalid_password"
	RegisterErrUnavailable     = "store_unavailable"
	RegisterErrFailed          = "registration_failed"
)

// APIError is the JSON error body for authentication and authorization
// failures.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse writes a uniform JSON error.
func ErrorResponse(c *gin.Context, status int, code string, message string) {
	c.JSON(status, APIError{
		Code:    code,
		Message: message,
	})
}

// Unauthorized writes a 401 response.
func Unauthorized(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusUnauthorized, ErrCodeUnauthorized, message)
}

// Forbidden writes a 403 response.
func Forbidden(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusForbidden, ErrCodeForbidden, message)
}

// serviceErrorStatus maps a service failure to the HTTP status used on the
// plain-text task/user endpoints. Validation, not-found and conflict all
// surface as 400, matching the blanket bad-request translation of the API.
func serviceErrorStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrValidation),
		errors.Is(err, service.ErrNotFound),
		errors.Is(err, service.ErrConflict):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
