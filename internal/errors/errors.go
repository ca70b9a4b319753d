package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrTaskNotFound is returned when a task does not exist or belongs to another user.
	ErrTaskNotFound = errors.New("task not found")
	// ErrDescriptionRequired is returned when a task is created without a description.
	ErrDescriptionRequired = errors.New("description is required")
	// ErrDescriptionTooLong is returned when a description exceeds the column size.
	ErrDescriptionTooLong = errors.New("description must be at most 80 characters")
	// ErrCompletedRequired is returned when an update omits the boolean completed field.
	ErrCompletedRequired = errors.New("field 'completed' (boolean) is required")
	// ErrInvalidBody is returned when a request body cannot be decoded.
	ErrInvalidBody = errors.New("invalid request body")
	// ErrUnauthenticated is returned when a protected API route is hit without a session.
	ErrUnauthenticated = errors.New("authentication required")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Wrapped errors are unwrapped.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrTaskNotFound):
		return NewHTTPError(http.StatusNotFound, ErrTaskNotFound.Error(), "TASK_NOT_FOUND")
	case errors.Is(err, ErrDescriptionRequired):
		return NewHTTPError(http.StatusBadRequest, ErrDescriptionRequired.Error(), "DESCRIPTION_REQUIRED")
	case errors.Is(err, ErrDescriptionTooLong):
		return NewHTTPError(http.StatusBadRequest, ErrDescriptionTooLong.Error(), "DESCRIPTION_TOO_LONG")
	case errors.Is(err, ErrCompletedRequired):
		return NewHTTPError(http.StatusBadRequest, ErrCompletedRequired.Error(), "COMPLETED_REQUIRED")
	case errors.Is(err, ErrInvalidBody):
		return NewHTTPError(http.StatusBadRequest, ErrInvalidBody.Error(), "INVALID_BODY")
	case errors.Is(err, ErrUnauthenticated):
		return NewHTTPError(http.StatusUnauthorized, ErrUnauthenticated.Error(), "UNAUTHENTICATED")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
