package errors

import (
	"net/http"

	"github.com/pkg/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// Is matches errors carrying the same business code, so that copies made by
// WithDetails still compare equal to the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Alert trigger and resolve errors
	ErrPreconditionUnmet = NewBaseError(
		http.StatusUnprocessableEntity,
		"PRECONDITION_UNMET",
		"Location is unavailable, enable location access and try again",
		"",
	)

	// ErrDirectoryUnavailable is also returned as a non-fatal warning next to a created alert.
	ErrDirectoryUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"DIRECTORY_UNAVAILABLE",
		"Emergency contacts could not be read",
		"",
	)

	ErrLedgerWriteFailed = NewBaseError(
		http.StatusInternalServerError,
		"LEDGER_WRITE_FAILED",
		"The alert could not be saved",
		"",
	)

	ErrAlertAlreadyActive = NewBaseError(
		http.StatusConflict,
		"ALERT_ALREADY_ACTIVE",
		"An alert is already in progress",
		"",
	)

	ErrAlertNotFound = NewBaseError(
		http.StatusNotFound,
		"ALERT_NOT_FOUND",
		"Alert not found",
		"",
	)

	ErrShuttingDown = NewBaseError(
		http.StatusServiceUnavailable,
		"SHUTTING_DOWN",
		"The service is shutting down, try again shortly",
		"",
	)

	// Contact errors
	ErrContactNotFound = NewBaseError(
		http.StatusNotFound,
		"CONTACT_NOT_FOUND",
		"Emergency contact not found",
		"",
	)

	ErrInvalidPhone = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PHONE",
		"Phone number may only contain digits, spaces and +()-",
		"",
	)

	ErrPhoneAlreadyUsed = NewBaseError(
		http.StatusConflict,
		"PHONE_ALREADY_USED",
		"This phone number belongs to another account",
		"",
	)

	// Settings errors
	ErrSOSPinNotSet = NewBaseError(
		http.StatusConflict,
		"SOS_PIN_NOT_SET",
		"No SOS PIN has been set",
		"",
	)

	ErrSOSPinMismatch = NewBaseError(
		http.StatusForbidden,
		"SOS_PIN_MISMATCH",
		"The SOS PIN is not correct",
		"",
	)

	// Safety timer errors
	ErrTimerNotFound = NewBaseError(
		http.StatusNotFound,
		"TIMER_NOT_FOUND",
		"Safety timer not found",
		"",
	)

	ErrTimerNotActive = NewBaseError(
		http.StatusConflict,
		"TIMER_NOT_ACTIVE",
		"Safety timer is no longer running",
		"",
	)

	ErrTimerAlreadyActive = NewBaseError(
		http.StatusConflict,
		"TIMER_ALREADY_ACTIVE",
		"A safety timer is already running",
		"",
	)

	ErrInvalidDuration = NewBaseError(
		http.StatusBadRequest,
		"INVALID_DURATION",
		"Timer duration is out of range",
		"",
	)

	// Device errors
	ErrDeviceNotFound = NewBaseError(
		http.StatusNotFound,
		"DEVICE_NOT_FOUND",
		"Device not found",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// General errors
	ErrNotAuthorized = NewBaseError(
		http.StatusForbidden,
		"NOT_AUTHORIZED",
		"You are not allowed to access this resource",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
