package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// Persistence errors
	ErrStorage = errors.New("storage failure")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrRoleMismatch       = errors.New("user does not have the selected role")
	ErrSessionNotFound    = errors.New("session not found")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")
)

// Student errors
var (
	ErrStudentNotFound       = errors.New("student not found")
	ErrStudentProfileMissing = errors.New("no student profile for this user")
)

// Rank errors
var (
	ErrRankNotFound = errors.New("rank definition not found")
)

// Exam errors
var (
	ErrExamNotAdjacent = errors.New("exam does not target the student's next rank")
)

// CustomError carries an underlying sentinel plus a human-readable message.
type CustomError struct {
	Err     error
	Message string
}

// Error implements the error interface.
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap.
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a validation failure with a message.
func NewValidationError(message string) error {
	return &CustomError{Err: ErrValidationFailed, Message: message}
}

// NewNotFoundError creates a resource-not-found error with a message.
func NewNotFoundError(message string) error {
	return &CustomError{Err: ErrResourceNotFound, Message: message}
}

// NewStorageError wraps a persistence-layer failure.
func NewStorageError(err error, message string) error {
	return &CustomError{Err: errors.Join(ErrStorage, err), Message: message}
}
