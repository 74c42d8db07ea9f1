package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrReferenceNotFound     = errors.New("referenced resource not found")
	ErrResourceInUse         = errors.New("resource is still referenced")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenNotFound      = errors.New("token not found")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// User errors
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// Domain not-found errors. Each wraps ErrResourceNotFound so the HTTP layer
// can map them with a single errors.Is check.
var (
	ErrEmployeeNotFound = NewNotFoundError("User not found")
	ErrJobTitleNotFound = NewNotFoundError("Job title not found")
	ErrPositionNotFound = NewNotFoundError("Salary record not found")
	ErrNoPositions      = NewNotFoundError("No positions found for this job")
)

// NewNotFoundError creates a CustomError for resource not found with a message
func NewNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewConflictError creates a CustomError for a write rejected by existing data
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrResourceInUse,
		Message: message,
	}
}

// NewReferenceError creates a CustomError for a write pointing at a missing row
func NewReferenceError(field, message string) error {
	return &CustomError{
		Err:     ErrReferenceNotFound,
		Message: message,
		Field:   field,
	}
}

// NewBadRequestError creates a CustomError for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// NewValidationError creates a CustomError for invalid input on a field
func NewValidationError(field, message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
		Field:   field,
	}
}

// Is reports whether err matches target or any of errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// CustomError represents application-specific errors with a caller-facing message
type CustomError struct {
	Err     error
	Message string
	Field   string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// PublicMessage returns the message of the outermost CustomError in err's
// chain, or fallback when there is none.
func PublicMessage(err error, fallback string) string {
	var custom *CustomError
	if errors.As(err, &custom) && custom.Message != "" {
		return custom.Message
	}
	return fallback
}

// FieldOf returns the offending field recorded on a validation error, if any.
func FieldOf(err error) string {
	var custom *CustomError
	if errors.As(err, &custom) {
		return custom.Field
	}
	return ""
}
