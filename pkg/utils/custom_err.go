package utils

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrDatabaseError      = errors.New("database error")
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid token")

	ErrItineraryNotFound = errors.New("itinerary not found")
	ErrStartDateInPast   = errors.New("start date cannot be in the past")
	ErrEndBeforeStart    = errors.New("end date must be after start date")
	ErrDaysMismatch      = errors.New("number of days does not match the selected dates")
	ErrGenerationFailed  = errors.New("failed to generate itinerary")
)

// ValidationError reports per-field problems with a request. It matches
// ErrInvalidInput under errors.Is.
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}

func (e *ValidationError) Error() string {
	return "validation failed"
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}
