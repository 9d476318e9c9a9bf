package appointment

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is returned when a queue lookup is missing its
	// doctor, date, or time argument.
	ErrInvalidInput = errors.New("doctor id, date and time are required")

	// ErrNotAuthenticated is returned when booking is attempted without
	// a caller identity on the context.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrNotFound is returned when an appointment id does not resolve.
	ErrNotFound = errors.New("appointment not found")

	// ErrDoctorNotFound is returned when a booking names an unknown doctor.
	ErrDoctorNotFound = errors.New("doctor not found")

	// ErrInvalidTransition is returned for any status change other than
	// confirmed to completed or confirmed to cancelled.
	ErrInvalidTransition = errors.New("invalid status transition")
)

// ValidationError names the first booking field that failed validation.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}
