// Package apperrors defines the error taxonomy surfaced by the core
// services. Callers classify failures with errors.Is against the sentinels
// and map them to transport codes with HTTPStatus.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrValidation indicates malformed input (bad date/time, out-of-range stars)
	ErrValidation = errors.New("validation failed")
	// ErrUnauthenticated indicates the actor carries no identity
	ErrUnauthenticated = errors.New("authentication required")
	// ErrUnauthorized indicates the actor lacks rights over the target entity
	ErrUnauthorized = errors.New("not authorized")
	// ErrNotFound indicates a missing entity by id
	ErrNotFound = errors.New("not found")
	// ErrInvalidTransition indicates an illegal booking or ride status change
	ErrInvalidTransition = errors.New("invalid state transition")
	// ErrCapacity indicates the ride has no seats left
	ErrCapacity = errors.New("no seats available")
	// ErrDuplicateBooking indicates the rider already booked this ride
	ErrDuplicateBooking = errors.New("ride already booked")
	// ErrSelfBooking indicates a driver attempted to book their own ride
	ErrSelfBooking = errors.New("cannot book own ride")
)

// Wrap annotates a sentinel with context while keeping it matchable
// through errors.Is.
func Wrap(sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), sentinel)
}

// HTTPStatus maps a service error to an HTTP status code.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidTransition),
		errors.Is(err, ErrCapacity),
		errors.Is(err, ErrDuplicateBooking),
		errors.Is(err, ErrSelfBooking):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
