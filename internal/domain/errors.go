// Sentinel errors shared across services and handlers. Higher layers
// match on these with errors.Is to pick a transport status; none of them
// is ever retried inside the core.
package domain

import (
	"errors"
	"fmt"
)

var (
	ErrVehicleNotFound    = errors.New("vehicle not found")
	ErrVehicleUnavailable = errors.New("vehicle is not available for the selected dates")
	ErrInvalidInterval    = errors.New("end date must be after start date")

	ErrReservationNotFound           = errors.New("reservation not found")
	ErrReservationAlreadyCancelled   = errors.New("reservation is already cancelled")
	ErrReservationOngoingOrCompleted = errors.New("cannot cancel an ongoing or completed reservation")

	ErrInvalidDateFormat      = errors.New("invalid date format, expected MM-YYYY")
	ErrNoReservationsForMonth = errors.New("there are no reservations for the given month")

	ErrUnauthorized       = errors.New("you don't have permission to perform this action")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user already exists with this username/email")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// PersistenceError wraps a storage failure with the operation and entity
// it happened on. It is surfaced as-is; callers log it and map it to a
// transport-level failure.
type PersistenceError struct {
	Op     string
	Entity string
	ID     int64
	Err    error
}

func (e *PersistenceError) Error() string {
	if e.ID != 0 {
		return fmt.Sprintf("%s %s id=%d: %v", e.Op, e.Entity, e.ID, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Entity, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
