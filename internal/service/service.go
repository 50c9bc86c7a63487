package service

import (
	"context"
	"time"

	"carrental-backend/internal/domain"
)

// ReservationService owns the reservation state machine. It is the only
// component allowed to decide status transitions; the repository only
// executes them.
type ReservationService interface {
	// CreateReservation books the vehicle for the principal in ctx. The
	// duration is truncated to whole days and the total price snapshots the
	// vehicle's daily fee at creation time.
	CreateReservation(ctx context.Context, vehicleID int64, start, end time.Time) (*domain.Reservation, error)
	// CheckAvailability runs the same validation as CreateReservation
	// without persisting. Unavailability is a false return, not an error;
	// an unknown vehicle or a reversed interval still fails.
	CheckAvailability(ctx context.Context, vehicleID int64, start, end time.Time) (bool, error)
	// CancelReservation transitions a strictly-future reservation to
	// CANCELLED. Ongoing or completed reservations cannot be cancelled.
	CancelReservation(ctx context.Context, id int64) (*domain.Reservation, error)
	// CancelReservationsOfVehicle cancels every active-or-future
	// reservation of the vehicle. No reservations is an empty result, not
	// an error.
	CancelReservationsOfVehicle(ctx context.Context, vehicleID int64) ([]domain.Reservation, error)
	// ListActiveOrFutureReservations fails with ErrReservationNotFound when
	// the vehicle has no active-or-future bookings. Callers that treat an
	// empty list as a valid outcome use CancelReservationsOfVehicle or
	// ListReservationsOfCurrentUser instead.
	ListActiveOrFutureReservations(ctx context.Context, vehicleID int64) ([]domain.Reservation, error)
	ListReservationsOfCurrentUser(ctx context.Context) ([]domain.Reservation, error)
	GetReservationByID(ctx context.Context, id int64) (*domain.Reservation, error)
	ListAllReservations(ctx context.Context) ([]domain.Reservation, error)
	// GetReservationStatistics buckets the given MM-YYYY month into
	// COMPLETED, ONGOING and CANCELLED records, in that order.
	GetReservationStatistics(ctx context.Context, period string) ([]domain.ReservationStatistics, error)
}

type VehicleService interface {
	CreateVehicle(ctx context.Context, v *domain.Vehicle) error
	GetVehicle(ctx context.Context, id int64) (*domain.Vehicle, error)
	GetVehiclePrice(ctx context.Context, id int64) (float64, error)
	ListVehicles(ctx context.Context) ([]domain.Vehicle, error)
	UpdateVehicle(ctx context.Context, v *domain.Vehicle) (*domain.Vehicle, error)
}

// FleetService coordinates operations that span the vehicle catalog and
// the reservation engine.
type FleetService interface {
	// RetireVehicle soft-deletes the vehicle and cancels its active-or-
	// future reservations as one logical unit: when the bulk cancellation
	// fails the soft delete is compensated, so the vehicle never ends up
	// retired with live bookings.
	RetireVehicle(ctx context.Context, vehicleID int64) ([]domain.Reservation, error)
	ActiveOrFutureReservations(ctx context.Context, vehicleID int64) ([]domain.Reservation, error)
}

type UserService interface {
	GetUser(ctx context.Context, id int64) (*domain.User, error)
}

type AuthService interface {
	Signup(ctx context.Context, user *domain.User, password string) (*domain.User, string, error)
	Login(ctx context.Context, username, password string) (string, error)
}

type EmailService interface {
	SendReservationConfirmation(ctx context.Context, email, name, vehicleName string, start, end time.Time, price float64) error
	SendCancellationNotice(ctx context.Context, email, name, vehicleName, reason string) error
	SendReturnReminder(ctx context.Context, email, name, vehicleName string, end time.Time) error
}
