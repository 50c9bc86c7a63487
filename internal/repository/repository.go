package repository

import (
	"context"
	"time"

	"carrental-backend/internal/domain"
)

// StatsBucket is the result of one monthly aggregate query. Zero values
// mean no rows matched, which is not an error.
type StatsBucket struct {
	Count      int64
	TotalPrice float64
}

type ReservationRepository interface {
	// Create persists a new RESERVED reservation and assigns its id and
	// timestamps. Implementations must serialize the overlap check and the
	// insert per vehicle, and fail with domain.ErrVehicleUnavailable when a
	// conflicting RESERVED row exists at insert time.
	Create(ctx context.Context, r *domain.Reservation) error
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	Update(ctx context.Context, r *domain.Reservation) error
	ListAll(ctx context.Context) ([]domain.Reservation, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Reservation, error)
	// ListByVehicle returns every reservation of the vehicle regardless of
	// status, including cancelled and silently completed rows.
	ListByVehicle(ctx context.Context, vehicleID int64) ([]domain.Reservation, error)
	// ListActiveOrFuture returns RESERVED reservations of the vehicle that
	// are ongoing at now or start after it. Silently completed rows (end
	// already passed, status never advanced) are excluded.
	ListActiveOrFuture(ctx context.Context, vehicleID int64, now time.Time) ([]domain.Reservation, error)
	// AreDatesOverlapping reports whether [start, end] touches any RESERVED
	// reservation of the vehicle, boundaries included.
	AreDatesOverlapping(ctx context.Context, vehicleID int64, start, end time.Time) (bool, error)
	// IsOngoingOrCompleted reports whether now falls inside the reservation's
	// window or past its end. Cancelled rows never match.
	IsOngoingOrCompleted(ctx context.Context, id int64, now time.Time) (bool, error)
	ExistsInMonth(ctx context.Context, monthStart, monthEnd time.Time) (bool, error)
	CompletedStats(ctx context.Context, monthStart, monthEnd, now time.Time) (StatsBucket, error)
	OngoingStats(ctx context.Context, monthStart, monthEnd, now time.Time) (StatsBucket, error)
	CancelledStats(ctx context.Context, monthStart, monthEnd time.Time) (StatsBucket, error)
}

type VehicleRepository interface {
	Create(ctx context.Context, v *domain.Vehicle) error
	// GetByID returns the vehicle including retired rows; callers decide
	// whether a retired vehicle is acceptable.
	GetByID(ctx context.Context, id int64) (*domain.Vehicle, error)
	// ListCurrent returns vehicles that have not been retired.
	ListCurrent(ctx context.Context) ([]domain.Vehicle, error)
	Update(ctx context.Context, v *domain.Vehicle) error
	SoftDelete(ctx context.Context, id int64, when time.Time) error
	// Restore clears a soft delete. Used as the compensating action when
	// retirement fails halfway.
	Restore(ctx context.Context, id int64) error
}

type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
