package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

type reservationRepository struct {
	db *sql.DB
}

func NewReservationRepository(db *sql.DB) repository.ReservationRepository {
	return &reservationRepository{db: db}
}

// overlapQuery mirrors the inclusive-boundary overlap predicate: BETWEEN
// is inclusive on both ends, so a booking that starts exactly when another
// ends still counts as a conflict.
const overlapQuery = `SELECT EXISTS (
	SELECT 1 FROM reservations
	WHERE vehicle_id = $1 AND status = 'RESERVED'
	  AND ((start_date BETWEEN $2 AND $3)
	    OR (end_date BETWEEN $2 AND $3)
	    OR ($2 BETWEEN start_date AND end_date)))`

const selectReservation = `SELECT r.id, r.user_id, r.vehicle_id, v.brand || ' ' || v.model,
	r.start_date, r.end_date, r.status, r.duration_days, r.total_price, r.created_at, r.updated_at
	FROM reservations r JOIN vehicles v ON v.id = r.vehicle_id`

func (r *reservationRepository) Create(ctx context.Context, res *domain.Reservation) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return &domain.PersistenceError{Op: "create", Entity: "reservation", Err: err}
	}
	defer tx.Rollback()

	// Per-vehicle serialization point. The advisory lock is held until
	// commit or rollback, so two concurrent bookings of the same vehicle
	// cannot interleave the overlap check and the insert.
	if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock($1)`, res.VehicleID); err != nil {
		return &domain.PersistenceError{Op: "lock", Entity: "vehicle", ID: res.VehicleID, Err: err}
	}

	var conflict bool
	if err := tx.QueryRowContext(ctx, overlapQuery, res.VehicleID, res.StartDate, res.EndDate).Scan(&conflict); err != nil {
		return &domain.PersistenceError{Op: "create", Entity: "reservation", Err: err}
	}
	if conflict {
		return domain.ErrVehicleUnavailable
	}

	now := time.Now()
	query := `INSERT INTO reservations (user_id, vehicle_id, start_date, end_date, status, duration_days, total_price, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	if err := tx.QueryRowContext(ctx, query,
		res.UserID, res.VehicleID, res.StartDate, res.EndDate, res.Status,
		res.DurationDays, res.TotalPrice, now, now).Scan(&res.ID); err != nil {
		return &domain.PersistenceError{Op: "create", Entity: "reservation", Err: err}
	}
	res.CreatedAt = now
	res.UpdatedAt = now

	if err := tx.Commit(); err != nil {
		return &domain.PersistenceError{Op: "create", Entity: "reservation", Err: err}
	}
	return nil
}

func (r *reservationRepository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	res := &domain.Reservation{}
	err := r.db.QueryRowContext(ctx, selectReservation+` WHERE r.id = $1`, id).Scan(
		&res.ID, &res.UserID, &res.VehicleID, &res.VehicleName,
		&res.StartDate, &res.EndDate, &res.Status, &res.DurationDays,
		&res.TotalPrice, &res.CreatedAt, &res.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrReservationNotFound
	}
	if err != nil {
		return nil, &domain.PersistenceError{Op: "get", Entity: "reservation", ID: id, Err: err}
	}
	return res, nil
}

func (r *reservationRepository) Update(ctx context.Context, res *domain.Reservation) error {
	now := time.Now()
	query := `UPDATE reservations SET status = $1, updated_at = $2 WHERE id = $3`
	result, err := r.db.ExecContext(ctx, query, res.Status, now, res.ID)
	if err != nil {
		return &domain.PersistenceError{Op: "update", Entity: "reservation", ID: res.ID, Err: err}
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return domain.ErrReservationNotFound
	}
	res.UpdatedAt = now
	return nil
}

func (r *reservationRepository) ListAll(ctx context.Context) ([]domain.Reservation, error) {
	return r.list(ctx, selectReservation+` ORDER BY r.created_at DESC`)
}

func (r *reservationRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Reservation, error) {
	return r.list(ctx, selectReservation+` WHERE r.user_id = $1 ORDER BY r.created_at DESC`, userID)
}

func (r *reservationRepository) ListByVehicle(ctx context.Context, vehicleID int64) ([]domain.Reservation, error) {
	return r.list(ctx, selectReservation+` WHERE r.vehicle_id = $1 ORDER BY r.start_date`, vehicleID)
}

func (r *reservationRepository) ListActiveOrFuture(ctx context.Context, vehicleID int64, now time.Time) ([]domain.Reservation, error) {
	query := selectReservation + ` WHERE r.vehicle_id = $1 AND r.status = 'RESERVED'
	  AND ((r.start_date <= $2 AND r.end_date >= $2) OR r.start_date > $2)
	  ORDER BY r.start_date`
	return r.list(ctx, query, vehicleID, now)
}

func (r *reservationRepository) list(ctx context.Context, query string, args ...interface{}) ([]domain.Reservation, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, &domain.PersistenceError{Op: "list", Entity: "reservation", Err: err}
	}
	defer rows.Close()

	var reservations []domain.Reservation
	for rows.Next() {
		var res domain.Reservation
		if err := rows.Scan(&res.ID, &res.UserID, &res.VehicleID, &res.VehicleName,
			&res.StartDate, &res.EndDate, &res.Status, &res.DurationDays,
			&res.TotalPrice, &res.CreatedAt, &res.UpdatedAt); err != nil {
			return nil, &domain.PersistenceError{Op: "list", Entity: "reservation", Err: err}
		}
		reservations = append(reservations, res)
	}
	if err := rows.Err(); err != nil {
		return nil, &domain.PersistenceError{Op: "list", Entity: "reservation", Err: err}
	}
	return reservations, nil
}

func (r *reservationRepository) AreDatesOverlapping(ctx context.Context, vehicleID int64, start, end time.Time) (bool, error) {
	var overlapping bool
	if err := r.db.QueryRowContext(ctx, overlapQuery, vehicleID, start, end).Scan(&overlapping); err != nil {
		return false, &domain.PersistenceError{Op: "overlap-check", Entity: "reservation", Err: err}
	}
	return overlapping, nil
}

func (r *reservationRepository) IsOngoingOrCompleted(ctx context.Context, id int64, now time.Time) (bool, error) {
	query := `SELECT EXISTS (
		SELECT 1 FROM reservations
		WHERE id = $1 AND status != 'CANCELLED'
		  AND (($2 BETWEEN start_date AND end_date) OR ($2 > end_date)))`
	var ongoing bool
	if err := r.db.QueryRowContext(ctx, query, id, now).Scan(&ongoing); err != nil {
		return false, &domain.PersistenceError{Op: "ongoing-check", Entity: "reservation", ID: id, Err: err}
	}
	return ongoing, nil
}

func (r *reservationRepository) ExistsInMonth(ctx context.Context, monthStart, monthEnd time.Time) (bool, error) {
	query := `SELECT EXISTS (
		SELECT 1 FROM reservations WHERE start_date >= $1 AND end_date <= $2)`
	var exists bool
	if err := r.db.QueryRowContext(ctx, query, monthStart, monthEnd).Scan(&exists); err != nil {
		return false, &domain.PersistenceError{Op: "exists-in-month", Entity: "reservation", Err: err}
	}
	return exists, nil
}

func (r *reservationRepository) CompletedStats(ctx context.Context, monthStart, monthEnd, now time.Time) (repository.StatsBucket, error) {
	query := `SELECT COUNT(*), COALESCE(SUM(total_price), 0) FROM reservations
	          WHERE start_date >= $1 AND end_date <= $2 AND status = 'RESERVED' AND end_date <= $3`
	return r.statsQuery(ctx, query, monthStart, monthEnd, now)
}

func (r *reservationRepository) OngoingStats(ctx context.Context, monthStart, monthEnd, now time.Time) (repository.StatsBucket, error) {
	query := `SELECT COUNT(*), COALESCE(SUM(total_price), 0) FROM reservations
	          WHERE start_date >= $1 AND end_date <= $2 AND status = 'RESERVED'
	            AND start_date <= $3 AND end_date >= $3`
	return r.statsQuery(ctx, query, monthStart, monthEnd, now)
}

func (r *reservationRepository) CancelledStats(ctx context.Context, monthStart, monthEnd time.Time) (repository.StatsBucket, error) {
	query := `SELECT COUNT(*), COALESCE(SUM(total_price), 0) FROM reservations
	          WHERE start_date >= $1 AND end_date <= $2 AND status = 'CANCELLED'`
	return r.statsQuery(ctx, query, monthStart, monthEnd)
}

func (r *reservationRepository) statsQuery(ctx context.Context, query string, args ...interface{}) (repository.StatsBucket, error) {
	var bucket repository.StatsBucket
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&bucket.Count, &bucket.TotalPrice); err != nil {
		return repository.StatsBucket{}, &domain.PersistenceError{Op: "stats", Entity: "reservation", Err: err}
	}
	return bucket, nil
}
