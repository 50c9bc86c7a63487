package domain

import "time"

type ReservationStatus string

const (
	ReservationStatusReserved  ReservationStatus = "RESERVED"
	ReservationStatusCancelled ReservationStatus = "CANCELLED"
	// ReservationStatusCompleted is never persisted. It is the read-time
	// projection of a RESERVED reservation whose end date has passed.
	ReservationStatusCompleted ReservationStatus = "COMPLETED"
)

type Reservation struct {
	ID        int64             `json:"id"`
	UserID    int64             `json:"user_id"`
	VehicleID int64             `json:"vehicle_id"`
	// VehicleName is brand + model, populated by reads that join vehicles.
	VehicleName string            `json:"vehicle_name"`
	StartDate   time.Time         `json:"start_date"`
	EndDate     time.Time         `json:"end_date"`
	Status      ReservationStatus `json:"status"`
	// Price snapshot fields, captured from the vehicle at creation time.
	// Later changes to the vehicle's daily fee never touch these.
	DurationDays int       `json:"duration_days"`
	TotalPrice   float64   `json:"total_price"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// EffectiveStatus projects the stored status against now. A RESERVED
// reservation whose end has passed reads as COMPLETED without any write;
// CANCELLED is terminal and never reprojected.
func (r *Reservation) EffectiveStatus(now time.Time) ReservationStatus {
	if r.Status == ReservationStatusReserved && !now.Before(r.EndDate) {
		return ReservationStatusCompleted
	}
	return r.Status
}

// Overlaps reports whether [start, end] intersects the reservation's own
// window. Boundaries count: a booking starting exactly when another ends
// still conflicts.
func (r *Reservation) Overlaps(start, end time.Time) bool {
	return !start.After(r.EndDate) && !end.Before(r.StartDate)
}

// ReservationStatistics is one monthly aggregation bucket.
type ReservationStatistics struct {
	Month  string  `json:"month"`
	Year   int     `json:"year"`
	Status string  `json:"status"`
	Count  int64   `json:"count"`
	Profit float64 `json:"profit"`
}
