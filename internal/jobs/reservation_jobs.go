package jobs

import (
	"context"
	"time"

	"carrental-backend/internal/logger"
)

// SendReturnReminders emails every renter whose reservation ends within
// the next 24 hours.
func (jr *JobRunner) SendReturnReminders() {
	jr.runWithRecovery("SendReturnReminders", func() {
		ctx := context.Background()
		now := time.Now()

		query := `
			SELECT r.id, r.user_id, r.end_date, u.email, u.name, v.brand || ' ' || v.model
			FROM reservations r
			JOIN users u ON u.id = r.user_id
			JOIN vehicles v ON v.id = r.vehicle_id
			WHERE r.status = 'RESERVED'
			  AND r.end_date > $1
			  AND r.end_date <= $2
		`

		rows, err := jr.db.QueryContext(ctx, query, now, now.Add(24*time.Hour))
		if err != nil {
			logger.Error("Failed to load reservations due for return", "error", err)
			return
		}
		defer rows.Close()

		count := 0
		for rows.Next() {
			var (
				reservationID int64
				userID        int64
				endDate       time.Time
				email         string
				name          string
				vehicleName   string
			)
			if err := rows.Scan(&reservationID, &userID, &endDate, &email, &name, &vehicleName); err != nil {
				logger.Error("Failed to scan reservation due for return", "error", err)
				continue
			}

			if err := jr.services.Email.SendReturnReminder(ctx, email, name, vehicleName, endDate); err != nil {
				logger.Error("Failed to send return reminder",
					"reservation_id", reservationID, "user_id", userID, "error", err)
				continue
			}
			count++
		}
		if err := rows.Err(); err != nil {
			logger.Error("Error iterating reservations due for return", "error", err)
			return
		}

		logger.Info("Sent return reminders", "count", count)
	})
}

// ReportSilentCompletions logs the RESERVED reservations whose end date
// passed during the previous day. Completion is a read-time projection,
// so nothing is written; the report exists for operators reconciling the
// fleet.
func (jr *JobRunner) ReportSilentCompletions() {
	jr.runWithRecovery("ReportSilentCompletions", func() {
		ctx := context.Background()
		now := time.Now()

		query := `
			SELECT r.id, r.user_id, r.vehicle_id, r.end_date, r.total_price
			FROM reservations r
			WHERE r.status = 'RESERVED'
			  AND r.end_date >= $1
			  AND r.end_date < $2
		`

		rows, err := jr.db.QueryContext(ctx, query, now.Add(-24*time.Hour), now)
		if err != nil {
			logger.Error("Failed to load completed reservations", "error", err)
			return
		}
		defer rows.Close()

		count := 0
		for rows.Next() {
			var (
				reservationID int64
				userID        int64
				vehicleID     int64
				endDate       time.Time
				totalPrice    float64
			)
			if err := rows.Scan(&reservationID, &userID, &vehicleID, &endDate, &totalPrice); err != nil {
				logger.Error("Failed to scan completed reservation", "error", err)
				continue
			}

			logger.Debug("Reservation completed",
				"reservation_id", reservationID,
				"user_id", userID,
				"vehicle_id", vehicleID,
				"end_date", endDate.Format("2006-01-02 15:04:05"),
				"total_price", totalPrice)
			count++
		}
		if err := rows.Err(); err != nil {
			logger.Error("Error iterating completed reservations", "error", err)
			return
		}

		logger.Info("Reported completed reservations", "count", count)
	})
}
