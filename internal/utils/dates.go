package utils

import (
	"strconv"
	"strings"
	"time"

	"carrental-backend/internal/domain"
)

// WholeDaysBetween truncates the span between start and end to whole
// days. Partial days round down: day0 09:00 to day3 09:00 is 3 days.
func WholeDaysBetween(start, end time.Time) int {
	return int(end.Sub(start).Hours() / 24)
}

// MonthWindow resolves a MM-YYYY period string into the month's first
// instant and its last instant (23:59:59.999999999 on the final day),
// plus the month's English name and year for reporting. Any other shape
// fails with ErrInvalidDateFormat.
func MonthWindow(period string) (start, end time.Time, monthName string, year int, err error) {
	parts := strings.Split(period, "-")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 4 {
		err = domain.ErrInvalidDateFormat
		return
	}

	month, convErr := strconv.Atoi(parts[0])
	if convErr != nil || month < 1 || month > 12 {
		err = domain.ErrInvalidDateFormat
		return
	}
	year, convErr = strconv.Atoi(parts[1])
	if convErr != nil || year < 1 {
		err = domain.ErrInvalidDateFormat
		return
	}

	start = time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	end = start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	monthName = strings.ToUpper(time.Month(month).String())
	return
}
