package service

import (
	"context"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
	"carrental-backend/internal/utils"
)

// GetReservationStatistics reports the month's reservations in three
// fixed-order buckets. Empty buckets carry zero count and revenue; a
// month with no reservations at all fails with ErrNoReservationsForMonth.
func (s *reservationService) GetReservationStatistics(ctx context.Context, period string) ([]domain.ReservationStatistics, error) {
	monthStart, monthEnd, monthName, year, err := utils.MonthWindow(period)
	if err != nil {
		return nil, err
	}

	exists, err := s.resvRepo.ExistsInMonth(ctx, monthStart, monthEnd)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNoReservationsForMonth
	}

	now := s.now()

	completed, err := s.resvRepo.CompletedStats(ctx, monthStart, monthEnd, now)
	if err != nil {
		return nil, err
	}
	ongoing, err := s.resvRepo.OngoingStats(ctx, monthStart, monthEnd, now)
	if err != nil {
		return nil, err
	}
	cancelled, err := s.resvRepo.CancelledStats(ctx, monthStart, monthEnd)
	if err != nil {
		return nil, err
	}

	return []domain.ReservationStatistics{
		statisticsRecord(monthName, year, "COMPLETED", completed),
		statisticsRecord(monthName, year, "ONGOING", ongoing),
		statisticsRecord(monthName, year, "CANCELLED", cancelled),
	}, nil
}

func statisticsRecord(month string, year int, status string, bucket repository.StatsBucket) domain.ReservationStatistics {
	return domain.ReservationStatistics{
		Month:  month,
		Year:   year,
		Status: status,
		Count:  bucket.Count,
		Profit: bucket.TotalPrice,
	}
}
