package service

import (
	"context"
	"time"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/logger"
	"carrental-backend/internal/repository"
	"carrental-backend/internal/security"
)

type fleetService struct {
	vehicleRepo repository.VehicleRepository
	resvSvc     ReservationService
	now         func() time.Time
}

func NewFleetService(vehicleRepo repository.VehicleRepository, resvSvc ReservationService) FleetService {
	return &fleetService{
		vehicleRepo: vehicleRepo,
		resvSvc:     resvSvc,
		now:         time.Now,
	}
}

// RetireVehicle runs the retirement saga: soft-delete the vehicle, then
// bulk-cancel its bookings. A bulk-cancel failure restores the vehicle
// so it never stays retired with live reservations.
func (s *fleetService) RetireVehicle(ctx context.Context, vehicleID int64) ([]domain.Reservation, error) {
	principal, err := security.PrincipalFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if !principal.IsAdmin() {
		return nil, domain.ErrUnauthorized
	}

	if err := s.vehicleRepo.SoftDelete(ctx, vehicleID, s.now()); err != nil {
		return nil, err
	}

	cancelled, err := s.resvSvc.CancelReservationsOfVehicle(ctx, vehicleID)
	if err != nil {
		// Compensating action: un-retire the vehicle. The original failure
		// is what the caller sees either way.
		if restoreErr := s.vehicleRepo.Restore(ctx, vehicleID); restoreErr != nil {
			logger.Error("failed to restore vehicle after bulk cancellation failure",
				"vehicle_id", vehicleID, "error", restoreErr)
		}
		return nil, err
	}

	logger.Info("vehicle retired", "vehicle_id", vehicleID, "cancelled_reservations", len(cancelled))
	return cancelled, nil
}

func (s *fleetService) ActiveOrFutureReservations(ctx context.Context, vehicleID int64) ([]domain.Reservation, error) {
	return s.resvSvc.ListActiveOrFutureReservations(ctx, vehicleID)
}
