package service

import (
	"context"
	"time"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/logger"
	"carrental-backend/internal/repository"
	"carrental-backend/internal/security"
	"carrental-backend/internal/utils"
)

type reservationService struct {
	resvRepo    repository.ReservationRepository
	vehicleRepo repository.VehicleRepository
	userRepo    repository.UserRepository
	emailSvc    EmailService
	now         func() time.Time
}

func NewReservationService(
	resvRepo repository.ReservationRepository,
	vehicleRepo repository.VehicleRepository,
	userRepo repository.UserRepository,
	emailSvc EmailService,
) ReservationService {
	return &reservationService{
		resvRepo:    resvRepo,
		vehicleRepo: vehicleRepo,
		userRepo:    userRepo,
		emailSvc:    emailSvc,
		now:         time.Now,
	}
}

func (s *reservationService) CreateReservation(ctx context.Context, vehicleID int64, start, end time.Time) (*domain.Reservation, error) {
	principal, err := security.PrincipalFromContext(ctx)
	if err != nil {
		return nil, err
	}

	vehicle, err := s.resolveVehicle(ctx, vehicleID)
	if err != nil {
		return nil, err
	}

	if !end.After(start) {
		return nil, domain.ErrInvalidInterval
	}

	available, err := s.isAvailable(ctx, vehicle, start, end)
	if err != nil {
		return nil, err
	}
	if !available {
		return nil, domain.ErrVehicleUnavailable
	}

	durationDays := utils.WholeDaysBetween(start, end)
	totalPrice := float64(durationDays) * vehicle.DailyFee

	user, err := s.userRepo.GetByID(ctx, principal.UserID)
	if err != nil {
		return nil, err
	}

	reservation := &domain.Reservation{
		UserID:       user.ID,
		VehicleID:    vehicle.ID,
		VehicleName:  vehicle.DisplayName(),
		StartDate:    start,
		EndDate:      end,
		Status:       domain.ReservationStatusReserved,
		DurationDays: durationDays,
		TotalPrice:   totalPrice,
	}
	if err := s.resvRepo.Create(ctx, reservation); err != nil {
		return nil, err
	}

	logger.Info("reservation created",
		"reservation_id", reservation.ID, "vehicle_id", vehicle.ID, "user_id", user.ID,
		"duration_days", durationDays, "total_price", totalPrice)

	if s.emailSvc != nil {
		_ = s.emailSvc.SendReservationConfirmation(ctx, user.Email, user.Name, vehicle.DisplayName(), start, end, totalPrice)
	}

	return reservation, nil
}

func (s *reservationService) CheckAvailability(ctx context.Context, vehicleID int64, start, end time.Time) (bool, error) {
	vehicle, err := s.resolveVehicle(ctx, vehicleID)
	if err != nil {
		return false, err
	}
	if !end.After(start) {
		return false, domain.ErrInvalidInterval
	}
	return s.isAvailable(ctx, vehicle, start, end)
}

// isAvailable is the availability gate: the vehicle must not be under
// maintenance and the requested window must not touch any RESERVED
// reservation (boundaries included).
func (s *reservationService) isAvailable(ctx context.Context, vehicle *domain.Vehicle, start, end time.Time) (bool, error) {
	if vehicle.Status == domain.VehicleStatusMaintenance {
		return false, nil
	}
	overlapping, err := s.resvRepo.AreDatesOverlapping(ctx, vehicle.ID, start, end)
	if err != nil {
		return false, err
	}
	return !overlapping, nil
}

// resolveVehicle treats retired vehicles as absent from the catalog.
func (s *reservationService) resolveVehicle(ctx context.Context, vehicleID int64) (*domain.Vehicle, error) {
	vehicle, err := s.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	if vehicle.Retired() {
		return nil, domain.ErrVehicleNotFound
	}
	return vehicle, nil
}

func (s *reservationService) CancelReservation(ctx context.Context, id int64) (*domain.Reservation, error) {
	reservation, err := s.resvRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if reservation.Status == domain.ReservationStatusCancelled {
		return nil, domain.ErrReservationAlreadyCancelled
	}

	ongoingOrCompleted, err := s.resvRepo.IsOngoingOrCompleted(ctx, id, s.now())
	if err != nil {
		return nil, err
	}
	if ongoingOrCompleted {
		return nil, domain.ErrReservationOngoingOrCompleted
	}

	reservation.Status = domain.ReservationStatusCancelled
	if err := s.resvRepo.Update(ctx, reservation); err != nil {
		return nil, err
	}

	logger.Info("reservation cancelled", "reservation_id", reservation.ID, "vehicle_id", reservation.VehicleID)

	if s.emailSvc != nil {
		if user, err := s.userRepo.GetByID(ctx, reservation.UserID); err == nil {
			_ = s.emailSvc.SendCancellationNotice(ctx, user.Email, user.Name, reservation.VehicleName, "cancelled on request")
		}
	}

	return reservation, nil
}

func (s *reservationService) CancelReservationsOfVehicle(ctx context.Context, vehicleID int64) ([]domain.Reservation, error) {
	reservations, err := s.resvRepo.ListActiveOrFuture(ctx, vehicleID, s.now())
	if err != nil {
		return nil, err
	}

	cancelled := make([]domain.Reservation, 0, len(reservations))
	for i := range reservations {
		reservation := &reservations[i]
		reservation.Status = domain.ReservationStatusCancelled
		if err := s.resvRepo.Update(ctx, reservation); err != nil {
			return nil, err
		}
		cancelled = append(cancelled, *reservation)

		if s.emailSvc != nil {
			if user, err := s.userRepo.GetByID(ctx, reservation.UserID); err == nil {
				_ = s.emailSvc.SendCancellationNotice(ctx, user.Email, user.Name, reservation.VehicleName, "vehicle retired from the fleet")
			}
		}
	}

	logger.Info("bulk cancellation finished", "vehicle_id", vehicleID, "count", len(cancelled))
	return cancelled, nil
}

func (s *reservationService) ListActiveOrFutureReservations(ctx context.Context, vehicleID int64) ([]domain.Reservation, error) {
	if _, err := s.resolveVehicle(ctx, vehicleID); err != nil {
		return nil, err
	}
	reservations, err := s.resvRepo.ListActiveOrFuture(ctx, vehicleID, s.now())
	if err != nil {
		return nil, err
	}
	// No results is an error here, unlike ListReservationsOfCurrentUser.
	// Callers distinguish "nothing to retire" from an empty page.
	if len(reservations) == 0 {
		return nil, domain.ErrReservationNotFound
	}
	return reservations, nil
}

func (s *reservationService) ListReservationsOfCurrentUser(ctx context.Context) ([]domain.Reservation, error) {
	principal, err := security.PrincipalFromContext(ctx)
	if err != nil {
		return nil, err
	}
	reservations, err := s.resvRepo.ListByUser(ctx, principal.UserID)
	if err != nil {
		return nil, err
	}
	if reservations == nil {
		reservations = []domain.Reservation{}
	}
	return reservations, nil
}

func (s *reservationService) GetReservationByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	return s.resvRepo.GetByID(ctx, id)
}

func (s *reservationService) ListAllReservations(ctx context.Context) ([]domain.Reservation, error) {
	return s.resvRepo.ListAll(ctx)
}
