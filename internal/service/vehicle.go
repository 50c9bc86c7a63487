package service

import (
	"context"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
	"carrental-backend/internal/security"
)

type vehicleService struct {
	vehicleRepo repository.VehicleRepository
}

func NewVehicleService(vehicleRepo repository.VehicleRepository) VehicleService {
	return &vehicleService{vehicleRepo: vehicleRepo}
}

func (s *vehicleService) CreateVehicle(ctx context.Context, v *domain.Vehicle) error {
	if err := requireAdmin(ctx); err != nil {
		return err
	}
	if v.Status == "" {
		v.Status = domain.VehicleStatusAvailable
	}
	return s.vehicleRepo.Create(ctx, v)
}

func (s *vehicleService) GetVehicle(ctx context.Context, id int64) (*domain.Vehicle, error) {
	vehicle, err := s.vehicleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if vehicle.Retired() {
		return nil, domain.ErrVehicleNotFound
	}
	return vehicle, nil
}

func (s *vehicleService) GetVehiclePrice(ctx context.Context, id int64) (float64, error) {
	vehicle, err := s.GetVehicle(ctx, id)
	if err != nil {
		return 0, err
	}
	return vehicle.DailyFee, nil
}

func (s *vehicleService) ListVehicles(ctx context.Context) ([]domain.Vehicle, error) {
	return s.vehicleRepo.ListCurrent(ctx)
}

// UpdateVehicle applies the mutable fields (model, color, status, daily
// fee) to an existing vehicle. Existing reservations keep their price
// snapshot regardless of fee changes.
func (s *vehicleService) UpdateVehicle(ctx context.Context, v *domain.Vehicle) (*domain.Vehicle, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	current, err := s.GetVehicle(ctx, v.ID)
	if err != nil {
		return nil, err
	}
	current.Model = v.Model
	current.Color = v.Color
	current.Status = v.Status
	current.DailyFee = v.DailyFee
	if err := s.vehicleRepo.Update(ctx, current); err != nil {
		return nil, err
	}
	return current, nil
}

func requireAdmin(ctx context.Context) error {
	principal, err := security.PrincipalFromContext(ctx)
	if err != nil {
		return err
	}
	if !principal.IsAdmin() {
		return domain.ErrUnauthorized
	}
	return nil
}
