package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"carrental-backend/internal/domain"
)

func TestCreateVehicle(t *testing.T) {
	t.Run("Admin creates with default status", func(t *testing.T) {
		vehicleRepo := new(MockVehicleRepo)
		svc := NewVehicleService(vehicleRepo)

		vehicleRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Vehicle")).Return(nil)

		vehicle := &domain.Vehicle{Brand: "Fiat", Model: "Panda", DailyFee: 50.0}
		err := svc.CreateVehicle(adminContext(), vehicle)

		assert.NoError(t, err)
		assert.Equal(t, domain.VehicleStatusAvailable, vehicle.Status)
	})

	t.Run("Non-admin is rejected", func(t *testing.T) {
		vehicleRepo := new(MockVehicleRepo)
		svc := NewVehicleService(vehicleRepo)

		err := svc.CreateVehicle(userContext(1), &domain.Vehicle{Brand: "Fiat", Model: "Panda"})

		assert.ErrorIs(t, err, domain.ErrUnauthorized)
		vehicleRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestGetVehicle(t *testing.T) {
	t.Run("Retired vehicle reads as not found", func(t *testing.T) {
		vehicleRepo := new(MockVehicleRepo)
		svc := NewVehicleService(vehicleRepo)

		retired := availableVehicle()
		deletedAt := testDate(1, 0)
		retired.DeletedAt = &deletedAt
		vehicleRepo.On("GetByID", mock.Anything, int64(7)).Return(retired, nil)

		_, err := svc.GetVehicle(userContext(1), 7)

		assert.ErrorIs(t, err, domain.ErrVehicleNotFound)
	})

	t.Run("Current vehicle is returned", func(t *testing.T) {
		vehicleRepo := new(MockVehicleRepo)
		svc := NewVehicleService(vehicleRepo)

		vehicleRepo.On("GetByID", mock.Anything, int64(7)).Return(availableVehicle(), nil)

		vehicle, err := svc.GetVehicle(userContext(1), 7)

		assert.NoError(t, err)
		assert.Equal(t, "Fiat Panda", vehicle.DisplayName())
	})
}

func TestGetVehiclePrice(t *testing.T) {
	vehicleRepo := new(MockVehicleRepo)
	svc := NewVehicleService(vehicleRepo)

	vehicleRepo.On("GetByID", mock.Anything, int64(7)).Return(availableVehicle(), nil)

	price, err := svc.GetVehiclePrice(userContext(1), 7)

	assert.NoError(t, err)
	assert.Equal(t, 50.0, price)
}

func TestUpdateVehicle(t *testing.T) {
	t.Run("Applies mutable fields only", func(t *testing.T) {
		vehicleRepo := new(MockVehicleRepo)
		svc := NewVehicleService(vehicleRepo)

		vehicleRepo.On("GetByID", mock.Anything, int64(7)).Return(availableVehicle(), nil)
		vehicleRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Vehicle")).Return(nil)

		updated, err := svc.UpdateVehicle(adminContext(), &domain.Vehicle{
			ID:       7,
			Model:    "Panda Cross",
			Color:    "red",
			Status:   domain.VehicleStatusMaintenance,
			DailyFee: 65.0,
		})

		assert.NoError(t, err)
		assert.Equal(t, "Fiat", updated.Brand)
		assert.Equal(t, "Panda Cross", updated.Model)
		assert.Equal(t, domain.VehicleStatusMaintenance, updated.Status)
		assert.Equal(t, 65.0, updated.DailyFee)
	})

	t.Run("Non-admin is rejected", func(t *testing.T) {
		svc := NewVehicleService(new(MockVehicleRepo))

		_, err := svc.UpdateVehicle(userContext(1), &domain.Vehicle{ID: 7})

		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})
}
