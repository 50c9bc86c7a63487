package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"carrental-backend/internal/domain"
)

func newTestFleetService(vehicleRepo *MockVehicleRepo, resvSvc ReservationService) *fleetService {
	return &fleetService{
		vehicleRepo: vehicleRepo,
		resvSvc:     resvSvc,
		now:         func() time.Time { return testNow },
	}
}

func TestRetireVehicle(t *testing.T) {
	t.Run("Non-admin is rejected", func(t *testing.T) {
		vehicleRepo := new(MockVehicleRepo)
		svc := newTestFleetService(vehicleRepo, nil)

		_, err := svc.RetireVehicle(userContext(1), 7)

		assert.ErrorIs(t, err, domain.ErrUnauthorized)
		vehicleRepo.AssertNotCalled(t, "SoftDelete", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Missing principal is rejected", func(t *testing.T) {
		svc := newTestFleetService(new(MockVehicleRepo), nil)

		_, err := svc.RetireVehicle(context.Background(), 7)

		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("Unknown vehicle", func(t *testing.T) {
		vehicleRepo := new(MockVehicleRepo)
		svc := newTestFleetService(vehicleRepo, nil)

		vehicleRepo.On("SoftDelete", mock.Anything, int64(404), testNow).Return(domain.ErrVehicleNotFound)

		_, err := svc.RetireVehicle(adminContext(), 404)

		assert.ErrorIs(t, err, domain.ErrVehicleNotFound)
	})

	t.Run("Retires the vehicle and cancels its bookings", func(t *testing.T) {
		vehicleRepo := new(MockVehicleRepo)
		resvRepo := new(MockReservationRepo)
		resvSvc := newTestReservationService(resvRepo, vehicleRepo, new(MockUserRepo), nil)
		svc := newTestFleetService(vehicleRepo, resvSvc)

		reservations := []domain.Reservation{
			{ID: 1, VehicleID: 7, Status: domain.ReservationStatusReserved},
			{ID: 2, VehicleID: 7, Status: domain.ReservationStatusReserved},
		}
		vehicleRepo.On("SoftDelete", mock.Anything, int64(7), testNow).Return(nil)
		resvRepo.On("ListActiveOrFuture", mock.Anything, int64(7), testNow).Return(reservations, nil)
		resvRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Reservation")).Return(nil).Twice()

		cancelled, err := svc.RetireVehicle(adminContext(), 7)

		assert.NoError(t, err)
		assert.Len(t, cancelled, 2)
		vehicleRepo.AssertNotCalled(t, "Restore", mock.Anything, mock.Anything)
	})

	t.Run("Vehicle without bookings still retires", func(t *testing.T) {
		vehicleRepo := new(MockVehicleRepo)
		resvRepo := new(MockReservationRepo)
		resvSvc := newTestReservationService(resvRepo, vehicleRepo, new(MockUserRepo), nil)
		svc := newTestFleetService(vehicleRepo, resvSvc)

		vehicleRepo.On("SoftDelete", mock.Anything, int64(7), testNow).Return(nil)
		resvRepo.On("ListActiveOrFuture", mock.Anything, int64(7), testNow).Return([]domain.Reservation{}, nil)

		cancelled, err := svc.RetireVehicle(adminContext(), 7)

		assert.NoError(t, err)
		assert.Empty(t, cancelled)
	})

	t.Run("Bulk cancellation failure restores the vehicle", func(t *testing.T) {
		vehicleRepo := new(MockVehicleRepo)
		resvRepo := new(MockReservationRepo)
		resvSvc := newTestReservationService(resvRepo, vehicleRepo, new(MockUserRepo), nil)
		svc := newTestFleetService(vehicleRepo, resvSvc)

		dbErr := errors.New("connection reset")
		vehicleRepo.On("SoftDelete", mock.Anything, int64(7), testNow).Return(nil)
		resvRepo.On("ListActiveOrFuture", mock.Anything, int64(7), testNow).Return(nil, dbErr)
		vehicleRepo.On("Restore", mock.Anything, int64(7)).Return(nil)

		_, err := svc.RetireVehicle(adminContext(), 7)

		assert.ErrorIs(t, err, dbErr)
		vehicleRepo.AssertCalled(t, "Restore", mock.Anything, int64(7))
	})

	t.Run("Original error survives a failed restore", func(t *testing.T) {
		vehicleRepo := new(MockVehicleRepo)
		resvRepo := new(MockReservationRepo)
		resvSvc := newTestReservationService(resvRepo, vehicleRepo, new(MockUserRepo), nil)
		svc := newTestFleetService(vehicleRepo, resvSvc)

		dbErr := errors.New("connection reset")
		vehicleRepo.On("SoftDelete", mock.Anything, int64(7), testNow).Return(nil)
		resvRepo.On("ListActiveOrFuture", mock.Anything, int64(7), testNow).Return(nil, dbErr)
		vehicleRepo.On("Restore", mock.Anything, int64(7)).Return(errors.New("restore failed"))

		_, err := svc.RetireVehicle(adminContext(), 7)

		assert.ErrorIs(t, err, dbErr)
	})
}
