package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"carrental-backend/internal/domain"
)

func TestVehicleRepository_SoftDelete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()
	repo := NewVehicleRepository(db)
	ctx := context.Background()
	when := time.Date(2026, 6, 15, 12, 0, 0, 0, time.Local)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("UPDATE vehicles SET deleted_at").
			WithArgs(when, int64(7)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.SoftDelete(ctx, 7, when)
		assert.NoError(t, err)
	})

	t.Run("Already retired or missing", func(t *testing.T) {
		mock.ExpectExec("UPDATE vehicles SET deleted_at").
			WithArgs(when, int64(7)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.SoftDelete(ctx, 7, when)
		assert.ErrorIs(t, err, domain.ErrVehicleNotFound)
	})
}

func TestVehicleRepository_Restore(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()
	repo := NewVehicleRepository(db)
	ctx := context.Background()

	mock.ExpectExec("UPDATE vehicles SET deleted_at = NULL").
		WithArgs(sqlmock.AnyArg(), int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Restore(ctx, 7)
	assert.NoError(t, err)
}

func TestVehicleRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()
	repo := NewVehicleRepository(db)
	ctx := context.Background()

	columns := []string{"id", "brand", "model", "year", "gearbox_type", "fuel_type", "color", "status", "daily_fee", "created_at", "updated_at", "deleted_at"}

	t.Run("Retired rows are still returned", func(t *testing.T) {
		now := time.Now()
		rows := sqlmock.NewRows(columns).
			AddRow(7, "Fiat", "Panda", 2022, "MANUAL", "PETROL", "white", "AVAILABLE", 50.0, now, now, now)

		mock.ExpectQuery("SELECT (.+) FROM vehicles WHERE id").
			WithArgs(int64(7)).
			WillReturnRows(rows)

		vehicle, err := repo.GetByID(ctx, 7)
		assert.NoError(t, err)
		assert.True(t, vehicle.Retired())
	})

	t.Run("Not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM vehicles WHERE id").
			WithArgs(int64(404)).
			WillReturnRows(sqlmock.NewRows(columns))

		_, err := repo.GetByID(ctx, 404)
		assert.ErrorIs(t, err, domain.ErrVehicleNotFound)
	})
}
