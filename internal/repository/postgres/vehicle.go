package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

type vehicleRepository struct {
	db *sql.DB
}

func NewVehicleRepository(db *sql.DB) repository.VehicleRepository {
	return &vehicleRepository{db: db}
}

const selectVehicle = `SELECT id, brand, model, year, gearbox_type, fuel_type, color, status,
	daily_fee, created_at, updated_at, deleted_at FROM vehicles`

func (r *vehicleRepository) Create(ctx context.Context, v *domain.Vehicle) error {
	now := time.Now()
	query := `INSERT INTO vehicles (brand, model, year, gearbox_type, fuel_type, color, status, daily_fee, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`
	if err := r.db.QueryRowContext(ctx, query,
		v.Brand, v.Model, v.Year, v.Gearbox, v.Fuel, v.Color, v.Status, v.DailyFee, now, now).Scan(&v.ID); err != nil {
		return &domain.PersistenceError{Op: "create", Entity: "vehicle", Err: err}
	}
	v.CreatedAt = now
	v.UpdatedAt = now
	return nil
}

func (r *vehicleRepository) GetByID(ctx context.Context, id int64) (*domain.Vehicle, error) {
	v := &domain.Vehicle{}
	err := r.db.QueryRowContext(ctx, selectVehicle+` WHERE id = $1`, id).Scan(
		&v.ID, &v.Brand, &v.Model, &v.Year, &v.Gearbox, &v.Fuel, &v.Color,
		&v.Status, &v.DailyFee, &v.CreatedAt, &v.UpdatedAt, &v.DeletedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrVehicleNotFound
	}
	if err != nil {
		return nil, &domain.PersistenceError{Op: "get", Entity: "vehicle", ID: id, Err: err}
	}
	return v, nil
}

func (r *vehicleRepository) ListCurrent(ctx context.Context) ([]domain.Vehicle, error) {
	rows, err := r.db.QueryContext(ctx, selectVehicle+` WHERE deleted_at IS NULL ORDER BY id`)
	if err != nil {
		return nil, &domain.PersistenceError{Op: "list", Entity: "vehicle", Err: err}
	}
	defer rows.Close()

	var vehicles []domain.Vehicle
	for rows.Next() {
		var v domain.Vehicle
		if err := rows.Scan(&v.ID, &v.Brand, &v.Model, &v.Year, &v.Gearbox, &v.Fuel,
			&v.Color, &v.Status, &v.DailyFee, &v.CreatedAt, &v.UpdatedAt, &v.DeletedAt); err != nil {
			return nil, &domain.PersistenceError{Op: "list", Entity: "vehicle", Err: err}
		}
		vehicles = append(vehicles, v)
	}
	if err := rows.Err(); err != nil {
		return nil, &domain.PersistenceError{Op: "list", Entity: "vehicle", Err: err}
	}
	return vehicles, nil
}

func (r *vehicleRepository) Update(ctx context.Context, v *domain.Vehicle) error {
	now := time.Now()
	query := `UPDATE vehicles SET model = $1, color = $2, status = $3, daily_fee = $4, updated_at = $5 WHERE id = $6`
	result, err := r.db.ExecContext(ctx, query, v.Model, v.Color, v.Status, v.DailyFee, now, v.ID)
	if err != nil {
		return &domain.PersistenceError{Op: "update", Entity: "vehicle", ID: v.ID, Err: err}
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return domain.ErrVehicleNotFound
	}
	v.UpdatedAt = now
	return nil
}

func (r *vehicleRepository) SoftDelete(ctx context.Context, id int64, when time.Time) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE vehicles SET deleted_at = $1, updated_at = $1 WHERE id = $2 AND deleted_at IS NULL`, when, id)
	if err != nil {
		return &domain.PersistenceError{Op: "soft-delete", Entity: "vehicle", ID: id, Err: err}
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return domain.ErrVehicleNotFound
	}
	return nil
}

func (r *vehicleRepository) Restore(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE vehicles SET deleted_at = NULL, updated_at = $1 WHERE id = $2`, time.Now(), id)
	if err != nil {
		return &domain.PersistenceError{Op: "restore", Entity: "vehicle", ID: id, Err: err}
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return domain.ErrVehicleNotFound
	}
	return nil
}
