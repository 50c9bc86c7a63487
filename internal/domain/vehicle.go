package domain

import "time"

type VehicleStatus string

const (
	VehicleStatusAvailable   VehicleStatus = "AVAILABLE"
	VehicleStatusMaintenance VehicleStatus = "MAINTENANCE"
)

type GearboxType string

const (
	GearboxTypeManual    GearboxType = "MANUAL"
	GearboxTypeAutomatic GearboxType = "AUTOMATIC"
)

type FuelType string

const (
	FuelTypePetrol   FuelType = "PETROL"
	FuelTypeDiesel   FuelType = "DIESEL"
	FuelTypeElectric FuelType = "ELECTRIC"
	FuelTypeHybrid   FuelType = "HYBRID"
)

type Vehicle struct {
	ID        int64         `json:"id"`
	Brand     string        `json:"brand"`
	Model     string        `json:"model"`
	Year      int           `json:"year"`
	Gearbox   GearboxType   `json:"gearbox_type"`
	Fuel      FuelType      `json:"fuel_type"`
	Color     string        `json:"color"`
	Status    VehicleStatus `json:"status"`
	DailyFee  float64       `json:"daily_fee"`
	CreatedAt time.Time     `json:"created_on"`
	UpdatedAt time.Time     `json:"updated_on"`
	// DeletedAt marks the vehicle retired (soft delete). Retired vehicles
	// stay in the table for reservation history.
	DeletedAt *time.Time `json:"deleted_on,omitempty"`
}

// DisplayName is the label reservations carry for this vehicle.
func (v *Vehicle) DisplayName() string {
	return v.Brand + " " + v.Model
}

// Retired reports whether the vehicle has been soft-deleted.
func (v *Vehicle) Retired() bool {
	return v.DeletedAt != nil
}
