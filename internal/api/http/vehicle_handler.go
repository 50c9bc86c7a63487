package http

import (
	"encoding/json"
	"net/http"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/service"
)

type VehicleHandler struct {
	vehicleSvc service.VehicleService
	fleetSvc   service.FleetService
}

func NewVehicleHandler(vehicleSvc service.VehicleService, fleetSvc service.FleetService) *VehicleHandler {
	return &VehicleHandler{
		vehicleSvc: vehicleSvc,
		fleetSvc:   fleetSvc,
	}
}

type vehicleRequest struct {
	Brand    string  `json:"brand"`
	Model    string  `json:"model"`
	Year     int     `json:"year"`
	Gearbox  string  `json:"gearbox_type"`
	Fuel     string  `json:"fuel_type"`
	Color    string  `json:"color"`
	Status   string  `json:"status"`
	DailyFee float64 `json:"daily_fee"`
}

func (h *VehicleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req vehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	if req.Brand == "" || req.Model == "" || req.DailyFee <= 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "brand, model and a positive daily fee are required"})
		return
	}

	vehicle := &domain.Vehicle{
		Brand:    req.Brand,
		Model:    req.Model,
		Year:     req.Year,
		Gearbox:  domain.GearboxType(req.Gearbox),
		Fuel:     domain.FuelType(req.Fuel),
		Color:    req.Color,
		Status:   domain.VehicleStatus(req.Status),
		DailyFee: req.DailyFee,
	}
	if err := h.vehicleSvc.CreateVehicle(r.Context(), vehicle); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, vehicle)
}

func (h *VehicleHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid id"})
		return
	}
	vehicle, err := h.vehicleSvc.GetVehicle(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, vehicle)
}

func (h *VehicleHandler) List(w http.ResponseWriter, r *http.Request) {
	vehicles, err := h.vehicleSvc.ListVehicles(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if vehicles == nil {
		vehicles = []domain.Vehicle{}
	}
	writeJSON(w, http.StatusOK, vehicles)
}

func (h *VehicleHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid id"})
		return
	}
	var req vehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	vehicle := &domain.Vehicle{
		ID:       id,
		Model:    req.Model,
		Color:    req.Color,
		Status:   domain.VehicleStatus(req.Status),
		DailyFee: req.DailyFee,
	}
	updated, err := h.vehicleSvc.UpdateVehicle(r.Context(), vehicle)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// Retire soft-deletes the vehicle and reports the reservations cancelled
// along the way.
func (h *VehicleHandler) Retire(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid id"})
		return
	}
	cancelled, err := h.fleetSvc.RetireVehicle(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"vehicle_id":             id,
		"cancelled_reservations": len(cancelled),
	})
}
