package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/service"
)

// dateTimeLayout is the wire format for reservation windows.
const dateTimeLayout = "2006-01-02T15:04:05"

type ReservationHandler struct {
	resvSvc service.ReservationService
	now     func() time.Time
}

func NewReservationHandler(resvSvc service.ReservationService) *ReservationHandler {
	return &ReservationHandler{
		resvSvc: resvSvc,
		now:     time.Now,
	}
}

type reservationRequest struct {
	VehicleID int64  `json:"vehicle_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// reservationResponse carries the effective status: a RESERVED row whose
// end has passed reads as COMPLETED even though the store never writes it.
type reservationResponse struct {
	ID           int64   `json:"id"`
	UserID       int64   `json:"user_id"`
	VehicleID    int64   `json:"vehicle_id"`
	VehicleName  string  `json:"vehicle_name"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	Status       string  `json:"status"`
	DurationDays int     `json:"duration_days"`
	TotalPrice   float64 `json:"total_price"`
}

func (h *ReservationHandler) toResponse(r *domain.Reservation) reservationResponse {
	return reservationResponse{
		ID:           r.ID,
		UserID:       r.UserID,
		VehicleID:    r.VehicleID,
		VehicleName:  r.VehicleName,
		StartDate:    r.StartDate.Format(dateTimeLayout),
		EndDate:      r.EndDate.Format(dateTimeLayout),
		Status:       string(r.EffectiveStatus(h.now())),
		DurationDays: r.DurationDays,
		TotalPrice:   r.TotalPrice,
	}
}

func (h *ReservationHandler) toResponseList(reservations []domain.Reservation) []reservationResponse {
	out := make([]reservationResponse, 0, len(reservations))
	for i := range reservations {
		out = append(out, h.toResponse(&reservations[i]))
	}
	return out
}

func (h *ReservationHandler) parseWindow(req reservationRequest) (start, end time.Time, err error) {
	start, err = time.ParseInLocation(dateTimeLayout, req.StartDate, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, domain.ErrInvalidDateFormat
	}
	end, err = time.ParseInLocation(dateTimeLayout, req.EndDate, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, domain.ErrInvalidDateFormat
	}
	return start, end, nil
}

func (h *ReservationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req reservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	start, end, err := h.parseWindow(req)
	if err != nil {
		writeError(w, err)
		return
	}

	reservation, err := h.resvSvc.CreateReservation(r.Context(), req.VehicleID, start, end)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, h.toResponse(reservation))
}

func (h *ReservationHandler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	var req reservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	start, end, err := h.parseWindow(req)
	if err != nil {
		writeError(w, err)
		return
	}

	available, err := h.resvSvc.CheckAvailability(r.Context(), req.VehicleID, start, end)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"available": available})
}

func (h *ReservationHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid id"})
		return
	}
	reservation, err := h.resvSvc.GetReservationByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.toResponse(reservation))
}

func (h *ReservationHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	reservations, err := h.resvSvc.ListAllReservations(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.toResponseList(reservations))
}

func (h *ReservationHandler) ListForCurrentUser(w http.ResponseWriter, r *http.Request) {
	reservations, err := h.resvSvc.ListReservationsOfCurrentUser(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.toResponseList(reservations))
}

func (h *ReservationHandler) ListForVehicle(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid id"})
		return
	}
	reservations, err := h.resvSvc.ListActiveOrFutureReservations(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.toResponseList(reservations))
}

func (h *ReservationHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid id"})
		return
	}
	reservation, err := h.resvSvc.CancelReservation(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.toResponse(reservation))
}

func (h *ReservationHandler) Statistics(w http.ResponseWriter, r *http.Request) {
	period := mux.Vars(r)["period"]
	stats, err := h.resvSvc.GetReservationStatistics(r.Context(), period)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func pathID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)[name], 10, 64)
}
