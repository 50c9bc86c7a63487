package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"carrental-backend/internal/security"
	"carrental-backend/internal/service"
)

// NewRouter assembles the public HTTP surface. Signup and login are the
// only unauthenticated routes; everything else goes through the auth
// middleware, and role checks stay in the service layer.
func NewRouter(
	tokens security.TokenManager,
	authSvc service.AuthService,
	resvSvc service.ReservationService,
	vehicleSvc service.VehicleService,
	fleetSvc service.FleetService,
) *mux.Router {
	authHandler := NewAuthHandler(authSvc)
	resvHandler := NewReservationHandler(resvSvc)
	vehicleHandler := NewVehicleHandler(vehicleSvc, fleetSvc)

	router := mux.NewRouter()
	router.Use(RequestIDMiddleware)

	router.HandleFunc("/api/auth/signup", authHandler.Signup).Methods(http.MethodPost)
	router.HandleFunc("/api/auth/login", authHandler.Login).Methods(http.MethodPost)

	authed := router.PathPrefix("/api").Subrouter()
	authed.Use(AuthMiddleware(tokens))

	authed.HandleFunc("/reservations/create", resvHandler.Create).Methods(http.MethodPost)
	authed.HandleFunc("/reservations/check-availability", resvHandler.CheckAvailability).Methods(http.MethodPost)
	authed.HandleFunc("/reservations/reservation-list", resvHandler.ListForCurrentUser).Methods(http.MethodGet)
	authed.HandleFunc("/reservations/vehicle-reservations/{id:[0-9]+}", resvHandler.ListForVehicle).Methods(http.MethodGet)
	authed.HandleFunc("/reservations/cancel/{id:[0-9]+}", resvHandler.Cancel).Methods(http.MethodDelete)
	authed.HandleFunc("/reservations/statistics/{period}", resvHandler.Statistics).Methods(http.MethodGet)
	authed.HandleFunc("/reservations/{id:[0-9]+}", resvHandler.GetByID).Methods(http.MethodGet)
	authed.HandleFunc("/reservations", resvHandler.ListAll).Methods(http.MethodGet)

	authed.HandleFunc("/vehicles", vehicleHandler.List).Methods(http.MethodGet)
	authed.HandleFunc("/vehicles", vehicleHandler.Create).Methods(http.MethodPost)
	authed.HandleFunc("/vehicles/{id:[0-9]+}", vehicleHandler.GetByID).Methods(http.MethodGet)
	authed.HandleFunc("/vehicles/{id:[0-9]+}", vehicleHandler.Update).Methods(http.MethodPut)
	authed.HandleFunc("/vehicles/{id:[0-9]+}", vehicleHandler.Retire).Methods(http.MethodDelete)

	return router
}
