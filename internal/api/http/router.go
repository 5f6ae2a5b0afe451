package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// NewRouter wires all API routes.
func NewRouter(rentalHandler *RentalHandler, scooterHandler *ScooterHandler) *mux.Router {
	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/rent/{scooterId}", rentalHandler.StartRent).Methods(http.MethodPost)
	api.HandleFunc("/endRent/{scooterId}", rentalHandler.EndRent).Methods(http.MethodPost)
	api.HandleFunc("/getIncome", rentalHandler.GetIncome).Methods(http.MethodGet)

	api.HandleFunc("/scooter/add", scooterHandler.AddScooter).Methods(http.MethodPost)
	api.HandleFunc("/scooter/list", scooterHandler.ListScooters).Methods(http.MethodGet)
	api.HandleFunc("/scooter/delete/{id}", scooterHandler.DeleteScooter).Methods(http.MethodDelete)
	api.HandleFunc("/scooter/{id}", scooterHandler.GetScooter).Methods(http.MethodGet)

	return r
}
