package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"scooter-rental/internal/domain"
	"scooter-rental/internal/service"

	"github.com/gorilla/mux"
)

// ScooterHandler exposes the scooter inventory endpoints. These are
// pass-through storage access; the rental logic never goes through them.
type ScooterHandler struct {
	svc service.ScooterService
}

func NewScooterHandler(svc service.ScooterService) *ScooterHandler {
	return &ScooterHandler{svc: svc}
}

// AddScooter handles POST /api/scooter/add
func (h *ScooterHandler) AddScooter(w http.ResponseWriter, r *http.Request) {
	var scooter domain.Scooter
	if err := json.NewDecoder(r.Body).Decode(&scooter); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if scooter.ID == "" {
		respondError(w, http.StatusBadRequest, "scooter id is required")
		return
	}
	if !scooter.PricePerMinute.IsPositive() {
		respondError(w, http.StatusBadRequest, "price per minute must be positive")
		return
	}
	scooter.IsRented = false

	if err := h.svc.AddScooter(r.Context(), &scooter); err != nil {
		if errors.Is(err, domain.ErrScooterExists) {
			respondError(w, http.StatusConflict, err.Error())
			return
		}
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondJSON(w, http.StatusCreated, scooter)
}

// GetScooter handles GET /api/scooter/{id}
func (h *ScooterHandler) GetScooter(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	scooter, err := h.svc.GetScooter(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrScooterNotFound) {
			respondError(w, http.StatusNotFound, err.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, scooter)
}

// ListScooters handles GET /api/scooter/list
func (h *ScooterHandler) ListScooters(w http.ResponseWriter, r *http.Request) {
	scooters, err := h.svc.ListScooters(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if len(scooters) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	respondJSON(w, http.StatusOK, scooters)
}

// DeleteScooter handles DELETE /api/scooter/delete/{id}
func (h *ScooterHandler) DeleteScooter(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.svc.DeleteScooter(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrScooterNotFound) {
			respondError(w, http.StatusNotFound, err.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, nil)
}
