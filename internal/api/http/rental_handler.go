package http

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"scooter-rental/internal/service"

	"github.com/gorilla/mux"
)

// RentalHandler exposes the rental lifecycle and income report endpoints.
type RentalHandler struct {
	svc service.RentalService
}

func NewRentalHandler(svc service.RentalService) *RentalHandler {
	return &RentalHandler{svc: svc}
}

// StartRent handles POST /api/rent/{scooterId}?time=RFC3339
func (h *RentalHandler) StartRent(w http.ResponseWriter, r *http.Request) {
	scooterID := mux.Vars(r)["scooterId"]
	startTime, err := parseTimeParam(r, "time")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	period, err := h.svc.StartRent(r.Context(), scooterID, startTime)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, period)
}

// EndRent handles POST /api/endRent/{scooterId}?time=RFC3339
func (h *RentalHandler) EndRent(w http.ResponseWriter, r *http.Request) {
	scooterID := mux.Vars(r)["scooterId"]
	endTime, err := parseTimeParam(r, "time")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	period, err := h.svc.EndRent(r.Context(), scooterID, endTime)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, period)
}

// GetIncome handles GET /api/getIncome?year=&includeIncompleteRentals=&currentTime=
//
// The precondition checks on currentTime belong here, not in the core: the
// service is only invoked once currentTime is known to be usable.
func (h *RentalHandler) GetIncome(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var year *int
	if raw := q.Get("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid year %q", raw))
			return
		}
		year = &parsed
	}

	includeIncomplete, _ := strconv.ParseBool(q.Get("includeIncompleteRentals"))

	var currentTime *time.Time
	if raw := q.Get("currentTime"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid currentTime %q", raw))
			return
		}
		currentTime = &parsed
	}

	if includeIncomplete && currentTime == nil {
		respondError(w, http.StatusBadRequest, "current time cannot be null when requesting income from incomplete rentals")
		return
	}
	if currentTime != nil && year != nil && currentTime.Year() < *year {
		respondError(w, http.StatusBadRequest, "current year cannot be before year of report")
		return
	}

	income, err := h.svc.GetIncome(r.Context(), year, includeIncomplete, currentTime)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"income": income})
}

func parseTimeParam(r *http.Request, name string) (time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return time.Time{}, fmt.Errorf("missing %s parameter", name)
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s parameter %q", name, raw)
	}
	return t, nil
}
