package handlers

import (
	"errors"
	"log"
	"net/http"

	"trip-scheduler-service/internal/api/dto"
	"trip-scheduler-service/internal/domain"
	"trip-scheduler-service/internal/ports"
)

// TripHandler exposes read-only trip retrieval endpoints.
type TripHandler struct {
	Repo ports.TripRepository
}

func (h *TripHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	trips, err := h.Repo.ListTrips(r.Context())
	if err != nil {
		log.Printf("list trips failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListTripsResponse{
		Trips: make([]dto.TripSummaryResponse, 0, len(trips)),
	}
	for _, t := range trips {
		res.Trips = append(res.Trips, tripSummary(t))
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *TripHandler) Get(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	tripID := r.PathValue("id")
	trip, err := h.Repo.GetTrip(r.Context(), tripID)
	if errors.Is(err, ports.ErrTripNotFound) {
		writeError(w, r, http.StatusNotFound, "trip not found")
		return
	}
	if err != nil {
		log.Printf("get trip failed: trip_id=%s err=%v", tripID, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.TripResponse{
		TripSummaryResponse: tripSummary(trip),
		Stops:               stopResponses(trip.Stops),
	}

	writeJSON(w, r, http.StatusOK, res)
}

func tripSummary(t *domain.Trip) dto.TripSummaryResponse {
	return dto.TripSummaryResponse{
		TripID:          t.TripID,
		Name:            t.Name,
		StartDate:       t.StartDate,
		EndDate:         t.EndDate,
		StartDateLocked: t.StartDateLocked,
		EndDateLocked:   t.EndDateLocked,
	}
}

func stopResponses(stops []*domain.Stop) []dto.StopResponse {
	out := make([]dto.StopResponse, 0, len(stops))
	for _, s := range stops {
		out = append(out, dto.StopResponse{
			StopID:              s.StopID,
			Destination:         s.Destination,
			DurationDays:        s.DurationDays,
			ArrivalDate:         s.ArrivalDate,
			DepartureDate:       s.DepartureDate,
			IsDateLocked:        s.DateLocked,
			LockedArrivalDate:   s.LockedArrivalDate,
			LockedDepartureDate: s.LockedDepartureDate,
		})
	}
	return out
}
