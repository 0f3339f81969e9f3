package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"trip-scheduler-service/internal/api/dto"
	"trip-scheduler-service/internal/domain"
	"trip-scheduler-service/internal/ports"
	"trip-scheduler-service/internal/services"
)

// ScheduleHandler exposes the recalculation engine over HTTP: GET
// returns the current (cached or recomputed) schedule, POST applies an
// edit and reschedules the whole sequence.
type ScheduleHandler struct {
	Repo             ports.TripRepository
	Cache            ports.ScheduleCache
	DefaultStartDate string
}

func (h *ScheduleHandler) Handle(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.get(w, r)
	case http.MethodPost:
		h.reschedule(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (h *ScheduleHandler) get(w http.ResponseWriter, r *http.Request) {
	tripID := r.PathValue("id")

	snap, err := services.LoadSchedule(r.Context(), tripID, h.DefaultStartDate, h.Repo, h.Cache)
	if errors.Is(err, ports.ErrTripNotFound) {
		writeError(w, r, http.StatusNotFound, "trip not found")
		return
	}
	if err != nil {
		log.Printf("load schedule failed: trip_id=%s err=%v", tripID, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	computedAt := snap.ComputedAt
	res := dto.ScheduleResponse{
		TripID:     snap.TripID,
		StartDate:  snap.StartDate,
		EndDate:    snap.EndDate,
		Stops:      stopResponses(snap.Stops),
		Conflicts:  conflictResponses(snap.Conflicts),
		Warnings:   snap.Warnings,
		ComputedAt: &computedAt,
	}

	writeJSON(w, r, http.StatusOK, res)
}

// reschedule runs the full recalculation pass for one trip. Conflicts
// are advisory and never fail the request; the itinerary stays editable
// in a conflicting state.
func (h *ScheduleHandler) reschedule(w http.ResponseWriter, r *http.Request) {
	tripID := r.PathValue("id")

	var req dto.ScheduleRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	svcReq := services.RescheduleRequest{
		TripID:           tripID,
		StartDate:        req.StartDate,
		StartDateLocked:  req.StartDateLocked,
		Stops:            stopsFromInput(req.Stops),
		DefaultStartDate: h.DefaultStartDate,
	}

	result, err := services.RescheduleTrip(r.Context(), svcReq, h.Repo, h.Cache)
	if errors.Is(err, ports.ErrTripNotFound) {
		writeError(w, r, http.StatusNotFound, "trip not found")
		return
	}
	if err != nil {
		log.Printf("reschedule failed: trip_id=%s err=%v", tripID, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	for _, warning := range result.Warnings {
		log.Printf("reschedule degraded: trip_id=%s %s", tripID, warning)
	}

	res := dto.ScheduleResponse{
		TripID:    result.Trip.TripID,
		StartDate: result.Trip.StartDate,
		EndDate:   result.Trip.EndDate,
		Skipped:   result.Skipped,
		Stops:     stopResponses(result.Trip.Stops),
		Conflicts: conflictResponses(result.Conflicts),
		Warnings:  result.Warnings,
	}

	writeJSON(w, r, http.StatusOK, res)
}

// stopsFromInput keeps the nil/empty distinction: nil means "use the
// stored sequence", an empty array clears the trip.
func stopsFromInput(in []dto.StopInput) []*domain.Stop {
	if in == nil {
		return nil
	}

	stops := make([]*domain.Stop, 0, len(in))
	for _, s := range in {
		stops = append(stops, &domain.Stop{
			StopID:              s.StopID,
			Destination:         s.Destination,
			DurationDays:        s.DurationDays,
			ArrivalDate:         s.ArrivalDate,
			DepartureDate:       s.DepartureDate,
			DateLocked:          s.IsDateLocked,
			LockedArrivalDate:   s.LockedArrivalDate,
			LockedDepartureDate: s.LockedDepartureDate,
		})
	}
	return stops
}

func conflictResponses(conflicts []domain.Conflict) []dto.ConflictResponse {
	out := make([]dto.ConflictResponse, 0, len(conflicts))
	for _, c := range conflicts {
		out = append(out, dto.ConflictResponse{
			Type:     string(c.Type),
			FromStop: c.FromStopID,
			ToStop:   c.ToStopID,
			Days:     c.Days,
			Message:  c.Message,
		})
	}
	return out
}
