package api

import (
	"net/http"

	"trip-scheduler-service/internal/api/handlers"
	"trip-scheduler-service/internal/ports"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
// cache may be nil, in which case every schedule lookup recomputes from storage.
func NewRouter(repo ports.TripRepository, cache ports.ScheduleCache, defaultStart string) http.Handler {
	mux := http.NewServeMux()

	tripHandler := &handlers.TripHandler{Repo: repo}
	scheduleHandler := &handlers.ScheduleHandler{
		Repo:             repo,
		Cache:            cache,
		DefaultStartDate: defaultStart,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/trips", tripHandler.List)
	mux.HandleFunc("/trips/{id}", tripHandler.Get)
	mux.HandleFunc("/trips/{id}/schedule", scheduleHandler.Handle)

	return loggingMiddleware(mux)
}
