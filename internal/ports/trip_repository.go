package ports

import (
	"context"
	"errors"

	"trip-scheduler-service/internal/domain"
)

// Returned by repositories when a trip id matches nothing.
var ErrTripNotFound = errors.New("trip not found")

// Port: a boundary for loading and persisting Trip aggregates.
type TripRepository interface {
	// Return all trips without their stop sequences.
	ListTrips(ctx context.Context) ([]*domain.Trip, error)
	// Return one trip with its ordered stop sequence.
	GetTrip(ctx context.Context, tripID string) (*domain.Trip, error)
	// Persist the trip's dated stop sequence and derived start/end dates.
	SaveSchedule(ctx context.Context, trip *domain.Trip) error
}
