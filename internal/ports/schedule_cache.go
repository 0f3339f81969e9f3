package ports

import (
	"context"

	"trip-scheduler-service/internal/domain"
)

// Port: cache of the last computed schedule snapshot per trip.
// The cache is optional at runtime; callers treat a nil cache as a
// permanent miss.
type ScheduleCache interface {
	// Return the cached snapshot for a trip, with a hit indicator.
	Get(ctx context.Context, tripID string) (*domain.ScheduleSnapshot, bool, error)
	// Store the snapshot for a trip, replacing any previous one.
	Put(ctx context.Context, tripID string, snap *domain.ScheduleSnapshot) error
	// Drop the cached snapshot for a trip.
	Invalidate(ctx context.Context, tripID string) error
}
