package repositories

import (
	"context"
	"fmt"

	"trip-scheduler-service/internal/domain"
	"trip-scheduler-service/internal/ports"
)

// In-memory TripRepository used by tests.
type MockTripRepository struct {
	Trips map[string]*domain.Trip
	Saved []*domain.Trip
}

func NewMockTripRepository(trips ...*domain.Trip) *MockTripRepository {
	m := &MockTripRepository{Trips: make(map[string]*domain.Trip, len(trips))}
	for _, t := range trips {
		m.Trips[t.TripID] = t
	}
	return m
}

func (m *MockTripRepository) ListTrips(ctx context.Context) ([]*domain.Trip, error) {
	out := make([]*domain.Trip, 0, len(m.Trips))
	for _, t := range m.Trips {
		out = append(out, t)
	}
	return out, nil
}

func (m *MockTripRepository) GetTrip(ctx context.Context, tripID string) (*domain.Trip, error) {
	t, ok := m.Trips[tripID]
	if !ok {
		return nil, fmt.Errorf("get trip %s: %w", tripID, ports.ErrTripNotFound)
	}
	return t, nil
}

func (m *MockTripRepository) SaveSchedule(ctx context.Context, trip *domain.Trip) error {
	if _, ok := m.Trips[trip.TripID]; !ok {
		return fmt.Errorf("save schedule: trip_id=%s: %w", trip.TripID, ports.ErrTripNotFound)
	}
	m.Trips[trip.TripID] = trip
	m.Saved = append(m.Saved, trip)
	return nil
}
