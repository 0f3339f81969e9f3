package services

import (
	"fmt"
	"time"

	"trip-scheduler-service/internal/domain"
)

// Anchor is a fixed point in the schedule: the virtual trip-start
// boundary (position -1) or a date-locked stop. Anchors are a derived
// view over the stop sequence, rebuilt on every recalculation and
// never persisted.
type Anchor struct {
	Position  int
	Arrival   time.Time
	Departure time.Time
	Locked    bool
}

// ResolveAnchors scans the stop sequence and returns the ordered
// anchor list: the trip-start boundary first, then one anchor per
// date-locked stop in sequence order.
//
// A stop marked locked without a valid locked date pair is scheduled
// as if unlocked for this pass; the returned warnings name each such
// stop so callers can surface the degraded case instead of hiding it.
func ResolveAnchors(stops []*domain.Stop, start time.Time, startLocked bool) ([]Anchor, []string) {
	anchors := []Anchor{{
		Position:  -1,
		Arrival:   start,
		Departure: start,
		Locked:    startLocked,
	}}

	var warnings []string
	for i, s := range stops {
		if !s.DateLocked {
			continue
		}

		arrival, departure, ok := lockedWindow(s)
		if !ok {
			warnings = append(warnings, fmt.Sprintf(
				"stop %s is marked date-locked but has no valid locked date pair; scheduling it as unlocked",
				s.StopID,
			))
			continue
		}

		anchors = append(anchors, Anchor{
			Position:  i,
			Arrival:   arrival,
			Departure: departure,
			Locked:    true,
		})
	}

	return anchors, warnings
}

// lockedWindow resolves the authoritative date window of a locked stop.
// The locked-specific fields win; each falls back to the stop's current
// computed date when unset. An unparseable or inverted pair is invalid.
func lockedWindow(s *domain.Stop) (time.Time, time.Time, bool) {
	arrivalStr := s.LockedArrivalDate
	if arrivalStr == "" {
		arrivalStr = s.ArrivalDate
	}
	departureStr := s.LockedDepartureDate
	if departureStr == "" {
		departureStr = s.DepartureDate
	}

	arrival, errA := domain.ParseDate(arrivalStr)
	departure, errD := domain.ParseDate(departureStr)
	if errA != nil || errD != nil || departure.Before(arrival) {
		return time.Time{}, time.Time{}, false
	}

	return arrival, departure, true
}
