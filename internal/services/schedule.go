package services

import (
	"time"

	"trip-scheduler-service/internal/domain"
)

// ScheduleStops assigns arrival/departure dates to every unlocked stop
// in the sequence, mutating the stops in place.
//
// With no locked stops and an unlocked trip start this is a single
// forward pass from the start date. Otherwise the sequence is split at
// each anchor: the stops strictly between two anchors are forward-filled
// from the segment-start anchor, and the running cursor is reset to the
// day after each anchored stop's departure. That reset decouples the
// segments and is why a single pass is not enough once any lock exists.
//
// Locked stops are never forward-filled; their dates are copied verbatim
// from the anchor window and their duration is reconciled from the span.
func ScheduleStops(stops []*domain.Stop, anchors []Anchor, start time.Time) {
	// Common case: the only anchor is the unlocked trip-start boundary.
	if len(anchors) == 1 && !anchors[0].Locked {
		forwardFill(stops, 0, len(stops), start)
		return
	}

	for i, a := range anchors {
		cursor := start
		if a.Position >= 0 {
			applyLockedWindow(stops[a.Position], a)
			cursor = domain.AddDays(a.Departure, 1)
		}

		end := len(stops)
		if i+1 < len(anchors) {
			end = anchors[i+1].Position
		}

		// A segment with no interior stops computes nothing; the next
		// segment still seeds from its own anchor.
		forwardFill(stops, a.Position+1, end, cursor)
	}
}

// forwardFill dates stops[from:to] sequentially starting at cursor.
func forwardFill(stops []*domain.Stop, from, to int, cursor time.Time) {
	for i := from; i < to; i++ {
		s := stops[i]
		duration := s.EffectiveDuration()
		s.DurationDays = duration

		departure := domain.AddDays(cursor, duration-1)
		s.ArrivalDate = domain.FormatDate(cursor)
		s.DepartureDate = domain.FormatDate(departure)

		cursor = domain.AddDays(departure, 1)
	}
}

// applyLockedWindow mirrors the anchor window onto the stop. When the
// locked span disagrees with the stored duration, the span wins and
// duration is reconciled from it, never the reverse.
func applyLockedWindow(s *domain.Stop, a Anchor) {
	s.ArrivalDate = domain.FormatDate(a.Arrival)
	s.DepartureDate = domain.FormatDate(a.Departure)
	s.DurationDays = domain.DaysBetween(a.Arrival, a.Departure) + 1
}
