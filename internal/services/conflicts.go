package services

import (
	"fmt"

	"trip-scheduler-service/internal/domain"
)

// DetectConflicts reports scheduling problems in a fully dated stop
// sequence. Conflicts are advisory: they never block scheduling or
// mutate a stop, and they are recomputed in full on every pass.
//
// Two independent checks run:
//   - every consecutive pair with both dates present is checked for
//     overlapping stays and unplanned gaps (back-to-back, where the next
//     arrival is exactly one day after the previous departure, is clean);
//   - when two distinct date-locked stops bound a span whose summed
//     durations exceed the days the locked window allows, a single
//     duration_exceeded conflict carries the overrun.
func DetectConflicts(stops []*domain.Stop) []domain.Conflict {
	conflicts := []domain.Conflict{}

	for i := 0; i+1 < len(stops); i++ {
		current, next := stops[i], stops[i+1]

		departure, errD := domain.ParseDate(current.DepartureDate)
		arrival, errA := domain.ParseDate(next.ArrivalDate)
		if errD != nil || errA != nil {
			continue
		}

		daysDiff := domain.DaysBetween(departure, arrival)
		switch {
		case daysDiff < 1:
			// Number of calendar days both stays occupy.
			days := 1 - daysDiff
			conflicts = append(conflicts, domain.Conflict{
				Type:       domain.ConflictOverlap,
				FromStopID: current.StopID,
				ToStopID:   next.StopID,
				Days:       days,
				Message: fmt.Sprintf(
					"stay at %s overlaps the stay at %s by %d day(s)",
					current.StopID, next.StopID, days,
				),
			})
		case daysDiff > 1:
			days := daysDiff - 1
			conflicts = append(conflicts, domain.Conflict{
				Type:       domain.ConflictGap,
				FromStopID: current.StopID,
				ToStopID:   next.StopID,
				Days:       days,
				Message: fmt.Sprintf(
					"%d unplanned day(s) between departure from %s and arrival at %s",
					days, current.StopID, next.StopID,
				),
			})
		}
	}

	if c, ok := boundaryOverrun(stops); ok {
		conflicts = append(conflicts, c)
	}

	return conflicts
}

// boundaryOverrun checks whether the stops between the first and last
// date-locked stops (inclusive) need more days than the locked window
// provides.
func boundaryOverrun(stops []*domain.Stop) (domain.Conflict, bool) {
	first, last := -1, -1
	for i, s := range stops {
		if !s.DateLocked {
			continue
		}
		if _, err := domain.ParseDate(s.ArrivalDate); err != nil {
			continue
		}
		if _, err := domain.ParseDate(s.DepartureDate); err != nil {
			continue
		}
		if first < 0 {
			first = i
		}
		last = i
	}

	if first < 0 || last <= first {
		return domain.Conflict{}, false
	}

	arrival, _ := domain.ParseDate(stops[first].ArrivalDate)
	departure, _ := domain.ParseDate(stops[last].DepartureDate)
	availableDays := domain.DaysBetween(arrival, departure) + 1

	totalDuration := 0
	for i := first; i <= last; i++ {
		totalDuration += stops[i].EffectiveDuration()
	}

	if totalDuration <= availableDays {
		return domain.Conflict{}, false
	}

	overrun := totalDuration - availableDays
	return domain.Conflict{
		Type:       domain.ConflictDurationExceeded,
		FromStopID: stops[first].StopID,
		ToStopID:   stops[last].StopID,
		Days:       overrun,
		Message: fmt.Sprintf(
			"stops between %s and %s need %d days but the locked window allows %d (%d over)",
			stops[first].StopID, stops[last].StopID, totalDuration, availableDays, overrun,
		),
	}, true
}
