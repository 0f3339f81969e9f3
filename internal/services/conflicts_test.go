package services

import (
	"testing"

	"trip-scheduler-service/internal/domain"
)

func TestDetectConflictsBackToBackIsClean(t *testing.T) {
	stops := []*domain.Stop{
		{StopID: "a", DurationDays: 3, ArrivalDate: "2026-01-01", DepartureDate: "2026-01-03"},
		{StopID: "b", DurationDays: 2, ArrivalDate: "2026-01-04", DepartureDate: "2026-01-05"},
	}

	conflicts := DetectConflicts(stops)
	if len(conflicts) != 0 {
		t.Fatalf("expected no conflicts, got %v", conflicts)
	}
}

func TestDetectConflictsSameDayArrivalOverlapsOneDay(t *testing.T) {
	stops := []*domain.Stop{
		{StopID: "a", DurationDays: 3, ArrivalDate: "2026-01-01", DepartureDate: "2026-01-03"},
		{StopID: "b", DurationDays: 2, ArrivalDate: "2026-01-03", DepartureDate: "2026-01-04"},
	}

	conflicts := DetectConflicts(stops)
	if len(conflicts) != 1 {
		t.Fatalf("expected 1 conflict, got %v", conflicts)
	}
	if conflicts[0].Type != domain.ConflictOverlap || conflicts[0].Days != 1 {
		t.Errorf("conflict = %s/%d days, want overlap/1", conflicts[0].Type, conflicts[0].Days)
	}
}

func TestDetectConflictsGapDays(t *testing.T) {
	stops := []*domain.Stop{
		{StopID: "a", DurationDays: 3, ArrivalDate: "2026-01-01", DepartureDate: "2026-01-03"},
		{StopID: "b", DurationDays: 2, ArrivalDate: "2026-01-10", DepartureDate: "2026-01-11"},
	}

	conflicts := DetectConflicts(stops)
	if len(conflicts) != 1 {
		t.Fatalf("expected 1 conflict, got %v", conflicts)
	}
	c := conflicts[0]
	if c.Type != domain.ConflictGap || c.Days != 6 {
		t.Errorf("conflict = %s/%d days, want gap/6", c.Type, c.Days)
	}
}

func TestDetectConflictsSkipsUndatedPairs(t *testing.T) {
	stops := []*domain.Stop{
		{StopID: "a", DurationDays: 3, ArrivalDate: "2026-01-01", DepartureDate: "2026-01-03"},
		{StopID: "b", DurationDays: 2},
		{StopID: "c", DurationDays: 2, ArrivalDate: "2026-01-08", DepartureDate: "2026-01-09"},
	}

	conflicts := DetectConflicts(stops)
	if len(conflicts) != 0 {
		t.Fatalf("pairs with missing dates must be skipped, got %v", conflicts)
	}
}

func TestDetectConflictsNoOverrunWithSingleLockedStop(t *testing.T) {
	stops := []*domain.Stop{
		{StopID: "a", DurationDays: 9, ArrivalDate: "2026-01-01", DepartureDate: "2026-01-09"},
		{StopID: "b", DurationDays: 3, DateLocked: true, ArrivalDate: "2026-01-10", DepartureDate: "2026-01-12"},
	}

	for _, c := range DetectConflicts(stops) {
		if c.Type == domain.ConflictDurationExceeded {
			t.Fatalf("overrun requires two distinct locked stops, got %v", c)
		}
	}
}

func TestDetectConflictsBoundaryOverrun(t *testing.T) {
	stops := []*domain.Stop{
		{StopID: "a", DurationDays: 3, DateLocked: true, ArrivalDate: "2026-01-01", DepartureDate: "2026-01-03"},
		{StopID: "b", DurationDays: 7, ArrivalDate: "2026-01-04", DepartureDate: "2026-01-10"},
		{StopID: "c", DurationDays: 4, DateLocked: true, ArrivalDate: "2026-01-07", DepartureDate: "2026-01-10"},
	}

	var overrun *domain.Conflict
	for _, c := range DetectConflicts(stops) {
		if c.Type == domain.ConflictDurationExceeded {
			cc := c
			overrun = &cc
		}
	}
	if overrun == nil {
		t.Fatalf("expected a duration_exceeded conflict")
	}
	if overrun.Days != 4 {
		t.Errorf("overrun days = %d, want 4", overrun.Days)
	}
}

func TestDetectConflictsAdvisoryOnly(t *testing.T) {
	stops := []*domain.Stop{
		{StopID: "a", DurationDays: 3, ArrivalDate: "2026-01-01", DepartureDate: "2026-01-03"},
		{StopID: "b", DurationDays: 2, ArrivalDate: "2026-01-02", DepartureDate: "2026-01-03"},
	}

	before := *stops[0]
	DetectConflicts(stops)
	if *stops[0] != before {
		t.Fatalf("conflict detection must not mutate stops")
	}
}
