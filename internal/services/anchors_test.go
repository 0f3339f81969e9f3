package services

import (
	"testing"

	"trip-scheduler-service/internal/domain"
)

func TestResolveAnchorsAlwaysEmitsTripStart(t *testing.T) {
	start, _ := domain.ParseDate("2026-01-01")

	anchors, warnings := ResolveAnchors(nil, start, false)
	if len(anchors) != 1 {
		t.Fatalf("expected only the trip-start anchor, got %d", len(anchors))
	}
	if anchors[0].Position != -1 || anchors[0].Locked {
		t.Errorf("trip-start anchor = %+v, want position -1, unlocked", anchors[0])
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}
}

func TestResolveAnchorsOrderedByPosition(t *testing.T) {
	start, _ := domain.ParseDate("2026-01-01")
	stops := []*domain.Stop{
		{StopID: "a", DurationDays: 2},
		{StopID: "b", DurationDays: 3, DateLocked: true, LockedArrivalDate: "2026-01-05", LockedDepartureDate: "2026-01-07"},
		{StopID: "c", DurationDays: 1},
		{StopID: "d", DurationDays: 2, DateLocked: true, LockedArrivalDate: "2026-01-10", LockedDepartureDate: "2026-01-11"},
	}

	anchors, _ := ResolveAnchors(stops, start, true)
	if len(anchors) != 3 {
		t.Fatalf("expected 3 anchors, got %d", len(anchors))
	}

	wantPositions := []int{-1, 1, 3}
	for i, a := range anchors {
		if a.Position != wantPositions[i] {
			t.Errorf("anchor %d position = %d, want %d", i, a.Position, wantPositions[i])
		}
	}
	if !anchors[0].Locked {
		t.Errorf("trip-start anchor should carry the start_date_locked flag")
	}
}

func TestResolveAnchorsLockedFieldsFallBackToCurrentDates(t *testing.T) {
	start, _ := domain.ParseDate("2026-01-01")
	stops := []*domain.Stop{
		{
			StopID:        "a",
			DurationDays:  3,
			DateLocked:    true,
			ArrivalDate:   "2026-01-04",
			DepartureDate: "2026-01-06",
		},
	}

	anchors, warnings := ResolveAnchors(stops, start, false)
	if len(anchors) != 2 {
		t.Fatalf("expected 2 anchors, got %d (warnings: %v)", len(anchors), warnings)
	}
	if got := domain.FormatDate(anchors[1].Arrival); got != "2026-01-04" {
		t.Errorf("anchor arrival = %s, want 2026-01-04", got)
	}
	if got := domain.FormatDate(anchors[1].Departure); got != "2026-01-06" {
		t.Errorf("anchor departure = %s, want 2026-01-06", got)
	}
}

func TestResolveAnchorsInvalidLockedPairDegrades(t *testing.T) {
	start, _ := domain.ParseDate("2026-01-01")
	stops := []*domain.Stop{
		{StopID: "a", DurationDays: 2, DateLocked: true}, // no dates at all
		{StopID: "b", DurationDays: 2, DateLocked: true, LockedArrivalDate: "2026-01-09", LockedDepartureDate: "2026-01-05"}, // inverted
		{StopID: "c", DurationDays: 2, DateLocked: true, LockedArrivalDate: "not-a-date", LockedDepartureDate: "2026-01-05"},
	}

	anchors, warnings := ResolveAnchors(stops, start, false)
	if len(anchors) != 1 {
		t.Fatalf("degraded locks must not become anchors, got %d anchors", len(anchors))
	}
	if len(warnings) != 3 {
		t.Fatalf("expected 3 degraded-lock warnings, got %v", warnings)
	}
}
