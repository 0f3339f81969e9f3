package domain

import "testing"

func buildTrip() *Trip {
	return &Trip{
		TripID:    "t1",
		Name:      "world tour",
		StartDate: "2026-01-01",
		Stops: []*Stop{
			{StopID: "a", Destination: "Lisbon", DurationDays: 3},
			{StopID: "b", Destination: "Cairo", DurationDays: 4},
			{StopID: "c", Destination: "Hanoi", DurationDays: 2},
		},
	}
}

func stopOrder(t *Trip) []string {
	ids := make([]string, 0, len(t.Stops))
	for _, s := range t.Stops {
		ids = append(ids, s.StopID)
	}
	return ids
}

func TestTripMoveStop(t *testing.T) {
	trip := buildTrip()

	if err := trip.MoveStop("c", 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := stopOrder(trip)
	want := []string{"c", "a", "b"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestTripMoveStopOutOfRange(t *testing.T) {
	trip := buildTrip()
	if err := trip.MoveStop("a", 3); err == nil {
		t.Fatalf("expected error for out-of-range position")
	}
}

func TestTripAddRemoveStop(t *testing.T) {
	trip := buildTrip()

	if err := trip.AddStop(&Stop{StopID: "d", Destination: "Quito", DurationDays: 5}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := trip.AddStop(&Stop{StopID: "d", Destination: "Quito"}); err == nil {
		t.Fatalf("expected duplicate-id error")
	}

	if err := trip.RemoveStop("b"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := stopOrder(trip)
	want := []string{"a", "c", "d"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestTripLockUnlockStop(t *testing.T) {
	trip := buildTrip()

	if err := trip.LockStop("b", "2026-01-10", "2026-01-13"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	b := trip.Stops[1]
	if !b.DateLocked || b.LockedArrivalDate != "2026-01-10" || b.LockedDepartureDate != "2026-01-13" {
		t.Fatalf("lock not applied: %+v", b)
	}

	if err := trip.UnlockStop("b"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.DateLocked || b.LockedArrivalDate != "" || b.LockedDepartureDate != "" {
		t.Fatalf("unlock not applied: %+v", b)
	}
}

func TestStopEffectiveDuration(t *testing.T) {
	cases := map[int]int{-1: 1, 0: 1, 1: 1, 7: 7}
	for in, want := range cases {
		s := &Stop{DurationDays: in}
		if got := s.EffectiveDuration(); got != want {
			t.Errorf("EffectiveDuration(%d) = %d, want %d", in, got, want)
		}
	}
}
