package domain

import "fmt"

// Trip aggregate holding the ordered stop sequence and trip-level
// boundary dates. Editing methods only reshape the sequence; callers
// re-run recalculation afterwards so every unlocked stop gets
// consistent dates.
type Trip struct {
	TripID          string
	Name            string
	StartDate       string
	EndDate         string
	StartDateLocked bool
	EndDateLocked   bool
	Stops           []*Stop
}

// AddStop appends a new unlocked stop to the end of the sequence.
func (t *Trip) AddStop(stop *Stop) error {
	if stop == nil {
		return fmt.Errorf("add stop: stop must be non-nil")
	}
	if stop.StopID == "" {
		return fmt.Errorf("add stop: stop id must be non-empty")
	}
	if t.indexOf(stop.StopID) >= 0 {
		return fmt.Errorf("add stop: stop %q already exists in trip %s", stop.StopID, t.TripID)
	}
	t.Stops = append(t.Stops, stop)
	return nil
}

// RemoveStop deletes the stop with the given id, preserving order.
func (t *Trip) RemoveStop(stopID string) error {
	i := t.indexOf(stopID)
	if i < 0 {
		return fmt.Errorf("remove stop: stop %q not found in trip %s", stopID, t.TripID)
	}
	t.Stops = append(t.Stops[:i], t.Stops[i+1:]...)
	return nil
}

// MoveStop moves the stop with the given id to position to, shifting
// the stops in between.
func (t *Trip) MoveStop(stopID string, to int) error {
	i := t.indexOf(stopID)
	if i < 0 {
		return fmt.Errorf("move stop: stop %q not found in trip %s", stopID, t.TripID)
	}
	if to < 0 || to >= len(t.Stops) {
		return fmt.Errorf("move stop: position %d out of range (have %d stops)", to, len(t.Stops))
	}

	s := t.Stops[i]
	t.Stops = append(t.Stops[:i], t.Stops[i+1:]...)
	t.Stops = append(t.Stops[:to], append([]*Stop{s}, t.Stops[to:]...)...)
	return nil
}

// LockStop pins a stop to a fixed arrival/departure window. The locked
// dates are authoritative until UnlockStop is called.
func (t *Trip) LockStop(stopID, arrival, departure string) error {
	i := t.indexOf(stopID)
	if i < 0 {
		return fmt.Errorf("lock stop: stop %q not found in trip %s", stopID, t.TripID)
	}

	s := t.Stops[i]
	s.DateLocked = true
	s.LockedArrivalDate = arrival
	s.LockedDepartureDate = departure
	return nil
}

// UnlockStop releases a stop back to scheduler ownership.
func (t *Trip) UnlockStop(stopID string) error {
	i := t.indexOf(stopID)
	if i < 0 {
		return fmt.Errorf("unlock stop: stop %q not found in trip %s", stopID, t.TripID)
	}

	s := t.Stops[i]
	s.DateLocked = false
	s.LockedArrivalDate = ""
	s.LockedDepartureDate = ""
	return nil
}

func (t *Trip) indexOf(stopID string) int {
	for i, s := range t.Stops {
		if s.StopID == stopID {
			return i
		}
	}
	return -1
}
