package domain

// Represents a single destination in the itinerary.
// Arrival and departure dates are ISO YYYY-MM-DD strings; they are
// computed by the scheduler for unlocked stops and owned by the user
// (via the locked fields) for date-locked stops. Empty string means
// the date has not been computed yet.
type Stop struct {
	StopID              string
	Destination         string
	DurationDays        int
	ArrivalDate         string
	DepartureDate       string
	DateLocked          bool
	LockedArrivalDate   string
	LockedDepartureDate string
}

// EffectiveDuration returns the stay length in days, defaulting to 1
// when the stored value is missing or non-positive.
func (s *Stop) EffectiveDuration() int {
	if s.DurationDays < 1 {
		return 1
	}
	return s.DurationDays
}
