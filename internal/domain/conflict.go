package domain

import "time"

type ConflictType string

const (
	ConflictOverlap          ConflictType = "overlap"
	ConflictGap              ConflictType = "gap"
	ConflictDurationExceeded ConflictType = "duration_exceeded"
)

// Represents a scheduling problem detected in a dated stop sequence.
// Conflicts are derived, advisory records: they are recomputed in full
// on every recalculation and never persisted or enforced.
type Conflict struct {
	Type       ConflictType
	FromStopID string
	ToStopID   string
	Days       int
	Message    string
}

// ScheduleSnapshot is the cacheable result of one recalculation pass:
// the dated stop sequence plus conflicts and degraded-lock warnings.
type ScheduleSnapshot struct {
	TripID     string     `json:"trip_id"`
	StartDate  string     `json:"start_date"`
	EndDate    string     `json:"end_date"`
	Stops      []*Stop    `json:"stops"`
	Conflicts  []Conflict `json:"conflicts"`
	Warnings   []string   `json:"warnings"`
	ComputedAt time.Time  `json:"computed_at"`
}
