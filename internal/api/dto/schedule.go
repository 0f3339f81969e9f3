package dto

import "time"

// StopInput mirrors the stop fields the engine reads. Current
// arrival/departure dates are accepted so a locked stop can fall back
// to them when the locked-specific fields are unset.
type StopInput struct {
	StopID              string `json:"stop_id"`
	Destination         string `json:"destination"`
	DurationDays        int    `json:"duration_days"`
	ArrivalDate         string `json:"arrival_date"`
	DepartureDate       string `json:"departure_date"`
	IsDateLocked        bool   `json:"is_date_locked"`
	LockedArrivalDate   string `json:"locked_arrival_date"`
	LockedDepartureDate string `json:"locked_departure_date"`
}

// ScheduleRequest triggers a full recalculation. A nil Stops field
// recalculates the stored sequence as-is; a present array replaces it
// (reorders, duration edits and add/remove all arrive that way).
type ScheduleRequest struct {
	StartDate       string      `json:"start_date"`
	StartDateLocked *bool       `json:"start_date_locked"`
	Stops           []StopInput `json:"stops"`
}

type ConflictResponse struct {
	Type     string `json:"type"`
	FromStop string `json:"from_stop"`
	ToStop   string `json:"to_stop"`
	Days     int    `json:"days"`
	Message  string `json:"message"`
}

type ScheduleResponse struct {
	TripID     string             `json:"trip_id"`
	StartDate  string             `json:"start_date"`
	EndDate    string             `json:"end_date"`
	Skipped    bool               `json:"skipped"`
	Stops      []StopResponse     `json:"stops"`
	Conflicts  []ConflictResponse `json:"conflicts"`
	Warnings   []string           `json:"warnings,omitempty"`
	ComputedAt *time.Time         `json:"computed_at,omitempty"`
}
