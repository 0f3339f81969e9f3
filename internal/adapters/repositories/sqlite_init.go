package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Initialize the SQLite database schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createTripsQuery := `
	CREATE TABLE IF NOT EXISTS trips (
		trip_id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		start_date TEXT NOT NULL DEFAULT '',
		end_date TEXT NOT NULL DEFAULT '',
		start_date_locked INTEGER NOT NULL DEFAULT 0,
		end_date_locked INTEGER NOT NULL DEFAULT 0
	);
	`

	createStopsQuery := `
	CREATE TABLE IF NOT EXISTS stops (
		stop_id TEXT PRIMARY KEY,
		trip_id TEXT NOT NULL,
		position INTEGER NOT NULL,
		destination TEXT NOT NULL,
		duration_days INTEGER NOT NULL DEFAULT 1,
		arrival_date TEXT NOT NULL DEFAULT '',
		departure_date TEXT NOT NULL DEFAULT '',
		is_date_locked INTEGER NOT NULL DEFAULT 0,
		locked_arrival_date TEXT NOT NULL DEFAULT '',
		locked_departure_date TEXT NOT NULL DEFAULT ''
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_stops_trip_position
	ON stops(trip_id, position);
	`

	statements := []string{
		createTripsQuery,
		createStopsQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type StopSeed struct {
	StopID              string `json:"stop_id"`
	Destination         string `json:"destination"`
	DurationDays        int    `json:"duration_days"`
	DateLocked          bool   `json:"is_date_locked"`
	LockedArrivalDate   string `json:"locked_arrival_date"`
	LockedDepartureDate string `json:"locked_departure_date"`
}

type TripSeed struct {
	TripID          string     `json:"trip_id"`
	Name            string     `json:"name"`
	StartDate       string     `json:"start_date"`
	StartDateLocked bool       `json:"start_date_locked"`
	EndDateLocked   bool       `json:"end_date_locked"`
	Stops           []StopSeed `json:"stops"`
}

// Populate the database with trip and stop data from a JSON file.
func SeedFromJSON(db *sql.DB, jsonPath string) error {
	trips, err := readSeedFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed trips: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed trips: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	tripStmt, err := tx.Prepare(`
	INSERT OR REPLACE INTO trips (
		trip_id,
		name,
		start_date,
		start_date_locked,
		end_date_locked
	)
	VALUES (?, ?, ?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("seed trips: prepare trip insert: %w", err)
	}
	defer tripStmt.Close()

	stopStmt, err := tx.Prepare(`
	INSERT OR REPLACE INTO stops (
		stop_id,
		trip_id,
		position,
		destination,
		duration_days,
		is_date_locked,
		locked_arrival_date,
		locked_departure_date
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("seed trips: prepare stop insert: %w", err)
	}
	defer stopStmt.Close()

	for _, t := range trips {
		if _, err := tripStmt.Exec(t.TripID, t.Name, t.StartDate, t.StartDateLocked, t.EndDateLocked); err != nil {
			return fmt.Errorf("seed trips: insert trip_id=%s: %w", t.TripID, err)
		}

		for pos, s := range t.Stops {
			if _, err := stopStmt.Exec(
				s.StopID, t.TripID, pos, s.Destination, s.DurationDays,
				s.DateLocked, s.LockedArrivalDate, s.LockedDepartureDate,
			); err != nil {
				return fmt.Errorf("seed trips: insert stop_id=%s: %w", s.StopID, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed trips: commit tx: %w", err)
	}

	return nil
}

// readSeedFile loads and validates the seed JSON, defaulting missing
// durations to one day.
func readSeedFile(jsonPath string) ([]TripSeed, error) {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", jsonPath, err)
	}

	var trips []TripSeed
	if err := json.Unmarshal(bytes, &trips); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}

	for ti := range trips {
		t := &trips[ti]
		if strings.TrimSpace(t.TripID) == "" {
			return nil, fmt.Errorf("trip at index %d: trip_id cannot be empty", ti)
		}
		if strings.TrimSpace(t.Name) == "" {
			return nil, fmt.Errorf("trip %s: name cannot be empty", t.TripID)
		}

		for si := range t.Stops {
			s := &t.Stops[si]
			if strings.TrimSpace(s.StopID) == "" {
				return nil, fmt.Errorf("trip %s: stop at index %d: stop_id cannot be empty", t.TripID, si)
			}
			if strings.TrimSpace(s.Destination) == "" {
				return nil, fmt.Errorf("trip %s: stop %s: destination cannot be empty", t.TripID, s.StopID)
			}
			if s.DurationDays < 1 {
				s.DurationDays = 1
			}
		}
	}

	return trips, nil
}
