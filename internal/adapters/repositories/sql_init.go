package repositories

import (
	"database/sql"
	"errors"
	"fmt"
)

// Initialize the Postgres database schema. Used by the dbtool path;
// the server runs against SQLite (see InitSchema).
func InitPostgresSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init postgres schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init postgres schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createTripsQuery := `
	CREATE TABLE IF NOT EXISTS trips (
		trip_id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		start_date TEXT NOT NULL DEFAULT '',
		end_date TEXT NOT NULL DEFAULT '',
		start_date_locked BOOLEAN NOT NULL DEFAULT FALSE,
		end_date_locked BOOLEAN NOT NULL DEFAULT FALSE
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
		is_date_locked BOOLEAN NOT NULL DEFAULT FALSE,
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
			return fmt.Errorf("init postgres schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init postgres schema: commit tx: %w", err)
	}

	return nil
}

// Populate the Postgres database with trip and stop data from a JSON file.
func SeedPostgresFromJSON(db *sql.DB, jsonPath string) error {
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
	INSERT INTO trips (trip_id, name, start_date, start_date_locked, end_date_locked)
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (trip_id) DO UPDATE
	SET name = EXCLUDED.name,
		start_date = EXCLUDED.start_date,
		start_date_locked = EXCLUDED.start_date_locked,
		end_date_locked = EXCLUDED.end_date_locked;
	`)
	if err != nil {
		return fmt.Errorf("seed trips: prepare trip insert: %w", err)
	}
	defer tripStmt.Close()

	stopStmt, err := tx.Prepare(`
	INSERT INTO stops (
		stop_id, trip_id, position, destination, duration_days,
		is_date_locked, locked_arrival_date, locked_departure_date
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	ON CONFLICT (stop_id) DO UPDATE
	SET trip_id = EXCLUDED.trip_id,
		position = EXCLUDED.position,
		destination = EXCLUDED.destination,
		duration_days = EXCLUDED.duration_days,
		is_date_locked = EXCLUDED.is_date_locked,
		locked_arrival_date = EXCLUDED.locked_arrival_date,
		locked_departure_date = EXCLUDED.locked_departure_date;
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
