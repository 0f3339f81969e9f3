package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"trip-scheduler-service/internal/domain"
	"trip-scheduler-service/internal/platform/obs"
	"trip-scheduler-service/internal/ports"
)

// SQLite-backed implementation of the TripRepository port.
type SqliteTripRepository struct{ DB *sql.DB }

func NewSqliteTripRepository(db *sql.DB) *SqliteTripRepository {
	return &SqliteTripRepository{DB: db}
}

// Return all trips without their stop sequences.
func (s *SqliteTripRepository) ListTrips(ctx context.Context) (_ []*domain.Trip, err error) {
	defer obs.Time(ctx, "trips.repo.ListTrips")(&err)

	if s.DB == nil {
		return nil, errors.New("sqlite trip repository: DB is nil")
	}

	query := `
	SELECT
		trip_id,
		name,
		start_date,
		end_date,
		start_date_locked,
		end_date_locked
	FROM trips
	ORDER BY trip_id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list trips: query trips table: %w", err)
	}
	defer rows.Close()

	trips := make([]*domain.Trip, 0, 16)
	for rows.Next() {
		t := &domain.Trip{}
		if err := rows.Scan(
			&t.TripID, &t.Name, &t.StartDate, &t.EndDate,
			&t.StartDateLocked, &t.EndDateLocked,
		); err != nil {
			return nil, fmt.Errorf("list trips: scan row: %w", err)
		}
		trips = append(trips, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list trips: row iteration: %w", err)
	}

	return trips, nil
}

// Return one trip with its stops ordered by position.
func (s *SqliteTripRepository) GetTrip(ctx context.Context, tripID string) (_ *domain.Trip, err error) {
	defer obs.Time(ctx, "trips.repo.GetTrip")(&err)

	if s.DB == nil {
		return nil, errors.New("sqlite trip repository: DB is nil")
	}

	tripQuery := `
	SELECT
		trip_id,
		name,
		start_date,
		end_date,
		start_date_locked,
		end_date_locked
	FROM trips
	WHERE trip_id = ?;
	`
	t := &domain.Trip{}
	err = s.DB.QueryRowContext(ctx, tripQuery, tripID).Scan(
		&t.TripID, &t.Name, &t.StartDate, &t.EndDate,
		&t.StartDateLocked, &t.EndDateLocked,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get trip %s: %w", tripID, ports.ErrTripNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get trip %s: query trips table: %w", tripID, err)
	}

	stopsQuery := `
	SELECT
		stop_id,
		destination,
		duration_days,
		arrival_date,
		departure_date,
		is_date_locked,
		locked_arrival_date,
		locked_departure_date
	FROM stops
	WHERE trip_id = ?
	ORDER BY position;
	`
	rows, err := s.DB.QueryContext(ctx, stopsQuery, tripID)
	if err != nil {
		return nil, fmt.Errorf("get trip %s: query stops table: %w", tripID, err)
	}
	defer rows.Close()

	t.Stops = make([]*domain.Stop, 0, 16)
	for rows.Next() {
		stop := &domain.Stop{}
		if err := rows.Scan(
			&stop.StopID, &stop.Destination, &stop.DurationDays,
			&stop.ArrivalDate, &stop.DepartureDate, &stop.DateLocked,
			&stop.LockedArrivalDate, &stop.LockedDepartureDate,
		); err != nil {
			return nil, fmt.Errorf("get trip %s: scan stop row: %w", tripID, err)
		}
		t.Stops = append(t.Stops, stop)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get trip %s: stop row iteration: %w", tripID, err)
	}

	return t, nil
}

// Persist the trip's dated stop sequence and derived start/end dates.
// The stop rows are replaced wholesale inside one transaction so the
// stored sequence always matches one full recalculation pass.
func (s *SqliteTripRepository) SaveSchedule(ctx context.Context, trip *domain.Trip) (err error) {
	defer obs.Time(ctx, "trips.repo.SaveSchedule")(&err)

	if s.DB == nil {
		return errors.New("sqlite trip repository: DB is nil")
	}
	if trip == nil {
		return errors.New("save schedule: trip must be non-nil")
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("save schedule: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	updateTripQuery := `
	UPDATE trips
	SET start_date = ?,
		end_date = ?,
		start_date_locked = ?,
		end_date_locked = ?
	WHERE trip_id = ?;
	`
	res, err := tx.ExecContext(ctx, updateTripQuery,
		trip.StartDate, trip.EndDate, trip.StartDateLocked, trip.EndDateLocked, trip.TripID,
	)
	if err != nil {
		return fmt.Errorf("save schedule: update trip_id=%s: %w", trip.TripID, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("save schedule: trip_id=%s: %w", trip.TripID, ports.ErrTripNotFound)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM stops WHERE trip_id = ?;`, trip.TripID); err != nil {
		return fmt.Errorf("save schedule: clear stops for trip_id=%s: %w", trip.TripID, err)
	}

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO stops (
		stop_id,
		trip_id,
		position,
		destination,
		duration_days,
		arrival_date,
		departure_date,
		is_date_locked,
		locked_arrival_date,
		locked_departure_date
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("save schedule: prepare stop insert: %w", err)
	}
	defer stmt.Close()

	for pos, stop := range trip.Stops {
		if _, err := stmt.ExecContext(ctx,
			stop.StopID, trip.TripID, pos, stop.Destination, stop.DurationDays,
			stop.ArrivalDate, stop.DepartureDate, stop.DateLocked,
			stop.LockedArrivalDate, stop.LockedDepartureDate,
		); err != nil {
			return fmt.Errorf("save schedule: insert stop_id=%s: %w", stop.StopID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("save schedule: commit tx: %w", err)
	}

	return nil
}
