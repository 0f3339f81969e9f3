package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"trip-scheduler-service/internal/domain"
	"trip-scheduler-service/internal/ports"
)

// RecalculateResult reports the outcome of one recalculation pass.
type RecalculateResult struct {
	Conflicts []domain.Conflict
	Warnings  []string
	Skipped   bool
}

// Recalculate runs the full scheduling pass over the trip's stop
// sequence: resolve anchors, forward-fill every unlocked stop, detect
// conflicts, and derive trip-level start/end dates.
//
// The pass is pure (no I/O), operates on the entire sequence rather
// than a delta, and is idempotent: running it twice with no
// intervening edits yields identical dates and conflicts.
//
// A missing trip start date falls back to fallbackStart; when neither
// is a valid date the pass is skipped entirely rather than producing
// invalid dates.
func Recalculate(trip *domain.Trip, fallbackStart string) RecalculateResult {
	startStr := trip.StartDate
	if startStr == "" {
		startStr = fallbackStart
	}

	start, err := domain.ParseDate(startStr)
	if err != nil {
		return RecalculateResult{Conflicts: []domain.Conflict{}, Skipped: true}
	}

	anchors, warnings := ResolveAnchors(trip.Stops, start, trip.StartDateLocked)
	ScheduleStops(trip.Stops, anchors, start)
	conflicts := DetectConflicts(trip.Stops)
	updateTripDates(trip)

	return RecalculateResult{Conflicts: conflicts, Warnings: warnings}
}

// updateTripDates derives trip-level start/end from the first and last
// stop. Informational only; it never feeds back into the scheduling
// pass, and a locked trip boundary is not overwritten.
func updateTripDates(trip *domain.Trip) {
	if len(trip.Stops) == 0 {
		return
	}

	if first := trip.Stops[0]; first.ArrivalDate != "" && !trip.StartDateLocked {
		trip.StartDate = first.ArrivalDate
	}
	if last := trip.Stops[len(trip.Stops)-1]; last.DepartureDate != "" && !trip.EndDateLocked {
		trip.EndDate = last.DepartureDate
	}
}

// RescheduleRequest carries one reschedule invocation. Stops, when
// non-nil, replaces the trip's stored sequence (reorders, edits and
// add/remove all arrive this way); StartDate and StartDateLocked
// override the stored trip values when set.
type RescheduleRequest struct {
	TripID           string
	StartDate        string
	StartDateLocked  *bool
	Stops            []*domain.Stop
	DefaultStartDate string
}

type RescheduleResult struct {
	Trip      *domain.Trip
	Conflicts []domain.Conflict
	Warnings  []string
	Skipped   bool
}

// RescheduleTrip loads the trip, applies the requested edits, runs the
// recalculation pass, persists the dated sequence and refreshes the
// schedule cache. A skipped pass (no usable start date) persists
// nothing.
func RescheduleTrip(
	ctx context.Context,
	req RescheduleRequest,
	repo ports.TripRepository,
	cache ports.ScheduleCache,
) (*RescheduleResult, error) {
	trip, err := repo.GetTrip(ctx, req.TripID)
	if err != nil {
		return nil, fmt.Errorf("reschedule trip: get trip %s: %w", req.TripID, err)
	}

	if req.Stops != nil {
		trip.Stops = req.Stops
	}
	if req.StartDate != "" {
		trip.StartDate = req.StartDate
	}
	if req.StartDateLocked != nil {
		trip.StartDateLocked = *req.StartDateLocked
	}

	res := Recalculate(trip, req.DefaultStartDate)
	if res.Skipped {
		return &RescheduleResult{
			Trip:      trip,
			Conflicts: res.Conflicts,
			Warnings:  res.Warnings,
			Skipped:   true,
		}, nil
	}

	if err := repo.SaveSchedule(ctx, trip); err != nil {
		return nil, fmt.Errorf("reschedule trip: save schedule for trip %s: %w", req.TripID, err)
	}

	if cache != nil {
		if err := cache.Put(ctx, trip.TripID, Snapshot(trip, res)); err != nil {
			// Cache refresh failures must not fail the reschedule.
			log.Printf("schedule cache put failed: trip_id=%s err=%v", trip.TripID, err)
		}
	}

	return &RescheduleResult{
		Trip:      trip,
		Conflicts: res.Conflicts,
		Warnings:  res.Warnings,
	}, nil
}

// LoadSchedule returns the cached schedule snapshot for a trip, or
// recomputes one from the stored sequence on a cache miss. The
// recomputed snapshot is cached but not persisted; only an explicit
// reschedule writes dates back to storage.
func LoadSchedule(
	ctx context.Context,
	tripID string,
	defaultStart string,
	repo ports.TripRepository,
	cache ports.ScheduleCache,
) (*domain.ScheduleSnapshot, error) {
	if cache != nil {
		snap, ok, err := cache.Get(ctx, tripID)
		if err != nil {
			log.Printf("schedule cache get failed: trip_id=%s err=%v", tripID, err)
		} else if ok {
			return snap, nil
		}
	}

	trip, err := repo.GetTrip(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("load schedule: get trip %s: %w", tripID, err)
	}

	res := Recalculate(trip, defaultStart)
	snap := Snapshot(trip, res)

	if cache != nil && !res.Skipped {
		if err := cache.Put(ctx, tripID, snap); err != nil {
			log.Printf("schedule cache put failed: trip_id=%s err=%v", tripID, err)
		}
	}

	return snap, nil
}

// Snapshot freezes a recalculation result into its cacheable form.
func Snapshot(trip *domain.Trip, res RecalculateResult) *domain.ScheduleSnapshot {
	return &domain.ScheduleSnapshot{
		TripID:     trip.TripID,
		StartDate:  trip.StartDate,
		EndDate:    trip.EndDate,
		Stops:      trip.Stops,
		Conflicts:  res.Conflicts,
		Warnings:   res.Warnings,
		ComputedAt: time.Now().UTC(),
	}
}
