package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"trip-scheduler-service/internal/domain"
	"trip-scheduler-service/internal/platform/obs"
)

// RedisScheduleCache stores the last computed schedule snapshot per
// trip as JSON under a TTL. Every reschedule overwrites the entry, so
// a stale snapshot can only outlive the TTL when a trip is edited
// outside the service.
type RedisScheduleCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisScheduleCache(client *redis.Client, ttl time.Duration) *RedisScheduleCache {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &RedisScheduleCache{Client: client, TTL: ttl}
}

func scheduleKey(tripID string) string {
	return "schedule:" + tripID
}

// Fetch the cached snapshot for one trip.
func (c *RedisScheduleCache) Get(
	ctx context.Context,
	tripID string,
) (_ *domain.ScheduleSnapshot, _ bool, err error) {
	defer obs.Time(ctx, "schedule.cache.Get")(&err)

	if c.Client == nil {
		return nil, false, errors.New("schedule cache: client is nil")
	}
	if strings.TrimSpace(tripID) == "" {
		return nil, false, errors.New("get schedule cache: trip id must not be empty")
	}

	raw, err := c.Client.Get(ctx, scheduleKey(tripID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get schedule cache: redis get trip_id=%s: %w", tripID, err)
	}

	var snap domain.ScheduleSnapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, false, fmt.Errorf("get schedule cache: decode snapshot trip_id=%s: %w", tripID, err)
	}

	return &snap, true, nil
}

// Store the snapshot for one trip, replacing any previous entry.
func (c *RedisScheduleCache) Put(
	ctx context.Context,
	tripID string,
	snap *domain.ScheduleSnapshot,
) error {
	if c.Client == nil {
		return errors.New("schedule cache: client is nil")
	}
	if strings.TrimSpace(tripID) == "" {
		return errors.New("insert schedule cache: trip id must not be empty")
	}
	if snap == nil {
		return errors.New("insert schedule cache: snapshot must be non-nil")
	}

	raw, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("insert schedule cache: encode snapshot trip_id=%s: %w", tripID, err)
	}

	if err := c.Client.Set(ctx, scheduleKey(tripID), raw, c.TTL).Err(); err != nil {
		return fmt.Errorf("insert schedule cache: redis set trip_id=%s: %w", tripID, err)
	}

	return nil
}

// Drop the cached snapshot for one trip.
func (c *RedisScheduleCache) Invalidate(ctx context.Context, tripID string) error {
	if c.Client == nil {
		return errors.New("schedule cache: client is nil")
	}
	if strings.TrimSpace(tripID) == "" {
		return errors.New("invalidate schedule cache: trip id must not be empty")
	}

	if err := c.Client.Del(ctx, scheduleKey(tripID)).Err(); err != nil {
		return fmt.Errorf("invalidate schedule cache: redis del trip_id=%s: %w", tripID, err)
	}

	return nil
}
