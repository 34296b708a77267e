// Package counters tracks high-churn engagement counters (profile views,
// favorite adds) in Redis so each event is a single INCR instead of a row
// update. The pending deltas are folded into the listing snapshot at score
// time; flushing them back to Postgres is the caller's concern.
package counters

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Store wraps the Redis client for engagement counters. A nil Store is
// valid and reports zero deltas, which keeps the listings service working
// when Redis is not configured.
type Store struct {
	client *redis.Client
}

// New creates a counter store backed by the given Redis client.
func New(client *redis.Client) *Store {
	return &Store{client: client}
}

func viewsKey(listingID uuid.UUID) string {
	return fmt.Sprintf("listing:%s:views", listingID)
}

func favoritesKey(listingID uuid.UUID) string {
	return fmt.Sprintf("listing:%s:favorites", listingID)
}

// IncrementViews bumps the pending profile-view counter and returns the
// new pending total.
func (s *Store) IncrementViews(ctx context.Context, listingID uuid.UUID) (int64, error) {
	if s == nil || s.client == nil {
		return 0, nil
	}
	total, err := s.client.Incr(ctx, viewsKey(listingID)).Result()
	if err != nil {
		return 0, fmt.Errorf("increment views: %w", err)
	}
	return total, nil
}

// IncrementFavorites bumps the pending favorite-add counter and returns
// the new pending total.
func (s *Store) IncrementFavorites(ctx context.Context, listingID uuid.UUID) (int64, error) {
	if s == nil || s.client == nil {
		return 0, nil
	}
	total, err := s.client.Incr(ctx, favoritesKey(listingID)).Result()
	if err != nil {
		return 0, fmt.Errorf("increment favorites: %w", err)
	}
	return total, nil
}

// Pending returns the view and favorite deltas not yet flushed to the
// database. Missing keys count as zero.
func (s *Store) Pending(ctx context.Context, listingID uuid.UUID) (views, favorites int64, err error) {
	if s == nil || s.client == nil {
		return 0, 0, nil
	}
	values, err := s.client.MGet(ctx, viewsKey(listingID), favoritesKey(listingID)).Result()
	if err != nil {
		return 0, 0, fmt.Errorf("read pending counters: %w", err)
	}
	return parseCounter(values[0]), parseCounter(values[1]), nil
}

func parseCounter(value interface{}) int64 {
	str, ok := value.(string)
	if !ok {
		return 0
	}
	var n int64
	if _, err := fmt.Sscan(str, &n); err != nil {
		return 0
	}
	return n
}
