package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/simfut/league-api/internal/api/metrics"
	"github.com/simfut/league-api/internal/core/domain"
)

const standingsKey = "standings:table"

// StandingsCache stores the computed league table in Redis under a short
// TTL. Staleness is bounded by the TTL; there is no explicit invalidation.
type StandingsCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewStandingsCache(client *redis.Client, ttl time.Duration) *StandingsCache {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &StandingsCache{client: client, ttl: ttl}
}

// Get returns the cached table, or (nil, nil) on a miss.
func (c *StandingsCache) Get(ctx context.Context) ([]domain.StandingsRow, error) {
	raw, err := c.client.Get(ctx, standingsKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			metrics.StandingsCacheTotal.WithLabelValues("miss").Inc()
			return nil, nil
		}
		return nil, fmt.Errorf("standings cache get: %w", err)
	}

	var rows []domain.StandingsRow
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, fmt.Errorf("standings cache decode: %w", err)
	}
	metrics.StandingsCacheTotal.WithLabelValues("hit").Inc()
	return rows, nil
}

func (c *StandingsCache) Set(ctx context.Context, rows []domain.StandingsRow) error {
	raw, err := json.Marshal(rows)
	if err != nil {
		return fmt.Errorf("standings cache encode: %w", err)
	}
	return c.client.Set(ctx, standingsKey, raw, c.ttl).Err()
}
