// Package geocache caches successful geocoder lookups in Redis.
package geocache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"eventsmanager/internal/domain"
)

const keyPrefix = "geocode:"

// Backend is the subset of *redis.Client the cache uses.
type Backend interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
}

type cachedGeocoder struct {
	next    domain.Geocoder
	backend Backend
	ttl     time.Duration
	logger  *slog.Logger
}

// New wraps next with a Redis read-through cache. Failures are never cached
// and cache errors fall back to next.
func New(next domain.Geocoder, backend Backend, ttl time.Duration, logger *slog.Logger) domain.Geocoder {
	if logger == nil {
		logger = slog.Default()
	}
	return &cachedGeocoder{next: next, backend: backend, ttl: ttl, logger: logger}
}

// Key returns the cache key for a city. Lookups are case-insensitive.
func Key(city string) string {
	return keyPrefix + strings.ToLower(strings.TrimSpace(city))
}

func (g *cachedGeocoder) Locate(ctx context.Context, city string) (domain.Coordinates, error) {
	key := Key(city)

	raw, err := g.backend.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var c domain.Coordinates
		if err := json.Unmarshal(raw, &c); err == nil {
			return c, nil
		}
		g.logger.WarnContext(ctx, "discarding malformed geocode cache entry", "key", key)
	case !errors.Is(err, redis.Nil):
		g.logger.WarnContext(ctx, "geocode cache read failed", "key", key, "error", err)
	}

	c, err := g.next.Locate(ctx, city)
	if err != nil {
		return domain.Coordinates{}, err
	}

	if b, err := json.Marshal(c); err == nil {
		if err := g.backend.Set(ctx, key, b, g.ttl).Err(); err != nil {
			g.logger.WarnContext(ctx, "geocode cache write failed", "key", key, "error", err)
		}
	}
	return c, nil
}
