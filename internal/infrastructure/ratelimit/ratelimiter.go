package ratelimit

import (
	"context"
	"time"
)

type Config struct {
	RequestsPerMinute int
	RequestsPerHour   int
}

// Limiter throttles API calls per client key.
type Limiter interface {
	Allow(ctx context.Context, key string, cfg Config) (bool, error)
	Reset(ctx context.Context, key string) error
}

// windows maps a config to the sliding windows it enables.
func (c Config) windows() []struct {
	duration time.Duration
	limit    int
} {
	return []struct {
		duration time.Duration
		limit    int
	}{
		{time.Minute, c.RequestsPerMinute},
		{time.Hour, c.RequestsPerHour},
	}
}
