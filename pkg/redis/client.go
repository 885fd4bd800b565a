package redis

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	client     *redis.Client
	clientOnce sync.Once
	clientErr  error
)

// Config holds Redis connection configuration.
type Config struct {
	URL string // redis://... or rediss://... for TLS
}

// Client returns the shared Redis client, or nil when Redis is not
// configured. Callers must handle the nil case (rate limiting falls back to
// in-memory counters).
func Client() *redis.Client {
	return client
}

// Initialize connects the shared client. Safe for concurrent calls; only the
// first call takes effect.
func Initialize(cfg Config) error {
	clientOnce.Do(func() {
		if cfg.URL == "" {
			clientErr = errors.New("redis: REDIS_URL not configured")
			return
		}

		opts, err := redis.ParseURL(cfg.URL)
		if err != nil {
			clientErr = err
			return
		}
		opts.DialTimeout = 5 * time.Second
		opts.ReadTimeout = 3 * time.Second
		opts.WriteTimeout = 3 * time.Second

		c := redis.NewClient(opts)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := c.Ping(ctx).Err(); err != nil {
			clientErr = err
			_ = c.Close()
			return
		}
		client = c
	})
	return clientErr
}
