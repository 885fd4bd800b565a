package middleware

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"go-internmatch-backend/internal/delivery/http/response"
	"go-internmatch-backend/pkg/redis"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
)

// RateLimitConfig holds configuration for fixed-window rate limiting.
type RateLimitConfig struct {
	Limit     int
	Window    time.Duration
	KeyPrefix string
}

type rateLimitEntry struct {
	mu      sync.Mutex
	count   int
	resetAt time.Time
}

// In-memory fallback used when Redis is unavailable.
var (
	rateLimitStore sync.Map
	cleanupOnce    sync.Once
)

// Atomic increment with TTL set on first hit in the window.
const rateLimitScript = `
local count = redis.call('INCR', KEYS[1])
if count == 1 then
    redis.call('EXPIRE', KEYS[1], ARGV[1])
end
return count
`

func startCleanup() {
	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		for range ticker.C {
			now := time.Now()
			rateLimitStore.Range(func(key, value interface{}) bool {
				entry := value.(*rateLimitEntry)
				entry.mu.Lock()
				if now.After(entry.resetAt) {
					rateLimitStore.Delete(key)
				}
				entry.mu.Unlock()
				return true
			})
		}
	}()
}

// AuthRateLimit returns the config applied to all /auth endpoints.
func AuthRateLimit(limit int, window time.Duration) RateLimitConfig {
	return RateLimitConfig{Limit: limit, Window: window, KeyPrefix: "rl:auth:"}
}

// LoginRateLimit returns the stricter config for credential-guessing
// targets (login, password reset).
func LoginRateLimit(limit int, window time.Duration) RateLimitConfig {
	return RateLimitConfig{Limit: limit, Window: window, KeyPrefix: "rl:login:"}
}

// RateLimitMiddleware limits requests per client IP. Uses Redis when
// configured and falls back to in-process counters otherwise.
func RateLimitMiddleware(config RateLimitConfig) gin.HandlerFunc {
	cleanupOnce.Do(startCleanup)

	return func(c *gin.Context) {
		key := config.KeyPrefix + c.ClientIP()

		var count int
		if client := redis.Client(); client != nil {
			n, err := checkRedis(c.Request.Context(), client, key, config)
			if err == nil {
				count = n
			} else {
				count = checkInMemory(key, config)
			}
		} else {
			count = checkInMemory(key, config)
		}

		if count > config.Limit {
			c.Header("Retry-After", strconv.Itoa(int(config.Window.Seconds())))
			response.Error(c, http.StatusTooManyRequests, "Too many requests. Please try again later.", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}

func checkRedis(ctx context.Context, client *goredis.Client, key string, config RateLimitConfig) (int, error) {
	res, err := client.Eval(ctx, rateLimitScript, []string{key}, int(config.Window.Seconds())).Result()
	if err != nil {
		return 0, err
	}
	count, _ := res.(int64)
	return int(count), nil
}

func checkInMemory(key string, config RateLimitConfig) int {
	now := time.Now()
	value, _ := rateLimitStore.LoadOrStore(key, &rateLimitEntry{resetAt: now.Add(config.Window)})
	entry := value.(*rateLimitEntry)

	entry.mu.Lock()
	defer entry.mu.Unlock()
	if now.After(entry.resetAt) {
		entry.count = 0
		entry.resetAt = now.Add(config.Window)
	}
	entry.count++
	return entry.count
}
