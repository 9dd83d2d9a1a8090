package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	bucketCleanupThreshold = 1 * time.Hour
	cleanupInterval        = 30 * time.Minute
	redisKeyPrefix         = "loan-simulator:ratelimit:"
)

// Decision is the outcome of a rate limit check.
type Decision struct {
	Allowed    bool
	Remaining  int
	RetryAfter time.Duration
}

// Limiter decides whether a client may make another request.
type Limiter interface {
	Allow(ctx context.Context, key string) (Decision, error)
	Limit() int
	Close() error
}

// NewLimiter builds the limiter described by cfg: Redis-backed when an
// address is configured, in-memory otherwise. It returns nil when rate
// limiting is disabled.
func NewLimiter(cfg *Config) Limiter {
	if !cfg.RateLimit.Enabled {
		return nil
	}
	if cfg.RateLimit.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:        cfg.RateLimit.RedisAddr,
			DialTimeout: 2 * time.Second,
		})
		return NewRedisLimiter(client, cfg.RateLimit.Requests, cfg.RateLimitWindow())
	}
	return NewMemoryLimiter(cfg.RateLimit.Requests, cfg.RateLimitWindow())
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// MemoryLimiter keeps one token bucket per client in process memory. Each
// bucket holds up to capacity tokens and refills at capacity per window.
type MemoryLimiter struct {
	mu          sync.Mutex
	capacity    int
	every       rate.Limit
	clients     map[string]*clientLimiter
	now         func() time.Time
	stopCleanup chan struct{}
	stopOnce    sync.Once
}

// NewMemoryLimiter creates a limiter allowing capacity requests per window.
func NewMemoryLimiter(capacity int, window time.Duration) *MemoryLimiter {
	if capacity < 1 {
		capacity = 1
	}
	rl := &MemoryLimiter{
		capacity:    capacity,
		every:       rate.Every(window / time.Duration(capacity)),
		clients:     make(map[string]*clientLimiter),
		now:         time.Now,
		stopCleanup: make(chan struct{}),
	}
	go rl.cleanupLoop()
	return rl
}

func (r *MemoryLimiter) cleanupLoop() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.cleanup()
		case <-r.stopCleanup:
			return
		}
	}
}

func (r *MemoryLimiter) cleanup() {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	for key, client := range r.clients {
		if now.Sub(client.lastSeen) > bucketCleanupThreshold {
			delete(r.clients, key)
		}
	}
}

// Allow consumes a token for key if one is available.
func (r *MemoryLimiter) Allow(_ context.Context, key string) (Decision, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	client, exists := r.clients[key]
	if !exists {
		client = &clientLimiter{limiter: rate.NewLimiter(r.every, r.capacity)}
		r.clients[key] = client
	}
	client.lastSeen = now

	if !client.limiter.AllowN(now, 1) {
		missing := 1 - client.limiter.TokensAt(now)
		retryAfter := time.Duration(missing / float64(r.every) * float64(time.Second))
		return Decision{RetryAfter: retryAfter}, nil
	}

	return Decision{Allowed: true, Remaining: int(client.limiter.TokensAt(now))}, nil
}

// Limit returns the number of requests allowed per window.
func (r *MemoryLimiter) Limit() int {
	return r.capacity
}

// Close stops the background cleanup.
func (r *MemoryLimiter) Close() error {
	r.stopOnce.Do(func() { close(r.stopCleanup) })
	return nil
}

// RedisLimiter shares limits between instances through Redis (GCRA).
type RedisLimiter struct {
	client  *redis.Client
	limiter *redis_rate.Limiter
	limit   redis_rate.Limit
}

// NewRedisLimiter creates a limiter allowing requests per window, with bursts
// up to the same amount.
func NewRedisLimiter(client *redis.Client, requests int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{
		client:  client,
		limiter: redis_rate.NewLimiter(client),
		limit:   redis_rate.Limit{Rate: requests, Burst: requests, Period: window},
	}
}

// Allow asks Redis whether key may make another request.
func (r *RedisLimiter) Allow(ctx context.Context, key string) (Decision, error) {
	res, err := r.limiter.Allow(ctx, redisKeyPrefix+key, r.limit)
	if err != nil {
		return Decision{}, fmt.Errorf("rate limit check failed: %w", err)
	}
	return Decision{
		Allowed:    res.Allowed > 0,
		Remaining:  res.Remaining,
		RetryAfter: res.RetryAfter,
	}, nil
}

// Limit returns the number of requests allowed per window.
func (r *RedisLimiter) Limit() int {
	return r.limit.Rate
}

// Close releases the Redis connection pool.
func (r *RedisLimiter) Close() error {
	return r.client.Close()
}

// RateLimitMiddleware rejects clients that exceeded their limit with 429. When
// the limiter itself fails, requests pass if failOpen is set and get 503
// otherwise.
func RateLimitMiddleware(logger *zap.Logger, limiter Limiter, failOpen bool, next http.Handler) http.Handler {
	if limiter == nil {
		return next
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		decision, err := limiter.Allow(r.Context(), clientKey(r))
		if err != nil {
			RequestLogger(r, logger).Error("rate limiter error",
				zap.String("op", "server.RateLimitMiddleware"),
				zap.Bool("failOpen", failOpen),
				zap.Error(err),
			)
			if failOpen {
				next.ServeHTTP(w, r)
				return
			}
			writeJSON(logger, w, http.StatusServiceUnavailable, errorResponse{
				Error:    "unavailable",
				Messages: []string{"rate limiting unavailable"},
			})
			return
		}

		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(limiter.Limit()))
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(decision.Remaining))

		if !decision.Allowed {
			retryAfter := int(decision.RetryAfter.Seconds()) + 1
			w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
			writeJSON(logger, w, http.StatusTooManyRequests, errorResponse{
				Error:    "rate_limited",
				Messages: []string{"rate limit exceeded"},
			})
			return
		}

		next.ServeHTTP(w, r)
	})
}

func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
