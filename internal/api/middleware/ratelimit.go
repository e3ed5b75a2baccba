package middleware

import (
	"context"
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/hoorayhoa/hoa-api/internal/api/shared"
)

const rateLimiterSweepInterval = 5 * time.Minute

// RateLimiter counts requests per key inside a fixed window.
type RateLimiter interface {
	Allow(ctx context.Context, key string) Decision
	Close() error
}

// Decision is the outcome of a single Allow call.
type Decision struct {
	Allowed bool
	Limit   int
	Count   int
	ResetAt time.Time
}

// Remaining is how many more requests the key may make in this window.
func (d Decision) Remaining() int {
	return max(d.Limit-d.Count, 0)
}

// MemoryRateLimiter keeps fixed-window counters in process memory.
// Limits are therefore per instance.
type MemoryRateLimiter struct {
	limit  int
	window time.Duration
	now    func() time.Time

	mu      sync.Mutex
	entries map[string]rateState
	stopCh  chan struct{}
	once    sync.Once
}

type rateState struct {
	count     int
	windowEnd time.Time
}

// NewMemoryRateLimiter allows limit requests per key every window and starts
// a background sweep of expired keys. Call Close to stop it.
func NewMemoryRateLimiter(limit int, window time.Duration) *MemoryRateLimiter {
	rl := newMemoryRateLimiter(limit, window, time.Now)
	go rl.sweepLoop()
	return rl
}

func newMemoryRateLimiter(limit int, window time.Duration, now func() time.Time) *MemoryRateLimiter {
	if window <= 0 {
		window = time.Minute
	}
	return &MemoryRateLimiter{
		limit:   limit,
		window:  window,
		now:     now,
		entries: make(map[string]rateState),
		stopCh:  make(chan struct{}),
	}
}

// Allow implements RateLimiter.
func (rl *MemoryRateLimiter) Allow(_ context.Context, key string) Decision {
	if rl.limit <= 0 {
		return Decision{Allowed: true}
	}

	now := rl.now()
	rl.mu.Lock()
	defer rl.mu.Unlock()

	state, ok := rl.entries[key]
	if !ok || !now.Before(state.windowEnd) {
		state = rateState{windowEnd: now.Add(rl.window)}
	}
	if state.count >= rl.limit {
		return Decision{Allowed: false, Limit: rl.limit, Count: state.count, ResetAt: state.windowEnd}
	}
	state.count++
	rl.entries[key] = state
	return Decision{Allowed: true, Limit: rl.limit, Count: state.count, ResetAt: state.windowEnd}
}

func (rl *MemoryRateLimiter) sweepLoop() {
	ticker := time.NewTicker(rateLimiterSweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			rl.cleanup(rl.now())
		case <-rl.stopCh:
			return
		}
	}
}

func (rl *MemoryRateLimiter) cleanup(now time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	for key, state := range rl.entries {
		if !now.Before(state.windowEnd) {
			delete(rl.entries, key)
		}
	}
}

// Close stops the sweep goroutine. It is safe to call more than once.
func (rl *MemoryRateLimiter) Close() error {
	rl.once.Do(func() {
		close(rl.stopCh)
	})
	return nil
}

var _ RateLimiter = (*MemoryRateLimiter)(nil)

// RateLimit rejects requests from a client IP that exceeded limiter's budget
// with 429. route labels the rejection in metrics; metrics may be nil. A nil
// limiter disables limiting.
func RateLimit(limiter RateLimiter, metrics *Metrics, route string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if limiter == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			decision := limiter.Allow(r.Context(), route+":"+clientIP(r))
			if decision.Limit > 0 {
				w.Header().Set("X-RateLimit-Limit", strconv.Itoa(decision.Limit))
				w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(decision.Remaining()))
			}
			if !decision.Allowed {
				retryAfter := int(math.Ceil(time.Until(decision.ResetAt).Seconds()))
				w.Header().Set("Retry-After", strconv.Itoa(max(retryAfter, 1)))
				if metrics != nil {
					metrics.RecordRateLimitHit(route)
				}
				shared.RespondWithErrorAndLog(w, r, http.StatusTooManyRequests,
					"Too many requests, please try again later", nil)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// clientIP returns the host part of RemoteAddr. chi's RealIP middleware
// rewrites RemoteAddr from proxy headers before this runs.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	if host == "" {
		host = "unknown"
	}
	return host
}
