package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/finzzup/portal-api/internal/api/metrics"
)

// RateLimitConfig defines the rate limiting parameters.
type RateLimitConfig struct {
	// Requests allowed per Window.
	Requests int
	Window   time.Duration
	// Burst allows for temporary bursts above the rate limit.
	Burst int
}

// rateLimiterSet keeps one token bucket per client IP.
type rateLimiterSet struct {
	limiters sync.Map // map[string]*rate.Limiter
	rate     rate.Limit
	burst    int

	mu          sync.Mutex
	lastCleanup time.Time
}

func (rl *rateLimiterSet) getLimiter(key string) *rate.Limiter {
	// Fast path: limiter already exists.
	if limiter, ok := rl.limiters.Load(key); ok {
		return limiter.(*rate.Limiter)
	}

	limiter := rate.NewLimiter(rl.rate, rl.burst)
	actual, _ := rl.limiters.LoadOrStore(key, limiter)

	rl.maybeCleanup()

	return actual.(*rate.Limiter)
}

// maybeCleanup evicts idle limiters so ephemeral IPs do not accumulate
// forever. A limiter with a full bucket has not been touched recently.
func (rl *rateLimiterSet) maybeCleanup() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if time.Since(rl.lastCleanup) < 5*time.Minute {
		return
	}
	rl.lastCleanup = time.Now()

	rl.limiters.Range(func(key, value any) bool {
		if value.(*rate.Limiter).Tokens() >= float64(rl.burst) {
			rl.limiters.Delete(key)
		}
		return true
	})
}

// RateLimit throttles requests per client IP using a token bucket.
// Rejected requests get a 429 with a Retry-After header.
func RateLimit(cfg RateLimitConfig, log zerolog.Logger) echo.MiddlewareFunc {
	rl := &rateLimiterSet{
		rate:        rate.Limit(float64(cfg.Requests) / cfg.Window.Seconds()),
		burst:       cfg.Burst,
		lastCleanup: time.Now(),
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := c.RealIP()
			if key == "" {
				log.Warn().Msg("rate limit: no client ip, allowing request")
				return next(c)
			}

			limiter := rl.getLimiter(key)
			if !limiter.Allow() {
				// Peek at when the next token frees up without consuming it.
				reservation := limiter.Reserve()
				delay := reservation.Delay()
				reservation.Cancel()

				retryAfter := int(delay.Seconds())
				if retryAfter < 1 {
					retryAfter = 1
				}

				c.Response().Header().Set("Retry-After", strconv.Itoa(retryAfter))
				metrics.RateLimitedTotal.Inc()

				log.Warn().
					Str("ip", key).
					Str("path", c.Path()).
					Int("retry_after", retryAfter).
					Msg("rate limit exceeded")

				return echo.NewHTTPError(http.StatusTooManyRequests, "too many requests, please try again later")
			}

			return next(c)
		}
	}
}
