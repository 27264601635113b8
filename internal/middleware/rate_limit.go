package middleware

import (
	"context"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/devportfolio/portfolio-api/pkg/metrics"
)

const visitorCleanupInterval = time.Minute

// RateLimiter is a per client IP token bucket. Each endpoint class gets its own.
type RateLimiter struct {
	scope    string
	visitors map[string]*rate.Limiter
	mu       sync.Mutex
	r        rate.Limit // requests per second
	b        int        // burst size
	message  string
}

// NewRateLimiter allows r requests per second with bursts of b for each IP.
// scope labels rejections in metrics. Idle visitors are dropped every minute
// until ctx is cancelled.
func NewRateLimiter(ctx context.Context, scope string, r rate.Limit, b int) *RateLimiter {
	rl := &RateLimiter{
		scope:    scope,
		visitors: make(map[string]*rate.Limiter),
		r:        r,
		b:        b,
		message:  "Too many requests. Please try again later.",
	}

	go rl.cleanupVisitors(ctx)

	return rl
}

// PerMinute converts a per-minute allowance into a rate.Limit
func PerMinute(n int) rate.Limit {
	return rate.Every(time.Minute / time.Duration(n))
}

// WithMessage overrides the message returned to limited clients
func (rl *RateLimiter) WithMessage(message string) *RateLimiter {
	rl.message = message
	return rl
}

func (rl *RateLimiter) visitor(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	limiter, exists := rl.visitors[ip]
	if !exists {
		limiter = rate.NewLimiter(rl.r, rl.b)
		rl.visitors[ip] = limiter
	}

	return limiter
}

func (rl *RateLimiter) cleanupVisitors(ctx context.Context) {
	ticker := time.NewTicker(visitorCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		rl.mu.Lock()
		for ip, limiter := range rl.visitors {
			// A full bucket means the visitor has been idle
			if limiter.Tokens() >= float64(rl.b) {
				delete(rl.visitors, ip)
			}
		}
		rl.mu.Unlock()
	}
}

// retryAfter is the whole number of seconds until one token is available again
func (rl *RateLimiter) retryAfter() string {
	if rl.r <= 0 {
		return "60"
	}
	return strconv.Itoa(int(math.Ceil(1/float64(rl.r) - 1e-9)))
}

// Middleware rejects requests over the limit with 429 and a Retry-After header
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.visitor(c.ClientIP()).Allow() {
			metrics.RejectedRequests.WithLabelValues("rate_limited", rl.scope).Inc()
			c.Header("Retry-After", rl.retryAfter())
			abortWithMessage(c, http.StatusTooManyRequests, rl.message)
			return
		}

		c.Next()
	}
}
