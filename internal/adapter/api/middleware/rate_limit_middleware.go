package middleware

import (
	"context"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"

	"philatelysamaaj/pkg/errors"
	"philatelysamaaj/pkg/logger"
	"philatelysamaaj/pkg/response"
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// IPRateLimiter gives every client IP its own token bucket.
type IPRateLimiter struct {
	name     string
	visitors map[string]*visitor
	mu       sync.Mutex
	limit    rate.Limit
	burst    int
}

// NewIPRateLimiter allows requests per window with bursts up to requests.
func NewIPRateLimiter(name string, requests int, window time.Duration) *IPRateLimiter {
	return &IPRateLimiter{
		name:     name,
		visitors: make(map[string]*visitor),
		limit:    rate.Every(window / time.Duration(requests)),
		burst:    requests,
	}
}

func (rl *IPRateLimiter) get(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, ok := rl.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.visitors[ip] = v
	}
	v.lastSeen = time.Now()
	return v.limiter
}

func (rl *IPRateLimiter) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := c.RealIP()
			limiter := rl.get(ip)

			r := limiter.Reserve()
			if delay := r.Delay(); delay > 0 {
				r.Cancel()
				logger.Warn("rate limit %s: blocked %s (retry in %v)", rl.name, ip, delay)
				return response.Error(c, errors.TooManyRequests("requests", delay))
			}
			return next(c)
		}
	}
}

// StartCleanup forgets IPs idle for longer than ttl until ctx is done.
func (rl *IPRateLimiter) StartCleanup(ctx context.Context, interval, ttl time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				rl.mu.Lock()
				for ip, v := range rl.visitors {
					if time.Since(v.lastSeen) > ttl {
						delete(rl.visitors, ip)
					}
				}
				rl.mu.Unlock()
			}
		}
	}()
}
