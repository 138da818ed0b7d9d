package ratelimit

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"philatelysamaaj/pkg/logger"
)

// Policy is a token bucket: Burst tokens, one refilled every Every.
type Policy struct {
	Burst int
	Every time.Duration
}

var defaultPolicies = map[string]Policy{
	"place_bid":      {Burst: 5, Every: 2 * time.Second},
	"send_message":   {Burst: 10, Every: 6 * time.Second},
	"create_post":    {Burst: 5, Every: 30 * time.Second},
	"vote":           {Burst: 30, Every: time.Second},
	"identify_stamp": {Burst: 3, Every: 20 * time.Second},
}

var fallbackPolicy = Policy{Burst: 20, Every: 3 * time.Second}

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one bucket per user and action.
type RateLimiter struct {
	mu       sync.Mutex
	buckets  map[string]*bucket
	policies map[string]Policy
	idleTTL  time.Duration
	now      func() time.Time
}

func NewRateLimiter() *RateLimiter {
	return NewRateLimiterWithPolicies(defaultPolicies)
}

func NewRateLimiterWithPolicies(policies map[string]Policy) *RateLimiter {
	return &RateLimiter{
		buckets:  make(map[string]*bucket),
		policies: policies,
		idleTTL:  time.Hour,
		now:      time.Now,
	}
}

func (rl *RateLimiter) policy(action string) Policy {
	if p, ok := rl.policies[action]; ok {
		return p
	}
	return fallbackPolicy
}

// Allow consumes a token when one is available. Otherwise it reports how long
// until the next one.
func (rl *RateLimiter) Allow(userID, action string) (bool, time.Duration) {
	key := userID + ":" + action
	now := rl.now()

	rl.mu.Lock()
	b, ok := rl.buckets[key]
	if !ok {
		p := rl.policy(action)
		b = &bucket{limiter: rate.NewLimiter(rate.Every(p.Every), p.Burst)}
		rl.buckets[key] = b
	}
	b.lastSeen = now
	rl.mu.Unlock()

	r := b.limiter.ReserveN(now, 1)
	if !r.OK() {
		return false, rl.policy(action).Every
	}
	if delay := r.DelayFrom(now); delay > 0 {
		r.CancelAt(now)
		return false, delay
	}
	return true, 0
}

// Cleanup drops buckets idle for longer than the TTL.
func (rl *RateLimiter) Cleanup() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	removed := 0
	for key, b := range rl.buckets {
		if now.Sub(b.lastSeen) > rl.idleTTL {
			delete(rl.buckets, key)
			removed++
		}
	}
	return removed
}

func (rl *RateLimiter) Size() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.buckets)
}

// StartCleanupRoutine prunes idle buckets until ctx is done.
func (rl *RateLimiter) StartCleanupRoutine(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if n := rl.Cleanup(); n > 0 {
					logger.Debug("rate limiter: removed %d idle buckets", n)
				}
			}
		}
	}()
}
