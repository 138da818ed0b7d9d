package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiter_BurstThenDeny(t *testing.T) {
	rl := NewRateLimiterWithPolicies(map[string]Policy{
		"place_bid": {Burst: 2, Every: time.Minute},
	})
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	ok, _ := rl.Allow("u1", "place_bid")
	assert.True(t, ok)
	ok, _ = rl.Allow("u1", "place_bid")
	assert.True(t, ok)

	ok, wait := rl.Allow("u1", "place_bid")
	assert.False(t, ok)
	assert.InDelta(t, time.Minute.Seconds(), wait.Seconds(), 1)

	// another user has their own bucket
	ok, _ = rl.Allow("u2", "place_bid")
	assert.True(t, ok)

	now = now.Add(time.Minute)
	ok, _ = rl.Allow("u1", "place_bid")
	assert.True(t, ok)
}

func TestRateLimiter_FallbackPolicy(t *testing.T) {
	rl := NewRateLimiterWithPolicies(nil)
	now := time.Now()
	rl.now = func() time.Time { return now }

	for i := 0; i < fallbackPolicy.Burst; i++ {
		ok, _ := rl.Allow("u1", "anything")
		assert.True(t, ok, "call %d", i)
	}
	ok, _ := rl.Allow("u1", "anything")
	assert.False(t, ok)
}

func TestRateLimiter_Cleanup(t *testing.T) {
	rl := NewRateLimiter()
	now := time.Now()
	rl.now = func() time.Time { return now }

	rl.Allow("u1", "vote")
	rl.Allow("u2", "vote")
	assert.Equal(t, 2, rl.Size())

	now = now.Add(30 * time.Minute)
	rl.Allow("u2", "vote")

	now = now.Add(45 * time.Minute)
	assert.Equal(t, 1, rl.Cleanup())
	assert.Equal(t, 1, rl.Size())
}
