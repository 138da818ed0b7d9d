package usecase

import (
	"context"
	"sync"
	"time"

	"philatelysamaaj/internal/domain/entity"
	"philatelysamaaj/pkg/logger"
)

// resyncTicks is how often the clock reloads open auctions so the per-tick
// countdown cannot drift from the stored end times.
const resyncTicks = 30

type tickPayload struct {
	AuctionID string `json:"auction_id"`
	TimeLeft  int64  `json:"time_left"`
}

// AuctionClock drives the per-second countdown for open auctions and closes
// them once they reach zero.
type AuctionClock struct {
	uc        *AuctionUseCase
	mu        sync.Mutex
	remaining map[string]int64
}

func newAuctionClock(uc *AuctionUseCase) *AuctionClock {
	return &AuctionClock{
		uc:        uc,
		remaining: make(map[string]int64),
	}
}

func (c *AuctionClock) Track(a *entity.Auction) {
	left := a.SecondsRemaining(c.uc.now())
	if left == 0 {
		return
	}
	c.mu.Lock()
	c.remaining[a.ID] = left
	c.mu.Unlock()
}

func (c *AuctionClock) Untrack(id string) {
	c.mu.Lock()
	delete(c.remaining, id)
	c.mu.Unlock()
}

func (c *AuctionClock) Tracked() map[string]int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[string]int64, len(c.remaining))
	for id, left := range c.remaining {
		out[id] = left
	}
	return out
}

// Load replaces the tracked set with the currently open auctions.
func (c *AuctionClock) Load(ctx context.Context) error {
	open, err := c.uc.auctionRepo.List(ctx, entity.AuctionStatusOpen)
	if err != nil {
		return err
	}

	now := c.uc.now()
	next := make(map[string]int64, len(open))
	for _, a := range open {
		next[a.ID] = a.SecondsRemaining(now)
	}

	c.mu.Lock()
	c.remaining = next
	c.mu.Unlock()
	return nil
}

// Step advances every tracked countdown by one tick and publishes the new
// value. Auctions that reach zero are settled against their stored end time.
func (c *AuctionClock) Step(ctx context.Context) {
	c.mu.Lock()
	ticks := make([]tickPayload, 0, len(c.remaining))
	var expired []string
	for id, left := range c.remaining {
		next := entity.Tick(left)
		ticks = append(ticks, tickPayload{AuctionID: id, TimeLeft: next})
		if next == 0 {
			delete(c.remaining, id)
			expired = append(expired, id)
			continue
		}
		c.remaining[id] = next
	}
	c.mu.Unlock()

	for _, t := range ticks {
		c.uc.publisher.Publish(AuctionTopic(t.AuctionID), EventAuctionTick, t)
	}

	if len(expired) > 0 {
		c.settle(ctx, expired)
	}
}

// settle closes the auctions whose end time has passed. An auction whose
// in-memory countdown ran out ahead of its stored end time is tracked again
// from the stored value.
func (c *AuctionClock) settle(ctx context.Context, expired []string) {
	n, open, err := c.uc.closeExpired(ctx)
	if err != nil {
		logger.Error("auction clock: close expired: %v", err)
		return
	}
	if n > 0 {
		logger.Info("auction clock: closed %d auction(s)", n)
	}

	wanted := make(map[string]bool, len(expired))
	for _, id := range expired {
		wanted[id] = true
	}
	now := c.uc.now()
	for _, a := range open {
		if !wanted[a.ID] {
			continue
		}
		c.Track(a)
		c.uc.publisher.Publish(AuctionTopic(a.ID), EventAuctionTick, tickPayload{
			AuctionID: a.ID,
			TimeLeft:  a.SecondsRemaining(now),
		})
	}
}

// Run ticks until ctx is cancelled.
func (c *AuctionClock) Run(ctx context.Context, interval time.Duration) error {
	if err := c.Load(ctx); err != nil {
		logger.Warn("auction clock: initial load failed: %v", err)
	}
	if _, err := c.uc.CloseExpired(ctx); err != nil {
		logger.Warn("auction clock: initial sweep failed: %v", err)
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	logger.Info("auction clock started with interval %s", interval)
	count := 0
	for {
		select {
		case <-ctx.Done():
			logger.Info("auction clock stopped")
			return nil
		case <-ticker.C:
			c.Step(ctx)
			count++
			if count%resyncTicks == 0 {
				if err := c.Load(ctx); err != nil {
					logger.Warn("auction clock: resync failed: %v", err)
				}
			}
		}
	}
}
