package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"philatelysamaaj/internal/domain/entity"
)

func stringsReader(s string) *strings.Reader {
	return strings.NewReader(s)
}

func TestAuctionClock_StepCountsDown(t *testing.T) {
	f := newAuctionFixture(t)
	clock := f.uc.Clock()

	clock.Track(&entity.Auction{ID: "a", Status: entity.AuctionStatusOpen, EndsAt: f.now.Add(3 * time.Second)})
	clock.Track(&entity.Auction{ID: "done", Status: entity.AuctionStatusClosed, EndsAt: f.now.Add(time.Hour)})

	assert.Equal(t, map[string]int64{"a": 3}, clock.Tracked())

	clock.Step(context.Background())
	clock.Step(context.Background())
	assert.Equal(t, map[string]int64{"a": 1}, clock.Tracked())

	ticks := f.publisher.events
	require.Len(t, ticks, 2)
	assert.Equal(t, AuctionTopic("a"), ticks[1].Topic)
	assert.Equal(t, tickPayload{AuctionID: "a", TimeLeft: 1}, ticks[1].Data)
}

func TestAuctionClock_StepClosesAtZero(t *testing.T) {
	f := newAuctionFixture(t)
	clock := f.uc.Clock()

	stored := &entity.Auction{ID: "a", Status: entity.AuctionStatusOpen, EndsAt: f.now.Add(time.Second)}
	clock.Track(stored)

	// the stored end time has passed by the time the sweep runs
	f.uc.now = fixedClock(f.now.Add(time.Second))
	f.auctions.EXPECT().List(gomock.Any(), entity.AuctionStatusOpen).Return([]*entity.Auction{stored}, nil)
	f.auctions.EXPECT().Mutate(gomock.Any(), "a", gomock.Any()).DoAndReturn(mutateAgainst(stored))

	clock.Step(context.Background())

	assert.Empty(t, clock.Tracked())
	assert.Equal(t, entity.AuctionStatusClosed, stored.Status)
	assert.Equal(t, []string{EventAuctionTick, EventAuctionClosed}, f.publisher.types())
}

func TestAuctionClock_StepResumesWhenAheadOfEndTime(t *testing.T) {
	f := newAuctionFixture(t)
	clock := f.uc.Clock()

	stored := &entity.Auction{ID: "a", Status: entity.AuctionStatusOpen, EndsAt: f.now.Add(time.Second)}
	clock.Track(stored)

	// the ticker fired early: the stored end time is still two seconds away
	f.uc.now = fixedClock(f.now.Add(-time.Second))
	f.auctions.EXPECT().List(gomock.Any(), entity.AuctionStatusOpen).Return([]*entity.Auction{stored}, nil)

	clock.Step(context.Background())

	assert.Equal(t, map[string]int64{"a": 2}, clock.Tracked())
	assert.Equal(t, entity.AuctionStatusOpen, stored.Status)
	require.Len(t, f.publisher.events, 2)
	assert.Equal(t, tickPayload{AuctionID: "a", TimeLeft: 2}, f.publisher.events[1].Data)
}

func TestAuctionClock_Load(t *testing.T) {
	f := newAuctionFixture(t)
	clock := f.uc.Clock()
	clock.Track(&entity.Auction{ID: "stale", Status: entity.AuctionStatusOpen, EndsAt: f.now.Add(time.Hour)})

	f.auctions.EXPECT().List(gomock.Any(), entity.AuctionStatusOpen).Return([]*entity.Auction{
		{ID: "b", Status: entity.AuctionStatusOpen, EndsAt: f.now.Add(1500 * time.Millisecond)},
	}, nil)

	require.NoError(t, clock.Load(context.Background()))
	assert.Equal(t, map[string]int64{"b": 2}, clock.Tracked())
}

func TestAuctionClock_RunStopsOnCancel(t *testing.T) {
	f := newAuctionFixture(t)
	f.auctions.EXPECT().List(gomock.Any(), entity.AuctionStatusOpen).Return(nil, nil).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- f.uc.Clock().Run(ctx, 5*time.Millisecond) }()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("clock did not stop")
	}
}
