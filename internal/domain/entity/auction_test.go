package entity

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openAuction(now time.Time) *Auction {
	return &Auction{
		ID:          "a1",
		SellerID:    "seller",
		Name:        "Penny Black",
		StartingBid: 1000,
		CurrentBid:  5000,
		Status:      AuctionStatusOpen,
		EndsAt:      now.Add(90 * time.Second),
	}
}

func TestTick(t *testing.T) {
	tests := []struct {
		in, want int64
	}{
		{in: 10, want: 9},
		{in: 1, want: 0},
		{in: 0, want: 0},
		{in: -5, want: 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Tick(tt.in))
	}
}

func TestTick_NeverNegative(t *testing.T) {
	s := int64(3)
	for i := 0; i < 10; i++ {
		s = Tick(s)
		assert.GreaterOrEqual(t, s, int64(0))
	}
	assert.Equal(t, int64(0), s)
}

func TestSecondsRemaining(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	a := openAuction(now)

	assert.Equal(t, int64(90), a.SecondsRemaining(now))
	assert.Equal(t, int64(1), a.SecondsRemaining(now.Add(89*time.Second+500*time.Millisecond)))
	assert.Equal(t, int64(0), a.SecondsRemaining(now.Add(90*time.Second)))
	assert.Equal(t, int64(0), a.SecondsRemaining(now.Add(time.Hour)))

	a.Status = AuctionStatusClosed
	assert.Equal(t, int64(0), a.SecondsRemaining(now))
}

func TestApplyBid(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		bidder   string
		amount   float64
		at       time.Time
		mutate   func(a *Auction)
		wantErr  error
		wantBid  float64
		wantHist int
	}{
		{name: "higher bid accepted", bidder: "buyer", amount: 5001, at: now, wantBid: 5001, wantHist: 1},
		{name: "equal bid rejected", bidder: "buyer", amount: 5000, at: now, wantErr: ErrBidTooLow, wantBid: 5000},
		{name: "lower bid rejected", bidder: "buyer", amount: 4999, at: now, wantErr: ErrBidTooLow, wantBid: 5000},
		{name: "NaN bid rejected", bidder: "buyer", amount: math.NaN(), at: now, wantErr: ErrBidTooLow, wantBid: 5000},
		{name: "seller cannot bid", bidder: "seller", amount: 9000, at: now, wantErr: ErrSelfBid, wantBid: 5000},
		{name: "expired auction", bidder: "buyer", amount: 9000, at: now.Add(2 * time.Minute), wantErr: ErrAuctionClosed, wantBid: 5000},
		{
			name: "closed auction", bidder: "buyer", amount: 9000, at: now,
			mutate:  func(a *Auction) { a.Status = AuctionStatusClosed },
			wantErr: ErrAuctionClosed, wantBid: 5000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := openAuction(now)
			if tt.mutate != nil {
				tt.mutate(a)
			}

			err := a.ApplyBid(tt.bidder, "Asha", tt.amount, tt.at)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr))
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.bidder, a.HighestBidderID)
			}
			assert.Equal(t, tt.wantBid, a.CurrentBid)
			assert.Len(t, a.History, tt.wantHist)
		})
	}
}

func TestApplyBid_HistoryNewestFirst(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	a := openAuction(now)

	require.NoError(t, a.ApplyBid("b1", "Ravi", 5100, now))
	require.NoError(t, a.ApplyBid("b2", "", 5200, now.Add(time.Second)))

	require.Len(t, a.History, 2)
	assert.Equal(t, 5200.0, a.History[0].Amount)
	assert.Equal(t, AnonymousBidder, a.History[0].Bidder)
	assert.Equal(t, "Ravi", a.History[1].Bidder)
}

func TestClose(t *testing.T) {
	now := time.Now()
	a := openAuction(now)

	assert.True(t, a.Close(now))
	assert.False(t, a.Close(now))
	assert.False(t, a.BiddingOpen(now))
}
