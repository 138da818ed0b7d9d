package entity

import (
	"fmt"
	"math"
	"time"
)

const (
	AuctionStatusOpen   = "open"
	AuctionStatusClosed = "closed"

	// AnonymousBidder labels history entries whose bidder has no display name.
	AnonymousBidder = "You"
)

type BidEntry struct {
	BidderID string    `json:"bidder_id" firestore:"bidderId"`
	Bidder   string    `json:"bidder" firestore:"bidder"`
	Amount   float64   `json:"amount" firestore:"amount"`
	Time     time.Time `json:"time" firestore:"time"`
}

type Auction struct {
	ID              string     `json:"id" firestore:"id"`
	CatalogItemID   string     `json:"catalog_item_id,omitempty" firestore:"catalogItemId,omitempty"`
	SellerID        string     `json:"seller_id" firestore:"sellerId"`
	Name            string     `json:"name" firestore:"name"`
	Description     string     `json:"description" firestore:"description"`
	ImageURL        string     `json:"image_url,omitempty" firestore:"imageUrl,omitempty"`
	StartingBid     float64    `json:"starting_bid" firestore:"startingBid"`
	CurrentBid      float64    `json:"current_bid" firestore:"currentBid"`
	HighestBidderID string     `json:"highest_bidder_id,omitempty" firestore:"highestBidderId,omitempty"`
	History         []BidEntry `json:"history" firestore:"history"`
	Status          string     `json:"status" firestore:"status"`
	EndsAt          time.Time  `json:"ends_at" firestore:"endsAt"`
	CreatedAt       time.Time  `json:"created_at" firestore:"createdAt"`
	UpdatedAt       time.Time  `json:"updated_at" firestore:"updatedAt"`

	// TimeLeft is derived on read and never stored.
	TimeLeft int64 `json:"time_left" firestore:"-"`
}

// SecondsRemaining rounds up so a bid placed in the last partial second is
// still inside the window.
func (a *Auction) SecondsRemaining(now time.Time) int64 {
	if a.Status == AuctionStatusClosed {
		return 0
	}
	left := a.EndsAt.Sub(now).Seconds()
	if left <= 0 {
		return 0
	}
	return int64(math.Ceil(left))
}

func (a *Auction) BiddingOpen(now time.Time) bool {
	return a.Status == AuctionStatusOpen && a.SecondsRemaining(now) > 0
}

// Tick is one step of the countdown. It never goes below zero.
func Tick(remaining int64) int64 {
	if remaining <= 1 {
		return 0
	}
	return remaining - 1
}

// ApplyBid mutates the auction only when the bid is accepted.
func (a *Auction) ApplyBid(bidderID, bidderName string, amount float64, now time.Time) error {
	if !a.BiddingOpen(now) {
		return ErrAuctionClosed
	}
	if bidderID == a.SellerID {
		return ErrSelfBid
	}
	if !(amount > a.CurrentBid) {
		return fmt.Errorf("%w: current bid is %.2f", ErrBidTooLow, a.CurrentBid)
	}

	if bidderName == "" {
		bidderName = AnonymousBidder
	}

	entry := BidEntry{
		BidderID: bidderID,
		Bidder:   bidderName,
		Amount:   amount,
		Time:     now,
	}

	a.CurrentBid = amount
	a.HighestBidderID = bidderID
	a.History = append([]BidEntry{entry}, a.History...)
	a.UpdatedAt = now
	return nil
}

// Close ends bidding. It reports whether the status changed.
func (a *Auction) Close(now time.Time) bool {
	if a.Status == AuctionStatusClosed {
		return false
	}
	a.Status = AuctionStatusClosed
	a.UpdatedAt = now
	return true
}

func (a *Auction) WithTimeLeft(now time.Time) *Auction {
	a.TimeLeft = a.SecondsRemaining(now)
	return a
}
