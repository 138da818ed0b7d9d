package entity

import "errors"

var (
	ErrBidTooLow         = errors.New("bid must be higher than current bid")
	ErrAuctionClosed     = errors.New("auction is closed")
	ErrSelfBid           = errors.New("sellers cannot bid on their own auction")
	ErrSelfVote          = errors.New("you can't vote on your own post")
	ErrInvalidVote       = errors.New("invalid vote type")
	ErrNotParticipant    = errors.New("user is not a participant of this thread")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrAlreadyBooked     = errors.New("event already booked")
	ErrInvalidAmount     = errors.New("amount must be greater than zero")
)
