package usecase

import (
	stderrors "errors"
	"net/http"

	"philatelysamaaj/internal/domain/entity"
	"philatelysamaaj/pkg/errors"
)

// domainError turns a rule violation from the entity layer into the error the
// API reports. Errors that are already AppErrors pass through.
func domainError(err error) error {
	if err == nil {
		return nil
	}

	var appErr *errors.AppError
	if stderrors.As(err, &appErr) {
		return err
	}

	switch {
	case stderrors.Is(err, entity.ErrBidTooLow):
		return errors.New("BID_TOO_LOW", "Bid must be higher than current bid.", http.StatusBadRequest, err)
	case stderrors.Is(err, entity.ErrAuctionClosed):
		return errors.New("AUCTION_CLOSED", "Bidding has ended for this auction", http.StatusConflict, err)
	case stderrors.Is(err, entity.ErrSelfBid):
		return errors.Forbidden("You can't bid on your own auction", err)
	case stderrors.Is(err, entity.ErrSelfVote):
		return errors.Forbidden("You can't vote on your own post", err)
	case stderrors.Is(err, entity.ErrInvalidVote):
		return errors.BadRequest("type must be one of: like dislike", err)
	case stderrors.Is(err, entity.ErrNotParticipant):
		return errors.Forbidden("You are not part of this conversation", err)
	case stderrors.Is(err, entity.ErrInsufficientFunds):
		return errors.New("INSUFFICIENT_FUNDS", "Insufficient funds", http.StatusPaymentRequired, err)
	case stderrors.Is(err, entity.ErrAlreadyBooked):
		return errors.Conflict("You have already booked this event", err)
	case stderrors.Is(err, entity.ErrInvalidAmount):
		return errors.BadRequest("Please enter a valid amount", err)
	}

	return errors.Internal("Unexpected error", err)
}
