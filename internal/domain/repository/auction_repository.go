package repository

import (
	"context"

	"philatelysamaaj/internal/domain/entity"
)

// AuctionMutation edits an auction read inside a transaction. Returning an
// error aborts the write.
type AuctionMutation func(auction *entity.Auction) error

type AuctionRepository interface {
	Create(ctx context.Context, auction *entity.Auction) error
	GetByID(ctx context.Context, id string) (*entity.Auction, error)
	List(ctx context.Context, status string) ([]*entity.Auction, error)
	// Mutate runs fn against the latest stored state and commits atomically.
	Mutate(ctx context.Context, id string, fn AuctionMutation) (*entity.Auction, error)
}
