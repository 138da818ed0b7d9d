package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"philatelysamaaj/internal/domain/entity"
	"philatelysamaaj/internal/domain/repository"
	"philatelysamaaj/pkg/errors"
	"philatelysamaaj/pkg/logger"
)

type firestoreAuctionRepository struct {
	client *firestore.Client
}

func NewFirestoreAuctionRepository(client *firestore.Client) repository.AuctionRepository {
	return &firestoreAuctionRepository{
		client: client,
	}
}

func (r *firestoreAuctionRepository) Create(ctx context.Context, auction *entity.Auction) error {
	ref := r.client.Collection(auctionsCollection).NewDoc()
	auction.ID = ref.ID

	if _, err := ref.Set(ctx, auction); err != nil {
		return errors.Internal("Failed to create auction", err)
	}
	return nil
}

func (r *firestoreAuctionRepository) GetByID(ctx context.Context, id string) (*entity.Auction, error) {
	doc, err := r.client.Collection(auctionsCollection).Doc(id).Get(ctx)
	if err != nil {
		return nil, getError("Auction", err)
	}
	return decodeAuction(doc)
}

func (r *firestoreAuctionRepository) List(ctx context.Context, status string) ([]*entity.Auction, error) {
	query := r.client.Collection(auctionsCollection).Query
	if status != "" {
		query = query.Where("status", "==", status)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	var auctions []*entity.Auction
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to list auctions", err)
		}

		auction, err := decodeAuction(doc)
		if err != nil {
			logger.Warn("skipping malformed auction %s: %v", doc.Ref.ID, err)
			continue
		}
		auctions = append(auctions, auction)
	}
	return auctions, nil
}

// Mutate reads and writes inside one Firestore transaction. Firestore retries
// fn on contention, so fn always sees the latest committed auction.
func (r *firestoreAuctionRepository) Mutate(ctx context.Context, id string, fn repository.AuctionMutation) (*entity.Auction, error) {
	ref := r.client.Collection(auctionsCollection).Doc(id)

	var (
		result *entity.Auction
		fnErr  error
	)
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		fnErr = nil
		doc, err := tx.Get(ref)
		if err != nil {
			return getError("Auction", err)
		}

		auction, err := decodeAuction(doc)
		if err != nil {
			return err
		}

		if err := fn(auction); err != nil {
			fnErr = err
			return err
		}

		result = auction
		return tx.Set(ref, auction)
	})
	if fnErr != nil {
		return nil, fnErr
	}
	if err != nil {
		if errors.Is(err, "NOT_FOUND") {
			return nil, err
		}
		return nil, errors.Internal("Failed to update auction", err)
	}
	return result, nil
}

func decodeAuction(doc *firestore.DocumentSnapshot) (*entity.Auction, error) {
	var auction entity.Auction
	if err := doc.DataTo(&auction); err != nil {
		return nil, errors.Internal("Failed to parse auction", err)
	}
	auction.ID = doc.Ref.ID
	if auction.History == nil {
		auction.History = []entity.BidEntry{}
	}
	return &auction, nil
}
