package usecase

import (
	"context"
	"math"
	"sort"
	"strings"
	"time"

	"philatelysamaaj/internal/domain/entity"
	"philatelysamaaj/internal/domain/repository"
	"philatelysamaaj/internal/domain/service"
	"philatelysamaaj/pkg/errors"
	"philatelysamaaj/pkg/logger"
	"philatelysamaaj/pkg/utils"
)

const (
	EventAuctionCreated = "auction.created"
	EventAuctionUpdated = "auction.updated"
	EventAuctionTick    = "auction.tick"
	EventAuctionClosed  = "auction.closed"

	maxAuctionDuration = 30 * 24 * time.Hour
)

type AuctionUseCase struct {
	auctionRepo repository.AuctionRepository
	userRepo    repository.UserRepository
	publisher   EventPublisher
	limiter     RateLimiter
	media       mediaStore
	clock       *AuctionClock
	now         func() time.Time
}

func NewAuctionUseCase(
	auctionRepo repository.AuctionRepository,
	userRepo repository.UserRepository,
	publisher EventPublisher,
	limiter RateLimiter,
	files service.FileUploadService,
	maxUploadBytes int64,
) *AuctionUseCase {
	uc := &AuctionUseCase{
		auctionRepo: auctionRepo,
		userRepo:    userRepo,
		publisher:   publisher,
		limiter:     limiter,
		media:       mediaStore{files: files, maxBytes: maxUploadBytes},
		now:         time.Now,
	}
	uc.clock = newAuctionClock(uc)
	return uc
}

type CreateAuctionInput struct {
	CatalogItemID   string
	Name            string
	Description     string
	ImageURL        string
	StartingBid     float64
	DurationSeconds int64
	Image           *MediaUpload
}

func (uc *AuctionUseCase) CreateAuction(ctx context.Context, sellerID string, input CreateAuctionInput) (*entity.Auction, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, errors.BadRequest("name is required", nil)
	}
	if !finite(input.StartingBid) || input.StartingBid <= 0 {
		return nil, errors.BadRequest("starting bid must be greater than zero", nil)
	}
	duration := time.Duration(input.DurationSeconds) * time.Second
	if duration <= 0 || duration > maxAuctionDuration {
		return nil, errors.BadRequest("duration must be between 1 second and 30 days", nil)
	}

	now := uc.now()
	auction := &entity.Auction{
		CatalogItemID: input.CatalogItemID,
		SellerID:      sellerID,
		Name:          strings.TrimSpace(input.Name),
		Description:   input.Description,
		ImageURL:      input.ImageURL,
		StartingBid:   input.StartingBid,
		CurrentBid:    input.StartingBid,
		History:       []entity.BidEntry{},
		Status:        entity.AuctionStatusOpen,
		EndsAt:        now.Add(duration),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	uploaded, err := uc.media.upload(ctx, input.Image, FolderAuctions, true)
	if err != nil {
		return nil, err
	}
	if uploaded != nil {
		auction.ImageURL = uploaded.URL
	}

	if err := uc.auctionRepo.Create(ctx, auction); err != nil {
		return nil, err
	}

	uc.clock.Track(auction)
	uc.publisher.Publish(AuctionTopic(auction.ID), EventAuctionCreated, auction.WithTimeLeft(now))
	return auction, nil
}

func (uc *AuctionUseCase) GetAuction(ctx context.Context, id string) (*entity.Auction, error) {
	auction, err := uc.auctionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return auction.WithTimeLeft(uc.now()), nil
}

// ListAuctions returns open auctions first, soonest to end, then closed ones.
func (uc *AuctionUseCase) ListAuctions(ctx context.Context, status, search string, limit, offset int) ([]*entity.Auction, int64, error) {
	if status != "" && status != entity.AuctionStatusOpen && status != entity.AuctionStatusClosed {
		return nil, 0, errors.BadRequest("status must be one of: open closed", nil)
	}

	auctions, err := uc.auctionRepo.List(ctx, status)
	if err != nil {
		return nil, 0, err
	}

	now := uc.now()
	term := strings.ToLower(strings.TrimSpace(search))
	filtered := make([]*entity.Auction, 0, len(auctions))
	for _, a := range auctions {
		if term != "" &&
			!strings.Contains(strings.ToLower(a.Name), term) &&
			!strings.Contains(strings.ToLower(a.Description), term) {
			continue
		}
		filtered = append(filtered, a.WithTimeLeft(now))
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		oi, oj := filtered[i].TimeLeft > 0, filtered[j].TimeLeft > 0
		if oi != oj {
			return oi
		}
		return filtered[i].EndsAt.Before(filtered[j].EndsAt)
	})

	return utils.Window(filtered, offset, limit), int64(len(filtered)), nil
}

// PlaceBid applies the bid rule against the stored auction inside a
// transaction, so the loser of a concurrent race sees BID_TOO_LOW.
func (uc *AuctionUseCase) PlaceBid(ctx context.Context, auctionID, userID string, amount float64) (*entity.Auction, error) {
	if !finite(amount) || amount <= 0 {
		return nil, errors.BadRequest("Please enter a valid bid amount", nil)
	}
	if ok, wait := uc.limiter.Allow(userID, ActionPlaceBid); !ok {
		return nil, errors.TooManyRequests("bid", wait)
	}

	bidderName := ""
	if user, err := uc.userRepo.GetByID(ctx, userID); err == nil {
		bidderName = user.Name
	}

	now := uc.now()
	updated, err := uc.auctionRepo.Mutate(ctx, auctionID, func(a *entity.Auction) error {
		return a.ApplyBid(userID, bidderName, amount, now)
	})
	if err != nil {
		return nil, domainError(err)
	}

	updated.WithTimeLeft(now)
	logger.WithFields(map[string]interface{}{
		"auction_id": auctionID,
		"bidder_id":  userID,
		"amount":     amount,
	}).Info("bid accepted")

	uc.publisher.Publish(AuctionTopic(auctionID), EventAuctionUpdated, updated)
	return updated, nil
}

// CloseAuction ends bidding immediately.
func (uc *AuctionUseCase) CloseAuction(ctx context.Context, id string) (*entity.Auction, error) {
	now := uc.now()
	changed := false
	closed, err := uc.auctionRepo.Mutate(ctx, id, func(a *entity.Auction) error {
		changed = a.Close(now)
		return nil
	})
	if err != nil {
		return nil, domainError(err)
	}

	uc.clock.Untrack(id)
	if changed {
		uc.publisher.Publish(AuctionTopic(id), EventAuctionClosed, closed.WithTimeLeft(now))
	}
	return closed, nil
}

// CloseExpired closes every open auction whose countdown reached zero.
func (uc *AuctionUseCase) CloseExpired(ctx context.Context) (int, error) {
	closed, _, err := uc.closeExpired(ctx)
	return closed, err
}

// closeExpired also returns the auctions that are still running.
func (uc *AuctionUseCase) closeExpired(ctx context.Context) (int, []*entity.Auction, error) {
	open, err := uc.auctionRepo.List(ctx, entity.AuctionStatusOpen)
	if err != nil {
		return 0, nil, err
	}

	now := uc.now()
	closed := 0
	running := make([]*entity.Auction, 0, len(open))
	for _, a := range open {
		if a.SecondsRemaining(now) > 0 {
			running = append(running, a)
			continue
		}
		if _, err := uc.CloseAuction(ctx, a.ID); err != nil {
			logger.Error("failed to close auction %s: %v", a.ID, err)
			continue
		}
		closed++
	}
	return closed, running, nil
}

func (uc *AuctionUseCase) Clock() *AuctionClock {
	return uc.clock
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
