package usecase

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"philatelysamaaj/internal/domain/entity"
	"philatelysamaaj/internal/domain/repository"
	"philatelysamaaj/internal/domain/repository/mocks"
	"philatelysamaaj/pkg/errors"
)

type auctionFixture struct {
	uc        *AuctionUseCase
	auctions  *mocks.MockAuctionRepository
	users     *mocks.MockUserRepository
	publisher *fakePublisher
	limiter   *fakeLimiter
	files     *fakeFiles
	now       time.Time
}

func newAuctionFixture(t *testing.T) *auctionFixture {
	ctrl := gomock.NewController(t)
	f := &auctionFixture{
		auctions:  mocks.NewMockAuctionRepository(ctrl),
		users:     mocks.NewMockUserRepository(ctrl),
		publisher: &fakePublisher{},
		limiter:   &fakeLimiter{deny: map[string]bool{}},
		files:     &fakeFiles{},
		now:       time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	f.uc = NewAuctionUseCase(f.auctions, f.users, f.publisher, f.limiter, f.files, 0)
	f.uc.now = fixedClock(f.now)
	return f
}

// mutateAgainst makes Mutate run the callback against a copy of stored.
func mutateAgainst(stored *entity.Auction) func(context.Context, string, repository.AuctionMutation) (*entity.Auction, error) {
	return func(ctx context.Context, id string, fn repository.AuctionMutation) (*entity.Auction, error) {
		cp := *stored
		if err := fn(&cp); err != nil {
			return nil, err
		}
		*stored = cp
		return &cp, nil
	}
}

func openAuction(now time.Time) *entity.Auction {
	return &entity.Auction{
		ID:          "a1",
		SellerID:    "seller",
		Name:        "Penny Black",
		StartingBid: 100,
		CurrentBid:  100,
		History:     []entity.BidEntry{},
		Status:      entity.AuctionStatusOpen,
		EndsAt:      now.Add(90 * time.Second),
	}
}

func TestAuctionUseCase_PlaceBid(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		amount     float64
		userID     string
		setup      func(f *auctionFixture, stored *entity.Auction)
		wantCode   string
		wantBid    float64
		wantEvents []string
	}{
		{
			name:   "accepted bid becomes current",
			amount: 150,
			userID: "bidder",
			setup: func(f *auctionFixture, stored *entity.Auction) {
				f.users.EXPECT().GetByID(gomock.Any(), "bidder").Return(&entity.User{ID: "bidder", Name: "Asha"}, nil)
				f.auctions.EXPECT().Mutate(gomock.Any(), "a1", gomock.Any()).DoAndReturn(mutateAgainst(stored))
			},
			wantBid:    150,
			wantEvents: []string{EventAuctionUpdated},
		},
		{
			name:   "equal bid is too low",
			amount: 100,
			userID: "bidder",
			setup: func(f *auctionFixture, stored *entity.Auction) {
				f.users.EXPECT().GetByID(gomock.Any(), "bidder").Return(&entity.User{ID: "bidder"}, nil)
				f.auctions.EXPECT().Mutate(gomock.Any(), "a1", gomock.Any()).DoAndReturn(mutateAgainst(stored))
			},
			wantCode: "BID_TOO_LOW",
			wantBid:  100,
		},
		{
			name:   "closed auction rejects",
			amount: 500,
			userID: "bidder",
			setup: func(f *auctionFixture, stored *entity.Auction) {
				stored.Status = entity.AuctionStatusClosed
				f.users.EXPECT().GetByID(gomock.Any(), "bidder").Return(&entity.User{ID: "bidder"}, nil)
				f.auctions.EXPECT().Mutate(gomock.Any(), "a1", gomock.Any()).DoAndReturn(mutateAgainst(stored))
			},
			wantCode: "AUCTION_CLOSED",
			wantBid:  100,
		},
		{
			name:   "seller cannot bid",
			amount: 200,
			userID: "seller",
			setup: func(f *auctionFixture, stored *entity.Auction) {
				f.users.EXPECT().GetByID(gomock.Any(), "seller").Return(&entity.User{ID: "seller"}, nil)
				f.auctions.EXPECT().Mutate(gomock.Any(), "a1", gomock.Any()).DoAndReturn(mutateAgainst(stored))
			},
			wantCode: "FORBIDDEN",
			wantBid:  100,
		},
		{
			name:     "non positive amount",
			amount:   0,
			userID:   "bidder",
			setup:    func(f *auctionFixture, stored *entity.Auction) {},
			wantCode: "BAD_REQUEST",
			wantBid:  100,
		},
		{
			name:     "infinite amount",
			amount:   math.Inf(1),
			userID:   "bidder",
			setup:    func(f *auctionFixture, stored *entity.Auction) {},
			wantCode: "BAD_REQUEST",
			wantBid:  100,
		},
		{
			name:   "rate limited",
			amount: 150,
			userID: "bidder",
			setup: func(f *auctionFixture, stored *entity.Auction) {
				f.limiter.deny[ActionPlaceBid] = true
			},
			wantCode: "TOO_MANY_REQUESTS",
			wantBid:  100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAuctionFixture(t)
			stored := openAuction(f.now)
			tt.setup(f, stored)

			got, err := f.uc.PlaceBid(ctx, "a1", tt.userID, tt.amount)

			if tt.wantCode != "" {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantCode), "got %v", err)
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantBid, got.CurrentBid)
				assert.Equal(t, int64(90), got.TimeLeft)
				require.Len(t, got.History, 1)
				assert.Equal(t, "Asha", got.History[0].Bidder)
			}
			assert.Equal(t, tt.wantBid, stored.CurrentBid)
			assert.Equal(t, len(tt.wantEvents), len(f.publisher.types()))
		})
	}
}

func TestAuctionUseCase_PlaceBid_AnonymousBidderName(t *testing.T) {
	f := newAuctionFixture(t)
	stored := openAuction(f.now)

	f.users.EXPECT().GetByID(gomock.Any(), "ghost").Return(nil, errors.NotFound("User", nil))
	f.auctions.EXPECT().Mutate(gomock.Any(), "a1", gomock.Any()).DoAndReturn(mutateAgainst(stored))

	got, err := f.uc.PlaceBid(context.Background(), "a1", "ghost", 120)
	require.NoError(t, err)
	assert.Equal(t, entity.AnonymousBidder, got.History[0].Bidder)
}

func TestAuctionUseCase_CreateAuction(t *testing.T) {
	t.Run("creates and starts countdown", func(t *testing.T) {
		f := newAuctionFixture(t)
		f.auctions.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, a *entity.Auction) error {
				a.ID = "new"
				return nil
			})

		got, err := f.uc.CreateAuction(context.Background(), "seller", CreateAuctionInput{
			Name:            "Inverted Jenny",
			StartingBid:     1000,
			DurationSeconds: 60,
		})
		require.NoError(t, err)
		assert.Equal(t, 1000.0, got.CurrentBid)
		assert.Equal(t, entity.AuctionStatusOpen, got.Status)
		assert.Equal(t, f.now.Add(time.Minute), got.EndsAt)
		assert.Equal(t, int64(60), f.uc.Clock().Tracked()["new"])
		assert.Equal(t, []string{EventAuctionCreated}, f.publisher.types())
	})

	t.Run("uploads image", func(t *testing.T) {
		f := newAuctionFixture(t)
		f.auctions.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		got, err := f.uc.CreateAuction(context.Background(), "seller", CreateAuctionInput{
			Name:            "Scinde Dawk",
			StartingBid:     10,
			DurationSeconds: 60,
			Image:           &MediaUpload{Reader: stringsReader("img"), ContentType: "image/png", Size: 3},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{FolderAuctions}, f.files.uploads)
		assert.Contains(t, got.ImageURL, FolderAuctions)
	})

	t.Run("rejects bad input", func(t *testing.T) {
		f := newAuctionFixture(t)
		cases := []CreateAuctionInput{
			{Name: "", StartingBid: 10, DurationSeconds: 60},
			{Name: "x", StartingBid: 0, DurationSeconds: 60},
			{Name: "x", StartingBid: math.NaN(), DurationSeconds: 60},
			{Name: "x", StartingBid: math.Inf(1), DurationSeconds: 60},
			{Name: "x", StartingBid: 10, DurationSeconds: 0},
			{Name: "x", StartingBid: 10, DurationSeconds: int64((31 * 24 * time.Hour).Seconds())},
		}
		for _, in := range cases {
			_, err := f.uc.CreateAuction(context.Background(), "seller", in)
			assert.True(t, errors.Is(err, "BAD_REQUEST"), "input %+v", in)
		}
	})
}

func TestAuctionUseCase_ListAuctions(t *testing.T) {
	f := newAuctionFixture(t)

	closed := &entity.Auction{ID: "c", Name: "Closed one", Status: entity.AuctionStatusClosed, EndsAt: f.now.Add(-time.Hour)}
	late := &entity.Auction{ID: "late", Name: "Late stamp", Status: entity.AuctionStatusOpen, EndsAt: f.now.Add(time.Hour)}
	soon := &entity.Auction{ID: "soon", Name: "Soon stamp", Status: entity.AuctionStatusOpen, EndsAt: f.now.Add(time.Minute)}

	f.auctions.EXPECT().List(gomock.Any(), "").Return([]*entity.Auction{closed, late, soon}, nil).Times(2)

	got, total, err := f.uc.ListAuctions(context.Background(), "", "", 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, got, 3)
	assert.Equal(t, "soon", got[0].ID)
	assert.Equal(t, "late", got[1].ID)
	assert.Equal(t, "c", got[2].ID)
	assert.Equal(t, int64(60), got[0].TimeLeft)
	assert.Equal(t, int64(0), got[2].TimeLeft)

	got, total, err = f.uc.ListAuctions(context.Background(), "", "LATE", 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "late", got[0].ID)

	_, _, err = f.uc.ListAuctions(context.Background(), "pending", "", 10, 0)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestAuctionUseCase_CloseExpired(t *testing.T) {
	f := newAuctionFixture(t)

	expired := &entity.Auction{ID: "old", Status: entity.AuctionStatusOpen, EndsAt: f.now.Add(-time.Second)}
	running := &entity.Auction{ID: "run", Status: entity.AuctionStatusOpen, EndsAt: f.now.Add(time.Minute)}

	f.auctions.EXPECT().List(gomock.Any(), entity.AuctionStatusOpen).Return([]*entity.Auction{expired, running}, nil)
	f.auctions.EXPECT().Mutate(gomock.Any(), "old", gomock.Any()).DoAndReturn(mutateAgainst(expired))

	n, err := f.uc.CloseExpired(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, entity.AuctionStatusClosed, expired.Status)
	assert.Equal(t, []string{EventAuctionClosed}, f.publisher.types())
}

func TestAuctionUseCase_CloseAuction_AlreadyClosed(t *testing.T) {
	f := newAuctionFixture(t)
	stored := openAuction(f.now)
	stored.Status = entity.AuctionStatusClosed

	f.auctions.EXPECT().Mutate(gomock.Any(), "a1", gomock.Any()).DoAndReturn(mutateAgainst(stored))

	got, err := f.uc.CloseAuction(context.Background(), "a1")
	require.NoError(t, err)
	assert.Equal(t, entity.AuctionStatusClosed, got.Status)
	assert.Empty(t, f.publisher.types())
}
