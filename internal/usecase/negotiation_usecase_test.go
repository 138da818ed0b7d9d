package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"philatelysamaaj/internal/domain/entity"
	"philatelysamaaj/internal/domain/repository/mocks"
	"philatelysamaaj/pkg/errors"
)

type negotiationFixture struct {
	uc        *NegotiationUseCase
	threads   *mocks.MockThreadRepository
	users     *mocks.MockUserRepository
	publisher *fakePublisher
	limiter   *fakeLimiter
}

func newNegotiationFixture(t *testing.T) *negotiationFixture {
	ctrl := gomock.NewController(t)
	f := &negotiationFixture{
		threads:   mocks.NewMockThreadRepository(ctrl),
		users:     mocks.NewMockUserRepository(ctrl),
		publisher: &fakePublisher{},
		limiter:   &fakeLimiter{deny: map[string]bool{}},
	}
	f.uc = NewNegotiationUseCase(f.threads, f.users, f.publisher, f.limiter)
	f.uc.now = fixedClock(time.Date(2025, 2, 2, 8, 0, 0, 0, time.UTC))
	return f
}

func appendTo(stored *entity.Thread) func(context.Context, *entity.Thread, entity.ThreadMessage) (*entity.Thread, error) {
	return func(ctx context.Context, seed *entity.Thread, msg entity.ThreadMessage) (*entity.Thread, error) {
		if stored.ID == "" {
			*stored = *seed
		}
		stored.Append(msg)
		return stored, nil
	}
}

func TestNegotiationUseCase_SendMessage(t *testing.T) {
	t.Run("buyer offer lands on buyer side", func(t *testing.T) {
		f := newNegotiationFixture(t)
		stored := &entity.Thread{}
		f.users.EXPECT().GetByID(gomock.Any(), "buyer").Return(&entity.User{ID: "buyer", Name: "Kiran"}, nil)
		f.threads.EXPECT().AppendMessage(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(appendTo(stored))

		view, err := f.uc.SendMessage(context.Background(), "buyer", SendMessageInput{
			SellerID: "seller", BuyerID: "buyer", Type: entity.MessageTypeOffer, Amount: 750,
		})
		require.NoError(t, err)
		assert.Equal(t, "seller_buyer", view.ID)
		require.Len(t, view.BuyerMessages, 1)
		assert.Empty(t, view.SellerMessages)
		assert.Equal(t, entity.RoleBuyer, view.Messages[0].Role)
		assert.Equal(t, 750.0, view.Messages[0].Amount)
		assert.Equal(t, ThreadTopic("seller_buyer"), f.publisher.events[0].Topic)
	})

	t.Run("seller reply on seller side", func(t *testing.T) {
		f := newNegotiationFixture(t)
		stored := &entity.Thread{}
		f.users.EXPECT().GetByID(gomock.Any(), "seller").Return(&entity.User{ID: "seller", Name: "Dev"}, nil)
		f.threads.EXPECT().AppendMessage(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(appendTo(stored))

		view, err := f.uc.SendMessage(context.Background(), "seller", SendMessageInput{
			SellerID: "seller", BuyerID: "buyer", Content: "Can do 800",
		})
		require.NoError(t, err)
		require.Len(t, view.SellerMessages, 1)
		assert.Equal(t, entity.MessageTypeText, view.Messages[0].Type)
	})

	t.Run("rejections", func(t *testing.T) {
		f := newNegotiationFixture(t)
		cases := []struct {
			caller string
			in     SendMessageInput
			code   string
		}{
			{"stranger", SendMessageInput{SellerID: "seller", BuyerID: "buyer", Content: "hi"}, "FORBIDDEN"},
			{"buyer", SendMessageInput{SellerID: "seller", BuyerID: "buyer", Content: "  "}, "BAD_REQUEST"},
			{"buyer", SendMessageInput{SellerID: "seller", BuyerID: "buyer", Type: entity.MessageTypeOffer}, "BAD_REQUEST"},
			{"buyer", SendMessageInput{SellerID: "seller", BuyerID: "buyer", Type: "sticker", Content: "x"}, "BAD_REQUEST"},
			{"buyer", SendMessageInput{SellerID: "buyer", BuyerID: "buyer", Content: "x"}, "BAD_REQUEST"},
		}
		for _, c := range cases {
			_, err := f.uc.SendMessage(context.Background(), c.caller, c.in)
			assert.True(t, errors.Is(err, c.code), "%+v: %v", c.in, err)
		}
		assert.Empty(t, f.publisher.types())
	})

	t.Run("rate limited", func(t *testing.T) {
		f := newNegotiationFixture(t)
		f.limiter.deny[ActionSendMessage] = true
		_, err := f.uc.SendMessage(context.Background(), "buyer", SendMessageInput{
			SellerID: "seller", BuyerID: "buyer", Content: "hello",
		})
		assert.True(t, errors.Is(err, "TOO_MANY_REQUESTS"))
	})
}

func TestNegotiationUseCase_GetThread(t *testing.T) {
	f := newNegotiationFixture(t)
	base := time.Date(2025, 2, 2, 8, 0, 0, 0, time.UTC)
	thread := entity.NewThread("seller", "buyer", base)
	thread.Append(entity.ThreadMessage{Role: entity.RoleBuyer, Content: "first", Timestamp: base})
	thread.Append(entity.ThreadMessage{Role: entity.RoleSeller, Content: "second", Timestamp: base.Add(time.Minute)})
	thread.Append(entity.ThreadMessage{Role: entity.RoleBuyer, Content: "third", Timestamp: base.Add(2 * time.Minute)})

	f.threads.EXPECT().GetByID(gomock.Any(), "seller_buyer").Return(thread, nil).Times(2)

	view, err := f.uc.GetThread(context.Background(), "buyer", "seller", "buyer")
	require.NoError(t, err)
	require.Len(t, view.Messages, 3)
	assert.Equal(t, []string{"first", "second", "third"},
		[]string{view.Messages[0].Content, view.Messages[1].Content, view.Messages[2].Content})

	_, err = f.uc.GetThread(context.Background(), "stranger", "seller", "buyer")
	assert.True(t, errors.Is(err, "FORBIDDEN"))
}

func TestNegotiationUseCase_CanSubscribe(t *testing.T) {
	f := newNegotiationFixture(t)
	f.threads.EXPECT().GetByID(gomock.Any(), "seller_buyer").Return(entity.NewThread("seller", "buyer", time.Now()), nil).Times(2)
	f.threads.EXPECT().GetByID(gomock.Any(), "missing").Return(nil, errors.NotFound("Thread", nil))
	f.threads.EXPECT().GetByID(gomock.Any(), "seller_newbuyer").Return(nil, errors.NotFound("Thread", nil)).Times(2)

	assert.True(t, f.uc.CanSubscribe(context.Background(), "seller", "seller_buyer"))
	assert.False(t, f.uc.CanSubscribe(context.Background(), "other", "seller_buyer"))
	assert.False(t, f.uc.CanSubscribe(context.Background(), "seller", "missing"))

	// no messages yet
	assert.True(t, f.uc.CanSubscribe(context.Background(), "newbuyer", "seller_newbuyer"))
	assert.False(t, f.uc.CanSubscribe(context.Background(), "buyer", "seller_newbuyer"))
}

func TestNegotiationUseCase_AuthorizeTopic(t *testing.T) {
	f := newNegotiationFixture(t)
	f.threads.EXPECT().GetByID(gomock.Any(), "seller_buyer").Return(entity.NewThread("seller", "buyer", time.Now()), nil).Times(2)

	ctx := context.Background()
	assert.True(t, f.uc.AuthorizeTopic(ctx, "anyone", TopicPosts))
	assert.True(t, f.uc.AuthorizeTopic(ctx, "anyone", AuctionTopic("a1")))
	assert.True(t, f.uc.AuthorizeTopic(ctx, "buyer", ThreadTopic("seller_buyer")))
	assert.False(t, f.uc.AuthorizeTopic(ctx, "anyone", ThreadTopic("seller_buyer")))
	assert.False(t, f.uc.AuthorizeTopic(ctx, "anyone", ThreadTopic("")))
}
