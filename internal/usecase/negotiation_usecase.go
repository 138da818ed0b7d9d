package usecase

import (
	"context"
	"strings"
	"time"

	"philatelysamaaj/internal/domain/entity"
	"philatelysamaaj/internal/domain/repository"
	"philatelysamaaj/pkg/errors"
)

const EventThreadUpdated = "thread.updated"

type NegotiationUseCase struct {
	threadRepo repository.ThreadRepository
	userRepo   repository.UserRepository
	publisher  EventPublisher
	limiter    RateLimiter
	now        func() time.Time
}

func NewNegotiationUseCase(
	threadRepo repository.ThreadRepository,
	userRepo repository.UserRepository,
	publisher EventPublisher,
	limiter RateLimiter,
) *NegotiationUseCase {
	return &NegotiationUseCase{
		threadRepo: threadRepo,
		userRepo:   userRepo,
		publisher:  publisher,
		limiter:    limiter,
		now:        time.Now,
	}
}

type SendMessageInput struct {
	SellerID      string
	BuyerID       string
	CatalogItemID string
	Content       string
	Type          string
	Amount        float64
}

// ThreadView is a thread plus its merged timeline.
type ThreadView struct {
	*entity.Thread
	Messages []entity.ThreadMessage `json:"messages"`
}

func newThreadView(t *entity.Thread) *ThreadView {
	return &ThreadView{Thread: t, Messages: t.Timeline()}
}

func (uc *NegotiationUseCase) SendMessage(ctx context.Context, callerID string, input SendMessageInput) (*ThreadView, error) {
	if input.SellerID == "" || input.BuyerID == "" {
		return nil, errors.BadRequest("seller and buyer are required", nil)
	}
	if input.SellerID == input.BuyerID {
		return nil, errors.BadRequest("seller and buyer must be different users", nil)
	}

	seed := entity.NewThread(input.SellerID, input.BuyerID, uc.now())
	seed.CatalogItemID = input.CatalogItemID

	role, err := seed.RoleOf(callerID)
	if err != nil {
		return nil, domainError(err)
	}

	msgType := input.Type
	if msgType == "" {
		msgType = entity.MessageTypeText
	}
	switch msgType {
	case entity.MessageTypeText:
		if strings.TrimSpace(input.Content) == "" {
			return nil, errors.BadRequest("Message content is required", nil)
		}
		input.Amount = 0
	case entity.MessageTypeOffer:
		if input.Amount <= 0 {
			return nil, errors.BadRequest("Offer amount must be greater than zero", nil)
		}
	default:
		return nil, errors.BadRequest("type must be one of: text offer", nil)
	}

	if ok, wait := uc.limiter.Allow(callerID, ActionSendMessage); !ok {
		return nil, errors.TooManyRequests("message", wait)
	}

	sender := entity.AnonymousBidder
	if user, err := uc.userRepo.GetByID(ctx, callerID); err == nil {
		sender = user.DisplayName()
	}

	msg := entity.ThreadMessage{
		SenderID:  callerID,
		Sender:    sender,
		Role:      role,
		Content:   input.Content,
		Type:      msgType,
		Amount:    input.Amount,
		Timestamp: uc.now(),
	}

	thread, err := uc.threadRepo.AppendMessage(ctx, seed, msg)
	if err != nil {
		return nil, err
	}

	view := newThreadView(thread)
	uc.publisher.Publish(ThreadTopic(thread.ID), EventThreadUpdated, view)
	return view, nil
}

func (uc *NegotiationUseCase) GetThread(ctx context.Context, callerID, sellerID, buyerID string) (*ThreadView, error) {
	thread, err := uc.threadRepo.GetByID(ctx, entity.ThreadID(sellerID, buyerID))
	if err != nil {
		return nil, err
	}
	if _, err := thread.RoleOf(callerID); err != nil {
		return nil, domainError(err)
	}
	return newThreadView(thread), nil
}

// CanSubscribe reports whether userID may follow live updates of threadID.
// A thread that has no messages yet is judged by its id alone.
func (uc *NegotiationUseCase) CanSubscribe(ctx context.Context, userID, threadID string) bool {
	thread, err := uc.threadRepo.GetByID(ctx, threadID)
	if err != nil {
		if !errors.Is(err, "NOT_FOUND") {
			return false
		}
		return strings.HasPrefix(threadID, userID+"_") || strings.HasSuffix(threadID, "_"+userID)
	}
	_, err = thread.RoleOf(userID)
	return err == nil
}

// AuthorizeTopic gates live subscriptions. Thread topics are limited to the
// two participants; every other topic is public.
func (uc *NegotiationUseCase) AuthorizeTopic(ctx context.Context, userID, topic string) bool {
	if threadID, ok := strings.CutPrefix(topic, ThreadTopic("")); ok {
		return threadID != "" && uc.CanSubscribe(ctx, userID, threadID)
	}
	return true
}

func (uc *NegotiationUseCase) ListMyThreads(ctx context.Context, userID string) ([]*entity.Thread, error) {
	return uc.threadRepo.ListByParticipant(ctx, userID)
}
