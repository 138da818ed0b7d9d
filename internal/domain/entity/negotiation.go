package entity

import (
	"sort"
	"time"
)

const (
	MessageTypeText  = "text"
	MessageTypeOffer = "offer"

	RoleSeller = "seller"
	RoleBuyer  = "buyer"
)

type ThreadMessage struct {
	SenderID  string    `json:"sender_id" firestore:"senderId"`
	Sender    string    `json:"sender" firestore:"sender"`
	Role      string    `json:"role" firestore:"role"`
	Content   string    `json:"content" firestore:"content"`
	Type      string    `json:"type" firestore:"type"`
	Amount    float64   `json:"amount,omitempty" firestore:"amount,omitempty"`
	Timestamp time.Time `json:"timestamp" firestore:"timestamp"`
}

// Thread is a two-party negotiation. Each side writes to its own list.
type Thread struct {
	ID             string          `json:"id" firestore:"id"`
	SellerID       string          `json:"seller_id" firestore:"sellerId"`
	BuyerID        string          `json:"buyer_id" firestore:"buyerId"`
	Participants   []string        `json:"participants" firestore:"participants"`
	CatalogItemID  string          `json:"catalog_item_id,omitempty" firestore:"catalogItemId,omitempty"`
	SellerMessages []ThreadMessage `json:"seller_messages" firestore:"sellerMessages"`
	BuyerMessages  []ThreadMessage `json:"buyer_messages" firestore:"buyerMessages"`
	LastMessageAt  time.Time       `json:"last_message_at" firestore:"lastMessageAt"`
	CreatedAt      time.Time       `json:"created_at" firestore:"createdAt"`
}

func ThreadID(sellerID, buyerID string) string {
	return sellerID + "_" + buyerID
}

func NewThread(sellerID, buyerID string, now time.Time) *Thread {
	return &Thread{
		ID:             ThreadID(sellerID, buyerID),
		SellerID:       sellerID,
		BuyerID:        buyerID,
		Participants:   []string{sellerID, buyerID},
		SellerMessages: []ThreadMessage{},
		BuyerMessages:  []ThreadMessage{},
		CreatedAt:      now,
	}
}

// RoleOf returns the caller's side of the thread.
func (t *Thread) RoleOf(userID string) (string, error) {
	switch userID {
	case t.SellerID:
		return RoleSeller, nil
	case t.BuyerID:
		return RoleBuyer, nil
	default:
		return "", ErrNotParticipant
	}
}

func (t *Thread) Append(msg ThreadMessage) {
	if msg.Role == RoleSeller {
		t.SellerMessages = append(t.SellerMessages, msg)
	} else {
		t.BuyerMessages = append(t.BuyerMessages, msg)
	}
	t.LastMessageAt = msg.Timestamp
}

// Timeline merges both sides ordered by timestamp. Ties keep seller first.
func (t *Thread) Timeline() []ThreadMessage {
	out := make([]ThreadMessage, 0, len(t.SellerMessages)+len(t.BuyerMessages))
	out = append(out, t.SellerMessages...)
	out = append(out, t.BuyerMessages...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp)
	})
	return out
}
