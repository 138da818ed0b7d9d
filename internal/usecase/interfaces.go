package usecase

import (
	"context"
	"time"
)

// AuthTokens is what the identity provider hands back after a sign-in.
type AuthTokens struct {
	IDToken      string `json:"token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
	UID          string `json:"-"`
}

// VerifiedIdentity is the subset of token claims the service cares about.
type VerifiedIdentity struct {
	UID      string
	Email    string
	Name     string
	Picture  string
	Provider string
}

type FirebaseAuthClient interface {
	CreateUser(ctx context.Context, email, password, displayName string) (string, error)
	VerifyToken(ctx context.Context, token string) (*VerifiedIdentity, error)
	SignInWithEmailPassword(ctx context.Context, email, password string) (*AuthTokens, error)
	RefreshIDToken(ctx context.Context, refreshToken string) (*AuthTokens, error)
	SetAdminClaim(ctx context.Context, uid string, admin bool) error
}

// EventPublisher fans a snapshot out to everyone subscribed to topic.
type EventPublisher interface {
	Publish(topic, eventType string, data interface{})
}

type RateLimiter interface {
	Allow(userID, action string) (bool, time.Duration)
}

const (
	ActionPlaceBid      = "place_bid"
	ActionSendMessage   = "send_message"
	ActionCreatePost    = "create_post"
	ActionVote          = "vote"
	ActionIdentifyStamp = "identify_stamp"
)

const (
	TopicPosts = "posts"
)

func AuctionTopic(id string) string { return "auction:" + id }
func ThreadTopic(id string) string  { return "thread:" + id }
