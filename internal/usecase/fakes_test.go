package usecase

import (
	"context"
	"io"
	"sync"
	"time"

	"philatelysamaaj/internal/domain/service"
)

type publishedEvent struct {
	Topic string
	Type  string
	Data  interface{}
}

type fakePublisher struct {
	mu     sync.Mutex
	events []publishedEvent
}

func (p *fakePublisher) Publish(topic, eventType string, data interface{}) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, publishedEvent{Topic: topic, Type: eventType, Data: data})
}

func (p *fakePublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}

// fakeLimiter denies every action listed in deny.
type fakeLimiter struct {
	deny map[string]bool
}

func (l *fakeLimiter) Allow(userID, action string) (bool, time.Duration) {
	if l.deny[action] {
		return false, 3 * time.Second
	}
	return true, 0
}

type fakeFiles struct {
	uploads []string
	deleted []string
	err     error
}

func (f *fakeFiles) UploadFile(ctx context.Context, r io.Reader, fileType, folder string) (*service.UploadResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	data, _ := io.ReadAll(r)
	f.uploads = append(f.uploads, folder)
	return &service.UploadResult{
		URL:        "https://storage.googleapis.com/test-bucket/" + folder + "/object",
		ObjectName: folder + "/object",
		Size:       int64(len(data)),
	}, nil
}

func (f *fakeFiles) DeleteFile(ctx context.Context, objectName string) error {
	f.deleted = append(f.deleted, objectName)
	return nil
}

type fakeAuth struct {
	createdUID string
	createErr  error
	identity   *VerifiedIdentity
	verifyErr  error
	tokens     *AuthTokens
	signInErr  error
	claims     map[string]bool
}

func (a *fakeAuth) CreateUser(ctx context.Context, email, password, displayName string) (string, error) {
	return a.createdUID, a.createErr
}

func (a *fakeAuth) VerifyToken(ctx context.Context, token string) (*VerifiedIdentity, error) {
	return a.identity, a.verifyErr
}

func (a *fakeAuth) SignInWithEmailPassword(ctx context.Context, email, password string) (*AuthTokens, error) {
	return a.tokens, a.signInErr
}

func (a *fakeAuth) RefreshIDToken(ctx context.Context, refreshToken string) (*AuthTokens, error) {
	return a.tokens, a.signInErr
}

func (a *fakeAuth) SetAdminClaim(ctx context.Context, uid string, admin bool) error {
	if a.claims == nil {
		a.claims = map[string]bool{}
	}
	a.claims[uid] = admin
	return nil
}

// runTx executes the callback directly, standing in for a real transaction.
func runTx(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
