package websocket

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"philatelysamaaj/pkg/logger"
)

const sendBuffer = 256

// Authorizer decides whether a user may subscribe to a topic.
type Authorizer func(ctx context.Context, userID, topic string) bool

// Hub keeps track of connected clients and the topics they follow.
type Hub struct {
	Register   chan *Client
	Unregister chan *Client

	mu        sync.RWMutex
	clients   map[*Client]struct{}
	authorize Authorizer
	now       func() time.Time
}

func allowAll(context.Context, string, string) bool { return true }

func NewHub(authorize Authorizer) *Hub {
	if authorize == nil {
		authorize = allowAll
	}
	return &Hub{
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		clients:    make(map[*Client]struct{}),
		authorize:  authorize,
		now:        time.Now,
	}
}

// Run processes registrations until ctx is done, then disconnects everyone.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case c := <-h.Register:
			h.mu.Lock()
			h.clients[c] = struct{}{}
			h.mu.Unlock()
			logger.Debug("websocket client registered: %s", c.UserID)

		case c := <-h.Unregister:
			h.remove(c)
			logger.Debug("websocket client unregistered: %s", c.UserID)

		case <-ctx.Done():
			h.mu.Lock()
			for c := range h.clients {
				delete(h.clients, c)
				close(c.Send)
			}
			h.mu.Unlock()
			return
		}
	}
}

func (h *Hub) remove(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.Send)
	}
}

// Publish sends one frame to every client subscribed to topic. A client whose
// buffer is full is disconnected.
func (h *Hub) Publish(topic, eventType string, data interface{}) {
	payload, err := json.Marshal(Frame{
		Type:      eventType,
		Topic:     topic,
		Data:      data,
		Timestamp: h.now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		logger.Error("websocket: failed to encode %s frame: %v", eventType, err)
		return
	}

	var slow []*Client

	h.mu.RLock()
	for c := range h.clients {
		if !c.subscribed(topic) {
			continue
		}
		select {
		case c.Send <- payload:
		default:
			slow = append(slow, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range slow {
		logger.Warn("websocket: dropping slow client %s", c.UserID)
		h.remove(c)
	}
}

// SetAuthorizer replaces the subscription check. Call it before Run.
func (h *Hub) SetAuthorizer(authorize Authorizer) {
	if authorize == nil {
		authorize = allowAll
	}
	h.authorize = authorize
}

// Subscribe adds topic to the client's subscriptions when allowed.
func (h *Hub) Subscribe(ctx context.Context, c *Client, topic string) bool {
	if !validTopic(topic) || !h.authorize(ctx, c.UserID, topic) {
		return false
	}
	c.mu.Lock()
	c.topics[topic] = struct{}{}
	c.mu.Unlock()
	return true
}

func (h *Hub) Unsubscribe(c *Client, topic string) {
	c.mu.Lock()
	delete(c.topics, topic)
	c.mu.Unlock()
}

func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
