package websocket

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"philatelysamaaj/pkg/logger"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
)

const (
	FrameSubscribe    = "subscribe"
	FrameUnsubscribe  = "unsubscribe"
	FrameSubscribed   = "subscribed"
	FrameUnsubscribed = "unsubscribed"
	FrameError        = "error"
)

// Frame is the envelope for every message in both directions.
type Frame struct {
	Type      string      `json:"type"`
	Topic     string      `json:"topic,omitempty"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp string      `json:"timestamp,omitempty"`
}

type Client struct {
	UserID string
	Conn   *websocket.Conn
	Send   chan []byte

	mu     sync.Mutex
	topics map[string]struct{}
}

func NewClient(userID string, conn *websocket.Conn) *Client {
	return &Client{
		UserID: userID,
		Conn:   conn,
		Send:   make(chan []byte, sendBuffer),
		topics: make(map[string]struct{}),
	}
}

func (c *Client) subscribed(topic string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.topics[topic]
	return ok
}

// ReadPump handles subscribe and unsubscribe frames until the connection drops.
func (c *Client) ReadPump(ctx context.Context, h *Hub) {
	defer func() {
		select {
		case h.Unregister <- c:
		case <-ctx.Done():
		}
		c.Conn.Close()
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	_ = c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		return c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Warn("websocket read error for %s: %v", c.UserID, err)
			}
			return
		}
		c.handle(ctx, h, raw)
	}
}

func (c *Client) handle(ctx context.Context, h *Hub, raw []byte) {
	var in Frame
	if err := json.Unmarshal(raw, &in); err != nil {
		c.reply(Frame{Type: FrameError, Data: "malformed frame"})
		return
	}

	switch in.Type {
	case FrameSubscribe:
		if !h.Subscribe(ctx, c, in.Topic) {
			c.reply(Frame{Type: FrameError, Topic: in.Topic, Data: "subscription refused"})
			return
		}
		c.reply(Frame{Type: FrameSubscribed, Topic: in.Topic})
	case FrameUnsubscribe:
		h.Unsubscribe(c, in.Topic)
		c.reply(Frame{Type: FrameUnsubscribed, Topic: in.Topic})
	default:
		c.reply(Frame{Type: FrameError, Data: "unknown frame type"})
	}
}

func (c *Client) reply(f Frame) {
	payload, err := json.Marshal(f)
	if err != nil {
		return
	}
	defer func() {
		// Send may already be closed by the hub.
		_ = recover()
	}()
	select {
	case c.Send <- payload:
	default:
	}
}

// WritePump drains Send onto the connection and keeps it alive with pings.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.Send:
			_ = c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				logger.Warn("websocket write error for %s: %v", c.UserID, err)
				return
			}
		case <-ticker.C:
			_ = c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func validTopic(topic string) bool {
	if topic == "posts" {
		return true
	}
	for _, prefix := range []string{"auction:", "thread:"} {
		if strings.HasPrefix(topic, prefix) && len(topic) > len(prefix) {
			return true
		}
	}
	return false
}
