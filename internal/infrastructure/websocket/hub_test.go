package websocket

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(id string) *Client {
	return &Client{UserID: id, Send: make(chan []byte, 2), topics: map[string]struct{}{}}
}

func register(t *testing.T, h *Hub, clients ...*Client) {
	t.Helper()
	for _, c := range clients {
		h.Register <- c
	}
	require.Eventually(t, func() bool { return h.ClientCount() == len(clients) }, time.Second, 5*time.Millisecond)
}

func TestHub_PublishOnlyToSubscribers(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	h := NewHub(nil)
	h.now = func() time.Time { return time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC) }
	go h.Run(ctx)

	a, b := newTestClient("a"), newTestClient("b")
	register(t, h, a, b)

	require.True(t, h.Subscribe(ctx, a, "auction:1"))
	h.Publish("auction:1", "auction.tick", map[string]int{"timeLeft": 9})

	require.Len(t, a.Send, 1)
	assert.Len(t, b.Send, 0)

	var f Frame
	require.NoError(t, json.Unmarshal(<-a.Send, &f))
	assert.Equal(t, "auction.tick", f.Type)
	assert.Equal(t, "auction:1", f.Topic)
	assert.Equal(t, "2025-01-02T03:04:05Z", f.Timestamp)

	h.Unsubscribe(a, "auction:1")
	h.Publish("auction:1", "auction.tick", nil)
	assert.Len(t, a.Send, 0)
}

func TestHub_DropsSlowClient(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	h := NewHub(nil)
	go h.Run(ctx)

	c := newTestClient("slow")
	register(t, h, c)
	h.Subscribe(ctx, c, "posts")

	for i := 0; i < 3; i++ {
		h.Publish("posts", "post.created", i)
	}
	assert.Equal(t, 0, h.ClientCount())
}

func TestHub_SubscribeAuthorization(t *testing.T) {
	h := NewHub(func(ctx context.Context, userID, topic string) bool {
		return !strings.HasPrefix(topic, "thread:") || userID == "seller"
	})
	ctx := context.Background()

	assert.True(t, h.Subscribe(ctx, newTestClient("seller"), "thread:t1"))
	assert.False(t, h.Subscribe(ctx, newTestClient("stranger"), "thread:t1"))
	assert.False(t, h.Subscribe(ctx, newTestClient("seller"), "weather"))
	assert.False(t, h.Subscribe(ctx, newTestClient("seller"), "auction:"))
}

func TestClient_RoundTrip(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	h := NewHub(nil)
	go h.Run(ctx)

	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		c := NewClient("u1", conn)
		h.Register <- c
		go c.WritePump()
		c.ReadPump(ctx, h)
	}))
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.WriteJSON(Frame{Type: FrameSubscribe, Topic: "posts"}))

	var ack Frame
	require.NoError(t, conn.ReadJSON(&ack))
	assert.Equal(t, FrameSubscribed, ack.Type)

	h.Publish("posts", "post.created", map[string]string{"id": "p1"})

	var got Frame
	require.NoError(t, conn.ReadJSON(&got))
	assert.Equal(t, "post.created", got.Type)
	assert.Equal(t, map[string]interface{}{"id": "p1"}, got.Data)
}
