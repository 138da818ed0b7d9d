package handler

import (
	"context"
	"net/http"

	gorillaws "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"philatelysamaaj/internal/adapter/api/middleware"
	ws "philatelysamaaj/internal/infrastructure/websocket"
	"philatelysamaaj/pkg/errors"
	"philatelysamaaj/pkg/response"
)

type WebSocketHandler struct {
	ctx            context.Context
	hub            *ws.Hub
	authMiddleware *middleware.AuthMiddleware
	upgrader       gorillaws.Upgrader
}

// NewWebSocketHandler ties connection lifetimes to ctx rather than the
// upgrade request.
func NewWebSocketHandler(ctx context.Context, hub *ws.Hub, authMiddleware *middleware.AuthMiddleware, allowedOrigins []string) *WebSocketHandler {
	return &WebSocketHandler{
		ctx:            ctx,
		hub:            hub,
		authMiddleware: authMiddleware,
		upgrader: gorillaws.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     originChecker(allowedOrigins),
		},
	}
}

func originChecker(allowed []string) func(r *http.Request) bool {
	set := make(map[string]bool, len(allowed))
	for _, o := range allowed {
		if o == "*" {
			return func(*http.Request) bool { return true }
		}
		set[o] = true
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		return origin == "" || set[origin]
	}
}

// HandleWebSocket authenticates with ?token= because browsers cannot set
// headers on the upgrade request.
func (h *WebSocketHandler) HandleWebSocket(c echo.Context) error {
	token := c.QueryParam("token")
	if token == "" {
		return response.Error(c, errors.Unauthorized("Authentication required", nil))
	}

	userID, err := h.authMiddleware.UIDFromToken(c.Request().Context(), token)
	if err != nil {
		return response.Error(c, errors.Unauthorized("Invalid or expired token", err))
	}

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// The upgrader has already written the HTTP error.
		return nil
	}

	client := ws.NewClient(userID, conn)
	select {
	case h.hub.Register <- client:
	case <-h.ctx.Done():
		conn.Close()
		return nil
	}

	go client.WritePump()
	go client.ReadPump(h.ctx, h.hub)

	return nil
}
