package router

import (
	"github.com/labstack/echo/v4"

	"philatelysamaaj/internal/adapter/api/handler"
)

func SetupHealthRouter(e *echo.Echo) {
	healthHandler := handler.GetHealthHandler()
	e.GET("/health", healthHandler.CheckHealth)
	e.GET("/v1/health", healthHandler.CheckHealth)
	e.GET("/ready", healthHandler.CheckReady)
}

func SetupWebSocketRouter(e *echo.Echo, wsHandler *handler.WebSocketHandler) {
	// Authentication happens inside the handler via ?token=.
	e.GET("/ws", wsHandler.HandleWebSocket)
}
