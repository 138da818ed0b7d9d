package router

import (
	"github.com/labstack/echo/v4"

	"philatelysamaaj/internal/adapter/api/handler"
	"philatelysamaaj/internal/adapter/api/middleware"
)

type Middlewares struct {
	Auth      *middleware.AuthMiddleware
	Admin     *middleware.AdminMiddleware
	AuthLimit *middleware.IPRateLimiter
	APILimit  *middleware.IPRateLimiter
}

func Setup(e *echo.Echo, m Middlewares, wsHandler *handler.WebSocketHandler) {
	v1 := e.Group("/v1", m.APILimit.Middleware())

	SetupAuthRouter(v1, m)
	SetupUserRouter(v1, m)
	SetupCatalogRouter(v1, m)
	SetupAuctionRouter(v1, m)
	SetupForumRouter(v1, m)
	SetupEventRouter(v1, m)
	SetupNegotiationRouter(v1, m)
	SetupAccountRouter(v1, m)
	SetupFileRouter(v1, m)
	SetupAdminRouter(v1, m)
	SetupHealthRouter(e)
	SetupWebSocketRouter(e, wsHandler)
}
