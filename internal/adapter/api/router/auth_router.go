package router

import (
	"github.com/labstack/echo/v4"

	"philatelysamaaj/internal/adapter/api/handler"
)

func SetupAuthRouter(v1 *echo.Group, m Middlewares) {
	authHandler := handler.GetAuthHandler()

	auth := v1.Group("/auth", m.AuthLimit.Middleware())
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.RefreshToken)
	auth.POST("/federated", authHandler.FederatedSignIn)
}
