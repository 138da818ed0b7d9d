package router

import (
	"github.com/labstack/echo/v4"

	"philatelysamaaj/internal/adapter/api/handler"
)

func SetupUserRouter(v1 *echo.Group, m Middlewares) {
	userHandler := handler.GetUserHandler()

	profile := v1.Group("/profile", m.Auth.Authenticate)
	profile.GET("", userHandler.GetProfile)
	profile.PUT("", userHandler.UpdateProfile)

	v1.GET("/users/:id", userHandler.GetUser, m.Auth.OptionalAuth)
}
