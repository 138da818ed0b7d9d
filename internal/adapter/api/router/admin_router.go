package router

import (
	"github.com/labstack/echo/v4"

	"philatelysamaaj/internal/adapter/api/handler"
)

func SetupAdminRouter(v1 *echo.Group, m Middlewares) {
	adminHandler := handler.GetAdminHandler()

	admin := v1.Group("/admin", m.Auth.Authenticate, m.Admin.AdminOnly)
	admin.PUT("/users/:id/role", adminHandler.SetUserRole)
	admin.POST("/accounts/:id/credit", adminHandler.CreditAccount)
	admin.POST("/events", adminHandler.CreateEvent)
	admin.POST("/auctions/:id/close", adminHandler.CloseAuction)
}
