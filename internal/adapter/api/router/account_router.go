package router

import (
	"github.com/labstack/echo/v4"

	"philatelysamaaj/internal/adapter/api/handler"
)

func SetupAccountRouter(v1 *echo.Group, m Middlewares) {
	accountHandler := handler.GetAccountHandler()

	account := v1.Group("/account", m.Auth.Authenticate)
	account.GET("", accountHandler.GetAccount)
	account.GET("/transactions", accountHandler.History)
	account.POST("/purchases", accountHandler.Purchase)
}
