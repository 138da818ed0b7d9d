package router

import (
	"github.com/labstack/echo/v4"

	"philatelysamaaj/internal/adapter/api/handler"
)

func SetupNegotiationRouter(v1 *echo.Group, m Middlewares) {
	negotiationHandler := handler.GetNegotiationHandler()

	threads := v1.Group("/threads", m.Auth.Authenticate)
	threads.GET("", negotiationHandler.ListMyThreads)
	threads.GET("/:sellerId/:buyerId", negotiationHandler.GetThread)
	threads.POST("/:sellerId/:buyerId/messages", negotiationHandler.SendMessage)
}
