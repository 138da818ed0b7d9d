package router

import (
	"github.com/labstack/echo/v4"

	"philatelysamaaj/internal/adapter/api/handler"
)

func SetupEventRouter(v1 *echo.Group, m Middlewares) {
	eventHandler := handler.GetEventHandler()

	v1.GET("/events", eventHandler.ListEvents)
	v1.GET("/events/:id", eventHandler.GetEvent)
	v1.POST("/events/:id/bookings", eventHandler.BookEvent, m.Auth.Authenticate)
	v1.GET("/my-bookings", eventHandler.ListMyBookings, m.Auth.Authenticate)
}
