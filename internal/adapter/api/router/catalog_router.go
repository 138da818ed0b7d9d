package router

import (
	"github.com/labstack/echo/v4"

	"philatelysamaaj/internal/adapter/api/handler"
)

func SetupCatalogRouter(v1 *echo.Group, m Middlewares) {
	catalogHandler := handler.GetCatalogHandler()

	v1.GET("/catalog", catalogHandler.ListItems)
	v1.GET("/catalog/:id", catalogHandler.GetItem)

	mine := v1.Group("/my-catalog", m.Auth.Authenticate)
	mine.GET("", catalogHandler.ListMyItems)
	mine.POST("", catalogHandler.CreateItem)
}
