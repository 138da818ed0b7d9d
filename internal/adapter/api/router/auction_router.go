package router

import (
	"github.com/labstack/echo/v4"

	"philatelysamaaj/internal/adapter/api/handler"
)

func SetupAuctionRouter(v1 *echo.Group, m Middlewares) {
	auctionHandler := handler.GetAuctionHandler()

	v1.GET("/auctions", auctionHandler.ListAuctions)
	v1.GET("/auctions/:id", auctionHandler.GetAuction)

	v1.POST("/auctions", auctionHandler.CreateAuction, m.Auth.Authenticate)
	v1.POST("/auctions/:id/bids", auctionHandler.PlaceBid, m.Auth.Authenticate)
}
