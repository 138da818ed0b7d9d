package handler

import (
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"philatelysamaaj/internal/adapter/api/middleware"
	"philatelysamaaj/internal/usecase"
	"philatelysamaaj/pkg/errors"
	"philatelysamaaj/pkg/response"
	"philatelysamaaj/pkg/utils"
)

type AuctionHandler struct {
	auctionUseCase *usecase.AuctionUseCase
}

func NewAuctionHandler(auctionUseCase *usecase.AuctionUseCase) *AuctionHandler {
	return &AuctionHandler{
		auctionUseCase: auctionUseCase,
	}
}

type placeBidRequest struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

func (h *AuctionHandler) CreateAuction(c echo.Context) error {
	startingBid, err := strconv.ParseFloat(strings.TrimSpace(c.FormValue("starting_bid")), 64)
	if err != nil {
		return response.Error(c, errors.BadRequest("starting_bid must be a number", err))
	}
	duration, err := strconv.ParseInt(strings.TrimSpace(c.FormValue("duration_seconds")), 10, 64)
	if err != nil {
		return response.Error(c, errors.BadRequest("duration_seconds must be a whole number", err))
	}

	image, closeImage, err := formMedia(c, "image")
	if err != nil {
		return response.Error(c, err)
	}
	defer closeImage()

	auction, err := h.auctionUseCase.CreateAuction(c.Request().Context(), middleware.UserID(c), usecase.CreateAuctionInput{
		CatalogItemID:   c.FormValue("catalog_item_id"),
		Name:            c.FormValue("name"),
		Description:     c.FormValue("description"),
		ImageURL:        c.FormValue("image_url"),
		StartingBid:     startingBid,
		DurationSeconds: duration,
		Image:           image,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, auction)
}

func (h *AuctionHandler) GetAuction(c echo.Context) error {
	auction, err := h.auctionUseCase.GetAuction(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, auction)
}

func (h *AuctionHandler) ListAuctions(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)

	status := c.QueryParam("status")
	if status != "" && status != "open" && status != "closed" {
		return response.Error(c, errors.BadRequest("status must be one of: open closed", nil))
	}

	auctions, total, err := h.auctionUseCase.ListAuctions(c.Request().Context(), status, c.QueryParam("search"), pagination.PageSize, pagination.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, auctions, total, pagination.Page, pagination.PageSize)
}

func (h *AuctionHandler) PlaceBid(c echo.Context) error {
	var req placeBidRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	auction, err := h.auctionUseCase.PlaceBid(c.Request().Context(), c.Param("id"), middleware.UserID(c), req.Amount)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, auction)
}
