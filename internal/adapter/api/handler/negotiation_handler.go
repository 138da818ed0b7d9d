package handler

import (
	"github.com/labstack/echo/v4"

	"philatelysamaaj/internal/adapter/api/middleware"
	"philatelysamaaj/internal/usecase"
	"philatelysamaaj/pkg/response"
)

type NegotiationHandler struct {
	negotiationUseCase *usecase.NegotiationUseCase
}

func NewNegotiationHandler(negotiationUseCase *usecase.NegotiationUseCase) *NegotiationHandler {
	return &NegotiationHandler{
		negotiationUseCase: negotiationUseCase,
	}
}

type sendMessageRequest struct {
	Content       string  `json:"content"`
	Type          string  `json:"type" validate:"required,oneof=text offer"`
	Amount        float64 `json:"amount" validate:"gte=0"`
	CatalogItemID string  `json:"catalog_item_id"`
}

func (h *NegotiationHandler) ListMyThreads(c echo.Context) error {
	threads, err := h.negotiationUseCase.ListMyThreads(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, threads)
}

func (h *NegotiationHandler) GetThread(c echo.Context) error {
	thread, err := h.negotiationUseCase.GetThread(c.Request().Context(), middleware.UserID(c), c.Param("sellerId"), c.Param("buyerId"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, thread)
}

func (h *NegotiationHandler) SendMessage(c echo.Context) error {
	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	thread, err := h.negotiationUseCase.SendMessage(c.Request().Context(), middleware.UserID(c), usecase.SendMessageInput{
		SellerID:      c.Param("sellerId"),
		BuyerID:       c.Param("buyerId"),
		CatalogItemID: req.CatalogItemID,
		Content:       req.Content,
		Type:          req.Type,
		Amount:        req.Amount,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, thread)
}
