package handler

import (
	"github.com/labstack/echo/v4"

	"philatelysamaaj/internal/adapter/api/middleware"
	"philatelysamaaj/internal/usecase"
	"philatelysamaaj/pkg/response"
	"philatelysamaaj/pkg/utils"
)

type AccountHandler struct {
	accountUseCase *usecase.AccountUseCase
}

func NewAccountHandler(accountUseCase *usecase.AccountUseCase) *AccountHandler {
	return &AccountHandler{
		accountUseCase: accountUseCase,
	}
}

type amountRequest struct {
	Amount    float64 `json:"amount" validate:"required,gt=0"`
	Reference string  `json:"reference" validate:"max=200"`
}

func (h *AccountHandler) GetAccount(c echo.Context) error {
	account, err := h.accountUseCase.GetAccount(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, account)
}

func (h *AccountHandler) History(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)

	entries, total, err := h.accountUseCase.History(c.Request().Context(), middleware.UserID(c), c.QueryParam("type"), pagination.PageSize, pagination.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, entries, total, pagination.Page, pagination.PageSize)
}

func (h *AccountHandler) Purchase(c echo.Context) error {
	var req amountRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	entry, err := h.accountUseCase.Purchase(c.Request().Context(), middleware.UserID(c), req.Amount, req.Reference)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, entry)
}
