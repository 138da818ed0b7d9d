package handler

import (
	"time"

	"github.com/labstack/echo/v4"

	"philatelysamaaj/internal/adapter/api/middleware"
	"philatelysamaaj/internal/usecase"
	"philatelysamaaj/pkg/geo"
	"philatelysamaaj/pkg/response"
)

type AdminHandler struct {
	userUseCase    *usecase.UserUseCase
	accountUseCase *usecase.AccountUseCase
	eventUseCase   *usecase.EventUseCase
	auctionUseCase *usecase.AuctionUseCase
}

func NewAdminHandler(
	userUseCase *usecase.UserUseCase,
	accountUseCase *usecase.AccountUseCase,
	eventUseCase *usecase.EventUseCase,
	auctionUseCase *usecase.AuctionUseCase,
) *AdminHandler {
	return &AdminHandler{
		userUseCase:    userUseCase,
		accountUseCase: accountUseCase,
		eventUseCase:   eventUseCase,
		auctionUseCase: auctionUseCase,
	}
}

type setRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=user admin"`
}

type createEventRequest struct {
	Name        string    `json:"name" validate:"required"`
	Description string    `json:"description"`
	Organizer   string    `json:"organizer"`
	Website     string    `json:"website" validate:"omitempty,url"`
	Venue       string    `json:"venue"`
	Lat         float64   `json:"lat" validate:"latitude"`
	Lng         float64   `json:"lng" validate:"longitude"`
	StartDate   time.Time `json:"start_date" validate:"required"`
	EndDate     time.Time `json:"end_date"`
	Price       float64   `json:"price" validate:"gte=0"`
}

func (h *AdminHandler) SetUserRole(c echo.Context) error {
	var req setRoleRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	user, err := h.userUseCase.SetRole(c.Request().Context(), c.Param("id"), req.Role)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

// CreditAccount records a deposit. Deposits only enter the ledger this way.
func (h *AdminHandler) CreditAccount(c echo.Context) error {
	var req amountRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	reference := req.Reference
	if reference == "" {
		reference = "admin:" + middleware.UserID(c)
	}

	entry, err := h.accountUseCase.Credit(c.Request().Context(), c.Param("id"), req.Amount, reference)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, entry)
}

func (h *AdminHandler) CreateEvent(c echo.Context) error {
	var req createEventRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	event, err := h.eventUseCase.CreateEvent(c.Request().Context(), middleware.UserID(c), usecase.CreateEventInput{
		Name:        req.Name,
		Description: req.Description,
		Organizer:   req.Organizer,
		Website:     req.Website,
		Venue:       req.Venue,
		Location:    geo.Coordinate{Lat: req.Lat, Lng: req.Lng},
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Price:       req.Price,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, event)
}

func (h *AdminHandler) CloseAuction(c echo.Context) error {
	auction, err := h.auctionUseCase.CloseAuction(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, auction)
}
