package handler

import (
	"github.com/labstack/echo/v4"

	"philatelysamaaj/internal/adapter/api/middleware"
	"philatelysamaaj/internal/domain/entity"
	"philatelysamaaj/internal/usecase"
	"philatelysamaaj/pkg/response"
)

type UserHandler struct {
	userUseCase *usecase.UserUseCase
}

func NewUserHandler(userUseCase *usecase.UserUseCase) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
	}
}

type updateProfileRequest struct {
	Name           *string `json:"name"`
	UserType       *string `json:"user_type" validate:"omitempty,oneof=collector dealer society"`
	State          *string `json:"state"`
	Experience     *string `json:"experience"`
	ContactDetails *string `json:"contact_details"`
	PhotoURL       *string `json:"photo_url" validate:"omitempty,url"`
	CanSellStamps  *bool   `json:"can_sell_stamps"`
	CanSellCoins   *bool   `json:"can_sell_coins"`
	CanSellNotes   *bool   `json:"can_sell_notes"`
}

func (h *UserHandler) GetProfile(c echo.Context) error {
	user, err := h.userUseCase.GetProfile(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, user)
}

func (h *UserHandler) UpdateProfile(c echo.Context) error {
	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	user, err := h.userUseCase.UpdateProfile(c.Request().Context(), middleware.UserID(c), entity.ProfileUpdate{
		Name:           req.Name,
		UserType:       req.UserType,
		State:          req.State,
		Experience:     req.Experience,
		ContactDetails: req.ContactDetails,
		PhotoURL:       req.PhotoURL,
		CanSellStamps:  req.CanSellStamps,
		CanSellCoins:   req.CanSellCoins,
		CanSellNotes:   req.CanSellNotes,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

func (h *UserHandler) GetUser(c echo.Context) error {
	user, err := h.userUseCase.GetPublicProfile(c.Request().Context(), c.Param("id"), middleware.UserID(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, user)
}
