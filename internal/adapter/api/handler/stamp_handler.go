package handler

import (
	"github.com/labstack/echo/v4"

	"philatelysamaaj/internal/adapter/api/middleware"
	"philatelysamaaj/internal/usecase"
	"philatelysamaaj/pkg/errors"
	"philatelysamaaj/pkg/response"
)

type StampHandler struct {
	stampUseCase *usecase.StampUseCase
}

func NewStampHandler(stampUseCase *usecase.StampUseCase) *StampHandler {
	return &StampHandler{
		stampUseCase: stampUseCase,
	}
}

func (h *StampHandler) Identify(c echo.Context) error {
	image, closeImage, err := formMedia(c, "image")
	if err != nil {
		return response.Error(c, err)
	}
	defer closeImage()
	if image == nil {
		return response.Error(c, errors.BadRequest("image is required", nil))
	}

	result, err := h.stampUseCase.Identify(c.Request().Context(), middleware.UserID(c), image)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, result)
}
