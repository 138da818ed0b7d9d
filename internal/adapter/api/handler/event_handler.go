package handler

import (
	"math"
	"strconv"

	"github.com/labstack/echo/v4"

	"philatelysamaaj/internal/adapter/api/middleware"
	"philatelysamaaj/internal/usecase"
	"philatelysamaaj/pkg/errors"
	"philatelysamaaj/pkg/geo"
	"philatelysamaaj/pkg/response"
)

type EventHandler struct {
	eventUseCase *usecase.EventUseCase
}

func NewEventHandler(eventUseCase *usecase.EventUseCase) *EventHandler {
	return &EventHandler{
		eventUseCase: eventUseCase,
	}
}

// nearFromQuery reads ?lat=&lng=. Both or neither must be present.
func nearFromQuery(c echo.Context) (*geo.Coordinate, error) {
	rawLat, rawLng := c.QueryParam("lat"), c.QueryParam("lng")
	if rawLat == "" && rawLng == "" {
		return nil, nil
	}

	lat, errLat := strconv.ParseFloat(rawLat, 64)
	lng, errLng := strconv.ParseFloat(rawLng, 64)
	if errLat != nil || errLng != nil || math.IsNaN(lat) || math.IsNaN(lng) || lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return nil, errors.BadRequest("lat and lng must be valid coordinates", nil)
	}
	return &geo.Coordinate{Lat: lat, Lng: lng}, nil
}

func (h *EventHandler) ListEvents(c echo.Context) error {
	near, err := nearFromQuery(c)
	if err != nil {
		return response.Error(c, err)
	}
	upcoming, _ := strconv.ParseBool(c.QueryParam("upcoming"))

	events, err := h.eventUseCase.ListEvents(c.Request().Context(), near, upcoming)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, events)
}

func (h *EventHandler) GetEvent(c echo.Context) error {
	near, err := nearFromQuery(c)
	if err != nil {
		return response.Error(c, err)
	}

	event, err := h.eventUseCase.GetEvent(c.Request().Context(), c.Param("id"), near)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, event)
}

func (h *EventHandler) BookEvent(c echo.Context) error {
	booking, err := h.eventUseCase.BookEvent(c.Request().Context(), c.Param("id"), middleware.UserID(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, booking)
}

func (h *EventHandler) ListMyBookings(c echo.Context) error {
	bookings, err := h.eventUseCase.ListMyBookings(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, bookings)
}
