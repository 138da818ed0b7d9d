package handler

import (
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"philatelysamaaj/internal/adapter/api/middleware"
	"philatelysamaaj/internal/domain/entity"
	"philatelysamaaj/internal/usecase"
	"philatelysamaaj/pkg/errors"
	"philatelysamaaj/pkg/response"
	"philatelysamaaj/pkg/utils"
)

type CatalogHandler struct {
	catalogUseCase *usecase.CatalogUseCase
}

func NewCatalogHandler(catalogUseCase *usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{
		catalogUseCase: catalogUseCase,
	}
}

// CreateItem reads the multipart upload form. The price arrives as text and
// is parsed by the use case.
func (h *CatalogHandler) CreateItem(c echo.Context) error {
	var year int
	if raw := strings.TrimSpace(c.FormValue("year")); raw != "" {
		y, err := strconv.Atoi(raw)
		if err != nil || y < 0 {
			return response.Error(c, errors.BadRequest("year must be a number", err))
		}
		year = y
	}

	image, closeImage, err := formMedia(c, "image")
	if err != nil {
		return response.Error(c, err)
	}
	defer closeImage()

	item, err := h.catalogUseCase.CreateItem(c.Request().Context(), middleware.UserID(c), usecase.CreateCatalogItemInput{
		Name:                       c.FormValue("name"),
		Category:                   c.FormValue("category"),
		Condition:                  c.FormValue("condition"),
		Price:                      c.FormValue("price"),
		Description:                c.FormValue("description"),
		AcquisitionDate:            c.FormValue("acquisition_date"),
		CollectionLocation:         c.FormValue("collection_location"),
		Year:                       year,
		Rarity:                     c.FormValue("rarity"),
		PostalCircle:               c.FormValue("postal_circle"),
		ItemType:                   c.FormValue("item_type"),
		HasAuthenticityCertificate: formBool(c, "has_authenticity_certificate"),
		ExpertVerified:             formBool(c, "expert_verified"),
		Image:                      image,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, item)
}

func (h *CatalogHandler) GetItem(c echo.Context) error {
	item, err := h.catalogUseCase.GetItem(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, item)
}

func (h *CatalogHandler) ListItems(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)

	filter := entity.CatalogFilter{
		Category:     c.QueryParam("category"),
		PostalCircle: c.QueryParam("postal_circle"),
		Rarity:       c.QueryParam("rarity"),
		ItemType:     c.QueryParam("item_type"),
		YearFrom:     queryInt(c, "year_from"),
		YearTo:       queryInt(c, "year_to"),
		Search:       c.QueryParam("search"),
	}

	items, total, err := h.catalogUseCase.ListItems(c.Request().Context(), filter, pagination.PageSize, pagination.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, items, total, pagination.Page, pagination.PageSize)
}

func (h *CatalogHandler) ListMyItems(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)

	items, total, err := h.catalogUseCase.ListMyItems(c.Request().Context(), middleware.UserID(c), pagination.PageSize, pagination.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, items, total, pagination.Page, pagination.PageSize)
}
