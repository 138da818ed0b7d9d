package usecase

import (
	"context"
	"math"
	"strconv"
	"strings"
	"time"

	"philatelysamaaj/internal/domain/entity"
	"philatelysamaaj/internal/domain/repository"
	"philatelysamaaj/internal/domain/service"
	"philatelysamaaj/pkg/errors"
)

type CatalogUseCase struct {
	catalogRepo repository.CatalogRepository
	media       mediaStore
	now         func() time.Time
}

func NewCatalogUseCase(catalogRepo repository.CatalogRepository, files service.FileUploadService, maxUploadBytes int64) *CatalogUseCase {
	return &CatalogUseCase{
		catalogRepo: catalogRepo,
		media:       mediaStore{files: files, maxBytes: maxUploadBytes},
		now:         time.Now,
	}
}

type CreateCatalogItemInput struct {
	Name                       string
	Category                   string
	Condition                  string
	Price                      string
	Description                string
	AcquisitionDate            string
	CollectionLocation         string
	Year                       int
	Rarity                     string
	PostalCircle               string
	ItemType                   string
	HasAuthenticityCertificate bool
	ExpertVerified             bool
	Image                      *MediaUpload
}

// ParsePrice accepts the price exactly as typed in the upload form.
func ParsePrice(raw string) (float64, error) {
	price, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(price) || math.IsInf(price, 0) {
		return 0, errors.BadRequest("price must be a number", err)
	}
	if price < 0 {
		return 0, errors.BadRequest("price must not be negative", nil)
	}
	return price, nil
}

func (uc *CatalogUseCase) CreateItem(ctx context.Context, userID string, input CreateCatalogItemInput) (*entity.CatalogItem, error) {
	if strings.TrimSpace(input.Category) == "" {
		return nil, errors.BadRequest("category is required", nil)
	}

	price, err := ParsePrice(input.Price)
	if err != nil {
		return nil, err
	}

	if input.Year != 0 && (input.Year < 1840 || input.Year > uc.now().Year()) {
		return nil, errors.BadRequest("year is out of range", nil)
	}

	item := &entity.CatalogItem{
		UserID:                     userID,
		Name:                       strings.TrimSpace(input.Name),
		Category:                   strings.TrimSpace(input.Category),
		Condition:                  input.Condition,
		Price:                      price,
		Description:                input.Description,
		AcquisitionDate:            input.AcquisitionDate,
		CollectionLocation:         input.CollectionLocation,
		Year:                       input.Year,
		Rarity:                     input.Rarity,
		PostalCircle:               input.PostalCircle,
		ItemType:                   input.ItemType,
		HasAuthenticityCertificate: input.HasAuthenticityCertificate,
		ExpertVerified:             input.ExpertVerified,
		CreatedAt:                  uc.now(),
	}

	uploaded, err := uc.media.upload(ctx, input.Image, FolderCatalog, true)
	if err != nil {
		return nil, err
	}
	if uploaded != nil {
		item.ImageURL = uploaded.URL
	}

	if err := uc.catalogRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (uc *CatalogUseCase) GetItem(ctx context.Context, id string) (*entity.CatalogItem, error) {
	return uc.catalogRepo.GetByID(ctx, id)
}

func (uc *CatalogUseCase) ListItems(ctx context.Context, filter entity.CatalogFilter, limit, offset int) ([]*entity.CatalogItem, int64, error) {
	if filter.YearFrom > 0 && filter.YearTo > 0 && filter.YearFrom > filter.YearTo {
		return nil, 0, errors.BadRequest("year_from must not be after year_to", nil)
	}
	filter.Search = strings.TrimSpace(filter.Search)
	return uc.catalogRepo.List(ctx, filter, limit, offset)
}

func (uc *CatalogUseCase) ListMyItems(ctx context.Context, userID string, limit, offset int) ([]*entity.CatalogItem, int64, error) {
	return uc.catalogRepo.List(ctx, entity.CatalogFilter{UserID: userID}, limit, offset)
}
