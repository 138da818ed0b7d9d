package repository

import (
	"context"

	"philatelysamaaj/internal/domain/entity"
)

type CatalogRepository interface {
	Create(ctx context.Context, item *entity.CatalogItem) error
	GetByID(ctx context.Context, id string) (*entity.CatalogItem, error)
	List(ctx context.Context, filter entity.CatalogFilter, limit, offset int) ([]*entity.CatalogItem, int64, error)
}
