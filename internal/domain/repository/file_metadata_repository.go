package repository

import (
	"context"

	"philatelysamaaj/internal/domain/entity"
)

type FileMetadataRepository interface {
	Create(ctx context.Context, metadata *entity.FileMetadata) error
	GetByID(ctx context.Context, id string) (*entity.FileMetadata, error)
	ListByUploader(ctx context.Context, userID string, limit, offset int) ([]*entity.FileMetadata, int64, error)
	Delete(ctx context.Context, id string) error
}
