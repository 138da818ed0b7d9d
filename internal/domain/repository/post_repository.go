package repository

import (
	"context"

	"philatelysamaaj/internal/domain/entity"
)

type PostMutation func(post *entity.Post) error

type PostRepository interface {
	Create(ctx context.Context, post *entity.Post) error
	GetByID(ctx context.Context, id string) (*entity.Post, error)
	// List returns posts newest first.
	List(ctx context.Context, limit, offset int) ([]*entity.Post, int64, error)
	Mutate(ctx context.Context, id string, fn PostMutation) (*entity.Post, error)
	Delete(ctx context.Context, id string) error
}
