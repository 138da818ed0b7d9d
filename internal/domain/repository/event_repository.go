package repository

import (
	"context"
	"time"

	"philatelysamaaj/internal/domain/entity"
)

type EventRepository interface {
	Create(ctx context.Context, event *entity.Event) error
	GetByID(ctx context.Context, id string) (*entity.Event, error)
	// List returns events ordered by start date. A non-nil endsAfter drops
	// events that finished before it.
	List(ctx context.Context, endsAfter *time.Time) ([]*entity.Event, error)
}
