package repository

import (
	"context"

	"philatelysamaaj/internal/domain/entity"
)

type ThreadRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Thread, error)
	// AppendMessage creates the thread from seed when it does not exist yet
	// and appends msg to the sender's list in one transaction.
	AppendMessage(ctx context.Context, seed *entity.Thread, msg entity.ThreadMessage) (*entity.Thread, error)
	ListByParticipant(ctx context.Context, userID string) ([]*entity.Thread, error)
}
