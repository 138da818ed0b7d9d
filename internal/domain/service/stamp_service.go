package service

import (
	"context"

	"philatelysamaaj/internal/domain/entity"
)

// StampIdentifier guesses what stamp is shown in an image.
type StampIdentifier interface {
	Identify(ctx context.Context, image []byte, mimeType string) (*entity.StampIdentification, error)
}
