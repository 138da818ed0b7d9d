package usecase

import (
	"context"
	"io"

	"philatelysamaaj/internal/domain/entity"
	"philatelysamaaj/internal/domain/service"
	"philatelysamaaj/pkg/errors"
)

type StampUseCase struct {
	identifier service.StampIdentifier
	limiter    RateLimiter
	maxBytes   int64
}

// NewStampUseCase accepts a nil identifier; every call then reports the
// feature as unavailable.
func NewStampUseCase(identifier service.StampIdentifier, limiter RateLimiter, maxBytes int64) *StampUseCase {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxUploads
	}
	return &StampUseCase{
		identifier: identifier,
		limiter:    limiter,
		maxBytes:   maxBytes,
	}
}

func (uc *StampUseCase) Identify(ctx context.Context, userID string, image *MediaUpload) (*entity.StampIdentification, error) {
	if uc.identifier == nil {
		return nil, errors.Unavailable("Stamp identification is not configured", nil)
	}
	if image == nil {
		return nil, errors.BadRequest("image is required", nil)
	}
	if MediaKind(image.ContentType) != "image" || !IsAllowedMediaType(image.ContentType) {
		return nil, errors.BadRequest("Only images are accepted", nil)
	}
	if image.Size > uc.maxBytes {
		return nil, errors.BadRequest("Image is too large", nil)
	}
	if ok, wait := uc.limiter.Allow(userID, ActionIdentifyStamp); !ok {
		return nil, errors.TooManyRequests("identification", wait)
	}

	data, err := io.ReadAll(io.LimitReader(image.Reader, uc.maxBytes+1))
	if err != nil {
		return nil, errors.BadRequest("Unable to read image", err)
	}

	result, err := uc.identifier.Identify(ctx, data, image.ContentType)
	if err != nil {
		return nil, errors.Internal("Failed to identify stamp", err)
	}
	return result, nil
}
