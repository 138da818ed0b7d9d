package usecase

import (
	"context"
	"fmt"
	"io"
	"strings"

	"philatelysamaaj/internal/domain/service"
	"philatelysamaaj/pkg/errors"
)

const (
	FolderPostMedia   = "post-media"
	FolderCatalog     = "philatelic_items"
	FolderAuctions    = "auctions"
	FolderUploads     = "uploads"
	DefaultMaxUploads = 5 * 1024 * 1024
)

var allowedMediaTypes = map[string]bool{
	"image/jpeg":      true,
	"image/jpg":       true,
	"image/png":       true,
	"image/gif":       true,
	"image/webp":      true,
	"video/mp4":       true,
	"application/pdf": true,
}

// MediaUpload is a file taken from a multipart form.
type MediaUpload struct {
	Reader      io.Reader
	Filename    string
	ContentType string
	Size        int64
}

func IsAllowedMediaType(contentType string) bool {
	return allowedMediaTypes[strings.ToLower(contentType)]
}

// MediaKind maps a content type to the coarse kind stored on posts.
func MediaKind(contentType string) string {
	contentType = strings.ToLower(contentType)
	switch {
	case strings.HasPrefix(contentType, "image/"):
		return "image"
	case strings.HasPrefix(contentType, "video/"):
		return "video"
	default:
		return "file"
	}
}

type mediaStore struct {
	files    service.FileUploadService
	maxBytes int64
}

func (s mediaStore) upload(ctx context.Context, m *MediaUpload, folder string, imagesOnly bool) (*service.UploadResult, error) {
	if m == nil {
		return nil, nil
	}
	limit := s.maxBytes
	if limit <= 0 {
		limit = DefaultMaxUploads
	}
	if m.Size > limit {
		return nil, errors.BadRequest(fmt.Sprintf("File size exceeds maximum allowed (%dMB)", limit/(1024*1024)), nil)
	}
	if !IsAllowedMediaType(m.ContentType) {
		return nil, errors.BadRequest("File type not supported", nil)
	}
	if imagesOnly && MediaKind(m.ContentType) != "image" {
		return nil, errors.BadRequest("Only images are accepted", nil)
	}

	result, err := s.files.UploadFile(ctx, m.Reader, m.ContentType, folder)
	if err != nil {
		return nil, errors.Internal("Failed to upload file", err)
	}
	return result, nil
}
