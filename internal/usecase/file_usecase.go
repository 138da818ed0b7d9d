package usecase

import (
	"context"
	"regexp"
	"strings"
	"time"

	"philatelysamaaj/internal/domain/entity"
	"philatelysamaaj/internal/domain/repository"
	"philatelysamaaj/internal/domain/service"
	"philatelysamaaj/pkg/errors"
	"philatelysamaaj/pkg/logger"
)

var folderUnsafe = regexp.MustCompile(`[^a-z0-9_\-/]+`)

type FileUseCase struct {
	fileRepo repository.FileMetadataRepository
	files    service.FileUploadService
	media    mediaStore
	now      func() time.Time
}

func NewFileUseCase(fileRepo repository.FileMetadataRepository, files service.FileUploadService, maxUploadBytes int64) *FileUseCase {
	return &FileUseCase{
		fileRepo: fileRepo,
		files:    files,
		media:    mediaStore{files: files, maxBytes: maxUploadBytes},
		now:      time.Now,
	}
}

// SanitizeFolder keeps folder names to lowercase path segments and falls
// back to the generic uploads folder.
func SanitizeFolder(folder string) string {
	folder = folderUnsafe.ReplaceAllString(strings.ToLower(strings.TrimSpace(folder)), "")
	folder = strings.Trim(strings.ReplaceAll(folder, "..", ""), "/")
	if folder == "" {
		return FolderUploads
	}
	return folder
}

func (uc *FileUseCase) Upload(ctx context.Context, userID, folder string, file *MediaUpload) (*entity.FileMetadata, error) {
	if file == nil {
		return nil, errors.BadRequest("Missing or invalid file", nil)
	}

	folder = SanitizeFolder(folder)
	result, err := uc.media.upload(ctx, file, folder, false)
	if err != nil {
		return nil, err
	}

	metadata := &entity.FileMetadata{
		URL:        result.URL,
		ObjectName: result.ObjectName,
		Folder:     folder,
		UploadedBy: userID,
		Filename:   file.Filename,
		FileType:   file.ContentType,
		FileSize:   result.Size,
		CreatedAt:  uc.now(),
	}

	if err := uc.fileRepo.Create(ctx, metadata); err != nil {
		if delErr := uc.files.DeleteFile(ctx, result.ObjectName); delErr != nil {
			logger.Error("failed to remove orphaned object %s: %v", result.ObjectName, delErr)
		}
		return nil, errors.Internal("Failed to save file metadata", err)
	}

	return metadata, nil
}

func (uc *FileUseCase) ListMine(ctx context.Context, userID string, limit, offset int) ([]*entity.FileMetadata, int64, error) {
	return uc.fileRepo.ListByUploader(ctx, userID, limit, offset)
}

// Delete removes the object and its metadata. Only the uploader or an admin may
// delete a file.
func (uc *FileUseCase) Delete(ctx context.Context, id, userID string, isAdmin bool) error {
	metadata, err := uc.fileRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if metadata.UploadedBy != userID && !isAdmin {
		return errors.Forbidden("You don't have permission to delete this file", nil)
	}

	if err := uc.files.DeleteFile(ctx, metadata.ObjectName); err != nil {
		return errors.Internal("Failed to delete file", err)
	}

	return uc.fileRepo.Delete(ctx, id)
}
