package handler

import (
	"github.com/labstack/echo/v4"

	"philatelysamaaj/internal/adapter/api/middleware"
	"philatelysamaaj/internal/usecase"
	"philatelysamaaj/pkg/errors"
	"philatelysamaaj/pkg/logger"
	"philatelysamaaj/pkg/response"
	"philatelysamaaj/pkg/utils"
)

type FileHandler struct {
	fileUseCase *usecase.FileUseCase
}

func NewFileHandler(fileUseCase *usecase.FileUseCase) *FileHandler {
	return &FileHandler{
		fileUseCase: fileUseCase,
	}
}

func (h *FileHandler) UploadFile(c echo.Context) error {
	file, closeFile, err := formMedia(c, "file")
	if err != nil {
		return response.Error(c, err)
	}
	defer closeFile()
	if file == nil {
		return response.Error(c, errors.BadRequest("Missing or invalid file", nil))
	}

	logger.Debug("Received file: %s, size: %d bytes, type: %s", file.Filename, file.Size, file.ContentType)

	metadata, err := h.fileUseCase.Upload(c.Request().Context(), middleware.UserID(c), c.FormValue("folder"), file)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, map[string]interface{}{
		"id":       metadata.ID,
		"url":      metadata.URL,
		"filename": metadata.Filename,
		"size":     metadata.FileSize,
	})
}

func (h *FileHandler) ListMyFiles(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)

	files, total, err := h.fileUseCase.ListMine(c.Request().Context(), middleware.UserID(c), pagination.PageSize, pagination.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, files, total, pagination.Page, pagination.PageSize)
}

func (h *FileHandler) DeleteFile(c echo.Context) error {
	if err := h.fileUseCase.Delete(c.Request().Context(), c.Param("id"), middleware.UserID(c), middleware.IsAdmin(c)); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"message": "File deleted successfully"})
}
