package router

import (
	"github.com/labstack/echo/v4"

	"philatelysamaaj/internal/adapter/api/handler"
)

func SetupFileRouter(v1 *echo.Group, m Middlewares) {
	fileHandler := handler.GetFileHandler()
	stampHandler := handler.GetStampHandler()

	files := v1.Group("/files", m.Auth.Authenticate)
	files.POST("/upload", fileHandler.UploadFile)
	files.GET("", fileHandler.ListMyFiles)
	files.DELETE("/:id", fileHandler.DeleteFile, m.Admin.LoadRole)

	v1.POST("/stamps/identify", stampHandler.Identify, m.Auth.Authenticate)
}
