package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"philatelysamaaj/internal/usecase"
	apperrors "philatelysamaaj/pkg/errors"
)

// formMedia opens the named multipart file. A missing file yields a nil upload
// and a no-op close.
func formMedia(c echo.Context, field string) (*usecase.MediaUpload, func(), error) {
	noop := func() {}

	file, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, noop, nil
		}
		return nil, noop, apperrors.BadRequest("Missing or invalid file", err)
	}

	src, err := file.Open()
	if err != nil {
		return nil, noop, apperrors.Internal("Unable to read file", err)
	}

	return &usecase.MediaUpload{
		Reader:      src,
		Filename:    file.Filename,
		ContentType: file.Header.Get("Content-Type"),
		Size:        file.Size,
	}, func() { src.Close() }, nil
}

func formBool(c echo.Context, field string) bool {
	v, _ := strconv.ParseBool(strings.TrimSpace(c.FormValue(field)))
	return v
}

func queryInt(c echo.Context, name string) int {
	v, _ := strconv.Atoi(c.QueryParam(name))
	return v
}
