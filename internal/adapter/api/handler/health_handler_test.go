package handler

import (
	"context"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestHealthHandler_CheckHealth(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	h := NewHealthHandler(nil)
	if assert.NoError(t, h.CheckHealth(e.NewContext(req, rec))) {
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"ok"`)
	}
}

func TestHealthHandler_CheckReady(t *testing.T) {
	e := echo.New()

	h := NewHealthHandler(map[string]HealthCheck{
		"postgres": func(ctx context.Context) error { return nil },
	})
	rec := httptest.NewRecorder()
	assert.NoError(t, h.CheckReady(e.NewContext(httptest.NewRequest(http.MethodGet, "/ready", nil), rec)))
	assert.Equal(t, http.StatusOK, rec.Code)

	h = NewHealthHandler(map[string]HealthCheck{
		"postgres": func(ctx context.Context) error { return stderrors.New("connection refused") },
	})
	rec = httptest.NewRecorder()
	assert.NoError(t, h.CheckReady(e.NewContext(httptest.NewRequest(http.MethodGet, "/ready", nil), rec)))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "connection refused")
}
