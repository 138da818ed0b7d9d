package middleware

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"

	"philatelysamaaj/internal/usecase"
	"philatelysamaaj/pkg/errors"
	"philatelysamaaj/pkg/response"
)

// ContextUserID is the echo context key holding the caller's uid.
const ContextUserID = "uid"

type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (*usecase.VerifiedIdentity, error)
}

type AuthMiddleware struct {
	verifier TokenVerifier
}

func NewAuthMiddleware(verifier TokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

func bearerToken(c echo.Context) (string, bool) {
	header := c.Request().Header.Get("Authorization")
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}

func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if c.Request().Header.Get("Authorization") == "" {
			return response.Error(c, errors.Unauthorized("Authorization header is required", nil))
		}

		token, ok := bearerToken(c)
		if !ok {
			return response.Error(c, errors.Unauthorized("Invalid authorization format", nil))
		}

		identity, err := m.verifier.VerifyToken(c.Request().Context(), token)
		if err != nil {
			return response.Error(c, errors.Unauthorized("Invalid or expired token", err))
		}

		c.Set(ContextUserID, identity.UID)
		return next(c)
	}
}

// OptionalAuth sets the uid when a valid token is present and otherwise lets
// the request through anonymously.
func (m *AuthMiddleware) OptionalAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c)
		if !ok {
			return next(c)
		}
		if identity, err := m.verifier.VerifyToken(c.Request().Context(), token); err == nil {
			c.Set(ContextUserID, identity.UID)
		}
		return next(c)
	}
}

func (m *AuthMiddleware) UIDFromToken(ctx context.Context, token string) (string, error) {
	identity, err := m.verifier.VerifyToken(ctx, token)
	if err != nil {
		return "", err
	}
	return identity.UID, nil
}

// UserID returns the authenticated uid or an empty string.
func UserID(c echo.Context) string {
	uid, _ := c.Get(ContextUserID).(string)
	return uid
}
