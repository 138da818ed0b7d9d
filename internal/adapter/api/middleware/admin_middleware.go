package middleware

import (
	"github.com/labstack/echo/v4"

	"philatelysamaaj/internal/domain/entity"
	"philatelysamaaj/internal/domain/repository"
	"philatelysamaaj/pkg/errors"
	"philatelysamaaj/pkg/response"
)

const ContextIsAdmin = "isAdmin"

type AdminMiddleware struct {
	userRepo repository.UserRepository
}

func NewAdminMiddleware(userRepo repository.UserRepository) *AdminMiddleware {
	return &AdminMiddleware{
		userRepo: userRepo,
	}
}

// AdminOnly must run after Authenticate.
func (m *AdminMiddleware) AdminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		uid := UserID(c)
		if uid == "" {
			return response.Error(c, errors.Unauthorized("Authentication required", nil))
		}

		user, err := m.userRepo.GetByID(c.Request().Context(), uid)
		if err != nil {
			if errors.Is(err, "NOT_FOUND") {
				return response.Error(c, errors.Forbidden("Admin privileges required", nil))
			}
			return response.Error(c, errors.Internal("Failed to verify admin privileges", err))
		}

		if user.Role != entity.RoleAdmin {
			return response.Error(c, errors.Forbidden("Admin privileges required", nil))
		}

		c.Set(ContextIsAdmin, true)
		return next(c)
	}
}

// LoadRole marks admins without rejecting anyone else.
func (m *AdminMiddleware) LoadRole(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if uid := UserID(c); uid != "" {
			if user, err := m.userRepo.GetByID(c.Request().Context(), uid); err == nil && user.Role == entity.RoleAdmin {
				c.Set(ContextIsAdmin, true)
			}
		}
		return next(c)
	}
}

func IsAdmin(c echo.Context) bool {
	admin, _ := c.Get(ContextIsAdmin).(bool)
	return admin
}
