package middleware

import (
	"net/http"

	"xenopets/internal/domain/repository"
	"xenopets/pkg/errors"
	"xenopets/pkg/logger"

	"github.com/labstack/echo/v4"
)

// AdminMiddleware gates the dashboard's mutation endpoints on the isAdmin
// flag of the authenticated user's record.
type AdminMiddleware struct {
	userRepo repository.UserRepository
}

func NewAdminMiddleware(userRepo repository.UserRepository) *AdminMiddleware {
	return &AdminMiddleware{
		userRepo: userRepo,
	}
}

func (m *AdminMiddleware) AdminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		uid, ok := c.Get("uid").(string)
		if !ok || uid == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
		}

		user, err := m.userRepo.GetByID(c.Request().Context(), uid)
		if err != nil {
			// A token for a uid with no player record carries no privileges.
			if errors.IsNotFound(err) {
				return echo.NewHTTPError(http.StatusForbidden, "Admin privileges required")
			}
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to verify admin privileges")
		}

		if !user.IsAdmin {
			logger.Warn("Non-admin %s hit an admin endpoint: %s", uid, c.Path())
			return echo.NewHTTPError(http.StatusForbidden, "Admin privileges required")
		}

		return next(c)
	}
}
