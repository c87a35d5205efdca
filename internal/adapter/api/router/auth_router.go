package router

import (
	"xenopets/internal/adapter/api/handler"

	"github.com/labstack/echo/v4"
)

func SetupAuthRouter(e *echo.Echo, h *handler.AuthHandler, m Middleware) {
	e.POST("/v1/auth/register", h.Register, m.RateLimit.Limit("auth-register"))
}
