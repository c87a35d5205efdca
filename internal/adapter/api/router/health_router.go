package router

import (
	"xenopets/internal/adapter/api/handler"

	"github.com/labstack/echo/v4"
)

func SetupHealthRouter(e *echo.Echo, h *handler.HealthHandler) {
	e.GET("/health", h.Check)
}
