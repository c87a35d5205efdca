package router

import (
	"xenopets/internal/adapter/api/handler"

	"github.com/labstack/echo/v4"
)

func SetupStatsRouter(e *echo.Echo, h *handler.StatsHandler, m Middleware) {
	admin := e.Group("/v1/admin/statistics")
	admin.Use(m.Auth.Authenticate)
	admin.Use(m.Admin.AdminOnly)

	admin.GET("", h.GetStatistics)
	admin.POST("/refresh", h.RefreshStatistics)
}
