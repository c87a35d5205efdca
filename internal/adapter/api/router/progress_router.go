package router

import (
	"xenopets/internal/adapter/api/handler"

	"github.com/labstack/echo/v4"
)

func SetupProgressRouter(e *echo.Echo, h *handler.ProgressHandler, m Middleware) {
	progress := e.Group("/v1/progress")
	progress.Use(m.Auth.Authenticate)

	progress.POST("/achievements/:id/advance", h.AdvanceAchievement)
	progress.POST("/quests/:id/advance", h.AdvanceQuest)
	progress.POST("/collectibles/:id/collect", h.CollectCollectible)
}
