package router

import (
	"xenopets/internal/adapter/api/handler"

	"github.com/labstack/echo/v4"
)

func SetupPlayerRouter(e *echo.Echo, h *handler.PlayerHandler, m Middleware) {
	players := e.Group("/v1/players")
	players.Use(m.Auth.Authenticate)

	// Search gets its own bucket so typing fast cannot starve other calls.
	players.GET("/search", h.SearchPlayers, m.RateLimit.Limit("player-search"))
	players.GET("/:id", h.GetPlayerProfile)

	admin := e.Group("/v1/admin/players")
	admin.Use(m.Auth.Authenticate)
	admin.Use(m.Admin.AdminOnly)

	admin.POST("/grant-currency", h.GrantCurrency)
}
