package router

import (
	"xenopets/internal/adapter/api/handler"
	"xenopets/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

// Handlers bundles everything Setup needs so main only wires it once.
type Handlers struct {
	Auth         *handler.AuthHandler
	Item         *handler.ItemHandler
	Shop         *handler.ShopHandler
	Player       *handler.PlayerHandler
	Stats        *handler.StatsHandler
	Progress     *handler.ProgressHandler
	Notification *handler.NotificationHandler
	File         *handler.FileHandler
	Health       *handler.HealthHandler
	WebSocket    *handler.WebSocketHandler
}

type Middleware struct {
	Auth      *middleware.AuthMiddleware
	Admin     *middleware.AdminMiddleware
	RateLimit *middleware.RateLimitMiddleware
}

func Setup(e *echo.Echo, h Handlers, m Middleware) {
	SetupAuthRouter(e, h.Auth, m)
	SetupItemRouter(e, h.Item, m)
	SetupShopRouter(e, h.Shop, m)
	SetupPlayerRouter(e, h.Player, m)
	SetupStatsRouter(e, h.Stats, m)
	SetupProgressRouter(e, h.Progress, m)
	SetupNotificationRouter(e, h.Notification, m)
	SetupFileRouter(e, h.File, m)
	SetupWebSocketRouter(e, h.WebSocket, m)
	SetupHealthRouter(e, h.Health)
}
