package router

import (
	"xenopets/internal/adapter/api/handler"

	"github.com/labstack/echo/v4"
)

func SetupNotificationRouter(e *echo.Echo, h *handler.NotificationHandler, m Middleware) {
	notifications := e.Group("/v1/notifications")
	notifications.Use(m.Auth.Authenticate)

	notifications.GET("", h.ListNotifications)
	notifications.PATCH("/:id/read", h.MarkRead)
}
