package router

import (
	"xenopets/internal/adapter/api/handler"

	"github.com/labstack/echo/v4"
)

func SetupWebSocketRouter(e *echo.Echo, h *handler.WebSocketHandler, m Middleware) {
	e.GET("/ws", h.Connect, m.Auth.Authenticate)
}
