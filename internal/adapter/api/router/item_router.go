package router

import (
	"xenopets/internal/adapter/api/handler"

	"github.com/labstack/echo/v4"
)

func SetupItemRouter(e *echo.Echo, h *handler.ItemHandler, m Middleware) {
	// Public routes
	e.GET("/v1/items", h.ListItems)
	e.GET("/v1/items/:id", h.GetItem)

	// Admin routes
	admin := e.Group("/v1/admin/items")
	admin.Use(m.Auth.Authenticate)
	admin.Use(m.Admin.AdminOnly)

	admin.POST("", h.CreateItem)
	admin.PUT("/:id", h.UpdateItem)
	admin.DELETE("/:id", h.DeleteItem)
}
