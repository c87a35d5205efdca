package router

import (
	"xenopets/internal/adapter/api/handler"

	"github.com/labstack/echo/v4"
)

func SetupShopRouter(e *echo.Echo, h *handler.ShopHandler, m Middleware) {
	// Public routes
	e.GET("/v1/shops", h.ListShops)
	e.GET("/v1/shops/:id", h.GetShop)
	e.GET("/v1/npcs", h.ListNPCs)

	// Admin routes
	admin := e.Group("/v1/admin/shops")
	admin.Use(m.Auth.Authenticate)
	admin.Use(m.Admin.AdminOnly)

	admin.POST("", h.CreateShop)
	admin.DELETE("/:id", h.DeleteShop)
	admin.POST("/:id/items", h.AddItemToShop)
}
