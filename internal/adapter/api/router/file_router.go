package router

import (
	"xenopets/internal/adapter/api/handler"

	"github.com/labstack/echo/v4"
)

func SetupFileRouter(e *echo.Echo, h *handler.FileHandler, m Middleware) {
	admin := e.Group("/v1/admin/files")
	admin.Use(m.Auth.Authenticate)
	admin.Use(m.Admin.AdminOnly)

	admin.POST("/items/:id/image", h.UploadItemImage, m.RateLimit.Limit("file-upload"))
	admin.POST("/npcs/image", h.UploadNPCImage, m.RateLimit.Limit("file-upload"))
}
