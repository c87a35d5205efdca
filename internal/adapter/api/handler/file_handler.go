package handler

import (
	"xenopets/internal/infrastructure/storage"
	"xenopets/internal/usecase"
	"xenopets/pkg/errors"
	"xenopets/pkg/logger"
	"xenopets/pkg/response"

	"github.com/labstack/echo/v4"
)

const maxUploadBytes = 5 << 20

type FileHandler struct {
	storage *storage.CloudStorageClient
	catalog *usecase.CatalogUseCase
}

func NewFileHandler(storageClient *storage.CloudStorageClient, catalog *usecase.CatalogUseCase) *FileHandler {
	return &FileHandler{
		storage: storageClient,
		catalog: catalog,
	}
}

// UploadItemImage stores artwork in the bucket and patches the item's
// image URL in one step.
func (h *FileHandler) UploadItemImage(c echo.Context) error {
	itemID := c.Param("id")
	existing, ok := h.catalog.GetItem(itemID)
	if !ok {
		return response.Error(c, itemNotFound())
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.Error(c, errors.BadRequest("No file provided", err))
	}
	if fileHeader.Size > maxUploadBytes {
		return response.Error(c, errors.BadRequest("File exceeds the 5MB limit", nil))
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType != "image/png" && contentType != "image/jpeg" && contentType != "image/gif" {
		return response.Error(c, errors.BadRequest("Only PNG, JPEG and GIF images are accepted", nil))
	}

	src, err := fileHeader.Open()
	if err != nil {
		return response.Error(c, errors.Internal("Failed to read upload", err))
	}
	defer src.Close()

	url, err := h.storage.UploadImage(c.Request().Context(), src, contentType, "items")
	if err != nil {
		return response.Error(c, errors.Internal("Failed to store image", err))
	}

	item, err := h.catalog.UpdateItem(itemID, usecase.UpdateItemInput{ImageURL: &url})
	if err != nil {
		return response.Error(c, err)
	}

	// Replaced artwork is garbage in the bucket; cleanup is best effort.
	if existing.ImageURL != "" && existing.ImageURL != url {
		if err := h.storage.DeleteImage(c.Request().Context(), existing.ImageURL); err != nil {
			logger.Warn("Failed to delete old artwork for %s: %v", itemID, err)
		}
	}

	return response.Success(c, item)
}

// UploadNPCImage stores NPC artwork and returns the public URL. NPC records
// keep their artwork URL from shop creation, so the caller applies it.
func (h *FileHandler) UploadNPCImage(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.Error(c, errors.BadRequest("No file provided", err))
	}
	if fileHeader.Size > maxUploadBytes {
		return response.Error(c, errors.BadRequest("File exceeds the 5MB limit", nil))
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType != "image/png" && contentType != "image/jpeg" && contentType != "image/gif" {
		return response.Error(c, errors.BadRequest("Only PNG, JPEG and GIF images are accepted", nil))
	}

	src, err := fileHeader.Open()
	if err != nil {
		return response.Error(c, errors.Internal("Failed to read upload", err))
	}
	defer src.Close()

	url, err := h.storage.UploadImage(c.Request().Context(), src, contentType, "npcs")
	if err != nil {
		return response.Error(c, errors.Internal("Failed to store image", err))
	}

	return response.Success(c, map[string]string{"url": url})
}
