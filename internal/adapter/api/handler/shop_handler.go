package handler

import (
	"xenopets/internal/domain/entity"
	"xenopets/internal/usecase"
	"xenopets/pkg/errors"
	"xenopets/pkg/response"

	"github.com/labstack/echo/v4"
)

func itemNotFound() error {
	return errors.NotFound("Item", nil)
}

type ShopHandler struct {
	catalog *usecase.CatalogUseCase
}

func NewShopHandler(catalog *usecase.CatalogUseCase) *ShopHandler {
	return &ShopHandler{
		catalog: catalog,
	}
}

type createShopRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
	NPCName     string `json:"npc_name" validate:"required"`
	NPCDialogue string `json:"npc_dialogue" validate:"required"`
}

func (h *ShopHandler) CreateShop(c echo.Context) error {
	var req createShopRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	shop, npc, err := h.catalog.CreateShop(usecase.CreateShopInput{
		Name:        req.Name,
		Description: req.Description,
		NPCName:     req.NPCName,
		NPCDialogue: req.NPCDialogue,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, map[string]interface{}{
		"shop": shop,
		"npc":  npc,
	})
}

func (h *ShopHandler) DeleteShop(c echo.Context) error {
	if err := h.catalog.DeleteShop(c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"status": "deleted"})
}

func (h *ShopHandler) GetShop(c echo.Context) error {
	shop, ok := h.catalog.GetShop(c.Param("id"))
	if !ok {
		return response.Error(c, errors.NotFound("Shop", nil))
	}

	return response.Success(c, shop)
}

func (h *ShopHandler) ListShops(c echo.Context) error {
	return response.Success(c, h.catalog.ListShops())
}

func (h *ShopHandler) ListNPCs(c echo.Context) error {
	return response.Success(c, h.catalog.ListNPCs())
}

type addShopItemRequest struct {
	ItemID     string `json:"item_id" validate:"required"`
	Price      int64  `json:"price" validate:"gte=0"`
	Currency   string `json:"currency" validate:"omitempty,oneof=xenocoins cash"`
	StockLimit int    `json:"stock_limit" validate:"gte=0"`
}

func (h *ShopHandler) AddItemToShop(c echo.Context) error {
	var req addShopItemRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	listing, err := h.catalog.AddToShop(
		c.Param("id"),
		req.ItemID,
		req.Price,
		entity.CurrencyKind(req.Currency),
		req.StockLimit,
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, listing)
}
