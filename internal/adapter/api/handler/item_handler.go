package handler

import (
	"xenopets/internal/domain/entity"
	"xenopets/internal/usecase"
	"xenopets/pkg/response"
	"xenopets/pkg/utils"

	"github.com/labstack/echo/v4"
)

type ItemHandler struct {
	catalog *usecase.CatalogUseCase
}

func NewItemHandler(catalog *usecase.CatalogUseCase) *ItemHandler {
	return &ItemHandler{
		catalog: catalog,
	}
}

type createItemRequest struct {
	Name        string                     `json:"name" validate:"required"`
	Description string                     `json:"description" validate:"required"`
	Type        string                     `json:"type" validate:"required"`
	Rarity      string                     `json:"rarity" validate:"required"`
	Price       int64                      `json:"price"`
	Currency    string                     `json:"currency" validate:"omitempty,oneof=xenocoins cash"`
	Effects     map[entity.StatKey]float64 `json:"effects"`
	DailyLimit  int                        `json:"daily_limit"`
	Slot        string                     `json:"slot" validate:"omitempty,oneof=head torso legs gloves footwear"`
	ImageURL    string                     `json:"image_url"`
}

func (h *ItemHandler) CreateItem(c echo.Context) error {
	var req createItemRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	item, err := h.catalog.CreateItem(usecase.CreateItemInput{
		Name:        req.Name,
		Description: req.Description,
		Type:        entity.ItemType(req.Type),
		Rarity:      entity.ItemRarity(req.Rarity),
		Price:       req.Price,
		Currency:    entity.CurrencyKind(req.Currency),
		Effects:     req.Effects,
		DailyLimit:  req.DailyLimit,
		Slot:        entity.EquipmentSlot(req.Slot),
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, item)
}

type updateItemRequest struct {
	Name        *string                    `json:"name"`
	Description *string                    `json:"description"`
	Type        *string                    `json:"type"`
	Rarity      *string                    `json:"rarity"`
	Price       *int64                     `json:"price"`
	Currency    *string                    `json:"currency"`
	Effects     map[entity.StatKey]float64 `json:"effects"`
	DailyLimit  *int                       `json:"daily_limit"`
	ImageURL    *string                    `json:"image_url"`
}

func (h *ItemHandler) UpdateItem(c echo.Context) error {
	var req updateItemRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	patch := usecase.UpdateItemInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Effects:     req.Effects,
		DailyLimit:  req.DailyLimit,
		ImageURL:    req.ImageURL,
	}
	if req.Type != nil {
		t := entity.ItemType(*req.Type)
		patch.Type = &t
	}
	if req.Rarity != nil {
		r := entity.ItemRarity(*req.Rarity)
		patch.Rarity = &r
	}
	if req.Currency != nil {
		k := entity.CurrencyKind(*req.Currency)
		patch.Currency = &k
	}

	item, err := h.catalog.UpdateItem(c.Param("id"), patch)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, item)
}

func (h *ItemHandler) DeleteItem(c echo.Context) error {
	if err := h.catalog.DeleteItem(c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"status": "deleted"})
}

func (h *ItemHandler) GetItem(c echo.Context) error {
	item, ok := h.catalog.GetItem(c.Param("id"))
	if !ok {
		return response.Error(c, itemNotFound())
	}

	return response.Success(c, item)
}

// ListItems pages through the catalog in creation order.
func (h *ItemHandler) ListItems(c echo.Context) error {
	params := utils.GetPaginationParams(c)
	page, total := utils.Paginate(h.catalog.ListItems(), params)

	return response.Paginated(c, page, total, params.Page, params.PageSize)
}
