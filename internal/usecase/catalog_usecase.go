package usecase

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"xenopets/internal/domain/entity"
	"xenopets/pkg/errors"
)

// CatalogUseCase owns the universal item catalog plus the shop and NPC sets
// that reference it. All state lives in memory behind one mutex: mutations
// are atomic and visible to the next read, and the presentation layer only
// ever holds copies plus a change subscription.
type CatalogUseCase struct {
	mu sync.RWMutex

	items     map[string]*entity.Item
	itemOrder []string

	shops     map[string]*entity.Shop
	shopOrder []string

	npcs     map[string]*entity.NPC
	npcOrder []string

	subscribers []func()
}

func NewCatalogUseCase() *CatalogUseCase {
	return &CatalogUseCase{
		items: make(map[string]*entity.Item),
		shops: make(map[string]*entity.Shop),
		npcs:  make(map[string]*entity.NPC),
	}
}

// Subscribe registers a callback invoked after every committed mutation.
// Callbacks run outside the lock.
func (uc *CatalogUseCase) Subscribe(fn func()) {
	uc.mu.Lock()
	uc.subscribers = append(uc.subscribers, fn)
	uc.mu.Unlock()
}

func (uc *CatalogUseCase) notify() {
	uc.mu.RLock()
	subs := make([]func(), len(uc.subscribers))
	copy(subs, uc.subscribers)
	uc.mu.RUnlock()

	for _, fn := range subs {
		fn()
	}
}

type CreateItemInput struct {
	Name        string                     `json:"name"`
	Description string                     `json:"description"`
	Type        entity.ItemType            `json:"type"`
	Rarity      entity.ItemRarity          `json:"rarity"`
	Price       int64                      `json:"price"`
	Currency    entity.CurrencyKind        `json:"currency"`
	Effects     map[entity.StatKey]float64 `json:"effects"`
	DailyLimit  int                        `json:"daily_limit"`
	Slot        entity.EquipmentSlot       `json:"slot"`
	ImageURL    string                     `json:"image_url"`
}

// CreateItem adds a catalog template. Price defaults to 0, currency to
// xenocoins, effects to an empty map; quantity is always 1 for templates.
// The catalog is untouched when validation fails.
func (uc *CatalogUseCase) CreateItem(input CreateItemInput) (*entity.Item, error) {
	currency := input.Currency
	if currency == "" {
		currency = entity.CurrencyXenocoins
	}
	effects := input.Effects
	if effects == nil {
		effects = map[entity.StatKey]float64{}
	}

	item := &entity.Item{
		Name:        input.Name,
		Description: input.Description,
		Type:        input.Type,
		Rarity:      input.Rarity,
		Price:       input.Price,
		Currency:    currency,
		Effects:     effects,
		DailyLimit:  input.DailyLimit,
		Slot:        input.Slot,
		ImageURL:    input.ImageURL,
		Quantity:    1,
		CreatedAt:   time.Now(),
	}

	if err := item.Validate(); err != nil {
		return nil, err
	}

	uc.mu.Lock()
	item.ID = uc.nextItemID()
	uc.items[item.ID] = item
	uc.itemOrder = append(uc.itemOrder, item.ID)
	uc.mu.Unlock()

	uc.notify()
	return copyItem(item), nil
}

// nextItemID builds a millisecond-timestamped id and resolves collisions
// with a counter suffix. Callers must hold the write lock.
func (uc *CatalogUseCase) nextItemID() string {
	base := fmt.Sprintf("item-%d", time.Now().UnixMilli())
	id := base
	for n := 1; ; n++ {
		if _, taken := uc.items[id]; !taken {
			return id
		}
		id = fmt.Sprintf("%s-%d", base, n)
	}
}

type UpdateItemInput struct {
	Name        *string                    `json:"name"`
	Description *string                    `json:"description"`
	Type        *entity.ItemType           `json:"type"`
	Rarity      *entity.ItemRarity         `json:"rarity"`
	Price       *int64                     `json:"price"`
	Currency    *entity.CurrencyKind       `json:"currency"`
	Effects     map[entity.StatKey]float64 `json:"effects"`
	DailyLimit  *int                       `json:"daily_limit"`
	ImageURL    *string                    `json:"image_url"`
}

// UpdateItem merges the patch onto the existing record. The merge is staged
// on a copy so a validation failure leaves the catalog unchanged.
func (uc *CatalogUseCase) UpdateItem(id string, patch UpdateItemInput) (*entity.Item, error) {
	uc.mu.Lock()

	existing, ok := uc.items[id]
	if !ok {
		uc.mu.Unlock()
		return nil, errors.NotFound("Item", nil)
	}

	staged := *existing
	if patch.Name != nil {
		staged.Name = *patch.Name
	}
	if patch.Description != nil {
		staged.Description = *patch.Description
	}
	if patch.Type != nil {
		staged.Type = *patch.Type
	}
	if patch.Rarity != nil {
		staged.Rarity = *patch.Rarity
	}
	if patch.Price != nil {
		staged.Price = *patch.Price
	}
	if patch.Currency != nil {
		staged.Currency = *patch.Currency
	}
	if patch.Effects != nil {
		staged.Effects = patch.Effects
	}
	if patch.DailyLimit != nil {
		staged.DailyLimit = *patch.DailyLimit
	}
	if patch.ImageURL != nil {
		staged.ImageURL = *patch.ImageURL
	}

	if err := staged.Validate(); err != nil {
		uc.mu.Unlock()
		return nil, err
	}

	uc.items[id] = &staged
	uc.mu.Unlock()

	uc.notify()
	return copyItem(&staged), nil
}

// DeleteItem removes a catalog template. Deleting an item that a shop still
// lists is rejected; cascading to an "Unknown Item" display is not
// supported.
func (uc *CatalogUseCase) DeleteItem(id string) error {
	uc.mu.Lock()

	if _, ok := uc.items[id]; !ok {
		uc.mu.Unlock()
		return errors.NotFound("Item", nil)
	}

	for _, shopID := range uc.shopOrder {
		if uc.shops[shopID].References(id) {
			uc.mu.Unlock()
			return errors.Conflict(
				fmt.Sprintf("Item is still listed by shop %s", uc.shops[shopID].Name), nil)
		}
	}

	delete(uc.items, id)
	for i, oid := range uc.itemOrder {
		if oid == id {
			uc.itemOrder = append(uc.itemOrder[:i], uc.itemOrder[i+1:]...)
			break
		}
	}
	uc.mu.Unlock()

	uc.notify()
	return nil
}

func (uc *CatalogUseCase) GetItem(id string) (*entity.Item, bool) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	item, ok := uc.items[id]
	if !ok {
		return nil, false
	}
	return copyItem(item), true
}

// ListItems returns the catalog in creation order.
func (uc *CatalogUseCase) ListItems() []*entity.Item {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	items := make([]*entity.Item, 0, len(uc.itemOrder))
	for _, id := range uc.itemOrder {
		items = append(items, copyItem(uc.items[id]))
	}
	return items
}

type CreateShopInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	NPCName     string `json:"npc_name"`
	NPCDialogue string `json:"npc_dialogue"`
}

// CreateShop creates a shop and its backing NPC as a unit.
func (uc *CatalogUseCase) CreateShop(input CreateShopInput) (*entity.Shop, *entity.NPC, error) {
	shop := &entity.Shop{
		Name:        input.Name,
		Description: input.Description,
		NPCName:     input.NPCName,
		NPCDialogue: input.NPCDialogue,
		Items:       []entity.ShopItem{},
		IsActive:    true,
	}
	if err := shop.Validate(); err != nil {
		return nil, nil, err
	}

	now := time.Now().UnixMilli()
	npc := &entity.NPC{
		ID:          fmt.Sprintf("npc-%d", now),
		Name:        input.NPCName,
		Personality: "Friendly merchant",
		Dialogue:    input.NPCDialogue,
		Services:    []string{"shop"},
	}
	shop.ID = fmt.Sprintf("shop-%d", now)
	shop.NPCID = npc.ID

	uc.mu.Lock()
	for _, taken := uc.shops[shop.ID]; taken; _, taken = uc.shops[shop.ID] {
		now++
		shop.ID = fmt.Sprintf("shop-%d", now)
		npc.ID = fmt.Sprintf("npc-%d", now)
		shop.NPCID = npc.ID
	}
	uc.shops[shop.ID] = shop
	uc.shopOrder = append(uc.shopOrder, shop.ID)
	uc.npcs[npc.ID] = npc
	uc.npcOrder = append(uc.npcOrder, npc.ID)
	uc.mu.Unlock()

	uc.notify()
	return copyShop(shop), copyNPC(npc), nil
}

// DeleteShop removes a shop and its NPC. Catalog items the shop listed
// survive.
func (uc *CatalogUseCase) DeleteShop(id string) error {
	uc.mu.Lock()

	shop, ok := uc.shops[id]
	if !ok {
		uc.mu.Unlock()
		return errors.NotFound("Shop", nil)
	}

	delete(uc.shops, id)
	for i, oid := range uc.shopOrder {
		if oid == id {
			uc.shopOrder = append(uc.shopOrder[:i], uc.shopOrder[i+1:]...)
			break
		}
	}
	if _, ok := uc.npcs[shop.NPCID]; ok {
		delete(uc.npcs, shop.NPCID)
		for i, oid := range uc.npcOrder {
			if oid == shop.NPCID {
				uc.npcOrder = append(uc.npcOrder[:i], uc.npcOrder[i+1:]...)
				break
			}
		}
	}
	uc.mu.Unlock()

	uc.notify()
	return nil
}

func (uc *CatalogUseCase) GetShop(id string) (*entity.Shop, bool) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	shop, ok := uc.shops[id]
	if !ok {
		return nil, false
	}
	return copyShop(shop), true
}

func (uc *CatalogUseCase) ListShops() []*entity.Shop {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	shops := make([]*entity.Shop, 0, len(uc.shopOrder))
	for _, id := range uc.shopOrder {
		shops = append(shops, copyShop(uc.shops[id]))
	}
	return shops
}

func (uc *CatalogUseCase) ListNPCs() []*entity.NPC {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	npcs := make([]*entity.NPC, 0, len(uc.npcOrder))
	for _, id := range uc.npcOrder {
		npcs = append(npcs, copyNPC(uc.npcs[id]))
	}
	return npcs
}

// AddToShop appends a priced listing for an existing catalog item. The item
// must exist in the catalog; the shop is untouched on failure.
func (uc *CatalogUseCase) AddToShop(shopID, itemID string, price int64, currency entity.CurrencyKind, stockLimit int) (*entity.ShopItem, error) {
	if currency == "" {
		currency = entity.CurrencyXenocoins
	}
	if !currency.Valid() {
		return nil, errors.Validation("Unknown currency: "+string(currency), nil)
	}

	uc.mu.Lock()

	if _, ok := uc.items[itemID]; !ok {
		uc.mu.Unlock()
		return nil, errors.New("NOT_FOUND",
			"This item does not exist in the universal items system", http.StatusNotFound, nil)
	}

	shop, ok := uc.shops[shopID]
	if !ok {
		uc.mu.Unlock()
		return nil, errors.NotFound("Shop", nil)
	}

	listing := entity.ShopItem{
		ID:          "si-" + uuid.NewString(),
		ItemID:      itemID,
		Price:       price,
		Currency:    currency,
		StockLimit:  stockLimit,
		IsAvailable: true,
	}
	shop.Items = append(shop.Items, listing)
	uc.mu.Unlock()

	uc.notify()
	return &listing, nil
}

func copyItem(item *entity.Item) *entity.Item {
	dup := *item
	dup.Effects = make(map[entity.StatKey]float64, len(item.Effects))
	for k, v := range item.Effects {
		dup.Effects[k] = v
	}
	return &dup
}

func copyShop(shop *entity.Shop) *entity.Shop {
	dup := *shop
	dup.Items = make([]entity.ShopItem, len(shop.Items))
	copy(dup.Items, shop.Items)
	return &dup
}

func copyNPC(npc *entity.NPC) *entity.NPC {
	dup := *npc
	dup.Services = make([]string, len(npc.Services))
	copy(dup.Services, npc.Services)
	return &dup
}
