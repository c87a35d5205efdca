package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"xenopets/internal/domain/entity"
	"xenopets/pkg/errors"
)

func validItemInput() CreateItemInput {
	return CreateItemInput{
		Name:        "Health Potion",
		Description: "Heals 5 HP",
		Type:        entity.ItemTypePotion,
		Rarity:      entity.RarityCommon,
	}
}

func TestCreateItemDefaults(t *testing.T) {
	catalog := NewCatalogUseCase()

	item, err := catalog.CreateItem(validItemInput())
	assert.NoError(t, err)
	assert.NotEmpty(t, item.ID)
	assert.Equal(t, int64(0), item.Price)
	assert.Equal(t, entity.CurrencyXenocoins, item.Currency)
	assert.NotNil(t, item.Effects)
	assert.Empty(t, item.Effects)
	assert.Equal(t, 1, item.Quantity)
	assert.False(t, item.CreatedAt.IsZero())

	got, ok := catalog.GetItem(item.ID)
	assert.True(t, ok)
	assert.Equal(t, item.Name, got.Name)
	assert.Equal(t, item.Description, got.Description)
	assert.Equal(t, item.Type, got.Type)
	assert.Equal(t, item.Rarity, got.Rarity)

	items := catalog.ListItems()
	assert.Len(t, items, 1)
}

func TestCreateItemMissingFields(t *testing.T) {
	cases := map[string]CreateItemInput{
		"name":        {Description: "d", Type: entity.ItemTypeFood, Rarity: entity.RarityCommon},
		"description": {Name: "n", Type: entity.ItemTypeFood, Rarity: entity.RarityCommon},
		"type":        {Name: "n", Description: "d", Rarity: entity.RarityCommon},
		"rarity":      {Name: "n", Description: "d", Type: entity.ItemTypeFood},
	}

	for missing, input := range cases {
		catalog := NewCatalogUseCase()
		_, err := catalog.CreateItem(input)
		assert.True(t, errors.IsValidation(err), "missing %s should fail validation", missing)
		assert.Empty(t, catalog.ListItems(), "catalog must be unchanged when %s is missing", missing)
	}
}

func TestCreateItemRejectsUnknownEffectStat(t *testing.T) {
	catalog := NewCatalogUseCase()

	input := validItemInput()
	input.Effects = map[entity.StatKey]float64{"helth": 5}

	_, err := catalog.CreateItem(input)
	assert.True(t, errors.IsValidation(err))
	assert.Empty(t, catalog.ListItems())
}

func TestCreateItemGeneratesUniqueIDs(t *testing.T) {
	catalog := NewCatalogUseCase()

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		item, err := catalog.CreateItem(validItemInput())
		assert.NoError(t, err)
		assert.False(t, seen[item.ID], "duplicate id %s", item.ID)
		seen[item.ID] = true
	}
	assert.Len(t, catalog.ListItems(), 50)
}

func TestListItemsCreationOrder(t *testing.T) {
	catalog := NewCatalogUseCase()

	names := []string{"first", "second", "third"}
	for _, name := range names {
		input := validItemInput()
		input.Name = name
		_, err := catalog.CreateItem(input)
		assert.NoError(t, err)
	}

	items := catalog.ListItems()
	assert.Len(t, items, 3)
	for i, item := range items {
		assert.Equal(t, names[i], item.Name)
	}
}

func TestUpdateItemMergesPatch(t *testing.T) {
	catalog := NewCatalogUseCase()
	item, err := catalog.CreateItem(validItemInput())
	assert.NoError(t, err)

	price := int64(75)
	name := "Greater Health Potion"
	updated, err := catalog.UpdateItem(item.ID, UpdateItemInput{Name: &name, Price: &price})
	assert.NoError(t, err)
	assert.Equal(t, "Greater Health Potion", updated.Name)
	assert.Equal(t, int64(75), updated.Price)
	assert.Equal(t, item.Description, updated.Description)

	got, _ := catalog.GetItem(item.ID)
	assert.Equal(t, "Greater Health Potion", got.Name)
}

func TestUpdateItemUnknownID(t *testing.T) {
	catalog := NewCatalogUseCase()
	_, err := catalog.CreateItem(validItemInput())
	assert.NoError(t, err)

	name := "x"
	_, err = catalog.UpdateItem("no-such-item", UpdateItemInput{Name: &name})
	assert.True(t, errors.IsNotFound(err))
	assert.Len(t, catalog.ListItems(), 1)
}

func TestUpdateItemCannotClearRequiredField(t *testing.T) {
	catalog := NewCatalogUseCase()
	item, err := catalog.CreateItem(validItemInput())
	assert.NoError(t, err)

	empty := ""
	_, err = catalog.UpdateItem(item.ID, UpdateItemInput{Name: &empty})
	assert.True(t, errors.IsValidation(err))

	got, _ := catalog.GetItem(item.ID)
	assert.Equal(t, "Health Potion", got.Name)
}

func TestDeleteItem(t *testing.T) {
	catalog := NewCatalogUseCase()
	item, err := catalog.CreateItem(validItemInput())
	assert.NoError(t, err)
	before := len(catalog.ListItems())

	assert.NoError(t, catalog.DeleteItem(item.ID))

	_, ok := catalog.GetItem(item.ID)
	assert.False(t, ok)
	assert.Len(t, catalog.ListItems(), before-1)

	assert.True(t, errors.IsNotFound(catalog.DeleteItem(item.ID)))
}

func TestDeleteItemRejectedWhileShopReferences(t *testing.T) {
	catalog := NewCatalogUseCase()
	item, err := catalog.CreateItem(validItemInput())
	assert.NoError(t, err)

	shop, _, err := catalog.CreateShop(CreateShopInput{
		Name:        "Maya's Emporium",
		Description: "Finest items for your pets",
		NPCName:     "Merchant Maya",
		NPCDialogue: "Welcome, traveler!",
	})
	assert.NoError(t, err)

	_, err = catalog.AddToShop(shop.ID, item.ID, 50, entity.CurrencyXenocoins, 0)
	assert.NoError(t, err)

	err = catalog.DeleteItem(item.ID)
	assert.True(t, errors.IsConflict(err))
	_, ok := catalog.GetItem(item.ID)
	assert.True(t, ok)

	// After the listing's shop is gone the delete goes through.
	assert.NoError(t, catalog.DeleteShop(shop.ID))
	assert.NoError(t, catalog.DeleteItem(item.ID))
}

func TestCreateShopCreatesNPCAsUnit(t *testing.T) {
	catalog := NewCatalogUseCase()

	shop, npc, err := catalog.CreateShop(CreateShopInput{
		Name:        "Healing Hut",
		Description: "Potions and remedies",
		NPCName:     "Healer Hank",
		NPCDialogue: "Your pets look like they could use some healing.",
	})
	assert.NoError(t, err)
	assert.Equal(t, npc.ID, shop.NPCID)
	assert.Equal(t, "Healer Hank", shop.NPCName)
	assert.True(t, shop.IsActive)
	assert.Empty(t, shop.Items)
	assert.Len(t, catalog.ListShops(), 1)
	assert.Len(t, catalog.ListNPCs(), 1)
}

func TestCreateShopMissingFields(t *testing.T) {
	catalog := NewCatalogUseCase()

	_, _, err := catalog.CreateShop(CreateShopInput{Name: "no npc"})
	assert.True(t, errors.IsValidation(err))
	assert.Empty(t, catalog.ListShops())
	assert.Empty(t, catalog.ListNPCs())
}

func TestAddToShop(t *testing.T) {
	catalog := NewCatalogUseCase()
	item, err := catalog.CreateItem(validItemInput())
	assert.NoError(t, err)
	shop, _, err := catalog.CreateShop(CreateShopInput{
		Name:        "shop-1",
		Description: "d",
		NPCName:     "n",
		NPCDialogue: "hi",
	})
	assert.NoError(t, err)

	listing, err := catalog.AddToShop(shop.ID, item.ID, 50, entity.CurrencyXenocoins, 0)
	assert.NoError(t, err)
	assert.Equal(t, int64(50), listing.Price)
	assert.Equal(t, item.ID, listing.ItemID)
	assert.True(t, listing.IsAvailable)

	got, _ := catalog.GetShop(shop.ID)
	assert.Len(t, got.Items, 1)
	assert.Equal(t, int64(50), got.Items[0].Price)
}

func TestAddToShopUnknownItem(t *testing.T) {
	catalog := NewCatalogUseCase()
	shop, _, err := catalog.CreateShop(CreateShopInput{
		Name:        "shop-1",
		Description: "d",
		NPCName:     "n",
		NPCDialogue: "hi",
	})
	assert.NoError(t, err)

	_, err = catalog.AddToShop(shop.ID, "does-not-exist", 50, entity.CurrencyXenocoins, 0)
	assert.True(t, errors.IsNotFound(err))

	got, _ := catalog.GetShop(shop.ID)
	assert.Empty(t, got.Items)
}

func TestAddToShopUnknownShop(t *testing.T) {
	catalog := NewCatalogUseCase()
	item, err := catalog.CreateItem(validItemInput())
	assert.NoError(t, err)

	_, err = catalog.AddToShop("no-such-shop", item.ID, 50, entity.CurrencyXenocoins, 0)
	assert.True(t, errors.IsNotFound(err))
}

func TestSubscriberNotifiedOnMutation(t *testing.T) {
	catalog := NewCatalogUseCase()

	calls := 0
	catalog.Subscribe(func() { calls++ })

	_, err := catalog.CreateItem(validItemInput())
	assert.NoError(t, err)
	assert.Equal(t, 1, calls)

	_, err = catalog.CreateItem(CreateItemInput{})
	assert.Error(t, err)
	assert.Equal(t, 1, calls, "failed mutations must not notify")
}

func TestListReturnsCopies(t *testing.T) {
	catalog := NewCatalogUseCase()
	item, err := catalog.CreateItem(validItemInput())
	assert.NoError(t, err)

	items := catalog.ListItems()
	items[0].Name = "tampered"
	items[0].Effects[entity.StatHealth] = 99

	got, _ := catalog.GetItem(item.ID)
	assert.Equal(t, "Health Potion", got.Name)
	assert.Empty(t, got.Effects)
}
