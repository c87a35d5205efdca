package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"xenopets/internal/usecase"
)

func TestCreateShopEndpoint(t *testing.T) {
	h := NewShopHandler(usecase.NewCatalogUseCase())

	c, rec := newTestContext(http.MethodPost, "/v1/admin/shops",
		`{"name":"General Store","description":"Everyday goods","npc_name":"Zara","npc_dialogue":"Welcome, traveler!"}`)

	if assert.NoError(t, h.CreateShop(c)) {
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"shop"`)
		assert.Contains(t, rec.Body.String(), `"npc"`)
		assert.Contains(t, rec.Body.String(), "Zara")
	}
}

func TestCreateShopMissingDialogue(t *testing.T) {
	catalog := usecase.NewCatalogUseCase()
	h := NewShopHandler(catalog)

	c, rec := newTestContext(http.MethodPost, "/v1/admin/shops",
		`{"name":"General Store","description":"Everyday goods","npc_name":"Zara"}`)

	if assert.NoError(t, h.CreateShop(c)) {
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	}
	assert.Empty(t, catalog.ListShops())
	assert.Empty(t, catalog.ListNPCs())
}

func TestAddItemToShopUnknownItem(t *testing.T) {
	catalog := usecase.NewCatalogUseCase()
	shop, _, err := catalog.CreateShop(usecase.CreateShopInput{
		Name: "General Store", Description: "d", NPCName: "Zara", NPCDialogue: "Hi",
	})
	assert.NoError(t, err)

	h := NewShopHandler(catalog)
	c, rec := newTestContext(http.MethodPost, "/v1/admin/shops/"+shop.ID+"/items",
		`{"item_id":"ghost","price":10}`)
	c.SetParamNames("id")
	c.SetParamValues(shop.ID)

	if assert.NoError(t, h.AddItemToShop(c)) {
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "universal items system")
	}
}

func TestDeleteShopKeepsCatalogItems(t *testing.T) {
	catalog := usecase.NewCatalogUseCase()
	item, _ := catalog.CreateItem(usecase.CreateItemInput{
		Name: "Magic Apple", Description: "d", Type: "Food", Rarity: "Common",
	})
	shop, _, _ := catalog.CreateShop(usecase.CreateShopInput{
		Name: "General Store", Description: "d", NPCName: "Zara", NPCDialogue: "Hi",
	})
	_, err := catalog.AddToShop(shop.ID, item.ID, 10, "", 0)
	assert.NoError(t, err)

	h := NewShopHandler(catalog)
	c, rec := newTestContext(http.MethodDelete, "/v1/admin/shops/"+shop.ID, "")
	c.SetParamNames("id")
	c.SetParamValues(shop.ID)

	if assert.NoError(t, h.DeleteShop(c)) {
		assert.Equal(t, http.StatusOK, rec.Code)
	}
	_, ok := catalog.GetItem(item.ID)
	assert.True(t, ok, "deleting a shop must not delete catalog items")
}
