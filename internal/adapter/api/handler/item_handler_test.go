package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"xenopets/internal/adapter/api"
	"xenopets/internal/usecase"
)

func newTestContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = api.NewValidator()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestCreateItemEndpoint(t *testing.T) {
	h := NewItemHandler(usecase.NewCatalogUseCase())

	c, rec := newTestContext(http.MethodPost, "/v1/admin/items",
		`{"name":"Magic Apple","description":"Restores health","type":"Food","rarity":"Rare","effects":{"health":3}}`)

	if assert.NoError(t, h.CreateItem(c)) {
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), "Magic Apple")
		assert.Contains(t, rec.Body.String(), `"currency":"xenocoins"`)
	}
}

func TestCreateItemMissingName(t *testing.T) {
	catalog := usecase.NewCatalogUseCase()
	h := NewItemHandler(catalog)

	c, rec := newTestContext(http.MethodPost, "/v1/admin/items",
		`{"description":"no name","type":"Food","rarity":"Common"}`)

	if assert.NoError(t, h.CreateItem(c)) {
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
	}
	assert.Empty(t, catalog.ListItems())
}

func TestGetItemUnknown(t *testing.T) {
	h := NewItemHandler(usecase.NewCatalogUseCase())

	c, rec := newTestContext(http.MethodGet, "/v1/items/ghost", "")
	c.SetParamNames("id")
	c.SetParamValues("ghost")

	if assert.NoError(t, h.GetItem(c)) {
		assert.Equal(t, http.StatusNotFound, rec.Code)
	}
}

func TestUpdateItemEndpoint(t *testing.T) {
	catalog := usecase.NewCatalogUseCase()
	item, err := catalog.CreateItem(usecase.CreateItemInput{
		Name:        "Magic Apple",
		Description: "Restores health",
		Type:        "Food",
		Rarity:      "Rare",
	})
	assert.NoError(t, err)

	h := NewItemHandler(catalog)
	c, rec := newTestContext(http.MethodPut, "/v1/admin/items/"+item.ID, `{"price":250}`)
	c.SetParamNames("id")
	c.SetParamValues(item.ID)

	if assert.NoError(t, h.UpdateItem(c)) {
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"price":250`)
	}
}

func TestListItemsPaginated(t *testing.T) {
	catalog := usecase.NewCatalogUseCase()
	for _, name := range []string{"Apple", "Banana", "Cherry"} {
		_, err := catalog.CreateItem(usecase.CreateItemInput{
			Name: name, Description: "d", Type: "Food", Rarity: "Common",
		})
		assert.NoError(t, err)
	}

	h := NewItemHandler(catalog)
	c, rec := newTestContext(http.MethodGet, "/v1/items?page=2&limit=2", "")

	if assert.NoError(t, h.ListItems(c)) {
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"total":3`)
		assert.Contains(t, rec.Body.String(), `"page":2`)
		assert.Contains(t, rec.Body.String(), "Cherry")
		assert.NotContains(t, rec.Body.String(), "Apple")
	}
}

func TestDeleteItemReferencedByShop(t *testing.T) {
	catalog := usecase.NewCatalogUseCase()
	item, _ := catalog.CreateItem(usecase.CreateItemInput{
		Name: "Magic Apple", Description: "d", Type: "Food", Rarity: "Common",
	})
	shop, _, err := catalog.CreateShop(usecase.CreateShopInput{
		Name: "General Store", Description: "d", NPCName: "Zara", NPCDialogue: "Welcome!",
	})
	assert.NoError(t, err)
	_, err = catalog.AddToShop(shop.ID, item.ID, 10, "", 0)
	assert.NoError(t, err)

	h := NewItemHandler(catalog)
	c, rec := newTestContext(http.MethodDelete, "/v1/admin/items/"+item.ID, "")
	c.SetParamNames("id")
	c.SetParamValues(item.ID)

	if assert.NoError(t, h.DeleteItem(c)) {
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, rec.Body.String(), "CONFLICT")
	}
}
