package api_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pantrychef/backend/internal/model"
	"github.com/pantrychef/backend/internal/testhelpers"
)

func TestShoppingListLifecycle(t *testing.T) {
	router, _ := testhelpers.NewTestRouter(t, seedKitchen())

	w := doJSON(t, router, "POST", "/api/v1/shopping-list/items", map[string]interface{}{
		"name":          "Milk",
		"quantity":      1,
		"unit":          "l",
		"source_recipe": "manual",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Item model.ListItem `json:"item"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotEmpty(t, created.Item.ID)

	// Same name, different case: rejected.
	w = doJSON(t, router, "POST", "/api/v1/shopping-list/items", map[string]interface{}{
		"name":          "MILK",
		"source_recipe": "manual",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(t, router, "GET", "/api/v1/shopping-list", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var list struct {
		Items  []model.ListItem            `json:"items"`
		Groups map[string][]model.ListItem `json:"groups"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list.Items, 1)
	assert.Len(t, list.Groups["manual"], 1)

	w = doJSON(t, router, "DELETE", "/api/v1/shopping-list/items/"+created.Item.ID, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, router, "DELETE", "/api/v1/shopping-list/items/"+created.Item.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestClearShoppingList(t *testing.T) {
	router, svc := testhelpers.NewTestRouter(t, seedKitchen())

	w := doJSON(t, router, "POST", "/api/v1/shopping-list/items", map[string]interface{}{
		"name": "Milk", "source_recipe": "manual",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, "DELETE", "/api/v1/shopping-list", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, svc.ShoppingList())
}

func TestMissingIngredientToShoppingListViaCook(t *testing.T) {
	butterKitchen := model.KitchenState{
		Ingredients: []model.Ingredient{
			{ID: "i1", Name: "Butter", Quantity: 200, Unit: "g"},
			{ID: "i2", Name: "Flour", Quantity: 500, Unit: "g"},
		},
	}
	shortbread := model.Recipe{
		ID:   "shortbread",
		Name: "Shortbread",
		RequiredIngredients: model.IngredientList{
			{ID: "r1", Name: "Butter", Quantity: 200, Unit: "g"},
			{ID: "r2", Name: "Flour", Quantity: 250, Unit: "g"},
		},
	}
	router, _ := testhelpers.NewTestRouter(t, butterKitchen, shortbread)

	w := doJSON(t, router, "POST", "/api/v1/recipes/shortbread/cook", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		AddedItems []model.ListItem `json:"added_items"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.AddedItems, 1)
	assert.Equal(t, "Butter", resp.AddedItems[0].Name)
	assert.Equal(t, "Shortbread", resp.AddedItems[0].SourceRecipe)
}
