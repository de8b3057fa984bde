package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pantrychef/backend/internal/model"
)

func TestCanCookRecipeOK(t *testing.T) {
	recipe := model.Recipe{
		ID:                  "r",
		Name:                "Omelette",
		RequiredIngredients: model.IngredientList{requiredIng("Eggs", 2, "pieces")},
	}

	ok, shortfalls := CanCookRecipe(recipe, testKitchen())

	assert.True(t, ok)
	assert.Empty(t, shortfalls)
}

func TestCanCookRecipeInsufficientQuantity(t *testing.T) {
	recipe := model.Recipe{
		ID:   "r",
		Name: "Big Bake",
		RequiredIngredients: model.IngredientList{
			requiredIng("Eggs", 2, "pieces"),
			requiredIng("Flour", 600, "g"),
		},
	}

	ok, shortfalls := CanCookRecipe(recipe, testKitchen())

	assert.False(t, ok)
	assert.Equal(t, []string{"Flour (need 600, have 500)"}, shortfalls)
}

func TestCanCookRecipeAbsentIngredient(t *testing.T) {
	recipe := model.Recipe{
		ID:                  "r",
		Name:                "Curry",
		RequiredIngredients: model.IngredientList{requiredIng("Coconut Milk", 400, "ml")},
	}

	ok, shortfalls := CanCookRecipe(recipe, testKitchen())

	assert.False(t, ok)
	assert.Equal(t, []string{"Coconut Milk"}, shortfalls)
}

func TestCanCookRecipeFractionalQuantities(t *testing.T) {
	kitchen := model.KitchenState{
		Ingredients: []model.Ingredient{{ID: "1", Name: "Cream", Quantity: 0.5, Unit: "l"}},
	}
	recipe := model.Recipe{
		ID:                  "r",
		Name:                "Panna Cotta",
		RequiredIngredients: model.IngredientList{requiredIng("Cream", 0.75, "l")},
	}

	ok, shortfalls := CanCookRecipe(recipe, kitchen)

	assert.False(t, ok)
	assert.Equal(t, []string{"Cream (need 0.75, have 0.5)"}, shortfalls)
}

func TestCanCookRecipeIgnoresAppliances(t *testing.T) {
	recipe := model.Recipe{
		ID:                  "r",
		Name:                "Smoothie",
		RequiredIngredients: model.IngredientList{requiredIng("Eggs", 1, "pieces")},
		RequiredAppliances:  model.ApplianceList{{ID: "a", Name: "Blender"}},
	}

	// The blender is missing but the ingredient gate does not care.
	ok, shortfalls := CanCookRecipe(recipe, testKitchen())

	assert.True(t, ok)
	assert.Empty(t, shortfalls)
}

func TestApplyRecipeDeductsQuantities(t *testing.T) {
	kitchen := testKitchen()
	recipe := model.Recipe{
		ID:   "r",
		Name: "Pancakes",
		RequiredIngredients: model.IngredientList{
			requiredIng("Eggs", 2, "pieces"),
			requiredIng("Flour", 200, "g"),
		},
	}

	updated := ApplyRecipeToKitchen(recipe, kitchen)

	eggs, ok := updated.IngredientByName("Eggs")
	require.True(t, ok)
	assert.Equal(t, 4.0, eggs.Quantity)

	flour, ok := updated.IngredientByName("Flour")
	require.True(t, ok)
	assert.Equal(t, 300.0, flour.Quantity)

	// Input snapshot untouched.
	assert.Equal(t, testKitchen(), kitchen)
	// Appliances carried over.
	assert.Equal(t, kitchen.Appliances, updated.Appliances)
}

func TestApplyRecipeRemovesDepletedIngredient(t *testing.T) {
	kitchen := model.KitchenState{
		Ingredients: []model.Ingredient{{ID: "1", Name: "Butter", Quantity: 200, Unit: "g"}},
	}
	recipe := model.Recipe{
		ID:                  "r",
		Name:                "Shortbread",
		RequiredIngredients: model.IngredientList{requiredIng("Butter", 200, "g")},
	}

	updated := ApplyRecipeToKitchen(recipe, kitchen)

	_, found := updated.IngredientByName("Butter")
	assert.False(t, found, "ingredient deducted to zero must be removed, not kept at zero")
	assert.Empty(t, updated.Ingredients)
}

func TestApplyRecipeSkipsUnmatchedIngredients(t *testing.T) {
	kitchen := testKitchen()
	recipe := model.Recipe{
		ID:                  "r",
		Name:                "Curry",
		RequiredIngredients: model.IngredientList{requiredIng("Coconut Milk", 400, "ml")},
	}

	updated := ApplyRecipeToKitchen(recipe, kitchen)

	assert.Equal(t, kitchen.Ingredients, updated.Ingredients)
}

func TestDepletedIngredients(t *testing.T) {
	kitchen := model.KitchenState{
		Ingredients: []model.Ingredient{
			{ID: "1", Name: "Butter", Quantity: 200, Unit: "g"},
			{ID: "2", Name: "Eggs", Quantity: 6, Unit: "pieces"},
		},
	}
	recipe := model.Recipe{
		ID:   "r",
		Name: "Shortbread",
		RequiredIngredients: model.IngredientList{
			requiredIng("Butter", 200, "g"),
			requiredIng("Eggs", 2, "pieces"),
			requiredIng("Saffron", 1, "g"),
		},
	}

	depleted := DepletedIngredients(recipe, kitchen)

	require.Len(t, depleted, 1)
	assert.Equal(t, "Butter", depleted[0].Name)
}
