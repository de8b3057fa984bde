package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pantrychef/backend/internal/model"
)

// CanCookRecipe checks whether every required ingredient is present in
// sufficient quantity. Appliances are deliberately not validated here; only
// ingredient sufficiency gates the cook transaction, while appliance gaps are
// surfaced through MatchRecipe.
//
// The returned shortfalls are human-readable, one per failing ingredient:
// "<name>" when the ingredient is absent entirely, or
// "<name> (need X, have Y)" when present but short.
func CanCookRecipe(recipe model.Recipe, kitchen model.KitchenState) (bool, []string) {
	shortfalls := []string{}

	for _, required := range recipe.RequiredIngredients {
		found, ok := kitchen.IngredientByName(required.Name)
		if !ok {
			shortfalls = append(shortfalls, required.Name)
			continue
		}
		if found.Quantity < required.Quantity {
			shortfalls = append(shortfalls, fmt.Sprintf("%s (need %s, have %s)",
				required.Name, formatQuantity(required.Quantity), formatQuantity(found.Quantity)))
		}
	}

	return len(shortfalls) == 0, shortfalls
}

// ApplyRecipeToKitchen deducts a recipe's required ingredients from the
// snapshot and returns the result as a new snapshot; the input is never
// mutated. Ingredients whose quantity drops to zero or below are removed
// entirely. Appliances are copied unchanged.
//
// Callers must gate this behind CanCookRecipe: a required ingredient with no
// name match is silently skipped, and an insufficient one is deducted into
// removal, so the outcome for an infeasible recipe is well-defined but not
// meaningful.
func ApplyRecipeToKitchen(recipe model.Recipe, kitchen model.KitchenState) model.KitchenState {
	updated := kitchen.Clone()

	for _, required := range recipe.RequiredIngredients {
		idx := -1
		for i, ing := range updated.Ingredients {
			if strings.EqualFold(ing.Name, required.Name) {
				idx = i
				break
			}
		}
		if idx == -1 {
			continue
		}

		remaining := updated.Ingredients[idx].Quantity - required.Quantity
		if remaining <= 0 {
			updated.Ingredients = append(updated.Ingredients[:idx], updated.Ingredients[idx+1:]...)
		} else {
			updated.Ingredients[idx].Quantity = remaining
		}
	}

	return updated
}

// DepletedIngredients returns the recipe requirements that a cook would
// remove from the kitchen entirely (current quantity <= required quantity).
// Used to turn fully used-up ingredients into shopping list items carrying
// the recipe's quantity and unit.
func DepletedIngredients(recipe model.Recipe, kitchen model.KitchenState) []model.Ingredient {
	var depleted []model.Ingredient
	for _, required := range recipe.RequiredIngredients {
		found, ok := kitchen.IngredientByName(required.Name)
		if ok && found.Quantity <= required.Quantity {
			depleted = append(depleted, required)
		}
	}
	return depleted
}

// formatQuantity renders a quantity the way users entered it: no exponent,
// no trailing zeros.
func formatQuantity(q float64) string {
	return strconv.FormatFloat(q, 'f', -1, 64)
}
