package api

import (
	"github.com/pantrychef/backend/internal/model"
	"github.com/pantrychef/backend/internal/service"
)

// IngredientView is an inventory ingredient annotated with the derived
// expiration and stock signals the UI renders.
type IngredientView struct {
	model.Ingredient
	LowStock            bool `json:"low_stock"`
	ExpiringSoon        bool `json:"expiring_soon"`
	DaysUntilExpiration *int `json:"days_until_expiration,omitempty"`
}

// KitchenResponse is the full inventory view.
type KitchenResponse struct {
	Ingredients []IngredientView  `json:"ingredients"`
	Appliances  []model.Appliance `json:"appliances"`
	CanUndo     bool              `json:"can_undo"`
}

// RecipeSummary is a catalog entry with its match against the current kitchen.
type RecipeSummary struct {
	Recipe   model.Recipe                `json:"recipe"`
	Match    service.MatchResult         `json:"match"`
	Label    service.FeasibilityLabel    `json:"label"`
	Category service.FeasibilityCategory `json:"category"`
}

// RecipeDetailResponse adds the cookability gate to a recipe summary.
type RecipeDetailResponse struct {
	RecipeSummary
	CanCook    bool     `json:"can_cook"`
	Shortfalls []string `json:"shortfalls"`
}

// ShoppingListResponse returns the flat list plus a by-recipe grouping for
// the list page.
type ShoppingListResponse struct {
	Items  []model.ListItem            `json:"items"`
	Groups map[string][]model.ListItem `json:"groups"`
}

func newIngredientView(ing model.Ingredient) IngredientView {
	view := IngredientView{
		Ingredient:   ing,
		LowStock:     service.IsLowStock(ing),
		ExpiringSoon: service.IsExpiringSoon(ing),
	}
	if days, ok := service.DaysUntilExpiration(ing); ok {
		view.DaysUntilExpiration = &days
	}
	return view
}

func newKitchenResponse(kitchen model.KitchenState, canUndo bool) KitchenResponse {
	resp := KitchenResponse{
		Ingredients: make([]IngredientView, 0, len(kitchen.Ingredients)),
		Appliances:  kitchen.Appliances,
		CanUndo:     canUndo,
	}
	for _, ing := range kitchen.Ingredients {
		resp.Ingredients = append(resp.Ingredients, newIngredientView(ing))
	}
	return resp
}
