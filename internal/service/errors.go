package service

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrRecipeNotFound is returned when a recipe id has no catalog entry.
	ErrRecipeNotFound = errors.New("recipe not found")
	// ErrIngredientNotFound is returned for lookups of absent inventory ingredients.
	ErrIngredientNotFound = errors.New("ingredient not found")
	// ErrApplianceNotFound is returned for lookups of absent appliances.
	ErrApplianceNotFound = errors.New("appliance not found")
	// ErrListItemNotFound is returned for lookups of absent shopping list items.
	ErrListItemNotFound = errors.New("shopping list item not found")
	// ErrDuplicateListItem is returned when an item with the same name is
	// already on the shopping list.
	ErrDuplicateListItem = errors.New("item already on shopping list")
	// ErrNothingToUndo is returned when the undo slot is empty.
	ErrNothingToUndo = errors.New("nothing to undo")
)

// NotCookableError reports why a cook transaction was refused. The shortfall
// list is data for the caller, in the same format CanCookRecipe produces.
type NotCookableError struct {
	RecipeName string
	Shortfalls []string
}

func (e *NotCookableError) Error() string {
	return fmt.Sprintf("cannot cook %s: missing %s", e.RecipeName, strings.Join(e.Shortfalls, ", "))
}
