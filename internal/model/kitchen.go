package model

import "strings"

// IngredientCategory groups ingredients for display purposes only;
// the matching engine never looks at it.
type IngredientCategory string

const (
	CategoryProduce      IngredientCategory = "Produce"
	CategoryMeatSeafood  IngredientCategory = "Meat & Seafood"
	CategoryDairyEggs    IngredientCategory = "Dairy & Eggs"
	CategoryBakery       IngredientCategory = "Bakery"
	CategoryPantryStaple IngredientCategory = "Pantry Staples"
	CategorySpices       IngredientCategory = "Spices & Seasonings"
	CategorySauces       IngredientCategory = "Sauces & Condiments"
	CategorySnacks       IngredientCategory = "Snacks"
	CategoryFrozen       IngredientCategory = "Frozen Foods"
	CategoryBeverages    IngredientCategory = "Beverages"
	CategoryOther        IngredientCategory = "Other"
)

// StorageLocation describes where an ingredient is kept.
type StorageLocation string

const (
	LocationFridge  StorageLocation = "fridge"
	LocationFreezer StorageLocation = "freezer"
	LocationPantry  StorageLocation = "pantry"
)

// Ingredient is a single inventory entry. Quantities are compared on their raw
// numeric value within identical units; there is no unit conversion.
// ExpirationDate, when set, is an ISO calendar date (YYYY-MM-DD) with no time
// component.
type Ingredient struct {
	ID              string             `json:"id"`
	Name            string             `json:"name"`
	Quantity        float64            `json:"quantity"`
	Unit            string             `json:"unit"`
	Category        IngredientCategory `json:"category"`
	StorageLocation StorageLocation    `json:"storage_location,omitempty"`
	ExpirationDate  string             `json:"expiration_date,omitempty"`
}

// Appliance is a named piece of kitchen equipment. Presence is binary; there
// is no appliance quantity.
type Appliance struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// KitchenState is a snapshot of everything the kitchen currently holds.
// Snapshots are treated as values: every mutating operation in the service
// layer returns a fresh copy and leaves its input untouched.
type KitchenState struct {
	Ingredients []Ingredient `json:"ingredients"`
	Appliances  []Appliance  `json:"appliances"`
}

// Clone returns a deep copy of the snapshot.
func (k KitchenState) Clone() KitchenState {
	out := KitchenState{
		Ingredients: make([]Ingredient, len(k.Ingredients)),
		Appliances:  make([]Appliance, len(k.Appliances)),
	}
	copy(out.Ingredients, k.Ingredients)
	copy(out.Appliances, k.Appliances)
	return out
}

// IngredientByName looks up an inventory ingredient by case-insensitive name.
func (k KitchenState) IngredientByName(name string) (Ingredient, bool) {
	for _, ing := range k.Ingredients {
		if strings.EqualFold(ing.Name, name) {
			return ing, true
		}
	}
	return Ingredient{}, false
}

// HasAppliance reports whether an appliance with the given name is present,
// compared case-insensitively.
func (k KitchenState) HasAppliance(name string) bool {
	for _, app := range k.Appliances {
		if strings.EqualFold(app.Name, name) {
			return true
		}
	}
	return false
}

// ListItem is a shopping list entry. SourceRecipe records which recipe caused
// the item to be added, for grouping on the list page.
type ListItem struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Quantity     float64 `json:"quantity,omitempty"`
	Unit         string  `json:"unit,omitempty"`
	SourceRecipe string  `json:"source_recipe"`
}
