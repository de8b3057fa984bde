package service

import (
	"github.com/pantrychef/backend/internal/model"
)

// Scoring weights for recipe feasibility. These are fixed policy, exported as
// variables only so tests can exercise boundary behavior.
var (
	// MissingIngredientPenalty is subtracted per unsatisfied required ingredient.
	MissingIngredientPenalty = 15
	// MissingAppliancePenalty is subtracted per unsatisfied required appliance.
	// Appliances weigh heavier than ingredients on purpose: a missing oven
	// blocks a recipe harder than a missing spice.
	MissingAppliancePenalty = 40
)

// FeasibilityLabel is the user-facing readiness of a recipe.
type FeasibilityLabel string

const (
	LabelCanMakeNow         FeasibilityLabel = "Can Make Now"
	LabelAlmostReady        FeasibilityLabel = "Almost Ready"
	LabelMissingIngredients FeasibilityLabel = "Missing Ingredients"
)

// FeasibilityCategory is the grouping key behind a FeasibilityLabel.
type FeasibilityCategory string

const (
	CategoryCanMake         FeasibilityCategory = "can-make"
	CategoryAlmostCanMake   FeasibilityCategory = "almost-can-make"
	CategoryMissingKeyItems FeasibilityCategory = "missing-key-items"
)

// MatchResult describes how a single recipe fares against a kitchen snapshot.
// It is recomputed on demand and never persisted.
type MatchResult struct {
	FeasibilityScore   int      `json:"feasibility_score"`
	MissingIngredients []string `json:"missing_ingredients"`
	MissingAppliances  []string `json:"missing_appliances"`
}

func (m MatchResult) totalMissing() int {
	return len(m.MissingIngredients) + len(m.MissingAppliances)
}

// Label derives the display label for a match result.
func (m MatchResult) Label() FeasibilityLabel {
	switch {
	case m.FeasibilityScore == 100:
		return LabelCanMakeNow
	case m.totalMissing() <= 2:
		return LabelAlmostReady
	default:
		return LabelMissingIngredients
	}
}

// Category derives the grouping category for a match result.
func (m MatchResult) Category() FeasibilityCategory {
	switch {
	case m.FeasibilityScore == 100:
		return CategoryCanMake
	case m.totalMissing() <= 2:
		return CategoryAlmostCanMake
	default:
		return CategoryMissingKeyItems
	}
}

// hasIngredient reports whether the kitchen holds the required ingredient in
// sufficient quantity. Names match case-insensitively; quantities are compared
// raw, trusting that identical names carry identical units.
func hasIngredient(required model.Ingredient, kitchen model.KitchenState) bool {
	found, ok := kitchen.IngredientByName(required.Name)
	return ok && found.Quantity >= required.Quantity
}

// MatchRecipe scores one recipe against one kitchen snapshot. Scoring starts
// at 100, deducts MissingIngredientPenalty per unsatisfied required ingredient
// and MissingAppliancePenalty per unsatisfied required appliance, and clamps
// at 0. Optional ingredients never affect the score or the missing lists.
// Pure function of its inputs.
func MatchRecipe(recipe model.Recipe, kitchen model.KitchenState) MatchResult {
	result := MatchResult{
		FeasibilityScore:   100,
		MissingIngredients: []string{},
		MissingAppliances:  []string{},
	}

	for _, ing := range recipe.RequiredIngredients {
		if !hasIngredient(ing, kitchen) {
			result.MissingIngredients = append(result.MissingIngredients, ing.Name)
			result.FeasibilityScore -= MissingIngredientPenalty
		}
	}

	for _, app := range recipe.RequiredAppliances {
		if !kitchen.HasAppliance(app.Name) {
			result.MissingAppliances = append(result.MissingAppliances, app.Name)
			result.FeasibilityScore -= MissingAppliancePenalty
		}
	}

	if result.FeasibilityScore < 0 {
		result.FeasibilityScore = 0
	}

	return result
}
