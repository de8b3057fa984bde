package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pantrychef/backend/internal/model"
)

func expiringKitchen() model.KitchenState {
	// Eggs expire 3 days after testNow (2025-06-15), Flour never does.
	return model.KitchenState{
		Ingredients: []model.Ingredient{
			{ID: "1", Name: "Eggs", Quantity: 6, Unit: "pieces", ExpirationDate: "2025-06-18"},
			{ID: "2", Name: "Flour", Quantity: 500, Unit: "g"},
		},
	}
}

func TestRecommendExpirationBonus(t *testing.T) {
	recipe := model.Recipe{
		ID:                  "omelette",
		Name:                "Omelette",
		RequiredIngredients: model.IngredientList{requiredIng("Eggs", 2, "pieces")},
	}

	recs := RecommendAt([]model.Recipe{recipe}, expiringKitchen(), 5, testNow)

	require.Len(t, recs, 1)
	assert.Equal(t, 120, recs[0].Score)
	assert.Equal(t, 100, recs[0].Match.FeasibilityScore)
	assert.Equal(t, []ExpiringIngredient{{Name: "Eggs", DaysLeft: 3}}, recs[0].ExpiringUsed)
}

func TestRecommendRestrictsToFullyFeasible(t *testing.T) {
	feasible := model.Recipe{
		ID:                  "plain",
		Name:                "Plain Flatbread",
		RequiredIngredients: model.IngredientList{requiredIng("Flour", 300, "g")},
	}
	// Uses the expiring eggs and scores 85+20=105 > the flatbread's 100,
	// but it is not fully feasible so it must never be shown alongside one
	// that is.
	almostReady := model.Recipe{
		ID:   "custard",
		Name: "Custard",
		RequiredIngredients: model.IngredientList{
			requiredIng("Eggs", 2, "pieces"),
			requiredIng("Milk", 500, "ml"),
		},
	}

	recs := RecommendAt([]model.Recipe{almostReady, feasible}, expiringKitchen(), 5, testNow)

	require.Len(t, recs, 1)
	assert.Equal(t, "Plain Flatbread", recs[0].Recipe.Name)
}

func TestRecommendFallsBackWhenNothingFeasible(t *testing.T) {
	recipes := []model.Recipe{
		{
			ID:                  "r1",
			Name:                "Custard",
			RequiredIngredients: model.IngredientList{requiredIng("Eggs", 2, "pieces"), requiredIng("Milk", 500, "ml")},
		},
		{
			ID:                  "r2",
			Name:                "Curry",
			RequiredIngredients: model.IngredientList{requiredIng("Coconut Milk", 400, "ml")},
		},
	}

	recs := RecommendAt(recipes, expiringKitchen(), 5, testNow)

	require.Len(t, recs, 2)
	// Custard: 85 feasibility + 20 eggs bonus = 105; Curry: 85.
	assert.Equal(t, "Custard", recs[0].Recipe.Name)
	assert.Equal(t, 105, recs[0].Score)
	assert.Equal(t, "Curry", recs[1].Recipe.Name)
	assert.Equal(t, 85, recs[1].Score)
}

func TestRecommendCapsAtMaxCount(t *testing.T) {
	var recipes []model.Recipe
	for _, name := range []string{"A", "B", "C", "D", "E", "F", "G"} {
		recipes = append(recipes, model.Recipe{
			ID:                  name,
			Name:                name,
			RequiredIngredients: model.IngredientList{requiredIng("Flour", 100, "g")},
		})
	}

	recs := RecommendAt(recipes, expiringKitchen(), 3, testNow)
	assert.Len(t, recs, 3)

	recs = RecommendAt(recipes, expiringKitchen(), 0, testNow)
	assert.Len(t, recs, DefaultMaxRecommendations)
}

func TestRecommendTieBreakByFeasibility(t *testing.T) {
	// Two expiring perishables on hand so a recipe can earn a double bonus.
	kitchen := model.KitchenState{
		Ingredients: []model.Ingredient{
			{ID: "1", Name: "Eggs", Quantity: 6, Unit: "pieces", ExpirationDate: "2025-06-18"},
			{ID: "2", Name: "Butter", Quantity: 200, Unit: "g", ExpirationDate: "2025-06-17"},
		},
	}

	// 100 - 15 = 85, no bonus.
	higherFeasibility := model.Recipe{
		ID:                  "r1",
		Name:                "Curry",
		RequiredIngredients: model.IngredientList{requiredIng("Coconut Milk", 400, "ml")},
	}
	// 100 - 15 - 40 = 45 feasibility, + 2 x 20 bonus = 85 as well.
	lowerFeasibility := model.Recipe{
		ID:   "r2",
		Name: "Quiche",
		RequiredIngredients: model.IngredientList{
			requiredIng("Eggs", 2, "pieces"),
			requiredIng("Butter", 50, "g"),
			requiredIng("Cream", 200, "ml"),
		},
		RequiredAppliances: model.ApplianceList{{ID: "a", Name: "Oven"}},
	}

	recs := RecommendAt([]model.Recipe{lowerFeasibility, higherFeasibility}, kitchen, 5, testNow)

	require.Len(t, recs, 2)
	assert.Equal(t, recs[0].Score, recs[1].Score)
	assert.Equal(t, "Curry", recs[0].Recipe.Name, "score ties break on raw feasibility")
}

func TestRecommendBonusIgnoresSufficiency(t *testing.T) {
	// Only 6 eggs on hand but the recipe wants 12: infeasible, yet the
	// expiring eggs still earn the waste-reduction bonus.
	recipe := model.Recipe{
		ID:                  "r",
		Name:                "Meringue Tower",
		RequiredIngredients: model.IngredientList{requiredIng("Eggs", 12, "pieces")},
	}

	recs := RecommendAt([]model.Recipe{recipe}, expiringKitchen(), 5, testNow)

	require.Len(t, recs, 1)
	assert.Equal(t, 85, recs[0].Match.FeasibilityScore)
	assert.Equal(t, 105, recs[0].Score)
	assert.Len(t, recs[0].ExpiringUsed, 1)
}
