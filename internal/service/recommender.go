package service

import (
	"sort"
	"time"

	"github.com/pantrychef/backend/internal/model"
)

// Recommendation tuning. ExpiringBonus rewards using up ingredients that are
// about to expire; it is additive on top of the feasibility score and never
// penalizes.
var ExpiringBonus = 20

// DefaultMaxRecommendations caps the recommendation list.
const DefaultMaxRecommendations = 5

// ExpiringIngredient names an inventory ingredient that contributed an
// expiration bonus, with its remaining days for display.
type ExpiringIngredient struct {
	Name     string `json:"name"`
	DaysLeft int    `json:"days_left"`
}

// Recommendation is one ranked entry: the recipe, its match against the
// snapshot, the combined recommendation score, and the expiring ingredients
// that boosted it.
type Recommendation struct {
	Recipe       model.Recipe         `json:"recipe"`
	Match        MatchResult          `json:"match"`
	Score        int                  `json:"score"`
	ExpiringUsed []ExpiringIngredient `json:"expiring_used"`
}

// RecommendAt ranks the catalog against a kitchen snapshot as of a given
// clock. Every recipe gets score = feasibility + ExpiringBonus per required
// ingredient whose inventory match is expiring soon; sufficiency does not
// matter for the bonus, only presence by name. Recipes sort descending by
// score, then by raw feasibility, with stable order beyond that. When at
// least one recipe is fully feasible (score 100) the result is restricted to
// fully feasible recipes only; otherwise the top maxCount of the whole
// catalog is returned.
func RecommendAt(recipes []model.Recipe, kitchen model.KitchenState, maxCount int, now time.Time) []Recommendation {
	if maxCount <= 0 {
		maxCount = DefaultMaxRecommendations
	}

	scored := make([]Recommendation, 0, len(recipes))
	for _, recipe := range recipes {
		match := MatchRecipe(recipe, kitchen)

		expiring := []ExpiringIngredient{}
		for _, required := range recipe.RequiredIngredients {
			found, ok := kitchen.IngredientByName(required.Name)
			if !ok || !IsExpiringSoonAt(found, DefaultExpiringThresholdDays, now) {
				continue
			}
			if days, hasDate := DaysUntilExpirationAt(found, now); hasDate {
				expiring = append(expiring, ExpiringIngredient{Name: found.Name, DaysLeft: days})
			}
		}

		scored = append(scored, Recommendation{
			Recipe:       recipe,
			Match:        match,
			Score:        match.FeasibilityScore + len(expiring)*ExpiringBonus,
			ExpiringUsed: expiring,
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return scored[i].Match.FeasibilityScore > scored[j].Match.FeasibilityScore
	})

	// Fully feasible recipes crowd out everything else when any exist, even
	// an almost-ready recipe with a larger expiration bonus.
	canMake := make([]Recommendation, 0, len(scored))
	for _, rec := range scored {
		if rec.Match.FeasibilityScore == 100 {
			canMake = append(canMake, rec)
		}
	}
	if len(canMake) > 0 {
		scored = canMake
	}

	if len(scored) > maxCount {
		scored = scored[:maxCount]
	}
	return scored
}

// Recommend is RecommendAt evaluated against the wall clock.
func Recommend(recipes []model.Recipe, kitchen model.KitchenState, maxCount int) []Recommendation {
	return RecommendAt(recipes, kitchen, maxCount, time.Now())
}
