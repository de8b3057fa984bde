package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloneIsIndependent(t *testing.T) {
	original := KitchenState{
		Ingredients: []Ingredient{{ID: "1", Name: "Eggs", Quantity: 6, Unit: "pieces"}},
		Appliances:  []Appliance{{ID: "a", Name: "Oven", Type: "cooking"}},
	}

	clone := original.Clone()
	clone.Ingredients[0].Quantity = 0
	clone.Appliances[0].Name = "Microwave"

	assert.Equal(t, 6.0, original.Ingredients[0].Quantity)
	assert.Equal(t, "Oven", original.Appliances[0].Name)
}

func TestIngredientByNameCaseInsensitive(t *testing.T) {
	state := KitchenState{
		Ingredients: []Ingredient{{ID: "1", Name: "Olive Oil", Quantity: 500, Unit: "ml"}},
	}

	found, ok := state.IngredientByName("olive oil")
	require.True(t, ok)
	assert.Equal(t, "1", found.ID)

	_, ok = state.IngredientByName("Sunflower Oil")
	assert.False(t, ok)
}

func TestHasApplianceCaseInsensitive(t *testing.T) {
	state := KitchenState{Appliances: []Appliance{{ID: "a", Name: "Stand Mixer"}}}

	assert.True(t, state.HasAppliance("stand mixer"))
	assert.False(t, state.HasAppliance("Blender"))
}
