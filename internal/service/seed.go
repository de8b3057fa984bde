package service

import (
	"time"

	"github.com/google/uuid"

	"github.com/pantrychef/backend/internal/model"
)

// DefaultKitchen is the starter inventory used when the state store has
// nothing saved yet: a couple of perishables with near expirations plus
// pantry staples and basic appliances.
func DefaultKitchen(now time.Time) model.KitchenState {
	date := func(daysFromNow int) string {
		return now.AddDate(0, 0, daysFromNow).Format(expirationDateLayout)
	}

	return model.KitchenState{
		Ingredients: []model.Ingredient{
			{
				ID:              uuid.NewString(),
				Name:            "Eggs",
				Quantity:        6,
				Unit:            "pieces",
				Category:        model.CategoryDairyEggs,
				StorageLocation: model.LocationFridge,
				ExpirationDate:  date(3),
			},
			{
				ID:              uuid.NewString(),
				Name:            "Butter",
				Quantity:        200,
				Unit:            "g",
				Category:        model.CategoryDairyEggs,
				StorageLocation: model.LocationFridge,
				ExpirationDate:  date(5),
			},
			{
				ID:              uuid.NewString(),
				Name:            "Flour",
				Quantity:        500,
				Unit:            "g",
				Category:        model.CategoryPantryStaple,
				StorageLocation: model.LocationPantry,
			},
			{
				ID:              uuid.NewString(),
				Name:            "Sugar",
				Quantity:        300,
				Unit:            "g",
				Category:        model.CategoryPantryStaple,
				StorageLocation: model.LocationPantry,
			},
		},
		Appliances: []model.Appliance{
			{ID: uuid.NewString(), Name: "Oven", Type: "cooking"},
			{ID: uuid.NewString(), Name: "Mixer", Type: "preparation"},
		},
	}
}
