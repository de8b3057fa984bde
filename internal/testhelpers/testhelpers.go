// Package testhelpers wires in-memory collaborators for handler tests.
package testhelpers

import (
	"context"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pantrychef/backend/internal/model"
	"github.com/pantrychef/backend/internal/router"
	"github.com/pantrychef/backend/internal/service"
	"github.com/pantrychef/backend/internal/storage"
)

// FakeCatalog is an in-memory RecipeCatalog.
type FakeCatalog struct {
	Entries []model.Recipe
}

func (c *FakeCatalog) Recipes() []model.Recipe {
	out := make([]model.Recipe, len(c.Entries))
	copy(out, c.Entries)
	return out
}

func (c *FakeCatalog) Get(id string) (model.Recipe, bool) {
	for _, r := range c.Entries {
		if r.ID == id {
			return r, true
		}
	}
	return model.Recipe{}, false
}

// NewTestRouter builds the full route tree over an in-memory store seeded
// with the given kitchen state.
func NewTestRouter(t *testing.T, kitchen model.KitchenState, recipes ...model.Recipe) (*gin.Engine, *service.KitchenService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := storage.NewMemoryStore()
	require.NoError(t, store.SaveKitchen(context.Background(), kitchen))

	catalog := &FakeCatalog{Entries: recipes}
	logger := zap.NewNop()
	kitchenService := service.NewKitchenService(context.Background(), store, catalog, logger)

	return router.SetupRouter(kitchenService, catalog, logger), kitchenService
}
