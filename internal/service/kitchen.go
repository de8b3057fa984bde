package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pantrychef/backend/internal/model"
	"github.com/pantrychef/backend/internal/storage"
)

// transactionRecord is the single-slot undo journal: the snapshot as it was
// immediately before the last cook, plus the shopping list items that cook
// added.
type transactionRecord struct {
	prior model.KitchenState
	added []model.ListItem
}

// CookResult is what a successful cook transaction hands back to the caller.
type CookResult struct {
	Kitchen    model.KitchenState `json:"kitchen"`
	AddedItems []model.ListItem   `json:"added_items"`
}

// KitchenService owns the session state: the current kitchen snapshot, the
// shopping list, and the undo slot. All mutation goes through its methods;
// snapshots handed out or taken in are copied, never shared. State is
// persisted through the StateStore after every mutation, and store failures
// degrade to a log line rather than failing the operation.
type KitchenService struct {
	mu       sync.Mutex
	store    storage.StateStore
	catalog  RecipeCatalog
	logger   *zap.Logger
	kitchen  model.KitchenState
	shopping []model.ListItem
	undo     *transactionRecord
	now      func() time.Time
}

// NewKitchenService loads session state from the store, falling back to the
// default seed kitchen and an empty shopping list when nothing is stored or
// the store is unavailable.
func NewKitchenService(ctx context.Context, store storage.StateStore, catalog RecipeCatalog, logger *zap.Logger) *KitchenService {
	s := &KitchenService{
		store:   store,
		catalog: catalog,
		logger:  logger,
		now:     time.Now,
	}

	kitchen, ok, err := store.LoadKitchen(ctx)
	if err != nil {
		logger.Warn("failed to load kitchen state, starting from defaults", zap.Error(err))
		ok = false
	}
	if !ok {
		kitchen = DefaultKitchen(s.now())
	}
	s.kitchen = kitchen

	items, ok, err := store.LoadShoppingList(ctx)
	if err != nil {
		logger.Warn("failed to load shopping list, starting empty", zap.Error(err))
		ok = false
	}
	if !ok {
		items = []model.ListItem{}
	}
	s.shopping = items

	return s
}

// Kitchen returns a copy of the current snapshot.
func (s *KitchenService) Kitchen() model.KitchenState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.kitchen.Clone()
}

// ShoppingList returns a copy of the current shopping list.
func (s *KitchenService) ShoppingList() []model.ListItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copyShoppingLocked()
}

// CanUndo reports whether an undoable cook transaction exists.
func (s *KitchenService) CanUndo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.undo != nil
}

// Match scores a catalog recipe against the current snapshot.
func (s *KitchenService) Match(recipeID string) (model.Recipe, MatchResult, error) {
	recipe, ok := s.catalog.Get(recipeID)
	if !ok {
		return model.Recipe{}, MatchResult{}, ErrRecipeNotFound
	}
	return recipe, MatchRecipe(recipe, s.Kitchen()), nil
}

// Recommendations ranks the catalog against the current snapshot.
func (s *KitchenService) Recommendations(maxCount int) []Recommendation {
	return RecommendAt(s.catalog.Recipes(), s.Kitchen(), maxCount, s.now())
}

// Cook applies a recipe's consumption to the kitchen. Feasibility is
// re-checked under the lock immediately before applying, even if the caller
// checked earlier, so state drift between check and commit cannot slip
// through. On success the prior snapshot and the newly added shopping list
// items are captured in the undo slot, replacing whatever was there.
func (s *KitchenService) Cook(ctx context.Context, recipeID string) (CookResult, error) {
	recipe, ok := s.catalog.Get(recipeID)
	if !ok {
		return CookResult{}, ErrRecipeNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if ok, shortfalls := CanCookRecipe(recipe, s.kitchen); !ok {
		return CookResult{}, &NotCookableError{RecipeName: recipe.Name, Shortfalls: shortfalls}
	}

	added := []model.ListItem{}
	for _, depleted := range DepletedIngredients(recipe, s.kitchen) {
		if s.listHasNameLocked(depleted.Name) {
			continue
		}
		added = append(added, model.ListItem{
			ID:           uuid.NewString(),
			Name:         depleted.Name,
			Quantity:     depleted.Quantity,
			Unit:         depleted.Unit,
			SourceRecipe: recipe.Name,
		})
	}

	prior := s.kitchen.Clone()
	s.kitchen = ApplyRecipeToKitchen(recipe, s.kitchen)
	s.shopping = append(s.shopping, added...)
	s.undo = &transactionRecord{prior: prior, added: added}

	s.saveKitchenLocked(ctx)
	s.saveShoppingLocked(ctx)

	s.logger.Info("cooked recipe",
		zap.String("recipe", recipe.Name),
		zap.Int("shopping_items_added", len(added)))

	return CookResult{Kitchen: s.kitchen.Clone(), AddedItems: added}, nil
}

// UndoLastCook reverts exactly the most recent cook transaction: the kitchen
// returns to the captured prior snapshot and the shopping list items that
// cook added are removed. The slot is consumed; a second undo returns
// ErrNothingToUndo.
func (s *KitchenService) UndoLastCook(ctx context.Context) (model.KitchenState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.undo == nil {
		return model.KitchenState{}, ErrNothingToUndo
	}

	record := s.undo
	s.undo = nil
	s.kitchen = record.prior.Clone()

	if len(record.added) > 0 {
		addedIDs := make(map[string]struct{}, len(record.added))
		for _, item := range record.added {
			addedIDs[item.ID] = struct{}{}
		}
		kept := s.shopping[:0]
		for _, item := range s.shopping {
			if _, wasAdded := addedIDs[item.ID]; !wasAdded {
				kept = append(kept, item)
			}
		}
		s.shopping = kept
	}

	s.saveKitchenLocked(ctx)
	s.saveShoppingLocked(ctx)

	s.logger.Info("undid last cook", zap.Int("shopping_items_removed", len(record.added)))

	return s.kitchen.Clone(), nil
}

// AddIngredient appends a new inventory ingredient. Manual inventory edits
// invalidate the undo slot.
func (s *KitchenService) AddIngredient(ctx context.Context, ing model.Ingredient) (model.Ingredient, error) {
	if ing.ID == "" {
		ing.ID = uuid.NewString()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.kitchen.Ingredients = append(s.kitchen.Ingredients, ing)
	s.undo = nil
	s.saveKitchenLocked(ctx)
	return ing, nil
}

// UpdateIngredient replaces the ingredient with the given id. An update that
// drops the quantity to zero or below removes the ingredient; the inventory
// never holds zero-quantity entries.
func (s *KitchenService) UpdateIngredient(ctx context.Context, id string, ing model.Ingredient) (model.Ingredient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.ingredientIndexLocked(id)
	if idx == -1 {
		return model.Ingredient{}, ErrIngredientNotFound
	}

	ing.ID = id
	if ing.Quantity <= 0 {
		s.kitchen.Ingredients = append(s.kitchen.Ingredients[:idx], s.kitchen.Ingredients[idx+1:]...)
	} else {
		s.kitchen.Ingredients[idx] = ing
	}

	s.undo = nil
	s.saveKitchenLocked(ctx)
	return ing, nil
}

// RemoveIngredient deletes an inventory ingredient by id.
func (s *KitchenService) RemoveIngredient(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.ingredientIndexLocked(id)
	if idx == -1 {
		return ErrIngredientNotFound
	}

	s.kitchen.Ingredients = append(s.kitchen.Ingredients[:idx], s.kitchen.Ingredients[idx+1:]...)
	s.undo = nil
	s.saveKitchenLocked(ctx)
	return nil
}

// AddAppliance appends a new appliance. Manual inventory edits invalidate the
// undo slot.
func (s *KitchenService) AddAppliance(ctx context.Context, app model.Appliance) (model.Appliance, error) {
	if app.ID == "" {
		app.ID = uuid.NewString()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.kitchen.Appliances = append(s.kitchen.Appliances, app)
	s.undo = nil
	s.saveKitchenLocked(ctx)
	return app, nil
}

// RemoveAppliance deletes an appliance by id.
func (s *KitchenService) RemoveAppliance(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, app := range s.kitchen.Appliances {
		if app.ID == id {
			s.kitchen.Appliances = append(s.kitchen.Appliances[:i], s.kitchen.Appliances[i+1:]...)
			s.undo = nil
			s.saveKitchenLocked(ctx)
			return nil
		}
	}
	return ErrApplianceNotFound
}

// AddListItem appends a shopping list item unless one with the same name
// already exists (case-insensitive). Shopping list edits do not touch the
// undo slot; it tracks kitchen snapshots only.
func (s *KitchenService) AddListItem(ctx context.Context, item model.ListItem) (model.ListItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listHasNameLocked(item.Name) {
		return model.ListItem{}, ErrDuplicateListItem
	}

	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	s.shopping = append(s.shopping, item)
	s.saveShoppingLocked(ctx)
	return item, nil
}

// RemoveListItem deletes a shopping list item by id.
func (s *KitchenService) RemoveListItem(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, item := range s.shopping {
		if item.ID == id {
			s.shopping = append(s.shopping[:i], s.shopping[i+1:]...)
			s.saveShoppingLocked(ctx)
			return nil
		}
	}
	return ErrListItemNotFound
}

// ClearList removes every shopping list item.
func (s *KitchenService) ClearList(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.shopping = []model.ListItem{}
	s.saveShoppingLocked(ctx)
}

func (s *KitchenService) ingredientIndexLocked(id string) int {
	for i, ing := range s.kitchen.Ingredients {
		if ing.ID == id {
			return i
		}
	}
	return -1
}

func (s *KitchenService) listHasNameLocked(name string) bool {
	for _, item := range s.shopping {
		if strings.EqualFold(item.Name, name) {
			return true
		}
	}
	return false
}

func (s *KitchenService) copyShoppingLocked() []model.ListItem {
	out := make([]model.ListItem, len(s.shopping))
	copy(out, s.shopping)
	return out
}

func (s *KitchenService) saveKitchenLocked(ctx context.Context) {
	if err := s.store.SaveKitchen(ctx, s.kitchen); err != nil {
		s.logger.Warn("failed to save kitchen state", zap.Error(err))
	}
}

func (s *KitchenService) saveShoppingLocked(ctx context.Context) {
	if err := s.store.SaveShoppingList(ctx, s.shopping); err != nil {
		s.logger.Warn("failed to save shopping list", zap.Error(err))
	}
}
