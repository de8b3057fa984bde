package storage

import (
	"context"
	"sync"

	"github.com/pantrychef/backend/internal/model"
)

// StateStore is the persistence boundary for session state. Implementations
// treat the kitchen snapshot and shopping list as opaque blobs; the engine
// never depends on the storage medium.
//
// Load operations return ok=false when nothing has been stored yet, which
// callers treat as "start from defaults".
type StateStore interface {
	LoadKitchen(ctx context.Context) (model.KitchenState, bool, error)
	SaveKitchen(ctx context.Context, state model.KitchenState) error
	LoadShoppingList(ctx context.Context) ([]model.ListItem, bool, error)
	SaveShoppingList(ctx context.Context, items []model.ListItem) error
}

// MemoryStore is an in-process StateStore used in tests and for running
// without Redis.
type MemoryStore struct {
	mu         sync.Mutex
	kitchen    *model.KitchenState
	shopping   []model.ListItem
	hasListSet bool
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// LoadKitchen returns the stored snapshot, if any.
func (m *MemoryStore) LoadKitchen(ctx context.Context) (model.KitchenState, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.kitchen == nil {
		return model.KitchenState{}, false, nil
	}
	return m.kitchen.Clone(), true, nil
}

// SaveKitchen stores a snapshot.
func (m *MemoryStore) SaveKitchen(ctx context.Context, state model.KitchenState) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	clone := state.Clone()
	m.kitchen = &clone
	return nil
}

// LoadShoppingList returns the stored shopping list, if any.
func (m *MemoryStore) LoadShoppingList(ctx context.Context) ([]model.ListItem, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.hasListSet {
		return nil, false, nil
	}
	out := make([]model.ListItem, len(m.shopping))
	copy(out, m.shopping)
	return out, true, nil
}

// SaveShoppingList stores the shopping list.
func (m *MemoryStore) SaveShoppingList(ctx context.Context, items []model.ListItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.shopping = make([]model.ListItem, len(items))
	copy(m.shopping, items)
	m.hasListSet = true
	return nil
}
