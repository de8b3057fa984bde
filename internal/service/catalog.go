package service

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/pantrychef/backend/internal/model"
)

// RecipeCatalog is the read-only recipe source consumed by the kitchen
// orchestrator. The catalog is immutable for the lifetime of a session.
type RecipeCatalog interface {
	Recipes() []model.Recipe
	Get(id string) (model.Recipe, bool)
}

// CatalogService loads the recipe catalog from the database once and serves
// it from memory for the rest of the session.
type CatalogService struct {
	db      *gorm.DB
	recipes []model.Recipe
	byID    map[string]model.Recipe
}

// NewCatalogService migrates the recipe table and loads the catalog.
func NewCatalogService(db *gorm.DB) (*CatalogService, error) {
	if err := db.AutoMigrate(&model.Recipe{}); err != nil {
		return nil, fmt.Errorf("failed to migrate recipe catalog: %w", err)
	}

	s := &CatalogService{db: db}
	if err := s.reload(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *CatalogService) reload() error {
	var recipes []model.Recipe
	if err := s.db.Order("created_at, id").Find(&recipes).Error; err != nil {
		return fmt.Errorf("failed to load recipe catalog: %w", err)
	}

	s.recipes = recipes
	s.byID = make(map[string]model.Recipe, len(recipes))
	for _, r := range recipes {
		s.byID[r.ID] = r
	}
	return nil
}

// Recipes returns the catalog in load order.
func (s *CatalogService) Recipes() []model.Recipe {
	out := make([]model.Recipe, len(s.recipes))
	copy(out, s.recipes)
	return out
}

// Get returns the recipe with the given id, if present.
func (s *CatalogService) Get(id string) (model.Recipe, bool) {
	r, ok := s.byID[id]
	return r, ok
}

// Count returns the number of catalog entries.
func (s *CatalogService) Count() int {
	return len(s.recipes)
}

// SeedFromFile upserts recipes from a JSON file into the catalog table and
// reloads the in-memory catalog. Entries without an id get one assigned.
func (s *CatalogService) SeedFromFile(path string) (int, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read seed file %s: %w", path, err)
	}

	var recipes []model.Recipe
	if err := json.Unmarshal(raw, &recipes); err != nil {
		return 0, fmt.Errorf("failed to parse seed file %s: %w", path, err)
	}

	for i := range recipes {
		if recipes[i].ID == "" {
			recipes[i].ID = uuid.NewString()
		}
	}

	if len(recipes) > 0 {
		err := s.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&recipes).Error
		if err != nil {
			return 0, fmt.Errorf("failed to seed recipe catalog: %w", err)
		}
	}

	if err := s.reload(); err != nil {
		return 0, err
	}
	return len(recipes), nil
}
