package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/pantrychef/backend/config"
)

// OpenCatalog opens the recipe catalog database using the configured driver.
// SQLite is the default for local single-user use; postgres is available for
// shared deployments.
func OpenCatalog(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.CatalogDriver {
	case "postgres":
		dialector = postgres.Open(cfg.CatalogDSN)
	case "sqlite":
		dialector = sqlite.Open(cfg.CatalogDSN)
	default:
		return nil, fmt.Errorf("unsupported catalog driver %q", cfg.CatalogDriver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog database: %w", err)
	}
	return db, nil
}
