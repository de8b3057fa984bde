package main

import (
	"flag"
	"log"

	"github.com/pantrychef/backend/config"
	"github.com/pantrychef/backend/internal/database"
	"github.com/pantrychef/backend/internal/service"
)

func main() {
	seedFile := flag.String("file", "", "Path to the recipe seed JSON (defaults to CATALOG_SEED_FILE)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	path := cfg.CatalogSeedFile
	if *seedFile != "" {
		path = *seedFile
	}

	db, err := database.OpenCatalog(cfg)
	if err != nil {
		log.Fatalf("Failed to open catalog database: %v", err)
	}

	catalog, err := service.NewCatalogService(db)
	if err != nil {
		log.Fatalf("Failed to initialize catalog: %v", err)
	}

	n, err := catalog.SeedFromFile(path)
	if err != nil {
		log.Fatalf("Failed to seed catalog: %v", err)
	}
	log.Printf("Seeded %d recipes from %s (catalog now holds %d)", n, path, catalog.Count())
}
