package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/pantrychef/backend/config"
	"github.com/pantrychef/backend/internal/database"
	applog "github.com/pantrychef/backend/internal/pkg/log"
	"github.com/pantrychef/backend/internal/router"
	"github.com/pantrychef/backend/internal/server"
	"github.com/pantrychef/backend/internal/service"
	"github.com/pantrychef/backend/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := applog.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// State store: Redis when reachable, in-memory otherwise. A missing
	// store only costs persistence across restarts, never functionality.
	var store storage.StateStore
	if client, err := storage.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB); err != nil {
		logger.Warn("Redis unavailable, state will not survive restarts", zap.Error(err))
		store = storage.NewMemoryStore()
	} else {
		logger.Info("connected to Redis", zap.String("addr", cfg.RedisAddr))
		store = storage.NewRedisStore(client)
	}

	db, err := database.OpenCatalog(cfg)
	if err != nil {
		logger.Fatal("failed to open catalog database", zap.Error(err))
	}

	catalog, err := service.NewCatalogService(db)
	if err != nil {
		logger.Fatal("failed to load recipe catalog", zap.Error(err))
	}
	if catalog.Count() == 0 {
		if n, err := catalog.SeedFromFile(cfg.CatalogSeedFile); err != nil {
			logger.Warn("failed to seed recipe catalog", zap.Error(err))
		} else {
			logger.Info("seeded recipe catalog", zap.Int("recipes", n))
		}
	}

	kitchen := service.NewKitchenService(context.Background(), store, catalog, logger)

	srv := server.New(cfg.ServerHost, cfg.ServerPort, router.SetupRouter(kitchen, catalog, logger))

	errChan := make(chan error, 1)
	go func() {
		logger.Info("starting server", zap.String("port", cfg.ServerPort))
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			logger.Fatal("server error", zap.Error(err))
		}
	case sig := <-quit:
		logger.Info("received signal", zap.Stringer("signal", sig))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server shutdown error", zap.Error(err))
	}
	logger.Info("server stopped")
}
