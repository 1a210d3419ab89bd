package main

import (
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/snippet-engine/backend/internal/api"
	"github.com/snippet-engine/backend/internal/catalog"
	"github.com/snippet-engine/backend/internal/config"
	"github.com/snippet-engine/backend/internal/engine"
	"github.com/snippet-engine/backend/internal/storage"
)

func main() {
	// Setup Logging
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	entry := logger.WithField("service", "snippet-api")

	entry.Info("Starting Snippet Engine API Service")

	// 1. Config (.env overrides are optional)
	if err := godotenv.Load(); err == nil {
		entry.Info("Loaded .env file")
	}
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		entry.Fatalf("Invalid configuration: %v", err)
	}

	// 2. Storage
	store, err := storage.NewFileStorage(cfg.Engine.CatalogPath)
	if err != nil {
		entry.Fatalf("Failed to initialize storage: %v", err)
	}

	// 3. Catalog
	cat, err := store.Load()
	if err != nil {
		entry.Fatalf("Failed to load catalog: %v", err)
	}
	entry.Infof("Loaded catalog with %d items in %d categories", cat.Len(), len(cat.Categories))

	// 4. Engine
	eng, err := engine.NewEngine(cfg, entry, cat)
	if err != nil {
		entry.Fatalf("Failed to initialize engine: %v", err)
	}
	eng.OnSelect(func(item catalog.Item) {
		entry.WithField("item", item.Name).Info("Item selected")
	})

	// 5. API Server
	server := api.NewServer(eng, entry)

	entry.Infof("Snippet Engine API ready on %s", cfg.Server.Port)
	if err := server.Start(cfg.Server.Port); err != nil {
		entry.Fatal(err)
	}
}
