package main

import (
	"context"
	"fmt"
	"log"

	"github.com/plumeworks/plume-backend/internal/config"
	"github.com/plumeworks/plume-backend/internal/db"
)

// init-db drops and recreates the schema at the configured database path.
// All existing data is lost.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	pool, err := db.Open(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer pool.Close()

	provider := db.NewProvider(pool)
	defer provider.Release()

	if err := db.InitSchema(context.Background(), provider); err != nil {
		log.Fatalf("Failed to initialize schema: %v", err)
	}

	fmt.Println("Initialized the database.")
}
