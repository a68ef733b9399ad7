package main

import (
	"context"
	"fmt"
	"log"

	"hrmslite.com/hrms/config"
	"hrmslite.com/hrms/hrms/store"
)

// Creates the tables (SQL) or unique indexes (MongoDB) of the configured store.
func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	s, err := store.Open(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to open %s store: %v", cfg.Store, err)
	}
	defer s.Close(ctx)

	if err := store.Migrate(ctx, s); err != nil {
		log.Fatalf("failed to migrate %s store: %v", cfg.Store, err)
	}
	fmt.Printf("[INFO] %s store is up to date\n", cfg.Store)
}
