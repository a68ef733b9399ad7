package store

import (
	"context"
	"fmt"

	"hrmslite.com/hrms/config"
	"hrmslite.com/hrms/core"
	hrms "hrmslite.com/hrms/hrms/core"
	"hrmslite.com/hrms/hrms/store/gormstore"
	"hrmslite.com/hrms/hrms/store/memstore"
	"hrmslite.com/hrms/hrms/store/mongostore"
)

// Open connects the backend named by cfg.Store.
func Open(ctx context.Context, cfg *config.Config) (hrms.Store, error) {
	switch cfg.Store {
	case config.StoreMemory:
		fmt.Printf("[INFO] using in-memory store\n")
		return memstore.New(), nil

	case config.StoreMongo:
		s, err := mongostore.Connect(ctx, mongostore.Options{
			URI:          cfg.MongoURI,
			DatabaseName: cfg.DatabaseName,
			Transactions: cfg.MongoTransactions,
		})
		if err != nil {
			return nil, err
		}
		if err := s.EnsureIndexes(ctx); err != nil {
			_ = s.Close(ctx)
			return nil, err
		}
		fmt.Printf("[INFO] using mongodb database %s (transactions: %t)\n", cfg.DatabaseName, cfg.MongoTransactions)
		return s, nil

	case config.StoreMySQL, config.StorePostgres:
		dm, err := core.New(core.Dialect(cfg.Store), cfg.DSN, cfg.DBMaxConnections, core.ParseLogLevel(cfg.DBLogLevel))
		if err != nil {
			return nil, err
		}
		fmt.Printf("[INFO] using %s store\n", cfg.Store)
		return gormstore.New(dm), nil
	}
	return nil, fmt.Errorf("unknown store %q", cfg.Store)
}

// Migrate creates the tables or indexes the configured backend needs.
func Migrate(ctx context.Context, s hrms.Store) error {
	switch s := s.(type) {
	case *gormstore.Store:
		return s.Migrate(ctx)
	case *mongostore.Store:
		return s.EnsureIndexes(ctx)
	}
	return nil
}
