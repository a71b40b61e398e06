// Package bootstrap assembles the runtime dependencies shared by the server and CLI commands.
package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"toolverse/internal/cache"
	"toolverse/internal/config"
	"toolverse/internal/database"
	"toolverse/internal/middleware"
	"toolverse/internal/repository"
	"toolverse/internal/seed"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Options control runtime initialization behavior.
type Options struct {
	SeedBuiltIns bool
	// DemoTools overrides cfg.DemoTools when non-negative.
	DemoTools int
	FakerSeed int64
}

// Runtime is the set of long-lived dependencies. DB is nil for the memory store and
// Redis is nil when caching is disabled or unreachable.
type Runtime struct {
	Store *repository.Store
	DB    *gorm.DB
	Redis *redis.Client
}

// OpenStore builds the entity store selected by cfg.StoreDriver.
func OpenStore(cfg *config.Config) (*repository.Store, *gorm.DB, error) {
	if cfg.StoreDriver == config.DriverMemory {
		return repository.NewMemoryStore(), nil, nil
	}

	db, err := database.Connect(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("database connection failed: %w", err)
	}
	return repository.NewGormStore(db), db, nil
}

// InitRuntime opens the store, connects Redis and optionally runs built-in seeding.
func InitRuntime(ctx context.Context, cfg *config.Config, opts Options) (*Runtime, error) {
	store, db, err := OpenStore(cfg)
	if err != nil {
		return nil, err
	}

	// nil when REDIS_URL is empty or unreachable
	rdb := cache.Connect(cfg.RedisURL)

	if opts.SeedBuiltIns {
		demo := cfg.DemoTools
		if opts.DemoTools >= 0 {
			demo = opts.DemoTools
		}
		if err := seed.Catalog(ctx, store.Seeder, seed.Options{
			PlaceholderUserID: cfg.PlaceholderUserID,
			DemoTools:         demo,
			FakerSeed:         opts.FakerSeed,
		}); err != nil {
			return nil, fmt.Errorf("failed to seed built-in catalog: %w", err)
		}
		middleware.Logger.InfoContext(ctx, "catalog seeded",
			slog.String("store", store.Backend),
			slog.Int("demo_tools", demo),
		)
	}

	return &Runtime{Store: store, DB: db, Redis: rdb}, nil
}

// Close releases the database and Redis connections.
func (r *Runtime) Close() error {
	var firstErr error
	if r.DB != nil {
		if sqlDB, err := r.DB.DB(); err == nil {
			if cerr := sqlDB.Close(); cerr != nil {
				firstErr = cerr
			}
		}
	}
	if r.Redis != nil {
		if cerr := r.Redis.Close(); cerr != nil && firstErr == nil {
			firstErr = cerr
		}
	}
	return firstErr
}
