// Command migrate runs schema operations for a SQL store.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"

	"toolverse/internal/config"
	"toolverse/internal/database"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func usage() error {
	return fmt.Errorf("usage: go run ./cmd/migrate <up|status>")
}

func run() error {
	flag.Parse()
	if flag.NArg() < 1 {
		return usage()
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if cfg.StoreDriver == config.DriverMemory {
		return fmt.Errorf("STORE_DRIVER is %q; nothing to migrate", cfg.StoreDriver)
	}

	db, err := database.ConnectWithOptions(cfg, database.ConnectOptions{ApplySchema: false})
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		defer func() { _ = sqlDB.Close() }()
	}

	ctx := context.Background()
	switch strings.ToLower(strings.TrimSpace(flag.Arg(0))) {
	case "up":
		if err := database.Migrate(db.WithContext(ctx)); err != nil {
			return err
		}
		log.Println("schema applied")
	case "status":
		status, err := database.SchemaStatus(ctx, db)
		if err != nil {
			return fmt.Errorf("schema status failed: %w", err)
		}
		for _, s := range status {
			state := "missing"
			if s.Exists {
				state = "present"
			}
			log.Printf("%-12s %s", s.Table, state)
		}
	default:
		return usage()
	}

	return nil
}
