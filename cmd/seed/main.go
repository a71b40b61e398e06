// Command main seeds a SQL store with the built-in catalog and optional fake tools.
package main

import (
	"context"
	"flag"
	"log"

	"toolverse/internal/bootstrap"
	"toolverse/internal/config"
)

func main() {
	demoTools := flag.Int("demo", 0, "Number of fake tools to add on top of the built-in catalog")
	fakerSeed := flag.Int64("faker-seed", 0, "Seed for reproducible fake tools (0 = random)")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.StoreDriver == config.DriverMemory {
		log.Fatalf("STORE_DRIVER is %q; seeding needs postgres or sqlite", cfg.StoreDriver)
	}

	log.Printf("Seeding %s store: built-in catalog + %d demo tools", cfg.StoreDriver, *demoTools)

	rt, err := bootstrap.InitRuntime(context.Background(), cfg, bootstrap.Options{
		SeedBuiltIns: true,
		DemoTools:    *demoTools,
		FakerSeed:    *fakerSeed,
	})
	if err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
	defer func() { _ = rt.Close() }()

	log.Println("Seeding complete")
}
