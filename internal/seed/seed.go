package seed

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"toolverse/internal/middleware"
	"toolverse/internal/models"
	"toolverse/internal/repository"
)

// Options configures a catalog seeding run.
type Options struct {
	// PlaceholderUserID is the account seeded for the fixed identity; empty skips it.
	PlaceholderUserID string
	// DemoTools is the number of fake tools added on top of the built-in catalog.
	DemoTools int
	// FakerSeed makes demo tools reproducible; zero is random.
	FakerSeed int64
	Now       time.Time
}

// Catalog loads the built-in tools, blog posts and placeholder user, then any demo tools.
// Rows that already exist are left untouched, so running it twice is safe.
func Catalog(ctx context.Context, s repository.Seeder, opts Options) error {
	now := opts.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}

	if err := s.SeedTools(ctx, Tools(now)); err != nil {
		return fmt.Errorf("seed tools: %w", err)
	}
	if err := s.SeedBlogPosts(ctx, BlogPosts()); err != nil {
		return fmt.Errorf("seed blog posts: %w", err)
	}
	if opts.PlaceholderUserID != "" {
		if err := s.SeedUsers(ctx, []*models.User{PlaceholderUser(opts.PlaceholderUserID, now)}); err != nil {
			return fmt.Errorf("seed placeholder user: %w", err)
		}
	}

	if opts.DemoTools > 0 {
		demo := NewFactory(opts.FakerSeed, now).BuildTools(opts.DemoTools)
		if err := s.SeedTools(ctx, demo); err != nil {
			return fmt.Errorf("seed demo tools: %w", err)
		}
	}

	middleware.Logger.InfoContext(ctx, "catalog seeded",
		slog.Int("tools", len(Tools(now))+opts.DemoTools),
		slog.Int("blog_posts", len(BlogPosts())),
	)
	return nil
}
