// Package repository provides the entity store: data access interfaces for the
// catalog plus an in-memory and a GORM implementation.
package repository

import (
	"context"
	"errors"

	"toolverse/internal/catalog"
	"toolverse/internal/models"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned when a lookup or update targets an unknown record.
	ErrNotFound = errors.New("record not found")
	// ErrConflict is returned when a write would break a uniqueness rule.
	ErrConflict = errors.New("record conflicts with an existing record")
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
}

// ToolRepository defines the interface for tool data operations.
// Create assigns the id, creation time and resets rating and featured.
type ToolRepository interface {
	List(ctx context.Context, filter catalog.ToolFilter) ([]*models.Tool, error)
	GetByID(ctx context.Context, id string) (*models.Tool, error)
	GetByIDs(ctx context.Context, ids []string) ([]*models.Tool, error)
	Create(ctx context.Context, tool *models.Tool) error
}

// UserToolRepository defines the interface for a user's saved tools.
// ListByUser joins each link with its tool and silently drops links whose tool is gone.
type UserToolRepository interface {
	ListByUser(ctx context.Context, userID string) ([]*models.UserTool, error)
	Add(ctx context.Context, link *models.UserTool) error
	Remove(ctx context.Context, userID, toolID string) error
	Update(ctx context.Context, userID, toolID string, patch models.UserToolPatch) (*models.UserTool, error)
}

// BlogPostRepository defines the interface for blog post data operations.
// Create assigns the id, creation time and resets views and featured.
type BlogPostRepository interface {
	List(ctx context.Context, filter catalog.BlogFilter) ([]*models.BlogPost, error)
	GetByID(ctx context.Context, id string) (*models.BlogPost, error)
	Create(ctx context.Context, post *models.BlogPost) error
}

// Seeder loads fixture rows verbatim, keeping their ids, ratings and flags.
// Rows whose id already exists are skipped.
type Seeder interface {
	SeedTools(ctx context.Context, tools []*models.Tool) error
	SeedBlogPosts(ctx context.Context, posts []*models.BlogPost) error
	SeedUsers(ctx context.Context, users []*models.User) error
}

// Store bundles the four entity collections behind one handle.
type Store struct {
	Users     UserRepository
	Tools     ToolRepository
	UserTools UserToolRepository
	BlogPosts BlogPostRepository
	Seeder    Seeder
	// Backend names the implementation ("memory", "postgres", "sqlite").
	Backend string
}

func newID() string {
	return uuid.NewString()
}
