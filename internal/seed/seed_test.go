package seed

import (
	"context"
	"testing"
	"time"

	"toolverse/internal/catalog"
	"toolverse/internal/models"
	"toolverse/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestCatalog_SeedsBuiltInData(t *testing.T) {
	store := repository.NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, Catalog(ctx, store.Seeder, Options{PlaceholderUserID: "user-1", Now: now}))

	tools, err := store.Tools.List(ctx, catalog.ToolFilter{})
	require.NoError(t, err)
	require.Len(t, tools, 6)

	// featured first, then rating desc
	names := make([]string, 0, len(tools))
	for _, tool := range tools {
		names = append(names, tool.Name)
	}
	assert.Equal(t, []string{"ChatGPT", "GitHub Copilot", "Midjourney", "Stable Diffusion", "Jasper AI", "AIVA"}, names)

	posts, err := store.BlogPosts.List(ctx, catalog.BlogFilter{})
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "1", posts[0].ID)
	assert.Equal(t, 23500, posts[0].Views)

	user, err := store.Users.GetByID(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "demo", user.Username)
	assert.Equal(t, LockedPassword, user.Password)
}

func TestCatalog_IsIdempotent(t *testing.T) {
	store := repository.NewMemoryStore()
	ctx := context.Background()

	opts := Options{PlaceholderUserID: "user-1", DemoTools: 3, FakerSeed: 7, Now: now}
	require.NoError(t, Catalog(ctx, store.Seeder, opts))
	require.NoError(t, Catalog(ctx, store.Seeder, opts))

	tools, err := store.Tools.List(ctx, catalog.ToolFilter{})
	require.NoError(t, err)
	assert.Len(t, tools, 9)
}

func TestFactory_BuildTool(t *testing.T) {
	f := NewFactory(42, now)
	tool := f.BuildTool(func(t *models.Tool) { t.Category = "Productivity" })

	assert.Contains(t, tool.ID, "demo-")
	assert.NotEmpty(t, tool.Name)
	assert.NotEmpty(t, tool.ShortDescription)
	assert.True(t, tool.Pricing.Valid())
	require.NotNil(t, tool.Price)
	assert.Equal(t, "Productivity", tool.Category)
	assert.GreaterOrEqual(t, tool.Rating, 3.0)
	assert.LessOrEqual(t, tool.Rating, 5.0)
	assert.False(t, tool.CreatedAt.After(now))
}

func TestFactory_SameSeedSameTools(t *testing.T) {
	a := NewFactory(99, now).BuildTools(4)
	b := NewFactory(99, now).BuildTools(4)
	require.Len(t, a, 4)
	for i := range a {
		assert.Equal(t, a[i].ID, b[i].ID)
		assert.Equal(t, a[i].Name, b[i].Name)
	}
	assert.Empty(t, NewFactory(1, now).BuildTools(-1))
}

func TestTools_MatchBuiltInCatalog(t *testing.T) {
	tools := Tools(now)
	require.Len(t, tools, 6)
	for _, tool := range tools {
		assert.True(t, tool.Pricing.Valid(), tool.Name)
		assert.Equal(t, now, tool.CreatedAt)
		assert.Nil(t, tool.SubmittedBy)
	}
}
