package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"toolverse/internal/cache"
	"toolverse/internal/catalog"
	"toolverse/internal/models"
	"toolverse/internal/repository"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

// toolRepoStub is a stub for repository.ToolRepository.
type toolRepoStub struct {
	listFn     func(context.Context, catalog.ToolFilter) ([]*models.Tool, error)
	getByIDFn  func(context.Context, string) (*models.Tool, error)
	getByIDsFn func(context.Context, []string) ([]*models.Tool, error)
	createFn   func(context.Context, *models.Tool) error
}

func (s *toolRepoStub) List(ctx context.Context, filter catalog.ToolFilter) ([]*models.Tool, error) {
	return s.listFn(ctx, filter)
}
func (s *toolRepoStub) GetByID(ctx context.Context, id string) (*models.Tool, error) {
	return s.getByIDFn(ctx, id)
}
func (s *toolRepoStub) GetByIDs(ctx context.Context, ids []string) ([]*models.Tool, error) {
	return s.getByIDsFn(ctx, ids)
}
func (s *toolRepoStub) Create(ctx context.Context, tool *models.Tool) error {
	return s.createFn(ctx, tool)
}

func noopToolRepo() *toolRepoStub {
	return &toolRepoStub{
		listFn:     func(_ context.Context, _ catalog.ToolFilter) ([]*models.Tool, error) { return []*models.Tool{}, nil },
		getByIDFn:  func(_ context.Context, _ string) (*models.Tool, error) { return nil, repository.ErrNotFound },
		getByIDsFn: func(_ context.Context, _ []string) ([]*models.Tool, error) { return []*models.Tool{}, nil },
		createFn:   func(_ context.Context, _ *models.Tool) error { return nil },
	}
}

func setupCache(t *testing.T) *cache.Cache {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return cache.New(rdb)
}

func requireAppError(t *testing.T, err error, code string) *models.AppError {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %T: %v", err, err)
	require.Equal(t, code, appErr.Code)
	return appErr
}

func ptr[T any](v T) *T { return &v }

func catalogTool(id, name string) *models.Tool {
	return &models.Tool{
		ID:               id,
		Name:             name,
		Description:      name + " description",
		ShortDescription: name + " short",
		Category:         "Writing",
		Pricing:          models.PricingFree,
		Website:          "https://example.com/" + id,
		Rating:           4.5,
		CreatedAt:        time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func seededStore(t *testing.T, tools ...*models.Tool) *repository.Store {
	t.Helper()
	store := repository.NewMemoryStore()
	require.NoError(t, store.Seeder.SeedTools(context.Background(), tools))
	return store
}
