package service

import (
	"context"
	"errors"
	"testing"

	"toolverse/internal/catalog"
	"toolverse/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validToolInput() CreateToolInput {
	return CreateToolInput{
		Name:             "Whisper",
		Description:      "Speech recognition model",
		ShortDescription: "Speech to text",
		Category:         "Audio",
		Pricing:          models.PricingFree,
		Website:          "https://openai.com/research/whisper",
	}
}

func TestToolService_CreateRejectsInvalidInput(t *testing.T) {
	repo := noopToolRepo()
	called := false
	repo.createFn = func(_ context.Context, _ *models.Tool) error {
		called = true
		return nil
	}
	svc := NewToolService(repo, nil, nil, nil)

	in := validToolInput()
	in.Name = "   "
	in.Pricing = "enterprise"
	in.Website = "not a url"

	_, err := svc.Create(context.Background(), in)
	appErr := requireAppError(t, err, models.CodeValidation)
	fields := make([]string, 0, len(appErr.Fields))
	for _, f := range appErr.Fields {
		fields = append(fields, f.Field)
	}
	assert.ElementsMatch(t, []string{"name", "pricing", "website"}, fields)
	assert.False(t, called)
}

func TestToolService_CreateAssignsServerFields(t *testing.T) {
	store := seededStore(t)
	svc := NewToolService(store.Tools, nil, nil, nil)

	in := validToolInput()
	in.SubmittedBy = ptr("user-1")
	in.ImageURL = ptr("")

	tool, err := svc.Create(context.Background(), in)
	require.NoError(t, err)
	assert.NotEmpty(t, tool.ID)
	assert.Zero(t, tool.Rating)
	assert.False(t, tool.Featured)
	assert.False(t, tool.CreatedAt.IsZero())
	assert.Nil(t, tool.ImageURL)
	require.NotNil(t, tool.SubmittedBy)
	assert.Equal(t, "user-1", *tool.SubmittedBy)

	got, err := svc.Get(context.Background(), tool.ID)
	require.NoError(t, err)
	assert.Equal(t, "Whisper", got.Name)
}

func TestToolService_CreateTreatsBlankOptionalFieldsAsAbsent(t *testing.T) {
	svc := NewToolService(seededStore(t).Tools, nil, nil, nil)

	in := validToolInput()
	in.Price = ptr("   ")
	in.ImageURL = ptr("")
	in.SubmittedBy = ptr("")

	tool, err := svc.Create(context.Background(), in)
	require.NoError(t, err)
	assert.Nil(t, tool.Price)
	assert.Nil(t, tool.ImageURL)
	assert.Nil(t, tool.SubmittedBy)

	in.ImageURL = ptr("not a url")
	_, err = svc.Create(context.Background(), in)
	appErr := requireAppError(t, err, models.CodeValidation)
	require.Len(t, appErr.Fields, 1)
	assert.Equal(t, "imageUrl", appErr.Fields[0].Field)
}

func TestToolService_GetNotFound(t *testing.T) {
	svc := NewToolService(noopToolRepo(), nil, nil, nil)

	_, err := svc.Get(context.Background(), "missing")
	appErr := requireAppError(t, err, models.CodeNotFound)
	assert.Equal(t, "Tool with ID missing not found", appErr.Message)
}

func TestToolService_ListHidesStoreFailures(t *testing.T) {
	repo := noopToolRepo()
	repo.listFn = func(_ context.Context, _ catalog.ToolFilter) ([]*models.Tool, error) {
		return nil, errors.New("connection refused")
	}
	svc := NewToolService(repo, nil, nil, nil)

	_, err := svc.List(context.Background(), catalog.ToolFilter{})
	requireAppError(t, err, models.CodeInternal)
}

func TestToolService_ListIsCachedUntilCreate(t *testing.T) {
	repo := noopToolRepo()
	calls := 0
	repo.listFn = func(_ context.Context, _ catalog.ToolFilter) ([]*models.Tool, error) {
		calls++
		return []*models.Tool{catalogTool("1", "ChatGPT")}, nil
	}
	repo.createFn = func(_ context.Context, tool *models.Tool) error {
		tool.ID = "new"
		return nil
	}
	svc := NewToolService(repo, setupCache(t), nil, nil)
	ctx := context.Background()

	for range 2 {
		tools, err := svc.List(ctx, catalog.ToolFilter{Category: "Writing"})
		require.NoError(t, err)
		require.Len(t, tools, 1)
		assert.Equal(t, "ChatGPT", tools[0].Name)
	}
	assert.Equal(t, 1, calls)

	_, err := svc.List(ctx, catalog.ToolFilter{Category: "Audio"})
	require.NoError(t, err)
	assert.Equal(t, 2, calls)

	_, err = svc.Create(ctx, validToolInput())
	require.NoError(t, err)

	_, err = svc.List(ctx, catalog.ToolFilter{Category: "Writing"})
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestToolService_GetDoesNotCacheMisses(t *testing.T) {
	repo := noopToolRepo()
	calls := 0
	repo.getByIDFn = func(_ context.Context, _ string) (*models.Tool, error) {
		calls++
		return nil, errors.New("record not found")
	}
	svc := NewToolService(repo, setupCache(t), nil, nil)

	_, err := svc.Get(context.Background(), "1")
	require.Error(t, err)
	_, err = svc.Get(context.Background(), "1")
	require.Error(t, err)
	assert.Equal(t, 2, calls)
}

func TestToolService_Compare(t *testing.T) {
	repo := noopToolRepo()
	var requested []string
	repo.getByIDsFn = func(_ context.Context, ids []string) ([]*models.Tool, error) {
		requested = ids
		return []*models.Tool{catalogTool("2", "Copilot"), catalogTool("1", "ChatGPT")}, nil
	}
	svc := NewToolService(repo, nil, nil, nil)

	tools, err := svc.Compare(context.Background(), []string{"2", " 1", "2", ""})
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "1"}, requested)
	assert.Len(t, tools, 2)

	_, err = svc.Compare(context.Background(), []string{" ", ""})
	requireAppError(t, err, models.CodeValidation)
}
