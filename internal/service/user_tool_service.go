package service

import (
	"context"
	"errors"

	"toolverse/internal/cache"
	"toolverse/internal/models"
	"toolverse/internal/observability"
	"toolverse/internal/repository"
	"toolverse/internal/validation"

	"go.opentelemetry.io/otel/attribute"
)

// UserToolService manages a user's saved tools.
type UserToolService struct {
	links   repository.UserToolRepository
	tools   repository.ToolRepository
	cache   *cache.Cache
	metrics *observability.StoreMetrics
}

type AddUserToolInput struct {
	ToolID         string  `json:"toolId" validate:"required,notblank,max=64"`
	IsFavorite     *bool   `json:"isFavorite"`
	CollectionName *string `json:"collectionName" validate:"omitempty,max=64"`
}

// UpdateUserToolInput is a partial update. An empty collectionName clears the collection.
type UpdateUserToolInput struct {
	IsFavorite     *bool   `json:"isFavorite"`
	CollectionName *string `json:"collectionName" validate:"omitempty,max=64"`
}

func NewUserToolService(
	links repository.UserToolRepository,
	tools repository.ToolRepository,
	c *cache.Cache,
	metrics *observability.StoreMetrics,
) *UserToolService {
	if metrics == nil {
		metrics = observability.NewStoreMetrics("unknown")
	}
	return &UserToolService{
		links:   links,
		tools:   tools,
		cache:   c,
		metrics: metrics,
	}
}

// List returns the user's saved tools joined with their catalog entries.
func (s *UserToolService) List(ctx context.Context, userID string) ([]*models.UserTool, error) {
	span, ctx := observability.StartService(ctx, "UserToolService", "List", attribute.String("user.id", userID))
	defer span.End()

	links := make([]*models.UserTool, 0)
	err := s.cache.Aside(ctx, "user_tools", cache.UserToolsKey(userID), &links, cache.UserToolsTTL, func() error {
		defer s.metrics.TrackQuery("list", "user_tools")()
		found, err := s.links.ListByUser(ctx, userID)
		if err != nil {
			return err
		}
		links = found
		return nil
	})
	if err != nil {
		span.SetError(err)
		return nil, storeError(err, "Saved tool", "")
	}
	return links, nil
}

// Add saves a tool for the user. The tool must exist and must not already be saved.
func (s *UserToolService) Add(ctx context.Context, userID string, in AddUserToolInput) (*models.UserTool, error) {
	span, ctx := observability.StartService(ctx, "UserToolService", "Add",
		attribute.String("user.id", userID),
		attribute.String("tool.id", in.ToolID),
	)
	defer span.End()

	if err := validation.Struct(in).Err("Invalid saved tool"); err != nil {
		return nil, err
	}

	tool, err := s.tools.GetByID(ctx, in.ToolID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, models.NewValidationError("Unknown tool",
			models.FieldError{Field: "toolId", Message: "does not reference an existing tool"})
	}
	if err != nil {
		span.SetError(err)
		return nil, storeError(err, "Tool", in.ToolID)
	}

	link := &models.UserTool{
		UserID:         userID,
		ToolID:         in.ToolID,
		CollectionName: blankToNil(in.CollectionName),
	}
	if in.IsFavorite != nil {
		link.IsFavorite = *in.IsFavorite
	}

	stop := s.metrics.TrackQuery("create", "user_tools")
	err = s.links.Add(ctx, link)
	stop()
	if errors.Is(err, repository.ErrConflict) {
		return nil, models.NewConflictError("Tool is already saved")
	}
	if err != nil {
		span.SetError(err)
		return nil, storeError(err, "Saved tool", "")
	}

	s.cache.Invalidate(ctx, cache.UserToolsKey(userID))
	link.Tool = tool
	return link, nil
}

// Update patches the user's link to toolID.
func (s *UserToolService) Update(ctx context.Context, userID, toolID string, in UpdateUserToolInput) (*models.UserTool, error) {
	span, ctx := observability.StartService(ctx, "UserToolService", "Update",
		attribute.String("user.id", userID),
		attribute.String("tool.id", toolID),
	)
	defer span.End()

	patch := models.UserToolPatch{IsFavorite: in.IsFavorite, CollectionName: in.CollectionName}
	result := validation.Struct(in)
	if patch.Empty() {
		result.Add("", "at least one of isFavorite or collectionName is required")
	}
	if err := result.Err("Invalid saved tool update"); err != nil {
		return nil, err
	}

	defer s.metrics.TrackQuery("update", "user_tools")()
	link, err := s.links.Update(ctx, userID, toolID, patch)
	if err != nil {
		span.SetError(err)
		return nil, storeError(err, "Saved tool", toolID)
	}

	s.cache.Invalidate(ctx, cache.UserToolsKey(userID))
	return link, nil
}

// Remove deletes the user's link to toolID. Removing an absent link succeeds.
func (s *UserToolService) Remove(ctx context.Context, userID, toolID string) error {
	span, ctx := observability.StartService(ctx, "UserToolService", "Remove",
		attribute.String("user.id", userID),
		attribute.String("tool.id", toolID),
	)
	defer span.End()

	defer s.metrics.TrackQuery("delete", "user_tools")()
	if err := s.links.Remove(ctx, userID, toolID); err != nil {
		span.SetError(err)
		return storeError(err, "Saved tool", toolID)
	}

	s.cache.Invalidate(ctx, cache.UserToolsKey(userID))
	return nil
}
