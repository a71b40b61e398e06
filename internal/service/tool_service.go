package service

import (
	"context"
	"log/slog"
	"strings"

	"toolverse/internal/cache"
	"toolverse/internal/catalog"
	"toolverse/internal/middleware"
	"toolverse/internal/models"
	"toolverse/internal/notifications"
	"toolverse/internal/observability"
	"toolverse/internal/repository"
	"toolverse/internal/validation"

	"go.opentelemetry.io/otel/attribute"
)

type ToolService struct {
	tools    repository.ToolRepository
	cache    *cache.Cache
	notifier *notifications.Notifier
	metrics  *observability.StoreMetrics
}

// CreateToolInput is a community tool submission. Rating and featured are server-owned
// and cannot be supplied.
type CreateToolInput struct {
	Name             string             `json:"name" validate:"required,notblank,max=120"`
	Description      string             `json:"description" validate:"required,notblank,max=5000"`
	ShortDescription string             `json:"shortDescription" validate:"required,notblank,max=300"`
	Category         string             `json:"category" validate:"required,notblank,max=64"`
	Pricing          models.PricingTier `json:"pricing" validate:"required,pricing"`
	Price            *string            `json:"price" validate:"omitempty,max=64"`
	Website          string             `json:"website" validate:"required,url,max=2048"`
	ImageURL         *string            `json:"imageUrl" validate:"omitempty,url,max=2048"`
	SubmittedBy      *string            `json:"submittedBy" validate:"omitempty,max=64"`
}

// normalize drops blank optional fields so they validate and store as absent.
func (in *CreateToolInput) normalize() {
	in.Price = blankToNil(in.Price)
	in.ImageURL = blankToNil(in.ImageURL)
	in.SubmittedBy = blankToNil(in.SubmittedBy)
}

func NewToolService(
	tools repository.ToolRepository,
	c *cache.Cache,
	notifier *notifications.Notifier,
	metrics *observability.StoreMetrics,
) *ToolService {
	if metrics == nil {
		metrics = observability.NewStoreMetrics("unknown")
	}
	return &ToolService{
		tools:    tools,
		cache:    c,
		notifier: notifier,
		metrics:  metrics,
	}
}

// List returns the filtered, sorted and paginated catalog.
func (s *ToolService) List(ctx context.Context, filter catalog.ToolFilter) ([]*models.Tool, error) {
	span, ctx := observability.StartService(ctx, "ToolService", "List",
		attribute.String("filter.category", filter.Category),
		attribute.String("filter.pricing", filter.Pricing),
		attribute.Bool("filter.search", filter.Search != ""),
	)
	defer span.End()

	observability.RecordCatalogQuery("tools", filter.Category != "" || filter.Pricing != "" || filter.Search != "" || filter.Featured != nil)

	key := cache.ToolListKey(s.cache.ListVersion(ctx, cache.ToolsNamespace), filter)
	tools := make([]*models.Tool, 0)
	err := s.cache.Aside(ctx, "tool_list", key, &tools, cache.ListTTL, func() error {
		defer s.metrics.TrackQuery("list", "tools")()
		found, err := s.tools.List(ctx, filter)
		if err != nil {
			return err
		}
		tools = found
		return nil
	})
	if err != nil {
		span.SetError(err)
		return nil, storeError(err, "Tool", "")
	}
	return tools, nil
}

// Get returns one tool by id.
func (s *ToolService) Get(ctx context.Context, id string) (*models.Tool, error) {
	span, ctx := observability.StartService(ctx, "ToolService", "Get", attribute.String("tool.id", id))
	defer span.End()

	var tool models.Tool
	err := s.cache.Aside(ctx, "tool", cache.ToolKey(id), &tool, cache.ToolTTL, func() error {
		defer s.metrics.TrackQuery("get", "tools")()
		found, err := s.tools.GetByID(ctx, id)
		if err != nil {
			return err
		}
		tool = *found
		return nil
	})
	if err != nil {
		span.SetError(err)
		return nil, storeError(err, "Tool", id)
	}
	return &tool, nil
}

// Compare returns the requested tools in request order. Unknown ids are skipped and
// repeated ids are returned once.
func (s *ToolService) Compare(ctx context.Context, ids []string) ([]*models.Tool, error) {
	span, ctx := observability.StartService(ctx, "ToolService", "Compare", attribute.Int("tool.count", len(ids)))
	defer span.End()

	seen := make(map[string]struct{}, len(ids))
	unique := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	if len(unique) == 0 {
		return nil, models.NewValidationError("At least one tool id is required",
			models.FieldError{Field: "ids", Message: "is required"})
	}

	defer s.metrics.TrackQuery("get_many", "tools")()
	tools, err := s.tools.GetByIDs(ctx, unique)
	if err != nil {
		span.SetError(err)
		return nil, storeError(err, "Tool", "")
	}
	return tools, nil
}

// Create validates and stores a community submission, then announces it.
func (s *ToolService) Create(ctx context.Context, in CreateToolInput) (*models.Tool, error) {
	span, ctx := observability.StartService(ctx, "ToolService", "Create")
	defer span.End()

	in.normalize()
	if err := validation.Struct(in).Err("Invalid tool"); err != nil {
		return nil, err
	}

	tool := &models.Tool{
		Name:             strings.TrimSpace(in.Name),
		Description:      in.Description,
		ShortDescription: in.ShortDescription,
		Category:         strings.TrimSpace(in.Category),
		Pricing:          in.Pricing,
		Price:            in.Price,
		Website:          in.Website,
		ImageURL:         in.ImageURL,
		SubmittedBy:      in.SubmittedBy,
	}

	stop := s.metrics.TrackQuery("create", "tools")
	err := s.tools.Create(ctx, tool)
	stop()
	if err != nil {
		span.SetError(err)
		return nil, storeError(err, "Tool", "")
	}

	s.cache.BumpListVersion(ctx, cache.ToolsNamespace)
	observability.SubmissionsTotal.WithLabelValues(notifications.KindTool).Inc()
	span.AddAttributes(attribute.String("tool.id", tool.ID))

	submission := notifications.Submission{
		Kind:     notifications.KindTool,
		ID:       tool.ID,
		Title:    tool.Name,
		Category: tool.Category,
		At:       tool.CreatedAt,
	}
	if tool.SubmittedBy != nil {
		submission.SubmittedBy = *tool.SubmittedBy
	}
	if err := s.notifier.PublishSubmission(ctx, submission); err != nil {
		middleware.Logger.WarnContext(ctx, "failed to publish tool submission",
			slog.String("tool_id", tool.ID),
			slog.String("error", err.Error()),
		)
	}

	return tool, nil
}
