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

type BlogService struct {
	posts    repository.BlogPostRepository
	cache    *cache.Cache
	notifier *notifications.Notifier
	metrics  *observability.StoreMetrics
}

// CreateBlogPostInput is a blog post submission. Views and featured are server-owned.
type CreateBlogPostInput struct {
	Title      string  `json:"title" validate:"required,notblank,max=200"`
	Content    string  `json:"content" validate:"required,notblank"`
	Excerpt    string  `json:"excerpt" validate:"required,notblank,max=500"`
	Author     string  `json:"author" validate:"required,notblank,max=100"`
	AuthorRole *string `json:"authorRole" validate:"omitempty,max=100"`
	Category   string  `json:"category" validate:"required,notblank,max=64"`
	ImageURL   *string `json:"imageUrl" validate:"omitempty,url,max=2048"`
	ReadTime   *int    `json:"readTime" validate:"omitempty,gte=1,lte=600"`
}

func (in *CreateBlogPostInput) normalize() {
	in.AuthorRole = blankToNil(in.AuthorRole)
	in.ImageURL = blankToNil(in.ImageURL)
}

func NewBlogService(
	posts repository.BlogPostRepository,
	c *cache.Cache,
	notifier *notifications.Notifier,
	metrics *observability.StoreMetrics,
) *BlogService {
	if metrics == nil {
		metrics = observability.NewStoreMetrics("unknown")
	}
	return &BlogService{
		posts:    posts,
		cache:    c,
		notifier: notifier,
		metrics:  metrics,
	}
}

// List returns the filtered, sorted and paginated posts.
func (s *BlogService) List(ctx context.Context, filter catalog.BlogFilter) ([]*models.BlogPost, error) {
	span, ctx := observability.StartService(ctx, "BlogService", "List",
		attribute.String("filter.category", filter.Category),
	)
	defer span.End()

	observability.RecordCatalogQuery("blog_posts", filter.Category != "" || filter.Featured != nil)

	key := cache.BlogListKey(s.cache.ListVersion(ctx, cache.BlogNamespace), filter)
	posts := make([]*models.BlogPost, 0)
	err := s.cache.Aside(ctx, "blog_list", key, &posts, cache.ListTTL, func() error {
		defer s.metrics.TrackQuery("list", "blog_posts")()
		found, err := s.posts.List(ctx, filter)
		if err != nil {
			return err
		}
		posts = found
		return nil
	})
	if err != nil {
		span.SetError(err)
		return nil, storeError(err, "Blog post", "")
	}
	return posts, nil
}

// Get returns one post by id.
func (s *BlogService) Get(ctx context.Context, id string) (*models.BlogPost, error) {
	span, ctx := observability.StartService(ctx, "BlogService", "Get", attribute.String("post.id", id))
	defer span.End()

	var post models.BlogPost
	err := s.cache.Aside(ctx, "blog_post", cache.BlogPostKey(id), &post, cache.BlogPostTTL, func() error {
		defer s.metrics.TrackQuery("get", "blog_posts")()
		found, err := s.posts.GetByID(ctx, id)
		if err != nil {
			return err
		}
		post = *found
		return nil
	})
	if err != nil {
		span.SetError(err)
		return nil, storeError(err, "Blog post", id)
	}
	return &post, nil
}

// Create validates and stores a post, then announces it.
func (s *BlogService) Create(ctx context.Context, in CreateBlogPostInput, submittedBy string) (*models.BlogPost, error) {
	span, ctx := observability.StartService(ctx, "BlogService", "Create")
	defer span.End()

	in.normalize()
	if err := validation.Struct(in).Err("Invalid blog post"); err != nil {
		return nil, err
	}

	post := &models.BlogPost{
		Title:      strings.TrimSpace(in.Title),
		Content:    in.Content,
		Excerpt:    in.Excerpt,
		Author:     strings.TrimSpace(in.Author),
		AuthorRole: in.AuthorRole,
		Category:   strings.TrimSpace(in.Category),
		ImageURL:   in.ImageURL,
		ReadTime:   in.ReadTime,
	}

	stop := s.metrics.TrackQuery("create", "blog_posts")
	err := s.posts.Create(ctx, post)
	stop()
	if err != nil {
		span.SetError(err)
		return nil, storeError(err, "Blog post", "")
	}

	s.cache.BumpListVersion(ctx, cache.BlogNamespace)
	observability.SubmissionsTotal.WithLabelValues(notifications.KindBlogPost).Inc()

	if err := s.notifier.PublishSubmission(ctx, notifications.Submission{
		Kind:        notifications.KindBlogPost,
		ID:          post.ID,
		Title:       post.Title,
		Category:    post.Category,
		SubmittedBy: submittedBy,
		At:          post.CreatedAt,
	}); err != nil {
		middleware.Logger.WarnContext(ctx, "failed to publish blog submission",
			slog.String("post_id", post.ID),
			slog.String("error", err.Error()),
		)
	}

	return post, nil
}
