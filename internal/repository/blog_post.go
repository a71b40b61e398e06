package repository

import (
	"context"

	"toolverse/internal/catalog"
	"toolverse/internal/models"

	"gorm.io/gorm"
)

// blogPostRepository implements BlogPostRepository
type blogPostRepository struct {
	db *gorm.DB
}

// NewBlogPostRepository creates a new GORM-backed blog post repository
func NewBlogPostRepository(db *gorm.DB) BlogPostRepository {
	return &blogPostRepository{db: db}
}

func (r *blogPostRepository) List(ctx context.Context, filter catalog.BlogFilter) ([]*models.BlogPost, error) {
	q := r.db.WithContext(ctx).Model(&models.BlogPost{})
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.Featured != nil {
		q = q.Where("featured = ?", *filter.Featured)
	}

	q, ok := window(q, filter.Limit, filter.Offset)
	if !ok {
		return []*models.BlogPost{}, nil
	}

	posts := make([]*models.BlogPost, 0)
	err := q.Order("featured DESC").
		Order("created_at DESC").
		Order("id ASC").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *blogPostRepository) GetByID(ctx context.Context, id string) (*models.BlogPost, error) {
	var post models.BlogPost
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&post).Error; err != nil {
		return nil, translate(err)
	}
	return &post, nil
}

func (r *blogPostRepository) Create(ctx context.Context, post *models.BlogPost) error {
	post.ID = newID()
	post.Views = 0
	post.Featured = false
	post.CreatedAt = createdClock.Next()
	return translate(r.db.WithContext(ctx).Create(post).Error)
}
