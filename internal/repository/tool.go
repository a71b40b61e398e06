package repository

import (
	"context"

	"toolverse/internal/catalog"
	"toolverse/internal/models"

	"gorm.io/gorm"
)

// toolRepository implements ToolRepository
type toolRepository struct {
	db *gorm.DB
}

// NewToolRepository creates a new GORM-backed tool repository
func NewToolRepository(db *gorm.DB) ToolRepository {
	return &toolRepository{db: db}
}

func (r *toolRepository) List(ctx context.Context, filter catalog.ToolFilter) ([]*models.Tool, error) {
	q := r.db.WithContext(ctx).Model(&models.Tool{})
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.Pricing != "" {
		q = q.Where("pricing = ?", filter.Pricing)
	}
	if filter.Search != "" {
		like := containsPattern(filter.Search)
		q = q.Where(
			`(LOWER(name) LIKE ? ESCAPE '\' OR LOWER(description) LIKE ? ESCAPE '\' OR LOWER(short_description) LIKE ? ESCAPE '\')`,
			like, like, like,
		)
	}
	if filter.Featured != nil {
		q = q.Where("featured = ?", *filter.Featured)
	}

	q, ok := window(q, filter.Limit, filter.Offset)
	if !ok {
		return []*models.Tool{}, nil
	}

	tools := make([]*models.Tool, 0)
	err := q.Order("featured DESC").
		Order("rating DESC").
		Order("created_at ASC").
		Order("id ASC").
		Find(&tools).Error
	if err != nil {
		return nil, err
	}
	return tools, nil
}

func (r *toolRepository) GetByID(ctx context.Context, id string) (*models.Tool, error) {
	var tool models.Tool
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&tool).Error; err != nil {
		return nil, translate(err)
	}
	return &tool, nil
}

// GetByIDs returns tools in the order of ids, skipping unknown ids.
func (r *toolRepository) GetByIDs(ctx context.Context, ids []string) ([]*models.Tool, error) {
	out := make([]*models.Tool, 0, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	var found []*models.Tool
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&found).Error; err != nil {
		return nil, err
	}
	byID := make(map[string]*models.Tool, len(found))
	for _, t := range found {
		byID[t.ID] = t
	}
	for _, id := range ids {
		if t, ok := byID[id]; ok {
			c := *t
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *toolRepository) Create(ctx context.Context, tool *models.Tool) error {
	tool.ID = newID()
	tool.Rating = 0
	tool.Featured = false
	tool.CreatedAt = createdClock.Next()
	return translate(r.db.WithContext(ctx).Create(tool).Error)
}
