package repository

import (
	"context"
	"errors"
	"time"

	"toolverse/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// userToolRepository implements UserToolRepository
type userToolRepository struct {
	db *gorm.DB
}

// NewUserToolRepository creates a new GORM-backed user tool repository
func NewUserToolRepository(db *gorm.DB) UserToolRepository {
	return &userToolRepository{db: db}
}

// ListByUser inner-joins tools so links to missing tools drop out of the result.
func (r *userToolRepository) ListByUser(ctx context.Context, userID string) ([]*models.UserTool, error) {
	links := make([]*models.UserTool, 0)
	err := r.db.WithContext(ctx).
		InnerJoins("Tool").
		Where("user_tools.user_id = ?", userID).
		Order("user_tools.added_at ASC").
		Order("user_tools.id ASC").
		Find(&links).Error
	if err != nil {
		return nil, err
	}
	return links, nil
}

func (r *userToolRepository) find(ctx context.Context, userID, toolID string) (*models.UserTool, error) {
	var link models.UserTool
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND tool_id = ?", userID, toolID).
		Order("added_at ASC").
		First(&link).Error
	if err != nil {
		return nil, translate(err)
	}
	return &link, nil
}

func (r *userToolRepository) Add(ctx context.Context, link *models.UserTool) error {
	if _, err := r.find(ctx, link.UserID, link.ToolID); err == nil {
		return ErrConflict
	} else if !errors.Is(err, ErrNotFound) {
		return err
	}

	link.ID = newID()
	link.AddedAt = time.Now().UTC()
	link.Tool = nil
	return translate(r.db.WithContext(ctx).Omit(clause.Associations).Create(link).Error)
}

// Remove deletes the link; removing an absent link is not an error.
func (r *userToolRepository) Remove(ctx context.Context, userID, toolID string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND tool_id = ?", userID, toolID).
		Delete(&models.UserTool{}).Error
}

func (r *userToolRepository) Update(ctx context.Context, userID, toolID string, patch models.UserToolPatch) (*models.UserTool, error) {
	link, err := r.find(ctx, userID, toolID)
	if err != nil {
		return nil, err
	}
	patch.Apply(link)
	err = r.db.WithContext(ctx).
		Model(link).
		Select("is_favorite", "collection_name").
		Updates(map[string]any{
			"is_favorite":     link.IsFavorite,
			"collection_name": link.CollectionName,
		}).Error
	if err != nil {
		return nil, err
	}
	return link, nil
}
