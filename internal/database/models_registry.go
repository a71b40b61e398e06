package database

import (
	"context"
	"fmt"

	"toolverse/internal/models"

	"gorm.io/gorm"
)

// PersistentModels returns the authoritative set of schema-managed GORM models.
func PersistentModels() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Tool{},
		&models.UserTool{},
		&models.BlogPost{},
	}
}

// Migrate creates or updates the tables for every persistent model.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(PersistentModels()...); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

// TableStatus reports whether the table behind one persistent model exists.
type TableStatus struct {
	Table  string
	Exists bool
}

// SchemaStatus lists every persistent model's table and whether it is present.
func SchemaStatus(ctx context.Context, db *gorm.DB) ([]TableStatus, error) {
	tx := db.WithContext(ctx)
	out := make([]TableStatus, 0, len(PersistentModels()))
	for _, model := range PersistentModels() {
		stmt := &gorm.Statement{DB: tx}
		if err := stmt.Parse(model); err != nil {
			return nil, fmt.Errorf("parse model %T: %w", model, err)
		}
		out = append(out, TableStatus{
			Table:  stmt.Schema.Table,
			Exists: tx.Migrator().HasTable(model),
		})
	}
	return out, nil
}
