package models

import "time"

// UserTool links a user to a saved tool, optionally grouped into a named collection.
type UserTool struct {
	ID             string    `gorm:"primaryKey;type:varchar(64)" json:"id"`
	UserID         string    `gorm:"type:varchar(64);not null;index:idx_user_tools_user_tool" json:"userId"`
	ToolID         string    `gorm:"type:varchar(64);not null;index:idx_user_tools_user_tool" json:"toolId"`
	IsFavorite     bool      `gorm:"not null;default:false" json:"isFavorite"`
	CollectionName *string   `json:"collectionName"`
	AddedAt        time.Time `gorm:"autoCreateTime" json:"addedAt"`
	// Tool is populated only by user lookups that join the tool collection.
	Tool *Tool `gorm:"foreignKey:ToolID" json:"tool,omitempty"`
}

// UserToolPatch carries the mutable fields of a UserTool. Nil fields are left unchanged.
type UserToolPatch struct {
	IsFavorite     *bool
	CollectionName *string
}

// Apply merges the patch into ut.
func (p UserToolPatch) Apply(ut *UserTool) {
	if p.IsFavorite != nil {
		ut.IsFavorite = *p.IsFavorite
	}
	if p.CollectionName != nil {
		if *p.CollectionName == "" {
			ut.CollectionName = nil
		} else {
			name := *p.CollectionName
			ut.CollectionName = &name
		}
	}
}

// Empty reports whether the patch changes nothing.
func (p UserToolPatch) Empty() bool {
	return p.IsFavorite == nil && p.CollectionName == nil
}
