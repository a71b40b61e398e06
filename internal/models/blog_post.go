package models

import "time"

// BlogPost is an editorial article shown in the blog section.
type BlogPost struct {
	ID         string    `gorm:"primaryKey;type:varchar(64)" json:"id"`
	Title      string    `gorm:"not null" json:"title"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	Excerpt    string    `gorm:"type:text;not null" json:"excerpt"`
	Author     string    `gorm:"not null" json:"author"`
	AuthorRole *string   `json:"authorRole"`
	Category   string    `gorm:"not null;index" json:"category"`
	ImageURL   *string   `json:"imageUrl"`
	ReadTime   *int      `json:"readTime"`
	Views      int       `gorm:"not null;default:0" json:"views"`
	Featured   bool      `gorm:"not null;default:false;index" json:"featured"`
	CreatedAt  time.Time `gorm:"index" json:"createdAt"`
}
