package models

import "time"

// User is a registered catalog user. Password holds a bcrypt hash and is never serialized.
type User struct {
	ID        string    `gorm:"primaryKey;type:varchar(64)" json:"id"`
	Username  string    `gorm:"uniqueIndex;not null" json:"username"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	CreatedAt time.Time `json:"createdAt"`
}
