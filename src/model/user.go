package model

import "time"

// User is a registered account holder. UserID is the opaque identifier
// callers submit with orders; ID is the row key.
type User struct {
	ID           string    `gorm:"type:uuid;primaryKey" json:"id"`
	Email        string    `gorm:"size:255;not null" json:"email"`
	Name         string    `gorm:"size:255;not null" json:"name"`
	UserID       string    `gorm:"size:60;not null;uniqueIndex" json:"user_id"`
	SubscribedAt time.Time `gorm:"not null" json:"subscribed_at"`
}

func (User) TableName() string {
	return "users"
}
