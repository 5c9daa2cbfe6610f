package models

import (
	"time"

	"github.com/pharmahub/pharma-backend/pkg/enums"
)

// User represents the canonical identity entity. Emails are stored as written
// by the signup flow (lowercased there); uniqueness is case-insensitive and
// enforced by the lower(email) unique index in the persistent store.
type User struct {
	ID           uint             `gorm:"primaryKey;autoIncrement"`
	FullName     string           `gorm:"column:full_name;not null;default:''"`
	// No uniqueIndex tag: the goose migration enforces uniqueness through a
	// functional index on lower(email).
	Email        string           `gorm:"type:text;not null"`
	PasswordHash string           `gorm:"column:password_hash;not null"`
	Role         string           `gorm:"not null;default:customer"`
	Status       enums.UserStatus `gorm:"type:text;not null;default:Active"`
	CreatedAt    time.Time        `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time        `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName returns the database table name for the User model.
func (User) TableName() string {
	return "users"
}
