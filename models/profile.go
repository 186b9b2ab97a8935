package models

import (
	"time"

	"github.com/google/uuid"
)

// Profile mirrors a user of the hosted auth provider; ID is the provider's subject
type Profile struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Email     string    `json:"email" gorm:"not null;uniqueIndex"`
	FullName  string    `json:"full_name"`
	IsAdmin   bool      `json:"is_admin" gorm:"not null;default:false"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Profile) TableName() string {
	return "profiles"
}

// Identity is what a verified token tells us about the caller
type Identity struct {
	UserID uuid.UUID
	Email  string
	Name   string
}
