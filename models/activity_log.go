package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ActivityLog records one admin mutation
type ActivityLog struct {
	ID           uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	AdminID      uuid.UUID      `json:"admin_id" gorm:"type:uuid;not null;index:idx_activity_admin_date,sort:desc"`
	AdminEmail   string         `json:"admin_email" gorm:"not null"`
	Action       string         `json:"action" gorm:"not null;index"` // updated_order, deleted_product ...
	ResourceType string         `json:"resource_type" gorm:"not null;index"`
	ResourceID   string         `json:"resource_id" gorm:"index"`
	Path         string         `json:"path"`
	Payload      datatypes.JSON `json:"payload,omitempty" gorm:"type:jsonb"`
	Status       string         `json:"status" gorm:"not null"`
	StatusCode   int            `json:"status_code"`
	IPAddress    string         `json:"ip_address"`
	UserAgent    string         `json:"user_agent"`
	CreatedAt    time.Time      `json:"created_at" gorm:"autoCreateTime;index:idx_activity_admin_date,sort:desc"`
}

func (al *ActivityLog) BeforeCreate(tx *gorm.DB) error {
	if al.ID == uuid.Nil {
		al.ID = uuid.Must(uuid.NewV7())
	}
	if al.Status == "" {
		al.Status = StatusSuccess
	}
	return nil
}

func (ActivityLog) TableName() string {
	return "admin_activity_logs"
}

const (
	ResourceTypeProduct  = "product"
	ResourceTypeOrder    = "order"
	ResourceTypeDiscount = "discount"
	ResourceTypeReview   = "review"

	StatusSuccess = "success"
	StatusFailed  = "failed"
)
