package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReviewStatus string

const (
	ReviewPending  ReviewStatus = "pending"
	ReviewApproved ReviewStatus = "approved"
	ReviewRejected ReviewStatus = "rejected"
)

type Review struct {
	ID         uuid.UUID    `json:"id" gorm:"type:uuid;primaryKey"`
	ProductID  uuid.UUID    `json:"product_id" gorm:"type:uuid;not null;index"`
	UserID     uuid.UUID    `json:"user_id" gorm:"type:uuid;not null;index"`
	AuthorName string       `json:"author_name"`
	Rating     int          `json:"rating" gorm:"not null;check:rating BETWEEN 1 AND 5"`
	Title      string       `json:"title"`
	Body       string       `json:"body"`
	Status     ReviewStatus `json:"status" gorm:"type:text;not null;default:'pending';index"`
	CreatedAt  time.Time    `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt  time.Time    `json:"updated_at" gorm:"autoUpdateTime"`
}

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.Must(uuid.NewV7())
	}
	if r.Status == "" {
		r.Status = ReviewPending
	}
	return nil
}

func (Review) TableName() string {
	return "reviews"
}

type CreateReviewRequest struct {
	Rating int    `json:"rating" binding:"required,min=1,max=5"`
	Title  string `json:"title" binding:"max=120"`
	Body   string `json:"body" binding:"required,min=3,max=4000"`
}

type ModerateReviewRequest struct {
	Status ReviewStatus `json:"status" binding:"required,oneof=approved rejected"`
}

type ReviewSummary struct {
	Count   int64   `json:"count"`
	Average float64 `json:"average"`
}
