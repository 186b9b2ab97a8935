package models

import (
	"math"
	"strings"
	"time"

	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

type Discount struct {
	ID             uuid.UUID    `json:"id" gorm:"type:uuid;primaryKey"`
	Code           string       `json:"code" gorm:"not null;uniqueIndex"`
	Description    string       `json:"description"`
	Type           DiscountType `json:"type" gorm:"type:text;not null"`
	Value          float64      `json:"value" gorm:"type:numeric(12,2);not null"`
	MinOrderAmount *float64     `json:"min_order_amount,omitempty" gorm:"type:numeric(12,2)"`
	MaxUses        *int         `json:"max_uses,omitempty"`
	UsedCount      int          `json:"used_count" gorm:"not null;default:0"`
	StartsAt       *time.Time   `json:"starts_at,omitempty"`
	EndsAt         *time.Time   `json:"ends_at,omitempty"`
	IsActive       bool         `json:"is_active" gorm:"not null;default:true"`
	CreatedAt      time.Time    `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt      time.Time    `json:"updated_at" gorm:"autoUpdateTime"`
}

func (d *Discount) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Discount) TableName() string {
	return "discounts"
}

func NormalizeDiscountCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// ValidateDiscountValue checks the value against the discount type
func ValidateDiscountValue(t DiscountType, value float64) error {
	switch t {
	case DiscountPercentage:
		if value <= 0 || value > 100 {
			return utils.NewValidationError("percentage discount must be greater than 0 and at most 100")
		}
	case DiscountFixed:
		if value <= 0 {
			return utils.NewValidationError("fixed discount must be greater than 0")
		}
	default:
		return utils.NewValidationError("type must be 'percentage' or 'fixed'")
	}
	return nil
}

// Apply returns the amount taken off subtotal, or a validation error when the
// code cannot be used right now.
func (d Discount) Apply(subtotal float64, now time.Time) (float64, error) {
	if !d.IsActive {
		return 0, utils.NewValidationError("discount code is not active")
	}
	if d.StartsAt != nil && now.Before(*d.StartsAt) {
		return 0, utils.NewValidationError("discount code is not active yet")
	}
	if d.EndsAt != nil && now.After(*d.EndsAt) {
		return 0, utils.NewValidationError("discount code has expired")
	}
	if d.MaxUses != nil && d.UsedCount >= *d.MaxUses {
		return 0, utils.NewValidationError("discount code usage limit reached")
	}
	if d.MinOrderAmount != nil && subtotal < *d.MinOrderAmount {
		return 0, utils.NewValidationError("order does not reach the minimum amount for this code")
	}

	var amount float64
	switch d.Type {
	case DiscountPercentage:
		amount = roundMoney(subtotal * d.Value / 100)
	case DiscountFixed:
		amount = math.Min(d.Value, subtotal)
	}
	return amount, nil
}

func roundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}

type DiscountRequest struct {
	Code           string       `json:"code" binding:"required,min=3,max=32"`
	Description    string       `json:"description"`
	Type           DiscountType `json:"type" binding:"required,oneof=percentage fixed"`
	Value          float64      `json:"value" binding:"required"`
	MinOrderAmount *float64     `json:"min_order_amount" binding:"omitempty,gte=0"`
	MaxUses        *int         `json:"max_uses" binding:"omitempty,min=1"`
	StartsAt       *time.Time   `json:"starts_at"`
	EndsAt         *time.Time   `json:"ends_at"`
	IsActive       *bool        `json:"is_active"`
}

// ToModel validates the request and builds a Discount
func (r DiscountRequest) ToModel() (Discount, error) {
	if err := ValidateDiscountValue(r.Type, r.Value); err != nil {
		return Discount{}, err
	}
	if r.StartsAt != nil && r.EndsAt != nil && r.EndsAt.Before(*r.StartsAt) {
		return Discount{}, utils.NewValidationError("ends_at must be after starts_at")
	}
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return Discount{
		Code:           NormalizeDiscountCode(r.Code),
		Description:    r.Description,
		Type:           r.Type,
		Value:          r.Value,
		MinOrderAmount: r.MinOrderAmount,
		MaxUses:        r.MaxUses,
		StartsAt:       r.StartsAt,
		EndsAt:         r.EndsAt,
		IsActive:       active,
	}, nil
}
