package store

import (
	"context"
	"errors"

	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/models"
	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DiscountStore struct {
	db *gorm.DB
}

func NewDiscountStore(db *gorm.DB) *DiscountStore {
	return &DiscountStore{db: db}
}

func (s *DiscountStore) List(ctx context.Context) ([]models.Discount, error) {
	var discounts []models.Discount
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&discounts).Error; err != nil {
		return nil, utils.NewInternalError("failed to list discounts", err)
	}
	return discounts, nil
}

func (s *DiscountStore) Get(ctx context.Context, id uuid.UUID) (models.Discount, error) {
	var d models.Discount
	if err := s.db.WithContext(ctx).First(&d, "id = ?", id).Error; err != nil {
		return models.Discount{}, notFoundOr(err, "discount")
	}
	return d, nil
}

func (s *DiscountStore) FindByCode(ctx context.Context, code string) (models.Discount, error) {
	var d models.Discount
	err := s.db.WithContext(ctx).
		Where("code = ?", models.NormalizeDiscountCode(code)).
		First(&d).Error
	if err != nil {
		return models.Discount{}, notFoundOr(err, "discount code")
	}
	return d, nil
}

func (s *DiscountStore) codeTaken(ctx context.Context, code string, except uuid.UUID) (bool, error) {
	var n int64
	tx := s.db.WithContext(ctx).Model(&models.Discount{}).Where("code = ?", code)
	if except != uuid.Nil {
		tx = tx.Where("id <> ?", except)
	}
	if err := tx.Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *DiscountStore) Create(ctx context.Context, d *models.Discount) error {
	taken, err := s.codeTaken(ctx, d.Code, uuid.Nil)
	if err != nil {
		return utils.NewInternalError("failed to check discount code", err)
	}
	if taken {
		return utils.NewConflictError("discount code already exists")
	}
	if err := s.db.WithContext(ctx).Select("*").Create(d).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return utils.NewConflictError("discount code already exists")
		}
		return utils.NewInternalError("failed to create discount", err)
	}
	return nil
}

// Replace overwrites every editable field of the discount
func (s *DiscountStore) Replace(ctx context.Context, id uuid.UUID, d models.Discount) (models.Discount, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return models.Discount{}, err
	}
	taken, err := s.codeTaken(ctx, d.Code, id)
	if err != nil {
		return models.Discount{}, utils.NewInternalError("failed to check discount code", err)
	}
	if taken {
		return models.Discount{}, utils.NewConflictError("discount code already exists")
	}

	d.ID = current.ID
	d.UsedCount = current.UsedCount
	d.CreatedAt = current.CreatedAt
	err = s.db.WithContext(ctx).Model(&current).
		Select("code", "description", "type", "value", "min_order_amount", "max_uses", "starts_at", "ends_at", "is_active").
		Updates(&d).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.Discount{}, utils.NewConflictError("discount code already exists")
		}
		return models.Discount{}, utils.NewInternalError("failed to update discount", err)
	}
	return d, nil
}

func (s *DiscountStore) Delete(ctx context.Context, id uuid.UUID) error {
	res := s.db.WithContext(ctx).Delete(&models.Discount{}, "id = ?", id)
	if res.Error != nil {
		return utils.NewInternalError("failed to delete discount", res.Error)
	}
	if res.RowsAffected == 0 {
		return utils.NewNotFoundError("discount not found")
	}
	return nil
}

// IncrementUsage counts one redemption inside the checkout transaction. The
// max_uses guard is repeated in SQL so concurrent checkouts cannot overshoot.
func IncrementUsage(tx *gorm.DB, id uuid.UUID) error {
	res := tx.Model(&models.Discount{}).
		Where("id = ? AND (max_uses IS NULL OR used_count < max_uses)", id).
		UpdateColumn("used_count", gorm.Expr("used_count + 1"))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.NewValidationError("discount code usage limit reached")
	}
	return nil
}
