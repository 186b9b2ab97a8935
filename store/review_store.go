package store

import (
	"context"

	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/models"
	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReviewStore struct {
	db *gorm.DB
}

func NewReviewStore(db *gorm.DB) *ReviewStore {
	return &ReviewStore{db: db}
}

func (s *ReviewStore) ListApproved(ctx context.Context, productID uuid.UUID, page, limit int) ([]models.Review, int64, error) {
	return s.list(ctx, s.db.WithContext(ctx).Model(&models.Review{}).
		Where("product_id = ? AND status = ?", productID, models.ReviewApproved), page, limit)
}

func (s *ReviewStore) AdminList(ctx context.Context, status string, page, limit int) ([]models.Review, int64, error) {
	base := s.db.WithContext(ctx).Model(&models.Review{})
	if status != "" {
		base = base.Where("status = ?", status)
	}
	return s.list(ctx, base, page, limit)
}

func (s *ReviewStore) list(_ context.Context, base *gorm.DB, page, limit int) ([]models.Review, int64, error) {
	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, utils.NewInternalError("failed to count reviews", err)
	}
	var reviews []models.Review
	if err := base.Session(&gorm.Session{}).
		Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&reviews).Error; err != nil {
		return nil, 0, utils.NewInternalError("failed to list reviews", err)
	}
	return reviews, total, nil
}

// Summary is the count and mean rating of approved reviews
func (s *ReviewStore) Summary(ctx context.Context, productID uuid.UUID) (models.ReviewSummary, error) {
	var sum models.ReviewSummary
	err := s.db.WithContext(ctx).Model(&models.Review{}).
		Select("COUNT(*) AS count, COALESCE(AVG(rating), 0) AS average").
		Where("product_id = ? AND status = ?", productID, models.ReviewApproved).
		Scan(&sum).Error
	if err != nil {
		return models.ReviewSummary{}, utils.NewInternalError("failed to summarise reviews", err)
	}
	return sum, nil
}

func (s *ReviewStore) Create(ctx context.Context, r *models.Review) error {
	if err := s.db.WithContext(ctx).Create(r).Error; err != nil {
		return utils.NewInternalError("failed to create review", err)
	}
	return nil
}

func (s *ReviewStore) SetStatus(ctx context.Context, id uuid.UUID, status models.ReviewStatus) (models.Review, error) {
	res := s.db.WithContext(ctx).Model(&models.Review{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return models.Review{}, utils.NewInternalError("failed to update review", res.Error)
	}
	if res.RowsAffected == 0 {
		return models.Review{}, utils.NewNotFoundError("review not found")
	}
	var r models.Review
	if err := s.db.WithContext(ctx).First(&r, "id = ?", id).Error; err != nil {
		return models.Review{}, notFoundOr(err, "review")
	}
	return r, nil
}

func (s *ReviewStore) Delete(ctx context.Context, id uuid.UUID) error {
	res := s.db.WithContext(ctx).Delete(&models.Review{}, "id = ?", id)
	if res.Error != nil {
		return utils.NewInternalError("failed to delete review", res.Error)
	}
	if res.RowsAffected == 0 {
		return utils.NewNotFoundError("review not found")
	}
	return nil
}
