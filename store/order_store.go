package store

import (
	"context"
	"strings"
	"time"

	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/models"
	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OrderStore struct {
	db *gorm.DB
}

func NewOrderStore(db *gorm.DB) *OrderStore {
	return &OrderStore{db: db}
}

// DB exposes the handle so checkout can run its own transaction
func (s *OrderStore) DB() *gorm.DB {
	return s.db
}

func (s *OrderStore) ListForUser(ctx context.Context, userID uuid.UUID, page, limit int) ([]models.Order, int64, error) {
	base := s.db.WithContext(ctx).Model(&models.Order{}).Where("user_id = ?", userID)

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, utils.NewInternalError("failed to count orders", err)
	}

	var orders []models.Order
	if err := base.Session(&gorm.Session{}).
		Preload("Items").
		Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&orders).Error; err != nil {
		return nil, 0, utils.NewInternalError("failed to list orders", err)
	}
	return orders, total, nil
}

// GetForUser only returns the order when it belongs to userID
func (s *OrderStore) GetForUser(ctx context.Context, userID, orderID uuid.UUID) (models.Order, error) {
	var o models.Order
	err := s.db.WithContext(ctx).
		Preload("Items").
		Where("id = ? AND user_id = ?", orderID, userID).
		First(&o).Error
	if err != nil {
		return models.Order{}, notFoundOr(err, "order")
	}
	return o, nil
}

func (s *OrderStore) GetByID(ctx context.Context, id uuid.UUID) (models.Order, error) {
	var o models.Order
	if err := s.db.WithContext(ctx).Preload("Items").First(&o, "id = ?", id).Error; err != nil {
		return models.Order{}, notFoundOr(err, "order")
	}
	return o, nil
}

// Track looks an order up by its public number; email must match the order's
func (s *OrderStore) Track(ctx context.Context, orderNumber, email string) (models.Order, error) {
	var o models.Order
	err := s.db.WithContext(ctx).
		Preload("Items").
		Where("order_number = ? AND lower(email) = ?", strings.TrimSpace(orderNumber), strings.ToLower(strings.TrimSpace(email))).
		First(&o).Error
	if err != nil {
		return models.Order{}, notFoundOr(err, "order")
	}
	return o, nil
}

func (s *OrderStore) AdminList(ctx context.Context, q models.AdminOrderListQuery) ([]models.Order, int64, error) {
	base := s.db.WithContext(ctx).Model(&models.Order{})
	if q.Status != "" {
		base = base.Where("status = ?", q.Status)
	}
	if term := strings.TrimSpace(q.Q); term != "" {
		like := "%" + escapeLike(term) + "%"
		base = base.Where("order_number ILIKE ? OR email ILIKE ?", like, like)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, utils.NewInternalError("failed to count orders", err)
	}

	var orders []models.Order
	if err := base.Session(&gorm.Session{}).
		Order("created_at DESC").
		Limit(q.Limit).
		Offset((q.Page - 1) * q.Limit).
		Find(&orders).Error; err != nil {
		return nil, 0, utils.NewInternalError("failed to list orders", err)
	}
	return orders, total, nil
}

// UpdateStatus locks the order row, applies the transition and saves it
func (s *OrderStore) UpdateStatus(ctx context.Context, id uuid.UUID, next models.OrderStatus, adminNotes *string) (models.Order, error) {
	var updated models.Order
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var o models.Order
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&o, "id = ?", id).Error; err != nil {
			return notFoundOr(err, "order")
		}
		if err := o.ApplyStatus(next, adminNotes, time.Now().UTC()); err != nil {
			return err
		}
		if err := tx.Model(&o).Select(
			"status", "admin_notes", "confirmed_at", "shipped_at", "delivered_at", "cancelled_at", "updated_at",
		).Updates(&o).Error; err != nil {
			return utils.NewInternalError("failed to update order status", err)
		}
		updated = o
		return nil
	})
	if err != nil {
		return models.Order{}, err
	}
	return updated, nil
}
