package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/models"
	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CatalogStore is the GORM side of the products table (detail page, admin writes)
type CatalogStore struct {
	db *gorm.DB
}

func NewCatalogStore(db *gorm.DB) *CatalogStore {
	return &CatalogStore{db: db}
}

func notFoundOr(err error, what string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.NewNotFoundError(what + " not found")
	}
	return utils.NewInternalError("failed to load "+what, err)
}

func (s *CatalogStore) GetActiveBySlug(ctx context.Context, slug string) (models.Product, error) {
	var p models.Product
	err := s.db.WithContext(ctx).
		Where("slug = ? AND is_active = ?", slug, true).
		First(&p).Error
	if err != nil {
		return models.Product{}, notFoundOr(err, "product")
	}
	return p, nil
}

func (s *CatalogStore) GetByID(ctx context.Context, id uuid.UUID) (models.Product, error) {
	var p models.Product
	if err := s.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return models.Product{}, notFoundOr(err, "product")
	}
	return p, nil
}

type AdminProductQuery struct {
	Q        string `form:"q"`
	Category string `form:"category"`
	Status   string `form:"status"` // active | inactive
	Page     int    `form:"page"`
	Limit    int    `form:"limit"`
}

func (s *CatalogStore) AdminList(ctx context.Context, q AdminProductQuery) ([]models.Product, int64, error) {
	tx := s.db.WithContext(ctx).Model(&models.Product{})
	if term := strings.TrimSpace(q.Q); term != "" {
		like := "%" + escapeLike(term) + "%"
		tx = tx.Where("name ILIKE ? OR brand ILIKE ? OR slug ILIKE ?", like, like, like)
	}
	if q.Category != "" {
		tx = tx.Where("category ILIKE ?", "%"+escapeLike(q.Category)+"%")
	}
	switch q.Status {
	case "active":
		tx = tx.Where("is_active = ?", true)
	case "inactive":
		tx = tx.Where("is_active = ?", false)
	}

	var total int64
	if err := tx.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, utils.NewInternalError("failed to count products", err)
	}

	var products []models.Product
	if err := tx.Session(&gorm.Session{}).Order("created_at DESC").
		Limit(q.Limit).
		Offset((q.Page - 1) * q.Limit).
		Find(&products).Error; err != nil {
		return nil, 0, utils.NewInternalError("failed to list products", err)
	}
	return products, total, nil
}

func (s *CatalogStore) Create(ctx context.Context, p *models.Product) error {
	if err := s.db.WithContext(ctx).Select("*").Create(p).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return utils.NewConflictError("a product with this slug already exists")
		}
		return utils.NewInternalError("failed to create product", err)
	}
	return nil
}

func (s *CatalogStore) Update(ctx context.Context, id uuid.UUID, updates map[string]any) (models.Product, error) {
	if len(updates) == 0 {
		return s.GetByID(ctx, id)
	}
	res := s.db.WithContext(ctx).Model(&models.Product{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return models.Product{}, utils.NewInternalError("failed to update product", res.Error)
	}
	if res.RowsAffected == 0 {
		return models.Product{}, utils.NewNotFoundError("product not found")
	}
	return s.GetByID(ctx, id)
}

// Delete removes the product and returns it so callers can clean up its images
func (s *CatalogStore) Delete(ctx context.Context, id uuid.UUID) (models.Product, error) {
	p, err := s.GetByID(ctx, id)
	if err != nil {
		return models.Product{}, err
	}
	if err := s.db.WithContext(ctx).Delete(&models.Product{}, "id = ?", id).Error; err != nil {
		return models.Product{}, utils.NewInternalError("failed to delete product", err)
	}
	return p, nil
}

func (s *CatalogStore) BulkUpdate(ctx context.Context, ids []uuid.UUID, updates map[string]any) (int64, error) {
	if len(updates) == 0 {
		return 0, utils.NewValidationError("no changes provided")
	}
	res := s.db.WithContext(ctx).Model(&models.Product{}).Where("id IN ?", ids).Updates(updates)
	if res.Error != nil {
		return 0, utils.NewInternalError("failed to update products", res.Error)
	}
	return res.RowsAffected, nil
}

func (s *CatalogStore) BulkDelete(ctx context.Context, ids []uuid.UUID) (int64, error) {
	res := s.db.WithContext(ctx).Where("id IN ?", ids).Delete(&models.Product{})
	if res.Error != nil {
		return 0, utils.NewInternalError("failed to delete products", res.Error)
	}
	return res.RowsAffected, nil
}

// Duplicate copies each product under a new id and slug. Copies start inactive.
func (s *CatalogStore) Duplicate(ctx context.Context, ids []uuid.UUID) ([]models.Product, error) {
	var copies []models.Product
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var originals []models.Product
		if err := tx.Where("id IN ?", ids).Order("created_at").Find(&originals).Error; err != nil {
			return err
		}
		if len(originals) == 0 {
			return utils.NewNotFoundError("no products found for the given ids")
		}
		for _, orig := range originals {
			cp := orig
			cp.ID = uuid.Nil
			cp.Name = orig.Name + " (Copy)"
			cp.Slug = utils.UniqueSlug(cp.Name)
			cp.IsActive = false
			cp.CreatedAt = time.Time{}
			cp.UpdatedAt = time.Time{}
			if err := tx.Select("*").Create(&cp).Error; err != nil {
				return fmt.Errorf("duplicate %s: %w", orig.ID, err)
			}
			copies = append(copies, cp)
		}
		return nil
	})
	if err != nil {
		var appErr *utils.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}
		return nil, utils.NewInternalError("failed to duplicate products", err)
	}
	return copies, nil
}

func (s *CatalogStore) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Product, error) {
	var products []models.Product
	tx := s.db.WithContext(ctx).Order("created_at DESC")
	if len(ids) > 0 {
		tx = tx.Where("id IN ?", ids)
	}
	if err := tx.Find(&products).Error; err != nil {
		return nil, utils.NewInternalError("failed to load products", err)
	}
	return products, nil
}

// DecrementStock takes qty off the product's stock inside tx, failing when
// there is not enough left.
func DecrementStock(tx *gorm.DB, id uuid.UUID, qty int) error {
	res := tx.Model(&models.Product{}).
		Where("id = ? AND stock_quantity >= ?", id, qty).
		UpdateColumn("stock_quantity", gorm.Expr("stock_quantity - ?", qty))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.NewValidationError("insufficient stock")
	}
	return nil
}
