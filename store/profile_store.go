package store

import (
	"context"

	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/models"
	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProfileStore struct {
	db *gorm.DB
}

func NewProfileStore(db *gorm.DB) *ProfileStore {
	return &ProfileStore{db: db}
}

func (s *ProfileStore) Get(ctx context.Context, id uuid.UUID) (models.Profile, error) {
	var p models.Profile
	if err := s.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return models.Profile{}, notFoundOr(err, "profile")
	}
	return p, nil
}

// IsAdmin answers false for unknown users
func (s *ProfileStore) IsAdmin(ctx context.Context, id uuid.UUID) (bool, error) {
	p, err := s.Get(ctx, id)
	if utils.IsNotFound(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return p.IsAdmin, nil
}

// Upsert creates the profile or refreshes its email, name and admin flag
func (s *ProfileStore) Upsert(ctx context.Context, p *models.Profile) error {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"email", "full_name", "is_admin", "updated_at"}),
	}).Create(p).Error
	if err != nil {
		return utils.NewInternalError("failed to save profile", err)
	}
	return nil
}

type ActivityStore struct {
	db *gorm.DB
}

func NewActivityStore(db *gorm.DB) *ActivityStore {
	return &ActivityStore{db: db}
}

func (s *ActivityStore) Record(ctx context.Context, entry *models.ActivityLog) error {
	return s.db.WithContext(ctx).Create(entry).Error
}

func (s *ActivityStore) List(ctx context.Context, page, limit int) ([]models.ActivityLog, int64, error) {
	base := s.db.WithContext(ctx).Model(&models.ActivityLog{})
	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, utils.NewInternalError("failed to count activity", err)
	}
	var logs []models.ActivityLog
	if err := base.Session(&gorm.Session{}).
		Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&logs).Error; err != nil {
		return nil, 0, utils.NewInternalError("failed to list activity", err)
	}
	return logs, total, nil
}
