package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/sling-library/internal/domain/settings"
	"github.com/BruksfildServices01/sling-library/internal/models"
)

type SettingsGormRepository struct {
	db *gorm.DB
}

func NewSettingsGormRepository(db *gorm.DB) *SettingsGormRepository {
	return &SettingsGormRepository{db: db}
}

// GetSettings reads the oldest row; only one is expected.
func (r *SettingsGormRepository) GetSettings(ctx context.Context) (*models.SiteSettings, error) {
	var s models.SiteSettings
	if err := r.db.WithContext(ctx).Order("created_at ASC").First(&s).Error; err != nil {
		return nil, notFound(err, settings.ErrNotFound)
	}
	return &s, nil
}

func (r *SettingsGormRepository) SaveSettings(ctx context.Context, s *models.SiteSettings) error {
	return r.db.WithContext(ctx).Save(s).Error
}

var _ settings.Repository = (*SettingsGormRepository)(nil)
