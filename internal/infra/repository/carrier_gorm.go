package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/sling-library/internal/domain/carrier"
	"github.com/BruksfildServices01/sling-library/internal/models"
)

type CarrierGormRepository struct {
	db *gorm.DB
}

func NewCarrierGormRepository(db *gorm.DB) *CarrierGormRepository {
	return &CarrierGormRepository{db: db}
}

func (r *CarrierGormRepository) ListCarriers(
	ctx context.Context,
	filter carrier.ListFilter,
) ([]models.Carrier, error) {

	q := r.db.WithContext(ctx).Model(&models.Carrier{})
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}

	var carriers []models.Carrier
	if err := q.Order("created_at DESC").Find(&carriers).Error; err != nil {
		return nil, err
	}
	return carriers, nil
}

func (r *CarrierGormRepository) GetCarrier(
	ctx context.Context,
	id uuid.UUID,
) (*models.Carrier, error) {

	var c models.Carrier
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, notFound(err, carrier.ErrNotFound)
	}
	return &c, nil
}

func (r *CarrierGormRepository) CreateCarrier(
	ctx context.Context,
	c *models.Carrier,
) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CarrierGormRepository) UpdateCarrier(
	ctx context.Context,
	c *models.Carrier,
) error {
	res := r.db.WithContext(ctx).Model(c).Select("*").Omit("id", "created_at").Updates(c)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return carrier.ErrNotFound
	}
	return nil
}

// DeleteCarrier removes the carrier; its booking requests go with it through
// the ON DELETE CASCADE key.
func (r *CarrierGormRepository) DeleteCarrier(
	ctx context.Context,
	id uuid.UUID,
) error {
	res := r.db.WithContext(ctx).Delete(&models.Carrier{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return carrier.ErrNotFound
	}
	return nil
}

var _ carrier.Repository = (*CarrierGormRepository)(nil)
