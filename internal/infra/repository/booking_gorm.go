package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/sling-library/internal/domain/booking"
	"github.com/BruksfildServices01/sling-library/internal/domain/carrier"
	"github.com/BruksfildServices01/sling-library/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Public
// --------------------------------------------------

// CreateBookingRequest inserts without reading the row back.
func (r *BookingGormRepository) CreateBookingRequest(
	ctx context.Context,
	b *models.BookingRequest,
) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(b).Error
}

// --------------------------------------------------
// Admin
// --------------------------------------------------

func (r *BookingGormRepository) ListBookingRequests(
	ctx context.Context,
	filter booking.ListFilter,
) ([]booking.ListedRequest, error) {

	q := r.db.WithContext(ctx).Preload("Carrier")
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	var rows []models.BookingRequest
	if err := q.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]booking.ListedRequest, 0, len(rows))
	for _, b := range rows {
		name := booking.UnknownCarrier
		if b.Carrier != nil {
			name = b.Carrier.DisplayName()
		}
		b.Carrier = nil
		out = append(out, booking.ListedRequest{BookingRequest: b, CarrierName: name})
	}
	return out, nil
}

func (r *BookingGormRepository) GetBookingRequest(
	ctx context.Context,
	id uuid.UUID,
) (*models.BookingRequest, error) {

	var b models.BookingRequest
	if err := r.db.WithContext(ctx).First(&b, "id = ?", id).Error; err != nil {
		return nil, notFound(err, booking.ErrNotFound)
	}
	return &b, nil
}

// --------------------------------------------------
// Transitions
// --------------------------------------------------

func (r *BookingGormRepository) RunInTx(
	ctx context.Context,
	fn func(tx booking.Tx) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&bookingGormTx{db: tx})
	})
}

type bookingGormTx struct {
	db *gorm.DB
}

func (t *bookingGormTx) LockBookingRequest(id uuid.UUID) (*models.BookingRequest, error) {
	var b models.BookingRequest
	if err := t.db.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&b, "id = ?", id).Error; err != nil {
		return nil, notFound(err, booking.ErrNotFound)
	}
	return &b, nil
}

func (t *bookingGormTx) LockCarrier(id uuid.UUID) (*models.Carrier, error) {
	var c models.Carrier
	if err := t.db.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&c, "id = ?", id).Error; err != nil {
		return nil, notFound(err, carrier.ErrNotFound)
	}
	return &c, nil
}

func (t *bookingGormTx) SaveBookingRequest(b *models.BookingRequest) error {
	return t.db.Model(&models.BookingRequest{}).
		Where("id = ?", b.ID).
		Update("status", b.Status).Error
}

func (t *bookingGormTx) SaveCarrierAvailability(c *models.Carrier) error {
	return t.db.Model(&models.Carrier{}).
		Where("id = ?", c.ID).
		Updates(map[string]any{
			"availability_status": c.AvailabilityStatus,
			"next_available_date": c.NextAvailableDate,
		}).Error
}

var (
	_ booking.Repository = (*BookingGormRepository)(nil)
	_ booking.Tx         = (*bookingGormTx)(nil)
)
