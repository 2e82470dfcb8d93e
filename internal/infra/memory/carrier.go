package memory

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/sling-library/internal/domain/carrier"
	"github.com/BruksfildServices01/sling-library/internal/models"
)

type CarrierRepository struct{ *Store }

func (r CarrierRepository) ListCarriers(_ context.Context, filter carrier.ListFilter) ([]models.Carrier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Carrier, 0, len(r.carriers))
	for _, c := range r.carriers {
		if filter.Category != "" && c.Category != filter.Category {
			continue
		}
		out = append(out, cloneCarrier(c))
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r CarrierRepository) GetCarrier(_ context.Context, id uuid.UUID) (*models.Carrier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.carriers[id]
	if !ok {
		return nil, carrier.ErrNotFound
	}
	c = cloneCarrier(c)
	return &c, nil
}

func (r CarrierRepository) CreateCarrier(_ context.Context, c *models.Carrier) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.touch(&c.BaseModel, true)
	if c.AvailabilityStatus == "" {
		c.AvailabilityStatus = string(carrier.StatusAvailable)
	}
	r.carriers[c.ID] = cloneCarrier(*c)
	return nil
}

func (r CarrierRepository) UpdateCarrier(_ context.Context, c *models.Carrier) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	old, ok := r.carriers[c.ID]
	if !ok {
		return carrier.ErrNotFound
	}
	c.CreatedAt = old.CreatedAt
	r.touch(&c.BaseModel, false)
	r.carriers[c.ID] = cloneCarrier(*c)
	return nil
}

// DeleteCarrier also drops the carrier's booking requests, like the cascading
// foreign key does in postgres.
func (r CarrierRepository) DeleteCarrier(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.carriers[id]; !ok {
		return carrier.ErrNotFound
	}
	delete(r.carriers, id)
	for bid, b := range r.bookings {
		if b.CarrierID == id {
			delete(r.bookings, bid)
		}
	}
	return nil
}

var _ carrier.Repository = CarrierRepository{}
