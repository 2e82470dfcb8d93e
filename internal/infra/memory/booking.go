package memory

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/sling-library/internal/domain/booking"
	"github.com/BruksfildServices01/sling-library/internal/domain/carrier"
	"github.com/BruksfildServices01/sling-library/internal/models"
)

type BookingRepository struct{ *Store }

func (r BookingRepository) CreateBookingRequest(_ context.Context, b *models.BookingRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.carriers[b.CarrierID]; !ok {
		return carrier.ErrNotFound
	}
	r.touch(&b.BaseModel, true)
	stored := *b
	stored.Carrier = nil
	r.bookings[b.ID] = stored
	return nil
}

func (r BookingRepository) ListBookingRequests(_ context.Context, filter booking.ListFilter) ([]booking.ListedRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]booking.ListedRequest, 0, len(r.bookings))
	for _, b := range r.bookings {
		if filter.Status != "" && b.Status != filter.Status {
			continue
		}
		name := booking.UnknownCarrier
		if c, ok := r.carriers[b.CarrierID]; ok {
			name = c.DisplayName()
		}
		out = append(out, booking.ListedRequest{BookingRequest: b, CarrierName: name})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r BookingRepository) GetBookingRequest(_ context.Context, id uuid.UUID) (*models.BookingRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.bookings[id]
	if !ok {
		return nil, booking.ErrNotFound
	}
	return &b, nil
}

// RunInTx holds the store's write lock for the whole of fn and applies the
// staged writes only when fn succeeds. fn must not call back into the store.
func (r BookingRepository) RunInTx(_ context.Context, fn func(tx booking.Tx) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx := &memoryTx{
		store:    r.Store,
		bookings: map[uuid.UUID]models.BookingRequest{},
		carriers: map[uuid.UUID]models.Carrier{},
	}
	if err := fn(tx); err != nil {
		return err
	}

	for id, b := range tx.bookings {
		r.touch(&b.BaseModel, false)
		r.bookings[id] = b
	}
	for id, c := range tx.carriers {
		r.touch(&c.BaseModel, false)
		r.carriers[id] = c
	}
	return nil
}

type memoryTx struct {
	store    *Store
	bookings map[uuid.UUID]models.BookingRequest
	carriers map[uuid.UUID]models.Carrier
}

func (t *memoryTx) LockBookingRequest(id uuid.UUID) (*models.BookingRequest, error) {
	if b, ok := t.bookings[id]; ok {
		return &b, nil
	}
	b, ok := t.store.bookings[id]
	if !ok {
		return nil, booking.ErrNotFound
	}
	return &b, nil
}

func (t *memoryTx) LockCarrier(id uuid.UUID) (*models.Carrier, error) {
	if c, ok := t.carriers[id]; ok {
		c = cloneCarrier(c)
		return &c, nil
	}
	c, ok := t.store.carriers[id]
	if !ok {
		return nil, carrier.ErrNotFound
	}
	c = cloneCarrier(c)
	return &c, nil
}

func (t *memoryTx) SaveBookingRequest(b *models.BookingRequest) error {
	current, ok := t.store.bookings[b.ID]
	if staged, exists := t.bookings[b.ID]; exists {
		current, ok = staged, true
	}
	if !ok {
		return booking.ErrNotFound
	}
	current.Status = b.Status
	t.bookings[b.ID] = current
	return nil
}

func (t *memoryTx) SaveCarrierAvailability(c *models.Carrier) error {
	current, ok := t.store.carriers[c.ID]
	if staged, exists := t.carriers[c.ID]; exists {
		current, ok = staged, true
	}
	if !ok {
		return carrier.ErrNotFound
	}
	current = cloneCarrier(current)
	current.AvailabilityStatus = c.AvailabilityStatus
	current.NextAvailableDate = nil
	if c.NextAvailableDate != nil {
		d := *c.NextAvailableDate
		current.NextAvailableDate = &d
	}
	t.carriers[c.ID] = current
	return nil
}

var (
	_ booking.Repository = BookingRepository{}
	_ booking.Tx         = (*memoryTx)(nil)
)
