package booking

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/sling-library/internal/httperr"
	"github.com/BruksfildServices01/sling-library/internal/models"
)

var ErrNotFound = httperr.ErrBusiness("booking_not_found")

// ListFilter narrows the admin list; an empty Status lists everything.
type ListFilter struct {
	Status string
}

// ListedRequest is a booking with the display name of its carrier, or
// "Unknown" when the carrier row is gone.
type ListedRequest struct {
	models.BookingRequest
	CarrierName string `json:"carrier_name"`
}

type Repository interface {
	// -------- Public --------
	CreateBookingRequest(ctx context.Context, b *models.BookingRequest) error

	// -------- Admin --------
	ListBookingRequests(ctx context.Context, filter ListFilter) ([]ListedRequest, error)
	GetBookingRequest(ctx context.Context, id uuid.UUID) (*models.BookingRequest, error)

	// RunInTx runs fn in one transaction. Any error rolls everything back.
	RunInTx(ctx context.Context, fn func(tx Tx) error) error
}

// Tx is the write surface of a booking transition. Lock* calls hold the row
// until the transaction ends.
type Tx interface {
	LockBookingRequest(id uuid.UUID) (*models.BookingRequest, error)
	LockCarrier(id uuid.UUID) (*models.Carrier, error)
	SaveBookingRequest(b *models.BookingRequest) error
	SaveCarrierAvailability(c *models.Carrier) error
}

const UnknownCarrier = "Unknown"
