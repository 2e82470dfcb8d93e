package carrier

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/sling-library/internal/httperr"
	"github.com/BruksfildServices01/sling-library/internal/models"
)

// ListFilter narrows the stored list. Ordering is always newest first.
type ListFilter struct {
	Category string
}

type Repository interface {
	ListCarriers(ctx context.Context, filter ListFilter) ([]models.Carrier, error)
	GetCarrier(ctx context.Context, id uuid.UUID) (*models.Carrier, error)
	CreateCarrier(ctx context.Context, c *models.Carrier) error
	UpdateCarrier(ctx context.Context, c *models.Carrier) error
	DeleteCarrier(ctx context.Context, id uuid.UUID) error
}

// ErrNotFound is returned by repositories when no carrier has the id.
var ErrNotFound = httperr.ErrBusiness("carrier_not_found")
