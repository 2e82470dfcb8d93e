package carrier

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/sling-library/internal/cache"
	domain "github.com/BruksfildServices01/sling-library/internal/domain/carrier"
	"github.com/BruksfildServices01/sling-library/internal/models"
)

// Reader serves storefront reads through the cache.
type Reader struct {
	repo  domain.Repository
	cache cache.Cache
	ttl   time.Duration
}

func NewReader(repo domain.Repository, c cache.Cache, ttl time.Duration) *Reader {
	return &Reader{repo: repo, cache: c, ttl: ttl}
}

// List returns the stored carriers of category (all when empty), newest
// first.
func (r *Reader) List(ctx context.Context, category string) ([]models.Carrier, error) {
	return cache.Fetch(ctx, r.cache, cache.CarrierListKey(category), r.ttl,
		func(ctx context.Context) ([]models.Carrier, error) {
			return r.repo.ListCarriers(ctx, domain.ListFilter{Category: category})
		})
}

func (r *Reader) Get(ctx context.Context, id uuid.UUID) (*models.Carrier, error) {
	return cache.Fetch(ctx, r.cache, cache.CarrierKey(id.String()), r.ttl,
		func(ctx context.Context) (*models.Carrier, error) {
			return r.repo.GetCarrier(ctx, id)
		})
}
