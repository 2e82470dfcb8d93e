package booking

import (
	"context"

	"github.com/BruksfildServices01/sling-library/internal/audit"
	"github.com/BruksfildServices01/sling-library/internal/cache"
	domain "github.com/BruksfildServices01/sling-library/internal/domain/booking"
	"github.com/BruksfildServices01/sling-library/internal/domain/carrier"
	"github.com/BruksfildServices01/sling-library/internal/timezone"
)

type CreateBookingRequest struct {
	repo     domain.Repository
	carriers carrier.Repository
	cache    cache.Cache
	audit    *audit.Dispatcher
	shopTZ   string
}

func NewCreateBookingRequest(
	repo domain.Repository,
	carriers carrier.Repository,
	c cache.Cache,
	audit *audit.Dispatcher,
	shopTZ string,
) *CreateBookingRequest {
	return &CreateBookingRequest{
		repo:     repo,
		carriers: carriers,
		cache:    c,
		audit:    audit,
		shopTZ:   shopTZ,
	}
}

// Execute validates the public form and inserts a pending request. Nothing is
// written when validation fails, and the caller gets no record back.
func (uc *CreateBookingRequest) Execute(ctx context.Context, in domain.Input) error {
	if err := domain.ValidateNew(in, timezone.TodayIn(uc.shopTZ)); err != nil {
		return err
	}

	if _, err := uc.carriers.GetCarrier(ctx, in.CarrierID); err != nil {
		return err
	}

	b := domain.NewRequest(in)
	if err := uc.repo.CreateBookingRequest(ctx, b); err != nil {
		return err
	}

	_ = cache.Invalidate(ctx, uc.cache, cache.Event{Kind: cache.BookingCreated, CarrierID: b.CarrierID.String()})

	uc.audit.Dispatch(audit.Event{
		Action:   audit.ActionBookingCreated,
		Entity:   "booking_request",
		EntityID: &b.ID,
		Metadata: map[string]string{
			"carrier_id": b.CarrierID.String(),
			"duration":   b.Duration,
			"start_date": b.StartDate.String(),
		},
	})

	return nil
}
