package carrier

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/sling-library/internal/audit"
	"github.com/BruksfildServices01/sling-library/internal/cache"
	domain "github.com/BruksfildServices01/sling-library/internal/domain/carrier"
	"github.com/BruksfildServices01/sling-library/internal/models"
)

// ===============================
// Admin list
// ===============================

type ListCarriers struct {
	repo domain.Repository
}

func NewListCarriers(repo domain.Repository) *ListCarriers {
	return &ListCarriers{repo: repo}
}

// Execute reads straight from the repository; admins always see fresh data.
func (uc *ListCarriers) Execute(ctx context.Context, category string) ([]models.Carrier, error) {
	return uc.repo.ListCarriers(ctx, domain.ListFilter{Category: category})
}

// ===============================
// Create
// ===============================

type CreateCarrier struct {
	repo  domain.Repository
	cache cache.Cache
	audit *audit.Dispatcher
}

func NewCreateCarrier(repo domain.Repository, c cache.Cache, audit *audit.Dispatcher) *CreateCarrier {
	return &CreateCarrier{repo: repo, cache: c, audit: audit}
}

func (uc *CreateCarrier) Execute(ctx context.Context, actorID *uuid.UUID, in domain.Input) (*models.Carrier, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	var c models.Carrier
	in.Apply(&c)

	if err := uc.repo.CreateCarrier(ctx, &c); err != nil {
		return nil, err
	}

	_ = cache.Invalidate(ctx, uc.cache, cache.Event{Kind: cache.CarrierCreated, CarrierID: c.ID.String()})

	uc.audit.Dispatch(audit.Event{
		ActorID:  actorID,
		Action:   audit.ActionCarrierCreated,
		Entity:   "carrier",
		EntityID: &c.ID,
		Metadata: map[string]string{"name": c.DisplayName()},
	})

	return &c, nil
}

// ===============================
// Update
// ===============================

type UpdateCarrier struct {
	repo  domain.Repository
	cache cache.Cache
	audit *audit.Dispatcher
}

func NewUpdateCarrier(repo domain.Repository, c cache.Cache, audit *audit.Dispatcher) *UpdateCarrier {
	return &UpdateCarrier{repo: repo, cache: c, audit: audit}
}

func (uc *UpdateCarrier) Execute(ctx context.Context, actorID *uuid.UUID, id uuid.UUID, in domain.Input) (*models.Carrier, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	c, err := uc.repo.GetCarrier(ctx, id)
	if err != nil {
		return nil, err
	}

	in.Apply(c)

	if err := uc.repo.UpdateCarrier(ctx, c); err != nil {
		return nil, err
	}

	_ = cache.Invalidate(ctx, uc.cache, cache.Event{Kind: cache.CarrierUpdated, CarrierID: id.String()})

	uc.audit.Dispatch(audit.Event{
		ActorID:  actorID,
		Action:   audit.ActionCarrierUpdated,
		Entity:   "carrier",
		EntityID: &c.ID,
	})

	return c, nil
}

// ===============================
// Delete
// ===============================

type DeleteCarrier struct {
	repo  domain.Repository
	cache cache.Cache
	audit *audit.Dispatcher
}

func NewDeleteCarrier(repo domain.Repository, c cache.Cache, audit *audit.Dispatcher) *DeleteCarrier {
	return &DeleteCarrier{repo: repo, cache: c, audit: audit}
}

// Execute removes the carrier together with its booking requests.
func (uc *DeleteCarrier) Execute(ctx context.Context, actorID *uuid.UUID, id uuid.UUID) error {
	if err := uc.repo.DeleteCarrier(ctx, id); err != nil {
		return err
	}

	_ = cache.Invalidate(ctx, uc.cache, cache.Event{Kind: cache.CarrierDeleted, CarrierID: id.String()})

	uc.audit.Dispatch(audit.Event{
		ActorID:  actorID,
		Action:   audit.ActionCarrierDeleted,
		Entity:   "carrier",
		EntityID: &id,
	})

	return nil
}
