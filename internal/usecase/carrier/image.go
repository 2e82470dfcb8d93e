package carrier

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/sling-library/internal/audit"
	"github.com/BruksfildServices01/sling-library/internal/cache"
	domain "github.com/BruksfildServices01/sling-library/internal/domain/carrier"
	"github.com/BruksfildServices01/sling-library/internal/models"
	"github.com/BruksfildServices01/sling-library/internal/storage"
)

type AddCarrierImage struct {
	repo       domain.Repository
	store      storage.ImageStore
	transcoder *storage.Transcoder
	cache      cache.Cache
	audit      *audit.Dispatcher
}

func NewAddCarrierImage(
	repo domain.Repository,
	store storage.ImageStore,
	transcoder *storage.Transcoder,
	c cache.Cache,
	audit *audit.Dispatcher,
) *AddCarrierImage {
	return &AddCarrierImage{
		repo:       repo,
		store:      store,
		transcoder: transcoder,
		cache:      c,
		audit:      audit,
	}
}

// Execute converts the upload to webp, stores it and appends its URL to the
// carrier images. With primary set the URL goes first instead.
func (uc *AddCarrierImage) Execute(
	ctx context.Context,
	actorID *uuid.UUID,
	id uuid.UUID,
	upload io.Reader,
	primary bool,
) (*models.Carrier, error) {

	c, err := uc.repo.GetCarrier(ctx, id)
	if err != nil {
		return nil, err
	}

	body, err := uc.transcoder.ToWebP(upload)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("carriers/%s/%s.webp", c.ID, uuid.NewString())
	url, err := uc.store.Put(ctx, key, "image/webp", body)
	if err != nil {
		return nil, err
	}

	if primary {
		c.Images = append([]string{url}, c.Images...)
	} else {
		c.Images = append(c.Images, url)
	}

	if err := uc.repo.UpdateCarrier(ctx, c); err != nil {
		return nil, err
	}

	_ = cache.Invalidate(ctx, uc.cache, cache.Event{Kind: cache.CarrierUpdated, CarrierID: id.String()})

	uc.audit.Dispatch(audit.Event{
		ActorID:  actorID,
		Action:   audit.ActionCarrierImageAdded,
		Entity:   "carrier",
		EntityID: &c.ID,
		Metadata: map[string]any{"url": url, "primary": primary},
	})

	return c, nil
}
