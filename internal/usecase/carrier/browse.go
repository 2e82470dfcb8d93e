package carrier

import (
	"context"

	domain "github.com/BruksfildServices01/sling-library/internal/domain/carrier"
	"github.com/BruksfildServices01/sling-library/internal/httperr"
	"github.com/BruksfildServices01/sling-library/internal/models"
)

// BrowseResult is one page of the catalog. Active reports whether any filter
// narrows the list, which drives the "clear all" control.
type BrowseResult struct {
	Data    []models.Carrier     `json:"data"`
	Total   int                  `json:"total"`
	Active  bool                 `json:"active"`
	Filters domain.FilterOptions `json:"filters"`
	Facets  domain.Facets        `json:"facets"`
}

type BrowseCarriers struct {
	reader *Reader
}

func NewBrowseCarriers(reader *Reader) *BrowseCarriers {
	return &BrowseCarriers{reader: reader}
}

// Execute filters the stored list of category (all when empty) with q. The
// filter options always describe the unfiltered list so choices never vanish
// while the user narrows down.
func (uc *BrowseCarriers) Execute(
	ctx context.Context,
	category string,
	q domain.Query,
) (*BrowseResult, error) {

	if category != "" && !domain.IsCategory(category) {
		return nil, httperr.ErrBusiness("invalid_category")
	}

	all, err := uc.reader.List(ctx, category)
	if err != nil {
		return nil, err
	}

	data := domain.Apply(all, q)
	opts := domain.Options(all)
	return &BrowseResult{
		Data:    data,
		Total:   len(data),
		Active:  q.Active(),
		Filters: opts,
		Facets:  domain.FacetsFor(opts, q),
	}, nil
}

type FeaturedCarriers struct {
	reader *Reader
}

func NewFeaturedCarriers(reader *Reader) *FeaturedCarriers {
	return &FeaturedCarriers{reader: reader}
}

func (uc *FeaturedCarriers) Execute(ctx context.Context, limit int) ([]models.Carrier, error) {
	all, err := uc.reader.List(ctx, "")
	if err != nil {
		return nil, err
	}
	return domain.Featured(all, limit), nil
}
