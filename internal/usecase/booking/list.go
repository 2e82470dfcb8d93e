package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/sling-library/internal/cache"
	"github.com/BruksfildServices01/sling-library/internal/contact"
	domain "github.com/BruksfildServices01/sling-library/internal/domain/booking"
	"github.com/BruksfildServices01/sling-library/internal/httperr"
)

type ListBookingRequests struct {
	repo  domain.Repository
	cache cache.Cache
	ttl   time.Duration
}

func NewListBookingRequests(repo domain.Repository, c cache.Cache, ttl time.Duration) *ListBookingRequests {
	return &ListBookingRequests{repo: repo, cache: c, ttl: ttl}
}

// Execute lists requests newest first. Only the unfiltered list is cached.
func (uc *ListBookingRequests) Execute(ctx context.Context, status string) ([]domain.ListedRequest, error) {
	if status != "" {
		if !domain.IsStatus(status) {
			return nil, httperr.ErrBusiness("invalid_status")
		}
		return uc.repo.ListBookingRequests(ctx, domain.ListFilter{Status: status})
	}

	return cache.Fetch(ctx, uc.cache, cache.BookingListKey, uc.ttl,
		func(ctx context.Context) ([]domain.ListedRequest, error) {
			return uc.repo.ListBookingRequests(ctx, domain.ListFilter{})
		})
}

type ContactLink struct {
	CustomerName string `json:"customer_name"`
	Phone        string `json:"phone"`
	URL          string `json:"url"`
}

type ContactCustomer struct {
	repo domain.Repository
}

func NewContactCustomer(repo domain.Repository) *ContactCustomer {
	return &ContactCustomer{repo: repo}
}

func (uc *ContactCustomer) Execute(ctx context.Context, id uuid.UUID) (*ContactLink, error) {
	b, err := uc.repo.GetBookingRequest(ctx, id)
	if err != nil {
		return nil, err
	}
	return &ContactLink{
		CustomerName: b.CustomerName,
		Phone:        b.Phone,
		URL:          contact.CustomerContactLink(*b),
	}, nil
}
