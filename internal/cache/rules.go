package cache

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/sling-library/internal/logger"
)

// Event is a mutation that makes cached reads stale.
type Event struct {
	Kind      EventKind
	CarrierID string
}

type EventKind string

const (
	CarrierCreated      EventKind = "carrier_created"
	CarrierUpdated      EventKind = "carrier_updated"
	CarrierDeleted      EventKind = "carrier_deleted"
	BookingCreated      EventKind = "booking_created"
	BookingTransitioned EventKind = "booking_transitioned"
)

// Invalidation lists what an event drops: exact keys and key prefixes.
type Invalidation struct {
	Keys     []string
	Prefixes []string
}

// Rules is the declared mapping from mutation to stale entries. Settings
// updates are not listed: the new value is written through instead.
func Rules(e Event) Invalidation {
	switch e.Kind {
	case CarrierCreated:
		return Invalidation{Prefixes: []string{CarrierListPrefix}}
	case CarrierUpdated:
		return Invalidation{
			Keys:     []string{CarrierKey(e.CarrierID)},
			Prefixes: []string{CarrierListPrefix},
		}
	case CarrierDeleted:
		// Deleting a carrier cascades to its booking requests.
		return Invalidation{
			Keys:     []string{CarrierKey(e.CarrierID), BookingListKey},
			Prefixes: []string{CarrierListPrefix},
		}
	case BookingCreated:
		return Invalidation{Keys: []string{BookingListKey}}
	case BookingTransitioned:
		return Invalidation{
			Keys:     []string{BookingListKey, CarrierKey(e.CarrierID)},
			Prefixes: []string{CarrierListPrefix},
		}
	default:
		return Invalidation{}
	}
}

// Invalidate applies Rules(e) to c. Failures are logged and returned, but
// callers treat them as non-fatal since every entry also expires.
func Invalidate(ctx context.Context, c Cache, e Event) error {
	inv := Rules(e)

	var errs []error
	if len(inv.Keys) > 0 {
		errs = append(errs, c.Delete(ctx, inv.Keys...))
	}
	for _, p := range inv.Prefixes {
		errs = append(errs, c.DeletePrefix(ctx, p))
	}

	err := errors.Join(errs...)
	if err != nil {
		logger.Warn("cache invalidation failed", "event", string(e.Kind), "carrier_id", e.CarrierID, "error", err)
	}
	return err
}
