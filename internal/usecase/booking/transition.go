package booking

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/sling-library/internal/audit"
	"github.com/BruksfildServices01/sling-library/internal/cache"
	domain "github.com/BruksfildServices01/sling-library/internal/domain/booking"
	"github.com/BruksfildServices01/sling-library/internal/logger"
	"github.com/BruksfildServices01/sling-library/internal/metrics"
	"github.com/BruksfildServices01/sling-library/internal/models"
)

// Result is a booking request after a transition, with its carrier when the
// transition touched it.
type Result struct {
	Booking *models.BookingRequest `json:"booking"`
	Carrier *models.Carrier        `json:"carrier,omitempty"`
}

// transitioner runs one admin transition inside a single transaction: the
// booking row and, when needed, the carrier row are locked, changed and
// saved together, so a failure leaves both untouched.
type transitioner struct {
	repo  domain.Repository
	cache cache.Cache
	audit *audit.Dispatcher
}

func (t transitioner) run(
	ctx context.Context,
	actorID *uuid.UUID,
	id uuid.UUID,
	name string,
	action string,
	withCarrier bool,
	apply func(b *models.BookingRequest, c *models.Carrier) error,
) (*Result, error) {

	var res Result
	err := t.repo.RunInTx(ctx, func(tx domain.Tx) error {
		b, err := tx.LockBookingRequest(id)
		if err != nil {
			return err
		}

		var c *models.Carrier
		if withCarrier {
			if c, err = tx.LockCarrier(b.CarrierID); err != nil {
				return err
			}
		}

		if err := apply(b, c); err != nil {
			return err
		}

		if err := tx.SaveBookingRequest(b); err != nil {
			return err
		}
		if c != nil {
			if err := tx.SaveCarrierAvailability(c); err != nil {
				return err
			}
		}

		res = Result{Booking: b, Carrier: c}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordTransition(name)
	logger.Info("booking transitioned", "booking_id", id, "transition", name, "status", res.Booking.Status)

	_ = cache.Invalidate(ctx, t.cache, cache.Event{
		Kind:      cache.BookingTransitioned,
		CarrierID: res.Booking.CarrierID.String(),
	})

	meta := map[string]string{"status": res.Booking.Status}
	if res.Carrier != nil && res.Carrier.NextAvailableDate != nil {
		meta["return_date"] = res.Carrier.NextAvailableDate.String()
	}
	t.audit.Dispatch(audit.Event{
		ActorID:  actorID,
		Action:   action,
		Entity:   "booking_request",
		EntityID: &res.Booking.ID,
		Metadata: meta,
	})

	return &res, nil
}

// ===============================
// Approve
// ===============================

type ApproveBookingRequest struct {
	t transitioner
}

func NewApproveBookingRequest(repo domain.Repository, c cache.Cache, audit *audit.Dispatcher) *ApproveBookingRequest {
	return &ApproveBookingRequest{t: transitioner{repo: repo, cache: c, audit: audit}}
}

// Execute approves a pending request and rents out its carrier until the
// return date. It fails with carrier_already_rented when the carrier is out.
func (uc *ApproveBookingRequest) Execute(ctx context.Context, actorID *uuid.UUID, id uuid.UUID) (*Result, error) {
	return uc.t.run(ctx, actorID, id, "approve", audit.ActionBookingApproved, true, domain.Approve)
}

// ===============================
// Reject
// ===============================

type RejectBookingRequest struct {
	t transitioner
}

func NewRejectBookingRequest(repo domain.Repository, c cache.Cache, audit *audit.Dispatcher) *RejectBookingRequest {
	return &RejectBookingRequest{t: transitioner{repo: repo, cache: c, audit: audit}}
}

func (uc *RejectBookingRequest) Execute(ctx context.Context, actorID *uuid.UUID, id uuid.UUID) (*Result, error) {
	return uc.t.run(ctx, actorID, id, "reject", audit.ActionBookingRejected, false,
		func(b *models.BookingRequest, _ *models.Carrier) error {
			return domain.Reject(b)
		})
}

// ===============================
// Complete
// ===============================

type CompleteBookingRequest struct {
	t transitioner
}

func NewCompleteBookingRequest(repo domain.Repository, c cache.Cache, audit *audit.Dispatcher) *CompleteBookingRequest {
	return &CompleteBookingRequest{t: transitioner{repo: repo, cache: c, audit: audit}}
}

// Execute marks the carrier of an approved request as returned.
func (uc *CompleteBookingRequest) Execute(ctx context.Context, actorID *uuid.UUID, id uuid.UUID) (*Result, error) {
	return uc.t.run(ctx, actorID, id, "complete", audit.ActionBookingCompleted, true, domain.Complete)
}
