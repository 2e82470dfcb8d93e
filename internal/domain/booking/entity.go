package booking

import (
	"github.com/BruksfildServices01/sling-library/internal/domain/carrier"
	"github.com/BruksfildServices01/sling-library/internal/httperr"
	"github.com/BruksfildServices01/sling-library/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Approve confirms a pending request and checks the carrier out until the
// return date. A carrier that is already rented cannot be approved again.
func Approve(b *models.BookingRequest, c *models.Carrier) error {
	if err := CanApprove(Status(b.Status)); err != nil {
		return err
	}
	if c.AvailabilityStatus == string(carrier.StatusRented) {
		return httperr.ErrBusiness("carrier_already_rented")
	}

	b.Status = string(StatusApproved)
	carrier.MarkRented(c, ReturnDate(b.StartDate, Duration(b.Duration)))
	return nil
}

func Reject(b *models.BookingRequest) error {
	if err := CanReject(Status(b.Status)); err != nil {
		return err
	}

	b.Status = string(StatusCancelled)
	return nil
}

// Complete records the carrier as returned.
func Complete(b *models.BookingRequest, c *models.Carrier) error {
	if err := CanComplete(Status(b.Status)); err != nil {
		return err
	}

	b.Status = string(StatusCompleted)
	carrier.MarkAvailable(c)
	return nil
}
