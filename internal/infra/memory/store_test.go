package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/sling-library/internal/domain/booking"
	"github.com/BruksfildServices01/sling-library/internal/domain/carrier"
	"github.com/BruksfildServices01/sling-library/internal/httperr"
	"github.com/BruksfildServices01/sling-library/internal/models"
)

func seed(t *testing.T, s *Store) (*models.Carrier, *models.BookingRequest) {
	t.Helper()
	ctx := context.Background()

	c := &models.Carrier{BrandName: "Tula", ModelName: "Explore", Category: "buckle-carriers"}
	require.NoError(t, s.Carriers().CreateCarrier(ctx, c))

	b := &models.BookingRequest{
		CarrierID: c.ID,
		StartDate: models.NewDate(2024, time.January, 1),
		Duration:  "weekly",
		Status:    "pending",
	}
	require.NoError(t, s.Bookings().CreateBookingRequest(ctx, b))
	return c, b
}

func TestRunInTxRollsBackOnError(t *testing.T) {
	s := NewStore()
	c, b := seed(t, s)
	ctx := context.Background()
	boom := errors.New("boom")

	err := s.Bookings().RunInTx(ctx, func(tx booking.Tx) error {
		lb, err := tx.LockBookingRequest(b.ID)
		require.NoError(t, err)
		lc, err := tx.LockCarrier(c.ID)
		require.NoError(t, err)

		require.NoError(t, booking.Approve(lb, lc))
		require.NoError(t, tx.SaveBookingRequest(lb))
		require.NoError(t, tx.SaveCarrierAvailability(lc))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	gotB, err := s.Bookings().GetBookingRequest(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "pending", gotB.Status)

	gotC, err := s.Carriers().GetCarrier(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "available", gotC.AvailabilityStatus)
	assert.Nil(t, gotC.NextAvailableDate)
}

func TestRunInTxCommits(t *testing.T) {
	s := NewStore()
	c, b := seed(t, s)
	ctx := context.Background()

	require.NoError(t, s.Bookings().RunInTx(ctx, func(tx booking.Tx) error {
		lb, _ := tx.LockBookingRequest(b.ID)
		lc, _ := tx.LockCarrier(c.ID)
		if err := booking.Approve(lb, lc); err != nil {
			return err
		}
		if err := tx.SaveBookingRequest(lb); err != nil {
			return err
		}
		return tx.SaveCarrierAvailability(lc)
	}))

	gotC, err := s.Carriers().GetCarrier(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "rented", gotC.AvailabilityStatus)
	assert.Equal(t, "2024-01-08", gotC.NextAvailableDate.String())
}

func TestDeleteCarrierCascadesBookings(t *testing.T) {
	s := NewStore()
	c, b := seed(t, s)
	ctx := context.Background()

	require.NoError(t, s.Carriers().DeleteCarrier(ctx, c.ID))

	_, err := s.Bookings().GetBookingRequest(ctx, b.ID)
	assert.True(t, httperr.IsBusiness(err, "booking_not_found"))
	assert.ErrorIs(t, s.Carriers().DeleteCarrier(ctx, c.ID), carrier.ErrNotFound)
}

func TestListBookingRequestsNamesCarrier(t *testing.T) {
	s := NewStore()
	seed(t, s)

	rows, err := s.Bookings().ListBookingRequests(context.Background(), booking.ListFilter{Status: "pending"})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Tula Explore", rows[0].CarrierName)

	rows, err = s.Bookings().ListBookingRequests(context.Background(), booking.ListFilter{Status: "approved"})
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestCreateBookingRequiresCarrier(t *testing.T) {
	s := NewStore()
	err := s.Bookings().CreateBookingRequest(context.Background(), &models.BookingRequest{Status: "pending"})
	assert.ErrorIs(t, err, carrier.ErrNotFound)
}
