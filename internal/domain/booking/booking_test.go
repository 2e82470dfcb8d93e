package booking

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/sling-library/internal/domain/carrier"
	"github.com/BruksfildServices01/sling-library/internal/httperr"
	"github.com/BruksfildServices01/sling-library/internal/models"
)

func pending(start models.Date, d Duration) *models.BookingRequest {
	return &models.BookingRequest{
		StartDate: start,
		Duration:  string(d),
		Status:    string(StatusPending),
	}
}

func availableCarrier() *models.Carrier {
	return &models.Carrier{AvailabilityStatus: string(carrier.StatusAvailable)}
}

func TestReturnDate(t *testing.T) {
	cases := []struct {
		start models.Date
		d     Duration
		want  models.Date
	}{
		{models.NewDate(2024, time.January, 1), DurationWeekly, models.NewDate(2024, time.January, 8)},
		{models.NewDate(2024, time.December, 28), DurationWeekly, models.NewDate(2025, time.January, 4)},
		{models.NewDate(2024, time.January, 31), DurationMonthly, models.NewDate(2024, time.February, 29)},
		{models.NewDate(2023, time.January, 31), DurationMonthly, models.NewDate(2023, time.February, 28)},
		{models.NewDate(2024, time.March, 31), DurationMonthly, models.NewDate(2024, time.April, 30)},
		{models.NewDate(2024, time.December, 15), DurationMonthly, models.NewDate(2025, time.January, 15)},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ReturnDate(tc.start, tc.d), "%s %s", tc.start, tc.d)
	}
}

func TestApproveWeekly(t *testing.T) {
	b := pending(models.NewDate(2024, time.January, 1), DurationWeekly)
	c := availableCarrier()

	require.NoError(t, Approve(b, c))

	assert.Equal(t, string(StatusApproved), b.Status)
	assert.Equal(t, string(carrier.StatusRented), c.AvailabilityStatus)
	require.NotNil(t, c.NextAvailableDate)
	assert.Equal(t, "2024-01-08", c.NextAvailableDate.String())
}

func TestApproveMonthlyClampsToMonthEnd(t *testing.T) {
	b := pending(models.NewDate(2024, time.January, 31), DurationMonthly)
	c := availableCarrier()

	require.NoError(t, Approve(b, c))
	assert.Equal(t, "2024-02-29", c.NextAvailableDate.String())
}

func TestApproveRejectsRentedCarrier(t *testing.T) {
	b := pending(models.NewDate(2024, time.January, 1), DurationWeekly)
	c := &models.Carrier{AvailabilityStatus: string(carrier.StatusRented)}

	err := Approve(b, c)
	assert.True(t, httperr.IsBusiness(err, "carrier_already_rented"))
	assert.Equal(t, string(StatusPending), b.Status)
}

func TestCompleteClearsReturnDate(t *testing.T) {
	b := pending(models.NewDate(2024, time.January, 1), DurationWeekly)
	c := availableCarrier()
	require.NoError(t, Approve(b, c))

	require.NoError(t, Complete(b, c))

	assert.Equal(t, string(StatusCompleted), b.Status)
	assert.Equal(t, string(carrier.StatusAvailable), c.AvailabilityStatus)
	assert.Nil(t, c.NextAvailableDate)
}

func TestReject(t *testing.T) {
	b := pending(models.NewDate(2024, time.January, 1), DurationWeekly)
	require.NoError(t, Reject(b))
	assert.Equal(t, string(StatusCancelled), b.Status)
}

func TestTerminalStatesHaveNoTransitions(t *testing.T) {
	for _, s := range []Status{StatusCompleted, StatusCancelled} {
		b := &models.BookingRequest{Status: string(s)}
		c := availableCarrier()

		assert.True(t, httperr.IsBusiness(Approve(b, c), "invalid_state"), s)
		assert.True(t, httperr.IsBusiness(Reject(b), "invalid_state"), s)
		assert.True(t, httperr.IsBusiness(Complete(b, c), "invalid_state"), s)
		assert.Equal(t, string(s), b.Status)
	}
}

func TestPendingCannotComplete(t *testing.T) {
	b := pending(models.NewDate(2024, time.January, 1), DurationWeekly)
	c := availableCarrier()

	assert.True(t, httperr.IsBusiness(Complete(b, c), "invalid_state"))
	assert.Equal(t, string(carrier.StatusAvailable), c.AvailabilityStatus)
}

func TestApprovedCannotBeRejected(t *testing.T) {
	b := &models.BookingRequest{Status: string(StatusApproved)}
	assert.True(t, httperr.IsBusiness(Reject(b), "invalid_state"))
}

func validForm(today models.Date) Input {
	start := today.AddDays(3)
	return Input{
		CarrierID:     uuid.New(),
		CustomerName:  "Asha",
		Phone:         "9876543210",
		City:          "Pune",
		StartDate:     &start,
		Duration:      "weekly",
		AgreedToTerms: true,
	}
}

func TestValidateNew(t *testing.T) {
	today := models.NewDate(2024, time.May, 10)
	require.NoError(t, ValidateNew(validForm(today), today))

	in := validForm(today)
	in.StartDate = &today
	assert.NoError(t, ValidateNew(in, today))

	in = validForm(today)
	yesterday := today.AddDays(-1)
	in.StartDate = &yesterday
	in.Phone = "12345"
	in.Duration = "daily"

	ve, ok := httperr.AsValidation(ValidateNew(in, today))
	require.True(t, ok)
	assert.Equal(t, "Start date cannot be in the past", ve.Fields["start_date"])
	assert.Contains(t, ve.Fields, "phone")
	assert.Contains(t, ve.Fields, "duration")
	assert.NotContains(t, ve.Fields, "customer_name")
}

func TestValidateNewChecksTermsFirst(t *testing.T) {
	today := models.NewDate(2024, time.May, 10)
	in := Input{AgreedToTerms: false}

	ve, ok := httperr.AsValidation(ValidateNew(in, today))
	require.True(t, ok)
	assert.Equal(t, map[string]string{"agreed_to_terms": "You must agree to the rental terms"}, ve.Fields)
}

func TestNewRequestForcesPending(t *testing.T) {
	today := models.NewDate(2024, time.May, 10)
	in := validForm(today)
	notes := "  "
	in.Notes = &notes
	in.CustomerName = " Asha "

	b := NewRequest(in)
	assert.Equal(t, string(StatusPending), b.Status)
	assert.Equal(t, "Asha", b.CustomerName)
	assert.Nil(t, b.Notes)
	assert.Equal(t, *in.StartDate, b.StartDate)
}
