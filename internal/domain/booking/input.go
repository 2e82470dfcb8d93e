package booking

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/sling-library/internal/httperr"
	"github.com/BruksfildServices01/sling-library/internal/models"
)

// Input is the public booking form.
type Input struct {
	CarrierID     uuid.UUID    `json:"carrier_id"`
	CustomerName  string       `json:"customer_name"`
	Phone         string       `json:"phone"`
	City          string       `json:"city"`
	StartDate     *models.Date `json:"start_date"`
	Duration      string       `json:"duration"`
	AgreedToTerms bool         `json:"agreed_to_terms"`
	Notes         *string      `json:"notes"`
}

// ValidateNew checks a booking form against today's date in the shop
// timezone. Terms acceptance is checked before anything else.
func ValidateNew(in Input, today models.Date) error {
	var ve httperr.ValidationError

	if !in.AgreedToTerms {
		ve.Add("agreed_to_terms", "You must agree to the rental terms")
		return ve.Err()
	}

	if in.CarrierID == uuid.Nil {
		ve.Add("carrier_id", "Choose a carrier")
	}
	if runeLen(in.CustomerName) < 2 {
		ve.Add("customer_name", "Name must be at least 2 characters")
	}
	if runeLen(in.Phone) < 10 {
		ve.Add("phone", "Please enter a valid phone number")
	}
	if runeLen(in.City) < 2 {
		ve.Add("city", "City is required")
	}
	if !IsDuration(in.Duration) {
		ve.Add("duration", "Choose weekly or monthly")
	}

	switch {
	case in.StartDate == nil || in.StartDate.IsZero():
		ve.Add("start_date", "Please select a start date")
	case in.StartDate.Before(today):
		ve.Add("start_date", "Start date cannot be in the past")
	}

	return ve.Err()
}

// NewRequest builds the record to insert. Status is always pending.
func NewRequest(in Input) *models.BookingRequest {
	b := &models.BookingRequest{
		CarrierID:     in.CarrierID,
		CustomerName:  strings.TrimSpace(in.CustomerName),
		Phone:         strings.TrimSpace(in.Phone),
		City:          strings.TrimSpace(in.City),
		Duration:      in.Duration,
		Status:        string(InitialStatus()),
		AgreedToTerms: in.AgreedToTerms,
	}
	if in.StartDate != nil {
		b.StartDate = *in.StartDate
	}
	if in.Notes != nil {
		if n := strings.TrimSpace(*in.Notes); n != "" {
			b.Notes = &n
		}
	}
	return b
}

func runeLen(s string) int {
	return utf8.RuneCountInString(strings.TrimSpace(s))
}
