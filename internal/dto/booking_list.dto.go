package dto

import (
	"github.com/google/uuid"

	"github.com/BruksfildServices01/sling-library/internal/domain/booking"
	"github.com/BruksfildServices01/sling-library/internal/models"
)

// BookingListDTO is one row of the admin booking table. ReturnDate is the
// date the carrier would be due back if the request were approved.
type BookingListDTO struct {
	ID           uuid.UUID   `json:"id"`
	CarrierID    uuid.UUID   `json:"carrier_id"`
	CarrierName  string      `json:"carrier_name"`
	CustomerName string      `json:"customer_name"`
	Phone        string      `json:"phone"`
	City         string      `json:"city"`
	StartDate    models.Date `json:"start_date"`
	Duration     string      `json:"duration"`
	ReturnDate   models.Date `json:"return_date"`
	Status       string      `json:"status"`
	Notes        *string     `json:"notes"`
	CreatedAt    string      `json:"created_at"`
}

func BookingList(rows []booking.ListedRequest) []BookingListDTO {
	out := make([]BookingListDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, BookingListDTO{
			ID:           r.ID,
			CarrierID:    r.CarrierID,
			CarrierName:  r.CarrierName,
			CustomerName: r.CustomerName,
			Phone:        r.Phone,
			City:         r.City,
			StartDate:    r.StartDate,
			Duration:     r.Duration,
			ReturnDate:   booking.ReturnDate(r.StartDate, booking.Duration(r.Duration)),
			Status:       r.Status,
			Notes:        r.Notes,
			CreatedAt:    r.CreatedAt.Format("2006-01-02 15:04"),
		})
	}
	return out
}
