package carrier

import "github.com/BruksfildServices01/sling-library/internal/models"

type Availability string

const (
	StatusAvailable Availability = "available"
	StatusRented    Availability = "rented"
)

func IsAvailability(v string) bool {
	return v == string(StatusAvailable) || v == string(StatusRented)
}

// MarkRented checks the carrier out until the given day.
func MarkRented(c *models.Carrier, until models.Date) {
	c.AvailabilityStatus = string(StatusRented)
	c.NextAvailableDate = &until
}

// MarkAvailable puts the carrier back on the shelf; a returned carrier has no
// next available date.
func MarkAvailable(c *models.Carrier) {
	c.AvailabilityStatus = string(StatusAvailable)
	c.NextAvailableDate = nil
}
