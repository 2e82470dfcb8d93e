package carrier

import (
	"strings"

	"github.com/BruksfildServices01/sling-library/internal/httperr"
	"github.com/BruksfildServices01/sling-library/internal/models"
)

const DefaultCondition = "gently used"

// Input is the admin carrier form, used for both create and full update.
type Input struct {
	BrandName   string `json:"brand_name"`
	ModelName   string `json:"model_name"`
	Category    string `json:"category"`
	AgeRange    string `json:"age_range"`
	WeightRange string `json:"weight_range"`

	WeeklyRent        float64 `json:"weekly_rent"`
	MonthlyRent       float64 `json:"monthly_rent"`
	RefundableDeposit float64 `json:"refundable_deposit"`
	BuyoutPrice       float64 `json:"buyout_price"`

	Condition           string   `json:"condition"`
	CarryPositions      []string `json:"carry_positions"`
	Description         *string  `json:"description"`
	LaundryInstructions *string  `json:"laundry_instructions"`
	Images              []string `json:"images"`

	AvailabilityStatus string       `json:"availability_status"`
	NextAvailableDate  *models.Date `json:"next_available_date"`
}

func (in Input) Validate() error {
	var ve httperr.ValidationError

	required := []struct{ field, value, message string }{
		{"brand_name", in.BrandName, "Brand name required"},
		{"model_name", in.ModelName, "Model name required"},
		{"age_range", in.AgeRange, "Age range required"},
		{"weight_range", in.WeightRange, "Weight range required"},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			ve.Add(r.field, r.message)
		}
	}

	if !IsCategory(in.Category) {
		ve.Add("category", "Choose one of ring-slings, wraps, buckle-carriers, onbuhimo")
	}

	amounts := []struct {
		field   string
		value   float64
		message string
	}{
		{"weekly_rent", in.WeeklyRent, "Weekly rent required"},
		{"monthly_rent", in.MonthlyRent, "Monthly rent required"},
		{"refundable_deposit", in.RefundableDeposit, "Deposit required"},
		{"buyout_price", in.BuyoutPrice, "Buyout price required"},
	}
	for _, a := range amounts {
		if a.value < 1 {
			ve.Add(a.field, a.message)
		}
	}

	if in.AvailabilityStatus != "" && !IsAvailability(in.AvailabilityStatus) {
		ve.Add("availability_status", "Status must be available or rented")
	}

	return ve.Err()
}

// Apply copies the form onto c. Lists are trimmed and emptied of blanks, and an
// available carrier never keeps a next available date.
func (in Input) Apply(c *models.Carrier) {
	c.BrandName = strings.TrimSpace(in.BrandName)
	c.ModelName = strings.TrimSpace(in.ModelName)
	c.Category = in.Category
	c.AgeRange = strings.TrimSpace(in.AgeRange)
	c.WeightRange = strings.TrimSpace(in.WeightRange)

	c.WeeklyRent = in.WeeklyRent
	c.MonthlyRent = in.MonthlyRent
	c.RefundableDeposit = in.RefundableDeposit
	c.BuyoutPrice = in.BuyoutPrice

	c.Condition = strings.TrimSpace(in.Condition)
	if c.Condition == "" {
		c.Condition = DefaultCondition
	}
	c.CarryPositions = compact(in.CarryPositions)
	c.Description = optional(in.Description)
	c.LaundryInstructions = optional(in.LaundryInstructions)
	c.Images = compact(in.Images)

	switch Availability(in.AvailabilityStatus) {
	case StatusRented:
		c.AvailabilityStatus = string(StatusRented)
		c.NextAvailableDate = in.NextAvailableDate
	default:
		MarkAvailable(c)
	}
}

func compact(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func optional(v *string) *string {
	if v == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*v)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
