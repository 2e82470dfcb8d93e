package models

import "github.com/lib/pq"

type Carrier struct {
	BaseModel

	BrandName string `gorm:"size:100;not null;index" json:"brand_name"`
	ModelName string `gorm:"size:100;not null" json:"model_name"`
	Category  string `gorm:"size:30;not null;index" json:"category"`

	AgeRange    string `gorm:"size:60;not null" json:"age_range"`
	WeightRange string `gorm:"size:60;not null" json:"weight_range"`

	WeeklyRent        float64 `gorm:"type:numeric(10,2);not null" json:"weekly_rent"`
	MonthlyRent       float64 `gorm:"type:numeric(10,2);not null" json:"monthly_rent"`
	RefundableDeposit float64 `gorm:"type:numeric(10,2);not null" json:"refundable_deposit"`
	BuyoutPrice       float64 `gorm:"type:numeric(10,2);not null" json:"buyout_price"`

	Condition      string         `gorm:"size:60;default:'gently used'" json:"condition"`
	CarryPositions pq.StringArray `gorm:"type:text[]" json:"carry_positions"`

	Description         *string `gorm:"type:text" json:"description"`
	LaundryInstructions *string `gorm:"type:text" json:"laundry_instructions"`

	Images pq.StringArray `gorm:"type:text[]" json:"images"`

	AvailabilityStatus string `gorm:"size:20;not null;default:'available'" json:"availability_status"`
	NextAvailableDate  *Date  `json:"next_available_date"`
}

// DisplayName is the "<brand> <model>" label used across the storefront.
func (c Carrier) DisplayName() string {
	return c.BrandName + " " + c.ModelName
}

// PrimaryImage returns the first image URL, or "" when none is set.
func (c Carrier) PrimaryImage() string {
	if len(c.Images) == 0 {
		return ""
	}
	return c.Images[0]
}
