package models

import "github.com/google/uuid"

type BookingRequest struct {
	BaseModel

	CarrierID uuid.UUID `gorm:"type:uuid;not null;index" json:"carrier_id"`
	Carrier   *Carrier  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	CustomerName string `gorm:"size:100;not null" json:"customer_name"`
	Phone        string `gorm:"size:20;not null" json:"phone"`
	City         string `gorm:"size:100;not null" json:"city"`

	StartDate Date   `gorm:"not null" json:"start_date"`
	Duration  string `gorm:"size:10;not null" json:"duration"`

	Status        string  `gorm:"size:20;not null;default:'pending';index" json:"status"`
	AgreedToTerms bool    `gorm:"not null" json:"agreed_to_terms"`
	Notes         *string `gorm:"type:text" json:"notes"`
}
