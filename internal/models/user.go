package models

import "github.com/google/uuid"

type User struct {
	BaseModel

	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`

	Roles []UserRole `json:"roles,omitempty"`
}

type UserRole struct {
	BaseModel

	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_role" json:"user_id"`
	Role   string    `gorm:"size:20;not null;uniqueIndex:idx_user_role" json:"role"`
}
