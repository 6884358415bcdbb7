package model

import "github.com/google/uuid"

type Supplier struct {
	BaseModel
	Name    string  `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Email   *string `gorm:"type:varchar(255);uniqueIndex" json:"email,omitempty"`
	Phone   *string `gorm:"type:varchar(50)" json:"phone,omitempty"`
	Company *string `gorm:"type:varchar(255)" json:"company,omitempty"`
	Address *string `gorm:"type:text" json:"address,omitempty"`
	Notes   *string `gorm:"type:text" json:"notes,omitempty"`

	PreferredCategoryID *uuid.UUID `gorm:"type:uuid" json:"preferredCategoryId,omitempty"`
	PreferredProductID  *uuid.UUID `gorm:"type:uuid" json:"preferredProductId,omitempty"`
}
