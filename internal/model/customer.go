package model

import "github.com/google/uuid"

type Customer struct {
	BaseModel
	FullName string  `gorm:"type:varchar(255);not null" json:"fullName" validate:"required"`
	Email    *string `gorm:"type:varchar(255);uniqueIndex" json:"email,omitempty"`
	Phone    *string `gorm:"type:varchar(50)" json:"phone,omitempty"`
	Company  *string `gorm:"type:varchar(255)" json:"company,omitempty"`
	Notes    *string `gorm:"type:text" json:"notes,omitempty"`

	// Preferences reference catalog rows by id only, no ownership
	PreferredCategoryID *uuid.UUID `gorm:"type:uuid" json:"preferredCategoryId,omitempty"`
	PreferredCategory   *Category  `gorm:"foreignKey:PreferredCategoryID" json:"preferredCategory,omitempty"`
	PreferredProductID  *uuid.UUID `gorm:"type:uuid" json:"preferredProductId,omitempty"`
	PreferredProduct    *Product   `gorm:"foreignKey:PreferredProductID" json:"preferredProduct,omitempty"`
}

// CustomerRef is the compact customer shape embedded in sale responses.
type CustomerRef struct {
	ID       uuid.UUID `json:"id"`
	FullName string    `json:"fullName"`
}

func (c *Customer) Ref() *CustomerRef {
	if c == nil {
		return nil
	}
	return &CustomerRef{ID: c.ID, FullName: c.FullName}
}
