package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Sale is a customer order. It exclusively owns its line items: items are
// created, replaced and deleted only through the sale they belong to, and
// TotalAmount is always the sum of the current items' line totals.
type Sale struct {
	BaseModel
	// Code is the externally visible invoice reference, exposed as "uuid".
	Code        string          `gorm:"type:varchar(64);uniqueIndex;not null" json:"uuid"`
	Date        time.Time       `gorm:"not null" json:"date"`
	CustomerID  *uuid.UUID      `gorm:"type:uuid" json:"customerId,omitempty"`
	Customer    *Customer       `gorm:"foreignKey:CustomerID" json:"-"`
	Address     *string         `gorm:"type:text" json:"address,omitempty"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"totalAmount"`

	Items []SaleItem `gorm:"foreignKey:SaleID" json:"items,omitempty"`
}

// SaleItem is one priced row within a sale. ProductID is an optional catalog
// link; free-text rows carry only ProductName. LineTotal is always exactly
// Quantity * UnitPrice.
type SaleItem struct {
	BaseModel
	SaleID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"saleId"`
	Position    int             `gorm:"not null;default:0" json:"position"`
	ProductID   *uuid.UUID      `gorm:"type:uuid" json:"productId,omitempty"`
	ProductName string          `gorm:"type:varchar(255);not null" json:"productName"`
	Unit        *string         `gorm:"type:varchar(50)" json:"unit,omitempty"`
	Quantity    decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"quantity"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"unitPrice"`
	LineTotal   decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"lineTotal"`
}

// SaleResponse is the single-sale API shape: the sale plus its compact
// customer reference and ordered items.
type SaleResponse struct {
	Sale
	Customer *CustomerRef `json:"customer,omitempty"`
}

func (s *Sale) ToResponse() *SaleResponse {
	return &SaleResponse{Sale: *s, Customer: s.Customer.Ref()}
}

// SaleListItem is one row of the paginated sale listing.
type SaleListItem struct {
	ID          uuid.UUID       `json:"id"`
	Code        string          `json:"uuid"`
	Date        time.Time       `json:"date"`
	Address     *string         `json:"address,omitempty"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	CreatedAt   time.Time       `json:"createdAt"`
	Customer    *CustomerRef    `json:"customer,omitempty"`
	ItemCount   int64           `json:"itemCount"`
}
