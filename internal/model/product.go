package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ProductStatus string

type ProductVisibility string

const (
	StatusDraft     ProductStatus = "DRAFT"
	StatusPublished ProductStatus = "PUBLISHED"

	VisibilityPublic  ProductVisibility = "PUBLIC"
	VisibilityPrivate ProductVisibility = "PRIVATE"
)

type Product struct {
	BaseModel
	Name             string            `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Slug             string            `gorm:"type:varchar(255);uniqueIndex;not null" json:"slug" validate:"required"`
	SKU              *string           `gorm:"type:varchar(50)" json:"sku,omitempty"`
	Price            decimal.Decimal   `gorm:"type:decimal(12,2);not null" json:"price" validate:"required"`
	SalePrice        *decimal.Decimal  `gorm:"type:decimal(12,2)" json:"salePrice,omitempty"`
	Description      *string           `gorm:"type:text" json:"description,omitempty"`
	ShortDescription *string           `gorm:"type:text" json:"shortDescription,omitempty"`
	CategoryID       uuid.UUID         `gorm:"type:uuid;not null" json:"categoryId" validate:"uuid_required"`
	Category         *Category         `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	StockQuantity    decimal.Decimal   `gorm:"type:decimal(12,2);default:0" json:"stockQuantity"`
	ManageStock      bool              `gorm:"default:true" json:"manageStock"`
	Status           ProductStatus     `gorm:"type:varchar(20);default:'DRAFT'" json:"status"`
	Visibility       ProductVisibility `gorm:"type:varchar(20);default:'PUBLIC'" json:"visibility"`

	Images []ProductImage `gorm:"foreignKey:ProductID" json:"images,omitempty" validate:"dive"`
}

// ProductImage rows are owned by their product and removed before it on delete.
type ProductImage struct {
	BaseModel
	ProductID uuid.UUID `gorm:"type:uuid;not null;index" json:"productId"`
	URL       string    `gorm:"type:text;not null" json:"url" validate:"required"`
	Alt       *string   `gorm:"type:varchar(255)" json:"alt,omitempty"`
	Position  int       `gorm:"default:0" json:"position"`
}
