package service

import (
	"fmt"

	"chemiflex-backend/internal/model"
	"chemiflex-backend/pkg/apperr"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleItemInput is a raw line-item row as received from the client.
type SaleItemInput struct {
	ProductID   *uuid.UUID       `json:"productId"`
	ProductName string           `json:"productName"`
	Unit        *string          `json:"unit"`
	Quantity    *decimal.Decimal `json:"quantity"`
	UnitPrice   *decimal.Decimal `json:"unitPrice"`
}

// ItemRules configures line-item validation. The normalizer is permissive by
// default: zero and negative quantities or prices pass through, which keeps
// discount and credit lines possible. RejectNonPositive turns on the strict
// rule for deployments that want it.
type ItemRules struct {
	RejectNonPositive bool
}

// NormalizeItems turns raw item input into computed line records plus the
// aggregate total. Missing quantity or unit price defaults to zero, the
// display name defaults to the empty string, and every line satisfies
// lineTotal == quantity * unitPrice exactly.
func NormalizeItems(inputs []SaleItemInput, rules ItemRules) ([]model.SaleItem, decimal.Decimal, error) {
	if len(inputs) == 0 {
		return nil, decimal.Zero, apperr.Validation("At least one line item is required")
	}

	items := make([]model.SaleItem, len(inputs))
	total := decimal.Zero

	for i, in := range inputs {
		qty := decimal.Zero
		if in.Quantity != nil {
			qty = *in.Quantity
		}
		unitPrice := decimal.Zero
		if in.UnitPrice != nil {
			unitPrice = *in.UnitPrice
		}

		if rules.RejectNonPositive && (!qty.IsPositive() || !unitPrice.IsPositive()) {
			return nil, decimal.Zero, apperr.Validation(
				fmt.Sprintf("Line item %d: quantity and unit price must be positive", i+1))
		}

		lineTotal := qty.Mul(unitPrice)
		items[i] = model.SaleItem{
			Position:    i,
			ProductID:   in.ProductID,
			ProductName: in.ProductName,
			Unit:        in.Unit,
			Quantity:    qty,
			UnitPrice:   unitPrice,
			LineTotal:   lineTotal,
		}
		total = total.Add(lineTotal)
	}

	return items, total, nil
}
