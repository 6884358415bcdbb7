package service

import (
	"testing"

	"chemiflex-backend/pkg/apperr"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestNormalizeItemsComputesTotals(t *testing.T) {
	productID := uuid.New()
	unit := "kg"

	items, total, err := NormalizeItems([]SaleItemInput{
		{ProductID: &productID, ProductName: "Acid A", Unit: &unit, Quantity: dec("2"), UnitPrice: dec("10")},
		{ProductName: "Acid B", Quantity: dec("1"), UnitPrice: dec("5")},
	}, ItemRules{})
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.True(t, items[0].LineTotal.Equal(decimal.RequireFromString("20")), "line 0 total = %s", items[0].LineTotal)
	assert.True(t, items[1].LineTotal.Equal(decimal.RequireFromString("5")), "line 1 total = %s", items[1].LineTotal)
	assert.True(t, total.Equal(decimal.RequireFromString("25")), "total = %s", total)

	// positions follow input order
	assert.Equal(t, 0, items[0].Position)
	assert.Equal(t, 1, items[1].Position)
	assert.Equal(t, &productID, items[0].ProductID)
	assert.Nil(t, items[1].ProductID)
}

func TestNormalizeItemsLineTotalIsExactProduct(t *testing.T) {
	// 0.1 * 0.3 must be exactly 0.03, not a float approximation
	items, total, err := NormalizeItems([]SaleItemInput{
		{ProductName: "Solvent", Quantity: dec("0.1"), UnitPrice: dec("0.3")},
	}, ItemRules{})
	require.NoError(t, err)

	assert.True(t, items[0].LineTotal.Equal(decimal.RequireFromString("0.03")))
	assert.True(t, total.Equal(items[0].Quantity.Mul(items[0].UnitPrice)))
}

func TestNormalizeItemsDefaults(t *testing.T) {
	items, total, err := NormalizeItems([]SaleItemInput{{}}, ItemRules{})
	require.NoError(t, err)

	assert.Equal(t, "", items[0].ProductName)
	assert.Nil(t, items[0].Unit)
	assert.True(t, items[0].Quantity.IsZero())
	assert.True(t, items[0].UnitPrice.IsZero())
	assert.True(t, items[0].LineTotal.IsZero())
	assert.True(t, total.IsZero())
}

func TestNormalizeItemsRejectsEmptyInput(t *testing.T) {
	_, _, err := NormalizeItems(nil, ItemRules{})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
}

func TestNormalizeItemsPermitsNonPositiveByDefault(t *testing.T) {
	// discount lines: negative price passes through and lowers the total
	items, total, err := NormalizeItems([]SaleItemInput{
		{ProductName: "Acid A", Quantity: dec("2"), UnitPrice: dec("10")},
		{ProductName: "Loyalty discount", Quantity: dec("1"), UnitPrice: dec("-5")},
	}, ItemRules{})
	require.NoError(t, err)

	assert.True(t, items[1].LineTotal.Equal(decimal.RequireFromString("-5")))
	assert.True(t, total.Equal(decimal.RequireFromString("15")))
}

func TestNormalizeItemsStrictRule(t *testing.T) {
	_, _, err := NormalizeItems([]SaleItemInput{
		{ProductName: "Acid A", Quantity: dec("2"), UnitPrice: dec("10")},
		{ProductName: "Freebie", Quantity: dec("0"), UnitPrice: dec("10")},
	}, ItemRules{RejectNonPositive: true})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
	assert.Contains(t, err.Error(), "Line item 2")
}
