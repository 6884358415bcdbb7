package service

import (
	"testing"
	"time"

	"chemiflex-backend/internal/model"
	"chemiflex-backend/internal/repository"
	"chemiflex-backend/internal/testutil"
	"chemiflex-backend/pkg/apperr"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newSaleService(t *testing.T) (SaleService, *gorm.DB) {
	t.Helper()
	db := testutil.NewDB(t)
	return NewSaleService(repository.NewSaleRepo(db), db, ItemRules{}), db
}

func acidOrder() *SaleCreateRequest {
	return &SaleCreateRequest{
		Items: []SaleItemInput{
			{ProductName: "Acid A", Quantity: dec("2"), UnitPrice: dec("10")},
			{ProductName: "Acid B", Quantity: dec("1"), UnitPrice: dec("5")},
		},
	}
}

func scopedItemCount(t *testing.T, db *gorm.DB, saleID uuid.UUID) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&model.SaleItem{}).Where("sale_id = ?", saleID).Count(&n).Error)
	return n
}

func TestSaleCreateRoundTrip(t *testing.T) {
	svc, _ := newSaleService(t)

	sale, err := svc.Create(acidOrder())
	require.NoError(t, err)

	assert.NotEmpty(t, sale.Code, "correlation code should be generated")
	assert.True(t, sale.TotalAmount.Equal(decimal.RequireFromString("25")), "total = %s", sale.TotalAmount)
	require.Len(t, sale.Items, 2)
	assert.Equal(t, "Acid A", sale.Items[0].ProductName)
	assert.True(t, sale.Items[0].LineTotal.Equal(decimal.RequireFromString("20")))
	assert.Equal(t, "Acid B", sale.Items[1].ProductName)
	assert.True(t, sale.Items[1].LineTotal.Equal(decimal.RequireFromString("5")))

	got, err := svc.Get(sale.ID)
	require.NoError(t, err)
	assert.True(t, got.TotalAmount.Equal(sale.TotalAmount))
	require.Len(t, got.Items, 2)
}

func TestSaleCreateKeepsSuppliedCodeAndCustomer(t *testing.T) {
	svc, db := newSaleService(t)

	customer := model.Customer{FullName: "ACME Industries"}
	require.NoError(t, db.Create(&customer).Error)

	req := acidOrder()
	req.Code = "INV-0001"
	req.CustomerID = &customer.ID

	sale, err := svc.Create(req)
	require.NoError(t, err)
	assert.Equal(t, "INV-0001", sale.Code)
	require.NotNil(t, sale.Customer)
	assert.Equal(t, "ACME Industries", sale.Customer.FullName)
}

func TestSaleCreateEmptyItemsPersistsNothing(t *testing.T) {
	svc, db := newSaleService(t)

	_, err := svc.Create(&SaleCreateRequest{})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))

	var sales int64
	require.NoError(t, db.Model(&model.Sale{}).Count(&sales).Error)
	assert.Zero(t, sales)
}

func TestSaleCreateDuplicateCodeConflicts(t *testing.T) {
	svc, _ := newSaleService(t)

	req := acidOrder()
	req.Code = "INV-0001"
	_, err := svc.Create(req)
	require.NoError(t, err)

	req2 := acidOrder()
	req2.Code = "INV-0001"
	_, err = svc.Create(req2)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))
}

func TestSaleGetNotFound(t *testing.T) {
	svc, _ := newSaleService(t)

	_, err := svc.Get(uuid.New())
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestSaleUpdateReplacesItemsAndRecomputesTotal(t *testing.T) {
	svc, db := newSaleService(t)

	sale, err := svc.Create(acidOrder())
	require.NoError(t, err)

	updated, err := svc.Update(sale.ID, &SaleUpdateRequest{
		Items: []SaleItemInput{
			{ProductName: "Solvent C", Quantity: dec("3"), UnitPrice: dec("7")},
		},
	})
	require.NoError(t, err)

	assert.True(t, updated.TotalAmount.Equal(decimal.RequireFromString("21")), "total = %s", updated.TotalAmount)
	require.Len(t, updated.Items, 1)
	assert.Equal(t, "Solvent C", updated.Items[0].ProductName)
	assert.EqualValues(t, 1, scopedItemCount(t, db, sale.ID))
}

func TestSaleUpdatePartialFieldsLeaveItemsUntouched(t *testing.T) {
	svc, _ := newSaleService(t)

	sale, err := svc.Create(acidOrder())
	require.NoError(t, err)

	address := "12 Industrial Road"
	updated, err := svc.Update(sale.ID, &SaleUpdateRequest{Address: &address})
	require.NoError(t, err)

	require.NotNil(t, updated.Address)
	assert.Equal(t, address, *updated.Address)
	assert.Equal(t, sale.Code, updated.Code)
	require.Len(t, updated.Items, 2)
	assert.True(t, updated.TotalAmount.Equal(sale.TotalAmount))
}

func TestSaleUpdateEmptyItemsRejected(t *testing.T) {
	svc, _ := newSaleService(t)

	sale, err := svc.Create(acidOrder())
	require.NoError(t, err)

	_, err = svc.Update(sale.ID, &SaleUpdateRequest{Items: []SaleItemInput{}})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
}

func TestSaleUpdateNotFound(t *testing.T) {
	svc, _ := newSaleService(t)

	_, err := svc.Update(uuid.New(), &SaleUpdateRequest{})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestSaleUpdateRollsBackOnConflict(t *testing.T) {
	svc, db := newSaleService(t)

	first := acidOrder()
	first.Code = "INV-0001"
	saleA, err := svc.Create(first)
	require.NoError(t, err)

	second := acidOrder()
	second.Code = "INV-0002"
	_, err = svc.Create(second)
	require.NoError(t, err)

	// The replacement items go in before the parent update hits the unique
	// violation; the whole transaction must roll back.
	taken := "INV-0002"
	_, err = svc.Update(saleA.ID, &SaleUpdateRequest{
		Code: &taken,
		Items: []SaleItemInput{
			{ProductName: "Solvent C", Quantity: dec("3"), UnitPrice: dec("7")},
		},
	})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))

	got, err := svc.Get(saleA.ID)
	require.NoError(t, err)
	assert.Equal(t, "INV-0001", got.Code)
	assert.True(t, got.TotalAmount.Equal(decimal.RequireFromString("25")), "total = %s", got.TotalAmount)
	require.Len(t, got.Items, 2)
	assert.Equal(t, "Acid A", got.Items[0].ProductName)
	assert.EqualValues(t, 2, scopedItemCount(t, db, saleA.ID))
}

func TestSaleDeleteRemovesItems(t *testing.T) {
	svc, db := newSaleService(t)

	sale, err := svc.Create(acidOrder())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(sale.ID))

	_, err = svc.Get(sale.ID)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
	assert.Zero(t, scopedItemCount(t, db, sale.ID))
}

func TestSaleDeleteFreesCodeForReuse(t *testing.T) {
	svc, _ := newSaleService(t)

	first := acidOrder()
	first.Code = "INV-0001"
	sale, err := svc.Create(first)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(sale.ID))

	second := acidOrder()
	second.Code = "INV-0001"
	recreated, err := svc.Create(second)
	require.NoError(t, err, "a deleted sale must not keep its code reserved")
	assert.Equal(t, "INV-0001", recreated.Code)
	assert.NotEqual(t, sale.ID, recreated.ID)
}

func TestSaleDeleteNotFound(t *testing.T) {
	svc, _ := newSaleService(t)

	err := svc.Delete(uuid.New())
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestSaleListOrderingAndCounts(t *testing.T) {
	svc, db := newSaleService(t)

	customer := model.Customer{FullName: "ACME Industries"}
	require.NoError(t, db.Create(&customer).Error)

	older := acidOrder()
	older.Code = "INV-0001"
	older.CustomerID = &customer.ID
	_, err := svc.Create(older)
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)

	newer := &SaleCreateRequest{
		Code:  "INV-0002",
		Items: []SaleItemInput{{ProductName: "Solvent C", Quantity: dec("1"), UnitPrice: dec("7")}},
	}
	_, err = svc.Create(newer)
	require.NoError(t, err)

	items, total, err := svc.List(1, 20)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, items, 2)

	// newest first
	assert.Equal(t, "INV-0002", items[0].Code)
	assert.EqualValues(t, 1, items[0].ItemCount)
	assert.Nil(t, items[0].Customer)

	assert.Equal(t, "INV-0001", items[1].Code)
	assert.EqualValues(t, 2, items[1].ItemCount)
	require.NotNil(t, items[1].Customer)
	assert.Equal(t, "ACME Industries", items[1].Customer.FullName)
}

func TestSaleListPaging(t *testing.T) {
	svc, _ := newSaleService(t)

	for i := 0; i < 3; i++ {
		_, err := svc.Create(acidOrder())
		require.NoError(t, err)
	}

	items, total, err := svc.List(2, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Len(t, items, 1)
}
