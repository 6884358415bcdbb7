package repository

import (
	"chemiflex-backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SaleRepository persists sales and their line items. Methods taking a
// *gorm.DB run inside the caller's transaction so the aggregate service can
// make item replacement all-or-nothing.
type SaleRepository interface {
	Create(tx *gorm.DB, sale *model.Sale) error
	FindByID(id uuid.UUID) (*model.Sale, error)
	List(page, pageSize int) ([]model.SaleListItem, int64, error)
	Save(tx *gorm.DB, sale *model.Sale) error
	ReplaceItems(tx *gorm.DB, saleID uuid.UUID, items []model.SaleItem) error
	Delete(tx *gorm.DB, sale *model.Sale) error
}

type saleRepo struct {
	db *gorm.DB
}

func NewSaleRepo(db *gorm.DB) SaleRepository {
	return &saleRepo{db}
}

func (r *saleRepo) Create(tx *gorm.DB, sale *model.Sale) error {
	// Items are inserted with the sale via the association
	return tx.Create(sale).Error
}

func (r *saleRepo) FindByID(id uuid.UUID) (*model.Sale, error) {
	var sale model.Sale
	err := r.db.
		Preload("Customer").
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		First(&sale, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &sale, nil
}

func (r *saleRepo) List(page, pageSize int) ([]model.SaleListItem, int64, error) {
	var total int64
	if err := r.db.Model(&model.Sale{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var sales []model.Sale
	err := r.db.
		Preload("Customer").
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&sales).Error
	if err != nil {
		return nil, 0, err
	}

	items := make([]model.SaleListItem, len(sales))
	if len(sales) == 0 {
		return items, total, nil
	}

	// One grouped query annotates the page with per-sale item counts
	ids := make([]uuid.UUID, len(sales))
	for i, s := range sales {
		ids[i] = s.ID
	}

	type itemCount struct {
		SaleID uuid.UUID
		Count  int64
	}
	var counts []itemCount
	err = r.db.Model(&model.SaleItem{}).
		Select("sale_id, COUNT(*) as count").
		Where("sale_id IN ?", ids).
		Group("sale_id").
		Scan(&counts).Error
	if err != nil {
		return nil, 0, err
	}

	countByID := make(map[uuid.UUID]int64, len(counts))
	for _, c := range counts {
		countByID[c.SaleID] = c.Count
	}

	for i, s := range sales {
		items[i] = model.SaleListItem{
			ID:          s.ID,
			Code:        s.Code,
			Date:        s.Date,
			Address:     s.Address,
			TotalAmount: s.TotalAmount,
			CreatedAt:   s.CreatedAt,
			Customer:    s.Customer.Ref(),
			ItemCount:   countByID[s.ID],
		}
	}
	return items, total, nil
}

func (r *saleRepo) Save(tx *gorm.DB, sale *model.Sale) error {
	return tx.Omit("Items", "Customer").Save(sale).Error
}

// ReplaceItems drops every existing item of the sale and inserts the new set.
// Must run inside a transaction: a failure between the delete and the insert
// would otherwise leave the sale without items.
func (r *saleRepo) ReplaceItems(tx *gorm.DB, saleID uuid.UUID, items []model.SaleItem) error {
	if err := tx.Unscoped().Where("sale_id = ?", saleID).Delete(&model.SaleItem{}).Error; err != nil {
		return err
	}
	for i := range items {
		items[i].SaleID = saleID
	}
	return tx.Create(&items).Error
}

// Delete removes the sale for real, items first (referential-integrity
// ordering). A soft delete would keep the unique code reserved and block a
// later sale from reusing it.
func (r *saleRepo) Delete(tx *gorm.DB, sale *model.Sale) error {
	if err := tx.Unscoped().Where("sale_id = ?", sale.ID).Delete(&model.SaleItem{}).Error; err != nil {
		return err
	}
	return tx.Unscoped().Delete(sale).Error
}
