package repository

import (
	"chemiflex-backend/internal/model"

	"gorm.io/gorm"
)

type SupplierRepository interface {
	Create(supplier *model.Supplier) error
	List(page, pageSize int) ([]model.Supplier, int64, error)
}

type supplierRepo struct {
	db *gorm.DB
}

func NewSupplierRepo(db *gorm.DB) SupplierRepository {
	return &supplierRepo{db}
}

func (r *supplierRepo) Create(supplier *model.Supplier) error {
	return r.db.Create(supplier).Error
}

func (r *supplierRepo) List(page, pageSize int) ([]model.Supplier, int64, error) {
	var suppliers []model.Supplier
	var total int64

	if err := r.db.Model(&model.Supplier{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&suppliers).Error
	return suppliers, total, err
}
