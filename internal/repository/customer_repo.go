package repository

import (
	"chemiflex-backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CustomerRepository interface {
	Create(customer *model.Customer) error
	List(page, pageSize int) ([]model.Customer, int64, error)
	FindByID(id uuid.UUID) (*model.Customer, error)
}

type customerRepo struct {
	db *gorm.DB
}

func NewCustomerRepo(db *gorm.DB) CustomerRepository {
	return &customerRepo{db}
}

func (r *customerRepo) Create(customer *model.Customer) error {
	return r.db.Create(customer).Error
}

func (r *customerRepo) List(page, pageSize int) ([]model.Customer, int64, error) {
	var customers []model.Customer
	var total int64

	if err := r.db.Model(&model.Customer{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.
		Preload("PreferredCategory").
		Preload("PreferredProduct").
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&customers).Error
	return customers, total, err
}

func (r *customerRepo) FindByID(id uuid.UUID) (*model.Customer, error) {
	var customer model.Customer
	if err := r.db.First(&customer, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}
