package model

import "gorm.io/gorm"

// AutoMigrate runs schema migration for every entity, parents before children.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Role{},
		&User{},
		&Category{},
		&Product{},
		&ProductImage{},
		&Customer{},
		&Supplier{},
		&Sale{},
		&SaleItem{},
	)
}
