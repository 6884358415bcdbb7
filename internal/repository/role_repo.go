package repository

import (
	"chemiflex-backend/internal/model"

	"gorm.io/gorm"
)

type RoleRepository interface {
	FindByCode(code string) (*model.Role, error)
	FindOrCreateByCode(code string) (*model.Role, error)
	SeedDefaults() error
}

type roleRepo struct {
	db *gorm.DB
}

func NewRoleRepo(db *gorm.DB) RoleRepository {
	return &roleRepo{db}
}

func (r *roleRepo) FindByCode(code string) (*model.Role, error) {
	var role model.Role
	if err := r.db.First(&role, "code = ?", code).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *roleRepo) FindOrCreateByCode(code string) (*model.Role, error) {
	var role model.Role
	err := r.db.Where(model.Role{Code: code}).
		Attrs(model.Role{Name: code}).
		FirstOrCreate(&role).Error
	if err != nil {
		return nil, err
	}
	return &role, nil
}

// SeedDefaults creates the default roles if they don't exist yet
func (r *roleRepo) SeedDefaults() error {
	for _, role := range model.DefaultRoles {
		var existing model.Role
		err := r.db.Where(model.Role{Code: role.Code}).
			Attrs(role).
			FirstOrCreate(&existing).Error
		if err != nil {
			return err
		}
	}
	return nil
}
