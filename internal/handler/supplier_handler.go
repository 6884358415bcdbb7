package handler

import (
	"fmt"
	"strings"

	"chemiflex-backend/internal/model"
	"chemiflex-backend/internal/repository"
	"chemiflex-backend/pkg/apperr"
	"chemiflex-backend/pkg/validator"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type SupplierHandler struct {
	supplierRepo repository.SupplierRepository
}

func NewSupplierHandler(supplierRepo repository.SupplierRepository) *SupplierHandler {
	return &SupplierHandler{supplierRepo: supplierRepo}
}

type createSupplierRequest struct {
	Name                string     `json:"name"`
	Email               *string    `json:"email"`
	Phone               *string    `json:"phone"`
	Company             *string    `json:"company"`
	Address             *string    `json:"address"`
	Notes               *string    `json:"notes"`
	PreferredCategoryID *uuid.UUID `json:"preferredCategoryId"`
	PreferredProductID  *uuid.UUID `json:"preferredProductId"`
}

// List returns a page of suppliers, newest first
// GET /api/suppliers
func (h *SupplierHandler) List(c *fiber.Ctx) error {
	page, pageSize := parsePagination(c)

	suppliers, total, err := h.supplierRepo.List(page, pageSize)
	if err != nil {
		return apperr.Internal(err)
	}

	return c.JSON(listResponse(suppliers, total, page, pageSize))
}

// Create adds a supplier
// POST /api/suppliers
func (h *SupplierHandler) Create(c *fiber.Ctx) error {
	var req createSupplierRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation("Invalid JSON")
	}

	supplier := model.Supplier{
		Name:                strings.TrimSpace(req.Name),
		Email:               req.Email,
		Phone:               req.Phone,
		Company:             req.Company,
		Address:             req.Address,
		Notes:               req.Notes,
		PreferredCategoryID: req.PreferredCategoryID,
		PreferredProductID:  req.PreferredProductID,
	}

	if errs := validator.ValidateStruct(&supplier); len(errs) > 0 {
		return apperr.Validation(fmt.Sprintf("Field '%s' failed on tag '%s'", errs[0].FailedField, errs[0].Tag))
	}

	if err := h.supplierRepo.Create(&supplier); err != nil {
		return apperr.FromDB(err, "Preferred category or product not found", "Supplier with this email already exists")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"item": supplier})
}
