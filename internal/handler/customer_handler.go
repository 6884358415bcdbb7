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

type CustomerHandler struct {
	customerRepo repository.CustomerRepository
}

func NewCustomerHandler(customerRepo repository.CustomerRepository) *CustomerHandler {
	return &CustomerHandler{customerRepo: customerRepo}
}

type createCustomerRequest struct {
	FullName            string     `json:"fullName"`
	Email               *string    `json:"email"`
	Phone               *string    `json:"phone"`
	Company             *string    `json:"company"`
	Notes               *string    `json:"notes"`
	PreferredCategoryID *uuid.UUID `json:"preferredCategoryId"`
	PreferredProductID  *uuid.UUID `json:"preferredProductId"`
}

// List returns a page of customers, newest first
// GET /api/customers
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	page, pageSize := parsePagination(c)

	customers, total, err := h.customerRepo.List(page, pageSize)
	if err != nil {
		return apperr.Internal(err)
	}

	return c.JSON(listResponse(customers, total, page, pageSize))
}

// Create adds a customer
// POST /api/customers
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var req createCustomerRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation("Invalid JSON")
	}

	customer := model.Customer{
		FullName:            strings.TrimSpace(req.FullName),
		Email:               req.Email,
		Phone:               req.Phone,
		Company:             req.Company,
		Notes:               req.Notes,
		PreferredCategoryID: req.PreferredCategoryID,
		PreferredProductID:  req.PreferredProductID,
	}

	if errs := validator.ValidateStruct(&customer); len(errs) > 0 {
		return apperr.Validation(fmt.Sprintf("Field '%s' failed on tag '%s'", errs[0].FailedField, errs[0].Tag))
	}

	if err := h.customerRepo.Create(&customer); err != nil {
		return apperr.FromDB(err, "Preferred category or product not found", "Customer with this email already exists")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"item": customer})
}
