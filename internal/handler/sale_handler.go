package handler

import (
	"chemiflex-backend/internal/service"
	"chemiflex-backend/pkg/apperr"

	"github.com/gofiber/fiber/v2"
)

type SaleHandler struct {
	saleService service.SaleService
}

func NewSaleHandler(saleService service.SaleService) *SaleHandler {
	return &SaleHandler{saleService: saleService}
}

// List returns a page of sales, newest first, each with its customer
// reference and item count
// GET /api/sales
func (h *SaleHandler) List(c *fiber.Ctx) error {
	page, pageSize := parsePagination(c)

	items, total, err := h.saleService.List(page, pageSize)
	if err != nil {
		return err
	}

	return c.JSON(listResponse(items, total, page, pageSize))
}

// Get returns a sale with its customer and items
// GET /api/sales/:id
func (h *SaleHandler) Get(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return apperr.Validation("Invalid sale ID")
	}

	sale, err := h.saleService.Get(id)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"item": sale})
}

// Create records a new sale with its line items
// POST /api/sales
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var req service.SaleCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation("Invalid JSON")
	}

	sale, err := h.saleService.Create(&req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"item": sale})
}

// Update applies partial field changes and, when items are supplied, replaces
// the full item set
// PUT /api/sales/:id
func (h *SaleHandler) Update(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return apperr.Validation("Invalid sale ID")
	}

	var req service.SaleUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation("Invalid JSON")
	}

	sale, err := h.saleService.Update(id, &req)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"item": sale})
}

// Delete removes a sale and all of its line items
// DELETE /api/sales/:id
func (h *SaleHandler) Delete(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return apperr.Validation("Invalid sale ID")
	}

	if err := h.saleService.Delete(id); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"ok": true})
}
