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
	"github.com/shopspring/decimal"
)

type ProductHandler struct {
	productRepo repository.ProductRepository
}

func NewProductHandler(productRepo repository.ProductRepository) *ProductHandler {
	return &ProductHandler{productRepo: productRepo}
}

type productImageInput struct {
	URL      string  `json:"url"`
	Alt      *string `json:"alt"`
	Position *int    `json:"position"`
}

type createProductRequest struct {
	Name             string                   `json:"name"`
	Slug             string                   `json:"slug"`
	SKU              *string                  `json:"sku"`
	Price            *decimal.Decimal         `json:"price"`
	SalePrice        *decimal.Decimal         `json:"salePrice"`
	Description      *string                  `json:"description"`
	ShortDescription *string                  `json:"shortDescription"`
	CategoryID       *uuid.UUID               `json:"categoryId"`
	StockQuantity    *decimal.Decimal         `json:"stockQuantity"`
	ManageStock      *bool                    `json:"manageStock"`
	Status           *model.ProductStatus     `json:"status"`
	Visibility       *model.ProductVisibility `json:"visibility"`
	Images           []productImageInput      `json:"images"`
}

type updateProductRequest struct {
	Name             *string                  `json:"name"`
	Slug             *string                  `json:"slug"`
	SKU              *string                  `json:"sku"`
	Price            *decimal.Decimal         `json:"price"`
	SalePrice        *decimal.Decimal         `json:"salePrice"`
	Description      *string                  `json:"description"`
	ShortDescription *string                  `json:"shortDescription"`
	CategoryID       *uuid.UUID               `json:"categoryId"`
	StockQuantity    *decimal.Decimal         `json:"stockQuantity"`
	ManageStock      *bool                    `json:"manageStock"`
	Status           *model.ProductStatus     `json:"status"`
	Visibility       *model.ProductVisibility `json:"visibility"`
}

// List returns a page of products with category and images, newest first
// GET /api/products
func (h *ProductHandler) List(c *fiber.Ctx) error {
	page, pageSize := parsePagination(c)

	products, total, err := h.productRepo.List(page, pageSize)
	if err != nil {
		return apperr.Internal(err)
	}

	return c.JSON(listResponse(products, total, page, pageSize))
}

// Create adds a product, optionally with its images
// POST /api/products
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var req createProductRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation("Invalid JSON")
	}

	product := model.Product{
		Name:             strings.TrimSpace(req.Name),
		Slug:             strings.TrimSpace(req.Slug),
		SKU:              req.SKU,
		SalePrice:        req.SalePrice,
		Description:      req.Description,
		ShortDescription: req.ShortDescription,
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.CategoryID != nil {
		product.CategoryID = *req.CategoryID
	}
	if req.StockQuantity != nil {
		product.StockQuantity = *req.StockQuantity
	}
	product.ManageStock = true
	if req.ManageStock != nil {
		product.ManageStock = *req.ManageStock
	}
	product.Status = model.StatusDraft
	if req.Status != nil {
		product.Status = *req.Status
	}
	product.Visibility = model.VisibilityPublic
	if req.Visibility != nil {
		product.Visibility = *req.Visibility
	}

	for i, img := range req.Images {
		position := i
		if img.Position != nil {
			position = *img.Position
		}
		product.Images = append(product.Images, model.ProductImage{
			URL:      img.URL,
			Alt:      img.Alt,
			Position: position,
		})
	}

	if errs := validator.ValidateStruct(&product); len(errs) > 0 {
		return apperr.Validation(fmt.Sprintf("Field '%s' failed on tag '%s'", errs[0].FailedField, errs[0].Tag))
	}

	if err := h.productRepo.Create(&product); err != nil {
		return apperr.FromDB(err, "Category not found", "Product with this slug already exists")
	}

	return c.Status(fiber.StatusCreated).JSON(product)
}

// Update applies a partial update; images are not updatable through this endpoint
// PUT /api/products/:id
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return apperr.Validation("Invalid product ID")
	}

	var req updateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation("Invalid JSON")
	}

	product, err := h.productRepo.FindByID(id)
	if err != nil {
		return apperr.FromDB(err, "Product not found", "")
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Slug != nil {
		product.Slug = *req.Slug
	}
	if req.SKU != nil {
		product.SKU = req.SKU
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.SalePrice != nil {
		product.SalePrice = req.SalePrice
	}
	if req.Description != nil {
		product.Description = req.Description
	}
	if req.ShortDescription != nil {
		product.ShortDescription = req.ShortDescription
	}
	if req.CategoryID != nil {
		product.CategoryID = *req.CategoryID
		product.Category = nil
	}
	if req.StockQuantity != nil {
		product.StockQuantity = *req.StockQuantity
	}
	if req.ManageStock != nil {
		product.ManageStock = *req.ManageStock
	}
	if req.Status != nil {
		product.Status = *req.Status
	}
	if req.Visibility != nil {
		product.Visibility = *req.Visibility
	}

	if err := h.productRepo.Update(product); err != nil {
		return apperr.FromDB(err, "Category not found", "Product with this slug already exists")
	}

	return c.JSON(product)
}

// Delete removes a product and its images
// DELETE /api/products/:id
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return apperr.Validation("Invalid product ID")
	}

	if err := h.productRepo.Delete(id); err != nil {
		return apperr.FromDB(err, "Product not found", "")
	}

	return c.JSON(fiber.Map{"ok": true})
}
