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

type CategoryHandler struct {
	categoryRepo repository.CategoryRepository
}

func NewCategoryHandler(categoryRepo repository.CategoryRepository) *CategoryHandler {
	return &CategoryHandler{categoryRepo: categoryRepo}
}

type createCategoryRequest struct {
	Name        string     `json:"name"`
	Slug        string     `json:"slug"`
	Description *string    `json:"description"`
	ParentID    *uuid.UUID `json:"parentId"`
}

// List returns categories ordered by name
// GET /api/categories
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	page, pageSize := parsePagination(c)

	categories, total, err := h.categoryRepo.List(page, pageSize)
	if err != nil {
		return apperr.Internal(err)
	}

	return c.JSON(listResponse(categories, total, page, pageSize))
}

// Create adds a category; the slug is derived from the name when not supplied
// POST /api/categories
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var req createCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation("Invalid JSON")
	}

	slug := req.Slug
	if strings.TrimSpace(slug) == "" {
		slug = req.Name
	}

	category := model.Category{
		Name:        strings.TrimSpace(req.Name),
		Slug:        model.Slugify(slug),
		Description: req.Description,
		ParentID:    req.ParentID,
	}

	if errs := validator.ValidateStruct(&category); len(errs) > 0 {
		return apperr.Validation(fmt.Sprintf("Field '%s' failed on tag '%s'", errs[0].FailedField, errs[0].Tag))
	}

	if err := h.categoryRepo.Create(&category); err != nil {
		return apperr.FromDB(err, "Parent category not found", "Category with this slug already exists")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"item": category})
}
