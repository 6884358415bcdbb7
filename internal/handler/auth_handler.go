package handler

import (
	"fmt"

	"chemiflex-backend/internal/model"
	"chemiflex-backend/internal/service"
	"chemiflex-backend/pkg/apperr"
	"chemiflex-backend/pkg/validator"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register handles user creation
// POST /api/auth/register
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req service.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation("Invalid JSON")
	}

	if errs := validator.ValidateStruct(&req); len(errs) > 0 {
		return apperr.Validation(fmt.Sprintf("Field '%s' failed on tag '%s'", errs[0].FailedField, errs[0].Tag))
	}

	user, err := h.authService.Register(&req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(user)
}

// Login handles user authentication
// POST /api/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req service.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation("Invalid JSON")
	}

	if errs := validator.ValidateStruct(&req); len(errs) > 0 {
		return apperr.Validation(fmt.Sprintf("Field '%s' failed on tag '%s'", errs[0].FailedField, errs[0].Tag))
	}

	response, err := h.authService.Login(&req)
	if err != nil {
		return err
	}

	return c.JSON(response)
}

// Me returns the current authenticated user
// GET /api/auth/me
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(*model.User)
	if !ok {
		return apperr.Unauthorized("Unauthorized")
	}
	return c.JSON(user.ToResponse())
}
