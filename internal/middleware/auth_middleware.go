package middleware

import (
	"strings"

	"chemiflex-backend/internal/service"
	"chemiflex-backend/pkg/apperr"

	"github.com/gofiber/fiber/v2"
)

// RequireAuth validates the bearer token and sets the authenticated user's
// identity in context locals for downstream handlers.
func RequireAuth(authService service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return apperr.Unauthorized("Missing authorization token")
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			return apperr.Unauthorized("Invalid authorization format. Use: Bearer <token>")
		}

		user, err := authService.Authenticate(parts[1])
		if err != nil {
			return err
		}

		c.Locals("user", user)
		c.Locals("user_id", user.ID.String())
		c.Locals("user_email", user.Email)
		c.Locals("user_role", user.RoleCode())

		return c.Next()
	}
}

// RequireRole checks that the authenticated user holds one of the given roles
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("user_role").(string)
		if !ok {
			return apperr.Forbidden("No role found")
		}

		for _, r := range roles {
			if role == r {
				return c.Next()
			}
		}

		return apperr.Forbidden("Forbidden: requires one of " + strings.Join(roles, ", ") + " roles")
	}
}
