package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/noah-isme/school-admin-api/internal/models"
	"github.com/noah-isme/school-admin-api/internal/utils"
)

// RequireAuth rejects requests without a session principal.
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := PrincipalFrom(c); !ok {
			return utils.SendError(c, fiber.StatusUnauthorized, "Unauthorized")
		}
		return c.Next()
	}
}

// RequireRole admits principals ranked at or above min.
// Missing sessions are 401; insufficient roles are 403.
func RequireRole(min models.Role) fiber.Handler {
	message := "Forbidden"
	if min == models.RoleAdmin {
		message = "Admin access required"
	}

	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFrom(c)
		if !ok {
			return utils.SendError(c, fiber.StatusUnauthorized, "Unauthorized")
		}
		if !principal.Role.AtLeast(min) {
			return utils.SendError(c, fiber.StatusForbidden, message)
		}
		return c.Next()
	}
}
