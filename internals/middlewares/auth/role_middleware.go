package auth

import (
	"github.com/gofiber/fiber/v2"
)

// OnlyRoles permits only the listed numeric role IDs. It runs after
// AuthMiddleware, so a resolved role is always present for authenticated
// requests; a missing role claim is an auth failure, not a 403.
func OnlyRoles(customMessage string, allowedRoles ...uint) fiber.Handler {
	return func(c *fiber.Ctx) error {
		roleID, ok := c.Locals("role_id").(uint)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"code":    fiber.StatusUnauthorized,
				"status":  "error",
				"message": "Unauthorized: missing role information",
			})
		}

		for _, allowed := range allowedRoles {
			if roleID == allowed {
				return c.Next()
			}
		}

		if customMessage == "" {
			customMessage = "Forbidden: you are not authorized to access this resource"
		}
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"code":    fiber.StatusForbidden,
			"status":  "error",
			"message": customMessage,
		})
	}
}
