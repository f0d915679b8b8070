package middleware

import (
	"slices"

	"github.com/gofiber/fiber/v2"
	"github.com/savioruz/culturepay/internal/delivery/http/response"
	"github.com/savioruz/culturepay/pkg/constant"
	"github.com/savioruz/culturepay/pkg/failure"
	"github.com/savioruz/culturepay/pkg/jwt"
)

func CheckRole(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := authorize(c, allowedRoles); err != nil {
			return response.WithError(c, err)
		}

		return c.Next()
	}
}

func authorize(c *fiber.Ctx, allowedRoles []string) error {
	role, ok := c.Locals(constant.JwtFieldLevel).(string)
	if !ok {
		return failure.Unauthorized("role information not found")
	}

	if !slices.Contains(allowedRoles, role) {
		return failure.Forbidden("insufficient permissions")
	}

	return nil
}

// AdminOnly protects routes with JWT and Role check for admin role.
func AdminOnly(j *jwt.JWT) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := authenticate(c, j); err != nil {
			return response.WithError(c, err)
		}

		if err := authorize(c, []string{constant.UserRoleAdmin}); err != nil {
			return response.WithError(c, err)
		}

		return c.Next()
	}
}
