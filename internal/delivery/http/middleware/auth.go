package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/savioruz/culturepay/internal/delivery/http/response"
	"github.com/savioruz/culturepay/pkg/constant"
	"github.com/savioruz/culturepay/pkg/failure"
	"github.com/savioruz/culturepay/pkg/jwt"
)

func Jwt(j *jwt.JWT) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := authenticate(c, j); err != nil {
			return response.WithError(c, err)
		}

		return c.Next()
	}
}

// authenticate validates the bearer token and stores its claims in the request locals.
func authenticate(c *fiber.Ctx, j *jwt.JWT) error {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if authHeader == "" {
		return failure.Unauthorized("missing authorization header")
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return failure.Unauthorized("invalid authorization header format")
	}

	claims, err := j.ValidateToken(parts[1])
	if err != nil || claims.TokenType != jwt.TokenTypeAccess {
		return failure.Unauthorized("invalid token")
	}

	c.Locals(constant.JwtFieldUser, claims.ID)
	c.Locals(constant.JwtFieldEmail, claims.Email)
	c.Locals(constant.JwtFieldLevel, claims.Level)

	return nil
}
