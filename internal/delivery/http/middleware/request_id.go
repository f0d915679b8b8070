package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/savioruz/culturepay/pkg/constant"
)

func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := c.Get(constant.RequestHeaderRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Set(constant.RequestHeaderRequestID, requestID)
		c.Locals(constant.RequestLocalRequestID, requestID)

		return c.Next()
	}
}
