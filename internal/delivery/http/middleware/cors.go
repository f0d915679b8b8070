package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/savioruz/culturepay/config"
	"github.com/savioruz/culturepay/pkg/constant"
)

const defaultAllowedHeaders = "Origin, Content-Type, Accept, Authorization, " + constant.RequestHeaderRequestID

func CORS(cfg *config.Config) fiber.Handler {
	if !cfg.CORS.Enable {
		return func(c *fiber.Ctx) error {
			return c.Next()
		}
	}

	headers := cfg.CORS.AllowedHeaders
	if headers == "" {
		headers = defaultAllowedHeaders
	}

	return cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     cfg.CORS.AllowedMethods,
		AllowHeaders:     headers,
		ExposeHeaders:    constant.RequestHeaderRequestID,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           cfg.CORS.MaxAgeSeconds,
	})
}
