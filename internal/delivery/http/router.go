package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/savioruz/culturepay/config"
	_ "github.com/savioruz/culturepay/docs" // Swagger docs
	"github.com/savioruz/culturepay/internal/delivery/http/middleware"
	"github.com/savioruz/culturepay/internal/delivery/http/response"
	authHandler "github.com/savioruz/culturepay/internal/domains/auth/handler"
	donationHandler "github.com/savioruz/culturepay/internal/domains/donations/handler"
	eventHandler "github.com/savioruz/culturepay/internal/domains/events/handler"
	paymentHandler "github.com/savioruz/culturepay/internal/domains/payments/handler"
	"github.com/savioruz/culturepay/pkg/logger"
	"github.com/savioruz/culturepay/pkg/metrics"
)

type Handlers struct {
	Auth     *authHandler.Handler
	Event    *eventHandler.Handler
	Payment  *paymentHandler.Handler
	Donation *donationHandler.Handler
}

// NewRouter initializes the HTTP router and registers the routes for the application.
// Swagger spec:
// @title culturepay API
// @description Donation collection backend: Razorpay orders, payment verification and the event calendar.
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func NewRouter(
	app *fiber.App,
	cfg *config.Config,
	l logger.Interface,
	m *metrics.Metrics,
	handlers Handlers,
) {
	// Options
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(l))
	app.Use(middleware.Recovery(l))
	app.Use(middleware.CORS(cfg))
	app.Use(middleware.Metrics(m))

	app.Get("/health", func(c *fiber.Ctx) error {
		return response.WithMessage(c, fiber.StatusOK, "ok")
	})
	app.Get("/metrics", adaptor.HTTPHandler(m.Handler()))

	if cfg.Swagger.Enabled {
		app.Get("/swagger/*", swagger.HandlerDefault)
	}

	api := app.Group("/api")
	{
		handlers.Auth.RegisterRoutes(api)
		handlers.Event.RegisterRoutes(api)
		handlers.Payment.RegisterRoutes(api)
		handlers.Donation.RegisterRoutes(api)
	}

	app.Use("*", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "route not found",
		})
	})
}
