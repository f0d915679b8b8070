package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/savioruz/culturepay/pkg/metrics"
)

const unmatchedRoute = "unmatched"

// Metrics records request latency labelled by the matched route template.
func Metrics(m *metrics.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		route := unmatchedRoute
		if r := c.Route(); r != nil && r.Path != "" && r.Path != "/" && r.Path != "*" {
			route = r.Path
		}

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			}
		}

		m.ObserveHTTP(c.Method(), route, status, time.Since(start))

		return err
	}
}
