package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

const healthTimeout = 2 * time.Second

// HealthChecker reports whether a dependency is reachable.
type HealthChecker func(ctx context.Context) error

// HealthCheck reports service status; each checker is named in the response.
func HealthCheck(mode string, checkers map[string]HealthChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), healthTimeout)
		defer cancel()

		status := "ok"
		services := fiber.Map{}
		for name, check := range checkers {
			if err := check(ctx); err != nil {
				status = "degraded"
				services[name] = "unavailable"
				continue
			}
			services[name] = "connected"
		}

		code := fiber.StatusOK
		if status != "ok" {
			code = fiber.StatusServiceUnavailable
		}
		return c.Status(code).JSON(fiber.Map{
			"status":   status,
			"version":  "1.0.0",
			"mode":     mode,
			"services": services,
		})
	}
}
