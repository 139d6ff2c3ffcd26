// Package routes defines the API routing configuration.
// It sets up all HTTP routes and their corresponding handlers,
// including middleware and authentication requirements.
package routes

import (
	"net/http"
	"time"

	"orus/internal/handlers"
	"orus/internal/middleware"
	"orus/internal/models"
	creditcard "orus/internal/services/credit-card"
	"orus/internal/utils/response"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/sirupsen/logrus"
)

// Dependencies carries everything the routes need.
type Dependencies struct {
	CardService creditcard.Service
	Auth        *middleware.AuthMiddleware
	Logger      logrus.FieldLogger

	// LimiterStorage backs the tokenization rate limiter. Nil keeps
	// counters in memory.
	LimiterStorage  fiber.Storage
	TokenRateLimit  int
	TokenRateWindow time.Duration

	MetricsHandler http.Handler
	HealthCheckers map[string]handlers.HealthChecker
	Mode           string
}

// SetupRoutes configures all application routes.
func SetupRoutes(app *fiber.App, deps Dependencies) {
	cardHandler := handlers.NewCreditCardHandler(deps.CardService, deps.Logger)

	app.Get("/health", handlers.HealthCheck(deps.Mode, deps.HealthCheckers))
	if deps.MetricsHandler != nil {
		app.Get("/metrics", adaptor.HTTPHandler(deps.MetricsHandler))
	}

	api := app.Group("/api")

	cards := api.Group("/cards")
	cards.Post("/check", cardHandler.CheckCard)
	cards.Get("/format", cardHandler.FormatCard)
	cards.Get("/schemes", cardHandler.ListSchemes)

	api.Post("/tokens",
		tokenLimiter(deps),
		deps.Auth.Handler,
		middleware.HasPermission(models.PermissionCardTokenize),
		cardHandler.CreateToken,
	)
}

func tokenLimiter(deps Dependencies) fiber.Handler {
	limit := deps.TokenRateLimit
	if limit <= 0 {
		limit = 10
	}
	window := deps.TokenRateWindow
	if window <= 0 {
		window = time.Minute
	}

	return limiter.New(limiter.Config{
		Max:        limit,
		Expiration: window,
		Storage:    deps.LimiterStorage,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return response.Error(c, fiber.StatusTooManyRequests, "Too many requests. Please try again later.")
		},
	})
}
