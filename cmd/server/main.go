// Package main is the entry point for the card service.
// It loads configuration, wires the card service and its tokenizer,
// sets up the HTTP server and starts it.
package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"orus/internal/config"
	"orus/internal/handlers"
	"orus/internal/logger"
	"orus/internal/middleware"
	"orus/internal/repositories/cache"
	"orus/internal/routes"
	creditcard "orus/internal/services/credit-card"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	stripeTimeout   = 30 * time.Second
	shutdownTimeout = 10 * time.Second
)

func main() {
	// Load environment variables
	config.LoadEnv()
	cfg := config.Load()

	log := logger.New(cfg.LogLevel, cfg.IsProduction())

	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set in environment")
	}

	var tokenizer creditcard.Tokenizer
	mode := "live"
	if cfg.TestMode() {
		mode = "test"
		log.Warn("STRIPE_SECRET_KEY not set, only test cards can be tokenized")
		tokenizer = creditcard.NewTestModeTokenizer()
	} else {
		tokenizer = creditcard.NewStripeTokenizer(creditcard.StripeConfig{
			SecretKey:  cfg.StripeSecretKey,
			APIURL:     cfg.StripeAPIURL,
			HTTPClient: &http.Client{Timeout: stripeTimeout},
			Logger:     log,
		})
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	cardService := creditcard.NewService(tokenizer, creditcard.ServiceConfig{}, creditcard.NewPrometheusMetrics(reg), log)

	checkers := map[string]handlers.HealthChecker{}
	var limiterStorage fiber.Storage
	if cfg.RedisEnabled() {
		storage := cache.NewRedisStorage(cache.NewRedisClient(&cache.RedisConfig{
			Host:     cfg.RedisHost,
			Port:     cfg.RedisPort,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		}), "")
		if err := storage.HealthCheck(context.Background()); err != nil {
			log.WithError(err).Warn("Redis unavailable at startup")
		} else {
			log.Info("Connected to Redis for rate limiting")
		}
		defer func() {
			if err := storage.Close(); err != nil {
				log.WithError(err).Warn("Failed to close Redis connection")
			}
		}()
		limiterStorage = storage
		checkers["redis"] = storage.HealthCheck
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		DisableStartupMessage: cfg.IsProduction(),
	})

	// CORS middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,HEAD",
	}))

	// Middleware
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "[${time}] ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
	}))

	// Routes
	routes.SetupRoutes(app, routes.Dependencies{
		CardService:     cardService,
		Auth:            middleware.NewAuthMiddleware(cfg.JWTSecret, log),
		Logger:          log,
		LimiterStorage:  limiterStorage,
		TokenRateLimit:  cfg.TokenRateLimit,
		TokenRateWindow: cfg.TokenRateWindow,
		MetricsHandler:  promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
		HealthCheckers:  checkers,
		Mode:            mode,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.WithError(err).Error("Server stopped")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down")
	if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
		log.WithError(err).Error("Graceful shutdown failed")
	}
}
