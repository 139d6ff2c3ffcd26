package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config is the runtime configuration of the card service.
type Config struct {
	Port        string
	Env         string
	LogLevel    string
	CORSOrigins string

	StripeSecretKey string
	StripeAPIURL    string

	JWTSecret string

	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	TokenRateLimit  int
	TokenRateWindow time.Duration
}

// LoadEnv loads variables from a .env file if present.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file found: %v", err)
	}
}

// Load reads the configuration from the environment.
func Load() Config {
	return Config{
		Port:            GetEnv("PORT", "3000"),
		Env:             GetEnv("ENV", "development"),
		LogLevel:        GetEnv("LOG_LEVEL", "info"),
		CORSOrigins:     GetEnv("CORS_ORIGINS", "http://localhost:5173"),
		StripeSecretKey: GetEnv("STRIPE_SECRET_KEY", ""),
		StripeAPIURL:    GetEnv("STRIPE_API_URL", ""),
		JWTSecret:       GetEnv("JWT_SECRET", ""),
		RedisHost:       GetEnv("REDIS_HOST", ""),
		RedisPort:       GetEnv("REDIS_PORT", "6379"),
		RedisPassword:   GetEnv("REDIS_PASSWORD", ""),
		RedisDB:         GetIntEnv("REDIS_DB", 0),
		TokenRateLimit:  GetIntEnv("TOKEN_RATE_LIMIT", 10),
		TokenRateWindow: GetDurationEnv("TOKEN_RATE_WINDOW", time.Minute),
	}
}

// IsProduction checks if the config targets production.
func (c Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

// TestMode reports whether tokens are issued without calling Stripe.
func (c Config) TestMode() bool {
	return c.StripeSecretKey == ""
}

// RedisEnabled reports whether a Redis host is configured.
func (c Config) RedisEnabled() bool {
	return c.RedisHost != ""
}

// GetEnv returns an environment variable or a default value.
func GetEnv(key, defaultVal string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultVal
}

// GetIntEnv returns an int environment variable or a default value.
func GetIntEnv(key string, defaultVal int) int {
	if val, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

func GetDurationEnv(key string, defaultVal time.Duration) time.Duration {
	if val, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}
