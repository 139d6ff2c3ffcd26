// Package middleware provides HTTP middleware components for the application.
package middleware

import (
	"strings"

	"orus/internal/models"
	"orus/internal/utils"
	"orus/internal/utils/response"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const claimsKey = "claims"

// AuthMiddleware handles JWT token validation for API clients.
// It extracts the JWT token from the Authorization header, validates it,
// and adds the client claims to the request context.
type AuthMiddleware struct {
	secret string
	logger logrus.FieldLogger
}

func NewAuthMiddleware(secret string, logger logrus.FieldLogger) *AuthMiddleware {
	return &AuthMiddleware{
		secret: secret,
		logger: logger,
	}
}

// Handler validates the bearer token and stores its claims in c.Locals.
func (m *AuthMiddleware) Handler(c *fiber.Ctx) error {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if authHeader == "" {
		return response.Error(c, fiber.StatusUnauthorized, "missing authorization header")
	}

	if !strings.HasPrefix(authHeader, "Bearer ") {
		return response.Error(c, fiber.StatusUnauthorized, "invalid authorization format")
	}

	claims, err := utils.ParseToken(m.secret, strings.TrimPrefix(authHeader, "Bearer "))
	if err != nil {
		m.logger.WithError(err).Debug("token validation failed")
		return response.Error(c, fiber.StatusUnauthorized, "invalid token")
	}

	c.Locals(claimsKey, claims)
	return c.Next()
}

// Claims returns the client claims stored by Handler.
func Claims(c *fiber.Ctx) (*models.ClientClaims, bool) {
	claims, ok := c.Locals(claimsKey).(*models.ClientClaims)
	return claims, ok && claims != nil
}

// HasPermission returns a middleware that checks for a specific permission.
func HasPermission(permission string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := Claims(c)
		if !ok {
			return response.Unauthorized(c)
		}
		if !claims.HasPermission(permission) {
			return response.Error(c, fiber.StatusForbidden, "Insufficient permissions")
		}
		return c.Next()
	}
}
