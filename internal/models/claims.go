package models

import (
	"slices"

	"github.com/golang-jwt/jwt/v5"
)

// PermissionCardTokenize allows a client to call POST /api/tokens.
const PermissionCardTokenize = "card:tokenize"

// ClientClaims identifies an API client allowed to call protected routes.
type ClientClaims struct {
	jwt.RegisteredClaims
	ClientID    string   `json:"client_id"`
	Permissions []string `json:"permissions"`
}

// HasPermission checks if the claims include a specific permission
func (c *ClientClaims) HasPermission(permission string) bool {
	return slices.Contains(c.Permissions, permission)
}
