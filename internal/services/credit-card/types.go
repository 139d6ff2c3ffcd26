package creditcard

import (
	"context"

	"orus/internal/domain/card"
)

// CheckCardInput is the card data submitted for a validity check.
type CheckCardInput struct {
	Number   string `json:"number"`
	ExpMonth string `json:"exp_month"`
	ExpYear  string `json:"exp_year"`
	CVC      string `json:"cvc"`
}

// CardCheckResult summarizes what the card rules say about an input.
type CardCheckResult struct {
	Type        string `json:"type,omitempty"`
	Name        string `json:"name,omitempty"`
	Formatted   string `json:"formatted"`
	LastFour    string `json:"last_four,omitempty"`
	NumberValid bool   `json:"number_valid"`
	ExpiryValid bool   `json:"expiry_valid"`
	CVCValid    bool   `json:"cvc_valid"`
	Valid       bool   `json:"valid"`
}

// TokenRequest is the raw card data exchanged for a token.
// APIKey overrides the configured Stripe key when set.
type TokenRequest struct {
	Number   string `json:"number"`
	ExpMonth string `json:"exp_month"`
	ExpYear  string `json:"exp_year"`
	CVC      string `json:"cvc"`
	Name     string `json:"name,omitempty"`
	APIKey   string `json:"-"`
}

// TokenResult represents a tokenized credit card
type TokenResult struct {
	Token    string `json:"token"`
	CardType string `json:"card_type"`
	Brand    string `json:"brand,omitempty"`
	LastFour string `json:"last_four"`
	Livemode bool   `json:"livemode"`
	Status   int    `json:"-"`
}

// TokenCallback receives the outcome of an asynchronous tokenization.
// Exactly one of result and err is nil.
type TokenCallback func(result *TokenResult, err error)

// Service defines the interface for credit card operations
type Service interface {
	CardType(number string) (string, bool)
	CardName(number string) (string, bool)
	FormatCardNumber(number string) string
	ValidateCardNumber(number string) bool
	ValidateCardExpiry(month, year string) bool
	ValidateCardCVC(cvc, schemeID string) bool
	Schemes() []card.Scheme

	Inspect(input CheckCardInput) CardCheckResult

	CreateToken(ctx context.Context, req TokenRequest) (*TokenResult, error)
	CreateTokenAsync(ctx context.Context, req TokenRequest, done TokenCallback)
}
