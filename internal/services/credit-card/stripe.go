package creditcard

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"orus/internal/domain/card"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stripe/stripe-go/v72"
	"github.com/stripe/stripe-go/v72/token"
)

// StripeConfig configures the Stripe token client.
type StripeConfig struct {
	// SecretKey is used when a request carries no key of its own.
	SecretKey string
	// APIURL overrides the Stripe API base URL. Empty means api.stripe.com.
	APIURL     string
	HTTPClient *http.Client
	Logger     logrus.FieldLogger
}

// StripeTokenizer exchanges raw card data for a Stripe token with a single
// POST /v1/tokens request.
type StripeTokenizer struct {
	backend   stripe.Backend
	secretKey string
}

func NewStripeTokenizer(cfg StripeConfig) *StripeTokenizer {
	backendCfg := &stripe.BackendConfig{
		MaxNetworkRetries: stripe.Int64(0),
		HTTPClient:        cfg.HTTPClient,
	}
	if cfg.APIURL != "" {
		backendCfg.URL = stripe.String(strings.TrimSuffix(cfg.APIURL, "/"))
	}
	if cfg.Logger != nil {
		backendCfg.LeveledLogger = cfg.Logger
	}

	return &StripeTokenizer{
		backend:   stripe.GetBackendWithConfig(stripe.APIBackend, backendCfg),
		secretKey: cfg.SecretKey,
	}
}

func (t *StripeTokenizer) TokenizeCard(ctx context.Context, req TokenRequest) (*TokenResult, error) {
	apiKey := req.APIKey
	if apiKey == "" {
		apiKey = t.secretKey
	}
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	params := &stripe.TokenParams{
		Card: &stripe.CardParams{
			Number:   stripe.String(req.Number),
			ExpMonth: stripe.String(req.ExpMonth),
			ExpYear:  stripe.String(req.ExpYear),
			CVC:      stripe.String(req.CVC),
		},
	}
	if req.Name != "" {
		params.Card.Name = stripe.String(req.Name)
	}
	params.Context = ctx
	params.SetIdempotencyKey(uuid.NewString())

	client := token.Client{B: t.backend, Key: apiKey}
	tok, err := client.New(params)
	if err != nil {
		return nil, mapStripeError(err)
	}

	digits := card.Normalize(req.Number)
	cardType, _ := card.Type(digits)
	result := &TokenResult{
		Token:    tok.ID,
		CardType: cardType,
		LastFour: lastFour(digits),
		Livemode: tok.Livemode,
		Status:   http.StatusOK,
	}
	if tok.Card != nil {
		result.Brand = string(tok.Card.Brand)
		if tok.Card.Last4 != "" {
			result.LastFour = tok.Card.Last4
		}
	}
	return result, nil
}

// mapStripeError turns a Stripe API error into a *TokenError. Transport
// failures keep their cause and are marked as ErrTokenizationFailed.
func mapStripeError(err error) error {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) {
		return &TokenError{
			Status:  stripeErr.HTTPStatusCode,
			Code:    string(stripeErr.Code),
			Message: stripeErr.Msg,
		}
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return errors.Join(ErrTokenizationFailed, err)
}
