package creditcard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"orus/internal/domain/card"

	"github.com/sirupsen/logrus"
)

const (
	resultSuccess  = "success"
	resultInvalid  = "invalid"
	resultRejected = "rejected"
	resultError    = "error"
)

// ServiceConfig holds optional collaborators. Zero values fall back to the
// default scheme registry and time.Now.
type ServiceConfig struct {
	Registry *card.Registry
	Clock    func() time.Time
}

type service struct {
	tokenizer Tokenizer
	registry  *card.Registry
	clock     func() time.Time
	metrics   MetricsCollector
	logger    logrus.FieldLogger
}

func NewService(tokenizer Tokenizer, cfg ServiceConfig, metrics MetricsCollector, logger logrus.FieldLogger) Service {
	if cfg.Registry == nil {
		cfg.Registry = card.Default()
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	if metrics == nil {
		metrics = &NoopMetricsCollector{}
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &service{
		tokenizer: tokenizer,
		registry:  cfg.Registry,
		clock:     cfg.Clock,
		metrics:   metrics,
		logger:    logger.WithField("component", "creditcard"),
	}
}

func (s *service) CardType(number string) (string, bool) {
	return s.registry.Type(number)
}

func (s *service) CardName(number string) (string, bool) {
	return s.registry.Name(number)
}

func (s *service) FormatCardNumber(number string) string {
	return s.registry.Format(number)
}

func (s *service) ValidateCardNumber(number string) bool {
	return s.registry.ValidateNumber(number)
}

// ValidateCardExpiry checks month/year against the service clock.
func (s *service) ValidateCardExpiry(month, year string) bool {
	return card.ValidateExpiry(month, year, s.clock())
}

func (s *service) ValidateCardCVC(cvc, schemeID string) bool {
	return s.registry.ValidateCVC(cvc, schemeID)
}

func (s *service) Schemes() []card.Scheme {
	return s.registry.Schemes()
}

func (s *service) Inspect(input CheckCardInput) CardCheckResult {
	digits := card.Normalize(input.Number)

	result := CardCheckResult{
		Formatted:   s.registry.Format(digits),
		NumberValid: s.registry.ValidateNumber(digits),
		ExpiryValid: s.ValidateCardExpiry(input.ExpMonth, input.ExpYear),
	}
	if scheme, ok := s.registry.Match(digits); ok {
		result.Type = scheme.ID
		result.Name = scheme.Name
	}
	if digits != "" {
		result.LastFour = lastFour(digits)
	}
	result.CVCValid = s.registry.ValidateCVC(input.CVC, result.Type)
	result.Valid = result.NumberValid && result.ExpiryValid && result.CVCValid

	return result
}

// CreateToken validates req and exchanges it for a token. Invalid card
// data never reaches the tokenizer.
func (s *service) CreateToken(ctx context.Context, req TokenRequest) (*TokenResult, error) {
	digits := card.Normalize(req.Number)
	cardType, _ := s.registry.Type(digits)
	log := s.logger.WithFields(logrus.Fields{
		"card_type": cardType,
		"card":      maskNumber(digits),
	})

	if err := s.validateTokenRequest(req); err != nil {
		log.WithError(err).Info("rejected invalid card data")
		s.metrics.RecordTokenization(cardType, resultInvalid, 0)
		return nil, fmt.Errorf("%w: %w", ErrInvalidCard, err)
	}

	req.Number = digits
	req.CVC = card.Normalize(req.CVC)

	start := s.clock()
	result, err := s.tokenizer.TokenizeCard(ctx, req)
	elapsed := s.clock().Sub(start)
	if err != nil {
		outcome := resultError
		var tokenErr *TokenError
		if errors.As(err, &tokenErr) || errors.Is(err, ErrLiveCardInTestMode) {
			outcome = resultRejected
		}
		s.metrics.RecordTokenization(cardType, outcome, elapsed)
		log.WithError(err).Warn("tokenization failed")
		return nil, err
	}

	// The service registry decides the scheme, whatever the tokenizer used.
	result.CardType = cardType
	s.metrics.RecordTokenization(cardType, resultSuccess, elapsed)
	log.WithField("livemode", result.Livemode).Info("card tokenized")
	return result, nil
}

// CreateTokenAsync runs CreateToken in its own goroutine and hands the
// outcome to done. A panic in the tokenizer is reported as an error.
func (s *service) CreateTokenAsync(ctx context.Context, req TokenRequest, done TokenCallback) {
	go func() {
		var (
			result *TokenResult
			err    error
		)
		func() {
			defer func() {
				if r := recover(); r != nil {
					s.logger.WithField("panic", r).Error("tokenizer panicked")
					result, err = nil, fmt.Errorf("%w: %v", ErrTokenizationFailed, r)
				}
			}()
			result, err = s.CreateToken(ctx, req)
		}()
		if done != nil {
			done(result, err)
		}
	}()
}
