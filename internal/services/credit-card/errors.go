package creditcard

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCard        = errors.New("invalid card")
	ErrTokenizationFailed = errors.New("card tokenization failed")
	ErrLiveCardInTestMode = errors.New("only test cards can be tokenized in test mode")
	ErrMissingAPIKey      = errors.New("missing tokenization api key")
)

// TokenError is a failure reported by the remote token issuer.
type TokenError struct {
	Status  int
	Code    string
	Message string
}

func (e *TokenError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("%s: status %d: %s", ErrTokenizationFailed, e.Status, e.Message)
	}
	return fmt.Sprintf("%s: status %d: %s (%s)", ErrTokenizationFailed, e.Status, e.Message, e.Code)
}

func (e *TokenError) Unwrap() error {
	return ErrTokenizationFailed
}
