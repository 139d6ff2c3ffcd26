package creditcard

import (
	"context"
	"fmt"
	"net/http"

	"orus/internal/domain/card"
)

// Tokenizer handles credit card tokenization
type Tokenizer interface {
	TokenizeCard(ctx context.Context, req TokenRequest) (*TokenResult, error)
}

type testCard struct {
	token string
	brand string
}

// TestModeTokenizer issues Stripe's well-known test tokens without any
// network call. It refuses every number that is not a published test card.
type TestModeTokenizer struct {
	testCards map[string]testCard
}

func NewTestModeTokenizer() *TestModeTokenizer {
	return &TestModeTokenizer{
		testCards: map[string]testCard{
			"4242424242424242": {"tok_visa", "Visa"},
			"4000056655665556": {"tok_visa_debit", "Visa"},
			"5555555555554444": {"tok_mastercard", "MasterCard"},
			"5200828282828210": {"tok_mastercard_debit", "MasterCard"},
			"378282246310005":  {"tok_amex", "American Express"},
			"371449635398431":  {"tok_amex", "American Express"},
			"6011111111111117": {"tok_discover", "Discover"},
			"30569309025904":   {"tok_diners", "Diners Club"},
			"3566002020360505": {"tok_jcb", "JCB"},
			"6200000000000005": {"tok_unionpay", "UnionPay"},
		},
	}
}

func (t *TestModeTokenizer) TokenizeCard(ctx context.Context, req TokenRequest) (*TokenResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	number := card.Normalize(req.Number)

	tc, ok := t.testCards[number]
	if !ok {
		return nil, ErrLiveCardInTestMode
	}

	cardType, _ := card.Type(number)
	return &TokenResult{
		Token:    tc.token,
		CardType: cardType,
		Brand:    tc.brand,
		LastFour: lastFour(number),
		Status:   http.StatusOK,
	}, nil
}

func lastFour(digits string) string {
	if len(digits) <= 4 {
		return digits
	}
	return digits[len(digits)-4:]
}

// maskNumber keeps the last four digits for logs.
func maskNumber(digits string) string {
	return fmt.Sprintf("****%s", lastFour(digits))
}
