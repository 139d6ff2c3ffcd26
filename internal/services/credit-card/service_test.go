package creditcard

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"orus/internal/domain/card"
	"orus/internal/utils/validation"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockTokenizer struct {
	mock.Mock
}

func (m *MockTokenizer) TokenizeCard(ctx context.Context, req TokenRequest) (*TokenResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*TokenResult), args.Error(1)
}

type MockMetrics struct {
	mock.Mock
}

func (m *MockMetrics) RecordValidationFailure(field string) {
	m.Called(field)
}

func (m *MockMetrics) RecordTokenization(cardType, result string, duration time.Duration) {
	m.Called(cardType, result, duration)
}

var july2025 = time.Date(2025, time.July, 15, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return july2025 }

func newTestService(tokenizer Tokenizer, metrics MetricsCollector) (Service, *test.Hook) {
	logger, hook := test.NewNullLogger()
	return NewService(tokenizer, ServiceConfig{Clock: fixedClock}, metrics, logger), hook
}

func TestService_CardRules(t *testing.T) {
	s, _ := newTestService(&MockTokenizer{}, nil)

	id, ok := s.CardType("5500 0000 0000 0004")
	assert.True(t, ok)
	assert.Equal(t, "mastercard", id)

	name, ok := s.CardName("4242424242424242")
	assert.True(t, ok)
	assert.Equal(t, "Visa", name)

	assert.Equal(t, "3782 822463 10005", s.FormatCardNumber("378282246310005"))
	assert.True(t, s.ValidateCardNumber("4242 4242 4242 4242"))
	assert.False(t, s.ValidateCardNumber("4242424242424240"))
	assert.True(t, s.ValidateCardExpiry("07", "25"))
	assert.False(t, s.ValidateCardExpiry("01", "20"))
	assert.False(t, s.ValidateCardCVC("12", "visa"))
	assert.True(t, s.ValidateCardCVC("1234", "amex"))
	assert.Len(t, s.Schemes(), 9)
}

func TestService_Inspect(t *testing.T) {
	s, _ := newTestService(&MockTokenizer{}, nil)

	tests := []struct {
		name  string
		input CheckCardInput
		want  CardCheckResult
	}{
		{
			name:  "valid amex",
			input: CheckCardInput{Number: "3782 822463 10005", ExpMonth: "12", ExpYear: "30", CVC: "1234"},
			want: CardCheckResult{
				Type: "amex", Name: "American Express", Formatted: "3782 822463 10005", LastFour: "0005",
				NumberValid: true, ExpiryValid: true, CVCValid: true, Valid: true,
			},
		},
		{
			name:  "visa with four digit cvc",
			input: CheckCardInput{Number: "4242424242424242", ExpMonth: "07", ExpYear: "25", CVC: "1234"},
			want: CardCheckResult{
				Type: "visa", Name: "Visa", Formatted: "4242 4242 4242 4242", LastFour: "4242",
				NumberValid: true, ExpiryValid: true, CVCValid: false, Valid: false,
			},
		},
		{
			name:  "unknown scheme",
			input: CheckCardInput{Number: "0000 1111", ExpMonth: "01", ExpYear: "20", CVC: "123"},
			want: CardCheckResult{
				Formatted: "00001111", LastFour: "1111",
				NumberValid: false, ExpiryValid: false, CVCValid: true, Valid: false,
			},
		},
		{
			name:  "empty",
			input: CheckCardInput{},
			want:  CardCheckResult{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Inspect(tt.input))
		})
	}
}

func TestService_CreateToken(t *testing.T) {
	validReq := TokenRequest{Number: "4242 4242 4242 4242", ExpMonth: "12", ExpYear: "2030", CVC: "123", Name: "Jane Doe"}
	normalizedReq := validReq
	normalizedReq.Number = "4242424242424242"

	tests := []struct {
		name      string
		req       TokenRequest
		setupMock func(*MockTokenizer, *MockMetrics)
		want      *TokenResult
		wantErr   error
		errFields []string
	}{
		{
			name: "successful tokenization",
			req:  validReq,
			setupMock: func(tok *MockTokenizer, metrics *MockMetrics) {
				tok.On("TokenizeCard", mock.Anything, normalizedReq).
					Return(&TokenResult{Token: "tok_123", CardType: "visa", LastFour: "4242", Status: http.StatusOK}, nil)
				metrics.On("RecordTokenization", "visa", "success", time.Duration(0)).Return()
			},
			want: &TokenResult{Token: "tok_123", CardType: "visa", LastFour: "4242", Status: http.StatusOK},
		},
		{
			name: "invalid card never reaches the tokenizer",
			req:  TokenRequest{Number: "4242424242424241", ExpMonth: "01", ExpYear: "20", CVC: "1234"},
			setupMock: func(tok *MockTokenizer, metrics *MockMetrics) {
				metrics.On("RecordValidationFailure", "number").Return()
				metrics.On("RecordValidationFailure", "expiry").Return()
				metrics.On("RecordValidationFailure", "cvc").Return()
				metrics.On("RecordTokenization", "visa", "invalid", time.Duration(0)).Return()
			},
			wantErr:   ErrInvalidCard,
			errFields: []string{"number", "expiry", "cvc"},
		},
		{
			name: "remote rejection",
			req:  validReq,
			setupMock: func(tok *MockTokenizer, metrics *MockMetrics) {
				tok.On("TokenizeCard", mock.Anything, normalizedReq).
					Return(nil, &TokenError{Status: http.StatusPaymentRequired, Code: "card_declined", Message: "declined"})
				metrics.On("RecordTokenization", "visa", "rejected", time.Duration(0)).Return()
			},
			wantErr: ErrTokenizationFailed,
		},
		{
			name: "transport failure",
			req:  validReq,
			setupMock: func(tok *MockTokenizer, metrics *MockMetrics) {
				tok.On("TokenizeCard", mock.Anything, normalizedReq).
					Return(nil, errors.Join(ErrTokenizationFailed, errors.New("connection reset")))
				metrics.On("RecordTokenization", "visa", "error", time.Duration(0)).Return()
			},
			wantErr: ErrTokenizationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := new(MockTokenizer)
			metrics := new(MockMetrics)
			if tt.setupMock != nil {
				tt.setupMock(tok, metrics)
			}

			s, _ := newTestService(tok, metrics)
			got, err := s.CreateToken(context.Background(), tt.req)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				if tt.errFields != nil {
					var errs validation.Errors
					require.ErrorAs(t, err, &errs)
					assert.Len(t, errs, len(tt.errFields))
					for _, f := range tt.errFields {
						assert.Contains(t, errs.Fields(), f)
					}
				}
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}

			tok.AssertExpectations(t)
			metrics.AssertExpectations(t)
		})
	}
}

func TestService_CreateToken_DoesNotLogCardNumber(t *testing.T) {
	tok := new(MockTokenizer)
	tok.On("TokenizeCard", mock.Anything, mock.Anything).
		Return(&TokenResult{Token: "tok_visa", CardType: "visa", LastFour: "4242"}, nil)

	s, hook := newTestService(tok, nil)
	_, err := s.CreateToken(context.Background(), TokenRequest{
		Number: "4242424242424242", ExpMonth: "12", ExpYear: "30", CVC: "123",
	})
	require.NoError(t, err)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.Equal(t, "****4242", entry.Data["card"])
	for _, e := range hook.AllEntries() {
		for _, v := range e.Data {
			assert.NotContains(t, fmt.Sprint(v), "4242424242424242")
		}
	}
}

func TestService_CreateToken_UsesConfiguredRegistry(t *testing.T) {
	visa, ok := card.Lookup("visa")
	require.True(t, ok)
	visa.ID, visa.Name = "house", "House Card"
	registry := card.NewRegistry(visa)

	tok := new(MockTokenizer)
	tok.On("TokenizeCard", mock.Anything, mock.Anything).
		Return(&TokenResult{Token: "tok_visa", CardType: "visa", LastFour: "4242", Status: http.StatusOK}, nil)

	logger, _ := test.NewNullLogger()
	s := NewService(tok, ServiceConfig{Registry: registry, Clock: fixedClock}, nil, logger)

	req := TokenRequest{Number: "4242424242424242", ExpMonth: "12", ExpYear: "30", CVC: "123"}
	got, err := s.CreateToken(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "house", got.CardType)
	assert.Equal(t, s.Inspect(CheckCardInput{Number: req.Number}).Type, got.CardType)
	tok.AssertExpectations(t)
}

func TestService_CreateTokenAsync(t *testing.T) {
	t.Run("delivers result", func(t *testing.T) {
		s, _ := newTestService(NewTestModeTokenizer(), nil)
		done := make(chan struct{})

		var (
			result *TokenResult
			err    error
		)
		s.CreateTokenAsync(context.Background(), TokenRequest{
			Number: "378282246310005", ExpMonth: "12", ExpYear: "30", CVC: "1234",
		}, func(r *TokenResult, e error) {
			result, err = r, e
			close(done)
		})

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("callback was not invoked")
		}
		require.NoError(t, err)
		assert.Equal(t, "tok_amex", result.Token)
		assert.Equal(t, "amex", result.CardType)
	})

	t.Run("reports panics as errors", func(t *testing.T) {
		tok := new(MockTokenizer)
		tok.On("TokenizeCard", mock.Anything, mock.Anything).Run(func(mock.Arguments) {
			panic("boom")
		})
		s, _ := newTestService(tok, nil)
		errCh := make(chan error, 1)

		s.CreateTokenAsync(context.Background(), TokenRequest{
			Number: "4242424242424242", ExpMonth: "12", ExpYear: "30", CVC: "123",
		}, func(r *TokenResult, e error) {
			assert.Nil(t, r)
			errCh <- e
		})

		select {
		case err := <-errCh:
			assert.ErrorIs(t, err, ErrTokenizationFailed)
		case <-time.After(time.Second):
			t.Fatal("callback was not invoked")
		}
	})
}

func TestTestModeTokenizer(t *testing.T) {
	tok := NewTestModeTokenizer()

	res, err := tok.TokenizeCard(context.Background(), TokenRequest{Number: "5555 5555 5555 4444"})
	require.NoError(t, err)
	assert.Equal(t, "tok_mastercard", res.Token)
	assert.Equal(t, "mastercard", res.CardType)
	assert.Equal(t, "4444", res.LastFour)

	_, err = tok.TokenizeCard(context.Background(), TokenRequest{Number: "4012888888881881"})
	assert.ErrorIs(t, err, ErrLiveCardInTestMode)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = tok.TokenizeCard(ctx, TokenRequest{Number: "4242424242424242"})
	assert.ErrorIs(t, err, context.Canceled)
}
