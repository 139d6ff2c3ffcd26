package models

import (
	"orus/internal/validation"

	v "github.com/jellydator/validation"
)

// CardCheckRequest is the body of POST /api/cards/check.
type CardCheckRequest struct {
	Number   string `json:"number"`
	ExpMonth string `json:"exp_month"`
	ExpYear  string `json:"exp_year"`
	CVC      string `json:"cvc"`
}

func (r CardCheckRequest) Validate() error {
	return validation.WrapValidationError(v.ValidateStruct(&r,
		v.Field(&r.Number, v.Required, v.Length(1, validation.MaxCardInputLength), validation.HasDigits),
		v.Field(&r.ExpMonth, v.Length(0, validation.MaxExpiryInputLength)),
		v.Field(&r.ExpYear, v.Length(0, validation.MaxExpiryInputLength)),
		v.Field(&r.CVC, v.Length(0, validation.MaxCVCInputLength)),
	))
}

// CreateTokenRequest is the body of POST /api/tokens.
type CreateTokenRequest struct {
	Number   string `json:"number"`
	ExpMonth string `json:"exp_month"`
	ExpYear  string `json:"exp_year"`
	CVC      string `json:"cvc"`
	Name     string `json:"name,omitempty"`
	APIKey   string `json:"api_key,omitempty"`
}

func (r CreateTokenRequest) Validate() error {
	return validation.WrapValidationError(v.ValidateStruct(&r,
		v.Field(&r.Number, v.Required, v.Length(1, validation.MaxCardInputLength), validation.HasDigits),
		v.Field(&r.ExpMonth, v.Required, v.Length(1, validation.MaxExpiryInputLength), validation.HasDigits),
		v.Field(&r.ExpYear, v.Required, v.Length(1, validation.MaxExpiryInputLength), validation.HasDigits),
		v.Field(&r.CVC, v.Required, v.Length(1, validation.MaxCVCInputLength), validation.HasDigits),
		v.Field(&r.Name, v.Length(0, validation.MaxNameLength)),
		v.Field(&r.APIKey, v.Length(0, validation.MaxAPIKeyLength)),
	))
}

// CardToken is the token returned to API clients.
type CardToken struct {
	Token    string `json:"token"`
	CardType string `json:"card_type"`
	Brand    string `json:"brand,omitempty"`
	LastFour string `json:"last_four"`
	Livemode bool   `json:"livemode"`
}

// CardScheme is the public view of a scheme definition.
type CardScheme struct {
	Type       string `json:"type"`
	Name       string `json:"name"`
	Lengths    []int  `json:"lengths"`
	CVCLengths []int  `json:"cvc_lengths"`
	Grouping   string `json:"grouping"`
	Luhn       bool   `json:"luhn"`
}
