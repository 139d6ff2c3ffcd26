package creditcard

import (
	"orus/internal/utils/validation"
)

// validateTokenRequest applies the card rules to a tokenization request.
// The CVC check is scoped to the scheme the number matches.
func (s *service) validateTokenRequest(req TokenRequest) error {
	v := validation.New()

	v.Check(s.registry.ValidateNumber(req.Number), "number", "is not a valid card number")
	v.Check(s.ValidateCardExpiry(req.ExpMonth, req.ExpYear), "expiry", "is missing or in the past")

	schemeID, _ := s.registry.Type(req.Number)
	v.Check(s.registry.ValidateCVC(req.CVC, schemeID), "cvc", "has an invalid length")

	for _, e := range v.Errors {
		s.metrics.RecordValidationFailure(e.Field)
	}
	return v.Err()
}
