// Package validation provides request validation rules for the card API.
package validation

import (
	"errors"

	"orus/internal/domain/card"

	v "github.com/jellydator/validation"
)

var ErrInvalidRequest = errors.New("invalid request")

// HasDigits requires a string to contain at least one ASCII digit. Empty
// strings pass so Required decides about them.
var HasDigits = v.By(func(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return v.NewError("validation_has_digits_type", "must be a string")
	}
	if s == "" {
		return nil
	}
	if card.Normalize(s) == "" {
		return v.NewError("validation_has_digits", "must contain digits")
	}
	return nil
})

// WrapValidationError marks err as ErrInvalidRequest.
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return errors.Join(ErrInvalidRequest, err)
}

// FieldErrors flattens jellydator field errors into a message map.
func FieldErrors(err error) map[string]string {
	var errs v.Errors
	if !errors.As(err, &errs) {
		return nil
	}
	out := make(map[string]string, len(errs))
	for field, e := range errs {
		out[field] = e.Error()
	}
	return out
}
