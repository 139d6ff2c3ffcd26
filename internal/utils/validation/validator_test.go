package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator(t *testing.T) {
	t.Run("no errors", func(t *testing.T) {
		v := New()
		v.Check(true, "number", "is invalid")

		assert.True(t, v.Valid())
		assert.NoError(t, v.Err())
	})

	t.Run("collects errors in order", func(t *testing.T) {
		v := New()
		v.Check(false, "number", "is invalid")
		v.Check(false, "cvc", "is invalid")
		v.AddError("number", "is too long")

		require.False(t, v.Valid())
		err := v.Err()
		require.Error(t, err)
		assert.Equal(t, "number: is invalid; cvc: is invalid; number: is too long", err.Error())

		var errs Errors
		require.True(t, errors.As(err, &errs))
		assert.Equal(t, map[string]string{"number": "is invalid", "cvc": "is invalid"}, errs.Fields())
	})
}
