package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidator(t *testing.T) {
	t.Run("all checks pass", func(t *testing.T) {
		v := New()
		v.Check(true, "title", "is required")

		assert.True(t, v.Valid())
		assert.NoError(t, v.Err())
	})

	t.Run("failures accumulate", func(t *testing.T) {
		v := New()
		v.Check(false, "title", "is required")
		v.Check(false, "amount", "is required")

		assert.False(t, v.Valid())

		err := v.Err()
		assert.Error(t, err)

		verr, ok := err.(*Errors)
		assert.True(t, ok)
		assert.Len(t, verr.Fields, 2)
		assert.Equal(t, "title: is required; amount: is required", err.Error())
	})
}
