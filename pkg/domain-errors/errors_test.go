package domainerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errCause = errors.New("cause")

func TestWrap(t *testing.T) {
	t.Run("cause stays reachable", func(t *testing.T) {
		err := Wrap(errCause, CodeConflict, "lock held")
		require.ErrorIs(t, err, errCause)
		assert.True(t, HasCode(err, CodeConflict))
		assert.Equal(t, "lock held: cause", err.Error())
	})

	t.Run("outermost code wins", func(t *testing.T) {
		inner := New(CodeNotFound, "missing")
		outer := Wrap(inner, CodeInternal, "load failed")
		assert.True(t, HasCode(outer, CodeInternal))
		assert.Equal(t, CodeInternal, CodeOf(outer))
	})

	t.Run("code survives fmt wrapping", func(t *testing.T) {
		err := fmt.Errorf("context: %w", New(CodeForbidden, "nope"))
		assert.True(t, Is(err, CodeForbidden))
	})
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, CodeInternal, CodeOf(errCause))
	assert.Equal(t, CodeValidation, CodeOf(New(CodeValidation, "bad")))
	assert.False(t, HasCode(nil, CodeInternal))
}
